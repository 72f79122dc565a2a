package token_manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

var ErrInvalidToken = errors.New("token has neither access token nor refresh token")

type tokenServiceImpl struct {
	TokenFilePath string
}

type TokenService interface {
	DeleteLocalToken() error
	LoadToken() (*oauth2.Token, error)
	SaveToken(token *oauth2.Token) error
}

func NewTokenService(tokenFilePath string) TokenService {
	if tokenFilePath == "" {
		tokenFilePath = "token.json"
	}

	return &tokenServiceImpl{
		TokenFilePath: tokenFilePath,
	}
}

func (t *tokenServiceImpl) DeleteLocalToken() error {
	err := os.Remove(t.TokenFilePath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error while removing token file %s: %w", t.TokenFilePath, err)
	}

	return nil
}

func (t *tokenServiceImpl) LoadToken() (*oauth2.Token, error) {
	file, err := os.Open(t.TokenFilePath)
	if err != nil {
		return nil, fmt.Errorf("error while opening token file %s: %w", t.TokenFilePath, err)
	}

	defer file.Close()
	token := &oauth2.Token{}

	err = json.NewDecoder(file).Decode(token)
	if err != nil {
		return nil, fmt.Errorf("error while decoding token file %s: %w", t.TokenFilePath, err)
	}

	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, ErrInvalidToken
	}

	return token, nil
}

func (t *tokenServiceImpl) SaveToken(token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(t.TokenFilePath), 0700); err != nil {
		return fmt.Errorf("error while creating token directory: %w", err)
	}

	file, err := os.OpenFile(t.TokenFilePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("error while creating token file %s: %w", t.TokenFilePath, err)
	}

	defer file.Close()
	return json.NewEncoder(file).Encode(token)
}
