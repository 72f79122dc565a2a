package auth

import (
	"TUI_video_metadata/infrastructure/token_manager"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const defaultRevokeURL = "https://oauth2.googleapis.com/revoke"

var ErrTokenRevoked = errors.New("stored token was revoked or expired, sign in again")

type authenticationServiceImpl struct {
	clientSecretFilePath string
	revokeURL            string
	oauthConfig          *oauth2.Config
	tokenService         token_manager.TokenService
	httpClient           *http.Client
}

type AuthenticationService interface {
	GetAuthenticatedClient(ctx context.Context) (*http.Client, *oauth2.Token, error)
	GenerateAuthURL(state string) string
	RevokeToken(ctx context.Context, tokenToRevoke string) error
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
}

func NewAuthenticationService(scopes []string, clientSecretFilePath, redirectURL string, tokenService token_manager.TokenService) (AuthenticationService, error) {
	config, err := loadConfig(scopes, clientSecretFilePath)
	if err != nil {
		return nil, fmt.Errorf("error while loading client configuration: %w", err)
	}

	config.RedirectURL = redirectURL

	return &authenticationServiceImpl{
		clientSecretFilePath: clientSecretFilePath,
		revokeURL:            defaultRevokeURL,
		tokenService:         tokenService,
		oauthConfig:          config,
		httpClient:           http.DefaultClient,
	}, nil
}

func loadConfig(scopes []string, clientSecretFilePath string) (*oauth2.Config, error) {
	b, err := os.ReadFile(clientSecretFilePath)
	if err != nil {
		return nil, fmt.Errorf("error while reading client secret file (%s): %w", clientSecretFilePath, err)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("error while parsing client secret JSON: %w", err)
	}

	return config, nil
}

// GetAuthenticatedClient returns a client whose token source writes every
// refreshed token back to the token file. The stored token is deleted only
// when Google rejects the refresh token (invalid_grant); network failures
// leave it in place.
func (a *authenticationServiceImpl) GetAuthenticatedClient(ctx context.Context) (*http.Client, *oauth2.Token, error) {
	token, err := a.tokenService.LoadToken()
	if err != nil {
		return nil, nil, fmt.Errorf("error while loading token: %w", err)
	}

	tokenSource := &persistingTokenSource{
		base:         a.oauthConfig.TokenSource(ctx, token),
		last:         token,
		tokenService: a.tokenService,
	}

	refreshedToken, err := tokenSource.Token()
	if err != nil {
		if isRevokedGrant(err) {
			_ = a.tokenService.DeleteLocalToken()
			return nil, nil, fmt.Errorf("%w: %w", ErrTokenRevoked, err)
		}
		return nil, nil, fmt.Errorf("error while refreshing token: %w", err)
	}

	return oauth2.NewClient(ctx, tokenSource), refreshedToken, nil
}

func (a *authenticationServiceImpl) GenerateAuthURL(state string) string {
	return a.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (a *authenticationServiceImpl) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := a.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("error while exchanging authorization code: %w", err)
	}

	if err = a.tokenService.SaveToken(token); err != nil {
		return nil, fmt.Errorf("error while saving token: %w", err)
	}

	return token, nil
}

func (a *authenticationServiceImpl) RevokeToken(ctx context.Context, tokenToRevoke string) error {
	if tokenToRevoke == "" {
		return nil
	}

	data := url.Values{}
	data.Set("token", tokenToRevoke)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.revokeURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("error while building revoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error while sending revoke request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error while revoking token, status: %s", resp.Status)
	}

	return nil
}

func isRevokedGrant(err error) bool {
	var retrieveErr *oauth2.RetrieveError
	return errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == "invalid_grant"
}

// persistingTokenSource saves the token whenever base hands out a new one.
type persistingTokenSource struct {
	mu           sync.Mutex
	base         oauth2.TokenSource
	last         *oauth2.Token
	tokenService token_manager.TokenService
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last != nil && token.AccessToken == s.last.AccessToken && token.RefreshToken == s.last.RefreshToken {
		return token, nil
	}

	if err := s.tokenService.SaveToken(token); err != nil {
		return nil, fmt.Errorf("error while saving refreshed token: %w", err)
	}
	s.last = token

	return token, nil
}
