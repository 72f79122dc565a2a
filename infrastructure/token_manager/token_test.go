package token_manager

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestTokenService_SaveLoadDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	svc := NewTokenService(path)

	_, err := svc.LoadToken()
	require.Error(t, err)

	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.SaveToken(&oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       expiry,
	}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	token, err := svc.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "access", token.AccessToken)
	assert.Equal(t, "refresh", token.RefreshToken)
	assert.True(t, expiry.Equal(token.Expiry))

	require.NoError(t, svc.DeleteLocalToken())
	require.NoError(t, svc.DeleteLocalToken())
	_, err = svc.LoadToken()
	assert.Error(t, err)
}

func TestTokenService_LoadRejectsEmptyToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token_type":"Bearer"}`), 0600))

	_, err := NewTokenService(path).LoadToken()
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_LoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0600))

	_, err := NewTokenService(path).LoadToken()
	assert.Error(t, err)
}

func TestNewTokenService_DefaultPath(t *testing.T) {
	svc := NewTokenService("").(*tokenServiceImpl)
	assert.Equal(t, "token.json", svc.TokenFilePath)
}
