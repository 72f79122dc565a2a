package auth

import (
	"TUI_video_metadata/infrastructure/token_manager"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/youtube/v3"
)

const clientSecretJSON = `{
  "installed": {
    "client_id": "client-id.apps.googleusercontent.com",
    "client_secret": "secret",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "redirect_uris": ["http://localhost"]
  }
}`

func newTestService(t *testing.T) *authenticationServiceImpl {
	t.Helper()
	dir := t.TempDir()
	secretPath := filepath.Join(dir, "client_secret.json")
	require.NoError(t, os.WriteFile(secretPath, []byte(clientSecretJSON), 0600))

	svc, err := NewAuthenticationService(
		[]string{youtube.YoutubeReadonlyScope},
		secretPath,
		"http://localhost:8080",
		token_manager.NewTokenService(filepath.Join(dir, "token.json")),
	)
	require.NoError(t, err)
	return svc.(*authenticationServiceImpl)
}

func TestNewAuthenticationService_MissingSecret(t *testing.T) {
	_, err := NewAuthenticationService(nil, filepath.Join(t.TempDir(), "missing.json"), "", token_manager.NewTokenService(""))
	assert.Error(t, err)
}

func TestGenerateAuthURL(t *testing.T) {
	svc := newTestService(t)

	raw := svc.GenerateAuthURL("state-123")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "client-id.apps.googleusercontent.com", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8080", q.Get("redirect_uri"))
	assert.Equal(t, youtube.YoutubeReadonlyScope, q.Get("scope"))
}

func TestRevokeToken(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotToken = r.PostForm.Get("token")
		if gotToken == "bad" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := newTestService(t)
	svc.revokeURL = server.URL

	require.NoError(t, svc.RevokeToken(context.Background(), "good"))
	assert.Equal(t, "good", gotToken)

	assert.Error(t, svc.RevokeToken(context.Background(), "bad"))

	gotToken = ""
	require.NoError(t, svc.RevokeToken(context.Background(), ""))
	assert.Equal(t, "", gotToken)
}

func expiredToken() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  "old-access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(-time.Hour),
	}
}

func TestGetAuthenticatedClient_Refresh(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantToken  bool
		wantAccess string
	}{
		{
			name:       "refreshed token is saved",
			status:     http.StatusOK,
			body:       `{"access_token": "new-access", "token_type": "Bearer", "expires_in": 3600}`,
			wantToken:  true,
			wantAccess: "new-access",
		},
		{
			name:       "server error keeps the stored token",
			status:     http.StatusInternalServerError,
			body:       `{"error": "backend_error"}`,
			wantToken:  true,
			wantAccess: "old-access",
		},
		{
			name:      "revoked grant deletes the stored token",
			status:    http.StatusBadRequest,
			body:      `{"error": "invalid_grant", "error_description": "Token has been expired or revoked."}`,
			wantErr:   ErrTokenRevoked,
			wantToken: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			svc := newTestService(t)
			svc.oauthConfig.Endpoint.TokenURL = server.URL
			require.NoError(t, svc.tokenService.SaveToken(expiredToken()))

			client, token, err := svc.GetAuthenticatedClient(context.Background())
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAccess == "new-access":
				require.NoError(t, err)
				assert.NotNil(t, client)
				assert.Equal(t, "new-access", token.AccessToken)
			default:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrTokenRevoked)
			}

			stored, loadErr := svc.tokenService.LoadToken()
			if !tt.wantToken {
				assert.ErrorIs(t, loadErr, os.ErrNotExist)
				return
			}
			require.NoError(t, loadErr)
			assert.Equal(t, tt.wantAccess, stored.AccessToken)
			assert.Equal(t, "refresh", stored.RefreshToken)
		})
	}
}

func TestGetAuthenticatedClient_ValidTokenIsNotRewritten(t *testing.T) {
	svc := newTestService(t)
	svc.oauthConfig.Endpoint.TokenURL = "http://127.0.0.1:0/unreachable"

	valid := &oauth2.Token{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", Expiry: time.Now().Add(time.Hour)}
	require.NoError(t, svc.tokenService.SaveToken(valid))

	recorder := &recordingTokenService{TokenService: svc.tokenService}
	svc.tokenService = recorder

	_, token, err := svc.GetAuthenticatedClient(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access", token.AccessToken)
	assert.Zero(t, recorder.saves)
}

type recordingTokenService struct {
	token_manager.TokenService
	saves int
}

func (r *recordingTokenService) SaveToken(token *oauth2.Token) error {
	r.saves++
	return r.TokenService.SaveToken(token)
}
