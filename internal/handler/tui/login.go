package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"TUI_video_metadata/infrastructure/auth"
	"TUI_video_metadata/infrastructure/logger"
	"TUI_video_metadata/internal/handler/server"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/pkg/browser"
	"golang.org/x/oauth2"
)

type authURLGeneratedMsg struct{ url string }
type authCodeMsg struct{ code string }
type authSuccessMsg struct{ token *oauth2.Token }
type authErrorMsg struct{ err error }

type loginState int

const (
	loginIdle loginState = iota
	loginAuthURLGenerated
	loginWaitingForCallback
	loginExchangingToken
	loginSuccess
	loginError
)

const idleLoginStatus = "Press Enter to sign in with Google..."

type LoginModel struct {
	parent           *AppModel
	state            loginState
	authURL          string
	errorMsg         string
	statusMsg        string
	csrfState        string
	httpServerCancel context.CancelFunc
	openBrowser      func(url string) error
}

func NewLoginModel(parent *AppModel) *LoginModel {
	return &LoginModel{
		parent:      parent,
		state:       loginIdle,
		statusMsg:   idleLoginStatus,
		openBrowser: browser.OpenURL,
	}
}

func (m *LoginModel) Init() tea.Cmd {
	m.state = loginIdle
	m.errorMsg = ""
	m.statusMsg = idleLoginStatus
	m.csrfState = uuid.NewString()
	return nil
}

func generateAuthURLCmd(authService auth.AuthenticationService, state string) tea.Cmd {
	return func() tea.Msg {
		return authURLGeneratedMsg{url: authService.GenerateAuthURL(state)}
	}
}

// waitForCallbackCmd starts the local redirect server and blocks until the
// browser comes back or ctx is cancelled.
func waitForCallbackCmd(
	ctx context.Context,
	callbackHandler server.CallbackHandler,
	expectedState string,
	cfg CallbackConfig,
	log logger.Logger,
) tea.Cmd {
	return func() tea.Msg {
		resultChan := make(chan server.OAuthCallbackResult, 1)

		srvCtx, srvCancel := context.WithCancel(ctx)
		defer srvCancel()

		log.Info(fmt.Sprintf("Starting callback server on %s", cfg.Addr))
		_ = callbackHandler.ListenAndServe(srvCtx, expectedState, cfg.Addr, cfg.Path, resultChan)

		select {
		case res := <-resultChan:
			if res.Error != nil {
				return authErrorMsg{err: fmt.Errorf("callback error: %w", res.Error)}
			}
			return authCodeMsg{code: res.Code}
		case <-ctx.Done():
			log.Info("Callback cancelled by the application context.")
			return authErrorMsg{err: fmt.Errorf("login cancelled: %w", ctx.Err())}
		}
	}
}

func exchangeCodeCmd(ctx context.Context, authService auth.AuthenticationService, code string) tea.Cmd {
	return func() tea.Msg {
		token, err := authService.ExchangeCodeForToken(ctx, code)
		if err != nil {
			return authErrorMsg{err: fmt.Errorf("error while exchanging token: %w", err)}
		}
		return authSuccessMsg{token: token}
	}
}

func (m *LoginModel) stopCallbackServer() {
	if m.httpServerCancel != nil {
		m.httpServerCancel()
		m.httpServerCancel = nil
		m.parent.logger.Info("Callback server stopped.")
	}
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyEsc:
			m.stopCallbackServer()
			return m, m.parent.send(showWelcomeMsg{})
		case (m.state == loginIdle || m.state == loginError) && msg.Type == tea.KeyEnter:
			m.state = loginAuthURLGenerated
			m.statusMsg = "Generating authentication URL..."
			m.errorMsg = ""
			return m, generateAuthURLCmd(m.parent.authService, m.csrfState)
		}

	case authURLGeneratedMsg:
		m.authURL = msg.url
		m.statusMsg = "Open this link in your browser to sign in:\n"
		go func(url string) {
			if err := m.openBrowser(url); err != nil {
				m.parent.logger.Error("Could not open the browser", err)
			}
		}(msg.url)

		m.state = loginWaitingForCallback

		serverCtx, serverCancel := context.WithCancel(m.parent.appContext)
		m.httpServerCancel = serverCancel

		return m, waitForCallbackCmd(serverCtx, m.parent.callbackHandler, m.csrfState, m.parent.callback, m.parent.logger)

	case authCodeMsg:
		m.stopCallbackServer()
		m.state = loginExchangingToken
		m.statusMsg = "Code received! Exchanging it for a token..."
		return m, exchangeCodeCmd(m.parent.appContext, m.parent.authService, msg.code)

	case authSuccessMsg:
		m.state = loginSuccess
		m.statusMsg = "Signed in! Loading playlists..."
		m.errorMsg = ""
		return m, tea.Sequence(
			tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg { return nil }),
			m.parent.send(showPlaylistsMsg{}),
		)

	case authErrorMsg:
		m.stopCallbackServer()
		m.state = loginError
		m.errorMsg = fmt.Sprintf("Sign in failed: %v", msg.err)
		m.statusMsg = "Press Enter to try again."
		m.parent.logger.Error("Login failed", msg.err)
	}

	return m, nil
}

func (m *LoginModel) View() string {
	var b strings.Builder

	b.WriteString(welcomeTitleStyle.Render("Google Authentication"))
	b.WriteString("\n\n")

	if m.errorMsg != "" {
		b.WriteString(errorMessageStyle.Render(m.errorMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(m.statusMsg)
	b.WriteString("\n")

	if m.state == loginWaitingForCallback && m.authURL != "" {
		b.WriteString(urlStyle.Render(m.authURL))
		b.WriteString("\n\n")
		b.WriteString(welcomePromptStyle.Render("Waiting for the browser..."))
	}

	b.WriteString("\n\n")
	b.WriteString(welcomePromptStyle.Render("(Esc to go back, Ctrl+C to quit)"))
	return docStyle.Render(b.String())
}
