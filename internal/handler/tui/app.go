package tui

import (
	"fmt"

	"TUI_video_metadata/infrastructure/auth"
	"TUI_video_metadata/infrastructure/logger"
	"TUI_video_metadata/infrastructure/token_manager"
	"TUI_video_metadata/internal/core/domain"
	"TUI_video_metadata/internal/core/usecases"
	"TUI_video_metadata/internal/handler/server"
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

type currentView int

const (
	viewWelcome currentView = iota
	viewLogin
	viewPlaylists
	viewVideos
	viewVideo
	viewURL
)

// CallbackConfig tells the login screen where the OAuth redirect lands.
type CallbackConfig struct {
	Addr string
	Path string
}

type AppModel struct {
	authService     auth.AuthenticationService
	callbackHandler server.CallbackHandler
	videoUseCase    usecases.VideoUseCase
	tokenService    token_manager.TokenService
	logger          logger.Logger
	callback        CallbackConfig

	welcomeModel   *WelcomeModel
	loginModel     *LoginModel
	playlistsModel *PlaylistsModel
	videosModel    *VideosModel
	videoModel     *VideoModel
	urlModel       *URLModel

	currentView currentView
	err         error

	appContext context.Context
	cancelApp  context.CancelFunc

	width  int
	height int
}

func NewAppModel(
	authSvc auth.AuthenticationService,
	cbHandler server.CallbackHandler,
	videoUC usecases.VideoUseCase,
	tokenSvc token_manager.TokenService,
	log logger.Logger,
	callback CallbackConfig,
) *AppModel {
	// cancelled on quit; every request made by the screens derives from it
	appCtx, cancel := context.WithCancel(context.Background())

	m := &AppModel{
		authService:     authSvc,
		callbackHandler: cbHandler,
		videoUseCase:    videoUC,
		tokenService:    tokenSvc,
		logger:          log,
		callback:        callback,

		appContext: appCtx,
		cancelApp:  cancel,
	}

	m.welcomeModel = NewWelcomeModel(m)
	m.loginModel = NewLoginModel(m)
	m.playlistsModel = NewPlaylistsModel(m)
	m.urlModel = NewURLModel(m)
	m.videosModel = NewVideosModel(m, domain.Playlist{})
	m.videoModel = NewVideoModel(m, nil, viewPlaylists)

	m.currentView = viewWelcome
	return m
}

func (m *AppModel) Init() tea.Cmd {
	return func() tea.Msg {
		_, err := m.tokenService.LoadToken()
		if err == nil {
			m.logger.Info("Existing token found, showing playlists")
			return showPlaylistsMsg{}
		}
		m.logger.Info("No valid token, showing welcome screen")
		return showWelcomeMsg{}
	}
}

// Navigation messages sent by the screens.
type showWelcomeMsg struct{}
type showLoginMsg struct{}
type showPlaylistsMsg struct{}
type showVideosMsg struct{ playlist domain.Playlist }
type showVideoMsg struct {
	video *domain.VideoMetadata
	back  currentView
}
type showURLMsg struct{}

// backToVideosMsg returns to the list without refetching it.
type backToVideosMsg struct{}

func (m *AppModel) send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.logger.Info("Ctrl+C pressed, quitting.")
			m.cancelApp()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	switch msg := msg.(type) {
	case showWelcomeMsg:
		m.switchTo(viewWelcome)
		cmds = append(cmds, m.welcomeModel.Init())

	case showLoginMsg:
		m.switchTo(viewLogin)
		cmds = append(cmds, m.loginModel.Init())

	case showPlaylistsMsg:
		// recreated every time so the list is fetched again
		m.switchTo(viewPlaylists)
		m.playlistsModel = NewPlaylistsModel(m)
		cmds = append(cmds, m.playlistsModel.Init())

	case showVideosMsg:
		m.switchTo(viewVideos)
		m.videosModel = NewVideosModel(m, msg.playlist)
		cmds = append(cmds, m.videosModel.Init())

	case backToVideosMsg:
		m.switchTo(viewVideos)
		m.videosModel.resume()

	case showVideoMsg:
		m.switchTo(viewVideo)
		m.videoModel = NewVideoModel(m, msg.video, msg.back)
		cmds = append(cmds, m.videoModel.Init())

	case showURLMsg:
		m.switchTo(viewURL)
		m.urlModel = NewURLModel(m)
		cmds = append(cmds, m.urlModel.Init())
	}

	var current tea.Model
	switch m.currentView {
	case viewWelcome:
		current = m.welcomeModel
	case viewLogin:
		current = m.loginModel
	case viewPlaylists:
		current = m.playlistsModel
	case viewVideos:
		current = m.videosModel
	case viewVideo:
		current = m.videoModel
	case viewURL:
		current = m.urlModel
	}

	if current != nil {
		_, cmd := current.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *AppModel) switchTo(view currentView) {
	m.currentView = view
	m.err = nil
}

func (m *AppModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("An error occurred: %v\n\n(Ctrl+C to quit)", m.err)
	}

	switch m.currentView {
	case viewWelcome:
		return m.welcomeModel.View()
	case viewLogin:
		return m.loginModel.View()
	case viewPlaylists:
		return m.playlistsModel.View()
	case viewVideos:
		return m.videosModel.View()
	case viewVideo:
		return m.videoModel.View()
	case viewURL:
		return m.urlModel.View()
	default:
		return "Unknown view…"
	}
}
