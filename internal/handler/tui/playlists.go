package tui

import (
	"fmt"
	"strings"
	"time"

	"TUI_video_metadata/internal/core/domain"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const refreshCooldown = 5 * time.Minute

type playlistsLoadedMsg struct{ playlists []domain.Playlist }
type playlistLoadErrorMsg struct{ err error }

type PlaylistsModel struct {
	parent        *AppModel
	playlists     []domain.Playlist
	cursor        int
	err           error
	loading       bool
	opening       bool
	spinner       spinner.Model
	lastRefresh   time.Time
	statusMessage string
}

func NewPlaylistsModel(parent *AppModel) *PlaylistsModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = statusMessageStyle

	return &PlaylistsModel{
		parent:  parent,
		loading: true,
		spinner: s,
	}
}

func (m *PlaylistsModel) Init() tea.Cmd {
	m.loading = true
	m.err = nil
	m.playlists = nil
	m.statusMessage = ""
	m.parent.logger.Info("PlaylistsModel: fetching playlists…")

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		playlists, err := m.parent.videoUseCase.GetMinePlaylists(m.parent.appContext)
		if err != nil {
			return playlistLoadErrorMsg{err: err}
		}
		return playlistsLoadedMsg{playlists: playlists}
	})
}

// openPlaylistCmd loads the videos of a playlist.
func (m *PlaylistsModel) openPlaylistCmd(playlistID string) tea.Cmd {
	return func() tea.Msg {
		playlist, err := m.parent.videoUseCase.GetPlaylistByURL(m.parent.appContext, playlistID)
		if err != nil {
			return playlistLoadErrorMsg{err: err}
		}
		return showVideosMsg{playlist: playlist}
	}
}

func (m *PlaylistsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading && !m.opening {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case playlistsLoadedMsg:
		m.loading = false
		m.playlists = msg.playlists
		m.cursor = 0
		m.lastRefresh = time.Now()
		return m, nil

	case playlistLoadErrorMsg:
		m.loading = false
		m.opening = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.err != nil && msg.Type == tea.KeyEnter {
			return m, m.parent.send(showLoginMsg{})
		}

		if msg.Type == tea.KeyCtrlR {
			if m.lastRefresh.IsZero() || time.Since(m.lastRefresh) >= refreshCooldown {
				m.parent.logger.Info("PlaylistsModel: Ctrl+R pressed, reloading playlists…")
				return m, m.Init()
			}
			remaining := refreshCooldown - time.Since(m.lastRefresh)
			m.statusMessage = fmt.Sprintf(
				"Wait %02d:%02d before refreshing again.",
				int(remaining.Minutes()), int(remaining.Seconds())%60,
			)
			return m, nil
		}

		if m.loading || m.opening {
			return m, nil
		}

		// index 0 is "open by URL", 1..N are the playlists
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.playlists) {
				m.cursor++
			}
		case "enter":
			if m.cursor == 0 {
				return m, m.parent.send(showURLMsg{})
			}
			selected := m.playlists[m.cursor-1]
			m.parent.logger.Info(fmt.Sprintf("Playlist selected: %s (ID: %s)", selected.Title, selected.ID))
			m.opening = true
			m.statusMessage = fmt.Sprintf("Loading videos of \"%s\"…", selected.Title)
			return m, tea.Batch(m.spinner.Tick, m.openPlaylistCmd(selected.ID))
		case "esc":
			m.parent.cancelApp()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *PlaylistsModel) View() string {
	var b strings.Builder
	b.WriteString(listHeaderStyle.Render("Your Playlists"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading playlists…\n\n")
		b.WriteString(welcomePromptStyle.Render("Ctrl+C to quit."))
		return docStyle.Render(b.String())
	}

	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(welcomePromptStyle.Render("Press Enter to sign in again."))
		b.WriteString("\n")
		b.WriteString(welcomePromptStyle.Render("Ctrl+R to reload. Ctrl+C to quit."))
		return docStyle.Render(b.String())
	}

	b.WriteString(renderItem("Open a video or playlist by URL", m.cursor == 0))
	b.WriteString("\n")

	for i, p := range m.playlists {
		b.WriteString(renderItem(p.Title, m.cursor == i+1))
		b.WriteString("\n")
	}

	if len(m.playlists) == 0 {
		b.WriteString(welcomePromptStyle.Render("  (no playlists on this account)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(welcomePromptStyle.Render("↑/↓ or j/k to move, Enter to open."))
	b.WriteString("\n")
	b.WriteString(welcomePromptStyle.Render("Ctrl+R to reload (5m cooldown). Esc or Ctrl+C to quit."))

	if m.statusMessage != "" {
		b.WriteString("\n\n")
		if m.opening {
			b.WriteString(m.spinner.View() + " ")
		}
		b.WriteString(statusMessageStyle.Render(m.statusMessage))
	}

	return docStyle.Render(b.String())
}
