package tui

import (
	"TUI_video_metadata/internal/core/domain"
	"TUI_video_metadata/internal/core/usecases"
	"TUI_video_metadata/internal/handler/render"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type videoLoadErrorMsg struct{ err error }

type sortOption struct {
	key      string
	label    string
	criteria usecases.SortCriteria
}

var sortOptions = []sortOption{
	{"t", "title (A-Z)", usecases.SortByTitle},
	{"d", "duration (shortest first)", usecases.SortByDuration},
	{"u", "upload date (oldest first)", usecases.SortByUploadDate},
	{"v", "views (most first)", usecases.SortByViews},
}

const visibleVideos = 15

// VideosModel lists the videos of one playlist.
type VideosModel struct {
	parent   *AppModel
	playlist domain.Playlist
	cursor   int
	sortedBy string

	loading bool
	spinner spinner.Model

	statusMessage string
	err           error
}

func NewVideosModel(parent *AppModel, playlist domain.Playlist) *VideosModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = statusMessageStyle

	return &VideosModel{
		parent:   parent,
		playlist: playlist,
		spinner:  s,
	}
}

func (m *VideosModel) Init() tea.Cmd {
	m.statusMessage = ""
	m.err = nil
	m.loading = false
	m.parent.logger.Info(fmt.Sprintf("VideosModel: showing playlist '%s' (%d videos)", m.playlist.Title, len(m.playlist.Videos)))
	return nil
}

// resume clears the pending load once the detail screen is left.
func (m *VideosModel) resume() {
	m.loading = false
	m.statusMessage = ""
}

// loadVideoCmd fetches the full record, caption tracks included.
func (m *VideosModel) loadVideoCmd(videoID string) tea.Cmd {
	return func() tea.Msg {
		video, err := m.parent.videoUseCase.GetVideoByURL(m.parent.appContext, videoID)
		if err != nil {
			return videoLoadErrorMsg{err: err}
		}
		return showVideoMsg{video: video, back: viewVideos}
	}
}

func (m *VideosModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case videoLoadErrorMsg:
		m.loading = false
		m.err = msg.err
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.playlist.Videos)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.playlist.Videos) == 0 {
				return m, nil
			}
			selected := m.playlist.Videos[m.cursor]
			m.loading = true
			m.err = nil
			m.statusMessage = fmt.Sprintf("Loading \"%s\"…", selected)
			return m, tea.Batch(m.spinner.Tick, m.loadVideoCmd(selected.ID()))
		case "esc", "backspace":
			return m, m.parent.send(showPlaylistsMsg{})
		default:
			for _, opt := range sortOptions {
				if msg.String() != opt.key {
					continue
				}
				if err := m.parent.videoUseCase.SortPlaylist(&m.playlist, opt.criteria); err != nil {
					m.err = err
					return m, nil
				}
				m.cursor = 0
				m.sortedBy = opt.label
				m.err = nil
				m.statusMessage = "Sorted by " + opt.label + "."
				return m, nil
			}
		}
	}

	return m, nil
}

func (m *VideosModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("%s  (%d videos, %s)", m.playlist.Title, len(m.playlist.Videos), render.Duration(m.playlist.TotalDuration()))
	b.WriteString(listHeaderStyle.Render(header))
	b.WriteString("\n\n")

	if len(m.playlist.Videos) == 0 {
		b.WriteString(welcomePromptStyle.Render("This playlist has no available videos."))
		b.WriteString("\n")
	}

	start := 0
	if m.cursor >= visibleVideos {
		start = m.cursor - visibleVideos + 1
	}
	end := min(start+visibleVideos, len(m.playlist.Videos))
	for i := start; i < end; i++ {
		b.WriteString(renderItem(render.VideoLine(m.playlist.Videos[i]), m.cursor == i))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.statusMessage != "" {
		if m.loading {
			b.WriteString(m.spinner.View() + " ")
		}
		b.WriteString(statusMessageStyle.Render(m.statusMessage))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	keys := make([]string, len(sortOptions))
	for i, opt := range sortOptions {
		keys[i] = opt.key + " " + opt.label
	}
	b.WriteString("\n")
	b.WriteString(welcomePromptStyle.Render("Sort: " + strings.Join(keys, " · ")))
	b.WriteString("\n")
	b.WriteString(welcomePromptStyle.Render("↑/↓ to move, Enter for details, Esc to go back, Ctrl+C to quit."))

	return docStyle.Render(b.String())
}
