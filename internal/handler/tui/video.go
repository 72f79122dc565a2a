package tui

import (
	"TUI_video_metadata/internal/core/domain"
	"TUI_video_metadata/internal/handler/render"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// VideoModel shows a single video.
type VideoModel struct {
	parent *AppModel
	video  *domain.VideoMetadata
	back   currentView
}

func NewVideoModel(parent *AppModel, video *domain.VideoMetadata, back currentView) *VideoModel {
	return &VideoModel{parent: parent, video: video, back: back}
}

func (m *VideoModel) Init() tea.Cmd {
	if m.video != nil {
		m.parent.logger.Info("VideoModel: showing " + m.video.ID())
	}
	return nil
}

func (m *VideoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "backspace", "q":
			switch m.back {
			case viewVideos:
				return m, m.parent.send(backToVideosMsg{})
			case viewURL:
				return m, m.parent.send(showURLMsg{})
			default:
				return m, m.parent.send(showPlaylistsMsg{})
			}
		}
	}
	return m, nil
}

func (m *VideoModel) View() string {
	if m.video == nil {
		return docStyle.Render("No video selected.")
	}

	width := m.parent.width - 4
	var b strings.Builder
	b.WriteString(render.VideoDetail(m.video, width))
	b.WriteString("\n")
	b.WriteString(welcomePromptStyle.Render("Esc to go back, Ctrl+C to quit."))
	return docStyle.Render(b.String())
}
