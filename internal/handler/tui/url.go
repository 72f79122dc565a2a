package tui

import (
	"errors"
	"fmt"
	"strings"

	"TUI_video_metadata/internal/core/domain"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errUnrecognizedURL = errors.New("not a YouTube video or playlist link")

type urlLookupErrorMsg struct {
	err error
}

// URLModel resolves a pasted link. Video links win over playlist links, so
// "watch?v=...&list=..." opens the video.
type URLModel struct {
	parent  *AppModel
	input   textinput.Model
	spinner spinner.Model
	loading bool
	err     error
}

func NewURLModel(parent *AppModel) *URLModel {
	ti := textinput.New()
	ti.Placeholder = "https://www.youtube.com/watch?v=…"
	ti.CharLimit = 512
	ti.Width = 60
	ti.Prompt = "> "

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = statusMessageStyle

	return &URLModel{
		parent:  parent,
		input:   ti,
		spinner: s,
	}
}

func (m *URLModel) Init() tea.Cmd {
	m.input.Reset()
	m.loading = false
	m.err = nil
	return m.input.Focus()
}

func (m *URLModel) lookupCmd(raw string) tea.Cmd {
	ctx := m.parent.appContext
	uc := m.parent.videoUseCase

	if _, ok := domain.ParseVideoID(raw); ok {
		return func() tea.Msg {
			video, err := uc.GetVideoByURL(ctx, raw)
			if err != nil {
				return urlLookupErrorMsg{err: err}
			}
			return showVideoMsg{video: video, back: viewURL}
		}
	}

	if _, ok := domain.ParsePlaylistID(raw); ok {
		return func() tea.Msg {
			playlist, err := uc.GetPlaylistByURL(ctx, raw)
			if err != nil {
				return urlLookupErrorMsg{err: err}
			}
			return showVideosMsg{playlist: playlist}
		}
	}

	return nil
}

func (m *URLModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case urlLookupErrorMsg:
		m.loading = false
		m.err = msg.err
		m.parent.logger.Error("URL lookup failed", msg.err)
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, m.parent.send(showPlaylistsMsg{})
		case tea.KeyEnter:
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" {
				m.err = errors.New("URL cannot be empty")
				return m, nil
			}

			cmd := m.lookupCmd(raw)
			if cmd == nil {
				m.err = fmt.Errorf("%w: %q", errUnrecognizedURL, raw)
				return m, nil
			}

			m.err = nil
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, cmd)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *URLModel) View() string {
	var b strings.Builder
	b.WriteString(listHeaderStyle.Render("Open by URL"))
	b.WriteString("\n\n")
	b.WriteString("Paste a YouTube video or playlist link and press Enter:\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.loading {
		b.WriteString(m.spinner.View() + " " + statusMessageStyle.Render("Looking it up…"))
		b.WriteString("\n\n")
	}
	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	b.WriteString(welcomePromptStyle.Render("Enter to open, Esc to go back, Ctrl+C to quit."))
	return docStyle.Render(b.String())
}
