package render

import (
	"TUI_video_metadata/internal/core/domain"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(14)
	valueStyle   = lipgloss.NewStyle()
	keywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)
	descriptionStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderTop(true).
				BorderForeground(lipgloss.Color("240")).
				MarginTop(1)
)

// VideoDetail renders every field of a video. width <= 0 disables wrapping of
// the description.
func VideoDetail(v *domain.VideoMetadata, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.Title()))
	b.WriteString("\n\n")

	channel := v.Author()
	if v.HasChannelID() {
		channel = fmt.Sprintf("%s (%s)", v.Author(), v.ChannelID())
	}

	rows := [][2]string{
		{"ID", v.ID()},
		{"Channel", channel},
		{"Uploaded", Date(v.UploadDate())},
		{"Duration", Duration(v.Duration())},
		{"Views", Count(v.Statistics().ViewCount())},
		{"Likes", Count(v.Statistics().LikeCount())},
		{"Rating", rating(v.Statistics())},
		{"Thumbnail", v.Thumbnails().HighResURL()},
		{"Captions", captions(v.CaptionTrackInfos())},
	}
	for _, row := range rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row[0]), valueStyle.Render(row[1])))
		b.WriteString("\n")
	}

	if keywords := v.Keywords(); len(keywords) > 0 {
		rendered := make([]string, len(keywords))
		for i, k := range keywords {
			rendered[i] = keywordStyle.Render("#" + k)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Keywords"), strings.Join(rendered, "")))
		b.WriteString("\n")
	}

	if v.Description() != "" {
		style := descriptionStyle
		if width > 0 {
			style = style.Width(width)
		}
		b.WriteString(style.Render(v.Description()))
		b.WriteString("\n")
	}

	return b.String()
}

// VideoLine is the one-line form used in lists.
func VideoLine(v *domain.VideoMetadata) string {
	return fmt.Sprintf("%s  [%s, %s views]", v, Duration(v.Duration()), Count(v.Statistics().ViewCount()))
}

// Duration formats as h:mm:ss or m:ss.
func Duration(d time.Duration) string {
	total := int64(d.Round(time.Second) / time.Second)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func Date(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("2006-01-02 15:04 -07:00")
}

// Count groups thousands with commas.
func Count(n int64) string {
	return countPrinter.Sprintf("%d", n)
}

func rating(s *domain.Statistics) string {
	if s.LikeCount()+s.DislikeCount() == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2f / 5", s.AverageRating())
}

func captions(tracks []*domain.CaptionTrackInfo) string {
	if len(tracks) == 0 {
		return "none"
	}
	names := make([]string, len(tracks))
	for i, t := range tracks {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
