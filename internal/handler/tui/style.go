package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle = lipgloss.NewStyle().
			Margin(1, 2)

	welcomeTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				Padding(1, 0)
	welcomePromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{
			Light: "#A49FA5",
			Dark:  "#777777",
		})

	listHeaderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")).
			MarginBottom(1).
			PaddingBottom(1)
	listItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
	selectedListItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("62")).
				SetString("> ")

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#04B575"))
	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)
)

func renderItem(label string, selected bool) string {
	if selected {
		return selectedListItemStyle.Render(label)
	}
	return listItemStyle.Render(label)
}
