package colorpicker

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	fieldFocusedStyle = fieldStyle.BorderForeground(lipgloss.Color("39"))

	fieldInvalidStyle = fieldStyle.BorderForeground(lipgloss.Color("196"))

	fieldDisabledStyle = fieldStyle.
				BorderForeground(lipgloss.Color("236")).
				Foreground(lipgloss.Color("244"))

	previewStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center, lipgloss.Center)
)
