package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.finished {
		return ""
	}

	ox, _ := m.offset()
	body := lipgloss.NewStyle().MarginLeft(ox).Render(m.widget.View())

	sections := []string{titleStyle.Render(m.title), "", body}

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		sections = append(sections, sectionStyle.Render(style.Render(m.status)))
	}

	sections = append(sections, sectionStyle.Render(m.help.ShortHelpView(m.helpBindings())))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) helpBindings() []key.Binding {
	widgetKeys := m.widget.KeyMap()
	return []key.Binding{
		widgetKeys.Next,
		widgetKeys.Submit,
		m.keys.Copy,
		m.keys.Accept,
		m.keys.Cancel,
	}
}
