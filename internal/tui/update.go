package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			m.finished = true
			m.log.Info("cancelled")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			// Commit the field being edited so its value is the one accepted.
			m, _ = m.blur()
			m.finished = true
			m.log.DebugFields("accepted", map[string]any{"hex": m.widget.Color().Hex()})
			return m, tea.Quit
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyCmd()
		}
	case tea.MouseMsg:
		ox, oy := m.offset()
		msg.X -= ox
		msg.Y -= oy
		return m.forward(msg)
	case copiedMsg:
		m.handleCopied(msg)
		return m, nil
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.widget, cmd = m.widget.Update(msg)
	m.noteColor()
	return m, cmd
}

func (m Model) blur() (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.widget, cmd = m.widget.Blur()
	m.noteColor()
	return m, cmd
}

func (m *Model) noteColor() {
	if c := m.widget.Color(); c != m.last {
		m.log.DebugFields("color changed", map[string]any{"from": m.last.Hex(), "to": c.Hex()})
		m.last = c
	}
}

func (m Model) copyCmd() tea.Cmd {
	hex := m.widget.Color().Hex()
	copyFn := m.copy
	return func() tea.Msg {
		res, err := copyFn(hex)
		return copiedMsg{hex: hex, result: res, err: err}
	}
}

func (m *Model) handleCopied(msg copiedMsg) {
	if msg.err != nil {
		m.status = fmt.Sprintf("copy failed: %v", msg.err)
		m.statusErr = true
		m.log.Error(msg.err, "copy failed")
		return
	}

	m.statusErr = false
	m.status = fmt.Sprintf("copied %s (%s)", msg.hex, msg.result.Method)
	if msg.result.FilePath != "" {
		m.status = fmt.Sprintf("saved %s to %s", msg.hex, msg.result.FilePath)
	}
	m.log.With("method", string(msg.result.Method)).Info("copied color")
}
