package colorpicker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const hexBoxWidth = 13

// HexInput edits a color written in hex. The field shows the six digits
// after a '#' label; three-digit shorthand is accepted on entry.
type HexInput struct {
	KeyMap KeyMap

	id     int
	color  Color
	fields fieldGroup
}

// NewHexInput creates a hex input showing c, clamped.
func NewHexInput(c Color) HexInput {
	valid := func(s string) bool {
		_, err := ParseHex(s)
		return err == nil
	}
	m := HexInput{
		KeyMap: DefaultKeyMap(),
		id:     nextID(),
		color:  c.Clamped(),
		fields: newFieldGroup(newField("#", "", hexBoxWidth, valid)),
	}
	m.syncField()
	return m
}

// ID returns the identifier carried by this input's messages.
func (m HexInput) ID() int { return m.id }

// Value returns the committed color as "#RRGGBB".
func (m HexInput) Value() string { return m.color.Hex() }

// Color returns the committed color.
func (m HexInput) Color() Color { return m.color }

// SetValue parses s and stores the color it names. Invalid input returns an
// error and leaves the value unchanged.
func (m *HexInput) SetValue(s string) (tea.Cmd, error) {
	c, err := ParseHex(s)
	if err != nil {
		return nil, err
	}
	return m.SetColor(c), nil
}

// SetColor clamps and stores c. The returned command emits HexChangedMsg
// when the color changed.
func (m *HexInput) SetColor(c Color) tea.Cmd {
	if !m.setColor(c) {
		return nil
	}
	return emit(HexChangedMsg{ID: m.id, Color: m.color})
}

func (m *HexInput) setColor(c Color) bool {
	c = c.Clamped()
	changed := c != m.color
	m.color = c
	m.syncField()
	return changed
}

func (m *HexInput) syncField() {
	m.fields.fields[0].SetValue(strings.TrimPrefix(m.color.Hex(), "#"))
}

// commit applies the typed value, reverting the field when it is not a
// valid hex color.
func (m *HexInput) commit() tea.Cmd {
	cmd, err := m.SetValue(m.fields.fields[0].Value())
	if err != nil {
		m.syncField()
		return nil
	}
	return cmd
}

// Focus focuses the field.
func (m *HexInput) Focus() tea.Cmd {
	cmd, _ := m.fields.focusAt(0)
	return cmd
}

// Blur removes focus, committing the field.
func (m *HexInput) Blur() tea.Cmd {
	if m.fields.blur() {
		return m.commit()
	}
	return nil
}

// Focused reports whether the field has focus.
func (m HexInput) Focused() bool { return m.fields.focused() }

// SetDisabled toggles whether the field accepts input.
func (m *HexInput) SetDisabled(disabled bool) { m.fields.setDisabled(disabled) }

// Width returns the rendered width.
func (m HexInput) Width() int { return m.fields.width() }

// Height returns the rendered height.
func (m HexInput) Height() int { return fieldRows }

// Update handles editing, submission and clicks.
func (m HexInput) Update(msg tea.Msg) (HexInput, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			!m.Focused() && m.fields.fieldAt(msg.X, msg.Y) == 0 {
			return m, m.Focus()
		}
		return m, nil
	case tea.KeyMsg:
		if !m.Focused() {
			return m, nil
		}
		if key.Matches(msg, m.KeyMap.Submit) {
			return m, m.commit()
		}
	}

	var cmd tea.Cmd
	m.fields, cmd = m.fields.update(msg)
	return m, cmd
}

// View renders the labelled field.
func (m HexInput) View() string { return m.fields.View() }
