package colorpicker

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const numberBoxWidth = 10

// RGBInputs edits a color through three numeric fields, one per channel.
//
// A field commits when it is submitted or loses focus. Text that is not a
// number becomes 0, fractions round half up, and values are clamped to
// 0-255 before the color is updated.
type RGBInputs struct {
	KeyMap KeyMap

	id     int
	color  Color
	fields fieldGroup
}

// NewRGBInputs creates RGB inputs showing c, clamped.
func NewRGBInputs(c Color) RGBInputs {
	c = c.Clamped()
	valid := integerInRange(0, maxChannel)
	m := RGBInputs{
		KeyMap: DefaultKeyMap(),
		id:     nextID(),
		color:  c,
		fields: newFieldGroup(
			newField("R:", "", numberBoxWidth, valid),
			newField("G:", "", numberBoxWidth, valid),
			newField("B:", "", numberBoxWidth, valid),
		),
	}
	m.syncFields()
	return m
}

// ID returns the identifier carried by these inputs' messages.
func (m RGBInputs) ID() int { return m.id }

// Color returns the committed color.
func (m RGBInputs) Color() Color { return m.color }

// SetColor clamps and stores c, rewriting every field. The returned command
// emits RGBChangedMsg when the color changed.
func (m *RGBInputs) SetColor(c Color) tea.Cmd {
	if !m.setColor(c) {
		return nil
	}
	return emit(RGBChangedMsg{ID: m.id, Color: m.color})
}

func (m *RGBInputs) setColor(c Color) bool {
	c = c.Clamped()
	changed := c != m.color
	m.color = c
	m.syncFields()
	return changed
}

func (m *RGBInputs) syncFields() {
	values := [3]int{m.color.R, m.color.G, m.color.B}
	for i, v := range values {
		m.fields.fields[i].SetValue(strconv.Itoa(v))
	}
}

// commit reads all fields back into the color.
func (m *RGBInputs) commit() tea.Cmd {
	var values [3]int
	for i, f := range m.fields.fields {
		n, _ := parseNumber(f.Value())
		values[i] = roundHalfUp(clampFloat(n, 0, maxChannel))
	}
	return m.SetColor(Color{R: values[0], G: values[1], B: values[2]})
}

// Focus focuses the first field.
func (m *RGBInputs) Focus() tea.Cmd { return m.focusAt(0) }

// FocusLast focuses the last field.
func (m *RGBInputs) FocusLast() tea.Cmd { return m.focusAt(len(m.fields.fields) - 1) }

// Blur removes focus, committing the field that had it.
func (m *RGBInputs) Blur() tea.Cmd {
	if m.fields.blur() {
		return m.commit()
	}
	return nil
}

// Focused reports whether any field has focus.
func (m RGBInputs) Focused() bool { return m.fields.focused() }

// SetDisabled toggles whether the fields accept input.
func (m *RGBInputs) SetDisabled(disabled bool) { m.fields.setDisabled(disabled) }

func (m *RGBInputs) focusAt(i int) tea.Cmd {
	cmd, blurred := m.fields.focusAt(i)
	if blurred {
		return tea.Batch(m.commit(), cmd)
	}
	return cmd
}

// focusStep moves focus by delta, reporting false without changing focus
// when that would leave the group.
func (m *RGBInputs) focusStep(delta int) (tea.Cmd, bool) {
	next := m.fields.focus + delta
	if next < 0 || next >= len(m.fields.fields) {
		return nil, false
	}
	return m.focusAt(next), true
}

// Width returns the rendered width.
func (m RGBInputs) Width() int { return m.fields.width() }

// Height returns the rendered height.
func (m RGBInputs) Height() int { return len(m.fields.fields) * fieldRows }

// Update handles editing, submission, focus cycling and clicks.
func (m RGBInputs) Update(msg tea.Msg) (RGBInputs, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if i := m.fields.fieldAt(msg.X, msg.Y); i >= 0 && i != m.fields.focus {
			return m, m.focusAt(i)
		}
		return m, nil
	case tea.KeyMsg:
		if !m.Focused() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.KeyMap.Submit):
			return m, m.commit()
		case key.Matches(msg, m.KeyMap.Next):
			if cmd, ok := m.focusStep(1); ok {
				return m, cmd
			}
			return m, m.Focus()
		case key.Matches(msg, m.KeyMap.Prev):
			if cmd, ok := m.focusStep(-1); ok {
				return m, cmd
			}
			return m, m.FocusLast()
		}
	}

	var cmd tea.Cmd
	m.fields, cmd = m.fields.update(msg)
	return m, cmd
}

// View renders the three labelled fields stacked vertically.
func (m RGBInputs) View() string { return m.fields.View() }
