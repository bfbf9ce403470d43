package colorpicker

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HSVInputs edits hue (0-360), saturation (0-100) and value (0-100) through
// three numeric fields. Commit rules match RGBInputs.
type HSVInputs struct {
	KeyMap KeyMap

	id     int
	hsv    HSV
	fields fieldGroup
}

// NewHSVInputs creates HSV inputs showing hsv, clamped.
func NewHSVInputs(hsv HSV) HSVInputs {
	m := HSVInputs{
		KeyMap: DefaultKeyMap(),
		id:     nextID(),
		hsv:    hsv.Clamped(),
		fields: newFieldGroup(
			newField("H:", "", numberBoxWidth, integerInRange(0, maxHueDegrees)),
			newField("S:", "", numberBoxWidth, integerInRange(0, maxPercent)),
			newField("V:", "", numberBoxWidth, integerInRange(0, maxPercent)),
		),
	}
	m.syncFields()
	return m
}

// ID returns the identifier carried by these inputs' messages.
func (m HSVInputs) ID() int { return m.id }

// HSV returns the committed value.
func (m HSVInputs) HSV() HSV { return m.hsv }

// SetHSV clamps and stores hsv, rewriting every field. The returned command
// emits HSVChangedMsg when the value changed.
func (m *HSVInputs) SetHSV(hsv HSV) tea.Cmd {
	if !m.setHSV(hsv) {
		return nil
	}
	return emit(HSVChangedMsg{ID: m.id, HSV: m.hsv})
}

func (m *HSVInputs) setHSV(hsv HSV) bool {
	hsv = hsv.Clamped()
	changed := hsv != m.hsv
	m.hsv = hsv
	m.syncFields()
	return changed
}

func (m HSVInputs) displayed() [3]string {
	h, s, v := m.hsv.Scaled()
	return [3]string{strconv.Itoa(h), strconv.Itoa(s), strconv.Itoa(v)}
}

func (m *HSVInputs) syncFields() {
	for i, text := range m.displayed() {
		m.fields.fields[i].SetValue(text)
	}
}

// commit reads all fields back into the value. Untouched fields are left
// alone so that committing does not round the stored value to display
// precision.
func (m *HSVInputs) commit() tea.Cmd {
	if m.fields.matches(m.displayed()) {
		return nil
	}
	var values [3]float64
	for i, f := range m.fields.fields {
		values[i], _ = parseNumber(f.Value())
	}
	return m.SetHSV(HSVFromScaled(values[0], values[1], values[2]))
}

// Focus focuses the first field.
func (m *HSVInputs) Focus() tea.Cmd { return m.focusAt(0) }

// FocusLast focuses the last field.
func (m *HSVInputs) FocusLast() tea.Cmd { return m.focusAt(len(m.fields.fields) - 1) }

// Blur removes focus, committing the field that had it.
func (m *HSVInputs) Blur() tea.Cmd {
	if m.fields.blur() {
		return m.commit()
	}
	return nil
}

// Focused reports whether any field has focus.
func (m HSVInputs) Focused() bool { return m.fields.focused() }

// SetDisabled toggles whether the fields accept input.
func (m *HSVInputs) SetDisabled(disabled bool) { m.fields.setDisabled(disabled) }

func (m *HSVInputs) focusAt(i int) tea.Cmd {
	cmd, blurred := m.fields.focusAt(i)
	if blurred {
		return tea.Batch(m.commit(), cmd)
	}
	return cmd
}

func (m *HSVInputs) focusStep(delta int) (tea.Cmd, bool) {
	next := m.fields.focus + delta
	if next < 0 || next >= len(m.fields.fields) {
		return nil, false
	}
	return m.focusAt(next), true
}

// Width returns the rendered width.
func (m HSVInputs) Width() int { return m.fields.width() }

// Height returns the rendered height.
func (m HSVInputs) Height() int { return len(m.fields.fields) * fieldRows }

// Update handles editing, submission, focus cycling and clicks.
func (m HSVInputs) Update(msg tea.Msg) (HSVInputs, tea.Cmd) {
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
func (m HSVInputs) View() string { return m.fields.View() }
