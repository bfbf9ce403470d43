package colorpicker

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fieldRows is the height of a bordered field.
const fieldRows = 3

// field is a labelled single-line text input.
type field struct {
	label    string
	input    textinput.Model
	boxWidth int
	valid    func(string) bool
	disabled bool
}

func newField(label, value string, boxWidth int, valid func(string) bool) field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 16
	// Border and horizontal padding take four columns; one more for the cursor.
	ti.Width = max(boxWidth-5, 1)
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)

	return field{label: label, input: ti, boxWidth: boxWidth, valid: valid}
}

func (f field) Value() string { return f.input.Value() }

func (f *field) SetValue(value string) {
	f.input.SetValue(value)
	f.input.CursorEnd()
}

func (f *field) Focus() tea.Cmd {
	if f.disabled {
		return nil
	}
	return f.input.Focus()
}

func (f *field) Blur() { f.input.Blur() }

func (f field) Focused() bool { return f.input.Focused() }

func (f field) Update(msg tea.Msg) (field, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// width is the number of columns the label and box occupy.
func (f field) width() int {
	return lipgloss.Width(f.label) + f.boxWidth
}

func (f field) View() string {
	style := fieldStyle
	switch {
	case f.disabled:
		style = fieldDisabledStyle
	case f.valid != nil && !f.valid(f.input.Value()):
		style = fieldInvalidStyle
	case f.input.Focused():
		style = fieldFocusedStyle
	}
	// Style widths include padding but not the border.
	box := style.Width(f.boxWidth - 2).Render(f.input.View())
	label := labelStyle.Height(fieldRows).AlignVertical(lipgloss.Center).Render(f.label)
	return lipgloss.JoinHorizontal(lipgloss.Top, label, box)
}

// parseNumber reads a field value as a number, reporting false for anything
// that is not a finite number.
func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// integerInRange builds a validity check for whole numbers in [lo, hi].
func integerInRange(lo, hi int) func(string) bool {
	return func(s string) bool {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		return err == nil && n >= lo && n <= hi
	}
}

// fieldGroup manages focus across a fixed set of fields.
type fieldGroup struct {
	fields []field
	focus  int
}

func newFieldGroup(fields ...field) fieldGroup {
	return fieldGroup{fields: fields, focus: -1}
}

func (g fieldGroup) focused() bool { return g.focus >= 0 }

// focusAt moves focus to field i, reporting whether a previously focused
// field lost focus and so needs committing.
func (g *fieldGroup) focusAt(i int) (tea.Cmd, bool) {
	if i < 0 || i >= len(g.fields) || g.fields[i].disabled {
		return nil, false
	}
	blurred := g.blur()
	g.focus = i
	return g.fields[i].Focus(), blurred
}

func (g *fieldGroup) blur() bool {
	if g.focus < 0 {
		return false
	}
	g.fields[g.focus].Blur()
	g.focus = -1
	return true
}

func (g fieldGroup) update(msg tea.Msg) (fieldGroup, tea.Cmd) {
	if g.focus < 0 {
		return g, nil
	}
	var cmd tea.Cmd
	g.fields[g.focus], cmd = g.fields[g.focus].Update(msg)
	return g, cmd
}

// matches reports whether every field still shows the given text.
func (g fieldGroup) matches(texts [3]string) bool {
	for i, f := range g.fields {
		if i >= len(texts) || f.Value() != texts[i] {
			return false
		}
	}
	return true
}

func (g *fieldGroup) setDisabled(disabled bool) {
	if disabled {
		g.blur()
	}
	for i := range g.fields {
		g.fields[i].disabled = disabled
	}
}

// fieldAt returns the index of the field covering row y of a vertical stack.
func (g fieldGroup) fieldAt(x, y int) int {
	if y < 0 || x < 0 {
		return -1
	}
	i := y / fieldRows
	if i >= len(g.fields) || x >= g.fields[i].width() {
		return -1
	}
	return i
}

func (g fieldGroup) width() int {
	w := 0
	for _, f := range g.fields {
		w = max(w, f.width())
	}
	return w
}

func (g fieldGroup) View() string {
	rows := make([]string, len(g.fields))
	for i, f := range g.fields {
		rows[i] = f.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
