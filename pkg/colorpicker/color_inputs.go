package colorpicker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type inputSection int

const (
	sectionNone inputSection = iota - 1
	sectionRGB
	sectionHSV
	sectionHex
	sectionCount
)

// hexOffset is where the hex input sits relative to the bottom left of the
// RGB and HSV inputs.
var hexOffset = struct{ x, y int }{x: 1, y: 1}

// ColorInputs composes RGBInputs and HSVInputs side by side with a HexInput
// below them and keeps the three in sync.
type ColorInputs struct {
	KeyMap KeyMap

	id    int
	color Color
	hsv   HSV
	rgbIn RGBInputs
	hsvIn HSVInputs
	hexIn HexInput
	focus inputSection
}

// NewColorInputs creates inputs showing c, clamped.
func NewColorInputs(c Color) ColorInputs {
	c = c.Clamped()
	hsv := c.HSV()
	return ColorInputs{
		KeyMap: DefaultKeyMap(),
		id:     nextID(),
		color:  c,
		hsv:    hsv,
		rgbIn:  NewRGBInputs(c),
		hsvIn:  NewHSVInputs(hsv),
		hexIn:  NewHexInput(c),
		focus:  sectionNone,
	}
}

// ID returns the identifier carried by these inputs' messages.
func (m ColorInputs) ID() int { return m.id }

// Color returns the current color.
func (m ColorInputs) Color() Color { return m.color }

// HSV returns the HSV the inputs display.
func (m ColorInputs) HSV() HSV { return m.hsv }

// RGB returns the RGB inputs.
func (m ColorInputs) RGB() RGBInputs { return m.rgbIn }

// HSVInputs returns the HSV inputs.
func (m ColorInputs) HSVInputs() HSVInputs { return m.hsvIn }

// Hex returns the hex input.
func (m ColorInputs) Hex() HexInput { return m.hexIn }

// SetColor clamps and stores c, updating every input. The returned command
// emits InputsChangedMsg when the color changed.
func (m *ColorInputs) SetColor(c Color) tea.Cmd {
	c = c.Clamped()
	return m.apply(c, settleHSV(c, m.hsv))
}

// apply stores the color and HSV without letting the children emit, and
// emits InputsChangedMsg if either changed.
func (m *ColorInputs) apply(c Color, hsv HSV) tea.Cmd {
	if !m.sync(c, hsv) {
		return nil
	}
	return emit(InputsChangedMsg{ID: m.id, Color: m.color, HSV: m.hsv})
}

func (m *ColorInputs) sync(c Color, hsv HSV) bool {
	c, hsv = c.Clamped(), hsv.Clamped()
	changed := c != m.color || hsv != m.hsv
	m.color, m.hsv = c, hsv
	m.rgbIn.setColor(c)
	m.hsvIn.setHSV(hsv)
	m.hexIn.setColor(c)
	return changed
}

// Focus focuses the first RGB field.
func (m *ColorInputs) Focus() tea.Cmd { return m.focusSection(sectionRGB, false) }

// FocusLast focuses the hex field.
func (m *ColorInputs) FocusLast() tea.Cmd { return m.focusSection(sectionHex, true) }

// Blur removes focus, committing the field that had it. The commit is
// applied before Blur returns, so Color already includes it.
func (m *ColorInputs) Blur() tea.Cmd {
	section := m.focus
	m.blurSection()
	m.focus = sectionNone
	return m.reconcile(section)
}

// reconcile applies the value section s holds if it differs from ours.
func (m *ColorInputs) reconcile(s inputSection) tea.Cmd {
	switch s {
	case sectionRGB:
		if c := m.rgbIn.Color(); c != m.color {
			return m.apply(c, settleHSV(c, m.hsv))
		}
	case sectionHSV:
		if hsv := m.hsvIn.HSV(); hsv != m.hsv {
			return m.apply(ColorFromHSV(hsv), hsv)
		}
	case sectionHex:
		if c := m.hexIn.Color(); c != m.color {
			return m.apply(c, settleHSV(c, m.hsv))
		}
	}
	return nil
}

// Focused reports whether any field has focus.
func (m ColorInputs) Focused() bool { return m.focus != sectionNone }

// SetDisabled toggles whether the fields accept input.
func (m *ColorInputs) SetDisabled(disabled bool) {
	if disabled {
		m.focus = sectionNone
	}
	m.rgbIn.SetDisabled(disabled)
	m.hsvIn.SetDisabled(disabled)
	m.hexIn.SetDisabled(disabled)
}

func (m *ColorInputs) blurSection() tea.Cmd {
	switch m.focus {
	case sectionRGB:
		return m.rgbIn.Blur()
	case sectionHSV:
		return m.hsvIn.Blur()
	case sectionHex:
		return m.hexIn.Blur()
	}
	return nil
}

func (m *ColorInputs) focusSection(s inputSection, last bool) tea.Cmd {
	blur := m.blurSection()
	m.focus = s
	var focus tea.Cmd
	switch s {
	case sectionRGB:
		if last {
			focus = m.rgbIn.FocusLast()
		} else {
			focus = m.rgbIn.Focus()
		}
	case sectionHSV:
		if last {
			focus = m.hsvIn.FocusLast()
		} else {
			focus = m.hsvIn.Focus()
		}
	case sectionHex:
		focus = m.hexIn.Focus()
	}
	return tea.Batch(blur, focus)
}

// focusStep moves focus by one field in direction delta, reporting false
// without changing focus when that would leave the inputs.
func (m *ColorInputs) focusStep(delta int) (tea.Cmd, bool) {
	switch m.focus {
	case sectionRGB:
		if cmd, ok := m.rgbIn.focusStep(delta); ok {
			return cmd, true
		}
	case sectionHSV:
		if cmd, ok := m.hsvIn.focusStep(delta); ok {
			return cmd, true
		}
	}
	next := m.focus + inputSection(delta)
	if next <= sectionNone || next >= sectionCount {
		return nil, false
	}
	return m.focusSection(next, delta < 0), true
}

// Width returns the rendered width.
func (m ColorInputs) Width() int {
	return max(m.rgbIn.Width()+m.hsvIn.Width(), hexOffset.x+m.hexIn.Width())
}

// Height returns the rendered height.
func (m ColorInputs) Height() int {
	return m.topHeight() + hexOffset.y + m.hexIn.Height()
}

func (m ColorInputs) topHeight() int {
	return max(m.rgbIn.Height(), m.hsvIn.Height())
}

// sectionAt returns the section under (x, y) and the coordinates relative
// to it.
func (m ColorInputs) sectionAt(x, y int) (inputSection, int, int) {
	top := m.topHeight()
	switch {
	case y >= 0 && y < top && x >= 0 && x < m.rgbIn.Width():
		return sectionRGB, x, y
	case y >= 0 && y < top && x >= m.rgbIn.Width() && x < m.rgbIn.Width()+m.hsvIn.Width():
		return sectionHSV, x - m.rgbIn.Width(), y
	case y >= top+hexOffset.y && x >= hexOffset.x:
		return sectionHex, x - hexOffset.x, y - top - hexOffset.y
	}
	return sectionNone, x, y
}

// Update handles child changes, editing, focus cycling and clicks.
func (m ColorInputs) Update(msg tea.Msg) (ColorInputs, tea.Cmd) {
	switch msg := msg.(type) {
	case RGBChangedMsg:
		if msg.ID != m.rgbIn.ID() {
			return m, nil
		}
		return m, m.apply(msg.Color, settleHSV(msg.Color, m.hsv))
	case HSVChangedMsg:
		if msg.ID != m.hsvIn.ID() {
			return m, nil
		}
		return m, m.apply(ColorFromHSV(msg.HSV), msg.HSV)
	case HexChangedMsg:
		if msg.ID != m.hexIn.ID() {
			return m, nil
		}
		return m, m.apply(msg.Color, settleHSV(msg.Color, m.hsv))
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.Focused() {
			return m, nil
		}
		switch {
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
	return m.updateFocused(msg)
}

func (m ColorInputs) handleMouse(msg tea.MouseMsg) (ColorInputs, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	section, x, y := m.sectionAt(msg.X, msg.Y)
	if section == sectionNone {
		return m, nil
	}

	var blur tea.Cmd
	if section != m.focus {
		blur = m.blurSection()
		m.focus = sectionNone
	}
	local := msg
	local.X, local.Y = x, y

	var cmd tea.Cmd
	switch section {
	case sectionRGB:
		m.rgbIn, cmd = m.rgbIn.Update(local)
		if m.rgbIn.Focused() {
			m.focus = sectionRGB
		}
	case sectionHSV:
		m.hsvIn, cmd = m.hsvIn.Update(local)
		if m.hsvIn.Focused() {
			m.focus = sectionHSV
		}
	case sectionHex:
		m.hexIn, cmd = m.hexIn.Update(local)
		if m.hexIn.Focused() {
			m.focus = sectionHex
		}
	}
	return m, tea.Batch(blur, cmd)
}

func (m ColorInputs) updateFocused(msg tea.Msg) (ColorInputs, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case sectionRGB:
		m.rgbIn, cmd = m.rgbIn.Update(msg)
	case sectionHSV:
		m.hsvIn, cmd = m.hsvIn.Update(msg)
	case sectionHex:
		m.hexIn, cmd = m.hexIn.Update(msg)
	}
	return m, cmd
}

// View renders the RGB and HSV inputs side by side above the hex input.
func (m ColorInputs) View() string {
	top := lipgloss.JoinHorizontal(lipgloss.Top, m.rgbIn.View(), m.hsvIn.View())
	hex := lipgloss.NewStyle().
		MarginTop(hexOffset.y).
		MarginLeft(hexOffset.x).
		Render(m.hexIn.View())
	return lipgloss.JoinVertical(lipgloss.Left, top, hex)
}
