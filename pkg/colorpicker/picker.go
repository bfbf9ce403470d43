package colorpicker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	hueMarginTop        = 1
	rightMarginLeft     = 2
	previewMarginBottom = 1
)

type pickerPart int

const (
	partNone pickerPart = iota - 1
	partSaturationValue
	partHue
	partInputs
	partCount
)

// Option configures a ColorPicker.
type Option func(*ColorPicker)

// WithColor sets the initial color.
func WithColor(c Color) Option {
	return func(m *ColorPicker) { m.SetColor(c) }
}

// WithPickerSize sets the width shared by the saturation/value grid and the
// hue strip, and the height of the grid.
func WithPickerSize(width, height int) Option {
	return func(m *ColorPicker) {
		m.sv.SetSize(width, height)
		m.hue.SetWidth(width)
	}
}

// WithPreviewHeight sets the height of the preview swatch.
func WithPreviewHeight(height int) Option {
	return func(m *ColorPicker) {
		m.preview.SetSize(m.preview.Width(), height)
	}
}

// WithDisabled creates the picker with input disabled.
func WithDisabled(disabled bool) Option {
	return func(m *ColorPicker) { m.SetDisabled(disabled) }
}

// WithKeyMap replaces the keybindings of the picker and its children.
func WithKeyMap(keys KeyMap) Option {
	return func(m *ColorPicker) {
		m.KeyMap = keys
		m.sv.KeyMap = keys
		m.hue.KeyMap = keys
		m.inputs.KeyMap = keys
		m.inputs.rgbIn.KeyMap = keys
		m.inputs.hsvIn.KeyMap = keys
		m.inputs.hexIn.KeyMap = keys
	}
}

// ColorPicker composes a saturation/value grid and hue strip on the left
// with a preview and numeric inputs on the right. Editing any of them
// updates the others.
type ColorPicker struct {
	KeyMap KeyMap

	id       int
	color    Color
	hsv      HSV
	sv       SaturationValuePicker
	hue      HuePicker
	preview  ColorPreview
	inputs   ColorInputs
	focus    pickerPart
	disabled bool
}

// New creates a color picker. The default color is red.
func New(opts ...Option) ColorPicker {
	hsv := Red.HSV()
	m := ColorPicker{
		KeyMap:  DefaultKeyMap(),
		id:      nextID(),
		color:   Red,
		hsv:     hsv,
		sv:      NewSaturationValuePicker(hsv),
		hue:     NewHuePicker(hsv.H),
		preview: NewColorPreview(Red),
		inputs:  NewColorInputs(Red),
		focus:   partNone,
	}
	m.preview.SetSize(m.inputs.Width(), defaultPreviewHeight)
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns the identifier carried by this picker's messages.
func (m ColorPicker) ID() int { return m.id }

// Color returns the selected color.
func (m ColorPicker) Color() Color { return m.color }

// HSV returns the selected color as HSV, including the hue and saturation
// of grays and black.
func (m ColorPicker) HSV() HSV { return m.hsv }

// SaturationValue returns the saturation/value grid.
func (m ColorPicker) SaturationValue() SaturationValuePicker { return m.sv }

// Hue returns the hue strip.
func (m ColorPicker) Hue() HuePicker { return m.hue }

// Preview returns the preview swatch.
func (m ColorPicker) Preview() ColorPreview { return m.preview }

// Inputs returns the numeric inputs.
func (m ColorPicker) Inputs() ColorInputs { return m.inputs }

// SetColor clamps and stores c, updating every child. The returned command
// emits ColorChangedMsg when the color changed.
func (m *ColorPicker) SetColor(c Color) tea.Cmd {
	c = c.Clamped()
	return m.apply(c, settleHSV(c, m.hsv))
}

func (m *ColorPicker) apply(c Color, hsv HSV) tea.Cmd {
	c, hsv = c.Clamped(), hsv.Clamped()
	changed := c != m.color || hsv != m.hsv
	m.color, m.hsv = c, hsv

	m.sv.setHSV(hsv)
	m.hue.setHue(hsv.H)
	m.preview.SetColor(c)
	m.inputs.sync(c, hsv)

	if !changed {
		return nil
	}
	return emit(ColorChangedMsg{ID: m.id, Color: m.color, HSV: m.hsv})
}

// Focus gives keyboard focus to the saturation/value grid.
func (m *ColorPicker) Focus() tea.Cmd { return m.focusPart(partSaturationValue, false) }

// Blur removes keyboard focus, committing any field being edited. The
// commit is applied before Blur returns, so Color already includes it.
func (m *ColorPicker) Blur() tea.Cmd {
	part := m.focus
	m.blurPart()
	m.focus = partNone
	if part == partInputs && (m.inputs.Color() != m.color || m.inputs.HSV() != m.hsv) {
		return m.apply(m.inputs.Color(), m.inputs.HSV())
	}
	return nil
}

// Focused reports whether any part of the picker has focus.
func (m ColorPicker) Focused() bool { return m.focus != partNone }

// SetDisabled toggles whether the picker responds to input.
func (m *ColorPicker) SetDisabled(disabled bool) {
	m.disabled = disabled
	if disabled {
		m.focus = partNone
	}
	m.sv.SetDisabled(disabled)
	m.hue.SetDisabled(disabled)
	m.inputs.SetDisabled(disabled)
}

// Disabled reports whether the picker ignores input.
func (m ColorPicker) Disabled() bool { return m.disabled }

func (m *ColorPicker) blurPart() tea.Cmd {
	switch m.focus {
	case partSaturationValue:
		return m.sv.Blur()
	case partHue:
		return m.hue.Blur()
	case partInputs:
		return m.inputs.Blur()
	}
	return nil
}

func (m *ColorPicker) focusPart(p pickerPart, last bool) tea.Cmd {
	if m.disabled {
		return nil
	}
	blur := m.blurPart()
	m.focus = p
	var focus tea.Cmd
	switch p {
	case partSaturationValue:
		focus = m.sv.Focus()
	case partHue:
		focus = m.hue.Focus()
	case partInputs:
		if last {
			focus = m.inputs.FocusLast()
		} else {
			focus = m.inputs.Focus()
		}
	}
	return tea.Batch(blur, focus)
}

func (m *ColorPicker) focusStep(delta int) tea.Cmd {
	if m.focus == partInputs {
		if cmd, ok := m.inputs.focusStep(delta); ok {
			return cmd
		}
	}
	next := (m.focus + pickerPart(delta) + partCount) % partCount
	if m.focus == partNone {
		next = partSaturationValue
		if delta < 0 {
			next = partInputs
		}
	}
	return m.focusPart(next, delta < 0)
}

// Width returns the rendered width.
func (m ColorPicker) Width() int {
	return m.rightX() + max(m.preview.Width(), m.inputs.Width())
}

// Height returns the rendered height.
func (m ColorPicker) Height() int {
	left := m.hueY() + m.hue.Height()
	right := m.inputsY() + m.inputs.Height()
	return max(left, right)
}

func (m ColorPicker) hueY() int { return m.sv.Height() + hueMarginTop }

func (m ColorPicker) rightX() int { return max(m.sv.Width(), m.hue.Width()) + rightMarginLeft }

func (m ColorPicker) inputsY() int { return m.preview.Height() + previewMarginBottom }

func within(x, y, w, h int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}

// partAt returns the part under (x, y) and the coordinates relative to it.
func (m ColorPicker) partAt(x, y int) (pickerPart, int, int) {
	switch {
	case within(x, y, m.sv.Width(), m.sv.Height()):
		return partSaturationValue, x, y
	case within(x, y-m.hueY(), m.hue.Width(), m.hue.Height()):
		return partHue, x, y - m.hueY()
	case within(x-m.rightX(), y-m.inputsY(), m.inputs.Width(), m.inputs.Height()):
		return partInputs, x - m.rightX(), y - m.inputsY()
	}
	return partNone, x, y
}

// Update routes input to the children and reconciles their changes.
func (m ColorPicker) Update(msg tea.Msg) (ColorPicker, tea.Cmd) {
	switch msg := msg.(type) {
	case HueChangedMsg:
		if msg.ID != m.hue.ID() {
			return m, nil
		}
		hsv := m.hsv
		hsv.H = msg.Hue
		return m, m.apply(ColorFromHSV(hsv), hsv)
	case SaturationValueChangedMsg:
		if msg.ID != m.sv.ID() {
			return m, nil
		}
		return m, m.apply(ColorFromHSV(msg.HSV), msg.HSV)
	case InputsChangedMsg:
		if msg.ID != m.inputs.ID() {
			return m, nil
		}
		return m, m.apply(msg.Color, msg.HSV)
	case tea.MouseMsg:
		if m.disabled {
			return m, nil
		}
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if m.disabled || !m.Focused() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.KeyMap.Next):
			return m, m.focusStep(1)
		case key.Matches(msg, m.KeyMap.Prev):
			return m, m.focusStep(-1)
		}
		return m.updateFocused(msg)
	}

	// Field edits inside the inputs report back through messages the inputs
	// reconcile themselves.
	var cmd tea.Cmd
	m.inputs, cmd = m.inputs.Update(msg)
	return m, cmd
}

func (m ColorPicker) updateFocused(msg tea.Msg) (ColorPicker, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case partSaturationValue:
		m.sv, cmd = m.sv.Update(msg)
	case partHue:
		m.hue, cmd = m.hue.Update(msg)
	case partInputs:
		m.inputs, cmd = m.inputs.Update(msg)
	}
	return m, cmd
}

func (m ColorPicker) handleMouse(msg tea.MouseMsg) (ColorPicker, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		// Drags continue outside the part they started in.
		var svCmd, hueCmd tea.Cmd
		svMsg, hueMsg := msg, msg
		hueMsg.Y -= m.hueY()
		m.sv, svCmd = m.sv.Update(svMsg)
		m.hue, hueCmd = m.hue.Update(hueMsg)
		return m, tea.Batch(svCmd, hueCmd)
	}

	if px, py := msg.X-m.rightX(), msg.Y; within(px, py, m.preview.Width(), m.preview.Height()) {
		local := msg
		local.X, local.Y = px, py
		m.preview, _ = m.preview.Update(local)
		return m, nil
	}

	part, x, y := m.partAt(msg.X, msg.Y)
	if part == partNone {
		return m, nil
	}
	local := msg
	local.X, local.Y = x, y

	var focus tea.Cmd
	if part != m.focus && part != partInputs {
		focus = m.focusPart(part, false)
	} else if part != m.focus {
		focus = m.blurPart()
		m.focus = partNone
	}

	var cmd tea.Cmd
	switch part {
	case partSaturationValue:
		m.sv, cmd = m.sv.Update(local)
	case partHue:
		m.hue, cmd = m.hue.Update(local)
	case partInputs:
		m.inputs, cmd = m.inputs.Update(local)
		if m.inputs.Focused() {
			m.focus = partInputs
		}
	}
	return m, tea.Batch(focus, cmd)
}

// View renders the picker.
func (m ColorPicker) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.sv.View(),
		lipgloss.NewStyle().MarginTop(hueMarginTop).Render(m.hue.View()),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().MarginBottom(previewMarginBottom).Render(m.preview.View()),
		m.inputs.View(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		left,
		lipgloss.NewStyle().MarginLeft(m.rightX()-lipgloss.Width(left)).Render(right),
	)
}
