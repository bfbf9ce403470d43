package colorpicker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultSVWidth  = 36
	defaultSVHeight = 17
	svStep          = 0.01
	svFastStep      = 0.1
)

// SaturationValuePicker is a two-dimensional grid for choosing saturation
// (left to right) and value (bottom to top) at a fixed hue.
type SaturationValuePicker struct {
	KeyMap KeyMap

	id       int
	hsv      HSV
	width    int
	height   int
	padX     int
	padY     int
	focused  bool
	disabled bool
	dragging bool
}

// NewSaturationValuePicker creates a picker showing hsv, clamped to 0-1.
func NewSaturationValuePicker(hsv HSV) SaturationValuePicker {
	return SaturationValuePicker{
		KeyMap: DefaultKeyMap(),
		id:     nextID(),
		hsv:    hsv.Clamped(),
		width:  defaultSVWidth,
		height: defaultSVHeight,
	}
}

// ID returns the identifier carried by this picker's messages.
func (m SaturationValuePicker) ID() int { return m.id }

// HSV returns the selected hue, saturation and value.
func (m SaturationValuePicker) HSV() HSV { return m.hsv }

// SetHSV clamps and stores hsv, returning a command that emits
// SaturationValueChangedMsg when the value changed.
func (m *SaturationValuePicker) SetHSV(hsv HSV) tea.Cmd {
	if !m.setHSV(hsv) {
		return nil
	}
	return emit(SaturationValueChangedMsg{ID: m.id, HSV: m.hsv})
}

// SetHue changes only the hue the grid is drawn with.
func (m *SaturationValuePicker) SetHue(hue float64) tea.Cmd {
	next := m.hsv
	next.H = hue
	return m.SetHSV(next)
}

func (m *SaturationValuePicker) setHSV(hsv HSV) bool {
	hsv = hsv.Clamped()
	if hsv == m.hsv {
		return false
	}
	m.hsv = hsv
	return true
}

// Width returns the outer width including padding.
func (m SaturationValuePicker) Width() int { return m.width }

// Height returns the outer height including padding.
func (m SaturationValuePicker) Height() int { return m.height }

// SetSize sets the outer size including padding.
func (m *SaturationValuePicker) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
}

// SetPadding sets vertical and horizontal padding around the grid.
func (m *SaturationValuePicker) SetPadding(vertical, horizontal int) {
	m.padY = max(vertical, 0)
	m.padX = max(horizontal, 0)
}

// Focus enables keyboard control.
func (m *SaturationValuePicker) Focus() tea.Cmd {
	if m.disabled {
		return nil
	}
	m.focused = true
	return nil
}

// Blur disables keyboard control.
func (m *SaturationValuePicker) Blur() tea.Cmd {
	m.focused = false
	m.dragging = false
	return nil
}

// Focused reports whether the picker has keyboard focus.
func (m SaturationValuePicker) Focused() bool { return m.focused }

// SetDisabled toggles whether the picker responds to input.
func (m *SaturationValuePicker) SetDisabled(disabled bool) {
	m.disabled = disabled
	if disabled {
		m.focused = false
		m.dragging = false
	}
}

// Disabled reports whether the picker ignores input.
func (m SaturationValuePicker) Disabled() bool { return m.disabled }

func (m SaturationValuePicker) contentSize() (int, int) {
	return max(m.width-2*m.padX, 1), max(m.height-2*m.padY, 1)
}

// hsvAt maps a content cell to an HSV at the current hue.
func (m SaturationValuePicker) hsvAt(x, y int) HSV {
	w, h := m.contentSize()
	return HSV{H: m.hsv.H, S: ratio(x, w), V: 1 - ratio(y, h)}
}

func ratio(pos, size int) float64 {
	if size <= 1 {
		return 0
	}
	return float64(pos) / float64(size-1)
}

func (m SaturationValuePicker) pointer() (int, int) {
	w, h := m.contentSize()
	return roundHalfUp(m.hsv.S * float64(w-1)), roundHalfUp((1 - m.hsv.V) * float64(h-1))
}

// Update handles mouse and keyboard input.
func (m SaturationValuePicker) Update(msg tea.Msg) (SaturationValuePicker, tea.Cmd) {
	if m.disabled {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		next := m.hsv
		switch {
		case key.Matches(msg, m.KeyMap.Left):
			next.S -= svStep
		case key.Matches(msg, m.KeyMap.Right):
			next.S += svStep
		case key.Matches(msg, m.KeyMap.LeftFast):
			next.S -= svFastStep
		case key.Matches(msg, m.KeyMap.RightFast):
			next.S += svFastStep
		case key.Matches(msg, m.KeyMap.Up):
			next.V += svStep
		case key.Matches(msg, m.KeyMap.Down):
			next.V -= svStep
		case key.Matches(msg, m.KeyMap.UpFast):
			next.V += svFastStep
		case key.Matches(msg, m.KeyMap.DownFast):
			next.V -= svFastStep
		default:
			return m, nil
		}
		return m, m.SetHSV(next)
	}
	return m, nil
}

func (m SaturationValuePicker) handleMouse(msg tea.MouseMsg) (SaturationValuePicker, tea.Cmd) {
	w, h := m.contentSize()
	x, y := msg.X-m.padX, msg.Y-m.padY
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if x < 0 || x >= w || y < 0 || y >= h {
			return m, nil
		}
		m.dragging = true
		return m, m.SetHSV(m.hsvAt(x, y))
	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		return m, m.SetHSV(m.hsvAt(clampInt(x, 0, w-1), clampInt(y, 0, h-1)))
	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m, nil
}

// View renders the grid with crosshairs through the selected cell.
func (m SaturationValuePicker) View() string {
	w, h := m.contentSize()
	px, py := m.pointer()
	pad := strings.Repeat(" ", m.padX)
	blank := strings.Repeat(" ", m.width)
	fg := White.Lipgloss()

	lines := make([]string, 0, m.height)
	for range m.padY {
		lines = append(lines, blank)
	}
	for y := range h {
		value := 1 - ratio(y, h)

		var b strings.Builder
		b.WriteString(pad)
		for x := range w {
			var cell string
			switch {
			case x == px && y == py:
				cell = "╬"
			case y == py:
				cell = "═"
			case x == px:
				cell = "║"
			default:
				cell = " "
			}
			bg := ColorFromHSV(HSV{H: m.hsv.H, S: ratio(x, w), V: value})
			b.WriteString(lipgloss.NewStyle().Foreground(fg).Background(bg.Lipgloss()).Render(cell))
		}
		b.WriteString(pad)
		lines = append(lines, b.String())
	}
	for range m.padY {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}
