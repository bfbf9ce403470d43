package colorpicker

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	hueRows         = 2
	defaultHueWidth = 36
	hueStep         = 1.0 / maxHueDegrees
	hueFastStep     = 10.0 / maxHueDegrees
)

var hueStops = func() []colorful.Color {
	hexes := []string{"#ff0000", "#ffff00", "#00ff00", "#00ffff", "#0000ff", "#ff00ff", "#ff0000"}
	stops := make([]colorful.Color, len(hexes))
	for i, hex := range hexes {
		stops[i], _ = colorful.Hex(hex)
	}
	return stops
}()

// hueGradient samples the hue strip at t in [0, 1], blending in RGB between
// evenly spaced stops.
func hueGradient(t float64) Color {
	t = clampFloat(t, 0, 1)
	segments := float64(len(hueStops) - 1)
	pos := t * segments
	i := int(math.Floor(pos))
	if i >= len(hueStops)-1 {
		return colorFromColorful(hueStops[len(hueStops)-1])
	}
	return colorFromColorful(hueStops[i].BlendRgb(hueStops[i+1], pos-float64(i)))
}

// HuePicker is a horizontal gradient strip for choosing a hue.
type HuePicker struct {
	KeyMap KeyMap

	id       int
	hue      float64
	width    int
	padX     int
	padY     int
	focused  bool
	disabled bool
	dragging bool
}

// NewHuePicker creates a hue picker. The hue is clamped to 0-1.
func NewHuePicker(hue float64) HuePicker {
	return HuePicker{
		KeyMap: DefaultKeyMap(),
		id:     nextID(),
		hue:    clampFloat(hue, 0, 1),
		width:  defaultHueWidth,
	}
}

// ID returns the identifier carried by this picker's messages.
func (m HuePicker) ID() int { return m.id }

// Hue returns the selected hue in the range 0-1.
func (m HuePicker) Hue() float64 { return m.hue }

// SetHue clamps and stores the hue, returning a command that emits
// HueChangedMsg when the value changed.
func (m *HuePicker) SetHue(hue float64) tea.Cmd {
	if !m.setHue(hue) {
		return nil
	}
	return emit(HueChangedMsg{ID: m.id, Hue: m.hue})
}

func (m *HuePicker) setHue(hue float64) bool {
	hue = clampFloat(hue, 0, 1)
	if hue == m.hue {
		return false
	}
	m.hue = hue
	return true
}

// Width returns the outer width including padding.
func (m HuePicker) Width() int { return m.width }

// Height returns the outer height including padding.
func (m HuePicker) Height() int { return hueRows + 2*m.padY }

// SetWidth sets the outer width including padding.
func (m *HuePicker) SetWidth(w int) { m.width = max(w, 1) }

// SetPadding sets vertical and horizontal padding around the strip.
func (m *HuePicker) SetPadding(vertical, horizontal int) {
	m.padY = max(vertical, 0)
	m.padX = max(horizontal, 0)
}

// Focus enables keyboard control.
func (m *HuePicker) Focus() tea.Cmd {
	if m.disabled {
		return nil
	}
	m.focused = true
	return nil
}

// Blur disables keyboard control.
func (m *HuePicker) Blur() tea.Cmd {
	m.focused = false
	m.dragging = false
	return nil
}

// Focused reports whether the picker has keyboard focus.
func (m HuePicker) Focused() bool { return m.focused }

// SetDisabled toggles whether the picker responds to input.
func (m *HuePicker) SetDisabled(disabled bool) {
	m.disabled = disabled
	if disabled {
		m.focused = false
		m.dragging = false
	}
}

// Disabled reports whether the picker ignores input.
func (m HuePicker) Disabled() bool { return m.disabled }

func (m HuePicker) contentWidth() int {
	return max(m.width-2*m.padX, 1)
}

// hueAt maps a content column to a hue.
func (m HuePicker) hueAt(x int) float64 {
	span := m.contentWidth() - 1
	if span <= 0 {
		return 0
	}
	return float64(x) / float64(span)
}

func (m HuePicker) markerColumn() int {
	return int(m.hue * float64(m.contentWidth()-1))
}

// Update handles mouse and keyboard input.
func (m HuePicker) Update(msg tea.Msg) (HuePicker, tea.Cmd) {
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
		switch {
		case key.Matches(msg, m.KeyMap.Left):
			return m, m.SetHue(m.hue - hueStep)
		case key.Matches(msg, m.KeyMap.Right):
			return m, m.SetHue(m.hue + hueStep)
		case key.Matches(msg, m.KeyMap.LeftFast):
			return m, m.SetHue(m.hue - hueFastStep)
		case key.Matches(msg, m.KeyMap.RightFast):
			return m, m.SetHue(m.hue + hueFastStep)
		case key.Matches(msg, m.KeyMap.Start):
			return m, m.SetHue(0)
		case key.Matches(msg, m.KeyMap.End):
			return m, m.SetHue(1)
		}
	}
	return m, nil
}

func (m HuePicker) handleMouse(msg tea.MouseMsg) (HuePicker, tea.Cmd) {
	x := msg.X - m.padX
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		y := msg.Y - m.padY
		if x < 0 || x >= m.contentWidth() || y < 0 || y >= hueRows {
			return m, nil
		}
		m.dragging = true
		return m, m.SetHue(m.hueAt(x))
	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		return m, m.SetHue(m.hueAt(clampInt(x, 0, m.contentWidth()-1)))
	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m, nil
}

// View renders the gradient strip with the marker above and below the
// selected column.
func (m HuePicker) View() string {
	width := m.contentWidth()
	marker := m.markerColumn()
	pad := strings.Repeat(" ", m.padX)
	blank := strings.Repeat(" ", m.width)

	lines := make([]string, 0, m.Height())
	for range m.padY {
		lines = append(lines, blank)
	}
	for y := range hueRows {
		glyph, fg := "▼", Black
		if y == 1 {
			glyph, fg = "▲", White
		}

		var b strings.Builder
		b.WriteString(pad)
		for x := range width {
			cell := " "
			if x == marker {
				cell = glyph
			}
			t := 0.0
			if width > 1 {
				t = float64(x) / float64(width-1)
			}
			style := lipgloss.NewStyle().
				Foreground(fg.Lipgloss()).
				Background(hueGradient(t).Lipgloss())
			b.WriteString(style.Render(cell))
		}
		b.WriteString(pad)
		lines = append(lines, b.String())
	}
	for range m.padY {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}
