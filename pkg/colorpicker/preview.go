package colorpicker

import tea "github.com/charmbracelet/bubbletea"

const (
	defaultPreviewWidth  = 24
	defaultPreviewHeight = 6
)

// PreviewFormat selects how the preview labels its color.
type PreviewFormat int

const (
	PreviewHex PreviewFormat = iota // #RRGGBB
	PreviewRGB                      // rgb(r, g, b)
	previewFormatCount
)

// ColorPreview is a swatch filled with a color and labelled with its hex
// code or its rgb() notation. Clicking the swatch switches between the two.
type ColorPreview struct {
	color  Color
	format PreviewFormat
	width  int
	height int
}

// NewColorPreview creates a preview of c, clamped.
func NewColorPreview(c Color) ColorPreview {
	return ColorPreview{color: c.Clamped(), width: defaultPreviewWidth, height: defaultPreviewHeight}
}

// Color returns the previewed color.
func (m ColorPreview) Color() Color { return m.color }

// SetColor clamps and stores c.
func (m *ColorPreview) SetColor(c Color) { m.color = c.Clamped() }

// Format returns the label format.
func (m ColorPreview) Format() PreviewFormat { return m.format }

// SetFormat sets the label format. Unknown formats fall back to hex.
func (m *ColorPreview) SetFormat(f PreviewFormat) {
	if f < 0 || f >= previewFormatCount {
		f = PreviewHex
	}
	m.format = f
}

// Label returns the text drawn on the swatch.
func (m ColorPreview) Label() string {
	if m.format == PreviewRGB {
		return m.color.String()
	}
	return m.color.Hex()
}

// SetSize sets the swatch size.
func (m *ColorPreview) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
}

// Width returns the swatch width.
func (m ColorPreview) Width() int { return m.width }

// Height returns the swatch height.
func (m ColorPreview) Height() int { return m.height }

// Update switches the label format on a left click inside the swatch.
func (m ColorPreview) Update(msg tea.Msg) (ColorPreview, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMsg); ok {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			within(msg.X, msg.Y, m.width, m.height) {
			m.format = (m.format + 1) % previewFormatCount
		}
	}
	return m, nil
}

// View renders the swatch.
func (m ColorPreview) View() string {
	return previewStyle.
		Width(m.width).
		Height(m.height).
		MaxHeight(m.height).
		Background(m.color.Lipgloss()).
		Foreground(m.color.Contrast().Lipgloss()).
		Render(m.Label())
}
