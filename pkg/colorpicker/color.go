package colorpicker

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	apperrors "github.com/alexisbeaulieu97/huepick/pkg/errors"
)

const (
	maxChannel    = 255
	maxHueDegrees = 360
	maxPercent    = 100
)

var (
	// Black is pure black.
	Black = Color{R: 0, G: 0, B: 0}
	// White is pure white.
	White = Color{R: 255, G: 255, B: 255}
	// Red is the default color of every component.
	Red = Color{R: 255, G: 0, B: 0}

	errHexLength = errors.New("expected 3 or 6 hex digits")
	errHexDigit  = errors.New("contains a non-hex digit")
)

// Color is an RGB triple. Components are not range checked on construction;
// use Clamped before storing or displaying a color.
type Color struct {
	R, G, B int
}

// Clamped returns the color with every channel restricted to 0-255.
func (c Color) Clamped() Color {
	return Color{
		R: clampInt(c.R, 0, maxChannel),
		G: clampInt(c.G, 0, maxChannel),
		B: clampInt(c.B, 0, maxChannel),
	}
}

// Hex returns the clamped color as an uppercase "#RRGGBB" string.
func (c Color) Hex() string {
	return strings.ToUpper(c.colorful().Hex())
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSV converts the clamped color to normalized hue, saturation and value.
// Achromatic colors report a hue of 0.
func (c Color) HSV() HSV {
	h, s, v := c.colorful().Hsv()
	return HSV{H: h / maxHueDegrees, S: s, V: v}.Clamped()
}

// Contrast returns black or white, whichever is more legible on c.
func (c Color) Contrast() Color {
	c = c.Clamped()
	brightness := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if brightness > maxChannel/2.0 {
		return Black
	}
	return White
}

// Lipgloss returns the color for use in lipgloss styles.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func (c Color) colorful() colorful.Color {
	c = c.Clamped()
	return colorful.Color{
		R: float64(c.R) / maxChannel,
		G: float64(c.G) / maxChannel,
		B: float64(c.B) / maxChannel,
	}
}

func colorFromColorful(col colorful.Color) Color {
	return Color{
		R: roundHalfUp(col.R * maxChannel),
		G: roundHalfUp(col.G * maxChannel),
		B: roundHalfUp(col.B * maxChannel),
	}.Clamped()
}

// ParseHex reads a color written as RRGGBB or RGB, with or without a leading
// '#'. Surrounding whitespace is ignored and case does not matter.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(digits) != 3 && len(digits) != 6 {
		return Color{}, apperrors.NewColorError("hex", s, errHexLength)
	}
	for _, r := range digits {
		if !isHexDigit(r) {
			return Color{}, apperrors.NewColorError("hex", s, errHexDigit)
		}
	}

	col, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return Color{}, apperrors.NewColorError("hex", s, err)
	}
	return colorFromColorful(col), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// HSV holds hue, saturation and value, each normalized to 0-1.
type HSV struct {
	H, S, V float64
}

// Clamped returns the HSV with every component restricted to 0-1.
func (h HSV) Clamped() HSV {
	return HSV{
		H: clampFloat(h.H, 0, 1),
		S: clampFloat(h.S, 0, 1),
		V: clampFloat(h.V, 0, 1),
	}
}

// Scaled returns the components in display units: hue in degrees (0-360),
// saturation and value in percent (0-100), rounded half up.
func (h HSV) Scaled() (hue, saturation, value int) {
	h = h.Clamped()
	return roundHalfUp(h.H * maxHueDegrees),
		roundHalfUp(h.S * maxPercent),
		roundHalfUp(h.V * maxPercent)
}

// String implements fmt.Stringer using display units.
func (h HSV) String() string {
	hue, s, v := h.Scaled()
	return fmt.Sprintf("hsv(%d, %d%%, %d%%)", hue, s, v)
}

// HSVFromScaled builds a normalized HSV from display units. Each component is
// rounded half up and clamped to its display range first.
func HSVFromScaled(hue, saturation, value float64) HSV {
	return HSV{
		H: float64(roundHalfUp(clampFloat(hue, 0, maxHueDegrees))) / maxHueDegrees,
		S: float64(roundHalfUp(clampFloat(saturation, 0, maxPercent))) / maxPercent,
		V: float64(roundHalfUp(clampFloat(value, 0, maxPercent))) / maxPercent,
	}
}

// ColorFromHSV converts a normalized HSV to RGB. A hue of 1 is the same as a
// hue of 0.
func ColorFromHSV(h HSV) Color {
	h = h.Clamped()
	degrees := math.Mod(h.H, 1) * maxHueDegrees
	return colorFromColorful(colorful.Hsv(degrees, h.S, h.V))
}

// settleHSV returns the HSV of c, keeping the components of prev that c
// cannot express: hue for grays, hue and saturation for black.
func settleHSV(c Color, prev HSV) HSV {
	next := c.HSV()
	switch {
	case next.V == 0:
		next.H, next.S = prev.H, prev.S
	case next.S == 0:
		next.H = prev.H
	}
	return next
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
