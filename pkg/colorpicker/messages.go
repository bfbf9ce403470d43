package colorpicker

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// HueChangedMsg is emitted when a HuePicker's hue changes.
type HueChangedMsg struct {
	ID  int
	Hue float64
}

// SaturationValueChangedMsg is emitted when a SaturationValuePicker's HSV changes.
type SaturationValueChangedMsg struct {
	ID  int
	HSV HSV
}

// RGBChangedMsg is emitted when an RGBInputs color changes.
type RGBChangedMsg struct {
	ID    int
	Color Color
}

// HSVChangedMsg is emitted when an HSVInputs value changes.
type HSVChangedMsg struct {
	ID  int
	HSV HSV
}

// HexChangedMsg is emitted when a HexInput value changes.
type HexChangedMsg struct {
	ID    int
	Color Color
}

// InputsChangedMsg is emitted when a ColorInputs color changes. HSV carries
// the hue and saturation the inputs display, which a gray or black Color
// cannot express on its own.
type InputsChangedMsg struct {
	ID    int
	Color Color
	HSV   HSV
}

// ColorChangedMsg is emitted when a ColorPicker color changes.
type ColorChangedMsg struct {
	ID    int
	Color Color
	HSV   HSV
}

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
