package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huepick/pkg/colorpicker"
)

// Widget is a color widget the host program can run full screen.
type Widget interface {
	Update(tea.Msg) (Widget, tea.Cmd)
	Focus() (Widget, tea.Cmd)
	// Blur drops focus and applies any edit in progress before returning.
	Blur() (Widget, tea.Cmd)
	View() string
	Width() int
	Height() int
	Color() colorpicker.Color
	KeyMap() colorpicker.KeyMap
}

// PickerWidget runs the full color picker.
type PickerWidget struct {
	picker colorpicker.ColorPicker
}

// NewPickerWidget builds a color picker with the given options.
func NewPickerWidget(opts ...colorpicker.Option) PickerWidget {
	return PickerWidget{picker: colorpicker.New(opts...)}
}

func (w PickerWidget) Update(msg tea.Msg) (Widget, tea.Cmd) {
	var cmd tea.Cmd
	w.picker, cmd = w.picker.Update(msg)
	return w, cmd
}

func (w PickerWidget) Focus() (Widget, tea.Cmd) {
	cmd := w.picker.Focus()
	return w, cmd
}

func (w PickerWidget) Blur() (Widget, tea.Cmd) {
	cmd := w.picker.Blur()
	return w, cmd
}

func (w PickerWidget) View() string               { return w.picker.View() }
func (w PickerWidget) Width() int                 { return w.picker.Width() }
func (w PickerWidget) Height() int                { return w.picker.Height() }
func (w PickerWidget) Color() colorpicker.Color   { return w.picker.Color() }
func (w PickerWidget) KeyMap() colorpicker.KeyMap { return w.picker.KeyMap }

// HueWidget runs a hue strip above a swatch of the fully saturated hue.
type HueWidget struct {
	hue     colorpicker.HuePicker
	preview colorpicker.ColorPreview
}

// NewHueWidget builds a hue strip of the given width starting at the hue of c.
func NewHueWidget(c colorpicker.Color, width int) HueWidget {
	w := HueWidget{
		hue:     colorpicker.NewHuePicker(c.HSV().H),
		preview: colorpicker.NewColorPreview(c),
	}
	w.hue.SetWidth(width)
	w.preview.SetSize(width, 3)
	w.preview.SetColor(w.Color())
	return w
}

func (w HueWidget) Update(msg tea.Msg) (Widget, tea.Cmd) {
	var cmd tea.Cmd
	w.hue, cmd = w.hue.Update(msg)
	w.preview.SetColor(w.Color())
	return w, cmd
}

func (w HueWidget) Focus() (Widget, tea.Cmd) {
	cmd := w.hue.Focus()
	return w, cmd
}

func (w HueWidget) Blur() (Widget, tea.Cmd) {
	cmd := w.hue.Blur()
	return w, cmd
}

func (w HueWidget) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, w.hue.View(), "", w.preview.View())
}

func (w HueWidget) Width() int  { return w.hue.Width() }
func (w HueWidget) Height() int { return w.hue.Height() + 1 + w.preview.Height() }

func (w HueWidget) Color() colorpicker.Color {
	return colorpicker.ColorFromHSV(colorpicker.HSV{H: w.hue.Hue(), S: 1, V: 1})
}

func (w HueWidget) KeyMap() colorpicker.KeyMap { return w.hue.KeyMap }

// SaturationValueWidget runs a saturation/value grid with the selection
// written below it.
type SaturationValueWidget struct {
	sv colorpicker.SaturationValuePicker
}

// NewSaturationValueWidget builds a grid of the given size showing c.
func NewSaturationValueWidget(c colorpicker.Color, width, height int) SaturationValueWidget {
	w := SaturationValueWidget{sv: colorpicker.NewSaturationValuePicker(c.HSV())}
	w.sv.SetSize(width, height)
	return w
}

func (w SaturationValueWidget) Update(msg tea.Msg) (Widget, tea.Cmd) {
	var cmd tea.Cmd
	w.sv, cmd = w.sv.Update(msg)
	return w, cmd
}

func (w SaturationValueWidget) Focus() (Widget, tea.Cmd) {
	cmd := w.sv.Focus()
	return w, cmd
}

func (w SaturationValueWidget) Blur() (Widget, tea.Cmd) {
	cmd := w.sv.Blur()
	return w, cmd
}

func (w SaturationValueWidget) View() string {
	label := strings.Join([]string{w.Color().Hex(), w.sv.HSV().String()}, "  ")
	return lipgloss.JoinVertical(lipgloss.Left, w.sv.View(), "", label)
}

func (w SaturationValueWidget) Width() int  { return w.sv.Width() }
func (w SaturationValueWidget) Height() int { return w.sv.Height() + 2 }

func (w SaturationValueWidget) Color() colorpicker.Color {
	return colorpicker.ColorFromHSV(w.sv.HSV())
}

func (w SaturationValueWidget) KeyMap() colorpicker.KeyMap { return w.sv.KeyMap }

// InputsWidget runs the RGB, HSV and hex inputs on their own.
type InputsWidget struct {
	inputs colorpicker.ColorInputs
}

// NewInputsWidget builds inputs showing c.
func NewInputsWidget(c colorpicker.Color) InputsWidget {
	return InputsWidget{inputs: colorpicker.NewColorInputs(c)}
}

func (w InputsWidget) Update(msg tea.Msg) (Widget, tea.Cmd) {
	var cmd tea.Cmd
	w.inputs, cmd = w.inputs.Update(msg)
	return w, cmd
}

func (w InputsWidget) Focus() (Widget, tea.Cmd) {
	cmd := w.inputs.Focus()
	return w, cmd
}

func (w InputsWidget) Blur() (Widget, tea.Cmd) {
	cmd := w.inputs.Blur()
	return w, cmd
}

func (w InputsWidget) View() string               { return w.inputs.View() }
func (w InputsWidget) Width() int                 { return w.inputs.Width() }
func (w InputsWidget) Height() int                { return w.inputs.Height() }
func (w InputsWidget) Color() colorpicker.Color   { return w.inputs.Color() }
func (w InputsWidget) KeyMap() colorpicker.KeyMap { return w.inputs.KeyMap }
