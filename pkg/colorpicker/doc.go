// Package colorpicker provides Bubble Tea components for choosing a color in
// the terminal.
//
// The package contains a hue strip (HuePicker), a two-dimensional
// saturation/value grid (SaturationValuePicker), numeric RGB and HSV inputs,
// a hex input, a color preview swatch, and ColorPicker, which composes all of
// them and keeps every representation in sync.
//
// Components follow the bubbles conventions: they are values with an
// Update(tea.Msg) method that returns the updated component and a command,
// and a View method. Whenever a component's value changes it emits a
// *ChangedMsg carrying its ID so that a parent holding several instances can
// tell them apart.
//
// Mouse messages are expected to be relative to the component's top-left
// corner. ColorPicker translates coordinates for its children; a host
// application translates them for the top-level component.
package colorpicker
