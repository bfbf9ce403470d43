package config

import (
	"github.com/alexisbeaulieu97/huepick/pkg/colorpicker"
)

// Default values applied before a file or flags are read.
const (
	DefaultColor         = "#FF0000"
	DefaultPickerWidth   = 36
	DefaultPickerHeight  = 17
	DefaultPreviewHeight = 6
	DefaultLogLevel      = "info"
)

// Config represents the full huepick configuration document.
type Config struct {
	Color      string `yaml:"color" validate:"required,hexcolor"`
	Layout     Layout `yaml:"layout"`
	Log        Log    `yaml:"log"`
	CopyOnExit bool   `yaml:"copy_on_exit"`
}

// Layout sizes the picker widgets.
type Layout struct {
	PickerWidth   int `yaml:"picker_width" validate:"min=10,max=200"`
	PickerHeight  int `yaml:"picker_height" validate:"min=4,max=100"`
	PreviewHeight int `yaml:"preview_height" validate:"min=1,max=20"`
}

// Log controls where diagnostics go. The terminal belongs to the UI, so an
// empty File discards them.
type Log struct {
	Level         string `yaml:"level" validate:"loglevel"`
	File          string `yaml:"file,omitempty"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// Default returns a configuration with every field at its default.
func Default() *Config {
	return &Config{
		Color: DefaultColor,
		Layout: Layout{
			PickerWidth:   DefaultPickerWidth,
			PickerHeight:  DefaultPickerHeight,
			PreviewHeight: DefaultPreviewHeight,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// InitialColor parses the configured color.
func (c *Config) InitialColor() (colorpicker.Color, error) {
	return colorpicker.ParseHex(c.Color)
}

// Overrides holds values supplied on the command line. Nil fields leave the
// configuration untouched.
type Overrides struct {
	Color      *string
	LogLevel   *string
	LogFile    *string
	CopyOnExit *bool
}

// Apply copies the set overrides into c and revalidates it.
func (c *Config) Apply(o Overrides) error {
	if o.Color != nil {
		c.Color = *o.Color
	}
	if o.LogLevel != nil {
		c.Log.Level = *o.LogLevel
	}
	if o.LogFile != nil {
		c.Log.File = *o.LogFile
	}
	if o.CopyOnExit != nil {
		c.CopyOnExit = *o.CopyOnExit
	}
	return ValidateConfig(c)
}
