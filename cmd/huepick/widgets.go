package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huepick/internal/tui"
)

func newHueCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "hue",
		Short: "Pick a hue from the hue strip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()

			initial, err := app.cfg.InitialColor()
			if err != nil {
				return err
			}
			widget := tui.NewHueWidget(initial, app.cfg.Layout.PickerWidth)
			return runWidget(cmd, app, widget, "huepick · hue")
		},
	}
}

func newSaturationValueCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "sv",
		Aliases: []string{"saturation-value"},
		Short:   "Pick saturation and value at a fixed hue",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()

			initial, err := app.cfg.InitialColor()
			if err != nil {
				return err
			}
			widget := tui.NewSaturationValueWidget(initial, app.cfg.Layout.PickerWidth, app.cfg.Layout.PickerHeight)
			return runWidget(cmd, app, widget, "huepick · saturation/value")
		},
	}
}

func newInputsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inputs",
		Short: "Edit a color through RGB, HSV and hex fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()

			initial, err := app.cfg.InitialColor()
			if err != nil {
				return err
			}
			return runWidget(cmd, app, tui.NewInputsWidget(initial), "huepick · inputs")
		},
	}
}
