package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huepick/internal/tui"
	"github.com/alexisbeaulieu97/huepick/pkg/colorpicker"
)

type rootFlags struct {
	configPath string
	color      string
	logFile    string
	logLevel   string
	copy       bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "huepick",
		Short:         "huepick picks a color in the terminal and prints its hex code",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
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
			widget := tui.NewPickerWidget(
				colorpicker.WithColor(initial),
				colorpicker.WithPickerSize(app.cfg.Layout.PickerWidth, app.cfg.Layout.PickerHeight),
				colorpicker.WithPreviewHeight(app.cfg.Layout.PreviewHeight),
			)
			return runWidget(cmd, app, widget, "huepick")
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	pf.StringVar(&flags.color, "color", "", "Initial color as hex (#RRGGBB or #RGB)")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVar(&flags.copy, "copy", false, "Copy the picked color to the clipboard on exit")

	cmd.AddCommand(newHueCmd(flags))
	cmd.AddCommand(newSaturationValueCmd(flags))
	cmd.AddCommand(newInputsCmd(flags))
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
