package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huepick/internal/config"
	"github.com/alexisbeaulieu97/huepick/internal/logger"
)

// appContext bundles the services a command needs once flags are parsed.
type appContext struct {
	cfg    *config.Config
	log    *logger.Logger
	closer io.Closer
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	if err := validateConfigPath(flags.configPath); err != nil {
		return nil, err
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(overridesFromFlags(cmd, flags)); err != nil {
		return nil, err
	}

	log, closer, err := logger.OpenFile(cfg.Log.File, logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
	})
	if err != nil {
		return nil, err
	}

	log = log.With("command", cmd.Name())
	log.DebugFields("configuration loaded", map[string]any{
		"config": flags.configPath,
		"color":  cfg.Color,
	})

	return &appContext{cfg: cfg, log: log, closer: closer}, nil
}

// Close releases the log file.
func (a *appContext) Close() {
	if a == nil || a.closer == nil {
		return
	}
	_ = a.closer.Close()
}

// overridesFromFlags picks up only the flags the user actually set.
func overridesFromFlags(cmd *cobra.Command, flags *rootFlags) config.Overrides {
	var o config.Overrides
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("color") {
		o.Color = &flags.color
	}
	if changed("log-level") {
		o.LogLevel = &flags.logLevel
	}
	if changed("log-file") {
		o.LogFile = &flags.logFile
	}
	if changed("copy") {
		o.CopyOnExit = &flags.copy
	}
	return o
}
