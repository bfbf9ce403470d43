package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/huepick/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `color: "#00ffff"
layout:
  picker_width: 40
  picker_height: 20
  preview_height: 4
log:
  level: debug
  file: /tmp/huepick.log
copy_on_exit: true
`

	partialYAML := `color: "0f0"
`

	invalidYAML := `color: [1, 2]
`

	unknownKey := `colour: "#ffffff"
`

	badColor := `color: "#ggg"
`

	tooNarrow := `layout:
  picker_width: 2
`

	badLevel := `log:
  level: loud
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "#00ffff", cfg.Color)
				require.Equal(t, Layout{PickerWidth: 40, PickerHeight: 20, PreviewHeight: 4}, cfg.Layout)
				require.Equal(t, "debug", cfg.Log.Level)
				require.Equal(t, "/tmp/huepick.log", cfg.Log.File)
				require.True(t, cfg.CopyOnExit)
			},
		},
		{
			name:     "missing keys keep defaults",
			contents: partialYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "0f0", cfg.Color)
				require.Equal(t, Default().Layout, cfg.Layout)
				require.Equal(t, DefaultLogLevel, cfg.Log.Level)
			},
		},
		{
			name:     "empty file is all defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: unknownKey,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "colour")
			},
		},
		{
			name:     "color must be hex",
			contents: badColor,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "color", validationErr.Field)
				require.Contains(t, validationErr.Message, "hexcolor")
			},
		},
		{
			name:     "layout is bounded",
			contents: tooNarrow,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "layout.picker_width", validationErr.Field)
				require.Contains(t, validationErr.Message, "min=10")
			},
		},
		{
			name:     "log level must be known",
			contents: badLevel,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log.level", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 0, parseErr.Line)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	cfg, err = Load(writeTempConfig(t, "copy_on_exit: true\n"))
	require.NoError(t, err)
	require.True(t, cfg.CopyOnExit)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 0, extractLine(os.ErrClosed))
	require.Equal(t, 12, extractLine(&apperrors.ValidationError{Message: "yaml: line 12: did not find expected key"}))
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
