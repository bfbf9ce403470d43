package main

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/huepick/pkg/colorpicker"
	apperrors "github.com/alexisbeaulieu97/huepick/pkg/errors"
)

var (
	rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	hsvPattern = regexp.MustCompile(`^hsv\(\s*(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)%?\s*,\s*(\d+(?:\.\d+)?)%?\s*\)$`)
)

type conversion struct {
	Hex string `yaml:"hex"`
	RGB string `yaml:"rgb"`
	HSV string `yaml:"hsv"`
}

func newConvertCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Print a color as hex, RGB and HSV",
		Long: `Print a color in every notation the picker shows.

The color may be hex (#RRGGBB, #RGB), rgb(r, g, b) with channels 0-255, or
hsv(h, s%, v%) with hue 0-360 and saturation and value 0-100.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColorArg(args[0])
			if err != nil {
				return err
			}

			conv := conversion{Hex: c.Hex(), RGB: c.String(), HSV: c.HSV().String()}
			switch output {
			case "text":
				fmt.Fprintf(cmd.OutOrStdout(), "hex: %s\nrgb: %s\nhsv: %s\n", conv.Hex, conv.RGB, conv.HSV)
			case "yaml":
				return writeYAML(cmd.OutOrStdout(), conv)
			default:
				return fmt.Errorf("unknown output format %q (want text or yaml)", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or yaml")
	return cmd
}

// parseColorArg reads a color written as hex, rgb(...) or hsv(...).
func parseColorArg(arg string) (colorpicker.Color, error) {
	s := strings.ToLower(strings.TrimSpace(arg))

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		var ch [3]int
		for i := range ch {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || n > 255 {
				return colorpicker.Color{}, apperrors.NewColorError("rgb", arg, fmt.Errorf("channel %q out of range 0-255", m[i+1]))
			}
			ch[i] = n
		}
		return colorpicker.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
	}

	if m := hsvPattern.FindStringSubmatch(s); m != nil {
		limits := [3]float64{360, 100, 100}
		var parts [3]float64
		for i := range parts {
			n, err := strconv.ParseFloat(m[i+1], 64)
			if err != nil || n > limits[i] {
				return colorpicker.Color{}, apperrors.NewColorError("hsv", arg, fmt.Errorf("component %q out of range 0-%g", m[i+1], limits[i]))
			}
			parts[i] = n
		}
		return colorpicker.ColorFromHSV(colorpicker.HSVFromScaled(parts[0], parts[1], parts[2])), nil
	}

	return colorpicker.ParseHex(arg)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}
