// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"strconv"

	"cogentcore.org/colorpicker/base/errors"
	"cogentcore.org/colorpicker/base/iox/imagex"
	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/colors/csscolor"
	"cogentcore.org/colorpicker/colors/space"
	"cogentcore.org/colorpicker/picker"
	"github.com/mitchellh/go-homedir"
)

// ErrUsage is returned for a command line that names no valid command.
var ErrUsage = errors.New("invalid usage")

// Config is the configuration of a run of colorpick.
type Config struct {

	// Options is the options file, if any. A leading ~ is expanded
	// to the home directory.
	Options string

	// Watch is whether to run the command again each time
	// the options file changes.
	Watch bool

	// Args are the command and its arguments.
	Args []string
}

// Run runs the command of the given config, writing its output to w.
// In watch mode, it runs until the context is done.
func Run(ctx context.Context, w io.Writer, cfg *Config) error {
	if len(cfg.Args) == 0 {
		return fmt.Errorf("%w: missing command", ErrUsage)
	}
	if cfg.Options == "" {
		if cfg.Watch {
			return fmt.Errorf("%w: -watch needs an -options file", ErrUsage)
		}
		return runCommand(w, picker.DefaultOptions(), cfg.Args)
	}
	filename, err := homedir.Expand(cfg.Options)
	if err != nil {
		return fmt.Errorf("expanding options file name: %w", err)
	}
	if cfg.Watch {
		return picker.WatchOptions(ctx, filename, func(o picker.Options) {
			slog.Info("running with options", "file", filename)
			if err := runCommand(w, o, cfg.Args); err != nil {
				slog.Error(err.Error())
			}
		})
	}
	o, err := picker.OpenOptions(filename)
	if err != nil {
		return err
	}
	return runCommand(w, o, cfg.Args)
}

// runCommand runs the given command with the given options.
func runCommand(w io.Writer, o picker.Options, args []string) error {
	cmd, args := args[0], args[1:]
	slog.Debug("running command", "command", cmd, "args", args)
	switch cmd {
	case "convert":
		c, err := colorArg(cmd, args)
		if err != nil {
			return err
		}
		return Convert(w, c)
	case "wheel", "box", "slider":
		c, err := colorArg(cmd, args)
		if err != nil {
			return err
		}
		return Render(w, o, cmd, c)
	case "pick":
		if len(args) != 4 {
			return fmt.Errorf("%w: pick needs a widget, a color and a point", ErrUsage)
		}
		c, err := colors.Parse(args[1])
		if err != nil {
			return err
		}
		x, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("pick: invalid x: %w", err)
		}
		y, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("pick: invalid y: %w", err)
		}
		return Pick(w, o, args[0], c, x, y)
	case "image":
		if len(args) != 3 {
			return fmt.Errorf("%w: image needs a widget, a color and a file", ErrUsage)
		}
		c, err := colors.Parse(args[1])
		if err != nil {
			return err
		}
		filename, err := homedir.Expand(args[2])
		if err != nil {
			return fmt.Errorf("expanding image file name: %w", err)
		}
		return Image(o, args[0], c, filename)
	}
	return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}

// colorArg parses the only argument of a command as a color.
func colorArg(cmd string, args []string) (*colors.Color, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s needs a color", ErrUsage, cmd)
	}
	return colors.Parse(args[0])
}

// Convert writes all of the representations of the given color.
func Convert(w io.Writer, c *colors.Color) error {
	hsv := c.HSV()
	lines := [][2]string{
		{"hex", c.HexString()},
		{"hex8", c.Hex8String()},
		{"rgb", c.RGBString()},
		{"rgba", c.RGBAString()},
		{"hsl", c.HSLString()},
		{"hsla", c.HSLAString()},
		{"hsv", "hsv(" + csscolor.FormatNumber(hsv.H) + ", " + csscolor.FormatNumber(hsv.S) + "%, " + csscolor.FormatNumber(hsv.V) + "%)"},
		{"kelvin", strconv.FormatFloat(c.Kelvin(), 'f', 0, 64)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-7s %s\n", l[0], l[1]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%-7s %s\n", "swatch", Swatch(w, c))
	return err
}

// Render writes the handle position and the gradients
// of the given widget for the given color.
func Render(w io.Writer, o picker.Options, widget string, c *colors.Color) error {
	var p picker.Point
	var gradients []string
	switch widget {
	case "wheel":
		p = picker.WheelHandlePosition(o, c)
		gradients = append(gradients, picker.WheelGradient(o, c).CSS("conic", "from 90deg"))
	case "box":
		p = picker.BoxHandlePosition(o, c)
		g := picker.BoxGradients(o, c)
		gradients = append(gradients, g[0].CSS("linear", "to right"), g[1].CSS("linear", "to bottom"))
	case "slider":
		p = picker.SliderHandlePosition(o, c)
		dir := "to right"
		if o.LayoutDirection == picker.Horizontal {
			dir = "to top"
		}
		gradients = append(gradients, picker.SliderGradient(o, c).CSS("linear", dir))
		if _, err := fmt.Fprintf(w, "%-8s %s %s%%\n", "value", o.SliderType, csscolor.FormatNumber(picker.CurrentSliderValue(o, c))); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown widget %q", ErrUsage, widget)
	}
	if _, err := fmt.Fprintf(w, "%-8s %s %s\n", "handle", csscolor.FormatNumber(p.X), csscolor.FormatNumber(p.Y)); err != nil {
		return err
	}
	for _, g := range gradients {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", "gradient", g); err != nil {
			return err
		}
	}
	return nil
}

// Pick applies a pointer input at the given point on the given widget
// to the given color, and writes the resulting color.
func Pick(w io.Writer, o picker.Options, widget string, c *colors.Color, x, y float64) error {
	changed := colors.Changes{}
	c = colors.MustNew(c, func(c *colors.Color, changes colors.Changes) {
		slog.Debug("color changed", "color", c.String(), "h", changes.H, "s", changes.S, "v", changes.V, "a", changes.A)
		changed = changes
	})
	switch widget {
	case "wheel":
		hs := picker.WheelValueFromInput(o, x, y)
		c.SetHSV(space.HSV{H: hs.H, S: hs.S, V: c.Value()})
	case "box":
		sv := picker.BoxValueFromInput(o, x, y)
		c.SetHSV(space.HSV{H: c.Hue(), S: sv.S, V: sv.V})
	case "slider":
		picker.SetSliderValue(c, o, picker.SliderValueFromInput(o, x, y))
	default:
		return fmt.Errorf("%w: unknown widget %q", ErrUsage, widget)
	}
	if !changed.Any() {
		slog.Info("pick did not change the color")
	}
	return Convert(w, c)
}

// Image saves a preview image of the given widget for the given color
// to the given file, in the format given by its extension.
func Image(o picker.Options, widget string, c *colors.Color, filename string) error {
	var im image.Image
	switch widget {
	case "wheel":
		im = picker.WheelImage(o, c)
	case "box":
		im = picker.BoxImage(o, c)
	case "slider":
		im = picker.SliderImage(o, c)
	default:
		return fmt.Errorf("%w: unknown widget %q", ErrUsage, widget)
	}
	if err := imagex.Save(im, filename); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	slog.Info("saved image", "widget", widget, "file", filename)
	return nil
}
