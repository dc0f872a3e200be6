// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorpick converts colors between their representations and
// maps them to and from the geometry of the widgets of a color picker.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/colorpicker/base/logx"
)

var (
	optionsFile = flag.String("options", "", "the picker options file (.toml, .json, .yaml or .yml)")
	verbose     = flag.Bool("v", false, "whether to print verbose information")
	veryVerbose = flag.Bool("vv", false, "whether to print very verbose debugging information")
	quiet       = flag.Bool("q", false, "whether to only print errors")
	watch       = flag.Bool("watch", false, "whether to run the command again each time the options file changes")
)

func main() {
	flag.Usage = Usage
	flag.Parse()
	logx.UserLevel = logx.LevelFromFlags(*veryVerbose, *verbose, *quiet)
	logx.SetDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cfg := &Config{Options: *optionsFile, Watch: *watch, Args: flag.Args()}
	if err := Run(ctx, os.Stdout, cfg); err != nil {
		slog.Error(err.Error())
		stop()
		os.Exit(1)
	}
}

// Usage is a replacement usage function for the flags package.
func Usage() {
	_, _ = fmt.Fprintf(os.Stderr, "Colorpick converts colors and maps them to and from color picker widgets.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "\tcolorpick [flags] convert <color>\n")
	_, _ = fmt.Fprintf(os.Stderr, "\tcolorpick [flags] wheel|box|slider <color>\n")
	_, _ = fmt.Fprintf(os.Stderr, "\tcolorpick [flags] pick wheel|box|slider <color> <x> <y>\n")
	_, _ = fmt.Fprintf(os.Stderr, "\tcolorpick [flags] image wheel|box|slider <color> <file>\n")
	_, _ = fmt.Fprintf(os.Stderr, "Colors can be hex, rgb(), rgba(), hsl() or hsla() strings, or color names.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
