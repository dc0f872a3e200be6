// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"cogentcore.org/colorpicker/colors"
	"github.com/muesli/termenv"
)

// Swatch returns a block of the given color for the terminal of w,
// followed by its hex string. Terminals without color support only
// get the hex string.
func Swatch(w io.Writer, c *colors.Color) string {
	out := termenv.NewOutput(w)
	hex := c.HexString()
	if out.Profile == termenv.Ascii {
		return hex
	}
	return out.String("      ").Background(out.Color(hex)).String() + " " + hex
}
