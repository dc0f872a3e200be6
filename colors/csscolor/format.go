// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csscolor

import (
	"fmt"
	"math"
	"strconv"

	"cogentcore.org/colorpicker/colors/space"
)

// FormatNumber formats the given number with the fewest digits that
// represent it exactly, without an exponent (for example 0.5 and 255).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRGB returns the rgb(r, g, b) string of the given color,
// with each channel rounded to an integer.
func FormatRGB(c space.RGB) string {
	c = c.Round()
	return "rgb(" + FormatNumber(c.R) + ", " + FormatNumber(c.G) + ", " + FormatNumber(c.B) + ")"
}

// FormatRGBA returns the rgba(r, g, b, a) string of the given color,
// with each color channel rounded to an integer.
func FormatRGBA(c space.RGBA) string {
	rgb := c.RGB().Round()
	return "rgba(" + FormatNumber(rgb.R) + ", " + FormatNumber(rgb.G) + ", " + FormatNumber(rgb.B) + ", " + FormatNumber(c.A) + ")"
}

// FormatHex returns the #rrggbb string of the given color.
func FormatHex(c space.RGB) string {
	c = c.Round()
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
}

// FormatHex8 returns the #rrggbbaa string of the given color.
// The alpha byte is floored rather than rounded.
func FormatHex8(c space.RGBA) string {
	return FormatHex(c.RGB()) + hexByte(math.Floor(c.A*255))
}

// FormatHSL returns the hsl(h, s%, l%) string of the given color,
// with each channel rounded to an integer.
func FormatHSL(c space.HSL) string {
	c = c.Round()
	return "hsl(" + FormatNumber(c.H) + ", " + FormatNumber(c.S) + "%, " + FormatNumber(c.L) + "%)"
}

// FormatHSLA returns the hsla(h, s%, l%, a) string of the given color,
// with each color channel rounded to an integer.
func FormatHSLA(c space.HSLA) string {
	hsl := c.HSL().Round()
	return "hsla(" + FormatNumber(hsl.H) + ", " + FormatNumber(hsl.S) + "%, " + FormatNumber(hsl.L) + "%, " + FormatNumber(c.A) + ")"
}

func hexByte(v float64) string {
	return fmt.Sprintf("%02x", uint8(math.Min(math.Max(v, 0), 255)))
}
