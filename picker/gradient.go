// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"strings"

	"cogentcore.org/colorpicker/colors/csscolor"
	"cogentcore.org/colorpicker/colors/space"
)

// Stop is one color stop of a gradient.
type Stop struct {
	// Offset is the position of the stop along the gradient, as a percent.
	Offset float64

	// Color is the CSS color string of the stop.
	Color string
}

// Stops are the color stops of a gradient, in ascending
// order of offset from 0 to 100.
type Stops []Stop

// CSS returns the CSS gradient function of the given kind (such as
// "linear" or "conic") in the given direction (such as "to right" or
// "from 90deg"), with these stops.
func (s Stops) CSS(kind, direction string) string {
	b := strings.Builder{}
	b.WriteString(kind)
	b.WriteString("-gradient(")
	b.WriteString(direction)
	b.WriteString(", ")
	for i, st := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(st.Color)
		b.WriteByte(' ')
		b.WriteString(csscolor.FormatNumber(st.Offset))
		b.WriteByte('%')
	}
	b.WriteByte(')')
	return b.String()
}

// GradientCoords are the end points of a linear gradient,
// as percent strings in the form of SVG linearGradient attributes.
type GradientCoords struct {
	X1, Y1, X2, Y2 string
}

// hueStops is the rainbow of fully saturated hues.
var hueStops = Stops{
	{0, "#f00"},
	{16.666, "#ff0"},
	{33.333, "#0f0"},
	{50, "#0ff"},
	{66.666, "#00f"},
	{83.333, "#f0f"},
	{100, "#f00"},
}

// HueStops returns the stops of the fixed hue rainbow gradient.
func HueStops() Stops {
	return append(Stops(nil), hueStops...)
}

// rgbStop returns the compact rgb(r,g,b) string of the given color.
func rgbStop(c space.RGB) string {
	return "rgb(" + csscolor.FormatNumber(c.R) + "," + csscolor.FormatNumber(c.G) + "," + csscolor.FormatNumber(c.B) + ")"
}

// rgbaStop returns the compact rgba(r,g,b,a) string of the given color.
func rgbaStop(c space.RGB, a float64) string {
	return "rgba(" + csscolor.FormatNumber(c.R) + "," + csscolor.FormatNumber(c.G) + "," + csscolor.FormatNumber(c.B) + "," + csscolor.FormatNumber(a) + ")"
}

// hslStop returns the compact hsl(h,s%,l%) string of the given color,
// without rounding.
func hslStop(c space.HSL) string {
	return "hsl(" + csscolor.FormatNumber(c.H) + "," + csscolor.FormatNumber(c.S) + "%," + csscolor.FormatNumber(c.L) + "%)"
}
