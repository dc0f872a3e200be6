// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"math"
	"strings"

	"cogentcore.org/colorpicker/colors/csscolor"
)

// HandleAtPoint returns the index of the first of the given handles
// whose center is closer to the given point than the handle radius,
// and false if there is no such handle.
func HandleAtPoint(o Options, x, y float64, handles []Point) (int, bool) {
	for i, h := range handles {
		dx := h.X - x
		dy := h.Y - y
		if math.Sqrt(dx*dx+dy*dy) < o.HandleRadius {
			return i, true
		}
	}
	return -1, false
}

// ArcPath returns the SVG path data of the arc of the circle with the
// given center and radius, from the start to the end angle in degrees.
func ArcPath(cx, cy, radius, start, end float64) string {
	large := "0"
	if end-start > 180 {
		large = "1"
	}
	start *= math.Pi / 180
	end *= math.Pi / 180
	x1 := cx + radius*math.Cos(end)
	y1 := cy + radius*math.Sin(end)
	x2 := cx + radius*math.Cos(start)
	y2 := cy + radius*math.Sin(start)
	r := csscolor.FormatNumber(radius)
	return strings.Join([]string{
		"M", csscolor.FormatNumber(x1), csscolor.FormatNumber(y1),
		"A", r, r, "0", large, "0", csscolor.FormatNumber(x2), csscolor.FormatNumber(y2),
	}, " ")
}
