// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"math"

	"cogentcore.org/colorpicker/colors/csscolor"
	"cogentcore.org/colorpicker/colors/space"
)

// BoxDims are the dimensions of a saturation and value box.
type BoxDims struct {
	Width, Height float64

	// Radius is the inset of the handle range from each edge of the box.
	Radius float64
}

// BoxDimensions returns the dimensions of the box for the given options.
func BoxDimensions(o Options) BoxDims {
	h := o.BoxHeight
	if h <= 0 {
		h = o.Width
	}
	return BoxDims{Width: o.Width, Height: h, Radius: o.Padding + o.HandleRadius}
}

// ranges returns the handle ranges of the box along x and y.
func (d BoxDims) ranges() (float64, float64) {
	return d.Width - d.Radius*2, d.Height - d.Radius*2
}

// BoxValueFromInput returns the saturation and value picked by the given
// point, with saturation increasing to the right and value increasing
// upward. Both are clamped to [0, 100]. The hue of the result is always
// zero, as the box does not control it.
func BoxValueFromInput(o Options, x, y float64) space.HSV {
	d := BoxDimensions(o)
	rx, ry := d.ranges()
	px := percentOf(x-d.Radius, rx)
	py := percentOf(y-d.Radius, ry)
	return space.HSV{
		S: math.Max(0, math.Min(px, 100)),
		V: math.Max(0, math.Min(100-py, 100)),
	}
}

// BoxHandlePosition returns the position of the box handle for the given color.
func BoxHandlePosition(o Options, c Color) Point {
	d := BoxDimensions(o)
	rx, ry := d.ranges()
	hsv := c.HSV()
	return Point{
		X: d.Radius + hsv.S/100*rx,
		Y: d.Radius + (ry - hsv.V/100*ry),
	}
}

// BoxGradients returns the two gradients of the box for the given color:
// the horizontal saturation gradient from white to the fully saturated hue,
// and the vertical value gradient from transparent to black that lies over it.
func BoxGradients(o Options, c Color) [2]Stops {
	hue := csscolor.FormatNumber(c.HSV().H)
	return [2]Stops{
		{{0, "#fff"}, {100, "hsl(" + hue + ",100%,50%)"}},
		{{0, "rgba(0,0,0,0)"}, {100, "#000"}},
	}
}

// percentOf returns v as a percent of rng, which is zero for an empty range.
func percentOf(v, rng float64) float64 {
	if rng <= 0 {
		return 0
	}
	return v / rng * 100
}
