// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"math"

	"cogentcore.org/colorpicker/colors/space"
)

// WheelDims are the dimensions of a hue and saturation wheel.
type WheelDims struct {
	// Width is the outer diameter of the wheel, including its border.
	Width float64

	// Radius is the radius of the wheel inside of its border.
	Radius float64

	// CX and CY are the center of the wheel.
	CX, CY float64
}

// WheelDimensions returns the dimensions of the wheel for the given options.
func WheelDimensions(o Options) WheelDims {
	r := o.Width / 2
	return WheelDims{Width: o.Width, Radius: r - o.BorderWidth, CX: r, CY: r}
}

// WheelHandleRange returns the largest distance from the center
// of the wheel at which its handle can be placed.
func WheelHandleRange(o Options) float64 {
	return o.Width/2 - o.Padding - o.HandleRadius - o.BorderWidth
}

// TranslateWheelAngle translates the given angle in degrees according to
// the [Options.WheelAngle] and [Options.WheelDirection]. Without invert, it
// turns the angle of a point around the center, measured from the +x
// axis in screen coordinates, into a hue; with invert, it turns a hue into the angle used to
// place the handle. The result is in the range [0, 360).
func TranslateWheelAngle(o Options, angle float64, invert bool) float64 {
	wa := o.WheelAngle
	switch {
	case o.WheelDirection == Clockwise && invert:
		angle = wa + angle
	case o.WheelDirection == Clockwise:
		angle = 360 - wa + angle
	case invert:
		angle = wa + 180 - angle
	default:
		angle = wa - angle
	}
	return mod(angle, 360)
}

// IsInputInsideWheel returns whether the given point is inside of the outer
// edge of the wheel, border included.
func IsInputInsideWheel(o Options, x, y float64) bool {
	d := WheelDimensions(o)
	dx := d.CX - x
	dy := d.CY - y
	return math.Sqrt(dx*dx+dy*dy) < d.Width/2
}

// WheelHandlePosition returns the position of the wheel handle for the
// given color: the hue sets its angle and the saturation its distance
// from the center.
func WheelHandlePosition(o Options, c Color) Point {
	hsv := c.HSV()
	d := WheelDimensions(o)
	return ringPosition(o, d.CX, d.CY, hsv.S/100*WheelHandleRange(o), hsv.H)
}

// WheelValueFromInput returns the hue and saturation picked by the given
// point. The value of the result is always zero, as the wheel does not
// control it. Points beyond the handle range, including points outside of
// the wheel, pick a saturation of 100.
func WheelValueFromInput(o Options, x, y float64) space.HSV {
	d := WheelDimensions(o)
	rng := WheelHandleRange(o)
	h, dist := ringAngle(o, d.CX, d.CY, x, y)
	s := 0.0
	if rng > 0 {
		s = math.Round(100 / rng * math.Min(dist, rng))
	}
	return space.HSV{H: math.Round(h), S: s}
}

// WheelGradient returns the stops of the conic hue gradient of the wheel,
// at the value of the given color. The stops run clockwise, as in a CSS
// conic gradient, starting from the hue of 0.
func WheelGradient(o Options, c Color) Stops {
	v := c.HSV().V
	stops := make(Stops, len(hueStops))
	for i, st := range hueStops {
		h := st.Offset * 3.6
		if o.WheelDirection == Anticlockwise {
			h = mod(360-h, 360)
		}
		stops[i] = Stop{st.Offset, hslStop(space.HSVToHSL(space.HSV{H: h, S: 100, V: v}))}
	}
	return stops
}

// ringPosition returns the point at the given distance from the given
// center, at the angle used by the wheel for the given hue.
func ringPosition(o Options, cx, cy, dist, hue float64) Point {
	angle := (180 + TranslateWheelAngle(o, hue, true)) * (math.Pi / 180)
	dir := 1.0
	if o.WheelDirection == Clockwise {
		dir = -1
	}
	return Point{
		X: cx + dist*math.Cos(angle)*dir,
		Y: cy + dist*math.Sin(angle)*dir,
	}
}

// ringAngle is the inverse of [ringPosition]: it returns the hue at
// the angle of the given point around the given center, and the
// distance of the point from the center.
func ringAngle(o Options, cx, cy, x, y float64) (hue, dist float64) {
	dx := cx - x
	dy := cy - y
	angle := math.Atan2(-dy, -dx) * (180 / math.Pi)
	return TranslateWheelAngle(o, angle, false), math.Sqrt(dx*dx + dy*dy)
}

// mod returns a modulo n, always in the range [0, n).
func mod(a, n float64) float64 {
	return math.Mod(math.Mod(a, n)+n, n)
}
