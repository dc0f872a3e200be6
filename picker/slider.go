// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"math"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/colors/space"
	"gonum.org/v1/gonum/floats"
)

// kelvinStops is the number of stops sampled for the gradient of a kelvin slider.
const kelvinStops = 9

// SliderDims are the dimensions of a slider.
type SliderDims struct {
	// HandleStart is the offset of the start of the handle range along
	// the slider. For a circle slider, it is the inset of the ring from
	// the edge of the widget.
	HandleStart float64

	// HandleRange is the length over which the handle can move. For a
	// circle slider, it is the diameter of the ring of the handle.
	HandleRange float64

	Width, Height float64

	// Radius is the corner radius of a bar, or the
	// outer radius of a circle inside of its border.
	Radius float64

	// CX and CY are the center of a circle slider.
	CX, CY float64
}

// SliderSize returns the thickness of the sliders, which defaults
// to twice the sum of the padding and the handle radius.
func SliderSize(o Options) float64 {
	if o.SliderSize > 0 {
		return o.SliderSize
	}
	return o.Padding*2 + o.HandleRadius*2
}

// SliderLength returns the length of the sliders, which defaults to
// the width, less the room for a text input when there is one.
func SliderLength(o Options) float64 {
	switch {
	case o.ShowInput:
		return o.Width - 55
	case o.SliderLength > 0:
		return o.SliderLength
	}
	return o.Width
}

// SliderDimensions returns the dimensions of a slider for the given options.
// A bar runs along x in a vertical layout and along y in a horizontal one.
func SliderDimensions(o Options) SliderDims {
	if o.SliderShape == Circle {
		return SliderDims{
			HandleStart: o.Padding + o.HandleRadius,
			HandleRange: o.Width - o.Padding*2 - o.HandleRadius*2,
			Width:       o.Width,
			Height:      o.Width,
			Radius:      o.Width/2 - o.BorderWidth/2,
			CX:          o.Width / 2,
			CY:          o.Width / 2,
		}
	}
	size := SliderSize(o)
	length := SliderLength(o)
	d := SliderDims{
		HandleStart: size / 2,
		HandleRange: length - size,
		Radius:      size / 2,
		Width:       length,
		Height:      size,
	}
	if o.isHorizontal() {
		d.Width, d.Height = size, length
	}
	return d
}

// CurrentSliderValue returns the value of the channel of the slider
// for the given color, as a percent.
func CurrentSliderValue(o Options, c Color) float64 {
	switch o.SliderType {
	case SliderRed:
		return c.RGB().R / 2.55
	case SliderGreen:
		return c.RGB().G / 2.55
	case SliderBlue:
		return c.RGB().B / 2.55
	case SliderAlpha:
		return c.Alpha() * 100
	case SliderKelvin:
		p := percentOf(c.Kelvin()-o.MinTemperature, o.temperatureRange())
		return math.Max(0, math.Min(p, 100))
	case SliderHue:
		return c.HSV().H / 3.6
	case SliderSaturation:
		return c.HSV().S
	}
	return c.HSV().V
}

// SliderValueFromInput returns the value of the channel of the slider
// picked by the given point, in the units of the channel: degrees for
// hue, 0-255 for red, green and blue, 0-1 for alpha, kelvin for
// temperature, and a percent otherwise. The percent along the slider
// is rounded to an integer before it is scaled.
func SliderValueFromInput(o Options, x, y float64) float64 {
	d := SliderDimensions(o)
	var percent float64
	if o.SliderShape == Circle {
		a, _ := ringAngle(o, d.CX, d.CY, x, y)
		percent = math.Round(a / 3.6)
	} else {
		var pos float64
		if o.isHorizontal() {
			pos = -y + d.HandleRange + d.HandleStart
		} else {
			pos = x - d.HandleStart
		}
		pos = math.Max(math.Min(pos, d.HandleRange), 0)
		percent = math.Round(percentOf(pos, d.HandleRange))
	}
	return valueFromPercent(o, percent)
}

// valueFromPercent scales the given slider percent to the units
// of the channel of the slider.
func valueFromPercent(o Options, percent float64) float64 {
	switch o.SliderType {
	case SliderKelvin:
		return o.MinTemperature + o.temperatureRange()*(percent/100)
	case SliderAlpha:
		return percent / 100
	case SliderHue:
		return percent * 3.6
	case SliderRed, SliderGreen, SliderBlue:
		return percent * 2.55
	}
	return percent
}

// SliderHandlePosition returns the position of the slider handle for the
// given color. The value of a vertical bar increases upward. A circle
// places its handle around a ring, with the angle of the percent of
// the value translated like a hue on the wheel.
func SliderHandlePosition(o Options, c Color) Point {
	d := SliderDimensions(o)
	percent := CurrentSliderValue(o, c)
	if o.SliderShape == Circle {
		return ringPosition(o, d.CX, d.CY, d.HandleRange/2, percent*3.6)
	}
	horiz := o.isHorizontal()
	mid := d.Height / 2
	if horiz {
		mid = d.Width / 2
	}
	pos := d.HandleStart + percent/100*d.HandleRange
	if horiz {
		pos = -pos + d.HandleRange + d.HandleStart*2
		return Point{X: mid, Y: pos}
	}
	return Point{X: pos, Y: mid}
}

// SliderGradient returns the gradient stops of the slider for the given
// color, which show the colors that the slider can pick from its channel.
func SliderGradient(o Options, c Color) Stops {
	rgb := c.RGB()
	hsv := c.HSV()
	switch o.SliderType {
	case SliderRed:
		return Stops{{0, rgbStop(space.RGB{R: 0, G: rgb.G, B: rgb.B})}, {100, rgbStop(space.RGB{R: 255, G: rgb.G, B: rgb.B})}}
	case SliderGreen:
		return Stops{{0, rgbStop(space.RGB{R: rgb.R, G: 0, B: rgb.B})}, {100, rgbStop(space.RGB{R: rgb.R, G: 255, B: rgb.B})}}
	case SliderBlue:
		return Stops{{0, rgbStop(space.RGB{R: rgb.R, G: rgb.G, B: 0})}, {100, rgbStop(space.RGB{R: rgb.R, G: rgb.G, B: 255})}}
	case SliderAlpha:
		return Stops{{0, rgbaStop(rgb, 0)}, {100, rgbStop(rgb)}}
	case SliderKelvin:
		temps := floats.Span(make([]float64, kelvinStops), o.MinTemperature, o.MaxTemperature)
		stops := make(Stops, len(temps))
		for i, k := range temps {
			stops[i] = Stop{100 * float64(i) / (kelvinStops - 1), rgbStop(space.KelvinToRGB(k))}
		}
		return stops
	case SliderHue:
		return HueStops()
	case SliderSaturation:
		none := space.HSVToHSL(space.HSV{H: hsv.H, S: 0, V: hsv.V})
		full := space.HSVToHSL(space.HSV{H: hsv.H, S: 100, V: hsv.V})
		return Stops{{0, hslStop(none)}, {100, hslStop(full)}}
	}
	full := space.HSVToHSL(space.HSV{H: hsv.H, S: hsv.S, V: 100})
	return Stops{{0, "#000"}, {100, hslStop(full)}}
}

// SliderGradientCoords returns the end points of the linear gradient of a
// bar: left to right in a vertical layout and bottom to top in a
// horizontal one.
func SliderGradientCoords(o Options) GradientCoords {
	if o.isHorizontal() {
		return GradientCoords{X1: "0%", Y1: "100%", X2: "0%", Y2: "0%"}
	}
	return GradientCoords{X1: "0%", Y1: "0%", X2: "100%", Y2: "0%"}
}

// SetSliderValue sets the channel of the slider on the given color to the
// given value, in the units returned by [SliderValueFromInput]. The value
// is clamped to the range of the channel first.
func SetSliderValue(c *colors.Color, o Options, v float64) {
	v = ClampSliderValue(o, v)
	switch o.SliderType {
	case SliderRed:
		c.SetRed(v)
	case SliderGreen:
		c.SetGreen(v)
	case SliderBlue:
		c.SetBlue(v)
	case SliderAlpha:
		c.SetAlpha(v)
	case SliderKelvin:
		c.SetKelvin(v)
	case SliderHue:
		c.SetHue(v)
	case SliderSaturation:
		c.SetSaturation(v)
	default:
		c.SetValue(v)
	}
}
