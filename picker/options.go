// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picker maps between colors and the geometry of the widgets
// of a color picker: a hue and saturation wheel, a saturation and value
// box, and single channel sliders. Every function is pure: rendering
// functions turn a color into handle positions and gradient stops, and
// input functions turn a pointer position into channel values, clamping
// positions that lie outside of the widget.
package picker

import (
	"cogentcore.org/colorpicker/base/errors"
	"cogentcore.org/colorpicker/base/reflectx"
	"cogentcore.org/colorpicker/colors/space"
)

// Options are the layout and behavior options shared by the widgets
// of a picker. Sizes are in pixels. The optional sizes use a value
// of zero or less to mean that they should be computed automatically.
type Options struct {

	// Width is the width of the widgets, and the diameter of the wheel.
	Width float64 `default:"300"`

	// Padding is the space between the edge of
	// a widget and the range of its handles.
	Padding float64 `default:"6"`

	// BorderWidth is the width of the border around the widgets.
	BorderWidth float64 `default:"0"`

	// HandleRadius is the radius of the handles.
	HandleRadius float64 `default:"8"`

	// LayoutDirection is the direction in which the widgets are laid out.
	// Sliders run perpendicular to it.
	LayoutDirection LayoutDirections `default:"vertical"`

	// WheelAngle is the angle, in degrees, at which the wheel places a hue of 0.
	WheelAngle float64 `default:"0"`

	// WheelDirection is the direction in which hue increases around the wheel.
	WheelDirection WheelDirections `default:"anticlockwise"`

	// BoxHeight is the height of the box. It defaults to the Width.
	BoxHeight float64

	// SliderSize is the thickness of the sliders. It defaults to
	// twice the sum of the Padding and the HandleRadius.
	SliderSize float64

	// SliderLength is the length of the sliders. It defaults to the Width.
	SliderLength float64

	// ShowInput is whether the sliders leave room for a text input
	// next to them, which shortens them.
	ShowInput bool

	// SliderShape is the shape of the sliders.
	SliderShape SliderShapes `default:"bar"`

	// SliderType is the color channel that a slider controls.
	SliderType SliderTypes `default:"value"`

	// MinTemperature is the lowest temperature of a kelvin slider.
	MinTemperature float64 `default:"2200"`

	// MaxTemperature is the highest temperature of a kelvin slider.
	MaxTemperature float64 `default:"11000"`
}

// Defaults sets the options to their default values.
func (o *Options) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(o))
}

// DefaultOptions returns a new set of options with the default values.
func DefaultOptions() Options {
	o := Options{}
	o.Defaults()
	return o
}

// Point is a position in pixels, relative to the top left of a widget.
type Point struct {
	X, Y float64
}

// Color is the read-only view of a color used by the rendering
// functions. It is satisfied by *colors.Color.
type Color interface {
	HSV() space.HSV
	RGB() space.RGB
	Alpha() float64
	Kelvin() float64
}

func (o Options) isHorizontal() bool {
	return o.LayoutDirection == Horizontal
}

func (o Options) temperatureRange() float64 {
	return o.MaxTemperature - o.MinTemperature
}
