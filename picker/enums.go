// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import "cogentcore.org/colorpicker/enums"

// LayoutDirections are the directions in which the
// widgets of a picker are laid out.
type LayoutDirections int32

const (
	// Vertical stacks the widgets on top of each other,
	// with horizontal sliders.
	Vertical LayoutDirections = iota

	// Horizontal places the widgets next to each other,
	// with vertical sliders.
	Horizontal
)

// WheelDirections are the directions in which hue
// increases around a wheel.
type WheelDirections int32

const (
	// Anticlockwise increases the hue anticlockwise.
	Anticlockwise WheelDirections = iota

	// Clockwise increases the hue clockwise.
	Clockwise
)

// SliderTypes are the color channels that a slider can control.
type SliderTypes int32

const (
	// SliderValue controls the HSV value.
	SliderValue SliderTypes = iota

	// SliderHue controls the hue.
	SliderHue

	// SliderSaturation controls the HSV saturation.
	SliderSaturation

	// SliderAlpha controls the alpha.
	SliderAlpha

	// SliderRed controls the red channel.
	SliderRed

	// SliderGreen controls the green channel.
	SliderGreen

	// SliderBlue controls the blue channel.
	SliderBlue

	// SliderKelvin controls the correlated color temperature.
	SliderKelvin
)

// SliderShapes are the shapes a slider can have.
type SliderShapes int32

const (
	// Bar is a straight slider.
	Bar SliderShapes = iota

	// Circle is a ring shaped slider.
	Circle
)

var _LayoutDirectionsValues = []LayoutDirections{Vertical, Horizontal}

var _LayoutDirectionsValueMap = map[string]LayoutDirections{`vertical`: 0, `horizontal`: 1}

var _LayoutDirectionsDescMap = map[LayoutDirections]string{
	0: `Vertical stacks the widgets on top of each other, with horizontal sliders.`,
	1: `Horizontal places the widgets next to each other, with vertical sliders.`,
}

var _LayoutDirectionsMap = map[LayoutDirections]string{0: `vertical`, 1: `horizontal`}

// String returns the string representation of this LayoutDirections value.
func (i LayoutDirections) String() string { return enums.String(i, _LayoutDirectionsMap) }

// SetString sets the LayoutDirections value from its string representation,
// and returns an error if the string is invalid.
func (i *LayoutDirections) SetString(s string) error {
	return enums.SetStringLower(i, s, _LayoutDirectionsValueMap, "LayoutDirections")
}

// Int64 returns the LayoutDirections value as an int64.
func (i LayoutDirections) Int64() int64 { return int64(i) }

// SetInt64 sets the LayoutDirections value from an int64.
func (i *LayoutDirections) SetInt64(in int64) { *i = LayoutDirections(in) }

// Desc returns the description of the LayoutDirections value.
func (i LayoutDirections) Desc() string {
	return enums.Desc(i, _LayoutDirectionsDescMap, _LayoutDirectionsMap)
}

// LayoutDirectionsValues returns all possible values for the type LayoutDirections.
func LayoutDirectionsValues() []LayoutDirections { return _LayoutDirectionsValues }

// Values returns all possible values for the type LayoutDirections.
func (i LayoutDirections) Values() []enums.Enum { return enums.Values(_LayoutDirectionsValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i LayoutDirections) MarshalText() ([]byte, error) { return enums.MarshalText(i) }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *LayoutDirections) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "LayoutDirections")
}

var _WheelDirectionsValues = []WheelDirections{Anticlockwise, Clockwise}

var _WheelDirectionsValueMap = map[string]WheelDirections{`anticlockwise`: 0, `clockwise`: 1}

var _WheelDirectionsDescMap = map[WheelDirections]string{
	0: `Anticlockwise increases the hue anticlockwise.`,
	1: `Clockwise increases the hue clockwise.`,
}

var _WheelDirectionsMap = map[WheelDirections]string{0: `anticlockwise`, 1: `clockwise`}

// String returns the string representation of this WheelDirections value.
func (i WheelDirections) String() string { return enums.String(i, _WheelDirectionsMap) }

// SetString sets the WheelDirections value from its string representation,
// and returns an error if the string is invalid.
func (i *WheelDirections) SetString(s string) error {
	return enums.SetStringLower(i, s, _WheelDirectionsValueMap, "WheelDirections")
}

// Int64 returns the WheelDirections value as an int64.
func (i WheelDirections) Int64() int64 { return int64(i) }

// SetInt64 sets the WheelDirections value from an int64.
func (i *WheelDirections) SetInt64(in int64) { *i = WheelDirections(in) }

// Desc returns the description of the WheelDirections value.
func (i WheelDirections) Desc() string {
	return enums.Desc(i, _WheelDirectionsDescMap, _WheelDirectionsMap)
}

// WheelDirectionsValues returns all possible values for the type WheelDirections.
func WheelDirectionsValues() []WheelDirections { return _WheelDirectionsValues }

// Values returns all possible values for the type WheelDirections.
func (i WheelDirections) Values() []enums.Enum { return enums.Values(_WheelDirectionsValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i WheelDirections) MarshalText() ([]byte, error) { return enums.MarshalText(i) }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *WheelDirections) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "WheelDirections")
}

var _SliderTypesValues = []SliderTypes{SliderValue, SliderHue, SliderSaturation, SliderAlpha, SliderRed, SliderGreen, SliderBlue, SliderKelvin}

var _SliderTypesValueMap = map[string]SliderTypes{`value`: 0, `hue`: 1, `saturation`: 2, `alpha`: 3, `red`: 4, `green`: 5, `blue`: 6, `kelvin`: 7}

var _SliderTypesDescMap = map[SliderTypes]string{
	0: `SliderValue controls the HSV value.`,
	1: `SliderHue controls the hue.`,
	2: `SliderSaturation controls the HSV saturation.`,
	3: `SliderAlpha controls the alpha.`,
	4: `SliderRed controls the red channel.`,
	5: `SliderGreen controls the green channel.`,
	6: `SliderBlue controls the blue channel.`,
	7: `SliderKelvin controls the correlated color temperature.`,
}

var _SliderTypesMap = map[SliderTypes]string{0: `value`, 1: `hue`, 2: `saturation`, 3: `alpha`, 4: `red`, 5: `green`, 6: `blue`, 7: `kelvin`}

// String returns the string representation of this SliderTypes value.
func (i SliderTypes) String() string { return enums.String(i, _SliderTypesMap) }

// SetString sets the SliderTypes value from its string representation,
// and returns an error if the string is invalid.
func (i *SliderTypes) SetString(s string) error {
	return enums.SetStringLower(i, s, _SliderTypesValueMap, "SliderTypes")
}

// Int64 returns the SliderTypes value as an int64.
func (i SliderTypes) Int64() int64 { return int64(i) }

// SetInt64 sets the SliderTypes value from an int64.
func (i *SliderTypes) SetInt64(in int64) { *i = SliderTypes(in) }

// Desc returns the description of the SliderTypes value.
func (i SliderTypes) Desc() string { return enums.Desc(i, _SliderTypesDescMap, _SliderTypesMap) }

// SliderTypesValues returns all possible values for the type SliderTypes.
func SliderTypesValues() []SliderTypes { return _SliderTypesValues }

// Values returns all possible values for the type SliderTypes.
func (i SliderTypes) Values() []enums.Enum { return enums.Values(_SliderTypesValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i SliderTypes) MarshalText() ([]byte, error) { return enums.MarshalText(i) }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *SliderTypes) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "SliderTypes")
}

var _SliderShapesValues = []SliderShapes{Bar, Circle}

var _SliderShapesValueMap = map[string]SliderShapes{`bar`: 0, `circle`: 1}

var _SliderShapesDescMap = map[SliderShapes]string{
	0: `Bar is a straight slider.`,
	1: `Circle is a ring shaped slider.`,
}

var _SliderShapesMap = map[SliderShapes]string{0: `bar`, 1: `circle`}

// String returns the string representation of this SliderShapes value.
func (i SliderShapes) String() string { return enums.String(i, _SliderShapesMap) }

// SetString sets the SliderShapes value from its string representation,
// and returns an error if the string is invalid.
func (i *SliderShapes) SetString(s string) error {
	return enums.SetStringLower(i, s, _SliderShapesValueMap, "SliderShapes")
}

// Int64 returns the SliderShapes value as an int64.
func (i SliderShapes) Int64() int64 { return int64(i) }

// SetInt64 sets the SliderShapes value from an int64.
func (i *SliderShapes) SetInt64(in int64) { *i = SliderShapes(in) }

// Desc returns the description of the SliderShapes value.
func (i SliderShapes) Desc() string { return enums.Desc(i, _SliderShapesDescMap, _SliderShapesMap) }

// SliderShapesValues returns all possible values for the type SliderShapes.
func SliderShapesValues() []SliderShapes { return _SliderShapesValues }

// Values returns all possible values for the type SliderShapes.
func (i SliderShapes) Values() []enums.Enum { return enums.Values(_SliderShapesValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i SliderShapes) MarshalText() ([]byte, error) { return enums.MarshalText(i) }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *SliderShapes) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "SliderShapes")
}
