// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package space provides the channel sets of the color spaces used by a
// color picker (RGB, HSV, HSL, and correlated color temperature) and the
// pure conversion functions between them.
//
// All channels are float64 values in their natural ranges:
// RGB channels are 0-255, hue is 0-360 degrees, saturation, value and
// lightness are 0-100 percent, and alpha is 0-1.
package space

import (
	"image/color"
	"math"
)

// RGB is a red, green, blue channel set with channels in the range 0-255.
type RGB struct {
	R float64 `min:"0" max:"255"`
	G float64 `min:"0" max:"255"`
	B float64 `min:"0" max:"255"`
}

// RGBA is an [RGB] channel set with an alpha channel in the range 0-1.
type RGBA struct {
	R float64 `min:"0" max:"255"`
	G float64 `min:"0" max:"255"`
	B float64 `min:"0" max:"255"`
	A float64 `min:"0" max:"1"`
}

// HSV is a hue, saturation, value channel set.
type HSV struct {

	// H is the hue in degrees
	H float64 `min:"0" max:"360"`

	// S is the saturation in percent
	S float64 `min:"0" max:"100"`

	// V is the value (brightness) in percent
	V float64 `min:"0" max:"100"`
}

// HSVA is an [HSV] channel set with an alpha channel in the range 0-1.
// It is the canonical representation of a picker color.
type HSVA struct {
	H float64 `min:"0" max:"360"`
	S float64 `min:"0" max:"100"`
	V float64 `min:"0" max:"100"`
	A float64 `min:"0" max:"1"`
}

// HSL is a hue, saturation, lightness channel set.
type HSL struct {

	// H is the hue in degrees
	H float64 `min:"0" max:"360"`

	// S is the saturation in percent
	S float64 `min:"0" max:"100"`

	// L is the lightness in percent
	L float64 `min:"0" max:"100"`
}

// HSLA is an [HSL] channel set with an alpha channel in the range 0-1.
type HSLA struct {
	H float64 `min:"0" max:"360"`
	S float64 `min:"0" max:"100"`
	L float64 `min:"0" max:"100"`
	A float64 `min:"0" max:"1"`
}

// WithAlpha returns the channel set with the given alpha.
func (c RGB) WithAlpha(a float64) RGBA { return RGBA{c.R, c.G, c.B, a} }

// RGB returns the channel set without alpha.
func (c RGBA) RGB() RGB { return RGB{c.R, c.G, c.B} }

// WithAlpha returns the channel set with the given alpha.
func (c HSV) WithAlpha(a float64) HSVA { return HSVA{c.H, c.S, c.V, a} }

// HSV returns the channel set without alpha.
func (c HSVA) HSV() HSV { return HSV{c.H, c.S, c.V} }

// WithAlpha returns the channel set with the given alpha.
func (c HSL) WithAlpha(a float64) HSLA { return HSLA{c.H, c.S, c.L, a} }

// HSL returns the channel set without alpha.
func (c HSLA) HSL() HSL { return HSL{c.H, c.S, c.L} }

// Round returns the channel set with every channel rounded
// to the nearest integer.
func (c RGB) Round() RGB {
	return RGB{math.Round(c.R), math.Round(c.G), math.Round(c.B)}
}

// Round returns the channel set with every channel rounded
// to the nearest integer.
func (c HSL) Round() HSL {
	return HSL{math.Round(c.H), math.Round(c.S), math.Round(c.L)}
}

// RGBA implements the [color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.WithAlpha(1).RGBA()
}

// RGBA implements the [color.Color] interface.
// The channels are premultiplied by alpha.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.AsNRGBA().RGBA()
}

// AsNRGBA returns the channel set as an 8-bit non-premultiplied [color.NRGBA].
func (c RGBA) AsNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(math.Round(c.R), 0, 255)),
		G: uint8(clamp(math.Round(c.G), 0, 255)),
		B: uint8(clamp(math.Round(c.B), 0, 255)),
		A: uint8(clamp(math.Round(c.A*255), 0, 255)),
	}
}

// RGBA implements the [color.Color] interface.
func (c HSV) RGBA() (r, g, b, a uint32) {
	return HSVToRGB(c).RGBA()
}

// RGBA implements the [color.Color] interface.
func (c HSVA) RGBA() (r, g, b, a uint32) {
	return HSVToRGB(c.HSV()).WithAlpha(c.A).RGBA()
}

// RGBA implements the [color.Color] interface.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return HSVToRGB(HSLToHSV(c)).RGBA()
}

// RGBA implements the [color.Color] interface.
func (c HSLA) RGBA() (r, g, b, a uint32) {
	return HSVToRGB(HSLToHSV(c.HSL())).WithAlpha(c.A).RGBA()
}

// FromColor returns the [RGBA] channel set of the given [color.Color],
// using its 8-bit non-premultiplied form.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{float64(n.R), float64(n.G), float64(n.B), float64(n.A) / 255}
}

// Model is the standard [color.Model] that converts colors to [HSVA].
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSVA); ok {
		return h
	}
	rgba := FromColor(c)
	return RGBToHSV(rgba.RGB()).WithAlpha(rgba.A)
}

func clamp(v, min, max float64) float64 {
	return math.Min(math.Max(v, min), max)
}
