// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the observable color model of a color picker.
//
// A [Color] stores a single canonical [space.HSVA] value and exposes every
// other representation (RGB, HSL, hex and functional strings, Kelvin) as
// views computed on read and decomposed on write. Every write goes through
// one merge-and-diff path, which calls the bound [ChangeFunc] with the
// [Changes] when at least one channel actually changed.
package colors

import (
	"errors"
	"fmt"
	"image/color"

	"cogentcore.org/colorpicker/colors/space"
)

var (
	// ErrInvalidValue is returned by [Color.Set] for a value
	// that is not any of the supported color representations.
	ErrInvalidValue = errors.New("invalid color value")

	// ErrInvalidChannel is returned by [Color.SetChannel] for a
	// channel name that does not belong to the given format.
	ErrInvalidChannel = errors.New("invalid color channel")
)

// Changes records, for each canonical channel, whether
// it differs between the state before and after a write.
type Changes struct {
	H, S, V, A bool
}

// Any returns whether any channel changed.
func (c Changes) Any() bool {
	return c.H || c.S || c.V || c.A
}

// ChangeFunc is the type of the function called after a write
// to a [Color] changes at least one of its channels. It is called
// synchronously, after the new state has been committed.
type ChangeFunc func(c *Color, changes Changes)

// Kelvin is a correlated color temperature, used with [Color.Set].
type Kelvin float64

// Color is a mutable, observable color value. Its canonical state is
// an HSV color with alpha; all other representations are derived from it.
// The zero value is not ready to use; use [New].
type Color struct {

	// hsva is the canonical state
	hsva space.HSVA

	// initial is the state right after construction, restored by [Color.Reset]
	initial space.HSVA

	// onChange is called when a write changes the state
	onChange ChangeFunc

	// kelvin is the temperature given to the last [Color.SetKelvin],
	// valid when hasKelvin is set
	kelvin    float64
	hasKelvin bool
}

// New returns a new [Color] set from the given value, which can be
// any of the values accepted by [Color.Set], or nil for opaque black.
// The optional onChange function is bound after the initial value is
// set, so it is not called for it.
func New(value any, onChange ChangeFunc) (*Color, error) {
	c := &Color{hsva: space.HSVA{H: 0, S: 0, V: 0, A: 1}}
	if value != nil {
		if err := c.Set(value); err != nil {
			return nil, err
		}
	}
	c.onChange = onChange
	c.initial = c.hsva
	return c, nil
}

// MustNew is like [New], but it panics if there is an error.
// It is intended for hardcoded colors.
func MustNew(value any, onChange ChangeFunc) *Color {
	c, err := New(value, onChange)
	if err != nil {
		panic(err)
	}
	return c
}

// Set sets the color from the given value. The supported values in order
// of precedence are:
//   - a string: hex (#rgb, #rgba, #rrggbb, #rrggbbaa, 0x...), then
//     rgb() or rgba(), then hsl() or hsla()
//   - a *Color, whose full state is copied
//   - a [space.RGBA] or [space.RGB]
//   - a [space.HSVA] or [space.HSV]
//   - a [space.HSLA] or [space.HSL]
//   - a [Kelvin] temperature
//   - any other [color.Color]
//
// The channel sets without alpha keep the current alpha.
// It returns an error wrapping [ErrInvalidValue] for any other value,
// or the parse error for an invalid string, and leaves the color unchanged.
func (c *Color) Set(value any) error {
	switch v := value.(type) {
	case string:
		return c.SetString(v)
	case *Color:
		if v == nil {
			break
		}
		c.SetHSVA(v.HSVA())
		return nil
	case space.RGBA:
		c.SetRGBA(v)
		return nil
	case space.RGB:
		c.SetRGB(v)
		return nil
	case space.HSVA:
		c.SetHSVA(v)
		return nil
	case space.HSV:
		c.SetHSV(v)
		return nil
	case space.HSLA:
		c.SetHSLA(v)
		return nil
	case space.HSL:
		c.SetHSL(v)
		return nil
	case Kelvin:
		c.SetKelvin(float64(v))
		return nil
	case color.Color:
		c.SetRGBA(space.FromColor(v))
		return nil
	}
	return fmt.Errorf("colors.Color.Set: %w: %v of type %T", ErrInvalidValue, value, value)
}

// HSVA returns the canonical hue, saturation, value and alpha of the color.
func (c *Color) HSVA() space.HSVA {
	return c.hsva
}

// SetHSVA sets the hue, saturation, value and alpha of the color.
// All other setters go through it.
func (c *Color) SetHSVA(v space.HSVA) {
	old := c.hsva
	if c.onChange == nil {
		c.hsva = v
		return
	}
	changes := Changes{
		H: v.H != old.H,
		S: v.S != old.S,
		V: v.V != old.V,
		A: v.A != old.A,
	}
	c.hsva = v
	if changes.Any() {
		c.onChange(c, changes)
	}
}

// HSV returns the hue, saturation and value of the color.
func (c *Color) HSV() space.HSV {
	return c.hsva.HSV()
}

// SetHSV sets the hue, saturation and value of the color,
// keeping its alpha.
func (c *Color) SetHSV(v space.HSV) {
	c.SetHSVA(v.WithAlpha(c.hsva.A))
}

// Reset restores the color to its state right after construction.
// It notifies like any other write.
func (c *Color) Reset() {
	c.SetHSVA(c.initial)
}

// Clone returns a new independent color with the same state,
// no change function, and the current state as its initial state.
func (c *Color) Clone() *Color {
	return MustNew(c, nil)
}

// Unbind permanently removes the change function of the color.
func (c *Color) Unbind() {
	c.onChange = nil
}

// AsRGBA returns the color as an 8-bit premultiplied [color.RGBA].
func (c *Color) AsRGBA() color.RGBA {
	return color.RGBAModel.Convert(c.RGBA().AsNRGBA()).(color.RGBA)
}

// String returns the rgba(r, g, b, a) string of the color.
func (c *Color) String() string {
	return c.RGBAString()
}
