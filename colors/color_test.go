// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"cogentcore.org/colorpicker/base/errors"
	"cogentcore.org/colorpicker/colors/csscolor"
	"cogentcore.org/colorpicker/colors/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder records the calls of a [ChangeFunc].
type recorder struct {
	calls []Changes
}

func (r *recorder) onChange(c *Color, changes Changes) {
	r.calls = append(r.calls, changes)
}

func TestNew(t *testing.T) {
	c, err := New(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, space.HSVA{H: 0, S: 0, V: 0, A: 1}, c.HSVA())
	assert.Equal(t, space.RGB{0, 0, 0}, c.RGB())

	c = MustNew(space.HSV{H: 360, S: 100, V: 50}, nil)
	assert.Equal(t, space.HSV{H: 360, S: 100, V: 50}, c.HSV())
	assert.Equal(t, space.RGB{128, 0, 0}, c.RGB())
	assert.Equal(t, space.HSL{360, 100, 25}, c.HSL())
	assert.Equal(t, "hsl(360, 100%, 25%)", c.HSLString())
	assert.Equal(t, "rgb(128, 0, 0)", c.RGBString())

	_, err = New("not-a-color", nil)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Panics(t, func() { MustNew(42, nil) })
}

func TestNewDoesNotNotify(t *testing.T) {
	r := &recorder{}
	c := MustNew("#f00", r.onChange)
	assert.Empty(t, r.calls)
	assert.Equal(t, space.RGB{255, 0, 0}, c.RGB())
}

func TestSetStrings(t *testing.T) {
	type test struct {
		in   string
		want space.RGBA
	}
	tests := []test{
		{"#f00", space.RGBA{255, 0, 0, 1}},
		{"0xFFFF", space.RGBA{255, 255, 255, 1}},
		{"#ff000080", space.RGBA{255, 0, 0, 128.0 / 255}},
		{"rgb(100%, 0%, 0%)", space.RGBA{255, 0, 0, 1}},
		{"rgb(0, 255, 0)", space.RGBA{0, 255, 0, 1}},
		{"rgba(0, 0, 255, 0.5)", space.RGBA{0, 0, 255, 0.5}},
		{"hsl(120, 100%, 50%)", space.RGBA{0, 255, 0, 1}},
		{"hsla(240, 100%, 50%, .25)", space.RGBA{0, 0, 255, 0.25}},
	}
	for _, test := range tests {
		c, err := New(test.in, nil)
		if assert.NoError(t, err, test.in) {
			assert.Equal(t, test.want, c.RGBA(), test.in)
		}
	}

	c := MustNew("hsl(360,100%,100%)", nil)
	assert.Equal(t, space.HSL{360, 0, 100}, c.HSL())
	c = MustNew("hsla(100%, 100%, 100%, 50%)", nil)
	assert.Equal(t, 0.5, c.Alpha())
	assert.Equal(t, 360.0, c.Hue())
}

func TestSetErrors(t *testing.T) {
	r := &recorder{}
	c := MustNew("#f00", r.onChange)
	before := c.HSVA()

	err := c.Set(42)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.ErrorIs(t, c.Set("not-a-color"), ErrInvalidValue)
	assert.ErrorIs(t, c.Set(nil), ErrInvalidValue)
	assert.ErrorIs(t, c.Set((*Color)(nil)), ErrInvalidValue)

	err = c.Set("#fffff")
	assert.ErrorIs(t, err, csscolor.ErrSyntax)
	assert.Contains(t, err.Error(), "invalid hex string")
	assert.Contains(t, c.SetRGBString("rgb(a)").Error(), "invalid rgb string")
	assert.Contains(t, c.SetHSLString("hsl(a)").Error(), "invalid hsl string")
	assert.Contains(t, c.Set("rgb(1, 2)").Error(), "invalid rgb string")

	assert.Equal(t, before, c.HSVA())
	assert.Empty(t, r.calls)
}

func TestSetValues(t *testing.T) {
	c := MustNew(space.RGBA{0, 0, 0, 0.5}, nil)

	require.NoError(t, c.Set(space.RGB{255, 0, 0}))
	assert.Equal(t, space.RGBA{255, 0, 0, 0.5}, c.RGBA())

	require.NoError(t, c.Set(space.HSV{120, 100, 100}))
	assert.Equal(t, space.HSVA{120, 100, 100, 0.5}, c.HSVA())

	require.NoError(t, c.Set(space.HSL{240, 100, 50}))
	assert.Equal(t, space.RGBA{0, 0, 255, 0.5}, c.RGBA())

	require.NoError(t, c.Set(space.HSLA{0, 0, 100, 1}))
	assert.Equal(t, space.RGBA{255, 255, 255, 1}, c.RGBA())

	require.NoError(t, c.Set(space.HSVA{0, 100, 100, 0.25}))
	assert.Equal(t, space.RGBA{255, 0, 0, 0.25}, c.RGBA())

	require.NoError(t, c.Set(color.RGBA{0, 0, 255, 255}))
	assert.Equal(t, space.RGBA{0, 0, 255, 1}, c.RGBA())

	require.NoError(t, c.Set(Kelvin(2000)))
	assert.Equal(t, space.RGB{255, 138, 19}, c.RGB())

	other := MustNew(space.HSVA{10, 20, 30, 0.4}, nil)
	require.NoError(t, c.Set(other))
	assert.Equal(t, other.HSVA(), c.HSVA())
}

func TestChanges(t *testing.T) {
	r := &recorder{}
	c := MustNew(space.HSVA{H: 360, S: 100, V: 100, A: 1}, r.onChange)

	c.SetHSVA(space.HSVA{H: 0, S: 0, V: 0, A: 0})
	require.Len(t, r.calls, 1)
	assert.Equal(t, Changes{H: true, S: true, V: true, A: true}, r.calls[0])

	c.SetHSVA(c.HSVA())
	c.SetHSV(c.HSV())
	c.SetAlpha(c.Alpha())
	assert.Len(t, r.calls, 1)

	c.SetHue(90)
	c.SetSaturation(50)
	c.SetValue(50)
	c.SetAlpha(0.5)
	require.Len(t, r.calls, 5)
	assert.Equal(t, Changes{H: true}, r.calls[1])
	assert.Equal(t, Changes{S: true}, r.calls[2])
	assert.Equal(t, Changes{V: true}, r.calls[3])
	assert.Equal(t, Changes{A: true}, r.calls[4])
	assert.True(t, r.calls[4].Any())
	assert.False(t, Changes{}.Any())
}

func TestCallbackObservesState(t *testing.T) {
	var seen string
	c := MustNew("#000", func(c *Color, changes Changes) {
		seen = c.HexString()
	})
	require.NoError(t, c.SetHexString("#0000ff"))
	assert.Equal(t, "#0000ff", seen)
}

func TestReentrantCallback(t *testing.T) {
	var order []string
	c := MustNew("#f00", func(cc *Color, changes Changes) {
		if changes.H {
			order = append(order, "hue")
			cc.SetAlpha(0.5)
		}
		if changes.A {
			order = append(order, "alpha")
		}
	})
	c.SetHue(120)
	assert.Equal(t, []string{"hue", "alpha"}, order)
	assert.Equal(t, 0.5, c.Alpha())
	assert.Equal(t, 120.0, c.Hue())
}

func TestReset(t *testing.T) {
	r := &recorder{}
	c := MustNew("#f00", r.onChange)
	require.NoError(t, c.SetHexString("#fff"))
	assert.Equal(t, space.RGB{255, 255, 255}, c.RGB())
	c.Reset()
	assert.Equal(t, space.RGB{255, 0, 0}, c.RGB())
	assert.Len(t, r.calls, 2)

	c.Reset()
	assert.Len(t, r.calls, 2)
}

func TestCloneUnbind(t *testing.T) {
	r := &recorder{}
	c := MustNew("#f00", r.onChange)
	require.NoError(t, c.SetHexString("#00f"))

	cl := c.Clone()
	assert.Equal(t, c.HSVA(), cl.HSVA())
	cl.SetHue(60)
	assert.Equal(t, 240.0, c.Hue())
	assert.Len(t, r.calls, 1)
	cl.Reset()
	assert.Equal(t, 240.0, cl.Hue())

	c.Unbind()
	c.SetHue(10)
	assert.Len(t, r.calls, 1)
	assert.Equal(t, 10.0, c.Hue())
}

func TestRGBChannels(t *testing.T) {
	c := MustNew(space.RGBA{10, 20, 30, 0.5}, nil)
	assert.Equal(t, 10.0, c.Red())
	assert.Equal(t, 20.0, c.Green())
	assert.Equal(t, 30.0, c.Blue())

	c.SetRed(255)
	c.SetGreen(128)
	c.SetBlue(0)
	assert.Equal(t, space.RGBA{255, 128, 0, 0.5}, c.RGBA())
}

func TestSetChannel(t *testing.T) {
	r := &recorder{}
	c := MustNew("#000", r.onChange)

	require.NoError(t, c.SetChannel(FormatRGB, "r", 255))
	assert.Equal(t, space.RGB{255, 0, 0}, c.RGB())
	require.NoError(t, c.SetChannel(FormatHSV, "h", 120))
	assert.Equal(t, space.RGB{0, 255, 0}, c.RGB())
	require.NoError(t, c.SetChannel(FormatHSL, "l", 25))
	assert.Equal(t, space.HSL{120, 100, 25}, c.HSL())
	assert.Equal(t, space.RGB{0, 128, 0}, c.RGB())
	require.NoError(t, c.SetChannel(FormatHSV, "a", 0.5))
	assert.Equal(t, 0.5, c.Alpha())
	require.NoError(t, c.SetChannel(FormatHSV, "s", 0))
	require.NoError(t, c.SetChannel(FormatHSV, "v", 100))
	assert.Equal(t, space.RGB{255, 255, 255}, c.RGB())
	require.NoError(t, c.SetChannel(FormatRGB, "g", 0))
	require.NoError(t, c.SetChannel(FormatRGB, "b", 0))
	require.NoError(t, c.SetChannel(FormatHSL, "s", 0))
	require.NoError(t, c.SetChannel(FormatHSL, "h", 10))
	assert.Len(t, r.calls, 10)

	assert.ErrorIs(t, c.SetChannel(FormatHSV, "l", 1), ErrInvalidChannel)
	assert.ErrorIs(t, c.SetChannel(FormatRGB, "h", 1), ErrInvalidChannel)
	assert.ErrorIs(t, c.SetChannel(FormatHSL, "v", 1), ErrInvalidChannel)
	assert.ErrorIs(t, c.SetChannel(Formats(9), "h", 1), ErrInvalidChannel)
	assert.Len(t, r.calls, 10)
}

func TestKelvin(t *testing.T) {
	c := MustNew(Kelvin(6500), nil)
	assert.Equal(t, space.RGB{255, 249, 254}, c.RGB())
	assert.Equal(t, 6500.0, c.Kelvin())

	c.SetKelvin(36000)
	assert.Equal(t, 36000.0, c.Kelvin())

	d := MustNew(space.RGB{156, 188, 255}, nil)
	assert.Equal(t, c.RGB(), d.RGB())
	assert.InDelta(t, 33972, d.Kelvin(), 1)

	c.SetRed(200)
	assert.NotEqual(t, 36000.0, c.Kelvin())

	w := MustNew("#fff", nil)
	k := w.Kelvin()
	assert.GreaterOrEqual(t, k, float64(space.KelvinMin))
	assert.LessOrEqual(t, k, float64(space.KelvinMax))
}

func TestStrings(t *testing.T) {
	c := MustNew(space.RGBA{255, 0, 0, 0.5}, nil)
	assert.Equal(t, "rgb(255, 0, 0)", c.RGBString())
	assert.Equal(t, "rgba(255, 0, 0, 0.5)", c.RGBAString())
	assert.Equal(t, "#ff0000", c.HexString())
	assert.Equal(t, "#ff00007f", c.Hex8String())
	assert.Equal(t, "hsl(0, 100%, 50%)", c.HSLString())
	assert.Equal(t, "hsla(0, 100%, 50%, 0.5)", c.HSLAString())
	assert.Equal(t, "rgba(255, 0, 0, 0.5)", c.String())
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, c.AsRGBA())

	require.NoError(t, c.SetRGBAString("rgba(0, 0, 255, 1)"))
	assert.Equal(t, "#0000ff", c.HexString())
	require.NoError(t, c.SetHex8String("#00ff0080"))
	assert.Equal(t, "#00ff0080", c.Hex8String())
	require.NoError(t, c.SetHSLAString("hsla(0, 0%, 100%, 1)"))
	assert.Equal(t, "#ffffff", c.HexString())
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"#000000", "#ffffff", "#12ab9f", "#808080", "#fe01cc"} {
		c := MustNew(s, nil)
		assert.Equal(t, s, c.HexString())
		before := c.HSVA()
		require.NoError(t, c.SetHexString(c.HexString()))
		assert.Equal(t, before, c.HSVA())
		require.NoError(t, c.SetRGBString(c.RGBString()))
		assert.Equal(t, s, c.HexString())
	}
}

func TestFormats(t *testing.T) {
	assert.Equal(t, "hsl", FormatHSL.String())
	var f Formats
	require.NoError(t, f.SetString("RGB"))
	assert.Equal(t, FormatRGB, f)
	assert.Error(t, f.SetString("cmyk"))
	assert.Len(t, FormatHSV.Values(), 3)
	assert.Equal(t, FormatsValues(), []Formats{FormatHSV, FormatHSL, FormatRGB})
	b, err := FormatHSV.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "hsv", string(b))
	require.NoError(t, f.UnmarshalText([]byte("hsl")))
	assert.Equal(t, FormatHSL, f)
	assert.Equal(t, int64(1), f.Int64())
	f.SetInt64(2)
	assert.Equal(t, FormatRGB, f)
	assert.Contains(t, FormatRGB.Desc(), "red")
}

func TestNames(t *testing.T) {
	rgb, err := FromName("RoyalBlue")
	require.NoError(t, err)
	assert.Equal(t, space.RGB{0x41, 0x69, 0xe1}, rgb)
	_, err = FromName("notacolor")
	assert.True(t, errors.Is(err, ErrInvalidValue))

	c, err := Parse("tomato")
	require.NoError(t, err)
	assert.Equal(t, "#ff6347", c.HexString())
	c, err = Parse("#abc")
	require.NoError(t, err)
	assert.Equal(t, "#aabbcc", c.HexString())
	_, err = Parse("rgb(1)")
	assert.Contains(t, err.Error(), "invalid rgb string")
}
