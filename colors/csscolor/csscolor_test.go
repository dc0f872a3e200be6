// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csscolor

import (
	"errors"
	"testing"

	"cogentcore.org/colorpicker/base/tolassert"
	"cogentcore.org/colorpicker/colors/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	for _, s := range []string{"#fff", "fff", "0xfff", "#ffff", "#fffff", "#ffffff", "ABCDEF12"} {
		assert.True(t, IsHex(s), s)
	}
	for _, s := range []string{"#ff", "#fffffffff", "rgb(0,0,0)", "#ggg", " #fff"} {
		assert.False(t, IsHex(s), s)
	}
	assert.True(t, IsRGB("rgb(0,0,0)"))
	assert.True(t, IsRGB("rgba"))
	assert.False(t, IsRGB(" rgb(0,0,0)"))
	assert.True(t, IsHSL("hsla(0,0%,0%,1)"))
	assert.False(t, IsHSL("rgb(0,0,0)"))
}

func TestParseHex(t *testing.T) {
	type test struct {
		in   string
		want space.RGBA
	}
	tests := []test{
		{"#f00", space.RGBA{255, 0, 0, 1}},
		{"f00", space.RGBA{255, 0, 0, 1}},
		{"0xf00", space.RGBA{255, 0, 0, 1}},
		{"0xFFFF", space.RGBA{255, 255, 255, 1}},
		{"#0f08", space.RGBA{0, 255, 0, 136.0 / 255}},
		{"#ff0000", space.RGBA{255, 0, 0, 1}},
		{"#ABCDEF", space.RGBA{0xab, 0xcd, 0xef, 1}},
		{"#ff000080", space.RGBA{255, 0, 0, 128.0 / 255}},
		{"0x00000000", space.RGBA{0, 0, 0, 0}},
	}
	for _, test := range tests {
		got, err := ParseHex(test.in)
		if assert.NoError(t, err, test.in) {
			assert.Equal(t, test.want, got, test.in)
		}
	}
	for _, s := range []string{"#fffff", "#ff", "#fffffff", "rgb(0,0,0)", ""} {
		_, err := ParseHex(s)
		assert.Error(t, err, s)
	}
}

func TestParseRGB(t *testing.T) {
	type test struct {
		in   string
		want space.RGBA
	}
	tests := []test{
		{"rgb(255, 0, 0)", space.RGBA{255, 0, 0, 1}},
		{"rgb(255,0,0)", space.RGBA{255, 0, 0, 1}},
		{"rgb 255 0 0", space.RGBA{255, 0, 0, 1}},
		{"rgb(255|128|0)", space.RGBA{255, 128, 0, 1}},
		{"rgb(+255, -0, 0.5)", space.RGBA{255, 0, 0.5, 1}},
		{"rgb(0%, 50%, 0%)", space.RGBA{0, 127.5, 0, 1}},
		{"rgba(255, 255, 255, .5)", space.RGBA{255, 255, 255, 0.5}},
		{"rgba(0, 0, 0, 50%)", space.RGBA{0, 0, 0, 0.5}},
		{"rgba(1, 2, 3, 0.25)", space.RGBA{1, 2, 3, 0.25}},
	}
	for _, test := range tests {
		got, err := ParseRGB(test.in)
		if assert.NoError(t, err, test.in) {
			tolassert.EqualTol(t, test.want.R, got.R, 1e-9, test.in)
			tolassert.EqualTol(t, test.want.G, got.G, 1e-9, test.in)
			tolassert.EqualTol(t, test.want.B, got.B, 1e-9, test.in)
			tolassert.EqualTol(t, test.want.A, got.A, 1e-9, test.in)
		}
	}
	got, err := ParseRGB("rgb(100%, 0%, 0%)")
	require.NoError(t, err)
	assert.Equal(t, space.RGB{255, 0, 0}, got.RGB().Round())

	for _, s := range []string{"rgb(a, b, c)", "rgb(1, 2)", "rgb()", "hsl(0, 0%, 0%)", "rgba(1, 2, 3)"} {
		_, err := ParseRGB(s)
		assert.Error(t, err, s)
	}
}

func TestParseHSL(t *testing.T) {
	got, err := ParseHSL("hsl(360, 100%, 100%)")
	require.NoError(t, err)
	assert.Equal(t, space.HSLA{360, 100, 100, 1}, got)

	got, err = ParseHSL("hsla(100%, 100%, 100%, 50%)")
	require.NoError(t, err)
	assert.Equal(t, space.HSLA{360, 100, 100, 0.5}, got)

	got, err = ParseHSL("hsla(120 50 25 0.75)")
	require.NoError(t, err)
	assert.Equal(t, space.HSLA{120, 50, 25, 0.75}, got)

	_, err = ParseHSL("hsl(x)")
	assert.Error(t, err)
}

func TestSyntaxError(t *testing.T) {
	_, err := ParseHex("#12345")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyntax))
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "hex", se.Format)
	assert.Equal(t, `csscolor: invalid hex string "#12345"`, err.Error())

	_, err = ParseRGB("nope")
	assert.Contains(t, err.Error(), "invalid rgb string")
	_, err = ParseHSL("nope")
	assert.Contains(t, err.Error(), "invalid hsl string")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "rgb(128, 0, 0)", FormatRGB(space.RGB{127.5, 0, 0}))
	assert.Equal(t, "rgba(255, 0, 0, 0.5)", FormatRGBA(space.RGBA{255, 0, 0, 0.5}))
	assert.Equal(t, "rgba(0, 0, 0, 1)", FormatRGBA(space.RGBA{0, 0, 0, 1}))
	assert.Equal(t, "#ff0000", FormatHex(space.RGB{255, 0, 0}))
	assert.Equal(t, "#0a0b0c", FormatHex(space.RGB{10, 11, 12}))
	assert.Equal(t, "#ff00007f", FormatHex8(space.RGBA{255, 0, 0, 0.5}))
	assert.Equal(t, "#ffffffff", FormatHex8(space.RGBA{255, 255, 255, 1}))
	assert.Equal(t, "hsl(360, 100%, 25%)", FormatHSL(space.HSL{360, 100, 25}))
	assert.Equal(t, "hsla(0, 100%, 50%, 1)", FormatHSLA(space.HSLA{0, 100, 50, 1}))
	assert.Equal(t, "hsla(120, 33%, 67%, 0.25)", FormatHSLA(space.HSLA{120, 33.3, 66.6, 0.25}))

	assert.Equal(t, "0.5", FormatNumber(0.5))
	assert.Equal(t, "255", FormatNumber(255))
	assert.Equal(t, "16.666", FormatNumber(16.666))
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"#000000", "#ffffff", "#12ab9f", "#7f7f7f"} {
		c, err := ParseHex(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatHex(c.RGB()))
	}
	c, err := ParseRGB(FormatRGBA(space.RGBA{12, 34, 56, 0.75}))
	require.NoError(t, err)
	assert.Equal(t, space.RGBA{12, 34, 56, 0.75}, c)
}
