// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import "math"

// HSVToRGB converts the given [HSV] channel set to [RGB].
// The six hue sectors of 60 degrees are each a linear blend of the
// value and chroma; the result is clamped to 0-255 but not rounded.
func HSVToRGB(hsv HSV) RGB {
	h := hsv.H / 60
	s := hsv.S / 100
	v := hsv.V / 100
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	mod := 0
	if !math.IsNaN(i) && !math.IsInf(i, 0) {
		mod = int(math.Mod(i, 6))
		if mod < 0 {
			mod += 6
		}
	}
	r := [6]float64{v, q, p, p, t, v}[mod]
	g := [6]float64{t, v, v, q, p, p}[mod]
	b := [6]float64{p, p, t, v, v, q}[mod]
	return RGB{
		R: clamp(r*255, 0, 255),
		G: clamp(g*255, 0, 255),
		B: clamp(b*255, 0, 255),
	}
}

// RGBToHSV converts the given [RGB] channel set to [HSV].
// When several channels share the maximum, the hue is chosen
// by checking the minimum first, then red, green, and blue.
func RGBToHSV(rgb RGB) HSV {
	r := rgb.R / 255
	g := rgb.G / 255
	b := rgb.B / 255
	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	delta := max - min
	hue := 0.0
	saturation := 0.0
	if max != 0 {
		saturation = delta / max
	}
	switch max {
	case min:
		hue = 0
	case r:
		hue = (g - b) / delta
		if g < b {
			hue += 6
		}
	case g:
		hue = (b-r)/delta + 2
	case b:
		hue = (r-g)/delta + 4
	}
	return HSV{
		H: math.Mod(hue*60, 360),
		S: clamp(saturation*100, 0, 100),
		V: clamp(max*100, 0, 100),
	}
}

// HSVToHSL converts the given [HSV] channel set to [HSL].
// A zero lightness divisor yields a saturation of 0.
func HSVToHSL(hsv HSV) HSL {
	s := hsv.S / 100
	v := hsv.V / 100
	l := (2 - s) * v
	divisor := l
	if l > 1 {
		divisor = 2 - l
	}
	saturation := 0.0
	if divisor >= 1e-9 {
		saturation = (s * v) / divisor
	}
	return HSL{
		H: hsv.H,
		S: clamp(saturation*100, 0, 100),
		L: clamp(l*50, 0, 100),
	}
}

// HSLToHSV converts the given [HSL] channel set to [HSV].
// A zero lightness and saturation sum yields a saturation of 0.
func HSLToHSV(hsl HSL) HSV {
	l := hsl.L * 2
	var s float64
	if l <= 100 {
		s = hsl.S * l / 100
	} else {
		s = hsl.S * (200 - l) / 100
	}
	saturation := 0.0
	if l+s >= 1e-9 {
		saturation = (2 * s) / (l + s)
	}
	return HSV{
		H: hsl.H,
		S: clamp(saturation*100, 0, 100),
		V: clamp((l+s)/2, 0, 100),
	}
}
