// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/colorpicker/colors/space"
)

// Hue returns the hue of the color in degrees.
func (c *Color) Hue() float64 { return c.hsva.H }

// SetHue sets the hue of the color in degrees.
func (c *Color) SetHue(h float64) {
	v := c.hsva
	v.H = h
	c.SetHSVA(v)
}

// Saturation returns the HSV saturation of the color in percent.
func (c *Color) Saturation() float64 { return c.hsva.S }

// SetSaturation sets the HSV saturation of the color in percent.
func (c *Color) SetSaturation(s float64) {
	v := c.hsva
	v.S = s
	c.SetHSVA(v)
}

// Value returns the HSV value (brightness) of the color in percent.
func (c *Color) Value() float64 { return c.hsva.V }

// SetValue sets the HSV value (brightness) of the color in percent.
func (c *Color) SetValue(val float64) {
	v := c.hsva
	v.V = val
	c.SetHSVA(v)
}

// Alpha returns the alpha of the color, from 0 to 1.
func (c *Color) Alpha() float64 { return c.hsva.A }

// SetAlpha sets the alpha of the color, from 0 to 1,
// keeping the hue, saturation and value.
func (c *Color) SetAlpha(a float64) {
	c.SetHSVA(c.HSV().WithAlpha(a))
}

// RGB returns the red, green and blue channels of the color,
// each rounded to an integer from 0 to 255.
func (c *Color) RGB() space.RGB {
	return space.HSVToRGB(c.HSV()).Round()
}

// SetRGB sets the color from the given red, green and blue
// channels, keeping its alpha.
func (c *Color) SetRGB(rgb space.RGB) {
	c.SetHSVA(space.RGBToHSV(rgb).WithAlpha(c.hsva.A))
}

// RGBA returns the rounded [Color.RGB] channels with the alpha of the color.
func (c *Color) RGBA() space.RGBA {
	return c.RGB().WithAlpha(c.hsva.A)
}

// SetRGBA sets the color from the given red, green, blue
// and alpha channels.
func (c *Color) SetRGBA(rgba space.RGBA) {
	c.SetHSVA(space.RGBToHSV(rgba.RGB()).WithAlpha(rgba.A))
}

// Red returns the red channel of the color, from 0 to 255.
func (c *Color) Red() float64 { return c.RGB().R }

// SetRed sets the red channel of the color, from 0 to 255.
func (c *Color) SetRed(r float64) {
	rgb := c.RGB()
	rgb.R = r
	c.SetRGB(rgb)
}

// Green returns the green channel of the color, from 0 to 255.
func (c *Color) Green() float64 { return c.RGB().G }

// SetGreen sets the green channel of the color, from 0 to 255.
func (c *Color) SetGreen(g float64) {
	rgb := c.RGB()
	rgb.G = g
	c.SetRGB(rgb)
}

// Blue returns the blue channel of the color, from 0 to 255.
func (c *Color) Blue() float64 { return c.RGB().B }

// SetBlue sets the blue channel of the color, from 0 to 255.
func (c *Color) SetBlue(b float64) {
	rgb := c.RGB()
	rgb.B = b
	c.SetRGB(rgb)
}

// HSL returns the hue, saturation and lightness of the color,
// each rounded to an integer.
func (c *Color) HSL() space.HSL {
	return space.HSVToHSL(c.HSV()).Round()
}

// SetHSL sets the color from the given hue, saturation and
// lightness, keeping its alpha.
func (c *Color) SetHSL(hsl space.HSL) {
	c.SetHSVA(space.HSLToHSV(hsl).WithAlpha(c.hsva.A))
}

// HSLA returns the rounded [Color.HSL] channels with the alpha of the color.
func (c *Color) HSLA() space.HSLA {
	return c.HSL().WithAlpha(c.hsva.A)
}

// SetHSLA sets the color from the given hue, saturation,
// lightness and alpha.
func (c *Color) SetHSLA(hsla space.HSLA) {
	c.SetHSVA(space.HSLToHSV(hsla.HSL()).WithAlpha(hsla.A))
}

// Kelvin returns the correlated color temperature of the color.
// If the color has not changed since the last [Color.SetKelvin],
// it returns exactly that temperature; otherwise it returns the
// approximation of [space.RGBToKelvin], since many temperatures
// share the same 8-bit color.
func (c *Color) Kelvin() float64 {
	rgb := c.RGB()
	if c.hasKelvin && space.KelvinToRGB(c.kelvin) == rgb {
		return c.kelvin
	}
	return space.RGBToKelvin(rgb)
}

// SetKelvin sets the color to the given correlated color
// temperature, keeping its alpha.
func (c *Color) SetKelvin(kelvin float64) {
	c.SetRGB(space.KelvinToRGB(kelvin))
	c.kelvin = kelvin
	c.hasKelvin = true
}
