// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"cogentcore.org/colorpicker/colors/csscolor"
)

// SetString sets the color from the given string, which is tried as
// a hex color, then an rgb() or rgba() color, then an hsl() or hsla()
// color, based on its prefix.
func (c *Color) SetString(s string) error {
	switch {
	case csscolor.IsHex(s):
		return c.SetHexString(s)
	case csscolor.IsRGB(s):
		return c.SetRGBString(s)
	case csscolor.IsHSL(s):
		return c.SetHSLString(s)
	}
	return fmt.Errorf("colors.Color.SetString: %w: %q", ErrInvalidValue, s)
}

// RGBString returns the color as an rgb(r, g, b) string.
func (c *Color) RGBString() string {
	return csscolor.FormatRGB(c.RGB())
}

// SetRGBString sets the color from the given rgb() or rgba() string.
func (c *Color) SetRGBString(s string) error {
	rgba, err := csscolor.ParseRGB(s)
	if err != nil {
		return err
	}
	c.SetRGBA(rgba)
	return nil
}

// RGBAString returns the color as an rgba(r, g, b, a) string.
func (c *Color) RGBAString() string {
	return csscolor.FormatRGBA(c.RGBA())
}

// SetRGBAString sets the color from the given rgb() or rgba() string.
// It is the same as [Color.SetRGBString].
func (c *Color) SetRGBAString(s string) error {
	return c.SetRGBString(s)
}

// HexString returns the color as a #rrggbb string.
func (c *Color) HexString() string {
	return csscolor.FormatHex(c.RGB())
}

// SetHexString sets the color from the given hex string,
// with 3, 4, 6 or 8 digits and an optional # or 0x prefix.
func (c *Color) SetHexString(s string) error {
	rgba, err := csscolor.ParseHex(s)
	if err != nil {
		return err
	}
	c.SetRGBA(rgba)
	return nil
}

// Hex8String returns the color as a #rrggbbaa string.
func (c *Color) Hex8String() string {
	return csscolor.FormatHex8(c.RGBA())
}

// SetHex8String sets the color from the given hex string.
// It is the same as [Color.SetHexString].
func (c *Color) SetHex8String(s string) error {
	return c.SetHexString(s)
}

// HSLString returns the color as an hsl(h, s%, l%) string.
func (c *Color) HSLString() string {
	return csscolor.FormatHSL(c.HSL())
}

// SetHSLString sets the color from the given hsl() or hsla() string.
func (c *Color) SetHSLString(s string) error {
	hsla, err := csscolor.ParseHSL(s)
	if err != nil {
		return err
	}
	c.SetHSLA(hsla)
	return nil
}

// HSLAString returns the color as an hsla(h, s%, l%, a) string.
func (c *Color) HSLAString() string {
	return csscolor.FormatHSLA(c.HSLA())
}

// SetHSLAString sets the color from the given hsl() or hsla() string.
// It is the same as [Color.SetHSLString].
func (c *Color) SetHSLAString(s string) error {
	return c.SetHSLString(s)
}
