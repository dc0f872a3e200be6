// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"cogentcore.org/colorpicker/enums"
)

// Formats are the channel set formats that can be
// modified one channel at a time with [Color.SetChannel].
type Formats int32

const (
	// FormatHSV is the hue (h), saturation (s) and value (v) format.
	FormatHSV Formats = iota

	// FormatHSL is the hue (h), saturation (s) and lightness (l) format.
	FormatHSL

	// FormatRGB is the red (r), green (g) and blue (b) format.
	FormatRGB
)

// SetChannel sets one channel of the given format to the given value:
// it reads the current channel set of the format, replaces the channel,
// and writes the whole set back, so that it notifies exactly like
// writing the full channel set. The channel "a" sets the alpha for
// every format.
func (c *Color) SetChannel(format Formats, channel string, value float64) error {
	if channel == "a" {
		c.SetAlpha(value)
		return nil
	}
	switch format {
	case FormatHSV:
		v := c.HSV()
		switch channel {
		case "h":
			v.H = value
		case "s":
			v.S = value
		case "v":
			v.V = value
		default:
			return channelError(format, channel)
		}
		c.SetHSV(v)
	case FormatHSL:
		v := c.HSL()
		switch channel {
		case "h":
			v.H = value
		case "s":
			v.S = value
		case "l":
			v.L = value
		default:
			return channelError(format, channel)
		}
		c.SetHSL(v)
	case FormatRGB:
		v := c.RGB()
		switch channel {
		case "r":
			v.R = value
		case "g":
			v.G = value
		case "b":
			v.B = value
		default:
			return channelError(format, channel)
		}
		c.SetRGB(v)
	default:
		return fmt.Errorf("colors.Color.SetChannel: %w: unknown format %v", ErrInvalidChannel, format)
	}
	return nil
}

func channelError(format Formats, channel string) error {
	return fmt.Errorf("colors.Color.SetChannel: %w: %q is not a channel of %v", ErrInvalidChannel, channel, format)
}

var _FormatsValues = []Formats{FormatHSV, FormatHSL, FormatRGB}

var _FormatsValueMap = map[string]Formats{`hsv`: 0, `hsl`: 1, `rgb`: 2}

var _FormatsDescMap = map[Formats]string{
	0: `FormatHSV is the hue (h), saturation (s) and value (v) format.`,
	1: `FormatHSL is the hue (h), saturation (s) and lightness (l) format.`,
	2: `FormatRGB is the red (r), green (g) and blue (b) format.`,
}

var _FormatsMap = map[Formats]string{0: `hsv`, 1: `hsl`, 2: `rgb`}

// String returns the string representation of this Formats value.
func (i Formats) String() string { return enums.String(i, _FormatsMap) }

// SetString sets the Formats value from its string representation,
// and returns an error if the string is invalid.
func (i *Formats) SetString(s string) error {
	return enums.SetStringLower(i, s, _FormatsValueMap, "Formats")
}

// Int64 returns the Formats value as an int64.
func (i Formats) Int64() int64 { return int64(i) }

// SetInt64 sets the Formats value from an int64.
func (i *Formats) SetInt64(in int64) { *i = Formats(in) }

// Desc returns the description of the Formats value.
func (i Formats) Desc() string { return enums.Desc(i, _FormatsDescMap, _FormatsMap) }

// FormatsValues returns all possible values for the type Formats.
func FormatsValues() []Formats { return _FormatsValues }

// Values returns all possible values for the type Formats.
func (i Formats) Values() []enums.Enum { return enums.Values(_FormatsValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Formats) MarshalText() ([]byte, error) { return enums.MarshalText(i) }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Formats) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "Formats")
}
