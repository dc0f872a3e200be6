// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csscolor parses and formats CSS-style color strings:
// hex (#rgb, #rgba, #rrggbb, #rrggbbaa, optionally with a 0x prefix)
// and the functional rgb(), rgba(), hsl() and hsla() notations.
//
// The functional parsers are permissive: parentheses are optional,
// arguments may be separated by commas, whitespace or pipes, may
// carry a sign, may be integers or decimals, and may be percentages
// of the maximum of their channel.
package csscolor

import (
	"regexp"
	"strconv"
	"strings"

	"cogentcore.org/colorpicker/colors/space"
)

const (
	cssInteger  = `[-\+]?\d+%?`
	cssNumber   = `[-\+]?\d*\.\d+%?`
	cssUnit     = `(?:` + cssNumber + `)|(?:` + cssInteger + `)`
	permissive3 = `[\s|\(]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)\s*\)?`
	permissive4 = `[\s|\(]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)\s*\)?`

	hexStart  = `^(?:#?|0x?)`
	hexSingle = `([0-9a-fA-F]{1})`
	hexDouble = `([0-9a-fA-F]{2})`
)

var (
	rgbRegex  = regexp.MustCompile("rgb" + permissive3)
	rgbaRegex = regexp.MustCompile("rgba" + permissive4)
	hslRegex  = regexp.MustCompile("hsl" + permissive3)
	hslaRegex = regexp.MustCompile("hsla" + permissive4)

	hex3Regex = regexp.MustCompile(hexStart + hexSingle + hexSingle + hexSingle + `$`)
	hex4Regex = regexp.MustCompile(hexStart + hexSingle + hexSingle + hexSingle + hexSingle + `$`)
	hex6Regex = regexp.MustCompile(hexStart + hexDouble + hexDouble + hexDouble + `$`)
	hex8Regex = regexp.MustCompile(hexStart + hexDouble + hexDouble + hexDouble + hexDouble + `$`)

	// hexLikeRegex is the loose test for whether a string should be
	// treated as a hex color at all; lengths other than 3, 4, 6 and 8
	// pass it and then fail in [ParseHex].
	hexLikeRegex = regexp.MustCompile(`^(?:#?|0x?)[0-9a-fA-F]{3,8}$`)
	rgbLikeRegex = regexp.MustCompile(`^rgba?`)
	hslLikeRegex = regexp.MustCompile(`^hsla?`)
)

// IsHex returns whether the given string looks like a hex color:
// an optional # or 0x prefix followed by 3 to 8 hex digits.
func IsHex(s string) bool { return hexLikeRegex.MatchString(s) }

// IsRGB returns whether the given string starts like an rgb() or rgba() color.
func IsRGB(s string) bool { return rgbLikeRegex.MatchString(s) }

// IsHSL returns whether the given string starts like an hsl() or hsla() color.
func IsHSL(s string) bool { return hslLikeRegex.MatchString(s) }

// ParseHex parses the given hex color string. The 3 and 4 digit forms
// duplicate each digit, and the 4 and 8 digit forms carry the alpha
// as their last channel.
func ParseHex(s string) (space.RGBA, error) {
	var digits []string
	short := false
	if m := hex3Regex.FindStringSubmatch(s); m != nil {
		digits, short = m[1:], true
	} else if m := hex4Regex.FindStringSubmatch(s); m != nil {
		digits, short = m[1:], true
	} else if m := hex6Regex.FindStringSubmatch(s); m != nil {
		digits = m[1:]
	} else if m := hex8Regex.FindStringSubmatch(s); m != nil {
		digits = m[1:]
	} else {
		return space.RGBA{}, &SyntaxError{Format: "hex", Input: s}
	}
	ch := [4]float64{0, 0, 0, 255}
	for i, d := range digits {
		v, _ := strconv.ParseUint(d, 16, 8)
		ch[i] = float64(v)
		if short {
			ch[i] *= 17
		}
	}
	return space.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3] / 255}, nil
}

// ParseRGB parses the given rgb() or rgba() color string.
// The alpha is 1 for the three argument form.
func ParseRGB(s string) (space.RGBA, error) {
	args, ok := matchArgs(s, rgbRegex, rgbaRegex)
	if !ok {
		return space.RGBA{}, &SyntaxError{Format: "rgb", Input: s}
	}
	c := space.RGBA{
		R: parseUnit(args[0], 255),
		G: parseUnit(args[1], 255),
		B: parseUnit(args[2], 255),
		A: 1,
	}
	if len(args) == 4 {
		c.A = parseUnit(args[3], 1)
	}
	return c, nil
}

// ParseHSL parses the given hsl() or hsla() color string.
// The alpha is 1 for the three argument form.
func ParseHSL(s string) (space.HSLA, error) {
	args, ok := matchArgs(s, hslRegex, hslaRegex)
	if !ok {
		return space.HSLA{}, &SyntaxError{Format: "hsl", Input: s}
	}
	c := space.HSLA{
		H: parseUnit(args[0], 360),
		S: parseUnit(args[1], 100),
		L: parseUnit(args[2], 100),
		A: 1,
	}
	if len(args) == 4 {
		c.A = parseUnit(args[3], 1)
	}
	return c, nil
}

// matchArgs returns the arguments of the first of the two
// regular expressions that matches anywhere in s.
func matchArgs(s string, re3, re4 *regexp.Regexp) ([]string, bool) {
	if m := re3.FindStringSubmatch(s); m != nil {
		return m[1:], true
	}
	if m := re4.FindStringSubmatch(s); m != nil {
		return m[1:], true
	}
	return nil, false
}

// parseUnit parses a single functional argument. A percentage
// is taken as a fraction of the given channel maximum.
func parseUnit(s string, max float64) float64 {
	pct := strings.HasSuffix(s, "%")
	num, _ := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if pct {
		return max / 100 * num
	}
	return num
}
