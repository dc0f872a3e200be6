// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"math"
	"regexp"
	"strconv"
)

// sliderNumber matches the unsigned whole and decimal numbers
// accepted as the text value of a slider.
var sliderNumber = regexp.MustCompile(`^[+]?([.]\d+|\d+([.]\d+)?)$`)

// ClampSliderValue clamps the given value to the range of the channel
// of the slider, in the units returned by [SliderValueFromInput].
func ClampSliderValue(o Options, v float64) float64 {
	switch o.SliderType {
	case SliderHue:
		return clamp(v, 0, 360)
	case SliderRed, SliderGreen, SliderBlue:
		return clamp(v, 0, 255)
	case SliderAlpha:
		return clamp(v, 0, 1)
	case SliderKelvin:
		return clamp(v, o.MinTemperature, o.MaxTemperature)
	}
	return clamp(v, 0, 100)
}

// ParseSliderText parses the given text, such as pasted text, as
// a value of the slider, and clamps it to the range of the channel.
// It returns 0 and false if the text is not an unsigned number.
func ParseSliderText(o Options, text string) (float64, bool) {
	if !sliderNumber.MatchString(text) {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return ClampSliderValue(o, v), true
}

// SliderTextWidth returns the maximum number of characters
// in the text input of a slider of the given type.
func SliderTextWidth(t SliderTypes) int {
	switch t {
	case SliderAlpha:
		return 4
	case SliderKelvin:
		return 5
	}
	return 3
}

// SliderTextInput returns the value of the slider after the given key is
// typed into its text input, which holds the given text and has the
// given selection. A negative selection start means that the selection
// is unknown, in which case the key is appended when there is room for
// it. Only digits and the decimal point are accepted: any other key,
// or text that does not result in a number, gives 0 and false.
func SliderTextInput(o Options, text string, selStart, selEnd int, key rune) (float64, bool) {
	if (key < '0' || key > '9') && key != '.' {
		return 0, false
	}
	switch {
	case selStart >= 0:
		selStart = min(selStart, len(text))
		selEnd = max(selStart, min(selEnd, len(text)))
		text = text[:selStart] + string(key) + text[selEnd:]
	case len(text)+1 <= SliderTextWidth(o.SliderType):
		text += string(key)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return ClampSliderValue(o, v), true
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
