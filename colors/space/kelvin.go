// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import "math"

const (
	// KelvinMin is the lowest supported correlated color temperature.
	KelvinMin = 1000

	// KelvinMax is the highest supported correlated color temperature.
	KelvinMax = 40000

	// kelvinEpsilon is the width of the search window at which
	// [RGBToKelvin] stops narrowing.
	kelvinEpsilon = 0.4
)

// KelvinToRGB returns the [RGB] approximation of the given correlated
// color temperature, using the curve fits by Neil Bartlett of the
// blackbody data from Mitchell Charity. The channels are integers
// clamped to 0-255. The supported range is [KelvinMin] to [KelvinMax].
func KelvinToRGB(kelvin float64) RGB {
	temp := kelvin / 100
	var r, g, b float64
	if temp < 66 {
		r = 255
		g = -155.25485562709179 - 0.44596950469579133*(temp-2) + 104.49216199393888*math.Log(temp-2)
		if temp < 20 {
			b = 0
		} else {
			b = -254.76935184120902 + 0.8274096064007395*(temp-10) + 115.67994401066147*math.Log(temp-10)
		}
	} else {
		r = 351.97690566805693 + 0.114206453784165*(temp-55) - 40.25366309332127*math.Log(temp-55)
		g = 325.4494125711974 + 0.07943456536662342*(temp-50) - 28.0852963507957*math.Log(temp-50)
		b = 255
	}
	return RGB{
		R: clamp(math.Floor(r), 0, 255),
		G: clamp(math.Floor(g), 0, 255),
		B: clamp(math.Floor(b), 0, 255),
	}
}

// RGBToKelvin returns the approximate correlated color temperature of the
// given [RGB] color, using a binary search over [KelvinMin] to [KelvinMax]
// that compares the blue to red ratio. The inverse is not exact: many
// ratios share a plateau of temperatures, particularly at the extremes.
func RGBToKelvin(rgb RGB) float64 {
	min := float64(KelvinMin)
	max := float64(KelvinMax)
	ratio := rgb.B / rgb.R
	var temp float64
	for max-min > kelvinEpsilon {
		temp = (max + min) * 0.5
		c := KelvinToRGB(temp)
		if c.B/c.R >= ratio {
			max = temp
		} else {
			min = temp
		}
	}
	return temp
}
