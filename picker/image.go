// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"image"
	"math"

	"cogentcore.org/colorpicker/colors"
	"cogentcore.org/colorpicker/colors/space"
)

// The preview images are made by picking a color at the center of every
// pixel through the input functions, so they show exactly what a pointer
// at that pixel would pick.

// newImage returns a transparent image of the given size, in pixels.
func newImage(w, h float64) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h))))
}

// WheelImage returns a preview image of the wheel at the value of the
// given color. Pixels outside of the wheel are transparent.
func WheelImage(o Options, c Color) *image.NRGBA {
	d := WheelDimensions(o)
	v := c.HSV().V
	im := newImage(d.Width, d.Width)
	b := im.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if !IsInputInsideWheel(o, px, py) {
				continue
			}
			hs := WheelValueFromInput(o, px, py)
			im.SetNRGBA(x, y, space.HSVToRGB(space.HSV{H: hs.H, S: hs.S, V: v}).WithAlpha(1).AsNRGBA())
		}
	}
	return im
}

// BoxImage returns a preview image of the box at the hue of the given color.
func BoxImage(o Options, c Color) *image.NRGBA {
	d := BoxDimensions(o)
	h := c.HSV().H
	im := newImage(d.Width, d.Height)
	b := im.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sv := BoxValueFromInput(o, float64(x)+0.5, float64(y)+0.5)
			im.SetNRGBA(x, y, space.HSVToRGB(space.HSV{H: h, S: sv.S, V: sv.V}).WithAlpha(1).AsNRGBA())
		}
	}
	return im
}

// SliderImage returns a preview image of the slider for the given color,
// with each pixel showing the color with the channel of the slider set to
// the value picked at it. The given color is not changed. Only the ring of
// a circle slider is drawn, with the thickness of a bar.
func SliderImage(o Options, c *colors.Color) *image.NRGBA {
	d := SliderDimensions(o)
	ring := d.HandleRange / 2
	half := SliderSize(o) / 2
	pc := c.Clone()
	im := newImage(d.Width, d.Height)
	b := im.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if o.SliderShape == Circle {
				dist := math.Hypot(px-d.CX, py-d.CY)
				if math.Abs(dist-ring) > half {
					continue
				}
			}
			SetSliderValue(pc, o, SliderValueFromInput(o, px, py))
			im.SetNRGBA(x, y, pc.RGBA().AsNRGBA())
		}
	}
	return im
}
