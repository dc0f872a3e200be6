// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	tests := map[string]Formats{
		"png": PNG, ".PNG": PNG, ".jpg": JPEG, "jpeg": JPEG, ".gif": GIF,
		".tif": TIFF, "tiff": TIFF, ".bmp": BMP, ".webp": WebP,
	}
	for ext, want := range tests {
		f, err := ExtToFormat(ext)
		require.NoError(t, err, ext)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
}

func testImage() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			im.Set(x, y, color.NRGBA{uint8(60 * x), uint8(100 * y), 200, 255})
		}
	}
	return im
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	want := testImage()
	for name, format := range map[string]Formats{"im.png": PNG, "im.bmp": BMP, "im.tiff": TIFF} {
		filename := filepath.Join(dir, name)
		require.NoError(t, Save(want, filename), name)
		got, f, err := Open(filename)
		require.NoError(t, err, name)
		assert.Equal(t, format, f, name)
		assert.Equal(t, want.Bounds(), got.Bounds(), name)
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				assert.True(t, CompareColors(color.RGBAModel.Convert(want.At(x, y)).(color.RGBA), color.RGBAModel.Convert(got.At(x, y)).(color.RGBA), 0), "%s (%d, %d)", name, x, y)
			}
		}
	}
	assert.Error(t, Save(want, filepath.Join(dir, "im.svg")))
	assert.Error(t, Write(want, &bytes.Buffer{}, WebP))
}

func TestJPEG(t *testing.T) {
	b := &bytes.Buffer{}
	require.NoError(t, Write(testImage(), b, JPEG))
	got, f, err := Read(b)
	require.NoError(t, err)
	assert.Equal(t, JPEG, f)
	assert.Equal(t, image.Rect(0, 0, 4, 3), got.Bounds())
}

func TestCompareColors(t *testing.T) {
	assert.True(t, CompareColors(color.RGBA{10, 20, 30, 255}, color.RGBA{12, 18, 30, 255}, 2))
	assert.False(t, CompareColors(color.RGBA{10, 20, 30, 255}, color.RGBA{10, 20, 33, 255}, 2))
	assert.Equal(t, "PNG", PNG.String())
}
