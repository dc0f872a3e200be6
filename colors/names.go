// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strings"

	"cogentcore.org/colorpicker/colors/space"
	"golang.org/x/image/colornames"
)

// FromName returns the [space.RGB] channels of the CSS named color
// with the given name (for example "rebeccapurple"), ignoring case.
func FromName(name string) (space.RGB, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return space.RGB{}, fmt.Errorf("colors.FromName: %w: no named color %q", ErrInvalidValue, name)
	}
	return space.RGB{R: float64(c.R), G: float64(c.G), B: float64(c.B)}, nil
}

// Parse returns a new [Color] from the given string, which can be any of
// the strings accepted by [Color.SetString] or a CSS color name.
func Parse(s string) (*Color, error) {
	c, err := New(s, nil)
	if err == nil {
		return c, nil
	}
	rgb, nerr := FromName(s)
	if nerr != nil {
		return nil, err
	}
	return New(rgb, nil)
}
