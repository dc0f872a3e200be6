// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csscolor

import (
	"errors"
	"strconv"
)

// ErrSyntax is the error wrapped by every [SyntaxError].
var ErrSyntax = errors.New("invalid color string")

// SyntaxError records a color string that does not match
// any of the patterns of the format it was parsed as.
type SyntaxError struct {

	// Format is the attempted format: hex, rgb or hsl
	Format string

	// Input is the string that failed to parse
	Input string
}

func (e *SyntaxError) Error() string {
	return "csscolor: invalid " + e.Format + " string " + strconv.Quote(e.Input)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }
