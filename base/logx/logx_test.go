// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	type test struct {
		vv, v, q bool
		want     slog.Level
	}
	tests := []test{
		{false, false, false, slog.LevelWarn},
		{true, false, false, slog.LevelDebug},
		{false, true, false, slog.LevelInfo},
		{false, false, true, slog.LevelError},
		{true, false, true, slog.LevelDebug},
		{false, true, true, slog.LevelInfo},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, LevelFromFlags(test.vv, test.v, test.q), "%v %v %v", test.vv, test.v, test.q)
	}
}

func TestHandler(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()

	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf))

	UserLevel = slog.LevelWarn
	logger.Debug("this is debug")
	logger.Info("this is info")
	logger.Warn("this is warn", "color", "#f00")
	out := buf.String()
	assert.NotContains(t, out, "this is debug")
	assert.NotContains(t, out, "this is info")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="this is warn"`)
	assert.Contains(t, out, "color=#f00")

	buf.Reset()
	UserLevel = slog.LevelDebug
	logger.Debug("this is debug")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestDefaultLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	SetDefaultLogger()
	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
