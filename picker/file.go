// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/colorpicker/base/iox/jsonx"
	"cogentcore.org/colorpicker/base/iox/tomlx"
	"cogentcore.org/colorpicker/base/iox/yamlx"
)

// OpenOptions opens options from the given file, in the format given by its
// extension: .toml, .json, or .yaml (or .yml). Fields that are missing from
// the file keep their default values.
func OpenOptions(filename string) (Options, error) {
	o := DefaultOptions()
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(&o, filename)
	case ".json":
		err = jsonx.Open(&o, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(&o, filename)
	default:
		return o, fmt.Errorf("picker.OpenOptions: unsupported options file extension %q", ext)
	}
	if err != nil {
		return o, fmt.Errorf("picker.OpenOptions: %w", err)
	}
	return o, nil
}

// SaveOptions saves the given options to the given file, in the format
// given by its extension, as in [OpenOptions].
func SaveOptions(o Options, filename string) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Save(&o, filename)
	case ".json":
		err = jsonx.Save(&o, filename)
	case ".yaml", ".yml":
		err = yamlx.Save(&o, filename)
	default:
		return fmt.Errorf("picker.SaveOptions: unsupported options file extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("picker.SaveOptions: %w", err)
	}
	return nil
}
