// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// Enumer is the constraint satisfied by the underlying types of all enums.
type Enumer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// String returns the string representation of the given
// enum value with the given map. It falls back on
// the integer value when the value is not in the map.
func String[T Enumer](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// Desc returns the description of the given enum value
// with the given map, falling back on its string.
func Desc[T Enumer](i T, descMap map[T]string, strMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return String(i, strMap)
}

// SetString sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message.
func SetString[T Enumer](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower is like [SetString], but it also tries the
// lowercase version of the given string. It is used for enums
// whose names are transformed to lowercase.
func SetStringLower[T Enumer](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// Values returns the given enum values as a slice of [Enum].
func Values[T Enum](values []T) []Enum {
	res := make([]Enum, len(values))
	for i, v := range values {
		res[i] = v
	}
	return res
}

// MarshalText is a helper function for implementing
// [encoding.TextMarshaler] for enums.
func MarshalText[T fmt.Stringer](i T) ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText is a helper function for implementing
// [encoding.TextUnmarshaler] for enums. Unlike SetString,
// its error names the text field that was being decoded.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("enums.UnmarshalText: %s: %w", typeName, err)
	}
	return nil
}
