// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// it is much easier to test with an independent enum mock
type enum int64

var enumNames = map[enum]string{0: "apple", 5: "orange"}
var enumDescs = map[enum]string{5: "a citrus fruit"}
var enumValues = map[string]enum{"apple": 0, "orange": 5}

func (e enum) String() string           { return String(e, enumNames) }
func (e enum) Int64() int64             { return int64(e) }
func (e enum) Desc() string             { return Desc(e, enumDescs, enumNames) }
func (e enum) Values() []Enum           { return Values([]enum{0, 5}) }
func (e *enum) SetInt64(i int64)        { *e = enum(i) }
func (e *enum) SetString(s string) error { return SetStringLower(e, s, enumValues, "Fruits") }

func TestString(t *testing.T) {
	assert.Equal(t, "orange", String[enum](5, enumNames))
	assert.Equal(t, "3", String[enum](3, enumNames))
	assert.Equal(t, "a citrus fruit", enum(5).Desc())
	assert.Equal(t, "apple", enum(0).Desc())
	assert.Equal(t, "7", enum(7).Desc())
}

func TestSetString(t *testing.T) {
	i := enum(0)
	assert.NoError(t, SetString(&i, "orange", enumValues, "Fruits"))
	assert.Equal(t, enum(5), i)
	err := SetString(&i, "Apple", enumValues, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Apple is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, enum(5), i)

	assert.NoError(t, SetStringLower(&i, "Apple", enumValues, "Fruits"))
	assert.Equal(t, enum(0), i)
	err = SetStringLower(&i, "Pear", enumValues, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Pear is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, enum(0), i)
}

func TestText(t *testing.T) {
	b, err := MarshalText(enum(5))
	assert.NoError(t, err)
	assert.Equal(t, "orange", string(b))

	i := enum(0)
	assert.NoError(t, UnmarshalText(&i, []byte("ORANGE"), "Fruits"))
	assert.Equal(t, enum(5), i)
	assert.Error(t, UnmarshalText(&i, []byte("pear"), "Fruits"))
	assert.Equal(t, enum(5), i)
}

func TestValues(t *testing.T) {
	vals := enum(0).Values()
	assert.Len(t, vals, 2)
	assert.Equal(t, "orange", vals[1].String())
}
