// This file is part of go-cmdoption.
//
// Copyright (C) 2019-2025  TianBo Timothy
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdoption

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TianBo-Timothy/go-cmdoption/text"
)

// StringValue - the raw text captured for one option, or for the positional
// arguments. Conversion to a typed value happens lazily, at the point of
// access.
//
// Multiple occurrences of the same option accumulate in order and are stored
// newline-joined; the plural accessors split them apart again. A scalar
// accessor on a multi-occurrence value operates on the joined text: Str
// returns it as is, the numeric conversions fail on the embedded separator.
type StringValue struct {
	text  string
	count int
}

// add - appends one occurrence.
func (v *StringValue) add(str string) {
	if v.count == 0 {
		v.text = str
	} else {
		v.text += "\n" + str
	}
	v.count++
}

// Count - Returns the number of occurrences captured.
func (v *StringValue) Count() int {
	return v.count
}

// Bool - Truthiness of the value: false when the option was never supplied,
// true for any captured occurrence, even one with empty argument text.
func (v *StringValue) Bool() bool {
	return v.count > 0
}

// Str - Returns the raw text. Errors with ErrorUnsetValue when the value was
// never supplied.
func (v *StringValue) Str() (string, error) {
	if err := v.validate(); err != nil {
		return "", err
	}
	return v.text, nil
}

// StrOr - Returns the raw text, or def when the value is unset.
func (v *StringValue) StrOr(def string) string {
	if v.count == 0 {
		return def
	}
	return v.text
}

// Int - Converts the text to an int. The text must be a complete numeric
// token: trailing garbage is an error, not ignored.
func (v *StringValue) Int() (int, error) {
	if err := v.validate(); err != nil {
		return 0, err
	}
	return parseInt(v.text)
}

// IntOr - Returns the converted value, or def when the value is unset or the
// conversion fails.
func (v *StringValue) IntOr(def int) int {
	i, err := v.Int()
	if err != nil {
		return def
	}
	return i
}

// Int64 - Converts the text to an int64.
func (v *StringValue) Int64() (int64, error) {
	if err := v.validate(); err != nil {
		return 0, err
	}
	return parseInt64(v.text)
}

// Int64Or - Returns the converted value, or def when the value is unset or
// the conversion fails.
func (v *StringValue) Int64Or(def int64) int64 {
	i, err := v.Int64()
	if err != nil {
		return def
	}
	return i
}

// Float32 - Converts the text to a float32.
func (v *StringValue) Float32() (float32, error) {
	if err := v.validate(); err != nil {
		return 0, err
	}
	return parseFloat32(v.text)
}

// Float32Or - Returns the converted value, or def when the value is unset or
// the conversion fails.
func (v *StringValue) Float32Or(def float32) float32 {
	f, err := v.Float32()
	if err != nil {
		return def
	}
	return f
}

// Float64 - Converts the text to a float64.
func (v *StringValue) Float64() (float64, error) {
	if err := v.validate(); err != nil {
		return 0, err
	}
	return parseFloat64(v.text)
}

// Float64Or - Returns the converted value, or def when the value is unset or
// the conversion fails.
func (v *StringValue) Float64Or(def float64) float64 {
	f, err := v.Float64()
	if err != nil {
		return def
	}
	return f
}

// Strs - Returns one element per occurrence, in the order they appeared.
func (v *StringValue) Strs() ([]string, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	return strings.Split(v.text, "\n"), nil
}

// Ints - Converts every occurrence independently. The first occurrence that
// fails to convert fails the whole call.
func (v *StringValue) Ints() ([]int, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	out := []int{}
	for _, e := range strings.Split(v.text, "\n") {
		i, err := parseInt(e)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

// Int64s - Converts every occurrence independently.
func (v *StringValue) Int64s() ([]int64, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	out := []int64{}
	for _, e := range strings.Split(v.text, "\n") {
		i, err := parseInt64(e)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

// Float32s - Converts every occurrence independently.
func (v *StringValue) Float32s() ([]float32, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	out := []float32{}
	for _, e := range strings.Split(v.text, "\n") {
		f, err := parseFloat32(e)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Float64s - Converts every occurrence independently.
func (v *StringValue) Float64s() ([]float64, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	out := []float64{}
	for _, e := range strings.Split(v.text, "\n") {
		f, err := parseFloat64(e)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (v *StringValue) validate() error {
	if v.count == 0 {
		return fmt.Errorf(text.ErrorNullValue+"%w", ErrorUnsetValue)
	}
	return nil
}

func parseInt(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf(text.ErrorConvertToInt+"%w", s, ErrorConversion)
	}
	return i, nil
}

func parseInt64(s string) (int64, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf(text.ErrorConvertToInt64+"%w", s, ErrorConversion)
	}
	return i, nil
}

func parseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf(text.ErrorConvertToFloat32+"%w", s, ErrorConversion)
	}
	return float32(f), nil
}

func parseFloat64(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf(text.ErrorConvertToFloat64+"%w", s, ErrorConversion)
	}
	return f, nil
}
