// This file is part of go-cmdoption.
//
// Copyright (C) 2019-2025  TianBo Timothy
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdoption

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStringValueUnset(t *testing.T) {
	v := &StringValue{}
	if v.Bool() {
		t.Errorf("unset value is true")
	}
	if v.Count() != 0 {
		t.Errorf("wrong count: %d", v.Count())
	}

	_, err := v.Str()
	checkError(t, err, ErrorUnsetValue)
	if err.Error() != "null value" {
		t.Errorf("wrong error message: %q", err.Error())
	}
	_, err = v.Int()
	checkError(t, err, ErrorUnsetValue)
	_, err = v.Int64()
	checkError(t, err, ErrorUnsetValue)
	_, err = v.Float32()
	checkError(t, err, ErrorUnsetValue)
	_, err = v.Float64()
	checkError(t, err, ErrorUnsetValue)
	_, err = v.Strs()
	checkError(t, err, ErrorUnsetValue)
	_, err = v.Ints()
	checkError(t, err, ErrorUnsetValue)
	_, err = v.Int64s()
	checkError(t, err, ErrorUnsetValue)
	_, err = v.Float32s()
	checkError(t, err, ErrorUnsetValue)
	_, err = v.Float64s()
	checkError(t, err, ErrorUnsetValue)

	if got := v.StrOr("fallback"); got != "fallback" {
		t.Errorf("wrong value: %q", got)
	}
	if got := v.IntOr(7); got != 7 {
		t.Errorf("wrong value: %d", got)
	}
	if got := v.Int64Or(7); got != 7 {
		t.Errorf("wrong value: %d", got)
	}
	if got := v.Float32Or(7.5); got != 7.5 {
		t.Errorf("wrong value: %g", got)
	}
	if got := v.Float64Or(7.5); got != 7.5 {
		t.Errorf("wrong value: %g", got)
	}
}

func TestStringValueSingle(t *testing.T) {
	v := &StringValue{}
	v.add("12")
	if !v.Bool() {
		t.Errorf("supplied value is false")
	}
	if v.Count() != 1 {
		t.Errorf("wrong count: %d", v.Count())
	}

	s, err := v.Str()
	checkError(t, err, nil)
	if s != "12" {
		t.Errorf("wrong value: %q", s)
	}
	i, err := v.Int()
	checkError(t, err, nil)
	if i != 12 {
		t.Errorf("wrong value: %d", i)
	}
	i64, err := v.Int64()
	checkError(t, err, nil)
	if i64 != 12 {
		t.Errorf("wrong value: %d", i64)
	}
	f32, err := v.Float32()
	checkError(t, err, nil)
	if f32 != 12 {
		t.Errorf("wrong value: %g", f32)
	}
	f64, err := v.Float64()
	checkError(t, err, nil)
	if f64 != 12 {
		t.Errorf("wrong value: %g", f64)
	}

	ss, err := v.Strs()
	checkError(t, err, nil)
	if diff := cmp.Diff([]string{"12"}, ss); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	ii, err := v.Ints()
	checkError(t, err, nil)
	if diff := cmp.Diff([]int{12}, ii); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStringValueConversionFailure(t *testing.T) {
	v := &StringValue{}
	v.add("12x")

	s, err := v.Str()
	checkError(t, err, nil)
	if s != "12x" {
		t.Errorf("wrong value: %q", s)
	}

	_, err = v.Int()
	checkError(t, err, ErrorConversion)
	if errors.Is(err, ErrorUnsetValue) {
		t.Errorf("conversion failure reported as unset value")
	}
	if err.Error() != "Can't convert string to int: '12x'" {
		t.Errorf("wrong error message: %q", err.Error())
	}
	_, err = v.Int64()
	checkError(t, err, ErrorConversion)
	if err.Error() != "Can't convert string to int64: '12x'" {
		t.Errorf("wrong error message: %q", err.Error())
	}
	_, err = v.Float32()
	checkError(t, err, ErrorConversion)
	if err.Error() != "Can't convert string to float32: '12x'" {
		t.Errorf("wrong error message: %q", err.Error())
	}
	_, err = v.Float64()
	checkError(t, err, ErrorConversion)
	if err.Error() != "Can't convert string to float64: '12x'" {
		t.Errorf("wrong error message: %q", err.Error())
	}

	if got := v.IntOr(7); got != 7 {
		t.Errorf("wrong value: %d", got)
	}
	if got := v.Float64Or(7.5); got != 7.5 {
		t.Errorf("wrong value: %g", got)
	}
	// StrOr falls back on unset only, never on content
	if got := v.StrOr("fallback"); got != "12x" {
		t.Errorf("wrong value: %q", got)
	}
}

func TestStringValueEmptyOccurrence(t *testing.T) {
	v := &StringValue{}
	v.add("")
	if !v.Bool() {
		t.Errorf("supplied value is false")
	}
	s, err := v.Str()
	checkError(t, err, nil)
	if s != "" {
		t.Errorf("wrong value: %q", s)
	}
	_, err = v.Int()
	checkError(t, err, ErrorConversion)
}

func TestStringValueMulti(t *testing.T) {
	v := &StringValue{}
	v.add("3")
	v.add("4")
	if v.Count() != 2 {
		t.Errorf("wrong count: %d", v.Count())
	}

	// scalar accessors see the joined text
	s, err := v.Str()
	checkError(t, err, nil)
	if s != "3\n4" {
		t.Errorf("wrong value: %q", s)
	}
	_, err = v.Int()
	checkError(t, err, ErrorConversion)

	ss, err := v.Strs()
	checkError(t, err, nil)
	if diff := cmp.Diff([]string{"3", "4"}, ss); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	ii, err := v.Ints()
	checkError(t, err, nil)
	if diff := cmp.Diff([]int{3, 4}, ii); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	i64s, err := v.Int64s()
	checkError(t, err, nil)
	if diff := cmp.Diff([]int64{3, 4}, i64s); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	f32s, err := v.Float32s()
	checkError(t, err, nil)
	if diff := cmp.Diff([]float32{3, 4}, f32s); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	f64s, err := v.Float64s()
	checkError(t, err, nil)
	if diff := cmp.Diff([]float64{3, 4}, f64s); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStringValueMultiWithEmptyOccurrences(t *testing.T) {
	v := &StringValue{}
	v.add("")
	v.add("x")
	v.add("")
	ss, err := v.Strs()
	checkError(t, err, nil)
	if diff := cmp.Diff([]string{"", "x", ""}, ss); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStringValueBadElementFailsSequence(t *testing.T) {
	v := &StringValue{}
	v.add("3")
	v.add("x")
	v.add("5")
	_, err := v.Ints()
	checkError(t, err, ErrorConversion)
	if err.Error() != "Can't convert string to int: 'x'" {
		t.Errorf("wrong error message: %q", err.Error())
	}
	_, err = v.Float64s()
	checkError(t, err, ErrorConversion)
}

func TestStringValueNumericForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		i     int
		iErr  error
		f     float64
		fErr  error
	}{
		{"decimal", "42", 42, nil, 42, nil},
		{"negative", "-5", -5, nil, -5, nil},
		{"explicit positive", "+7", 7, nil, 7, nil},
		{"zero", "0", 0, nil, 0, nil},
		{"leading space", " 12", 0, ErrorConversion, 0, ErrorConversion},
		{"trailing space", "12 ", 0, ErrorConversion, 0, ErrorConversion},
		{"hex is not a number", "0x1A", 0, ErrorConversion, 0, ErrorConversion},
		{"fraction", "3.5", 0, ErrorConversion, 3.5, nil},
		{"exponent", "1e3", 0, ErrorConversion, 1000, nil},
		{"empty", "", 0, ErrorConversion, 0, ErrorConversion},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := &StringValue{}
			v.add(test.input)
			i, err := v.Int()
			checkError(t, err, test.iErr)
			if i != test.i {
				t.Errorf("wrong value: got %d, expected %d", i, test.i)
			}
			f, err := v.Float64()
			checkError(t, err, test.fErr)
			if f != test.f {
				t.Errorf("wrong value: got %g, expected %g", f, test.f)
			}
		})
	}
}

func TestStringValueInt64Range(t *testing.T) {
	v := &StringValue{}
	v.add("9223372036854775807")
	i, err := v.Int64()
	checkError(t, err, nil)
	if i != 9223372036854775807 {
		t.Errorf("wrong value: %d", i)
	}

	v = &StringValue{}
	v.add("9223372036854775808")
	_, err = v.Int64()
	checkError(t, err, ErrorConversion)
}
