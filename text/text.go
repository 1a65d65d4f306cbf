// This file is part of go-cmdoption.
//
// Copyright (C) 2019-2025  TianBo Timothy
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// Exposed as public variables so embedding programs can override them.
package text

// Messages accumulated into the error log while parsing the usage text.
var ErrorInvalidOptionLine = "invalid option at line: %d\n%s"
var ErrorDuplicateShortOption = "duplicate short option: %s"
var ErrorDuplicateLongOption = "duplicate long option: %s"

// Messages accumulated into the error log while scanning the command line.
var ErrorUnknownOption = "Unknown option: %s"
var ErrorMissingArgument = "Missing argument for: %s"
var ErrorAmbiguousOption = "Ambiguous option '%s' matches: %v"
var ErrorArgumentNotAllowed = "Option '%s' does not take an argument"
var ErrorShortUnregistered = "unknown short option: %s"

// Messages carried by returned errors at the point of typed access.
var ErrorUnknownOptionLookup = "unknown option: %s"
var ErrorNullValue = "null value"
var ErrorConvertToInt = "Can't convert string to int: '%s'"
var ErrorConvertToInt64 = "Can't convert string to int64: '%s'"
var ErrorConvertToFloat32 = "Can't convert string to float32: '%s'"
var ErrorConvertToFloat64 = "Can't convert string to float64: '%s'"
