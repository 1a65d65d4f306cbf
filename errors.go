// This file is part of go-cmdoption.
//
// Copyright (C) 2019-2025  TianBo Timothy
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdoption

import "errors"

// The sentinels carry no text of their own; the message comes from the text
// package at the wrap site. Match them with errors.Is.

// ErrorUnknownOption - Indicates a lookup of a flag spelling that the usage
// text never declared.
var ErrorUnknownOption = errors.New("")

// ErrorUnsetValue - Indicates typed access on an option the command line
// never supplied.
var ErrorUnsetValue = errors.New("")

// ErrorConversion - Indicates that the captured text does not convert
// cleanly to the requested type.
var ErrorConversion = errors.New("")
