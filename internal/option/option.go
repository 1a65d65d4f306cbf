// This file is part of go-cmdoption.
//
// Copyright (C) 2019-2025  TianBo Timothy
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option descriptor and argument policy.
package option

import "fmt"

// ArgPolicy - Indicates whether an option takes an argument.
type ArgPolicy int

// Argument policies
const (
	NoArgument ArgPolicy = iota
	RequiredArgument
	OptionalArgument
)

func (p ArgPolicy) String() string {
	switch p {
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	}
	return "none"
}

// Option - one logical option from the usage text, independent of how many
// flag spellings refer to it.
//
// A spelling that lost a duplicate-flag collision is cleared on the later
// descriptor: the spelling stays bound to its first registrant.
type Option struct {
	Short  rune   // 0 when the option has no short form
	Long   string // "" when the option has no long form
	Policy ArgPolicy
	Index  int
}

// New - Returns a new option descriptor. The index is assigned at
// registration time.
func New(short rune, long string, policy ArgPolicy) *Option {
	return &Option{Short: short, Long: long, Policy: policy, Index: -1}
}

// HasShort - Tells if the option has a short form.
func (o *Option) HasShort() bool {
	return o.Short != 0
}

// HasLong - Tells if the option has a long form.
func (o *Option) HasLong() bool {
	return o.Long != ""
}

// Spellings - Returns the flag spellings that name this option, short form
// first.
func (o *Option) Spellings() []string {
	s := []string{}
	if o.HasShort() {
		s = append(s, string(o.Short))
	}
	if o.HasLong() {
		s = append(s, o.Long)
	}
	return s
}

// Synopsis - Returns the command line rendering of the option spellings.
func (o *Option) Synopsis() string {
	switch {
	case o.HasShort() && o.HasLong():
		return fmt.Sprintf("-%c, --%s", o.Short, o.Long)
	case o.HasShort():
		return fmt.Sprintf("-%c", o.Short)
	default:
		return fmt.Sprintf("--%s", o.Long)
	}
}

func (o *Option) String() string {
	return fmt.Sprintf("{%d %s argument %s}", o.Index, o.Synopsis(), o.Policy)
}
