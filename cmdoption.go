// This file is part of go-cmdoption.
//
// Copyright (C) 2019-2025  TianBo Timothy
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package cmdoption - command line option parser that builds its option table
from the program's usage text instead of from declarative option
definitions.

The usage text is the single source of truth: write the help message first,
hand it to New, and every option declared in it becomes parseable. There is
no drift between what the help says and what the parser accepts.

# Features

• Options declared by their own help lines: `-a, --all`, `--delta=NUM`,
`--epsilon[=NUM]`, `-f FILE`.

• Short and long spellings resolve to the same logical option.

• Repeated options accumulate every occurrence in order.

• Lazy typed access: int, int64, float32, float64, string, and slices of
each, converted only when asked for, with default-valued variants.

• Long option abbreviation: any unique prefix resolves.

• Short option clusters: `-wp3` is `-w -p 3`.

• `--` stops option scanning; the first non option token does too, and
everything from there on is a positional argument.

• Structural problems in the usage text and malformed invocations accumulate
in an error log for the host program to report; they never panic and never
kill the parse.

# Usage text format

A line declares an option only when its first whitespace-separated token
starts with a dash; every other line is explanation text and is ignored.
Within a declaration line only the first two tokens matter. A long token
`--name=ARG` requires an argument, `--name[=ARG]` takes an optional one,
and plain `--name` takes none. A short token is `-x` or `-x,`. A short-only
line followed by exactly one bare word, such as `-f FILE`, requires an
argument; with more trailing words the word is explanation and the option
is a switch, so argument placeholders need their explanation on the next
line.

# Example

	usage := `usage: prog [options] [files...]

	-a, --all show all elements
	-d --delta=NUM set delta number, need argument
	-f FILE
	    write report to FILE
	`

	opt := cmdoption.New(usage)
	if !opt.Good() {
		opt.ReportError(os.Stderr)
		os.Exit(1)
	}
	opt.Parse(os.Args[1:])
	if !opt.Good() {
		opt.ReportError(os.Stderr)
		opt.Usage(os.Stderr)
		os.Exit(1)
	}

	all, _ := opt.Option("all")
	if all.Bool() {
		// ...
	}
	delta, _ := opt.Option("delta")
	n := delta.IntOr(10)
	files, _ := opt.Arguments().Strs()
*/
package cmdoption

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/TianBo-Timothy/go-cmdoption/internal/option"
	"github.com/TianBo-Timothy/go-cmdoption/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// CmdOption - the option table built from the usage text, plus everything
// captured by the most recent Parse call.
type CmdOption struct {
	usageText string
	errors    []string

	maxIndex int
	indexMap map[string]int
	opts     []*option.Option

	values    map[int]*StringValue
	arguments *StringValue
}

// New - Builds the option table from the usage text. Construction does not
// fail: structural problems accumulate in the error log and whatever
// registered before them stays usable. Check Good before trusting the
// table.
func New(usage string) *CmdOption {
	co := &CmdOption{
		indexMap:  map[string]int{},
		opts:      []*option.Option{},
		values:    map[int]*StringValue{},
		arguments: &StringValue{},
	}
	co.initFromUsage(usage)
	return co
}

// Usage - Writes the original usage text.
func (co *CmdOption) Usage(w io.Writer) {
	fmt.Fprintln(w, co.usageText)
}

// Good - Tells if the error log is empty: the usage text parsed cleanly and
// no Parse call hit a scan problem.
func (co *CmdOption) Good() bool {
	return len(co.errors) == 0
}

// Errors - Returns a copy of the accumulated error log, oldest first.
func (co *CmdOption) Errors() []string {
	out := make([]string, len(co.errors))
	copy(out, co.errors)
	return out
}

// ReportError - Writes the accumulated error log, one entry per line.
// Writes nothing when the log is empty.
func (co *CmdOption) ReportError(w io.Writer) {
	if co.Good() {
		return
	}
	fmt.Fprintln(w, strings.Join(co.errors, "\n"))
}

// Option - Accesses the value captured for a flag spelling, short or long.
//
// A spelling the usage text never declared is a programmer error and
// returns ErrorUnknownOption. A declared option the command line did not
// supply returns an unset value and no error: check Bool or Count, or reach
// for the Or accessors.
func (co *CmdOption) Option(spelling string) (*StringValue, error) {
	index, ok := co.indexMap[spelling]
	if !ok {
		return nil, fmt.Errorf(text.ErrorUnknownOptionLookup+"%w", spelling, ErrorUnknownOption)
	}
	v, ok := co.values[index]
	if !ok {
		return &StringValue{}, nil
	}
	return v, nil
}

// Arguments - Accesses the positional arguments captured by Parse: the
// first non option token and everything after it, in order.
func (co *CmdOption) Arguments() *StringValue {
	return co.arguments
}
