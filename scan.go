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
	"strings"
	"unicode/utf8"

	"github.com/TianBo-Timothy/go-cmdoption/internal/option"
	"github.com/TianBo-Timothy/go-cmdoption/internal/sliceiterator"
	"github.com/TianBo-Timothy/go-cmdoption/text"
)

// Parse - Scans an argv style token list (program name excluded) against the
// option table. Each recognized occurrence accumulates in order, so options
// may repeat. Scanning stops at "--" or at the first token that is not an
// option; that token and everything after it become positional arguments.
//
// Scan problems (unknown option, missing argument) accumulate in the error
// log instead of aborting, leaving the caller to decide how to react to a
// malformed invocation: check Good and ReportError after parsing.
//
// The scan cursor is local to the call. Calling Parse again discards the
// values and positional arguments of the previous call; the error log
// persists.
func (co *CmdOption) Parse(args []string) {
	co.values = map[int]*StringValue{}
	co.arguments = &StringValue{}

	iter := sliceiterator.New(args)
	for iter.Next() {
		token := iter.Value()
		Logger.Printf("token %d: %q", iter.Index(), token)

		if token == "--" {
			co.drainArguments(iter)
			break
		}
		if !isOptionToken(token) {
			// first non option token, it and the rest are arguments
			co.arguments.add(token)
			co.drainArguments(iter)
			break
		}
		if strings.HasPrefix(token, "--") {
			co.scanLong(token, iter)
			continue
		}
		if !co.scanShort(token, iter) {
			co.drainArguments(iter)
			break
		}
	}
}

// drainArguments - moves every remaining token into the positional
// arguments.
func (co *CmdOption) drainArguments(iter *sliceiterator.Iterator[string]) {
	for iter.Next() {
		co.arguments.add(iter.Value())
	}
}

// isOptionToken - Tells if the token engages option scanning. A lone "-"
// does not: it is the usual stdin placeholder and scans as a positional.
func isOptionToken(token string) bool {
	return len(token) > 1 && strings.HasPrefix(token, "-")
}

// scanLong - Handles one "--name" or "--name=arg" token. The spelling
// resolves exact first, then by unique prefix over the registered long
// flags.
func (co *CmdOption) scanLong(token string, iter *sliceiterator.Iterator[string]) {
	name := token[2:]
	inline := ""
	hasInline := false
	if eq := strings.IndexByte(name, '='); eq >= 0 {
		inline = name[eq+1:]
		name = name[:eq]
		hasInline = true
	}

	opt, ok := co.findLong(name)
	if !ok {
		return // error already accumulated
	}
	index := co.indexMap[opt.Long]

	switch opt.Policy {
	case option.RequiredArgument:
		if hasInline {
			co.saveValue(index, inline)
			return
		}
		// the next token is the argument no matter its shape
		if !iter.Next() {
			co.addError(fmt.Sprintf(text.ErrorMissingArgument, name))
			return
		}
		co.saveValue(index, iter.Value())
	case option.OptionalArgument:
		if hasInline {
			co.saveValue(index, inline)
			return
		}
		co.saveValue(index, "")
	default:
		if hasInline {
			co.addError(fmt.Sprintf(text.ErrorArgumentNotAllowed, name))
			return
		}
		co.saveValue(index, "")
	}
}

// scanShort - Handles one short option cluster ("-abc"). A flag that takes
// an argument consumes the rest of the cluster when non empty, the next
// token otherwise. Returns false when the scan must abort.
//
// The usage text registers the short spelling of an optional-argument option
// with the same recognition entry a required one gets, so both consume an
// argument here; only the long spelling honors the optional policy.
func (co *CmdOption) scanShort(token string, iter *sliceiterator.Iterator[string]) bool {
	cluster := token[1:]
	for i, r := range cluster {
		opt, ok := co.findShort(r)
		if !ok {
			co.addError(fmt.Sprintf(text.ErrorUnknownOption, string(r)))
			continue
		}
		index, ok := co.indexMap[string(r)]
		if !ok {
			// a recognized flag missing from the index map breaks the table
			// invariant, give up on the scan
			co.addError(fmt.Sprintf(text.ErrorShortUnregistered, string(r)))
			return false
		}
		if opt.Policy == option.NoArgument {
			co.saveValue(index, "")
			continue
		}
		if rest := cluster[i+utf8.RuneLen(r):]; rest != "" {
			co.saveValue(index, rest)
			return true
		}
		if !iter.Next() {
			co.addError(fmt.Sprintf(text.ErrorMissingArgument, string(r)))
			return true
		}
		co.saveValue(index, iter.Value())
		return true
	}
	return true
}

// findLong - Resolves a long flag spelling. An exact match wins; otherwise a
// unique prefix abbreviation resolves, an ambiguous one reports every
// candidate.
func (co *CmdOption) findLong(name string) (*option.Option, bool) {
	if name == "" {
		co.addError(fmt.Sprintf(text.ErrorUnknownOption, name))
		return nil, false
	}
	matches := []*option.Option{}
	for _, opt := range co.opts {
		if !opt.HasLong() {
			continue
		}
		if opt.Long == name {
			return opt, true
		}
		if strings.HasPrefix(opt.Long, name) {
			matches = append(matches, opt)
		}
	}
	if len(matches) == 1 {
		Logger.Printf("%q abbreviates %q", name, matches[0].Long)
		return matches[0], true
	}
	if len(matches) == 0 {
		co.addError(fmt.Sprintf(text.ErrorUnknownOption, name))
		return nil, false
	}
	names := []string{}
	for _, m := range matches {
		names = append(names, m.Long)
	}
	co.addError(fmt.Sprintf(text.ErrorAmbiguousOption, name, names))
	return nil, false
}

func (co *CmdOption) findShort(r rune) (*option.Option, bool) {
	for _, opt := range co.opts {
		if opt.HasShort() && opt.Short == r {
			return opt, true
		}
	}
	return nil, false
}

func (co *CmdOption) saveValue(index int, arg string) {
	v, ok := co.values[index]
	if !ok {
		v = &StringValue{}
		co.values[index] = v
	}
	v.add(arg)
}
