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

	"github.com/TianBo-Timothy/go-cmdoption/internal/option"
	"github.com/TianBo-Timothy/go-cmdoption/text"
)

// Usage text parsing.
//
// Every line is handled on its own: declaration lines feed the option table,
// prose and blank lines are skipped. All lines are scanned even after an
// error so a single pass reports every problem in the text.

func (co *CmdOption) initFromUsage(usage string) {
	co.usageText = usage
	for i, line := range strings.Split(usage, "\n") {
		co.parseLine(i, line)
	}
	Logger.Printf("registered %d options, %d errors", len(co.opts), len(co.errors))
}

// parseLine - Parse one usage line. The line number is 0 based and only used
// for reporting.
func (co *CmdOption) parseLine(i int, line string) {
	if !co.parseOptLine(line) {
		co.addError(fmt.Sprintf(text.ErrorInvalidOptionLine, i, line))
	}
}

// parseOptLine - Extracts at most one short and one long flag from a
// declaration line and registers the resulting descriptor. Returns false
// when the line is structurally invalid. Prose and blank lines return true
// without registering anything.
func (co *CmdOption) parseOptLine(line string) bool {
	var short rune
	long := ""
	policy := option.NoArgument

	n := 0 // number of words encountered
	for _, word := range strings.Fields(line) {
		n++

		if n > 2 {
			// The word count disambiguates
			//
			//	-f this is explanation
			//	-f FILE
			//	   This is explanation
			//
			// FILE counts as an argument because no explanation text
			// follows it on the same line.
			break
		}

		if n == 1 && !strings.HasPrefix(word, "-") {
			// not an option line, ignore it entirely
			return true
		}

		if len(word) <= 1 {
			return false
		}

		if !strings.HasPrefix(word, "-") {
			continue // ignore the word
		}

		if strings.HasPrefix(word, "--") {
			l, p, ok := parseLongToken(word)
			if !ok {
				return false
			}
			long = l
			policy = p
			continue
		}

		// short option
		if short != 0 || // set before
			(len(word) == 3 && word[2] != ',') || // does not end with comma
			len(word) > 3 { // extra characters
			return false
		}
		short = rune(word[1])
	}

	if n == 0 {
		return true // ignore empty lines
	}

	if short == 0 && long == "" {
		// a declaration line that produced no flag, e.g. a bare "--"
		return false
	}

	if long == "" {
		// No long option, so the argument requirement comes from the short
		// option alone: a single bare word after it means an argument is
		// required.
		if n == 2 {
			policy = option.RequiredArgument
		} else {
			policy = option.NoArgument
		}
	}

	co.register(option.New(short, long, policy))
	return true
}

// parseLongToken - Splits "--name", "--name=ARG" or "--name[=ARG]" into the
// long flag name and its argument policy. Returns false on malformed
// optional-argument syntax (missing closing bracket).
func parseLongToken(word string) (string, option.ArgPolicy, bool) {
	eq := strings.IndexByte(word, '=')
	if eq < 0 {
		return word[2:], option.NoArgument, true
	}
	if word[eq-1] == '[' {
		if word[len(word)-1] != ']' {
			return "", option.NoArgument, false
		}
		return word[2 : eq-1], option.OptionalArgument, true
	}
	return word[2:eq], option.RequiredArgument, true
}

// register - Binds the descriptor's spellings in the index map, reporting
// duplicate flags. Short and long spellings share one namespace, so a long
// flag can collide with an existing short flag. The descriptor consumes the
// next index only when at least one of its spellings registered; a spelling
// that collides stays bound to its first registrant and is cleared from the
// new descriptor.
func (co *CmdOption) register(opt *option.Option) {
	indexUsed := false
	if opt.HasShort() {
		str := string(opt.Short)
		if _, ok := co.indexMap[str]; ok {
			co.addError(fmt.Sprintf(text.ErrorDuplicateShortOption, str))
			opt.Short = 0
		} else {
			co.indexMap[str] = co.maxIndex
			indexUsed = true
		}
	}
	if opt.HasLong() {
		if _, ok := co.indexMap[opt.Long]; ok {
			co.addError(fmt.Sprintf(text.ErrorDuplicateLongOption, opt.Long))
			opt.Long = ""
		} else {
			co.indexMap[opt.Long] = co.maxIndex
			indexUsed = true
		}
	}
	if indexUsed {
		opt.Index = co.maxIndex
		co.maxIndex++
		co.opts = append(co.opts, opt)
		Logger.Printf("registered %s", opt)
	}
}

func (co *CmdOption) addError(str string) {
	co.errors = append(co.errors, str)
}
