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

	"github.com/TianBo-Timothy/go-cmdoption/internal/report"
)

// DebugReport - Dumps how the parser understood the usage text and what the
// last Parse call captured. Development aid only; the format is not a
// stable interface.
func (co *CmdOption) DebugReport() string {
	tableRows := [][]string{}
	valueRows := [][]string{}
	for _, opt := range co.opts {
		tableRows = append(tableRows, []string{
			fmt.Sprintf("%d:", opt.Index),
			opt.Synopsis(),
			fmt.Sprintf("argument %s", opt.Policy),
		})
		v, ok := co.values[opt.Index]
		if !ok {
			continue
		}
		frags, _ := v.Strs()
		valueRows = append(valueRows, []string{
			fmt.Sprintf("%d:", opt.Index),
			fmt.Sprintf("count %d", v.Count()),
			fmt.Sprintf("%q", frags),
		})
	}

	out := report.Section("option table", report.Columns(tableRows))
	if len(valueRows) > 0 {
		out += report.Section("values", report.Columns(valueRows))
	}
	if co.arguments.Bool() {
		frags, _ := co.arguments.Strs()
		out += report.Section("arguments", []string{fmt.Sprintf("%q", frags)})
	}
	if !co.Good() {
		lines := []string{}
		for _, e := range co.errors {
			lines = append(lines, strings.Split(e, "\n")...)
		}
		out += report.Section("errors", lines)
	}
	return out
}
