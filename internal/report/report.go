// This file is part of go-cmdoption.
//
// Copyright (C) 2019-2025  TianBo Timothy
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package report - text alignment helpers for the diagnostic dump.
package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Section - Renders a titled block with every line indented by four spaces.
func Section(title string, lines []string) string {
	out := title + ":\n"
	for _, line := range lines {
		out += fmt.Sprintf("    %s\n", line)
	}
	return out
}

// Columns - Aligns rows of cells into columns, padding every column to its
// widest cell and separating columns with four spaces. Rows may differ in
// length; trailing whitespace is trimmed.
func Columns(rows [][]string) []string {
	widths := []int{}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	lines := []string{}
	for _, row := range rows {
		cells := []string{}
		for i, cell := range row {
			cells = append(cells, pad(cell, widths[i]))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, "    "), " "))
	}
	return lines
}

// pad - Given a string and a padding factor it will return the string padded
// with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}
