// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/changedoc

package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// table renders aligned terminal columns with a colored header.
type table struct {
	writer  io.Writer
	headers []string
	rows    [][]string
	noColor bool
}

// newTable creates a table with headers.
func newTable(w io.Writer, noColor bool, headers ...string) *table {
	return &table{writer: w, headers: headers, noColor: noColor}
}

// addRow appends one row.
func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// render writes header, separator and rows.
func (t *table) render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = utf8.RuneCountInString(header)
	}

	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && utf8.RuneCountInString(cell) > widths[i] {
				widths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	header := color.New(color.Bold, color.FgCyan)
	rule := color.New(color.FgHiBlack)
	if t.noColor {
		header.DisableColor()
		rule.DisableColor()
	}

	cells := make([]string, len(t.headers))
	for i, name := range t.headers {
		cells[i] = header.Sprint(padRight(name, widths[i]))
	}
	_, _ = fmt.Fprintln(t.writer, strings.TrimRight(strings.Join(cells, "  "), " "))

	for i, width := range widths {
		cells[i] = rule.Sprint(strings.Repeat("-", width))
	}
	_, _ = fmt.Fprintln(t.writer, strings.Join(cells, "  "))

	for _, row := range t.rows {
		line := make([]string, 0, len(row))
		for i, cell := range row {
			if i < len(widths) {
				line = append(line, padRight(cell, widths[i]))
			}
		}

		_, _ = fmt.Fprintln(t.writer, strings.TrimRight(strings.Join(line, "  "), " "))
	}
}

// padRight pads s with spaces up to width runes.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}

	return s
}
