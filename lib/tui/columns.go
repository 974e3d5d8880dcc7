// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PadRight pads s with spaces to width display cells. Escape sequences
// do not count toward the width. Strings already at least width wide
// are returned unchanged.
func PadRight(s string, width int) string {
	visible := ansi.StringWidth(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// PadLeft is PadRight with the padding in front, for numeric columns.
func PadLeft(s string, width int) string {
	visible := ansi.StringWidth(s)
	if visible >= width {
		return s
	}
	return strings.Repeat(" ", width-visible) + s
}

// Columns lays out rows as aligned columns separated by gap spaces.
// Cells may contain styled text. Columns listed in rightAligned are
// padded on the left. The last column is never padded, so lines carry
// no trailing spaces.
func Columns(rows [][]string, gap int, rightAligned ...int) []string {
	var widths []int
	for _, row := range rows {
		for index, cell := range row {
			if index >= len(widths) {
				widths = append(widths, 0)
			}
			widths[index] = max(widths[index], ansi.StringWidth(cell))
		}
	}

	right := make(map[int]bool, len(rightAligned))
	for _, index := range rightAligned {
		right[index] = true
	}

	separator := strings.Repeat(" ", gap)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var line strings.Builder
		for index, cell := range row {
			if index > 0 {
				line.WriteString(separator)
			}
			switch {
			case right[index]:
				line.WriteString(PadLeft(cell, widths[index]))
			case index == len(row)-1:
				line.WriteString(cell)
			default:
				line.WriteString(PadRight(cell, widths[index]))
			}
		}
		lines = append(lines, line.String())
	}
	return lines
}

// Truncate cuts s to width display cells, ending with tail when it had
// to cut. Escape sequences are preserved.
func Truncate(s string, width int, tail string) string {
	return ansi.Truncate(s, width, tail)
}
