package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// lineRows returns the number of terminal rows a single logical line occupies
// when soft-wrapped at width cells. Wrapping happens at word boundaries, with
// a hard break for words wider than the line.
func lineRows(line string, width int) int {
	if width <= 0 {
		return 1
	}
	if runewidth.StringWidth(line) <= width {
		return 1
	}
	wrapped := wrap.String(wordwrap.String(line, width), width)
	return strings.Count(wrapped, "\n") + 1
}

// contentRows returns the number of terminal rows value occupies at the given
// width. Empty content still occupies one row (the cursor's). A trailing
// newline opens a fresh row.
func contentRows(value string, width int) int {
	if value == "" {
		return 1
	}
	rows := 0
	for _, line := range strings.Split(value, "\n") {
		rows += lineRows(line, width)
	}
	return rows
}

// rowsBefore returns the number of display rows occupied by the first n
// logical lines of value.
func rowsBefore(value string, n, width int) int {
	rows := 0
	lines := strings.Split(value, "\n")
	for i := 0; i < n && i < len(lines); i++ {
		rows += lineRows(lines[i], width)
	}
	return rows
}

// visibleWidth returns the printable cell width of s, ignoring ANSI sequences.
// Used for styled fragments like the prompt.
func visibleWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}
