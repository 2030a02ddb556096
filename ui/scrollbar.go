package ui

import (
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

var (
	scrollbarOnce  sync.Once
	scrollbarAscii bool
)

// scrollbarGlyphs returns the thumb and track runes, falling back to ASCII
// when the terminal reports no color support (a proxy for limited charsets
// over dumb terminals and CI pipes).
func scrollbarGlyphs() (thumb, track string) {
	scrollbarOnce.Do(func() {
		scrollbarAscii = termenv.ColorProfile() == termenv.Ascii
	})
	if scrollbarAscii {
		return "#", "|"
	}
	return "┃", "│"
}

// renderScrollbar draws a one-column scrollbar for a viewport of the given
// height showing total rows of content scrolled to offset. Rows are joined
// with newlines so the column can sit beside the clipped text.
func renderScrollbar(height, total, offset int) string {
	if height <= 0 {
		return ""
	}
	thumbGlyph, trackGlyph := scrollbarGlyphs()
	if total <= height {
		rows := make([]string, height)
		for i := range rows {
			rows[i] = scrollTrackStyle.Render(trackGlyph)
		}
		return strings.Join(rows, "\n")
	}

	thumbLen := height * height / total
	if thumbLen < 1 {
		thumbLen = 1
	}
	maxOffset := total - height
	maxThumbPos := height - thumbLen
	thumbPos := 0
	if maxOffset > 0 {
		thumbPos = offset * maxThumbPos / maxOffset
	}
	if thumbPos > maxThumbPos {
		thumbPos = maxThumbPos
	}

	rows := make([]string, height)
	for i := range rows {
		if i >= thumbPos && i < thumbPos+thumbLen {
			rows[i] = scrollThumbStyle.Render(thumbGlyph)
		} else {
			rows[i] = scrollTrackStyle.Render(trackGlyph)
		}
	}
	return strings.Join(rows, "\n")
}

// blankGutter renders the scrollbar column's footprint when no scrollbar is
// shown, keeping the text width stable across the max-height edge.
func blankGutter(height int) string {
	if height <= 0 {
		return ""
	}
	rows := make([]string, height)
	for i := range rows {
		rows[i] = " "
	}
	return strings.Join(rows, "\n")
}
