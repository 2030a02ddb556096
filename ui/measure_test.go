package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineRows(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  int
	}{
		{name: "empty line", line: "", width: 10, want: 1},
		{name: "fits exactly", line: "abcdefghij", width: 10, want: 1},
		{name: "word wrap", line: "hello brave new world", width: 12, want: 2},
		{name: "long word hard-breaks", line: strings.Repeat("x", 25), width: 10, want: 3},
		{name: "zero width is one row", line: "anything", width: 0, want: 1},
		{name: "wide runes count double", line: strings.Repeat("日", 6), width: 10, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lineRows(tt.line, tt.width))
		})
	}
}

func TestContentRows(t *testing.T) {
	tests := []struct {
		name  string
		value string
		width int
		want  int
	}{
		{name: "empty content is one row", value: "", width: 10, want: 1},
		{name: "one line", value: "hi", width: 10, want: 1},
		{name: "newlines split rows", value: "a\nb\nc", width: 10, want: 3},
		{name: "trailing newline opens a row", value: "a\n", width: 10, want: 2},
		{name: "wrapping adds rows", value: "a\n" + strings.Repeat("y", 15), width: 10, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contentRows(tt.value, tt.width))
		})
	}
}

func TestRowsBefore(t *testing.T) {
	value := "short\n" + strings.Repeat("z", 15) + "\nlast"

	assert.Equal(t, 0, rowsBefore(value, 0, 10))
	assert.Equal(t, 1, rowsBefore(value, 1, 10))
	assert.Equal(t, 3, rowsBefore(value, 2, 10), "wrapped line counts both rows")
	assert.Equal(t, 4, rowsBefore(value, 3, 10))
}

func TestVisibleWidth(t *testing.T) {
	assert.Equal(t, 2, visibleWidth("┃ "))
	assert.Equal(t, 5, visibleWidth("\x1b[1mhello\x1b[0m"), "ANSI sequences are invisible")
}
