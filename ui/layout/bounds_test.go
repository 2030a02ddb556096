package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundResolve(t *testing.T) {
	tests := []struct {
		name    string
		bound   Bound
		frame   int
		want    Resolved
		wantOK  bool
	}{
		{
			name:   "none is unbounded",
			bound:  None(),
			frame:  2,
			want:   Unbounded,
			wantOK: true,
		},
		{
			name:   "cells resolve as-is",
			bound:  Cells(10),
			frame:  2,
			want:   Resolved{Height: 10, Bounded: true},
			wantOK: true,
		},
		{
			name:   "rows add the vertical frame",
			bound:  Rows(3),
			frame:  2,
			want:   Resolved{Height: 5, Bounded: true},
			wantOK: true,
		},
		{
			name:   "one row with no frame",
			bound:  Rows(1),
			frame:  0,
			want:   Resolved{Height: 1, Bounded: true},
			wantOK: true,
		},
		{
			name:   "zero rows degrade to unbounded",
			bound:  Rows(0),
			frame:  2,
			want:   Unbounded,
			wantOK: false,
		},
		{
			name:   "negative cells degrade to unbounded",
			bound:  Cells(-1),
			frame:  0,
			want:   Unbounded,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.bound.Resolve(tt.frame)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestBoundKindString(t *testing.T) {
	assert.Equal(t, "none", None().Kind.String())
	assert.Equal(t, "cells", Cells(5).Kind.String())
	assert.Equal(t, "rows", Rows(5).Kind.String())
}

func TestClampHeight(t *testing.T) {
	bounded := func(h int) Resolved { return Resolved{Height: h, Bounded: true} }

	tests := []struct {
		name       string
		ideal      int
		min        Resolved
		max        Resolved
		wantTarget int
		wantAtMax  bool
	}{
		{
			name:       "no bounds passes ideal through",
			ideal:      7,
			min:        Unbounded,
			max:        Unbounded,
			wantTarget: 7,
		},
		{
			name:       "ideal above max pins to max",
			ideal:      14,
			min:        Unbounded,
			max:        bounded(10),
			wantTarget: 10,
			wantAtMax:  true,
		},
		{
			name:       "ideal equal to max pins to max",
			ideal:      10,
			min:        Unbounded,
			max:        bounded(10),
			wantTarget: 10,
			wantAtMax:  true,
		},
		{
			name:       "ideal below min lifts to min",
			ideal:      2,
			min:        bounded(3),
			max:        Unbounded,
			wantTarget: 3,
		},
		{
			name:       "ideal within both bounds is untouched",
			ideal:      5,
			min:        bounded(3),
			max:        bounded(10),
			wantTarget: 5,
		},
		{
			name:       "max wins over min",
			ideal:      14,
			min:        bounded(3),
			max:        bounded(10),
			wantTarget: 10,
			wantAtMax:  true,
		},
		{
			name:       "just under max is not at max",
			ideal:      9,
			min:        Unbounded,
			max:        bounded(10),
			wantTarget: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, atMax := ClampHeight(tt.ideal, tt.min, tt.max)
			assert.Equal(t, tt.wantTarget, target, "target")
			assert.Equal(t, tt.wantAtMax, atMax, "atMax")
		})
	}
}
