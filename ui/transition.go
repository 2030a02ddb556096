package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultResizeDuration matches the feel of a quick UI spring without
// lagging behind fast typists.
const DefaultResizeDuration = 200 * time.Millisecond

// resizeFrameInterval is the tick rate for height transitions, ~30fps.
const resizeFrameInterval = 33 * time.Millisecond

// resizeFrameMsg advances an in-flight height transition. gen identifies the
// transition that scheduled it so frames from superseded transitions are
// dropped instead of fighting the current one.
type resizeFrameMsg struct {
	gen int
}

func resizeFrame(gen int) tea.Cmd {
	return tea.Tick(resizeFrameInterval, func(time.Time) tea.Msg {
		return resizeFrameMsg{gen: gen}
	})
}

// resizeFrameNow delivers a frame on the next message cycle, used for
// zero-duration transitions.
func resizeFrameNow(gen int) tea.Cmd {
	return func() tea.Msg {
		return resizeFrameMsg{gen: gen}
	}
}

// easeOutQuad decelerates toward the end of the transition. t is clamped to
// [0, 1].
func easeOutQuad(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * (2 - t)
}

// interpolate returns the height for a transition from "from" to "to" at
// progress frac in [0, 1], rounding toward the destination so the final
// frames do not stall one row short.
func interpolate(from, to int, frac float64) int {
	if frac >= 1 {
		return to
	}
	span := float64(to - from)
	h := from + int(span*frac+0.5)
	if to > from && h > to {
		return to
	}
	if to < from && h < to {
		return to
	}
	return h
}
