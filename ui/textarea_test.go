package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"flexarea/log"
	"flexarea/ui/layout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frameV is the composer frame's vertical footprint (top + bottom border).
const frameV = 2

// newTestArea returns a laid-out TextArea with instant transitions.
func newTestArea(t *testing.T) *TextArea {
	t.Helper()
	ta := New()
	ta.ResizeDuration = 0
	require.Nil(t, ta.SetWidth(40), "first layout should not animate")
	return ta
}

// settle drives any pending height transition to completion by delivering
// resize frames directly. Editor commands (cursor blinks) are not executed.
func settle(t *testing.T, ta *TextArea) {
	t.Helper()
	for i := 0; ta.Animating(); i++ {
		require.Less(t, i, 100, "transition did not settle")
		ta.Update(resizeFrameMsg{gen: ta.gen})
	}
}

func typeRunes(t *testing.T, ta *TextArea, s string) {
	t.Helper()
	for _, r := range s {
		ta.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		settle(t, ta)
	}
}

func lines(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("line %d", i+1)
	}
	return strings.Join(parts, "\n")
}

func setValue(t *testing.T, ta *TextArea, s string) {
	t.Helper()
	ta.SetValue(s)
	settle(t, ta)
}

func TestTextAreaInitialLayout(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0

	var willCalls, didCalls int
	ta.WillChangeHeight = func(int) { willCalls++ }
	ta.DidChangeHeight = func(int) { didCalls++ }

	cmd := ta.SetWidth(40)

	assert.Nil(t, cmd)
	assert.Equal(t, 1+frameV, ta.Height(), "empty content occupies one row plus frame")
	assert.Equal(t, ta.Height(), ta.DisplayHeight())
	assert.Zero(t, willCalls, "first layout seeds silently")
	assert.Zero(t, didCalls)
}

func TestTextAreaGrowsWithContent(t *testing.T) {
	ta := newTestArea(t)

	setValue(t, ta, lines(3))

	assert.Equal(t, 3+frameV, ta.Height())
	assert.Equal(t, ta.Height(), ta.DisplayHeight())
	assert.False(t, ta.AtMaxHeight())
}

func TestTextAreaShrinksWithContent(t *testing.T) {
	ta := newTestArea(t)
	setValue(t, ta, lines(5))
	require.Equal(t, 5+frameV, ta.Height())

	setValue(t, ta, lines(2))

	assert.Equal(t, 2+frameV, ta.Height())
}

func TestTextAreaEvaluationIsIdempotent(t *testing.T) {
	ta := newTestArea(t)
	setValue(t, ta, lines(3))

	var willCalls int
	ta.WillChangeHeight = func(int) { willCalls++ }

	// Same content, same width, same bounds: a strict no-op.
	cmd := ta.SetValue(lines(3))

	assert.Nil(t, cmd)
	assert.Zero(t, willCalls)
	assert.Nil(t, ta.SetWidth(40), "unchanged width is a no-op")
}

func TestTextAreaMinBoundLiftsHeight(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0
	ta.MinHeight = layout.Rows(3)
	require.Nil(t, ta.SetWidth(40))

	assert.Equal(t, 3+frameV, ta.Height(), "empty content lifts to the min bound")
	assert.False(t, ta.AtMaxHeight())

	// Growing past the min tracks content again.
	setValue(t, ta, lines(4))
	assert.Equal(t, 4+frameV, ta.Height())
}

func TestTextAreaMaxBoundPinsHeight(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0
	ta.MaxHeight = layout.Rows(3)
	require.Nil(t, ta.SetWidth(40))

	setValue(t, ta, lines(10))

	assert.Equal(t, 3+frameV, ta.Height())
	assert.True(t, ta.AtMaxHeight())

	// Content exactly at the bound still counts as pinned.
	setValue(t, ta, lines(3))
	assert.Equal(t, 3+frameV, ta.Height())
	assert.True(t, ta.AtMaxHeight())

	// One row under the bound unpins.
	setValue(t, ta, lines(2))
	assert.Equal(t, 2+frameV, ta.Height())
	assert.False(t, ta.AtMaxHeight())
}

func TestTextAreaCellBound(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0
	ta.MaxHeight = layout.Cells(3 + frameV)
	require.Nil(t, ta.SetWidth(40))

	setValue(t, ta, lines(10))

	assert.Equal(t, 3+frameV, ta.Height())
	assert.True(t, ta.AtMaxHeight())
}

func TestTextAreaMaxWinsOverMin(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0
	ta.MinHeight = layout.Rows(8)
	ta.MaxHeight = layout.Rows(3)
	require.Nil(t, ta.SetWidth(40))

	assert.Equal(t, 3+frameV, ta.Height())
	assert.True(t, ta.AtMaxHeight())
}

func TestTextAreaScrollFlagsSnapshotAndRestore(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0
	ta.MaxHeight = layout.Rows(3)
	require.Nil(t, ta.SetWidth(40))

	ta.SetScrollEnabled(false)
	ta.SetShowsScrollIndicator(false)

	// Pinning at max forces both flags on.
	setValue(t, ta, lines(10))
	require.True(t, ta.AtMaxHeight())
	assert.True(t, ta.ScrollEnabled())
	assert.True(t, ta.ShowsScrollIndicator())

	// Unpinning restores the snapshot.
	setValue(t, ta, lines(1))
	require.False(t, ta.AtMaxHeight())
	assert.False(t, ta.ScrollEnabled())
	assert.False(t, ta.ShowsScrollIndicator())
}

func TestTextAreaInvalidBoundDegradesToUnbounded(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0
	ta.MaxHeight = layout.Rows(0)
	require.Nil(t, ta.SetWidth(40))

	setValue(t, ta, lines(12))

	assert.Equal(t, 12+frameV, ta.Height())
	assert.False(t, ta.AtMaxHeight())
}

func TestTextAreaInvalidBoundWarnsOncePerConfiguration(t *testing.T) {
	var buf bytes.Buffer
	log.WarningLog.SetOutput(&buf)
	defer log.WarningLog.SetOutput(io.Discard)

	ta := New()
	ta.ResizeDuration = 0
	ta.MaxHeight = layout.Rows(0)
	require.Nil(t, ta.SetWidth(40))

	setValue(t, ta, lines(3))
	setValue(t, ta, lines(5))
	setValue(t, ta, lines(1))

	assert.Equal(t, 1, strings.Count(buf.String(), "invalid max height bound"),
		"repeated evaluations of the same bad bound warn once")

	// A different invalid bound re-arms the warning.
	ta.MaxHeight = layout.Cells(-1)
	setValue(t, ta, lines(6))

	assert.Equal(t, 2, strings.Count(buf.String(), "invalid max height bound"))
	assert.Zero(t, strings.Count(buf.String(), "invalid min height bound"))
}

func TestTextAreaCallbackOrder(t *testing.T) {
	ta := newTestArea(t)

	var events []string
	ta.WillChangeHeight = func(h int) { events = append(events, fmt.Sprintf("will:%d", h)) }
	ta.DidChangeHeight = func(h int) { events = append(events, fmt.Sprintf("did:%d", h)) }

	setValue(t, ta, lines(4))

	require.Len(t, events, 2)
	assert.Equal(t, fmt.Sprintf("will:%d", 4+frameV), events[0], "WillChangeHeight fires before the transition")
	assert.Equal(t, fmt.Sprintf("did:%d", 4+frameV), events[1])
}

func TestTextAreaCommittedHeightLeadsDisplayHeight(t *testing.T) {
	ta := New()
	ta.ResizeDuration = time.Hour
	require.Nil(t, ta.SetWidth(40))

	cmd := ta.SetValue(lines(6))
	require.NotNil(t, cmd)

	assert.Equal(t, 6+frameV, ta.Height(), "committed height updates immediately")
	assert.Equal(t, 1+frameV, ta.DisplayHeight(), "rendered height lags until frames arrive")
	assert.True(t, ta.Animating())
}

func TestTextAreaStaleTransitionFramesAreDropped(t *testing.T) {
	ta := New()
	ta.ResizeDuration = time.Hour
	require.Nil(t, ta.SetWidth(40))

	require.NotNil(t, ta.SetValue(lines(6)))
	staleGen := ta.gen

	// A second change supersedes the first transition.
	require.NotNil(t, ta.SetValue(lines(2)))
	require.Equal(t, staleGen+1, ta.gen)

	var didCalls int
	ta.DidChangeHeight = func(int) { didCalls++ }

	assert.Nil(t, ta.Update(resizeFrameMsg{gen: staleGen}), "stale frame is dropped")
	assert.True(t, ta.Animating())
	assert.Zero(t, didCalls)

	// The current transition still settles.
	ta.ResizeDuration = 0
	assert.Nil(t, ta.Update(resizeFrameMsg{gen: ta.gen}))
	assert.False(t, ta.Animating())
	assert.Equal(t, 2+frameV, ta.DisplayHeight())
	assert.Equal(t, 1, didCalls)
}

func TestTextAreaScrollResetsOnSettle(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0
	ta.MaxHeight = layout.Rows(3)
	require.Nil(t, ta.SetWidth(40))
	setValue(t, ta, lines(10))

	// Scroll down, then trigger a new transition and settle it.
	ta.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	require.Positive(t, ta.ScrollOffset())

	setValue(t, ta, lines(1))

	assert.Zero(t, ta.ScrollOffset(), "settling resets the content offset to the top")
}

func TestTextAreaMouseWheelOnlyScrollsAtMax(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0
	ta.MaxHeight = layout.Rows(3)
	require.Nil(t, ta.SetWidth(40))

	wheelDown := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}

	// Below the bound the wheel is inert.
	setValue(t, ta, lines(2))
	ta.Update(wheelDown)
	assert.Zero(t, ta.ScrollOffset())

	// At the bound it scrolls.
	setValue(t, ta, lines(10))
	ta.Update(wheelDown)
	assert.Positive(t, ta.ScrollOffset())

	// Disabling scrolling re-inerts it.
	ta.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	offset := ta.ScrollOffset()
	ta.SetScrollEnabled(false)
	ta.Update(wheelDown)
	assert.Equal(t, offset, ta.ScrollOffset())
}

func TestTextAreaCursorStaysVisibleAtMax(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0
	ta.MaxHeight = layout.Rows(3)
	require.Nil(t, ta.SetWidth(40))
	ta.Focus()
	setValue(t, ta, lines(10))

	// SetValue leaves the cursor on the last line; typing scrolls it into view.
	typeRunes(t, ta, "!")

	assert.Equal(t, 10-3, ta.ScrollOffset(), "window ends on the cursor's row")
}

func TestTextAreaWidthChangeReevaluates(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0
	require.Nil(t, ta.SetWidth(80))

	// One long line that fits at 80 columns but wraps when narrowed.
	setValue(t, ta, strings.Repeat("wide ", 12))
	require.Equal(t, 1+frameV, ta.Height())

	ta.SetWidth(30)
	settle(t, ta)

	assert.Greater(t, ta.Height(), 1+frameV, "narrowing wraps the line onto more rows")
}

func TestTextAreaTypingGrowsHeight(t *testing.T) {
	ta := newTestArea(t)
	ta.Focus()

	typeRunes(t, ta, "hello")
	ta.Update(tea.KeyMsg{Type: tea.KeyEnter})
	settle(t, ta)
	typeRunes(t, ta, "world")

	assert.Equal(t, "hello\nworld", ta.Value())
	assert.Equal(t, 2+frameV, ta.Height())
}

func TestTextAreaResetReturnsToMinimum(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0
	ta.MinHeight = layout.Rows(2)
	require.Nil(t, ta.SetWidth(40))
	setValue(t, ta, lines(6))

	ta.Reset()
	settle(t, ta)

	assert.Empty(t, ta.Value())
	assert.Equal(t, 2+frameV, ta.Height())
}

func TestTextAreaViewHeightMatchesDisplayHeight(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0
	ta.MaxHeight = layout.Rows(4)
	require.Nil(t, ta.SetWidth(40))
	setValue(t, ta, lines(9))

	view := ta.View()

	assert.Equal(t, ta.DisplayHeight(), strings.Count(view, "\n")+1)
	assert.Contains(t, view, "line 1")
}

func TestTextAreaInspectNode(t *testing.T) {
	ta := New()
	ta.ResizeDuration = 0
	ta.MaxHeight = layout.Rows(3)
	require.Nil(t, ta.SetWidth(40))
	setValue(t, ta, lines(8))

	node := ta.InspectNode()

	assert.Equal(t, "TextArea", node.Type)
	assert.Equal(t, 3+frameV, node.State["committed_height"])
	assert.Equal(t, 8+frameV, node.State["ideal_height"])
	assert.Equal(t, true, node.State["at_max"])
}
