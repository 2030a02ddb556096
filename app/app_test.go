package app

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"flexarea/config"
	"flexarea/testing/harness"
	"flexarea/testing/snapshot"
	"flexarea/ui"
	"flexarea/ui/layout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTempHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
}

// newTestHome builds a home model with animation disabled and a throwaway
// config dir, then drives it through the harness at 100x30.
func newTestHome(t *testing.T) (*home, *harness.Harness) {
	t.Helper()
	setTempHome(t)

	cfg := config.DefaultConfig()
	cfg.ResizeDurationMs = 0

	m := newHome(context.Background(), cfg)
	m.Init()
	h := harness.New(t, m, 100, 30)
	return m, h
}

func TestViewRendersComposerAndMenu(t *testing.T) {
	_, h := newTestHome(t)
	snap := snapshot.New(t)

	view := h.View()
	snap.AssertContains(view, "Type a message...")
	snap.AssertContains(view, "enter send")
	snap.AssertContains(view, "no messages yet")
}

func TestSendAppendsToHistory(t *testing.T) {
	m, h := newTestHome(t)
	snap := snapshot.New(t)

	h.SendKey("hello world")
	h.SendSpecialKey(tea.KeyEnter)

	assert.Equal(t, 1, m.history.NumMessages())
	assert.Empty(t, m.composer.Value(), "send clears the draft")
	snap.AssertContains(h.View(), "hello world")
	snap.AssertContains(h.View(), "sending")

	h.SendMsg(sendDoneMsg{})
	snap.AssertContains(h.View(), "✓ sent")
	snap.AssertNotContains(h.View(), "sending")
}

func TestSendEmptyDraftShowsError(t *testing.T) {
	m, h := newTestHome(t)
	snap := snapshot.New(t)

	h.SendSpecialKey(tea.KeyEnter)

	assert.Zero(t, m.history.NumMessages())
	snap.AssertContains(h.View(), "nothing to send")

	h.SendMsg(hideErrMsg{})
	snap.AssertNotContains(h.View(), "nothing to send")
}

func TestKeySequenceTypesIntoComposer(t *testing.T) {
	m, h := newTestHome(t)

	harness.NewKeySequence("draft", " ", "in progress").Play(h)

	assert.Equal(t, "draft in progress", m.composer.Value())
	snapshot.New(t).AssertContains(h.View(), "draft in progress")
}

func TestBoundsOverlayAppliesPreset(t *testing.T) {
	m, h := newTestHome(t)
	snap := snapshot.New(t)

	h.SendSpecialKey(tea.KeyCtrlB)
	assert.Equal(t, stateBounds, m.state)
	snap.AssertContains(h.View(), "Select Height Bounds")

	// Two down from "Unbounded" lands on "Standard (2-8 rows)".
	h.SendSpecialKey(tea.KeyDown)
	h.SendSpecialKey(tea.KeyDown)
	h.SendSpecialKey(tea.KeyEnter)

	assert.Equal(t, stateComposing, m.state)
	assert.Equal(t, layout.Rows(2), m.userMin)
	assert.Equal(t, layout.Rows(8), m.userMax)
	assert.Equal(t, "Standard (2-8 rows)", m.appConfig.BoundsPreset)
}

func TestBoundsOverlayEscCancels(t *testing.T) {
	m, h := newTestHome(t)

	min, max := m.userMin, m.userMax
	h.SendSpecialKey(tea.KeyCtrlB)
	h.SendSpecialKey(tea.KeyDown)
	h.SendSpecialKey(tea.KeyEsc)

	assert.Equal(t, stateComposing, m.state)
	assert.Equal(t, min, m.userMin)
	assert.Equal(t, max, m.userMax)
}

func TestOverlaySwallowsTyping(t *testing.T) {
	m, h := newTestHome(t)

	h.SendSpecialKey(tea.KeyCtrlB)
	h.SendKey("should not reach the composer")

	assert.Empty(t, m.composer.Value())
}

func TestLayoutCapsMaxBound(t *testing.T) {
	m, h := newTestHome(t)

	// A user max of fifty rows cannot fit a twenty-row terminal; the layout's
	// ceiling wins.
	m.userMax = layout.Rows(50)
	h.Resize(100, 20)

	assert.Equal(t, layout.Rows(m.constraints.ComposerMaxRows), m.composer.MaxHeight)
	assert.Less(t, m.constraints.ComposerMaxRows, 50)
}

func TestMinSizeWarning(t *testing.T) {
	_, h := newTestHome(t)
	snap := snapshot.New(t)

	h.Resize(30, 8)
	snap.AssertContains(h.View(), "Terminal too small")

	h.Resize(100, 30)
	snap.AssertNotContains(h.View(), "Terminal too small")
}

func TestTabTogglesFocus(t *testing.T) {
	m, h := newTestHome(t)

	require.True(t, m.composer.Focused())
	h.SendSpecialKey(tea.KeyTab)
	assert.False(t, m.composer.Focused())
	h.SendSpecialKey(tea.KeyTab)
	assert.True(t, m.composer.Focused())
}

func TestClearEmptiesDraft(t *testing.T) {
	m, h := newTestHome(t)

	h.SendKey("zap")
	require.Equal(t, "zap", m.composer.Value())

	h.SendSpecialKey(tea.KeyCtrlX)
	assert.Empty(t, m.composer.Value())
}

func TestFillerInsertsText(t *testing.T) {
	m, h := newTestHome(t)

	h.SendSpecialKey(tea.KeyCtrlL)
	assert.Greater(t, m.composer.Length(), 0)
}

func TestQuitPersistsDraft(t *testing.T) {
	_, h := newTestHome(t)

	h.SendKey("half a thought")
	cmd := h.SendMsg(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	assert.Equal(t, "half a thought", config.LoadState().GetDraft())
}

func TestHistoryRestoredFromState(t *testing.T) {
	setTempHome(t)

	saved := []ui.Message{
		{Text: "first", SentAt: time.Now().Add(-time.Hour)},
		{Text: "second", SentAt: time.Now()},
	}
	data, err := json.Marshal(saved)
	require.NoError(t, err)
	require.NoError(t, config.LoadState().SaveHistory(data))

	cfg := config.DefaultConfig()
	cfg.ResizeDurationMs = 0
	m := newHome(context.Background(), cfg)
	m.Init()
	h := harness.New(t, m, 100, 30)

	assert.Equal(t, 2, m.history.NumMessages())
	snap := snapshot.New(t)
	snap.AssertContains(h.View(), "first")
	snap.AssertContains(h.View(), "second")
}

func TestViewFillsTerminalExactly(t *testing.T) {
	harness.RunWithCommonSizes(t, func(t *testing.T, size harness.TerminalSize) {
		setTempHome(t)
		cfg := config.DefaultConfig()
		cfg.ResizeDurationMs = 0
		m := newHome(context.Background(), cfg)
		m.Init()
		h := harness.New(t, m, size.Width, size.Height)

		assert.Equal(t, size.Height, snapshot.Lines(h.View()))
	})
}
