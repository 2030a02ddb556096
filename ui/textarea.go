package ui

import (
	"time"

	"flexarea/inspect"
	"flexarea/log"
	"flexarea/ui/layout"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// scrollbarGutter is the column reserved beside the text whether or not the
// scrollbar is visible, so wrapping does not shift when the max bound is hit.
const scrollbarGutter = 1

// minInnerWidth keeps the editor usable on absurdly narrow terminals.
const minInnerWidth = 4

// TextArea is a multiline input that grows and shrinks with its content. The
// committed height tracks the content's ideal height clamped to MinHeight and
// MaxHeight; the rendered height eases toward it over ResizeDuration. When
// the content is pinned at the max bound the editor scrolls and shows a
// scrollbar column.
type TextArea struct {
	// ResizeDuration is the length of the height transition. Zero commits
	// the new height on the next message cycle without animating.
	ResizeDuration time.Duration

	// MinHeight and MaxHeight bound the committed height. Invalid bounds
	// degrade to unbounded and warn once in the log.
	MinHeight layout.Bound
	MaxHeight layout.Bound

	// WillChangeHeight fires synchronously before a transition starts;
	// DidChangeHeight fires when the rendered height settles. Both receive
	// the committed height in total rows including the frame.
	WillChangeHeight func(height int)
	DidChangeHeight  func(height int)

	input textarea.Model
	clip  viewport.Model

	width      int // total width including frame and gutter
	constraint int // committed height, total rows
	displayed  int // rendered height, eases toward constraint
	laidOut    bool

	atMax              bool
	scrollEnabled      bool
	showIndicator      bool
	savedScrollEnabled bool
	savedShowIndicator bool

	gen       int
	animating bool
	animStart time.Time
	animFrom  int

	lastMin   layout.Bound
	lastMax   layout.Bound
	minWarned bool
	maxWarned bool

	focused bool
}

// New creates an unbounded TextArea. Callers set bounds, callbacks, and
// placeholder, then drive it with SetWidth and Update.
func New() *TextArea {
	input := textarea.New()
	input.Prompt = ""
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.MaxWidth = 0

	t := &TextArea{
		ResizeDuration: DefaultResizeDuration,
		input:          input,
		clip:           viewport.New(0, 1),
		scrollEnabled:  true,
		showIndicator:  true,
	}
	// Wheel events are gated on the max bound here, not in the viewport.
	t.clip.MouseWheelEnabled = false
	t.constraint = 1 + t.frame().GetVerticalFrameSize()
	t.displayed = t.constraint
	return t
}

func (t *TextArea) frame() lipgloss.Style {
	if t.focused {
		return composerFocusedStyle
	}
	return composerBlurredStyle
}

// contentHeight converts a total height to inner text rows.
func (t *TextArea) contentHeight(total int) int {
	h := total - t.frame().GetVerticalFrameSize()
	if h < 1 {
		h = 1
	}
	return h
}

// IdealHeight returns the unclamped height the current content wants, in
// total rows including the frame.
func (t *TextArea) IdealHeight() int {
	return contentRows(t.input.Value(), t.input.Width()) + t.frame().GetVerticalFrameSize()
}

// SetWidth lays the component out at a new total width and re-evaluates the
// height. The first layout seeds the committed height directly: there is no
// previous height worth transitioning from, and callbacks stay quiet.
func (t *TextArea) SetWidth(w int) tea.Cmd {
	if w <= 0 || w == t.width {
		return nil
	}
	t.width = w
	inner := w - t.frame().GetHorizontalFrameSize() - scrollbarGutter
	if inner < minInnerWidth {
		inner = minInnerWidth
	}
	t.input.SetWidth(inner)
	t.clip.Width = inner

	if !t.laidOut {
		t.laidOut = true
		target, atMax := t.clampIdeal()
		t.applyMaxEdge(atMax)
		t.constraint = target
		t.displayed = target
		return nil
	}
	return t.evaluate()
}

// evaluate recomputes the committed height for the current content, width,
// and bounds. A target equal to the current committed height is a strict
// no-op: no callbacks, no transition.
func (t *TextArea) evaluate() tea.Cmd {
	if !t.laidOut {
		return nil
	}
	target, atMax := t.clampIdeal()
	t.applyMaxEdge(atMax)
	if target == t.constraint {
		return nil
	}

	log.ResizeTrace("height %d -> %d (ideal %d, atMax %v)", t.constraint, target, t.IdealHeight(), atMax)
	if t.WillChangeHeight != nil {
		t.WillChangeHeight(target)
	}
	t.constraint = target
	return t.startTransition()
}

// clampIdeal resolves both bounds and clamps the ideal height. Bounds that
// fail to resolve degrade to unbounded with a one-time warning, re-armed when
// the bound changes.
func (t *TextArea) clampIdeal() (target int, atMax bool) {
	frame := t.frame().GetVerticalFrameSize()

	if t.MinHeight != t.lastMin {
		t.lastMin = t.MinHeight
		t.minWarned = false
	}
	if t.MaxHeight != t.lastMax {
		t.lastMax = t.MaxHeight
		t.maxWarned = false
	}

	minR, ok := t.MinHeight.Resolve(frame)
	if !ok && !t.minWarned {
		t.minWarned = true
		log.WarningLog.Printf("invalid min height bound (%s %d), treating as unbounded", t.MinHeight.Kind, t.MinHeight.Value)
	}
	maxR, ok := t.MaxHeight.Resolve(frame)
	if !ok && !t.maxWarned {
		t.maxWarned = true
		log.WarningLog.Printf("invalid max height bound (%s %d), treating as unbounded", t.MaxHeight.Kind, t.MaxHeight.Value)
	}

	return layout.ClampHeight(t.IdealHeight(), minR, maxR)
}

// applyMaxEdge snapshots the scroll flags when the height pins to the max
// bound and restores them when it unpins.
func (t *TextArea) applyMaxEdge(atMax bool) {
	if atMax == t.atMax {
		return
	}
	if atMax {
		t.savedScrollEnabled = t.scrollEnabled
		t.savedShowIndicator = t.showIndicator
		t.scrollEnabled = true
		t.showIndicator = true
	} else {
		t.scrollEnabled = t.savedScrollEnabled
		t.showIndicator = t.savedShowIndicator
	}
	t.atMax = atMax
}

func (t *TextArea) startTransition() tea.Cmd {
	t.gen++
	t.animating = true
	t.animStart = time.Now()
	t.animFrom = t.displayed
	if t.ResizeDuration <= 0 {
		return resizeFrameNow(t.gen)
	}
	return resizeFrame(t.gen)
}

func (t *TextArea) advanceTransition(msg resizeFrameMsg) tea.Cmd {
	// Frames from superseded or finished transitions are dropped.
	if !t.animating || msg.gen != t.gen {
		return nil
	}
	elapsed := time.Since(t.animStart)
	if t.ResizeDuration <= 0 || elapsed >= t.ResizeDuration {
		t.finishTransition()
		return nil
	}
	frac := easeOutQuad(float64(elapsed) / float64(t.ResizeDuration))
	t.displayed = interpolate(t.animFrom, t.constraint, frac)
	return resizeFrame(t.gen)
}

func (t *TextArea) finishTransition() {
	t.animating = false
	t.displayed = t.constraint
	t.clip.GotoTop()
	if t.DidChangeHeight != nil {
		t.DidChangeHeight(t.constraint)
	}
}

// Update routes messages to the editor and re-evaluates the height whenever
// the text changes. Mouse wheel events scroll the clipped content, but only
// while pinned at the max bound with scrolling enabled.
func (t *TextArea) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case resizeFrameMsg:
		return t.advanceTransition(msg)
	case tea.MouseMsg:
		if !t.atMax || !t.scrollEnabled || msg.Action != tea.MouseActionPress {
			return nil
		}
		t.syncClip()
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			t.clip.LineUp(t.clip.MouseWheelDelta)
		case tea.MouseButtonWheelDown:
			t.clip.LineDown(t.clip.MouseWheelDelta)
		}
		return nil
	}

	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if t.input.Value() != before {
		log.InputTrace("text changed, %d chars", t.input.Length())
		cmd = tea.Batch(cmd, t.evaluate())
	}
	t.followCursor()
	return cmd
}

// followCursor keeps the cursor's display row inside the clipped window.
func (t *TextArea) followCursor() {
	if !t.laidOut {
		return
	}
	t.syncClip()
	row := rowsBefore(t.input.Value(), t.input.Line(), t.input.Width()) + t.input.LineInfo().RowOffset
	visible := t.contentHeight(t.constraint)
	if row < t.clip.YOffset {
		t.clip.SetYOffset(row)
	} else if row >= t.clip.YOffset+visible {
		t.clip.SetYOffset(row - visible + 1)
	}
}

// syncClip renders the full content into the clipping viewport. The editor's
// own height always matches the content so it never scrolls internally; all
// clipping happens here.
func (t *TextArea) syncClip() {
	rows := contentRows(t.input.Value(), t.input.Width())
	t.input.SetHeight(rows)
	t.clip.Height = t.contentHeight(t.displayed)
	t.clip.SetContent(t.input.View())
}

func (t *TextArea) View() string {
	done := log.GetProfiler().StartRender("textarea")
	defer done()

	t.syncClip()
	body := t.clip.View()

	var gutter string
	if t.atMax && t.showIndicator {
		gutter = renderScrollbar(t.clip.Height, t.input.Height(), t.clip.YOffset)
	} else {
		gutter = blankGutter(t.clip.Height)
	}
	return t.frame().Render(lipgloss.JoinHorizontal(lipgloss.Top, body, gutter))
}

func (t *TextArea) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

func (t *TextArea) Blur() {
	t.focused = false
	t.input.Blur()
}

func (t *TextArea) Focused() bool {
	return t.focused
}

func (t *TextArea) Value() string {
	return t.input.Value()
}

// SetValue replaces the content and re-evaluates the height.
func (t *TextArea) SetValue(s string) tea.Cmd {
	t.input.SetValue(s)
	return t.evaluate()
}

// InsertString inserts text at the cursor and re-evaluates the height.
func (t *TextArea) InsertString(s string) tea.Cmd {
	t.input.InsertString(s)
	return t.evaluate()
}

// Reset clears the content and re-evaluates the height.
func (t *TextArea) Reset() tea.Cmd {
	t.input.Reset()
	return t.evaluate()
}

func (t *TextArea) Length() int {
	return t.input.Length()
}

// SetBounds swaps both height bounds and re-evaluates, since a bounds change
// alone can move the committed height.
func (t *TextArea) SetBounds(min, max layout.Bound) tea.Cmd {
	if min == t.MinHeight && max == t.MaxHeight {
		return nil
	}
	t.MinHeight = min
	t.MaxHeight = max
	return t.evaluate()
}

// Height returns the committed height in total rows.
func (t *TextArea) Height() int {
	return t.constraint
}

// DisplayHeight returns the currently rendered height, which lags the
// committed height while a transition is in flight.
func (t *TextArea) DisplayHeight() int {
	return t.displayed
}

func (t *TextArea) Width() int {
	return t.width
}

func (t *TextArea) AtMaxHeight() bool {
	return t.atMax
}

func (t *TextArea) Animating() bool {
	return t.animating
}

func (t *TextArea) ScrollEnabled() bool {
	return t.scrollEnabled
}

func (t *TextArea) SetScrollEnabled(v bool) {
	t.scrollEnabled = v
}

func (t *TextArea) ShowsScrollIndicator() bool {
	return t.showIndicator
}

func (t *TextArea) SetShowsScrollIndicator(v bool) {
	t.showIndicator = v
}

// ScrollOffset returns the clipped content's top row.
func (t *TextArea) ScrollOffset() int {
	return t.clip.YOffset
}

func (t *TextArea) SetPlaceholder(s string) {
	t.input.Placeholder = s
}

// SetPrompt changes the per-line prompt and relays the width, since the
// prompt eats into the text column.
func (t *TextArea) SetPrompt(s string) tea.Cmd {
	t.input.Prompt = s
	if !t.laidOut {
		return nil
	}
	w := t.width
	t.width = 0
	return t.SetWidth(w)
}

// Input exposes the underlying editor for key rebinding.
func (t *TextArea) Input() *textarea.Model {
	return &t.input
}

// InspectNode reports the component's state for the inspection tree.
func (t *TextArea) InspectNode() *inspect.Node {
	styleName := "composer.blurred"
	if t.focused {
		styleName = "composer.focused"
	}
	return inspect.NewNode("TextArea").
		WithBounds(0, 0, t.width, t.displayed).
		WithStyles(inspect.ExtractStyleInfo(t.frame(), styleName)).
		WithState("committed_height", t.constraint).
		WithState("ideal_height", t.IdealHeight()).
		WithState("at_max", t.atMax).
		WithState("animating", t.animating).
		WithState("scroll_enabled", t.scrollEnabled).
		WithState("scroll_indicator", t.showIndicator).
		WithState("focused", t.focused).
		WithState("length", t.input.Length()).
		WithContent(t.input.Value())
}
