package ui

import (
	"fmt"
	"strings"
	"time"

	"flexarea/inspect"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var historyMetaStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

var historyTextStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})

var deliveredStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#51bd73", Dark: "#51bd73"})

var emptyHistoryStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}).
	Italic(true)

const deliveredIcon = "✓ "

// Message is one sent entry in the history pane.
type Message struct {
	Text    string    `json:"text"`
	SentAt  time.Time `json:"sent_at"`
	Pending bool      `json:"-"`
}

// History shows previously sent messages above the composer, newest at the
// bottom.
type History struct {
	items         []Message
	vp            viewport.Model
	spinner       *spinner.Model
	height, width int

	// showTimestamps is cleared on narrow terminals.
	showTimestamps bool
}

func NewHistory(spinner *spinner.Model) *History {
	h := &History{
		spinner:        spinner,
		vp:             viewport.New(0, 0),
		showTimestamps: true,
	}
	h.vp.MouseWheelEnabled = false
	return h
}

// SetSize sets the height and width of the history pane.
func (h *History) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.vp.Width = width
	h.vp.Height = height
	h.refresh()
}

func (h *History) SetShowTimestamps(show bool) {
	if show == h.showTimestamps {
		return
	}
	h.showTimestamps = show
	h.refresh()
}

// Append adds a message and scrolls to it.
func (h *History) Append(m Message) {
	h.items = append(h.items, m)
	h.refresh()
	h.vp.GotoBottom()
}

// SetDelivered clears the pending flag on the most recent pending message.
func (h *History) SetDelivered() {
	for i := len(h.items) - 1; i >= 0; i-- {
		if h.items[i].Pending {
			h.items[i].Pending = false
			h.refresh()
			return
		}
	}
}

// SetItems replaces the history wholesale, used when restoring saved state.
func (h *History) SetItems(items []Message) {
	h.items = items
	h.refresh()
	h.vp.GotoBottom()
}

func (h *History) Items() []Message {
	return h.items
}

func (h *History) NumMessages() int {
	return len(h.items)
}

func (h *History) ScrollUp() {
	h.vp.HalfViewUp()
}

func (h *History) ScrollDown() {
	h.vp.HalfViewDown()
}

// refresh re-renders the viewport content. Called on any change to items,
// size, or timestamp visibility.
func (h *History) refresh() {
	if h.width <= 0 {
		return
	}
	var b strings.Builder
	for i, m := range h.items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(h.renderMessage(m))
	}
	h.vp.SetContent(b.String())
}

func (h *History) renderMessage(m Message) string {
	var meta strings.Builder
	if m.Pending {
		meta.WriteString(h.spinner.View())
		meta.WriteString(" sending")
	} else {
		meta.WriteString(deliveredStyle.Render(deliveredIcon))
		meta.WriteString("sent")
		if h.showTimestamps {
			meta.WriteString(" ")
			meta.WriteString(FormatRelativeTime(m.SentAt))
		}
	}

	text := wordwrap.String(m.Text, h.width)
	return historyMetaStyle.Render(meta.String()) + "\n" + historyTextStyle.Render(text)
}

// InspectNode reports the history pane with one child per message.
func (h *History) InspectNode() *inspect.Node {
	children := make([]*inspect.Node, 0, len(h.items))
	for i, m := range h.items {
		status := "sent"
		if m.Pending {
			status = "sending"
		}
		children = append(children, inspect.NewNode("Message").
			WithID(fmt.Sprintf("message-%d", i)).
			WithState("status", status).
			WithContent(m.Text))
	}
	return inspect.NewNode("History").
		WithBounds(0, 0, h.width, h.height).
		WithState("count", len(h.items)).
		WithState("timestamps", h.showTimestamps).
		WithChildren(children)
}

func (h *History) String() string {
	if len(h.items) == 0 {
		empty := emptyHistoryStyle.Render("no messages yet")
		return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, empty)
	}
	return h.vp.View()
}
