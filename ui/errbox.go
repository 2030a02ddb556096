package ui

import (
	"flexarea/inspect"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var errStyle = lipgloss.NewStyle().Foreground(TextError)

// ErrBox is a single-line notice area at the bottom of the screen.
type ErrBox struct {
	height, width int
	err           error
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
}

func (e *ErrBox) Clear() {
	e.err = nil
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) String() string {
	msg, _ := e.message()
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Center, errStyle.Render(msg))
}

// InspectNode reports the notice area, recording truncation when the message
// was cut to fit.
func (e *ErrBox) InspectNode() *inspect.Node {
	node := inspect.NewNode("ErrBox").WithBounds(0, 0, e.width, e.height)
	if e.err == nil {
		return node
	}
	msg, truncated := e.message()
	node = node.WithContent(msg)
	if truncated {
		node = node.WithTruncation(runewidth.StringWidth(e.err.Error()), runewidth.StringWidth(msg), true)
	}
	return node
}

func (e *ErrBox) message() (string, bool) {
	if e.err == nil {
		return "", false
	}
	msg := e.err.Error()
	if runewidth.StringWidth(msg) > e.width && e.width > 3 {
		return runewidth.Truncate(msg, e.width-3, "..."), true
	}
	return msg, false
}
