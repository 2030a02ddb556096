package overlay

import (
	"fmt"
	"strings"

	"flexarea/ui/layout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BoundsOption is a selectable min/max height preset for the composer.
type BoundsOption struct {
	Name        string
	Description string
	Min         layout.Bound
	Max         layout.Bound
}

// BoundsSelectorOverlay is a dialog for picking the composer's height bounds.
type BoundsSelectorOverlay struct {
	Dismissed bool
	Selected  *BoundsOption
	options   []BoundsOption
	cursor    int
	width     int
}

// NewBoundsSelectorOverlay creates a bounds selector with the given preset
// highlighted.
func NewBoundsSelectorOverlay(current string) *BoundsSelectorOverlay {
	options := []BoundsOption{
		{
			Name:        "Unbounded",
			Description: "Grow with the content, no limits.",
			Min:         layout.None(),
			Max:         layout.None(),
		},
		{
			Name:        "Compact (1-4 rows)",
			Description: "Tight fit for short messages.",
			Min:         layout.Rows(1),
			Max:         layout.Rows(4),
		},
		{
			Name:        "Standard (2-8 rows)",
			Description: "Roomy default for everyday writing.",
			Min:         layout.Rows(2),
			Max:         layout.Rows(8),
		},
		{
			Name:        "Tall (3-12 rows)",
			Description: "Long-form drafts, scrolls past twelve rows.",
			Min:         layout.Rows(3),
			Max:         layout.Rows(12),
		},
		{
			Name:        "Eight cells",
			Description: "Fixed ceiling in total rows, frame included.",
			Min:         layout.None(),
			Max:         layout.Cells(8),
		},
	}

	cursor := 0
	for i, opt := range options {
		if opt.Name == current {
			cursor = i
			break
		}
	}

	return &BoundsSelectorOverlay{
		options: options,
		cursor:  cursor,
		width:   60,
	}
}

// HandleKeyPress processes a key press. It returns true when the overlay is
// done and should be closed.
func (b *BoundsSelectorOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		b.moveCursor(-1)
		return false
	case "down", "j":
		b.moveCursor(1)
		return false
	case "enter":
		opt := b.options[b.cursor]
		b.Selected = &opt
		b.Dismissed = true
		return true
	case "esc":
		b.Dismissed = true
		return true
	default:
		return false
	}
}

func (b *BoundsSelectorOverlay) moveCursor(delta int) {
	b.cursor += delta
	if b.cursor < 0 {
		b.cursor = len(b.options) - 1
	} else if b.cursor >= len(b.options) {
		b.cursor = 0
	}
}

// Render renders the bounds selector overlay
func (b *BoundsSelectorOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF"))

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7aa2f7")).
		Bold(true)

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		PaddingLeft(4)

	var content strings.Builder
	content.WriteString(titleStyle.Render("Select Height Bounds"))
	content.WriteString("\n\n")

	for i, opt := range b.options {
		prefix := "  "
		nameStyle := normalStyle
		if i == b.cursor {
			prefix = "> "
			nameStyle = selectedStyle
		}

		content.WriteString(prefix)
		content.WriteString(nameStyle.Render(opt.Name))
		content.WriteString("\n")
		content.WriteString(descStyle.Render(opt.Description))
		content.WriteString("\n")
		content.WriteString(descStyle.Render(describeBounds(opt)))
		content.WriteString("\n\n")
	}

	content.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render(
		"[Enter] Select  [Esc] Cancel  [↑/↓] Navigate"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7aa2f7")).
		Padding(1, 2).
		Width(b.width)

	return borderStyle.Render(content.String())
}

func describeBounds(opt BoundsOption) string {
	return fmt.Sprintf("min: %s  max: %s", describeBound(opt.Min), describeBound(opt.Max))
}

func describeBound(b layout.Bound) string {
	switch b.Kind {
	case layout.BoundRows:
		return fmt.Sprintf("%d rows", b.Value)
	case layout.BoundCells:
		return fmt.Sprintf("%d cells", b.Value)
	default:
		return "none"
	}
}

// SetWidth sets the width of the overlay
func (b *BoundsSelectorOverlay) SetWidth(width int) {
	b.width = width
}

// GetSelected returns the chosen preset, or nil when canceled.
func (b *BoundsSelectorOverlay) GetSelected() *BoundsOption {
	return b.Selected
}
