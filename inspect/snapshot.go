package inspect

import (
	"fmt"
	"strings"
	"time"

	"flexarea/ui/layout"
)

// Snapshot represents a complete UI state at a point in time.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Terminal contains terminal dimensions.
	Terminal TerminalInfo `json:"terminal"`

	// AppState contains application state information.
	AppState AppStateInfo `json:"app_state"`

	// Layout contains layout configuration.
	Layout LayoutInfo `json:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components"`

	// Breakpoints contains information about responsive breakpoints.
	Breakpoints []BreakpointInfo `json:"breakpoints"`

	// Styles contains the registered named styles.
	Styles map[string]*StyleInfo `json:"styles,omitempty"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo contains application-level state.
type AppStateInfo struct {
	// State is the current app state (e.g., "composing", "overlay").
	State string `json:"state"`

	// HasOverlay indicates if an overlay is currently displayed.
	HasOverlay bool `json:"has_overlay"`

	// OverlayType is the type of overlay if one is displayed.
	OverlayType string `json:"overlay_type,omitempty"`

	// MessageCount is the number of sent messages in the history.
	MessageCount int `json:"message_count"`

	// DraftLength is the length of the unsent composer draft.
	DraftLength int `json:"draft_length"`

	// ErrorMessage is the current error message if any.
	ErrorMessage string `json:"error_message,omitempty"`
}

// LayoutInfo contains layout configuration.
type LayoutInfo struct {
	// Mode is the current layout mode.
	Mode string `json:"mode"`

	// ComposerWidth is the composer's total width.
	ComposerWidth int `json:"composer_width"`

	// ComposerMaxRows is the ceiling the layout imposes on the composer.
	ComposerMaxRows int `json:"composer_max_rows"`

	// HistoryWidth is the history pane width.
	HistoryWidth int `json:"history_width"`

	// HistoryHeight is the history pane height.
	HistoryHeight int `json:"history_height"`

	// MenuHeight is the menu height.
	MenuHeight int `json:"menu_height"`

	// Degradation contains active degradation flags.
	Degradation DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HideTimestamps      bool `json:"hide_timestamps"`
	SingleLineMenu      bool `json:"single_line_menu"`
	HideScrollIndicator bool `json:"hide_scroll_indicator"`
	ShowMinWarning      bool `json:"show_min_warning"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	// Name is the breakpoint name.
	Name string `json:"name"`

	// Threshold is the dimension threshold.
	Threshold int `json:"threshold"`

	// Active indicates if this breakpoint is currently triggered.
	Active bool `json:"active"`

	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation, composerHeight int) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:            c.Mode.String(),
		ComposerWidth:   c.ComposerWidth,
		ComposerMaxRows: c.ComposerMaxRows,
		HistoryWidth:    c.HistoryWidth,
		HistoryHeight:   c.HistoryHeight(composerHeight),
		MenuHeight:      c.MenuHeight,
		Degradation: DegradationInfo{
			HideTimestamps:      d.HideTimestamps,
			SingleLineMenu:      d.SingleLineMenu,
			HideScrollIndicator: d.HideScrollIndicator,
			ShowMinWarning:      d.ShowMinWarning,
		},
	}

	// Add breakpoint information
	s.Breakpoints = []BreakpointInfo{
		{Name: "hide_timestamps", Threshold: layout.TimestampHideWidth, Active: d.HideTimestamps, Dimension: "width"},
		{Name: "single_line_menu", Threshold: layout.SingleLineMenuHeight, Active: d.SingleLineMenu, Dimension: "height"},
		{Name: "hide_scroll_indicator", Threshold: layout.ScrollIndicatorHideWidth, Active: d.HideScrollIndicator, Dimension: "width"},
		{Name: "min_width", Threshold: layout.MinWidth, Active: c.TerminalWidth < layout.MinWidth, Dimension: "width"},
		{Name: "min_height", Threshold: layout.MinHeight, Active: c.TerminalHeight < layout.MinHeight, Dimension: "height"},
	}

	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// WithStyles attaches all registered named styles.
func (s *Snapshot) WithStyles() *Snapshot {
	s.Styles = GetAllStyles()
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))
	b.WriteString(fmt.Sprintf("State: %s\n", s.AppState.State))

	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Mode: %s\n", s.Layout.Mode))
	b.WriteString(fmt.Sprintf("Composer: %d wide, max %d rows\n", s.Layout.ComposerWidth, s.Layout.ComposerMaxRows))
	b.WriteString(fmt.Sprintf("History: %dx%d\n", s.Layout.HistoryWidth, s.Layout.HistoryHeight))

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d)", node.Bounds.Width, node.Bounds.Height))

	if node.Truncated != nil {
		b.WriteString(fmt.Sprintf(" TRUNCATED(%d->%d)",
			node.Truncated.OriginalLength,
			node.Truncated.DisplayLength))
	}

	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
