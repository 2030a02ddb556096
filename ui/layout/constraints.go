package layout

// Constraints holds the computed layout constraints for the demo application.
// The composer's height is dynamic; everything else is derived from it at
// render time, so the constraints carry the composer's ceiling rather than a
// fixed height.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode Mode

	// Composer dimensions
	ComposerWidth int
	// ComposerMaxRows is the largest number of content rows the composer may
	// grow to before the history pane would be squeezed out. Callers combine
	// it with any user-configured maximum bound.
	ComposerMaxRows int

	// Fixed chrome
	MenuHeight  int
	ErrBoxWidth int

	// HistoryWidth matches the composer so the panes line up.
	HistoryWidth int

	// ShowMinWarning is set when the terminal is below minimum size.
	ShowMinWarning bool
}

// ComputeConstraints calculates layout constraints for the given terminal dimensions.
func ComputeConstraints(width, height int) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
	}

	c.Mode = DetermineMode(width, height)

	if width < MinWidth || height < MinHeight {
		c.ShowMinWarning = true
		// Still compute a basic layout for partial display.
	}

	c.MenuHeight = computeMenuHeight(c.Mode)
	c.ErrBoxWidth = width

	c.ComposerWidth = clamp(width, ComposerMinWidth, ComposerMaxWidth)
	c.HistoryWidth = c.ComposerWidth

	// The composer may grow until it claims its share of the content area;
	// the history pane keeps the rest.
	contentHeight := height - c.MenuHeight - ErrBoxHeight
	c.ComposerMaxRows = max(1, contentHeight/ComposerShareCap)

	return c
}

// computeMenuHeight calculates the menu height based on mode.
func computeMenuHeight(mode Mode) int {
	switch mode {
	case ModeFull, ModeStandard:
		return MenuStandardHeight
	default:
		return MenuMinHeight
	}
}

// HistoryHeight returns the rows left for the history pane once the composer
// occupies composerHeight rows. Never negative.
func (c Constraints) HistoryHeight(composerHeight int) int {
	h := c.TerminalHeight - c.MenuHeight - ErrBoxHeight - composerHeight
	return max(0, h)
}

// Helper functions

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
