package layout

// Degradation holds flags indicating which UI features should be hidden or
// simplified. Features are listed in order of degradation priority (first to
// hide).
type Degradation struct {
	// HideTimestamps hides relative times on history entries (width < 60).
	HideTimestamps bool

	// SingleLineMenu compacts the menu to one line (height < 20).
	SingleLineMenu bool

	// HideScrollIndicator suppresses the composer's scrollbar column even at
	// the maximum bound (width < 50).
	HideScrollIndicator bool

	// ShowMinWarning replaces the UI with a terminal-too-small warning.
	ShowMinWarning bool
}

// Threshold constants for degradation
const (
	TimestampHideWidth       = 60
	SingleLineMenuHeight     = 20
	ScrollIndicatorHideWidth = 50
)

// ComputeDegradation calculates which UI features should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HideTimestamps:      c.TerminalWidth < TimestampHideWidth,
		SingleLineMenu:      c.TerminalHeight < SingleLineMenuHeight,
		HideScrollIndicator: c.TerminalWidth < ScrollIndicatorHideWidth,
		ShowMinWarning:      c.ShowMinWarning,
	}
}
