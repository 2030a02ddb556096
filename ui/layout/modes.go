// Package layout provides height bounds, clamping, and responsive layout
// calculations for the TUI.
package layout

// Mode represents the current layout mode based on terminal dimensions.
type Mode int

const (
	// ModeFull is for large terminals (>= 120w x 40h).
	// Shows all components with generous spacing.
	ModeFull Mode = iota

	// ModeStandard is for medium terminals (>= 80w x 24h).
	// Default comfortable layout.
	ModeStandard

	// ModeCompact is for small terminals above the absolute minimum.
	// Single-line menu, reduced chrome.
	ModeCompact

	// ModeMinimal is for terminals below minimum size.
	// Shows a warning instead of the full UI.
	ModeMinimal
)

// String returns the string representation of the layout mode.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeStandard:
		return "standard"
	case ModeCompact:
		return "compact"
	case ModeMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode calculates the appropriate layout mode for the given dimensions.
func DetermineMode(width, height int) Mode {
	if width < MinWidth || height < MinHeight {
		return ModeMinimal
	}

	// Use the more restrictive dimension.
	widthMode := determineWidthMode(width)
	heightMode := determineHeightMode(height)

	if widthMode > heightMode {
		return widthMode
	}
	return heightMode
}

func determineWidthMode(width int) Mode {
	switch {
	case width >= FullWidth:
		return ModeFull
	case width >= StandardWidth:
		return ModeStandard
	default:
		return ModeCompact
	}
}

func determineHeightMode(height int) Mode {
	switch {
	case height >= FullHeight:
		return ModeFull
	case height >= StandardHeight:
		return ModeStandard
	default:
		return ModeCompact
	}
}
