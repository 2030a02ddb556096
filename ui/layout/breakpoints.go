package layout

// Width breakpoints
const (
	// MinWidth is the absolute minimum terminal width.
	MinWidth = 40

	// StandardWidth is the threshold for standard layout.
	StandardWidth = 80

	// FullWidth is the threshold for full layout with all features.
	FullWidth = 120
)

// Height breakpoints
const (
	// MinHeight is the absolute minimum terminal height.
	MinHeight = 12

	// StandardHeight is the threshold for standard layout.
	StandardHeight = 24

	// FullHeight is the threshold for full layout.
	FullHeight = 40
)

// Composer constraints
const (
	// ComposerMinWidth is the minimum width the composer renders at.
	ComposerMinWidth = 20

	// ComposerMaxWidth caps the composer so lines stay readable on wide terminals.
	ComposerMaxWidth = 120

	// ComposerShareCap is the largest share of the terminal height the composer
	// may claim when no explicit maximum bound is configured.
	ComposerShareCap = 2
)

// Menu constraints
const (
	// MenuMinHeight is the minimum menu height (1 line).
	MenuMinHeight = 1

	// MenuStandardHeight is the standard menu height (hints + spacing).
	MenuStandardHeight = 2
)

// ErrBoxHeight is the fixed error box height.
const ErrBoxHeight = 1
