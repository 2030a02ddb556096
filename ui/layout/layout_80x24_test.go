package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMinimumTerminal80x24 verifies all behavior at the classic terminal size.
func TestMinimumTerminal80x24(t *testing.T) {
	width := 80
	height := 24

	t.Run("mode is standard", func(t *testing.T) {
		assert.Equal(t, ModeStandard, DetermineMode(width, height))
	})

	t.Run("constraints are valid", func(t *testing.T) {
		c := ComputeConstraints(width, height)

		assert.Equal(t, ModeStandard, c.Mode)
		assert.False(t, c.ShowMinWarning, "80x24 should not show warning")

		assert.Positive(t, c.ComposerWidth, "ComposerWidth")
		assert.Positive(t, c.ComposerMaxRows, "ComposerMaxRows")
		assert.Positive(t, c.MenuHeight, "MenuHeight")
		assert.Positive(t, c.ErrBoxWidth, "ErrBoxWidth")

		assert.LessOrEqual(t, c.ComposerWidth, width, "composer should fit the terminal")

		// A composer grown to its ceiling plus the chrome still fits.
		used := c.ComposerMaxRows + c.MenuHeight + ErrBoxHeight
		assert.LessOrEqual(t, used, height, "grown composer should not overflow")
	})

	t.Run("no degradation", func(t *testing.T) {
		d := ComputeDegradation(ComputeConstraints(width, height))
		assert.Equal(t, Degradation{}, d)
	})
}
