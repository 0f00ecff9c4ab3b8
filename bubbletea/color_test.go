package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/morebutton"
	bt "github.com/fwojciec/morebutton/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestFadeColor(t *testing.T) {
	t.Parallel()

	t.Run("opaque keeps the color", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, lipgloss.Color("#ff0000"), bt.FadeColor("#ff0000", "#000000", 1))
	})

	t.Run("transparent shows the background", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, lipgloss.Color("#000000"), bt.FadeColor("#ff0000", "#000000", 0))
	})

	t.Run("partial alpha mixes toward the background", func(t *testing.T) {
		t.Parallel()
		got := bt.FadeColor("#ffffff", "#000000", 0.5)
		c, ok := got.(lipgloss.Color)
		assert.True(t, ok)
		assert.NotEqual(t, lipgloss.Color("#ffffff"), c)
		assert.NotEqual(t, lipgloss.Color("#000000"), c)
	})

	t.Run("ansi colors pass through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, lipgloss.Color("12"), bt.FadeColor("12", "#000000", 0.5))
		assert.Equal(t, lipgloss.Color("#ff0000"), bt.FadeColor("#ff0000", "0", 0.5))
	})

	t.Run("empty color is no color", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, lipgloss.NoColor{}, bt.FadeColor("#ff0000", "", 0))
		assert.Equal(t, lipgloss.NoColor{}, bt.FadeColor(morebutton.Color(""), "#000000", 0.5))
	})
}
