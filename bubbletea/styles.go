package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/morebutton"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Bar    lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t morebutton.Theme) Styles {
	return Styles{
		Bar:    lipgloss.NewStyle().Background(terminalColor(t.Background)),
		Muted:  lipgloss.NewStyle().Foreground(terminalColor(t.Muted)).Faint(true),
		Accent: lipgloss.NewStyle().Foreground(terminalColor(t.Accent)).Bold(true),
	}
}
