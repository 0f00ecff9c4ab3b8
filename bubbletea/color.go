package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/morebutton"
	"github.com/lucasb-eyer/go-colorful"
)

// terminalColor converts a theme color to a lipgloss color. The empty color
// means "terminal default".
func terminalColor(c morebutton.Color) lipgloss.TerminalColor {
	if c == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c)
}

// fadeColor renders c at the given opacity over bg. Terminals have no alpha
// channel, so the color is mixed toward the background in Lab space. ANSI
// index colors cannot be mixed and are returned as is unless fully
// transparent.
func fadeColor(c, bg morebutton.Color, alpha float64) lipgloss.TerminalColor {
	if alpha <= 0 {
		return terminalColor(bg)
	}
	fg, err := colorful.Hex(string(c))
	if err != nil {
		return terminalColor(c)
	}
	back, err := colorful.Hex(string(bg))
	if err != nil || alpha >= 1 {
		return terminalColor(c)
	}
	return lipgloss.Color(back.BlendLab(fg, alpha).Clamped().Hex())
}
