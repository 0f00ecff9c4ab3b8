package bubbletea

import "github.com/fwojciec/morebutton"

// Ease exports ease for testing.
func Ease(c morebutton.Curve, t float64) float64 {
	return ease(c, t)
}

// FadeColor exports fadeColor for testing.
var FadeColor = fadeColor

// Ticking returns whether a frame tick is outstanding.
func Ticking(m Model) bool {
	return m.ticking
}
