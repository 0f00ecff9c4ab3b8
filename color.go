package morebutton

import "time"

// Color is a terminal color: a hex string such as "#7aa2f7" or an ANSI
// index such as "12". The empty Color means "not set".
type Color string

// Curve is an easing curve for animated transitions.
type Curve string

const (
	CurveLinear    Curve = "linear"
	CurveEaseInOut Curve = "ease-in-out"
	CurveSpring    Curve = "spring"
)

// Transition describes how a visual change is applied.
type Transition struct {
	Duration time.Duration
	Curve    Curve
}

// Immediate applies a change without animation.
var Immediate = Transition{}

// Animated returns a transition that animates over d using curve.
func Animated(d time.Duration, curve Curve) Transition {
	return Transition{Duration: d, Curve: curve}
}

// IsAnimated reports whether the transition has a positive duration.
func (t Transition) IsAnimated() bool { return t.Duration > 0 }

// Fadable is anything whose opacity can be animated.
type Fadable interface {
	SetAlpha(alpha float64)
}

// AlphaAnimator animates the opacity of a target from one value to another.
// Starting a new animation on a target that is already animating interrupts
// the old one. A non-nil done is called exactly once per animation with
// finished set to false when it was interrupted.
type AlphaAnimator interface {
	AnimateAlpha(target Fadable, from, to float64, t Transition, done func(finished bool))
}

// Overlay is a snapshot of the icon's previous appearance, drawn above the
// icon while a color crossfade runs.
type Overlay struct {
	Glyph string
	Color Color
	Frame Rect

	alpha float64
}

// Alpha returns the overlay opacity in [0, 1].
func (o *Overlay) Alpha() float64 { return o.alpha }

// SetAlpha implements Fadable.
func (o *Overlay) SetAlpha(alpha float64) { o.alpha = clampUnit(alpha) }

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}
