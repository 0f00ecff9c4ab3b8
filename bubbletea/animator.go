package bubbletea

import (
	"slices"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/fwojciec/morebutton"
)

var _ morebutton.AlphaAnimator = (*Animator)(nil)

type fade struct {
	target  morebutton.Fadable
	from    float64
	to      float64
	trans   morebutton.Transition
	started time.Time
	done    func(finished bool)
}

// Animator drives opacity fades from frame ticks. Each target has at most
// one fade; starting another interrupts the first.
type Animator struct {
	now   Clock
	fades []*fade
}

// NewAnimator returns an Animator. A nil clock uses time.Now.
func NewAnimator(now Clock) *Animator {
	if now == nil {
		now = time.Now
	}
	return &Animator{now: now}
}

// AnimateAlpha implements morebutton.AlphaAnimator.
func (a *Animator) AnimateAlpha(target morebutton.Fadable, from, to float64, t morebutton.Transition, done func(finished bool)) {
	if i := slices.IndexFunc(a.fades, func(f *fade) bool { return f.target == target }); i >= 0 {
		old := a.fades[i]
		a.fades = slices.Delete(a.fades, i, i+1)
		if old.done != nil {
			old.done(false)
		}
	}

	if !t.IsAnimated() {
		target.SetAlpha(to)
		if done != nil {
			done(true)
		}
		return
	}
	target.SetAlpha(from)
	a.fades = append(a.fades, &fade{
		target:  target,
		from:    from,
		to:      to,
		trans:   t,
		started: a.now(),
		done:    done,
	})
}

// Advance applies every fade's value at now and completes the finished ones.
func (a *Animator) Advance(now time.Time) {
	var finished []*fade
	running := a.fades[:0]
	for _, f := range a.fades {
		elapsed := max(now.Sub(f.started), 0)
		if elapsed >= f.trans.Duration {
			f.target.SetAlpha(f.to)
			finished = append(finished, f)
			continue
		}
		progress := ease(f.trans.Curve, float64(elapsed)/float64(f.trans.Duration))
		f.target.SetAlpha(f.from + (f.to-f.from)*progress)
		running = append(running, f)
	}
	clear(a.fades[len(running):])
	a.fades = running

	// Completions run last: they may start new fades.
	for _, f := range finished {
		if f.done != nil {
			f.done(true)
		}
	}
}

// Animating reports whether any fade is in flight.
func (a *Animator) Animating() bool { return len(a.fades) > 0 }

func ease(c morebutton.Curve, t float64) float64 {
	t = min(max(t, 0), 1)
	switch c {
	case morebutton.CurveEaseInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	case morebutton.CurveSpring:
		return springAt(t)
	default:
		return t
	}
}

const springSteps = 60

// springCurve samples an underdamped spring settling from 0 to 1.
var springCurve = func() []float64 {
	s := harmonica.NewSpring(harmonica.FPS(springSteps), 8.0, 0.45)
	out := make([]float64, springSteps+1)
	var pos, vel float64
	for i := 1; i <= springSteps; i++ {
		pos, vel = s.Update(pos, vel, 1.0)
		out[i] = pos
	}
	out[springSteps] = 1
	return out
}()

func springAt(t float64) float64 {
	x := t * springSteps
	i := int(x)
	if i >= springSteps {
		return 1
	}
	frac := x - float64(i)
	return springCurve[i] + (springCurve[i+1]-springCurve[i])*frac
}
