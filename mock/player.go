// Package mock provides test doubles for morebutton interfaces using function fields.
package mock

import "github.com/fwojciec/morebutton"

// Interface compliance checks.
var (
	_ morebutton.Player        = (*Player)(nil)
	_ morebutton.Player        = (*SnapshotPlayer)(nil)
	_ morebutton.Snapshotter   = (*SnapshotPlayer)(nil)
	_ morebutton.AlphaAnimator = (*Animator)(nil)
)

// Player is a test double for morebutton.Player.
// Set TrackToFn before calling TrackTo.
type Player struct {
	TrackToFn func(item morebutton.AnimationItem)
}

// TrackTo delegates to TrackToFn.
func (p *Player) TrackTo(item morebutton.AnimationItem) {
	p.TrackToFn(item)
}

// SnapshotPlayer is a test double for a Player that also implements
// morebutton.Snapshotter.
type SnapshotPlayer struct {
	Player
	SnapshotFn func() (string, bool)
}

// Snapshot delegates to SnapshotFn.
func (p *SnapshotPlayer) Snapshot() (string, bool) {
	return p.SnapshotFn()
}

// Animator is a test double for morebutton.AlphaAnimator.
// Set AnimateAlphaFn before calling AnimateAlpha.
type Animator struct {
	AnimateAlphaFn func(target morebutton.Fadable, from, to float64, t morebutton.Transition, done func(finished bool))
}

// AnimateAlpha delegates to AnimateAlphaFn.
func (a *Animator) AnimateAlpha(target morebutton.Fadable, from, to float64, t morebutton.Transition, done func(finished bool)) {
	a.AnimateAlphaFn(target, from, to, t, done)
}
