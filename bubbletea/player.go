package bubbletea

import (
	"fmt"
	"math"
	"time"

	"github.com/fwojciec/morebutton"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

var (
	_ morebutton.Player      = (*TrackPlayer)(nil)
	_ morebutton.Snapshotter = (*TrackPlayer)(nil)
)

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

// glyphWidth measures glyphs independently of the user's locale so ambiguous
// characters count as one cell everywhere.
var glyphWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// TrackPlayer plays catalog assets as terminal glyphs. It holds a single
// track: every TrackTo replaces the one in flight.
type TrackPlayer struct {
	catalog morebutton.Catalog
	now     Clock

	item     morebutton.AnimationItem
	asset    morebutton.Asset
	started  time.Time
	frame    int
	playing  bool
	hasTrack bool
}

// NewTrackPlayer validates catalog and returns a player for it. Every glyph
// must be exactly its asset's width in cells, one cell per grapheme.
func NewTrackPlayer(catalog morebutton.Catalog, now Clock) (*TrackPlayer, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	for name, a := range catalog {
		for _, kf := range a.Keyframes {
			if w := glyphWidth.StringWidth(kf.Glyph); w != a.Width {
				return nil, fmt.Errorf("asset %q frame %d: glyph %q is %d cells wide, want %d: %w",
					name, kf.Frame, kf.Glyph, w, a.Width, morebutton.ErrValidation)
			}
			if n := uniseg.GraphemeClusterCount(kf.Glyph); n != a.Width {
				return nil, fmt.Errorf("asset %q frame %d: glyph %q has %d graphemes, want %d: %w",
					name, kf.Frame, kf.Glyph, n, a.Width, morebutton.ErrValidation)
			}
		}
	}
	if now == nil {
		now = time.Now
	}
	return &TrackPlayer{catalog: catalog, now: now}, nil
}

// TrackTo starts item. A zero duration jumps to the end frame. Invalid items
// and items naming an asset outside the catalog are a programming error and
// panic.
func (p *TrackPlayer) TrackTo(item morebutton.AnimationItem) {
	if err := item.Validate(); err != nil {
		panic(fmt.Sprintf("bubbletea: %v", err))
	}
	asset, ok := p.catalog[item.Asset]
	if !ok {
		panic(fmt.Sprintf("bubbletea: unknown asset %q", item.Asset))
	}
	p.item = item
	p.asset = asset
	p.started = p.now()
	p.hasTrack = true
	if item.Duration <= 0 {
		p.frame = asset.Clamp(item.EndFrame)
		p.playing = false
		return
	}
	p.frame = asset.Clamp(item.StartFrame)
	p.playing = true
}

// Advance moves the current track to the frame due at now.
func (p *TrackPlayer) Advance(now time.Time) {
	if !p.playing {
		return
	}
	elapsed := now.Sub(p.started)
	if elapsed >= p.item.Duration {
		p.frame = p.asset.Clamp(p.item.EndFrame)
		p.playing = false
		return
	}
	elapsed = max(elapsed, 0)
	progress := float64(elapsed) / float64(p.item.Duration)
	span := float64(p.item.EndFrame - p.item.StartFrame)
	p.frame = p.asset.Clamp(p.item.StartFrame + int(math.Round(span*progress)))
}

// Animating reports whether a track is still in flight.
func (p *TrackPlayer) Animating() bool { return p.playing }

// Item returns the most recent track.
func (p *TrackPlayer) Item() morebutton.AnimationItem { return p.item }

// Frame returns the frame currently shown.
func (p *TrackPlayer) Frame() int { return p.frame }

// Glyph returns the glyph currently shown, or "" before the first track.
func (p *TrackPlayer) Glyph() string {
	if !p.hasTrack {
		return ""
	}
	return p.asset.Glyph(p.frame)
}

// Snapshot implements morebutton.Snapshotter.
func (p *TrackPlayer) Snapshot() (string, bool) {
	if !p.hasTrack {
		return "", false
	}
	return p.Glyph(), true
}
