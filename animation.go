package morebutton

import "time"

// Asset identifiers understood by every Player.
const (
	// AssetMoreToSearch morphs encircled dots (frame 0) into a search glyph (frame 90).
	AssetMoreToSearch = "more-to-search"
	// AssetBareMoreToSearch is the bare-dots counterpart of AssetMoreToSearch.
	AssetBareMoreToSearch = "bare-more-to-search"
	// AssetCircledDotsSpin spins the encircled dots.
	AssetCircledDotsSpin = "circled-dots-spin"
	// AssetBareDotsSpin spins the bare dots. Frame 0 is the bare resting glyph.
	AssetBareDotsSpin = "bare-dots-spin"
)

// Timeline constants shared by the state machine and asset catalogs.
const (
	// MorphFrames is the length of the more/search timeline.
	MorphFrames = 90
	// SpinFrames is the length of the feedback spin.
	SpinFrames = 46

	MorphDuration = 210 * time.Millisecond
	SpinDuration  = 760 * time.Millisecond
)

// AnimationItem is a single playback request: play Asset from StartFrame to
// EndFrame over Duration. A zero Duration jumps straight to EndFrame.
type AnimationItem struct {
	Asset      string
	StartFrame int
	EndFrame   int
	Duration   time.Duration
}

// Player plays animation items. Each call supersedes whatever the player was
// playing; there is no queue.
type Player interface {
	TrackTo(item AnimationItem)
}

// Snapshotter is implemented by players that can report the glyph they are
// currently showing. The button uses it to build crossfade overlays.
type Snapshotter interface {
	Snapshot() (glyph string, ok bool)
}
