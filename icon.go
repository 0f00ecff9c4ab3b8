// Package morebutton implements a toolbar button that shows either a "more"
// glyph or a "search" glyph and animates between them.
package morebutton

// transitionKey identifies a row of the state transition table.
type transitionKey struct {
	from     IconState
	to       IconState
	animated bool
}

// transitions maps a state change to the frame range and duration played on
// the more/search timeline. Same-state changes never reach the table.
var transitions = map[transitionKey]AnimationItem{
	{StateMore, StateSearch, true}:  {StartFrame: 0, EndFrame: MorphFrames, Duration: MorphDuration},
	{StateSearch, StateMore, true}:  {StartFrame: MorphFrames, EndFrame: 0, Duration: MorphDuration},
	{StateMore, StateSearch, false}: {StartFrame: MorphFrames, EndFrame: MorphFrames},
	{StateSearch, StateMore, false}: {StartFrame: 0, EndFrame: 0},
}

// IconNode is the icon state machine. It owns the current IconState and
// turns every state change into a track for its Player.
type IconNode struct {
	player    Player
	encircled bool
	size      Size
	state     IconState
	alpha     float64
}

// NewIconNode creates an IconNode and issues the resting track for its
// initial state: Search at frame 90 when encircled, More at frame 0 otherwise.
func NewIconNode(player Player, size Size, encircled bool) *IconNode {
	n := &IconNode{
		player:    player,
		encircled: encircled,
		size:      size,
		alpha:     1,
	}
	if encircled {
		n.state = StateSearch
		n.player.TrackTo(AnimationItem{Asset: AssetMoreToSearch, StartFrame: MorphFrames, EndFrame: MorphFrames})
	} else {
		n.state = StateMore
		n.player.TrackTo(AnimationItem{Asset: AssetBareDotsSpin, StartFrame: 0, EndFrame: 0})
	}
	return n
}

// State returns the current icon state.
func (n *IconNode) State() IconState { return n.state }

// Encircled reports whether the node uses the encircled asset family.
func (n *IconNode) Encircled() bool { return n.encircled }

// Size returns the icon render box.
func (n *IconNode) Size() Size { return n.size }

// Alpha returns the icon opacity in [0, 1].
func (n *IconNode) Alpha() float64 { return n.alpha }

// SetAlpha implements Fadable.
func (n *IconNode) SetAlpha(alpha float64) { n.alpha = clampUnit(alpha) }

// EnqueueState switches the icon to state. Requests for the current state
// and for states that are not Valid are ignored. The new state is visible to callers immediately; the track
// that renders it is fire-and-forget and replaces any track in flight.
func (n *IconNode) EnqueueState(state IconState, animated bool) {
	if n.state == state || !state.Valid() {
		return
	}
	item, ok := transitions[transitionKey{from: n.state, to: state, animated: animated}]
	if !ok {
		return
	}
	n.state = state
	item.Asset = n.morphAsset()
	n.player.TrackTo(item)
}

// Play runs the feedback spin. It does nothing unless the icon shows More.
func (n *IconNode) Play() {
	if n.state != StateMore {
		return
	}
	asset := AssetBareDotsSpin
	if n.encircled {
		asset = AssetCircledDotsSpin
	}
	n.player.TrackTo(AnimationItem{Asset: asset, StartFrame: 0, EndFrame: SpinFrames, Duration: SpinDuration})
}

func (n *IconNode) morphAsset() string {
	if n.encircled {
		return AssetMoreToSearch
	}
	return AssetBareMoreToSearch
}
