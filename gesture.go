package morebutton

import "weak"

// ContextGesture describes a secondary activation such as a long press, a
// right click or a menu key.
type ContextGesture struct {
	// Position is where the gesture happened, in host coordinates.
	Position Point
	// Source names the input that produced the gesture, e.g. "mouse" or "key".
	Source string
}

// ContextSource is the anchor handed to actions. Owners use its frame to
// position menus next to the button.
type ContextSource struct {
	frame Rect
}

// Frame returns the icon frame from the most recent layout pass.
func (s *ContextSource) Frame() Rect { return s.frame }

// ActionFunc is invoked when the button is activated. gesture is nil for a
// plain tap.
type ActionFunc func(source *ContextSource, gesture *ContextGesture)

// GestureDispatcher routes taps and contextual gestures to the button's
// action. It refers back to the button weakly so input plumbing that
// outlives the button never keeps it alive.
type GestureDispatcher struct {
	owner weak.Pointer[Button]
}

func newGestureDispatcher(b *Button) *GestureDispatcher {
	return &GestureDispatcher{owner: weak.Make(b)}
}

// Tap invokes the action without gesture context, then plays the feedback
// spin if the icon shows More.
func (d *GestureDispatcher) Tap() {
	b := d.owner.Value()
	if b == nil {
		return
	}
	if b.action != nil {
		b.action(b.source, nil)
	}
	if b.icon.State() == StateMore {
		b.icon.Play()
	}
}

// Activate invokes the action with gesture context. In Search the button
// has no secondary menu and the gesture is swallowed.
func (d *GestureDispatcher) Activate(gesture ContextGesture) {
	b := d.owner.Value()
	if b == nil {
		return
	}
	if b.icon.State() != StateMore {
		return
	}
	if b.action != nil {
		b.action(b.source, &gesture)
	}
}
