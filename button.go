package morebutton

import (
	"fmt"
	"slices"
)

// Option configures a Button at construction.
type Option func(*config)

type config struct {
	size      Size
	encircled bool
	animator  AlphaAnimator
}

// WithSize sets the icon render box. Defaults to DefaultIconSize.
func WithSize(s Size) Option {
	return func(c *config) {
		c.size = s
	}
}

// WithEncircled selects the encircled asset family (true, the default) or
// the bare-dots family.
func WithEncircled(encircled bool) Option {
	return func(c *config) {
		c.encircled = encircled
	}
}

// WithAnimator sets the engine used for color crossfades. Without one, color
// changes are applied directly.
func WithAnimator(a AlphaAnimator) Option {
	return func(c *config) {
		c.animator = a
	}
}

// Button is the toolbar control: an IconNode plus gesture dispatch, color
// resolution and layout.
type Button struct {
	player   Player
	animator AlphaAnimator
	icon     *IconNode
	source   *ContextSource
	gestures *GestureDispatcher
	action   ActionFunc

	theme    Theme
	override Color
	color    Color
	overlays []*Overlay
	frame    Frame
}

// New creates a Button that renders through player.
func New(theme Theme, player Player, opts ...Option) (*Button, error) {
	if player == nil {
		return nil, fmt.Errorf("player is required: %w", ErrValidation)
	}
	cfg := config{size: DefaultIconSize, encircled: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.size.Width <= 0 || cfg.size.Height <= 0 {
		return nil, fmt.Errorf("icon size must be positive, got %dx%d: %w", cfg.size.Width, cfg.size.Height, ErrValidation)
	}

	b := &Button{
		player:   player,
		animator: cfg.animator,
		source:   &ContextSource{},
		theme:    theme,
	}
	b.icon = NewIconNode(player, cfg.size, cfg.encircled)
	b.gestures = newGestureDispatcher(b)
	b.update()
	return b, nil
}

// Icon returns the icon state machine, the surface owners use to switch
// between More and Search.
func (b *Button) Icon() *IconNode { return b.icon }

// Gestures returns the dispatcher input layers send taps and contextual
// gestures to.
func (b *Button) Gestures() *GestureDispatcher { return b.gestures }

// Source returns the anchor passed to actions.
func (b *Button) Source() *ContextSource { return b.source }

// SetAction sets the activation callback. A nil action disables it.
func (b *Button) SetAction(action ActionFunc) { b.action = action }

// Theme returns the current theme.
func (b *Button) Theme() Theme { return b.theme }

// SetTheme replaces the theme and re-resolves the color.
func (b *Button) SetTheme(theme Theme) {
	b.theme = theme
	b.update()
}

// Color returns the resolved icon color: the override if set, else the
// theme's button color.
func (b *Button) Color() Color { return b.color }

// Overlays returns the crossfade overlays currently alive, oldest first.
func (b *Button) Overlays() []*Overlay { return slices.Clone(b.overlays) }

// UpdateColor sets the override color; the empty Color clears it. An
// animated transition crossfades from a snapshot of the current glyph when
// the player can provide one and an animator is configured.
func (b *Button) UpdateColor(color Color, t Transition) {
	b.override = color
	if t.IsAnimated() {
		b.crossfade(t)
	}
	b.update()
}

// Layout computes the button size for constrained and records the icon frame
// on the context source.
func (b *Button) Layout(constrained Size) Frame {
	b.frame = layout(b.icon.Size(), constrained)
	b.source.frame = b.frame.Icon
	return b.frame
}

// Frame returns the result of the most recent Layout call.
func (b *Button) Frame() Frame { return b.frame }

func (b *Button) crossfade(t Transition) {
	if b.animator == nil {
		return
	}
	snapshotter, ok := b.player.(Snapshotter)
	if !ok {
		return
	}
	glyph, ok := snapshotter.Snapshot()
	if !ok {
		return
	}
	o := &Overlay{Glyph: glyph, Color: b.color, Frame: b.frame.Icon, alpha: 1}
	b.overlays = append(b.overlays, o)
	b.animator.AnimateAlpha(o, 1, 0, t, func(bool) {
		b.removeOverlay(o)
	})
	b.animator.AnimateAlpha(b.icon, 0, 1, t, nil)
}

func (b *Button) removeOverlay(o *Overlay) {
	b.overlays = slices.DeleteFunc(b.overlays, func(x *Overlay) bool {
		return x == o
	})
}

func (b *Button) update() {
	if b.override != "" {
		b.color = b.override
		return
	}
	b.color = b.theme.ButtonColor
}
