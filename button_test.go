package morebutton_test

import (
	"testing"
	"time"

	"github.com/fwojciec/morebutton"
	"github.com/fwojciec/morebutton/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alphaCall struct {
	target morebutton.Fadable
	from   float64
	to     float64
	tr     morebutton.Transition
	done   func(bool)
}

// recordingAnimator returns an animator that records calls without running them.
func recordingAnimator() (*mock.Animator, *[]alphaCall) {
	var calls []alphaCall
	a := &mock.Animator{
		AnimateAlphaFn: func(target morebutton.Fadable, from, to float64, tr morebutton.Transition, done func(bool)) {
			target.SetAlpha(from)
			calls = append(calls, alphaCall{target: target, from: from, to: to, tr: tr, done: done})
		},
	}
	return a, &calls
}

func snapshotPlayer(glyph string, ok bool) *mock.SnapshotPlayer {
	return &mock.SnapshotPlayer{
		Player:     mock.Player{TrackToFn: func(morebutton.AnimationItem) {}},
		SnapshotFn: func() (string, bool) { return glyph, ok },
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		p, _ := recordingPlayer()
		b, err := morebutton.New(morebutton.DefaultTheme(), p)
		require.NoError(t, err)

		assert.True(t, b.Icon().Encircled())
		assert.Equal(t, morebutton.StateSearch, b.Icon().State())
		assert.Equal(t, morebutton.Size{Width: 30, Height: 30}, b.Icon().Size())
		assert.Equal(t, morebutton.DefaultTheme().ButtonColor, b.Color())
		assert.Empty(t, b.Overlays())
	})

	t.Run("requires a player", func(t *testing.T) {
		t.Parallel()
		_, err := morebutton.New(morebutton.DefaultTheme(), nil)
		assert.ErrorIs(t, err, morebutton.ErrValidation)
	})

	t.Run("rejects non-positive size", func(t *testing.T) {
		t.Parallel()
		p, items := recordingPlayer()
		_, err := morebutton.New(morebutton.DefaultTheme(), p, morebutton.WithSize(morebutton.Size{Width: 0, Height: 1}))
		assert.ErrorIs(t, err, morebutton.ErrValidation)
		assert.Empty(t, *items, "no track is issued for a rejected configuration")
	})

	t.Run("applies options", func(t *testing.T) {
		t.Parallel()
		p, _ := recordingPlayer()
		b, err := morebutton.New(morebutton.DefaultTheme(), p,
			morebutton.WithSize(morebutton.Size{Width: 3, Height: 1}),
			morebutton.WithEncircled(false),
		)
		require.NoError(t, err)
		assert.False(t, b.Icon().Encircled())
		assert.Equal(t, morebutton.StateMore, b.Icon().State())
		assert.Equal(t, morebutton.Size{Width: 3, Height: 1}, b.Icon().Size())
	})
}

func TestButton_Color(t *testing.T) {
	t.Parallel()

	t.Run("override wins over theme", func(t *testing.T) {
		t.Parallel()
		p, _ := recordingPlayer()
		b, err := morebutton.New(morebutton.DefaultTheme(), p)
		require.NoError(t, err)

		b.UpdateColor("#ff0000", morebutton.Immediate)
		assert.Equal(t, morebutton.Color("#ff0000"), b.Color())

		b.SetTheme(morebutton.LightTheme())
		assert.Equal(t, morebutton.Color("#ff0000"), b.Color())
		assert.Equal(t, morebutton.LightTheme(), b.Theme())
	})

	t.Run("clearing override falls back to theme", func(t *testing.T) {
		t.Parallel()
		p, _ := recordingPlayer()
		b, err := morebutton.New(morebutton.DefaultTheme(), p)
		require.NoError(t, err)

		b.UpdateColor("#ff0000", morebutton.Immediate)
		b.UpdateColor("", morebutton.Immediate)
		assert.Equal(t, morebutton.DefaultTheme().ButtonColor, b.Color())

		b.SetTheme(morebutton.LightTheme())
		assert.Equal(t, morebutton.LightTheme().ButtonColor, b.Color())
	})
}

func TestButton_UpdateColor(t *testing.T) {
	t.Parallel()

	animated := morebutton.Animated(200*time.Millisecond, morebutton.CurveEaseInOut)

	t.Run("animated creates one overlay and removes it on completion", func(t *testing.T) {
		t.Parallel()
		a, calls := recordingAnimator()
		b, err := morebutton.New(morebutton.DefaultTheme(), snapshotPlayer("(⌕)", true), morebutton.WithAnimator(a))
		require.NoError(t, err)
		b.Layout(morebutton.Size{Width: 80, Height: 30})

		b.UpdateColor("#ff0000", animated)

		overlays := b.Overlays()
		require.Len(t, overlays, 1)
		o := overlays[0]
		assert.Equal(t, "(⌕)", o.Glyph)
		assert.Equal(t, morebutton.DefaultTheme().ButtonColor, o.Color, "overlay keeps the previous color")
		assert.Equal(t, b.Frame().Icon, o.Frame)
		assert.Equal(t, morebutton.Color("#ff0000"), b.Color())

		require.Len(t, *calls, 2)
		assert.Same(t, o, (*calls)[0].target)
		assert.Equal(t, 1.0, (*calls)[0].from)
		assert.Equal(t, 0.0, (*calls)[0].to)
		assert.Equal(t, animated, (*calls)[0].tr)
		assert.Same(t, b.Icon(), (*calls)[1].target)
		assert.Equal(t, 0.0, (*calls)[1].from)
		assert.Equal(t, 1.0, (*calls)[1].to)
		assert.Equal(t, 0.0, b.Icon().Alpha())

		(*calls)[0].done(true)
		assert.Empty(t, b.Overlays())
	})

	t.Run("interrupted overlay is removed too", func(t *testing.T) {
		t.Parallel()
		a, calls := recordingAnimator()
		b, err := morebutton.New(morebutton.DefaultTheme(), snapshotPlayer("(⋯)", true), morebutton.WithAnimator(a))
		require.NoError(t, err)

		b.UpdateColor("#ff0000", animated)
		b.UpdateColor("#00ff00", animated)
		require.Len(t, b.Overlays(), 2)

		(*calls)[0].done(false)
		require.Len(t, b.Overlays(), 1)
		assert.Equal(t, morebutton.Color("#ff0000"), b.Overlays()[0].Color)

		(*calls)[2].done(true)
		assert.Empty(t, b.Overlays())
	})

	t.Run("immediate creates no overlay", func(t *testing.T) {
		t.Parallel()
		a, calls := recordingAnimator()
		b, err := morebutton.New(morebutton.DefaultTheme(), snapshotPlayer("(⋯)", true), morebutton.WithAnimator(a))
		require.NoError(t, err)

		b.UpdateColor("#ff0000", morebutton.Immediate)

		assert.Empty(t, b.Overlays())
		assert.Empty(t, *calls)
		assert.Equal(t, morebutton.Color("#ff0000"), b.Color())
	})

	t.Run("missing snapshot applies directly", func(t *testing.T) {
		t.Parallel()
		a, calls := recordingAnimator()
		b, err := morebutton.New(morebutton.DefaultTheme(), snapshotPlayer("", false), morebutton.WithAnimator(a))
		require.NoError(t, err)

		b.UpdateColor("#ff0000", animated)

		assert.Empty(t, b.Overlays())
		assert.Empty(t, *calls)
		assert.Equal(t, morebutton.Color("#ff0000"), b.Color())
	})

	t.Run("player without snapshots applies directly", func(t *testing.T) {
		t.Parallel()
		a, calls := recordingAnimator()
		p, _ := recordingPlayer()
		b, err := morebutton.New(morebutton.DefaultTheme(), p, morebutton.WithAnimator(a))
		require.NoError(t, err)

		b.UpdateColor("#ff0000", animated)

		assert.Empty(t, b.Overlays())
		assert.Empty(t, *calls)
	})

	t.Run("without animator applies directly", func(t *testing.T) {
		t.Parallel()
		b, err := morebutton.New(morebutton.DefaultTheme(), snapshotPlayer("(⋯)", true))
		require.NoError(t, err)

		b.UpdateColor("#ff0000", animated)

		assert.Empty(t, b.Overlays())
		assert.Equal(t, morebutton.Color("#ff0000"), b.Color())
	})
}

func TestButton_Layout(t *testing.T) {
	t.Parallel()

	t.Run("centers the icon vertically", func(t *testing.T) {
		t.Parallel()
		p, _ := recordingPlayer()
		b, err := morebutton.New(morebutton.DefaultTheme(), p)
		require.NoError(t, err)

		f := b.Layout(morebutton.Size{Width: 200, Height: 44})

		assert.Equal(t, morebutton.Size{Width: 42, Height: 44}, f.Size)
		assert.Equal(t, morebutton.Rect{
			Origin: morebutton.Point{X: 6, Y: 7},
			Size:   morebutton.Size{Width: 30, Height: 30},
		}, f.Icon)
		assert.Equal(t, f.Icon, b.Source().Frame())
		assert.Equal(t, f, b.Frame())
	})

	t.Run("floors odd remainders", func(t *testing.T) {
		t.Parallel()
		p, _ := recordingPlayer()
		b, err := morebutton.New(morebutton.DefaultTheme(), p, morebutton.WithSize(morebutton.Size{Width: 3, Height: 1}))
		require.NoError(t, err)

		f := b.Layout(morebutton.Size{Width: 80, Height: 4})

		assert.Equal(t, morebutton.Size{Width: 15, Height: 4}, f.Size)
		assert.Equal(t, morebutton.Point{X: 6, Y: 1}, f.Icon.Origin)
	})

	t.Run("floors when the icon is taller than the constraint", func(t *testing.T) {
		t.Parallel()
		p, _ := recordingPlayer()
		b, err := morebutton.New(morebutton.DefaultTheme(), p, morebutton.WithSize(morebutton.Size{Width: 3, Height: 4}))
		require.NoError(t, err)

		f := b.Layout(morebutton.Size{Width: 80, Height: 1})

		assert.Equal(t, -2, f.Icon.Origin.Y)
		assert.Equal(t, 1, f.Size.Height)
	})
}
