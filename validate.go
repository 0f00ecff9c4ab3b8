package morebutton

import (
	"fmt"
	"sort"
)

// Validate checks that the item describes a playable range.
func (i AnimationItem) Validate() error {
	if i.Asset == "" {
		return fmt.Errorf("asset id is required: %w", ErrValidation)
	}
	if i.StartFrame < 0 || i.EndFrame < 0 {
		return fmt.Errorf("frames must be non-negative, got %d..%d: %w", i.StartFrame, i.EndFrame, ErrValidation)
	}
	if i.Duration < 0 {
		return fmt.Errorf("duration must be non-negative, got %s: %w", i.Duration, ErrValidation)
	}
	return nil
}

// Validate checks the keyframe ordering of a single asset.
func (a Asset) Validate() error {
	if a.Width <= 0 {
		return fmt.Errorf("asset %q: width must be positive, got %d: %w", a.Name, a.Width, ErrValidation)
	}
	if a.Frames <= 0 {
		return fmt.Errorf("asset %q: frames must be positive, got %d: %w", a.Name, a.Frames, ErrValidation)
	}
	if len(a.Keyframes) == 0 || a.Keyframes[0].Frame != 0 {
		return fmt.Errorf("asset %q: first keyframe must be at frame 0: %w", a.Name, ErrValidation)
	}
	for i, kf := range a.Keyframes {
		if kf.Frame > a.Frames {
			return fmt.Errorf("asset %q: keyframe %d beyond frame %d: %w", a.Name, kf.Frame, a.Frames, ErrValidation)
		}
		if i > 0 && kf.Frame <= a.Keyframes[i-1].Frame {
			return fmt.Errorf("asset %q: keyframes must be strictly increasing at %d: %w", a.Name, kf.Frame, ErrValidation)
		}
		if kf.Glyph == "" {
			return fmt.Errorf("asset %q: empty glyph at frame %d: %w", a.Name, kf.Frame, ErrValidation)
		}
	}
	return nil
}

// requiredAssets lists the assets the icon state machine plays and the
// timeline length each must have.
var requiredAssets = []struct {
	name   string
	frames int
}{
	{AssetMoreToSearch, MorphFrames},
	{AssetBareMoreToSearch, MorphFrames},
	{AssetCircledDotsSpin, SpinFrames},
	{AssetBareDotsSpin, SpinFrames},
}

// Validate checks every asset and that the catalog carries the assets the
// icon state machine needs with the expected timeline lengths.
func (c Catalog) Validate() error {
	for _, req := range requiredAssets {
		a, ok := c[req.name]
		if !ok {
			return fmt.Errorf("%q: %w", req.name, ErrAssetNotFound)
		}
		if a.Frames != req.frames {
			return fmt.Errorf("asset %q: expected %d frames, got %d: %w", req.name, req.frames, a.Frames, ErrValidation)
		}
	}
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a := c[name]
		if a.Name != name {
			return fmt.Errorf("asset %q registered under %q: %w", a.Name, name, ErrValidation)
		}
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}
