package morebutton

import "sort"

// Keyframe sets the glyph shown from Frame until the next keyframe.
type Keyframe struct {
	Frame int
	Glyph string
}

// Asset is a frame timeline rendered as terminal glyphs. Every glyph occupies
// Width cells.
type Asset struct {
	Name      string
	Width     int
	Frames    int
	Keyframes []Keyframe
}

// Glyph returns the glyph visible at frame. Frames outside [0, Frames] are
// clamped.
func (a Asset) Glyph(frame int) string {
	frame = a.Clamp(frame)
	// Keyframes are sorted; find the last one at or before frame.
	i := sort.Search(len(a.Keyframes), func(i int) bool {
		return a.Keyframes[i].Frame > frame
	})
	if i == 0 {
		return ""
	}
	return a.Keyframes[i-1].Glyph
}

// Clamp limits frame to the asset's timeline.
func (a Asset) Clamp(frame int) int {
	return min(max(frame, 0), a.Frames)
}

// Catalog maps asset ids to assets.
type Catalog map[string]Asset

// Merge returns a new catalog with the assets of other layered over c.
func (c Catalog) Merge(other Catalog) Catalog {
	out := make(Catalog, len(c)+len(other))
	for name, a := range c {
		out[name] = a
	}
	for name, a := range other {
		out[name] = a
	}
	return out
}
