package morebutton

// LayoutInset is the horizontal inset on each side of the icon.
const LayoutInset = 6

// DefaultIconSize is the icon render box used when no size is configured.
var DefaultIconSize = Size{Width: 30, Height: 30}

// Size is a width and height in layout units (terminal cells for the
// bubbletea host).
type Size struct {
	Width  int
	Height int
}

// Point is a position in layout units.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Origin Point
	Size   Size
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.Height
}

// Frame is the result of laying out the button.
type Frame struct {
	// Size is the total size the button occupies.
	Size Size
	// Icon is the icon box relative to the button origin.
	Icon Rect
}

// layout centers an icon of the given size vertically inside constrained and
// offsets it horizontally by LayoutInset.
func layout(icon Size, constrained Size) Frame {
	diff := constrained.Height - icon.Height
	y := diff / 2
	if diff < 0 && diff%2 != 0 {
		y-- // floor, not truncate
	}
	return Frame{
		Size: Size{Width: icon.Width + 2*LayoutInset, Height: constrained.Height},
		Icon: Rect{
			Origin: Point{X: LayoutInset, Y: y},
			Size:   icon,
		},
	}
}
