package bsp

import "github.com/bnema/dumbtile/internal/domain/entity"

// Orientation is the direction a rectangle is cut in.
type Orientation int

const (
	// OrientationHorizontal cuts into top and bottom halves.
	OrientationHorizontal Orientation = iota
	// OrientationVertical cuts into left and right halves.
	OrientationVertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// OrientationFor picks the cut for rect: vertical when wider than tall,
// horizontal otherwise (squares included).
func OrientationFor(rect entity.Rect) Orientation {
	if rect.Width > rect.Height {
		return OrientationVertical
	}
	return OrientationHorizontal
}

// Halve splits rect 50/50 along the orientation chosen by OrientationFor.
// first is the left or top half, second the right or bottom half.
func Halve(rect entity.Rect) (first, second entity.Rect) {
	if OrientationFor(rect) == OrientationVertical {
		half := rect.Width / 2
		first = entity.Rect{X: rect.X, Y: rect.Y, Width: half, Height: rect.Height}
		second = entity.Rect{X: rect.X + half, Y: rect.Y, Width: half, Height: rect.Height}
		return first, second
	}

	half := rect.Height / 2
	first = entity.Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: half}
	second = entity.Rect{X: rect.X, Y: rect.Y + half, Width: rect.Width, Height: half}
	return first, second
}

// Traverse walks the tree against rect and returns the frame of every leaf.
// Rounding happens only when a leaf is emitted.
func Traverse(root *entity.LayoutNode, rect entity.Rect) map[entity.WindowID]entity.Frame {
	out := make(map[entity.WindowID]entity.Frame)
	TraverseInto(root, rect, out)
	return out
}

// TraverseInto is Traverse writing into a caller-owned map.
func TraverseInto(node *entity.LayoutNode, rect entity.Rect, out map[entity.WindowID]entity.Frame) {
	if node == nil {
		return
	}
	if node.IsLeaf() {
		out[node.WindowID] = rect.Round()
		return
	}

	first, second := Halve(rect)
	TraverseInto(node.Left(), first, out)
	TraverseInto(node.Right(), second, out)
}

// Regions returns the unrounded rectangle of every leaf, keyed by window.
// Used where exact tiling matters more than host coordinates.
func Regions(root *entity.LayoutNode, rect entity.Rect) map[entity.WindowID]entity.Rect {
	out := make(map[entity.WindowID]entity.Rect)
	var walk func(node *entity.LayoutNode, r entity.Rect)
	walk = func(node *entity.LayoutNode, r entity.Rect) {
		if node == nil {
			return
		}
		if node.IsLeaf() {
			out[node.WindowID] = r
			return
		}
		first, second := Halve(r)
		walk(node.Left(), first)
		walk(node.Right(), second)
	}
	walk(root, rect)
	return out
}
