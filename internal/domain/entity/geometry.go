package entity

import "math"

// Rect is a rectangle in the host's coordinate space.
// Coordinates are real numbers and only subdivided arithmetically.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Dimension names the axis along which a window may grow freely.
type Dimension string

const (
	DimensionHorizontal Dimension = "horizontal"
	DimensionVertical   Dimension = "vertical"
)

// Frame is the placement assigned to one window.
type Frame struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	IsMain                 bool      `json:"is_main" yaml:"is_main"`
	UnconstrainedDimension Dimension `json:"unconstrained_dimension" yaml:"unconstrained_dimension"`
}

// Round converts the rectangle to a frame, rounding each component.
// Presentation flags are the layout's constants: never main, horizontally unconstrained.
func (r Rect) Round() Frame {
	return Frame{
		X:                      roundHalfUp(r.X),
		Y:                      roundHalfUp(r.Y),
		Width:                  roundHalfUp(r.Width),
		Height:                 roundHalfUp(r.Height),
		UnconstrainedDimension: DimensionHorizontal,
	}
}

// roundHalfUp rounds halves toward positive infinity, keeping adjacent
// frames flush at negative origins.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Area returns the frame's area in integer units.
func (f Frame) Area() int {
	return f.Width * f.Height
}

// SameGeometry reports whether two frames cover the same rectangle.
func (f Frame) SameGeometry(other Frame) bool {
	return f.X == other.X && f.Y == other.Y && f.Width == other.Width && f.Height == other.Height
}

// Window is a host window as seen by the layout.
// Only ID is consulted; Frame and IsFocused are informational.
type Window struct {
	ID        WindowID
	Frame     Rect
	IsFocused bool
}

// WindowIDs extracts the ids of windows, preserving order.
func WindowIDs(windows []Window) []WindowID {
	ids := make([]WindowID, len(windows))
	for i, w := range windows {
		ids[i] = w.ID
	}
	return ids
}
