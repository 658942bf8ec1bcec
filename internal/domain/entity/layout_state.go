package entity

import "slices"

// DefaultRatio is the split ratio a new layout state starts with.
const DefaultRatio = 0.5

// LayoutState is the per-space state of a tiling layout.
// Windows is the canonical insertion-ordered list; Root is derived from
// Windows and LastFocused and is replaced whenever a mutation changes the root.
type LayoutState struct {
	Windows     []WindowID
	Root        *LayoutNode
	LastFocused WindowID // empty when nothing has been focused
	Ratio       float64  // stored hint, not used by the 50/50 split
}

// NewLayoutState creates an empty layout state.
func NewLayoutState() *LayoutState {
	return &LayoutState{
		Windows: make([]WindowID, 0),
		Ratio:   DefaultRatio,
	}
}

// WindowCount returns the number of tracked windows.
func (s *LayoutState) WindowCount() int {
	return len(s.Windows)
}

// IndexOf returns the position of id in Windows, or -1.
func (s *LayoutState) IndexOf(id WindowID) int {
	return slices.Index(s.Windows, id)
}

// HasWindow reports whether id is tracked.
func (s *LayoutState) HasWindow(id WindowID) bool {
	return s.IndexOf(id) >= 0
}

// SameWindows reports whether ids equals the tracked list, order included.
func (s *LayoutState) SameWindows(ids []WindowID) bool {
	return slices.Equal(s.Windows, ids)
}

// Clone returns a deep copy of the state.
func (s *LayoutState) Clone() *LayoutState {
	return &LayoutState{
		Windows:     slices.Clone(s.Windows),
		Root:        s.Root.clone(),
		LastFocused: s.LastFocused,
		Ratio:       s.Ratio,
	}
}

func (n *LayoutNode) clone() *LayoutNode {
	if n == nil {
		return nil
	}
	c := &LayoutNode{WindowID: n.WindowID}
	if len(n.Children) > 0 {
		c.Children = make([]*LayoutNode, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.clone()
		}
	}
	return c
}
