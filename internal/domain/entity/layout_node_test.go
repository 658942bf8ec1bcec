package entity

import "testing"

func TestLayoutNode_LeafCount(t *testing.T) {
	tests := []struct {
		name     string
		node     *LayoutNode
		expected int
	}{
		{
			name:     "single leaf",
			node:     NewLeafNode("1"),
			expected: 1,
		},
		{
			name:     "split with two leaves",
			node:     NewSplitNode(NewLeafNode("1"), NewLeafNode("2")),
			expected: 2,
		},
		{
			name: "nested splits",
			node: NewSplitNode(
				NewLeafNode("1"),
				NewSplitNode(NewLeafNode("2"), NewSplitNode(NewLeafNode("3"), NewLeafNode("4"))),
			),
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.LeafCount(); got != tt.expected {
				t.Errorf("LeafCount() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestLayoutNode_IsLeafAndIsSplit(t *testing.T) {
	leaf := NewLeafNode("1")
	if !leaf.IsLeaf() || leaf.IsSplit() {
		t.Fatalf("leaf: IsLeaf=%v IsSplit=%v", leaf.IsLeaf(), leaf.IsSplit())
	}

	split := NewSplitNode(NewLeafNode("1"), NewLeafNode("2"))
	if split.IsLeaf() || !split.IsSplit() {
		t.Fatalf("split: IsLeaf=%v IsSplit=%v", split.IsLeaf(), split.IsSplit())
	}
	if split.Left().WindowID != "1" || split.Right().WindowID != "2" {
		t.Fatalf("children = %s/%s, want 1/2", split.Left().WindowID, split.Right().WindowID)
	}

	// Half-built internal node is neither
	partial := &LayoutNode{Children: []*LayoutNode{NewLeafNode("1")}}
	if partial.IsLeaf() || partial.IsSplit() {
		t.Fatalf("partial node should be neither leaf nor split")
	}
}

func TestLayoutNode_LeafIDsOrder(t *testing.T) {
	root := NewSplitNode(
		NewSplitNode(NewLeafNode("a"), NewLeafNode("b")),
		NewLeafNode("c"),
	)

	got := root.LeafIDs()
	want := []WindowID{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("LeafIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LeafIDs() = %v, want %v", got, want)
		}
	}
}

func TestLayoutNode_WalkStopsEarly(t *testing.T) {
	root := NewSplitNode(NewLeafNode("a"), NewSplitNode(NewLeafNode("b"), NewLeafNode("c")))

	visited := 0
	root.Walk(func(n *LayoutNode) bool {
		visited++
		return n.WindowID != "a"
	})

	// root, then leaf a stops the walk
	if visited != 2 {
		t.Fatalf("visited %d nodes, want 2", visited)
	}
}

func TestLayoutNode_Depth(t *testing.T) {
	var empty *LayoutNode
	if empty.Depth() != 0 {
		t.Fatalf("nil tree depth = %d, want 0", empty.Depth())
	}

	root := NewSplitNode(NewLeafNode("a"), NewSplitNode(NewLeafNode("b"), NewLeafNode("c")))
	if root.Depth() != 3 {
		t.Fatalf("Depth() = %d, want 3", root.Depth())
	}
}

func TestLayoutNode_EqualAndString(t *testing.T) {
	a := NewSplitNode(NewLeafNode("1"), NewSplitNode(NewLeafNode("2"), NewLeafNode("3")))
	b := NewSplitNode(NewLeafNode("1"), NewSplitNode(NewLeafNode("2"), NewLeafNode("3")))
	c := NewSplitNode(NewSplitNode(NewLeafNode("1"), NewLeafNode("2")), NewLeafNode("3"))

	if !a.Equal(b) {
		t.Fatalf("expected %s to equal %s", a, b)
	}
	if a.Equal(c) {
		t.Fatalf("expected %s to differ from %s", a, c)
	}
	if got := a.String(); got != "(1 (2 3))" {
		t.Fatalf("String() = %q, want %q", got, "(1 (2 3))")
	}
	if got := c.String(); got != "((1 2) 3)" {
		t.Fatalf("String() = %q, want %q", got, "((1 2) 3)")
	}

	var empty *LayoutNode
	if !empty.Equal(nil) || empty.Equal(a) {
		t.Fatalf("nil tree equality is wrong")
	}
	if empty.String() != "()" {
		t.Fatalf("nil String() = %q", empty.String())
	}
}

func TestLayoutState_CloneIsDeep(t *testing.T) {
	s := NewLayoutState()
	s.Windows = []WindowID{"1", "2"}
	s.Root = NewSplitNode(NewLeafNode("1"), NewLeafNode("2"))
	s.LastFocused = "1"

	c := s.Clone()
	c.Windows[0] = "x"
	c.Root.Children[0].WindowID = "x"

	if s.Windows[0] != "1" || s.Root.Left().WindowID != "1" {
		t.Fatalf("clone shares memory with its source")
	}
	if c.LastFocused != "1" || c.Ratio != DefaultRatio {
		t.Fatalf("clone lost scalar fields: %+v", c)
	}
}
