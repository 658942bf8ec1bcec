package bsp_test

import (
	"math/rand/v2"
	"testing"

	"github.com/bnema/dumbtile/internal/domain/bsp"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var screen = entity.Rect{X: 0, Y: 0, Width: 1000, Height: 800}

func frame(x, y, w, h int) entity.Frame {
	return entity.Frame{X: x, Y: y, Width: w, Height: h, UnconstrainedDimension: entity.DimensionHorizontal}
}

func TestTraverse_SingleLeafFillsRect(t *testing.T) {
	got := bsp.Traverse(leaf("1"), screen)

	assert.Equal(t, map[entity.WindowID]entity.Frame{"1": frame(0, 0, 1000, 800)}, got)
}

func TestTraverse_EmptyTree(t *testing.T) {
	assert.Empty(t, bsp.Traverse(nil, screen))
}

func TestTraverse_WideSplitsLeftRight(t *testing.T) {
	got := bsp.Traverse(split(leaf("1"), leaf("2")), screen)

	assert.Equal(t, frame(0, 0, 500, 800), got["1"])
	assert.Equal(t, frame(500, 0, 500, 800), got["2"])
}

func TestTraverse_NestedOrientationFollowsEachRect(t *testing.T) {
	got := bsp.Traverse(split(leaf("1"), split(leaf("2"), leaf("3"))), screen)

	// The right half is 500x800, taller than wide, so it splits top/bottom.
	assert.Equal(t, frame(0, 0, 500, 800), got["1"])
	assert.Equal(t, frame(500, 0, 500, 400), got["2"])
	assert.Equal(t, frame(500, 400, 500, 400), got["3"])
}

func TestTraverse_SquareSplitsTopBottom(t *testing.T) {
	square := entity.Rect{X: 10, Y: 20, Width: 600, Height: 600}

	got := bsp.Traverse(split(leaf("1"), leaf("2")), square)

	assert.Equal(t, frame(10, 20, 600, 300), got["1"])
	assert.Equal(t, frame(10, 320, 600, 300), got["2"])
	assert.Equal(t, bsp.OrientationHorizontal, bsp.OrientationFor(square))
}

func TestTraverse_RoundsOnlyAtLeaves(t *testing.T) {
	// 1001 wide: halves are 500.5 and the quarter cut happens on the exact value.
	rect := entity.Rect{X: 0, Y: 0, Width: 1001, Height: 300}

	got := bsp.Traverse(split(leaf("1"), split(leaf("2"), leaf("3"))), rect)

	assert.Equal(t, frame(0, 0, 501, 300), got["1"])
	assert.Equal(t, frame(501, 0, 250, 300), got["2"]) // x=500.5, w=250.25
	assert.Equal(t, frame(751, 0, 250, 300), got["3"]) // x=750.75, w=250.25
}

func TestTraverse_NegativeOriginTilesWithoutOverlap(t *testing.T) {
	tree := split(leaf("a"), leaf("b"))

	left := bsp.Traverse(tree, entity.Rect{X: -1921, Y: 0, Width: 1921, Height: 1000})
	assert.Equal(t, frame(-1921, 0, 961, 1000), left["a"])
	assert.Equal(t, left["a"].X+left["a"].Width, left["b"].X)

	// Shifting the screen shifts every frame by the same amount.
	right := bsp.Traverse(tree, entity.Rect{X: 0, Y: 0, Width: 1921, Height: 1000})
	for _, id := range []entity.WindowID{"a", "b"} {
		assert.Equal(t, right[id].X-1921, left[id].X, id)
		assert.Equal(t, right[id].Width, left[id].Width, id)
	}
}

func TestOrientationFor(t *testing.T) {
	assert.Equal(t, bsp.OrientationVertical, bsp.OrientationFor(entity.Rect{Width: 2, Height: 1}))
	assert.Equal(t, bsp.OrientationHorizontal, bsp.OrientationFor(entity.Rect{Width: 1, Height: 2}))
	assert.Equal(t, bsp.OrientationHorizontal, bsp.OrientationFor(entity.Rect{Width: 5, Height: 5}))
	assert.Equal(t, "vertical", bsp.OrientationVertical.String())
	assert.Equal(t, "horizontal", bsp.OrientationHorizontal.String())
}

func TestHalve_OrientationRule(t *testing.T) {
	rects := []entity.Rect{
		{X: 3, Y: 7, Width: 1920, Height: 1080},
		{X: 0, Y: 0, Width: 1080, Height: 1920},
		{X: -50, Y: 10, Width: 400, Height: 400},
	}

	for _, r := range rects {
		first, second := bsp.Halve(r)
		if r.Width > r.Height {
			assert.Equal(t, r.Height, first.Height)
			assert.Equal(t, r.Height, second.Height)
			assert.Equal(t, r.Width/2, first.Width)
			assert.Equal(t, first.X+first.Width, second.X)
			assert.Equal(t, first.Y, second.Y)
		} else {
			assert.Equal(t, r.Width, first.Width)
			assert.Equal(t, r.Width, second.Width)
			assert.Equal(t, r.Height/2, first.Height)
			assert.Equal(t, first.Y+first.Height, second.Y)
			assert.Equal(t, first.X, second.X)
		}
	}
}

func TestRegions_ConserveArea(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))

	for trial := range 50 {
		root := randomTree(rng, 1+rng.IntN(16))
		rect := entity.Rect{
			X:      float64(rng.IntN(200)),
			Y:      float64(rng.IntN(200)),
			Width:  float64(200 + rng.IntN(2000)),
			Height: float64(200 + rng.IntN(2000)),
		}

		regions := bsp.Regions(root, rect)
		require.Len(t, regions, root.LeafCount(), "trial %d", trial)

		var total float64
		list := make([]entity.Rect, 0, len(regions))
		for _, r := range regions {
			total += r.Area()
			list = append(list, r)

			assert.GreaterOrEqual(t, r.X, rect.X)
			assert.GreaterOrEqual(t, r.Y, rect.Y)
			assert.LessOrEqual(t, r.X+r.Width, rect.X+rect.Width+1e-9)
			assert.LessOrEqual(t, r.Y+r.Height, rect.Y+rect.Height+1e-9)
		}
		assert.InDelta(t, rect.Area(), total, 1e-6, "trial %d", trial)

		for i := range list {
			for j := i + 1; j < len(list); j++ {
				assert.InDelta(t, 0, overlap(list[i], list[j]), 1e-9, "trial %d: %v overlaps %v", trial, list[i], list[j])
			}
		}
	}
}

func TestTraverse_RoundedFramesStayWithinOneUnit(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	rect := entity.Rect{X: 0, Y: 0, Width: 1366, Height: 768}

	for trial := range 30 {
		root := randomTree(rng, 1+rng.IntN(10))
		exact := bsp.Regions(root, rect)
		frames := bsp.Traverse(root, rect)

		require.Len(t, frames, len(exact))
		for id, r := range exact {
			f := frames[id]
			assert.InDelta(t, r.X, float64(f.X), 0.5+1e-9, "trial %d id %s", trial, id)
			assert.InDelta(t, r.Y, float64(f.Y), 0.5+1e-9, "trial %d id %s", trial, id)
			assert.InDelta(t, r.Width, float64(f.Width), 0.5+1e-9, "trial %d id %s", trial, id)
			assert.InDelta(t, r.Height, float64(f.Height), 0.5+1e-9, "trial %d id %s", trial, id)
			assert.False(t, f.IsMain)
			assert.Equal(t, entity.DimensionHorizontal, f.UnconstrainedDimension)
		}
	}
}

func overlap(a, b entity.Rect) float64 {
	w := min(a.X+a.Width, b.X+b.Width) - max(a.X, b.X)
	h := min(a.Y+a.Height, b.Y+b.Height) - max(a.Y, b.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}
