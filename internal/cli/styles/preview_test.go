package styles

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

var previewScreen = entity.Rect{X: 0, Y: 0, Width: 1000, Height: 800}

func TestPreview_Dimensions(t *testing.T) {
	frames := map[entity.WindowID]entity.Frame{
		"1": {X: 0, Y: 0, Width: 500, Height: 800},
		"2": {X: 500, Y: 0, Width: 500, Height: 800},
	}

	for _, size := range [][2]int{{64, 20}, {10, 4}, {1, 1}, {0, -3}} {
		p := NewPreview(frames, []entity.WindowID{"1", "2"}, previewScreen, size[0], size[1])
		lines := p.Lines()

		wantCols, wantRows := max(size[0], 1), max(size[1], 1)
		require.Len(t, lines, wantRows)
		for _, line := range lines {
			assert.Equal(t, wantCols, utf8.RuneCountInString(line))
		}
	}
}

func TestPreview_SideBySideWindows(t *testing.T) {
	frames := map[entity.WindowID]entity.Frame{
		"left":  {X: 0, Y: 0, Width: 500, Height: 800},
		"right": {X: 500, Y: 0, Width: 500, Height: 800},
	}

	p := NewPreview(frames, []entity.WindowID{"left", "right"}, previewScreen, 20, 6)
	lines := p.Lines()

	assert.Equal(t, "┌────────┐┌────────┐", lines[0])
	assert.Equal(t, "│left    ││right   │", lines[1])
	assert.Equal(t, "└────────┘└────────┘", lines[5])
}

func TestPreview_ScreenOffsetAndLabelTruncation(t *testing.T) {
	screen := entity.Rect{X: 100, Y: 50, Width: 400, Height: 200}
	frames := map[entity.WindowID]entity.Frame{
		"verylongname": {X: 100, Y: 50, Width: 400, Height: 200},
	}

	p := NewPreview(frames, []entity.WindowID{"verylongname"}, screen, 8, 4)

	assert.Equal(t, "┌──────┐", p.Lines()[0])
	assert.Equal(t, "│verylo│", p.Lines()[1])
}

func TestPreview_ThinWindowIsFilled(t *testing.T) {
	frames := map[entity.WindowID]entity.Frame{
		"tiny": {X: 0, Y: 0, Width: 10, Height: 10},
	}

	p := NewPreview(frames, []entity.WindowID{"tiny"}, previewScreen, 10, 4)

	assert.Equal(t, "▪         ", p.Lines()[0])
}

func TestOrderedIDs(t *testing.T) {
	frames := map[entity.WindowID]entity.Frame{"c": {}, "a": {}, "b": {}, "z": {}}

	got := OrderedIDs(frames, []entity.WindowID{"c", "missing", "a", "c"})

	assert.Equal(t, []entity.WindowID{"c", "a", "b", "z"}, got)
}

func TestFrameRows_MarksOrphans(t *testing.T) {
	frames := map[entity.WindowID]entity.Frame{
		"1": {Width: 500, Height: 800},
		"2": {X: 500, Width: 500, Height: 800},
		"3": {Width: 100, Height: 100},
	}

	rows := FrameRows(frames, []entity.WindowID{"1", "2"}, []entity.WindowID{"3"})

	require.Len(t, rows, 3)
	assert.Equal(t, entity.WindowID("3"), rows[2].ID)
	assert.True(t, rows[2].Orphan)
	assert.Equal(t, []string{"2", "500", "0", "500", "800", ""}, []string(rows[1].ToRow()))
	assert.Equal(t, "orphan", rows[2].ToRow()[5])
}

func TestRenderFrameTable(t *testing.T) {
	rows := []FrameRow{{ID: "term", Frame: entity.Frame{Width: 1000, Height: 800}}}

	out := RenderFrameTable(NewTheme(), rows)

	assert.Contains(t, out, "WINDOW")
	assert.Contains(t, out, "term")
	assert.Contains(t, out, "1000")
}
