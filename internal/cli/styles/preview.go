package styles

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

const noOwner = -1

// Preview is a character-grid picture of frames scaled into a terminal box.
// Later windows are drawn over earlier ones.
type Preview struct {
	cols   int
	rows   int
	cells  [][]rune
	owners [][]int
}

// OrderedIDs returns the ids of frames: those listed in order first, then
// the rest sorted.
func OrderedIDs(frames map[entity.WindowID]entity.Frame, order []entity.WindowID) []entity.WindowID {
	out := make([]entity.WindowID, 0, len(frames))
	for _, id := range order {
		if _, ok := frames[id]; ok && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	var rest []entity.WindowID
	for id := range frames {
		if !slices.Contains(out, id) {
			rest = append(rest, id)
		}
	}
	slices.Sort(rest)
	return append(out, rest...)
}

// NewPreview draws the frames of the windows in order onto a cols x rows grid
// covering screen. Dimensions below 1 are raised to 1.
func NewPreview(frames map[entity.WindowID]entity.Frame, order []entity.WindowID, screen entity.Rect, cols, rows int) *Preview {
	cols = max(cols, 1)
	rows = max(rows, 1)

	p := &Preview{
		cols:   cols,
		rows:   rows,
		cells:  make([][]rune, rows),
		owners: make([][]int, rows),
	}
	for y := range rows {
		p.cells[y] = []rune(strings.Repeat(" ", cols))
		p.owners[y] = slices.Repeat([]int{noOwner}, cols)
	}

	if screen.Width <= 0 || screen.Height <= 0 {
		return p
	}

	for i, id := range order {
		f, ok := frames[id]
		if !ok {
			continue
		}
		x0 := scaleCell(float64(f.X), screen.X, screen.Width, cols)
		x1 := scaleCell(float64(f.X+f.Width), screen.X, screen.Width, cols) - 1
		y0 := scaleCell(float64(f.Y), screen.Y, screen.Height, rows)
		y1 := scaleCell(float64(f.Y+f.Height), screen.Y, screen.Height, rows) - 1
		x0, x1 = clampSpan(x0, x1, cols)
		y0, y1 = clampSpan(y0, y1, rows)
		p.drawBox(i, string(id), x0, y0, x1, y1)
	}
	return p
}

func scaleCell(v, origin, extent float64, cells int) int {
	return int(math.Round((v - origin) / extent * float64(cells)))
}

func clampSpan(lo, hi, n int) (int, int) {
	lo = min(max(lo, 0), n-1)
	hi = min(max(hi, 0), n-1)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func (p *Preview) set(x, y int, r rune, owner int) {
	p.cells[y][x] = r
	p.owners[y][x] = owner
}

func (p *Preview) drawBox(owner int, label string, x0, y0, x1, y1 int) {
	// Too thin for a border
	if x0 == x1 || y0 == y1 {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				p.set(x, y, '▪', owner)
			}
		}
		return
	}

	for x := x0 + 1; x < x1; x++ {
		p.set(x, y0, '─', owner)
		p.set(x, y1, '─', owner)
	}
	for y := y0 + 1; y < y1; y++ {
		p.set(x0, y, '│', owner)
		p.set(x1, y, '│', owner)
		for x := x0 + 1; x < x1; x++ {
			p.set(x, y, ' ', owner)
		}
	}
	p.set(x0, y0, '┌', owner)
	p.set(x1, y0, '┐', owner)
	p.set(x0, y1, '└', owner)
	p.set(x1, y1, '┘', owner)

	inner := x1 - x0 - 1
	if inner < 1 || y1-y0 < 2 {
		return
	}
	for i, r := range []rune(label) {
		if i >= inner {
			break
		}
		p.set(x0+1+i, y0+1, r, owner)
	}
}

// Lines returns the preview as plain text, one string per row.
func (p *Preview) Lines() []string {
	out := make([]string, p.rows)
	for y, row := range p.cells {
		out[y] = string(row)
	}
	return out
}

// String returns the plain preview.
func (p *Preview) String() string {
	return strings.Join(p.Lines(), "\n")
}

// Render returns the preview with each window in its theme color, inside a box.
func (p *Preview) Render(theme *Theme) string {
	var b strings.Builder
	for y := range p.rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= p.cols; x++ {
			if x < p.cols && p.owners[y][x] == p.owners[y][start] {
				continue
			}
			run := string(p.cells[y][start:x])
			if owner := p.owners[y][start]; owner != noOwner {
				run = lipgloss.NewStyle().Foreground(theme.WindowColor(owner)).Render(run)
			}
			b.WriteString(run)
			start = x
		}
	}
	return theme.Box.Render(b.String())
}
