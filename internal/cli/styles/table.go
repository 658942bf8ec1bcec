package styles

import (
	"slices"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// FrameTableColumns returns columns for the window frame table.
func FrameTableColumns() []table.Column {
	return []table.Column{
		{Title: "Window", Width: 14},
		{Title: "X", Width: 6},
		{Title: "Y", Width: 6},
		{Title: "Width", Width: 6},
		{Title: "Height", Width: 6},
		{Title: "", Width: 8},
	}
}

// FrameRow converts a window frame to a table row.
type FrameRow struct {
	ID     entity.WindowID
	Frame  entity.Frame
	Orphan bool
}

// ToRow converts to table.Row.
func (r FrameRow) ToRow() table.Row {
	return table.Row{
		string(r.ID),
		strconv.Itoa(r.Frame.X),
		strconv.Itoa(r.Frame.Y),
		strconv.Itoa(r.Frame.Width),
		strconv.Itoa(r.Frame.Height),
		r.note(),
	}
}

func (r FrameRow) note() string {
	if r.Orphan {
		return "orphan"
	}
	return ""
}

// FrameRows builds rows for frames in display order.
func FrameRows(frames map[entity.WindowID]entity.Frame, order, orphans []entity.WindowID) []FrameRow {
	ids := OrderedIDs(frames, order)
	rows := make([]FrameRow, len(ids))
	for i, id := range ids {
		rows[i] = FrameRow{ID: id, Frame: frames[id], Orphan: slices.Contains(orphans, id)}
	}
	return rows
}

// RenderFrameTable renders frames as a static bordered table.
func RenderFrameTable(theme *Theme, rows []FrameRow) string {
	t := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("WINDOW", "X", "Y", "WIDTH", "HEIGHT", "")

	for _, r := range rows {
		t.Row(r.ToRow()...)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		base := lipgloss.NewStyle().Padding(0, 1)
		switch {
		case row == lgtable.HeaderRow:
			return base.Foreground(theme.Accent).Bold(true)
		case col == 0 && row >= 0 && row < len(rows):
			return base.Foreground(theme.WindowColor(row))
		case col == 5:
			return base.Foreground(theme.Warning)
		default:
			return base.Foreground(theme.Text)
		}
	})

	return t.Render()
}
