package styles

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
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

// HistoryTableColumns returns columns for the report history table.
func HistoryTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "When", Width: 18},
		{Title: "Platform", Width: 12},
		{Title: "Displays", Width: 9},
		{Title: "Tests", Width: 6},
		{Title: "Quality", Width: 10},
	}
}

// HistoryRow converts a stored report to a table row.
func HistoryRow(r *entity.StoredReport) table.Row {
	return table.Row{
		strconv.FormatInt(r.ID, 10),
		r.CreatedAt.Local().Format("2006-01-02 15:04"),
		r.Platform,
		strconv.Itoa(r.DisplayCount),
		strconv.Itoa(r.TestCount),
		string(r.OverallQuality),
	}
}

// ModeTableColumns returns columns for the display mode table.
func ModeTableColumns() []table.Column {
	return []table.Column{
		{Title: "Resolution", Width: 12},
		{Title: "Refresh", Width: 8},
		{Title: "Depth", Width: 7},
	}
}

// ModeRow converts a display mode to a table row.
func ModeRow(m entity.DisplayMode) table.Row {
	depth := ""
	if m.BitsPerPixel > 0 {
		depth = fmt.Sprintf("%d bpp", m.BitsPerPixel)
	}
	return table.Row{
		m.Resolution(),
		fmt.Sprintf("%d Hz", m.RefreshHz),
		depth,
	}
}
