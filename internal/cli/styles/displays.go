package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

const modeTableWidth = 36

// DisplaysRenderer renders display detection output.
type DisplaysRenderer struct {
	theme *Theme
}

// NewDisplaysRenderer creates a new displays renderer with the given theme.
func NewDisplaysRenderer(theme *Theme) *DisplaysRenderer {
	return &DisplaysRenderer{theme: theme}
}

// Render renders the connected display snapshot.
func (r *DisplaysRenderer) Render(displays []entity.DisplayIdentity) string {
	t := r.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	head := lipgloss.JoinHorizontal(
		lipgloss.Center,
		fmt.Sprintf("%s %s", iconStyle.Render(IconDisplay), t.Title.Render("Connected Displays")),
		" ",
		t.CountBadge(len(displays), "display"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, head, "", strings.Join(displayLines(t, displays), "\n"))
}

// RenderModes renders the mode catalog as a static themed table.
func (r *DisplaysRenderer) RenderModes(modes []entity.DisplayMode) string {
	t := r.theme
	head := lipgloss.JoinHorizontal(
		lipgloss.Center,
		fmt.Sprintf("%s %s", t.Highlight.Render(IconChart), t.Title.Render("Available Modes")),
		" ",
		t.CountBadge(len(modes), "mode"),
	)
	if len(modes) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, head, "", t.Subtle.Render("No modes reported"))
	}

	rows := make([]table.Row, len(modes))
	for i, m := range modes {
		rows[i] = ModeRow(m)
	}
	tbl := NewStyledTable(t, ModeTableColumns(), rows, modeTableWidth, len(rows))
	tbl.Blur()

	return lipgloss.JoinVertical(lipgloss.Left, head, "", tbl.View())
}

// displayLines renders one block per display, shared by the report section
// and the displays command.
func displayLines(t *Theme, displays []entity.DisplayIdentity) []string {
	if len(displays) == 0 {
		return []string{t.Subtle.Render("No connected displays detected")}
	}
	lines := make([]string, 0, len(displays))
	for _, d := range displays {
		lines = append(lines, displayLine(t, d))
	}
	return lines
}

func displayLine(t *Theme, d entity.DisplayIdentity) string {
	head := fmt.Sprintf("%s %s", t.Highlight.Render(IconDisplay), t.Normal.Render(d.Label()))
	if d.IsPrimary {
		head += " " + t.MutedBadge("primary")
	}

	var details []string
	if d.Manufacturer != "" {
		id := d.Manufacturer
		if d.ProductCode != "" {
			id += " " + d.ProductCode
		}
		details = append(details, id)
	}
	if d.SerialNumber != "" {
		details = append(details, "serial "+d.SerialNumber)
	}
	if d.CurrentResolution != "" {
		details = append(details, d.CurrentResolution)
	}
	if d.YearOfManufacture > 0 {
		made := fmt.Sprintf("%d", d.YearOfManufacture)
		if d.WeekOfManufacture > 0 {
			made += fmt.Sprintf(" week %d", d.WeekOfManufacture)
		}
		details = append(details, made)
	}

	if len(details) == 0 {
		return head
	}
	return head + "\n  " + t.Subtle.Render(strings.Join(details, " · "))
}
