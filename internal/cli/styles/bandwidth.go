package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hdmiprobe/internal/domain/capability"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

// Matrix cell widths, sized for "1080p@144Hz" and "HDMI 1.4".
const (
	matrixNameWidth = 14
	matrixGbpsWidth = 12
	matrixRevWidth  = 10
)

// BandwidthRenderer renders bandwidth analysis results.
type BandwidthRenderer struct {
	theme *Theme
}

// NewBandwidthRenderer creates a new bandwidth renderer with the given theme.
func NewBandwidthRenderer(theme *Theme) *BandwidthRenderer {
	return &BandwidthRenderer{theme: theme}
}

// RenderSingle renders one signal's requirement with a per-revision verdict.
func (r *BandwidthRenderer) RenderSingle(result entity.BandwidthResult) string {
	t := r.theme
	head := lipgloss.JoinHorizontal(
		lipgloss.Center,
		fmt.Sprintf("%s %s", t.Highlight.Render(IconGauge), t.Title.Render(result.Scenario)),
		" ",
		t.AccentBadge(fmt.Sprintf("%.2f Gbps", result.BandwidthGbps)),
	)

	compat := compatSet(result.CompatibleRevisions)
	lines := make([]string, 0, 3)
	for _, rev := range capability.Revisions() {
		icon, style, verdict := IconX, t.ErrorStyle, "exceeds limit"
		if compat[rev.Label] {
			icon, style, verdict = IconCheck, t.SuccessStyle, "within limit"
		}
		lines = append(lines, fmt.Sprintf(
			"%s %s %s",
			style.Render(icon),
			t.Normal.Render(rev.Label),
			t.Subtle.Render(fmt.Sprintf("%s (max %.1f Gbps)", verdict, rev.CeilingGbps)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, head, "", strings.Join(lines, "\n"))
}

// RenderMatrix renders the scenario catalog as a compatibility matrix.
func (r *BandwidthRenderer) RenderMatrix(results []entity.BandwidthResult) string {
	t := r.theme
	head := fmt.Sprintf("%s %s", t.Highlight.Render(IconGauge), t.Title.Render("Bandwidth Requirements"))
	return lipgloss.JoinVertical(lipgloss.Left, head, "", bandwidthMatrix(t, results))
}

// bandwidthMatrix lays out scenario rows against the revision columns, shared
// by the report section and the standalone bandwidth command.
func bandwidthMatrix(t *Theme, results []entity.BandwidthResult) string {
	revs := capability.Revisions()

	cells := []string{
		t.Subtitle.Width(matrixNameWidth).Render("Scenario"),
		t.Subtitle.Width(matrixGbpsWidth).Align(lipgloss.Right).Render("Required"),
	}
	for _, rev := range revs {
		cells = append(cells, t.Subtitle.Width(matrixRevWidth).Align(lipgloss.Center).Render(rev.Label))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, cells...)}

	for _, res := range results {
		compat := compatSet(res.CompatibleRevisions)

		cells := []string{
			t.Normal.Width(matrixNameWidth).Render(res.Scenario),
			t.Normal.Width(matrixGbpsWidth).Align(lipgloss.Right).Render(fmt.Sprintf("%.2f Gbps", res.BandwidthGbps)),
		}
		for _, rev := range revs {
			mark := t.ErrorStyle.Render(IconX)
			if compat[rev.Label] {
				mark = t.SuccessStyle.Render(IconCheck)
			}
			cells = append(cells, lipgloss.NewStyle().Width(matrixRevWidth).Align(lipgloss.Center).Render(mark))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n")
}

func compatSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, label := range labels {
		set[label] = true
	}
	return set
}
