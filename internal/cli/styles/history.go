package styles

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

// HistoryRenderer renders report history output.
type HistoryRenderer struct {
	theme *Theme
}

// NewHistoryRenderer creates a new history renderer with the given theme.
func NewHistoryRenderer(theme *Theme) *HistoryRenderer {
	return &HistoryRenderer{theme: theme}
}

// RenderStats renders history summary statistics.
func (r *HistoryRenderer) RenderStats(stats entity.HistoryStats) string {
	t := r.theme
	head := fmt.Sprintf("%s %s", t.Highlight.Render(IconDatabase), t.Title.Render("Report History"))
	if stats.TotalReports == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, head, "", t.Subtle.Render("No reports recorded yet"))
	}

	lines := []string{
		fmt.Sprintf("%s %s", t.Subtle.Render("Reports"), t.Normal.Render(strconv.FormatInt(stats.TotalReports, 10))),
		r.runLine("First run", stats.FirstRun),
		r.runLine("Last run", stats.LastRun),
	}
	return lipgloss.JoinVertical(lipgloss.Left, head, "", strings.Join(lines, "\n"))
}

func (r *HistoryRenderer) runLine(label string, tm time.Time) string {
	t := r.theme
	return fmt.Sprintf(
		"%s %s %s",
		t.Subtle.Render(label),
		t.Normal.Render(tm.Local().Format("2006-01-02 15:04")),
		t.BadgeMuted.Render(RelativeTime(tm)),
	)
}

// RenderCleared renders the clear outcome.
func (r *HistoryRenderer) RenderCleared(removed int64) string {
	if removed == 0 {
		return r.theme.Subtle.Render("Nothing to remove")
	}
	noun := "reports"
	if removed == 1 {
		noun = "report"
	}
	msg := fmt.Sprintf("Removed %d %s", removed, noun)
	return fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconTrash), r.theme.Normal.Render(msg))
}

// RenderEntry renders a one-line badge header for a stored report.
func (r *HistoryRenderer) RenderEntry(report *entity.StoredReport) string {
	t := r.theme
	fp := report.Fingerprint
	if len(fp) > 12 {
		fp = fp[:12]
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		t.AccentBadge(fmt.Sprintf("#%d", report.ID)),
		" ",
		t.TimeBadge(report.CreatedAt),
		" ",
		t.Subtle.Render(fp),
	)
}
