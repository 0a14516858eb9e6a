package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

// ReportRenderer renders a finalized capability report for the terminal.
type ReportRenderer struct {
	theme *Theme
}

// NewReportRenderer creates a new report renderer with the given theme.
func NewReportRenderer(theme *Theme) *ReportRenderer {
	return &ReportRenderer{theme: theme}
}

// Render renders the full report: header, detected displays, one section per
// test, then any warnings.
func (r *ReportRenderer) Render(report entity.ResultAggregate) string {
	sections := []string{r.renderDisplays(report.Displays)}
	for _, rec := range report.Tests {
		sections = append(sections, r.RenderTest(rec))
	}
	if len(report.Warnings) > 0 {
		sections = append(sections, r.renderWarnings(report.Warnings))
	}

	return lipgloss.JoinVertical(lipgloss.Left, r.renderHeader(report), "", strings.Join(sections, "\n\n"))
}

func (r *ReportRenderer) renderHeader(report entity.ResultAggregate) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	title := fmt.Sprintf("%s %s", iconStyle.Render(IconPlug), r.theme.Title.Render("HDMI Capability Report"))
	head := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", r.theme.QualityBadge(report.OverallQuality))

	host := fmt.Sprintf("%s %s", report.Platform, report.OSVersion)
	when := report.Timestamp.Local().Format("2006-01-02 15:04:05")
	return lipgloss.JoinVertical(lipgloss.Left, head, r.theme.Subtle.Render(host+" · "+when))
}

func (r *ReportRenderer) renderDisplays(displays []entity.DisplayIdentity) string {
	return r.section(IconDisplay, "Displays", strings.Join(displayLines(r.theme, displays), "\n"))
}

// RenderTest renders one test record as a boxed section.
func (r *ReportRenderer) RenderTest(record entity.TestRecord) string {
	switch d := record.Details.(type) {
	case entity.ResolutionDetails:
		return r.renderResolutions(record, d)
	case entity.RefreshRateDetails:
		return r.renderRefreshRates(record, d)
	case entity.BandwidthDetails:
		return r.section(IconGauge, record.TestName, bandwidthMatrix(r.theme, d.BandwidthTests))
	case entity.StabilityDetails:
		return r.renderStability(record, d)
	default:
		return r.section(IconInfo, record.TestName, r.theme.Subtle.Render("no details recorded"))
	}
}

func (r *ReportRenderer) renderResolutions(record entity.TestRecord, d entity.ResolutionDetails) string {
	lines := make([]string, 0, len(d.ResolutionsTested))
	for _, res := range d.ResolutionsTested {
		lines = append(lines, r.renderResolutionProbe(res))
	}
	return r.section(IconDisplay, record.TestName, strings.Join(lines, "\n"))
}

func (r *ReportRenderer) renderResolutionProbe(res entity.ResolutionResult) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	status := "Supported"
	if !res.Supported {
		icon = IconX
		statusStyle = r.theme.ErrorStyle
		status = "Not available"
	}

	name := r.theme.Normal.Render(res.ResolutionLabel)
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(status))
	line := fmt.Sprintf("%s %s %s", statusStyle.Render(icon), name, badge)
	if len(res.AvailableRefreshRates) > 0 {
		line += "\n  " + r.theme.Subtle.Render(rateList(res.AvailableRefreshRates)+" Hz")
	}
	return line
}

func (r *ReportRenderer) renderRefreshRates(record entity.TestRecord, d entity.RefreshRateDetails) string {
	cells := make([]string, 0, len(d.RefreshRatesTested))
	for _, probe := range d.RefreshRatesTested {
		icon, style := IconCheck, r.theme.SuccessStyle
		if !probe.Supported {
			// Missing high rates are expected on most panels, not a fault.
			icon, style = IconX, r.theme.Subtle
		}
		label := r.theme.Normal.Render(fmt.Sprintf("%d Hz", probe.RefreshRateHz))
		cells = append(cells, fmt.Sprintf("%s %s", style.Render(icon), label))
	}
	return r.section(IconClock, record.TestName, strings.Join(cells, "   "))
}

func (r *ReportRenderer) renderStability(record entity.TestRecord, d entity.StabilityDetails) string {
	var drops, failures []entity.StabilitySample
	for _, s := range d.Samples {
		switch {
		case s.Error != "":
			failures = append(failures, s)
		case s.Stable != nil && !*s.Stable:
			drops = append(drops, s)
		}
	}

	icon, style := IconCheck, r.theme.SuccessStyle
	summary := fmt.Sprintf("Signal stable across all %d samples", len(d.Samples))
	switch {
	case len(d.Samples) == 0:
		icon, style = IconWarning, r.theme.WarningStyle
		summary = "No samples collected"
	case len(drops) > 0:
		icon, style = IconX, r.theme.ErrorStyle
		summary = fmt.Sprintf("Signal dropped in %d of %d samples", len(drops), len(d.Samples))
	case len(failures) == len(d.Samples):
		icon, style = IconWarning, r.theme.WarningStyle
		summary = "Every sample poll failed"
	}

	lines := []string{fmt.Sprintf("%s %s", style.Render(icon), r.theme.Normal.Render(summary))}
	for _, s := range drops {
		lines = append(lines, "  "+r.theme.Subtle.Render(fmt.Sprintf("t+%ds: no displays connected", s.TimeIndex)))
	}
	for _, s := range failures {
		lines = append(lines, "  "+r.theme.WarningStyle.Render(fmt.Sprintf("t+%ds: %s", s.TimeIndex, s.Error)))
	}

	return r.section(IconSignal, record.TestName, strings.Join(lines, "\n"))
}

func (r *ReportRenderer) renderWarnings(warnings []string) string {
	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.Normal.Render(w)))
	}
	return r.section(IconWarning, "Warnings", strings.Join(lines, "\n"))
}

// RenderSaved renders the post-save footer.
func (r *ReportRenderer) RenderSaved(path string, historySaved bool, historyID int64) string {
	line := fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconCheck), r.theme.Normal.Render("Report saved to "+path))
	if historySaved {
		note := r.theme.Subtle.Render(fmt.Sprintf("recorded in history as #%d", historyID))
		line += "\n" + fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconDatabase), note)
	}
	return line
}

func (r *ReportRenderer) section(icon, title, body string) string {
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", r.theme.Highlight.Render(icon), title))
	return r.theme.Box.Render(header + "\n" + body)
}

// rateList formats refresh rates as "60/120/144".
func rateList(rates []int) string {
	parts := make([]string, len(rates))
	for i, hz := range rates {
		parts[i] = strconv.Itoa(hz)
	}
	return strings.Join(parts, "/")
}
