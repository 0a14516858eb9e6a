package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

// Badge renders styled metadata badges.

// QualityStyle returns the semantic style for a quality tier.
func (t *Theme) QualityStyle(tier entity.QualityTier) lipgloss.Style {
	switch tier {
	case entity.QualityExcellent:
		return t.SuccessStyle.Bold(true)
	case entity.QualityGood:
		return t.SuccessStyle
	case entity.QualityFair:
		return t.WarningStyle
	case entity.QualityPoor:
		return t.ErrorStyle
	default:
		return t.Subtle
	}
}

// QualityBadge renders the overall quality verdict as a badge.
func (t *Theme) QualityBadge(tier entity.QualityTier) string {
	return t.BadgeMuted.Render(t.QualityStyle(tier).Render(string(tier)))
}

// CountBadge renders a count with a singular/plural noun.
func (t *Theme) CountBadge(count int, noun string) string {
	text := fmt.Sprintf("%d %ss", count, noun)
	if count == 1 {
		text = fmt.Sprintf("1 %s", noun)
	}
	return t.BadgeMuted.Render(text)
}

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	diff := time.Since(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	case diff < 30*24*time.Hour:
		weeks := int(diff.Hours() / (24 * 7))
		if weeks == 1 {
			return "1w ago"
		}
		return fmt.Sprintf("%dw ago", weeks)
	case diff < 365*24*time.Hour:
		months := int(diff.Hours() / (24 * 30))
		if months == 1 {
			return "1mo ago"
		}
		return fmt.Sprintf("%dmo ago", months)
	default:
		years := int(diff.Hours() / (24 * 365))
		if years == 1 {
			return "1y ago"
		}
		return fmt.Sprintf("%dy ago", years)
	}
}
