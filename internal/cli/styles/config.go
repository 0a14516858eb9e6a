package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hdmiprobe/internal/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderStatus renders the config file location and the effective settings.
func (r *ConfigRenderer) RenderStatus(path string, exists bool, cfg config.Config) string {
	t := r.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)

	fileLine := fmt.Sprintf("%s %s %s", iconStyle.Render(IconConfig), t.Subtle.Render("Config"), t.Normal.Render(path))
	if !exists {
		fileLine += " " + t.BadgeMuted.Render(t.WarningStyle.Render("not written yet"))
	}

	settings := []struct {
		key   string
		value string
	}{
		{"database.path", cfg.Database.Path},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
		{"report.output_dir", cfg.Report.ResolveOutputDir()},
		{"report.auto_save", fmt.Sprintf("%t", cfg.Report.AutoSave)},
		{"stability.duration_seconds", fmt.Sprintf("%d", cfg.Stability.DurationSeconds)},
		{"stability.poll_timeout_ms", fmt.Sprintf("%d", cfg.Stability.PollTimeoutMs)},
		{"detection.command_timeout_ms", fmt.Sprintf("%d", cfg.Detection.CommandTimeoutMs)},
		{"history.retention_days", fmt.Sprintf("%d", cfg.History.RetentionDays)},
		{"appearance.accent_color", cfg.Appearance.AccentColor},
	}

	lines := make([]string, 0, len(settings))
	for _, s := range settings {
		lines = append(lines, fmt.Sprintf(
			"%s %s %s",
			iconStyle.Render(IconCursor),
			t.Highlight.Render(s.key),
			t.Normal.Render(s.value),
		))
	}

	body := t.Box.Render(t.BoxHeader.Render(fmt.Sprintf("%s Settings", t.Highlight.Render(IconConfig))) + "\n" + strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, fileLine, "", body)
}

// RenderSchemaWritten renders the schema generation success message.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	t := r.theme
	return fmt.Sprintf(
		"%s %s %s",
		t.SuccessStyle.Render(IconCheck),
		t.Normal.Render("Schema written to"),
		t.Subtle.Render(path),
	)
}

// RenderError renders a config error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
