package config

import (
	"fmt"
	"regexp"
	"strings"
)

var accentColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateConfig performs validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be 'console' or 'json' (got: %s)", config.Logging.Format))
	}

	if config.Stability.DurationSeconds < 1 {
		validationErrors = append(validationErrors, "stability.duration_seconds must be at least 1")
	}
	if config.Stability.PollTimeoutMs < 0 {
		validationErrors = append(validationErrors, "stability.poll_timeout_ms must be non-negative")
	}

	if config.Detection.CommandTimeoutMs < 1 {
		validationErrors = append(validationErrors, "detection.command_timeout_ms must be at least 1")
	}

	if config.History.RetentionDays < 0 {
		validationErrors = append(validationErrors, "history.retention_days must be non-negative")
	}

	if config.Appearance.AccentColor != "" && !accentColorRe.MatchString(config.Appearance.AccentColor) {
		validationErrors = append(validationErrors, fmt.Sprintf("appearance.accent_color must be a #RRGGBB hex color (got: %s)", config.Appearance.AccentColor))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}
