package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_DefaultsPass(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "chatty"
	cfg.Logging.Format = "xml"
	cfg.Stability.DurationSeconds = 0
	cfg.Appearance.AccentColor = "purple"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "stability.duration_seconds")
	assert.Contains(t, err.Error(), "appearance.accent_color")
}

func TestValidateConfig_AccentColor(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Appearance.AccentColor = "#00FFaa"
	assert.NoError(t, validateConfig(cfg))

	cfg.Appearance.AccentColor = ""
	assert.NoError(t, validateConfig(cfg))

	cfg.Appearance.AccentColor = "#12345"
	assert.Error(t, validateConfig(cfg))
}
