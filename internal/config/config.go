package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0o755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0o644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for hdmiprobe.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	Report     ReportConfig     `mapstructure:"report" yaml:"report"`
	Stability  StabilityConfig  `mapstructure:"stability" yaml:"stability"`
	Detection  DetectionConfig  `mapstructure:"detection" yaml:"detection"`
	History    HistoryConfig    `mapstructure:"history" yaml:"history"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance"`
}

// DatabaseConfig holds history database configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ReportConfig holds report file output configuration.
type ReportConfig struct {
	// OutputDir receives saved report files. Empty means the current
	// working directory.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	// AutoSave writes the report file after every full run without asking.
	AutoSave bool `mapstructure:"auto_save" yaml:"auto_save"`
}

// ResolveOutputDir returns the directory report files go to.
func (r ReportConfig) ResolveOutputDir() string {
	if r.OutputDir == "" {
		return "."
	}
	return r.OutputDir
}

// StabilityConfig holds stability sampling configuration.
type StabilityConfig struct {
	DurationSeconds int `mapstructure:"duration_seconds" yaml:"duration_seconds"`
	PollTimeoutMs   int `mapstructure:"poll_timeout_ms" yaml:"poll_timeout_ms"`
}

// PollTimeout returns the per-poll timeout as a duration.
func (s StabilityConfig) PollTimeout() time.Duration {
	return time.Duration(s.PollTimeoutMs) * time.Millisecond
}

// DetectionConfig holds display detection configuration.
type DetectionConfig struct {
	CommandTimeoutMs int `mapstructure:"command_timeout_ms" yaml:"command_timeout_ms"`
}

// CommandTimeout returns the external command timeout as a duration.
func (d DetectionConfig) CommandTimeout() time.Duration {
	return time.Duration(d.CommandTimeoutMs) * time.Millisecond
}

// HistoryConfig holds report history configuration.
type HistoryConfig struct {
	RetentionDays int `mapstructure:"retention_days" yaml:"retention_days"`
}

// AppearanceConfig holds terminal output preferences.
type AppearanceConfig struct {
	AccentColor string `mapstructure:"accent_color" yaml:"accent_color"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Will find config.yaml, config.json, config.toml, etc.
	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("HDMIPROBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"database.path":                "DATABASE_PATH",
		"logging.level":                "LOG_LEVEL",
		"logging.format":               "LOG_FORMAT",
		"report.output_dir":            "REPORT_OUTPUT_DIR",
		"report.auto_save":             "REPORT_AUTO_SAVE",
		"stability.duration_seconds":   "STABILITY_DURATION_SECONDS",
		"stability.poll_timeout_ms":    "STABILITY_POLL_TIMEOUT_MS",
		"detection.command_timeout_ms": "DETECTION_COMMAND_TIMEOUT_MS",
		"history.retention_days":       "HISTORY_RETENTION_DAYS",
		"appearance.accent_color":      "APPEARANCE_ACCENT_COLOR",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, "HDMIPROBE_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create default one
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config, err := m.unmarshal()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// unmarshal decodes viper state into a validated Config.
func (m *Manager) unmarshal() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}

	config.Logging.Level = strings.ToLower(config.Logging.Level)
	config.Logging.Format = strings.ToLower(config.Logging.Format)

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		if err := m.reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload config: %v\n", err)
			return
		}

		m.mu.RLock()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload reloads the configuration after a file change.
func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.unmarshal()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("report.output_dir", defaults.Report.OutputDir)
	m.viper.SetDefault("report.auto_save", defaults.Report.AutoSave)

	m.viper.SetDefault("stability.duration_seconds", defaults.Stability.DurationSeconds)
	m.viper.SetDefault("stability.poll_timeout_ms", defaults.Stability.PollTimeoutMs)

	m.viper.SetDefault("detection.command_timeout_ms", defaults.Detection.CommandTimeoutMs)

	m.viper.SetDefault("history.retention_days", defaults.History.RetentionDays)

	m.viper.SetDefault("appearance.accent_color", defaults.Appearance.AccentColor)
}

// createDefaultConfig writes the defaults to a new config file and generates
// the JSON schema next to it.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if err := GenerateSchemaFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to generate config schema: %v\n", err)
	}

	fmt.Printf("Created default configuration file: %s\n", configFile)
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}
