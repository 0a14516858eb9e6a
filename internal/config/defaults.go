package config

// Default configuration constants
const (
	defaultStabilitySeconds = 10   // one sample per second
	defaultPollTimeoutMs    = 2000 // per stability poll
	defaultCommandTimeoutMs = 5000 // per external detection command

	defaultRetentionDays = 365 // 1 year of report history

	defaultAccentColor = "#7D56F4"
)

// DefaultConfig returns the default configuration values for hdmiprobe.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console", // console or json
		},
		Report: ReportConfig{
			OutputDir: "", // empty means current working directory
			AutoSave:  false,
		},
		Stability: StabilityConfig{
			DurationSeconds: defaultStabilitySeconds,
			PollTimeoutMs:   defaultPollTimeoutMs,
		},
		Detection: DetectionConfig{
			CommandTimeoutMs: defaultCommandTimeoutMs,
		},
		History: HistoryConfig{
			RetentionDays: defaultRetentionDays,
		},
		Appearance: AppearanceConfig{
			AccentColor: defaultAccentColor,
		},
	}
}
