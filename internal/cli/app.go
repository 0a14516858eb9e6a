// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/bnema/hdmiprobe/internal/application/usecase"
	"github.com/bnema/hdmiprobe/internal/cli/styles"
	"github.com/bnema/hdmiprobe/internal/config"
	"github.com/bnema/hdmiprobe/internal/domain/build"
	"github.com/bnema/hdmiprobe/internal/domain/capability"
	"github.com/bnema/hdmiprobe/internal/domain/repository"
	"github.com/bnema/hdmiprobe/internal/infrastructure/display"
	"github.com/bnema/hdmiprobe/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/hdmiprobe/internal/infrastructure/sysinfo"
	"github.com/bnema/hdmiprobe/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	db        *sql.DB
	Reports   repository.ReportRepository

	// Use cases
	SuiteUC     *usecase.RunCapabilitySuiteUseCase
	DetectUC    *usecase.DetectDisplaysUseCase
	BandwidthUC *usecase.AnalyzeBandwidthUseCase
	StabilityUC *usecase.SampleStabilityUseCase
	SaveUC      *usecase.SaveReportUseCase
	HistoryUC   *usecase.BrowseHistoryUseCase

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	// Load config
	cfg := loadConfig()

	// Create theme from config
	theme := styles.NewTheme(cfg)

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("HDMIPROBE_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}

	logger := logging.NewFromConfigValuesWithTimeFormat(logLevel, cfg.Logging.Format, "15:04:05")
	ctx := logging.WithContext(context.Background(), logger)

	// Determine database path - the data directory per XDG spec (user data)
	dbFile := cfg.Database.Path
	if dbFile == "" {
		var err error
		dbFile, err = config.GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	// Open database connection
	db, err := sqlite.NewConnection(ctx, dbFile)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	logger.Debug().Str("db_path", dbFile).Msg("database connected")

	// Create repositories
	reportRepo := sqlite.NewReportRepository(db)

	// Create platform collaborators
	detector := display.NewDetector(display.Options{
		CommandTimeout: cfg.Detection.CommandTimeout(),
	})
	surveyor := sysinfo.NewSurveyor()
	sampler := capability.NewSampler()
	sampler.PollTimeout = cfg.Stability.PollTimeout()

	return &App{
		Config:      cfg,
		Theme:       theme,
		db:          db,
		Reports:     reportRepo,
		SuiteUC:     usecase.NewRunCapabilitySuiteUseCase(detector, surveyor, sampler),
		DetectUC:    usecase.NewDetectDisplaysUseCase(detector),
		BandwidthUC: usecase.NewAnalyzeBandwidthUseCase(),
		StabilityUC: usecase.NewSampleStabilityUseCase(detector, sampler),
		SaveUC:      usecase.NewSaveReportUseCase(reportRepo),
		HistoryUC:   usecase.NewBrowseHistoryUseCase(reportRepo),
		ctx:         ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations.
func loadConfig() *config.Config {
	mgr, err := config.NewManager()
	if err != nil {
		// Return default config if manager fails
		return config.DefaultConfig()
	}

	if err := mgr.Load(); err != nil {
		// Return default config if loading fails
		return config.DefaultConfig()
	}

	return mgr.Get()
}
