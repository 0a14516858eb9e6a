package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
	"github.com/bnema/hdmiprobe/internal/domain/repository"
	"github.com/bnema/hdmiprobe/internal/domain/service"
	"github.com/bnema/hdmiprobe/internal/logging"
)

const reportFilePerm = 0o644

// SaveReportUseCase writes a finalized report to a JSON file and records it
// in history.
type SaveReportUseCase struct {
	repo repository.ReportRepository
}

// NewSaveReportUseCase creates a new use case. A nil repository disables the
// history record and only the file is written.
func NewSaveReportUseCase(repo repository.ReportRepository) *SaveReportUseCase {
	return &SaveReportUseCase{repo: repo}
}

// SaveReportInput contains the report and its destination.
type SaveReportInput struct {
	Report entity.ResultAggregate

	// Path is the explicit destination file. When empty, a timestamped name
	// in OutputDir is used.
	Path string

	// OutputDir is the directory for the default filename. Empty means the
	// current directory.
	OutputDir string

	// SkipHistory writes the file without recording it in history.
	SkipHistory bool

	// RetentionDays prunes history entries older than this many days after a
	// successful save. Zero disables pruning.
	RetentionDays int
}

// SaveReportOutput describes where the report went.
type SaveReportOutput struct {
	Path        string
	Fingerprint string

	// HistorySaved is false when the history record was skipped or failed;
	// the file write is authoritative either way.
	HistorySaved bool
	HistoryID    int64
}

// Execute serializes the aggregate with two-space indentation and writes it.
// A file write failure is returned as an error; a history failure is only
// logged, since the report itself is already on disk.
func (uc *SaveReportUseCase) Execute(ctx context.Context, input SaveReportInput) (*SaveReportOutput, error) {
	log := logging.FromContext(ctx).With().Str("component", "report").Logger()

	path := input.Path
	if path == "" {
		name := fmt.Sprintf("hdmi_test_report_%s.json", input.Report.Timestamp.Format("20060102_150405"))
		path = filepath.Join(input.OutputDir, name)
	}

	data, err := json.MarshalIndent(input.Report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, reportFilePerm); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	fingerprint, err := service.ReportFingerprint(input.Report)
	if err != nil {
		return nil, fmt.Errorf("fingerprint report: %w", err)
	}

	out := &SaveReportOutput{Path: path, Fingerprint: fingerprint}

	if uc.repo != nil && !input.SkipHistory {
		stored := entity.NewStoredReport(input.Report, fingerprint)
		id, err := uc.repo.Save(ctx, stored)
		if err != nil {
			log.Warn().Err(err).Msg("history record failed, report file is saved")
		} else {
			out.HistorySaved = true
			out.HistoryID = id
		}
	}

	if out.HistorySaved && input.RetentionDays > 0 {
		before := time.Now().AddDate(0, 0, -input.RetentionDays)
		removed, err := uc.repo.DeleteOlderThan(ctx, before)
		if err != nil {
			log.Warn().Err(err).Msg("history retention prune failed")
		} else if removed > 0 {
			log.Debug().Int64("removed", removed).Int("retention_days", input.RetentionDays).Msg("old history pruned")
		}
	}

	log.Info().Str("path", path).Bool("history", out.HistorySaved).Msg("report saved")
	return out, nil
}
