package repository

import (
	"context"
	"time"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

//go:generate mockery --name=ReportRepository --output=mocks --filename=mock_ReportRepository.go

// ReportRepository defines operations for persisted test run history.
type ReportRepository interface {
	// Save stores a finalized report. Saving a report whose fingerprint
	// already exists is a no-op that returns the existing row's ID.
	Save(ctx context.Context, report *entity.StoredReport) (int64, error)

	// FindByID retrieves a stored report, including the full aggregate.
	FindByID(ctx context.Context, id int64) (*entity.StoredReport, error)

	// GetRecent retrieves the newest stored reports, most recent first.
	GetRecent(ctx context.Context, limit int) ([]*entity.StoredReport, error)

	// Delete removes a single stored report by ID.
	Delete(ctx context.Context, id int64) error

	// DeleteOlderThan removes reports created before the given time and
	// returns how many were removed.
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)

	// DeleteAll removes all stored reports and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)

	// GetStats retrieves history summary statistics.
	GetStats(ctx context.Context) (*entity.HistoryStats, error)
}
