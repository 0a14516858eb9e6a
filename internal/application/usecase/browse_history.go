package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
	"github.com/bnema/hdmiprobe/internal/domain/repository"
)

// BrowseHistoryUseCase reads and prunes stored report history.
type BrowseHistoryUseCase struct {
	repo repository.ReportRepository
}

// NewBrowseHistoryUseCase creates a new use case.
func NewBrowseHistoryUseCase(repo repository.ReportRepository) *BrowseHistoryUseCase {
	return &BrowseHistoryUseCase{repo: repo}
}

// ListHistoryInput contains listing options.
type ListHistoryInput struct {
	// Max limits the number of entries; zero or negative uses 50.
	Max int
}

// ListHistoryOutput contains the newest stored reports, most recent first.
type ListHistoryOutput struct {
	Reports []*entity.StoredReport
}

const defaultHistoryLimit = 50

// List returns recent stored reports.
func (uc *BrowseHistoryUseCase) List(ctx context.Context, input ListHistoryInput) (*ListHistoryOutput, error) {
	limit := input.Max
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	reports, err := uc.repo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return &ListHistoryOutput{Reports: reports}, nil
}

// ShowHistoryInput selects one stored report.
type ShowHistoryInput struct {
	ID int64
}

// ShowHistoryOutput contains the stored report with its full aggregate.
type ShowHistoryOutput struct {
	Report *entity.StoredReport
}

// Show fetches a single stored report by ID.
func (uc *BrowseHistoryUseCase) Show(ctx context.Context, input ShowHistoryInput) (*ShowHistoryOutput, error) {
	report, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("show history entry %d: %w", input.ID, err)
	}
	return &ShowHistoryOutput{Report: report}, nil
}

// ClearHistoryInput selects what to remove.
type ClearHistoryInput struct {
	// OlderThanDays removes entries older than the given number of days.
	// Zero with All unset removes nothing.
	OlderThanDays int

	// All removes every entry regardless of age.
	All bool
}

// ClearHistoryOutput reports how many entries were removed.
type ClearHistoryOutput struct {
	Removed int64
}

// Clear prunes history according to the input.
func (uc *BrowseHistoryUseCase) Clear(ctx context.Context, input ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input.All {
		removed, err := uc.repo.DeleteAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("clear history: %w", err)
		}
		return &ClearHistoryOutput{Removed: removed}, nil
	}
	if input.OlderThanDays <= 0 {
		return &ClearHistoryOutput{}, nil
	}

	before := time.Now().AddDate(0, 0, -input.OlderThanDays)
	removed, err := uc.repo.DeleteOlderThan(ctx, before)
	if err != nil {
		return nil, fmt.Errorf("clear history older than %d days: %w", input.OlderThanDays, err)
	}
	return &ClearHistoryOutput{Removed: removed}, nil
}

// StatsHistoryOutput summarizes stored history.
type StatsHistoryOutput struct {
	Stats *entity.HistoryStats
}

// Stats returns history summary statistics.
func (uc *BrowseHistoryUseCase) Stats(ctx context.Context) (*StatsHistoryOutput, error) {
	stats, err := uc.repo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("history stats: %w", err)
	}
	return &StatsHistoryOutput{Stats: stats}, nil
}
