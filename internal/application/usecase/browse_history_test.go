package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/hdmiprobe/internal/application/usecase"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
	repomocks "github.com/bnema/hdmiprobe/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBrowseHistoryUseCase_List_DefaultLimit(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockReportRepository(t)

	reports := []*entity.StoredReport{
		{ID: 2, Platform: "Linux", OverallQuality: entity.QualityGood},
		{ID: 1, Platform: "Linux", OverallQuality: entity.QualityExcellent},
	}
	repo.EXPECT().GetRecent(ctx, 50).Return(reports, nil)

	uc := usecase.NewBrowseHistoryUseCase(repo)
	output, err := uc.List(ctx, usecase.ListHistoryInput{})
	require.NoError(t, err)
	require.Len(t, output.Reports, 2)
	assert.Equal(t, int64(2), output.Reports[0].ID)
}

func TestBrowseHistoryUseCase_List_ExplicitLimit(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockReportRepository(t)
	repo.EXPECT().GetRecent(ctx, 5).Return(nil, nil)

	uc := usecase.NewBrowseHistoryUseCase(repo)
	output, err := uc.List(ctx, usecase.ListHistoryInput{Max: 5})
	require.NoError(t, err)
	assert.Empty(t, output.Reports)
}

func TestBrowseHistoryUseCase_List_WrapsError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockReportRepository(t)
	repo.EXPECT().GetRecent(ctx, 50).Return(nil, assert.AnError)

	uc := usecase.NewBrowseHistoryUseCase(repo)
	output, err := uc.List(ctx, usecase.ListHistoryInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, output)
}

func TestBrowseHistoryUseCase_Show_ReturnsStoredReport(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockReportRepository(t)

	stored := &entity.StoredReport{ID: 3, Fingerprint: "abc123", OverallQuality: entity.QualityFair}
	repo.EXPECT().FindByID(ctx, int64(3)).Return(stored, nil)

	uc := usecase.NewBrowseHistoryUseCase(repo)
	output, err := uc.Show(ctx, usecase.ShowHistoryInput{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, stored, output.Report)
}

func TestBrowseHistoryUseCase_Clear_All(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockReportRepository(t)
	repo.EXPECT().DeleteAll(ctx).Return(int64(12), nil)

	uc := usecase.NewBrowseHistoryUseCase(repo)
	output, err := uc.Clear(ctx, usecase.ClearHistoryInput{All: true})
	require.NoError(t, err)
	assert.Equal(t, int64(12), output.Removed)
}

func TestBrowseHistoryUseCase_Clear_OlderThanDays(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockReportRepository(t)

	var cutoff time.Time
	repo.EXPECT().DeleteOlderThan(ctx, mock.Anything).Run(func(_ context.Context, before time.Time) {
		cutoff = before
	}).Return(int64(4), nil)

	uc := usecase.NewBrowseHistoryUseCase(repo)
	output, err := uc.Clear(ctx, usecase.ClearHistoryInput{OlderThanDays: 30})
	require.NoError(t, err)
	assert.Equal(t, int64(4), output.Removed)

	expected := time.Now().AddDate(0, 0, -30)
	assert.WithinDuration(t, expected, cutoff, time.Minute)
}

func TestBrowseHistoryUseCase_Clear_NothingSelected(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockReportRepository(t)

	uc := usecase.NewBrowseHistoryUseCase(repo)
	output, err := uc.Clear(ctx, usecase.ClearHistoryInput{})
	require.NoError(t, err)
	assert.Zero(t, output.Removed)
}

func TestBrowseHistoryUseCase_Stats_ReturnsSummary(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockReportRepository(t)

	stats := &entity.HistoryStats{
		TotalReports: 9,
		FirstRun:     time.Now().Add(-72 * time.Hour),
		LastRun:      time.Now(),
	}
	repo.EXPECT().GetStats(ctx).Return(stats, nil)

	uc := usecase.NewBrowseHistoryUseCase(repo)
	output, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, output.Stats)
}
