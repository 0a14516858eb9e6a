package usecase_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/hdmiprobe/internal/application/usecase"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
	repomocks "github.com/bnema/hdmiprobe/internal/domain/repository/mocks"
	"github.com/bnema/hdmiprobe/internal/domain/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testReport() entity.ResultAggregate {
	agg := entity.NewResultAggregate("Linux", "6.8.0")
	agg.Timestamp = time.Date(2026, 3, 14, 9, 30, 5, 0, time.UTC)
	agg.SetDisplays([]entity.DisplayIdentity{{FriendlyName: "LG HDR 4K"}})
	agg.AppendTest(entity.NewTestRecord(entity.TestNameBandwidth, true, entity.BandwidthDetails{
		BandwidthTests: []entity.BandwidthResult{
			{Scenario: "1080p@60Hz", BandwidthGbps: 3.73, CompatibleRevisions: []string{"HDMI 1.4", "HDMI 2.0", "HDMI 2.1"}},
		},
	}))
	agg.OverallQuality = entity.QualityExcellent
	return *agg
}

func TestSaveReportUseCase_Execute_WritesFileAndHistory(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockReportRepository(t)

	report := testReport()
	var stored *entity.StoredReport
	repo.EXPECT().Save(ctx, mock.Anything).Run(func(_ context.Context, r *entity.StoredReport) {
		stored = r
	}).Return(int64(7), nil)

	dir := t.TempDir()
	uc := usecase.NewSaveReportUseCase(repo)
	output, err := uc.Execute(ctx, usecase.SaveReportInput{Report: report, OutputDir: dir})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "hdmi_test_report_20260314_093005.json"), output.Path)
	assert.True(t, output.HistorySaved)
	assert.Equal(t, int64(7), output.HistoryID)

	data, err := os.ReadFile(output.Path)
	require.NoError(t, err)

	var decoded entity.ResultAggregate
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Linux", decoded.Platform)
	assert.Equal(t, entity.QualityExcellent, decoded.OverallQuality)
	require.Len(t, decoded.Tests, 1)

	fingerprint, err := service.ReportFingerprint(report)
	require.NoError(t, err)
	assert.Equal(t, fingerprint, output.Fingerprint)

	require.NotNil(t, stored)
	assert.Equal(t, fingerprint, stored.Fingerprint)
	assert.Equal(t, 1, stored.DisplayCount)
	assert.Equal(t, 1, stored.TestCount)
	assert.Equal(t, entity.QualityExcellent, stored.OverallQuality)
}

func TestSaveReportUseCase_Execute_SkipHistory(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockReportRepository(t)

	uc := usecase.NewSaveReportUseCase(repo)
	output, err := uc.Execute(ctx, usecase.SaveReportInput{
		Report:      testReport(),
		OutputDir:   t.TempDir(),
		SkipHistory: true,
	})
	require.NoError(t, err)
	assert.False(t, output.HistorySaved)

	_, statErr := os.Stat(output.Path)
	assert.NoError(t, statErr)
}

func TestSaveReportUseCase_Execute_HistoryFailureKeepsFile(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockReportRepository(t)
	repo.EXPECT().Save(ctx, mock.Anything).Return(int64(0), assert.AnError)

	uc := usecase.NewSaveReportUseCase(repo)
	output, err := uc.Execute(ctx, usecase.SaveReportInput{Report: testReport(), OutputDir: t.TempDir()})
	require.NoError(t, err)
	assert.False(t, output.HistorySaved)

	_, statErr := os.Stat(output.Path)
	assert.NoError(t, statErr)
}

func TestSaveReportUseCase_Execute_RetentionPrunesOldEntries(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockReportRepository(t)
	repo.EXPECT().Save(ctx, mock.Anything).Return(int64(3), nil)
	repo.EXPECT().DeleteOlderThan(ctx, mock.AnythingOfType("time.Time")).Return(int64(2), nil)

	uc := usecase.NewSaveReportUseCase(repo)
	output, err := uc.Execute(ctx, usecase.SaveReportInput{
		Report:        testReport(),
		OutputDir:     t.TempDir(),
		RetentionDays: 30,
	})
	require.NoError(t, err)
	assert.True(t, output.HistorySaved)
}

func TestSaveReportUseCase_Execute_NilRepositoryWritesFileOnly(t *testing.T) {
	uc := usecase.NewSaveReportUseCase(nil)
	output, err := uc.Execute(testContext(), usecase.SaveReportInput{
		Report:    testReport(),
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	assert.False(t, output.HistorySaved)
	assert.NotEmpty(t, output.Fingerprint)
}

func TestSaveReportUseCase_Execute_ExplicitNestedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "march", "report.json")

	uc := usecase.NewSaveReportUseCase(nil)
	output, err := uc.Execute(testContext(), usecase.SaveReportInput{Report: testReport(), Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, output.Path)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
