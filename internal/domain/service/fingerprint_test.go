package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
	"github.com/bnema/hdmiprobe/internal/domain/service"
)

func TestReportFingerprint_Deterministic(t *testing.T) {
	agg := entity.ResultAggregate{
		Timestamp:      time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Platform:       "Linux",
		OSVersion:      "6.12.1",
		OverallQuality: entity.QualityGood,
	}

	first, err := service.ReportFingerprint(agg)
	require.NoError(t, err)
	second, err := service.ReportFingerprint(agg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64, "hex blake2b-256")
}

func TestReportFingerprint_SensitiveToContent(t *testing.T) {
	base := entity.ResultAggregate{
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Platform:  "Linux",
	}
	changed := base
	changed.OverallQuality = entity.QualityPoor

	a, err := service.ReportFingerprint(base)
	require.NoError(t, err)
	b, err := service.ReportFingerprint(changed)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
