package usecase_test

import (
	"testing"

	"github.com/bnema/hdmiprobe/internal/application/usecase"
	"github.com/bnema/hdmiprobe/internal/domain/capability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBandwidthUseCase_Execute_SingleSignal(t *testing.T) {
	uc := usecase.NewAnalyzeBandwidthUseCase()

	output, err := uc.Execute(testContext(), usecase.AnalyzeBandwidthInput{
		Width: 1920, Height: 1080, RefreshHz: 60,
	})
	require.NoError(t, err)
	require.NotNil(t, output.Single)
	assert.Nil(t, output.Scenarios)

	assert.Equal(t, "1920x1080@60Hz", output.Single.Scenario)
	assert.InDelta(t, 3.73, output.Single.BandwidthGbps, 1e-9)
	assert.Equal(t, []string{"HDMI 1.4", "HDMI 2.0", "HDMI 2.1"}, output.Single.CompatibleRevisions)
}

func TestAnalyzeBandwidthUseCase_Execute_DeepColorSignal(t *testing.T) {
	uc := usecase.NewAnalyzeBandwidthUseCase()

	output, err := uc.Execute(testContext(), usecase.AnalyzeBandwidthInput{
		Width: 3840, Height: 2160, RefreshHz: 60, BitDepth: 10,
	})
	require.NoError(t, err)
	require.NotNil(t, output.Single)

	// 10 bit pushes 4K@60 past the HDMI 2.0 ceiling.
	assert.InDelta(t, 18.66, output.Single.BandwidthGbps, 1e-9)
	assert.Equal(t, []string{"HDMI 2.1"}, output.Single.CompatibleRevisions)
}

func TestAnalyzeBandwidthUseCase_Execute_ScenarioCatalog(t *testing.T) {
	uc := usecase.NewAnalyzeBandwidthUseCase()

	output, err := uc.Execute(testContext(), usecase.AnalyzeBandwidthInput{})
	require.NoError(t, err)
	assert.Nil(t, output.Single)
	require.Len(t, output.Scenarios, 6)

	names := make([]string, 0, len(output.Scenarios))
	for _, scenario := range output.Scenarios {
		names = append(names, scenario.Scenario)
	}
	assert.Equal(t, []string{
		"1080p@60Hz", "1080p@144Hz", "1440p@60Hz", "1440p@144Hz", "4K@60Hz", "4K@120Hz",
	}, names)

	assert.InDelta(t, 29.86, output.Scenarios[5].BandwidthGbps, 1e-9)
}

func TestAnalyzeBandwidthUseCase_Execute_RejectsUnknownChroma(t *testing.T) {
	uc := usecase.NewAnalyzeBandwidthUseCase()

	output, err := uc.Execute(testContext(), usecase.AnalyzeBandwidthInput{
		Width: 1920, Height: 1080, RefreshHz: 60, Chroma: "4:1:1",
	})
	require.ErrorIs(t, err, capability.ErrInvalidArgument)
	assert.Nil(t, output)
}

func TestAnalyzeBandwidthUseCase_Execute_RejectsNegativeGeometry(t *testing.T) {
	uc := usecase.NewAnalyzeBandwidthUseCase()

	output, err := uc.Execute(testContext(), usecase.AnalyzeBandwidthInput{
		Width: -1920, Height: 1080, RefreshHz: 60,
	})
	require.ErrorIs(t, err, capability.ErrInvalidArgument)
	assert.Nil(t, output)
}
