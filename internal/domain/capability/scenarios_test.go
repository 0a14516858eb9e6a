package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hdmiprobe/internal/domain/capability"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

func TestAnalyzeScenarios_StandardCatalog(t *testing.T) {
	record, err := capability.AnalyzeScenarios(capability.StandardScenarios())
	require.NoError(t, err)

	assert.Equal(t, entity.TestNameBandwidth, record.TestName)
	assert.Equal(t, entity.TestKindBandwidth, record.Kind)
	assert.True(t, record.Passed)

	details, ok := record.Details.(entity.BandwidthDetails)
	require.True(t, ok)
	require.Len(t, details.BandwidthTests, 6)

	want := []struct {
		scenario  string
		gbps      float64
		revisions []string
	}{
		{"1080p@60Hz", 3.73, []string{"HDMI 1.4", "HDMI 2.0", "HDMI 2.1"}},
		{"1080p@144Hz", 8.96, []string{"HDMI 1.4", "HDMI 2.0", "HDMI 2.1"}},
		{"1440p@60Hz", 6.64, []string{"HDMI 1.4", "HDMI 2.0", "HDMI 2.1"}},
		{"1440p@144Hz", 15.93, []string{"HDMI 2.0", "HDMI 2.1"}},
		{"4K@60Hz", 14.93, []string{"HDMI 2.0", "HDMI 2.1"}},
		{"4K@120Hz", 29.86, []string{"HDMI 2.1"}},
	}

	for i, w := range want {
		got := details.BandwidthTests[i]
		assert.Equal(t, w.scenario, got.Scenario)
		assert.InDelta(t, w.gbps, got.BandwidthGbps, 0.01)
		assert.Equal(t, w.revisions, got.CompatibleRevisions)
	}
}

func TestAnalyzeScenarios_InvalidScenario(t *testing.T) {
	bad := []capability.BandwidthScenario{
		{Name: "broken", WidthPx: 0, HeightPx: 1080, RefreshHz: 60},
	}
	_, err := capability.AnalyzeScenarios(bad)
	require.ErrorIs(t, err, capability.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "broken")
}
