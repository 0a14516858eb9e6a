package styles_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hdmiprobe/internal/cli/styles"
	"github.com/bnema/hdmiprobe/internal/config"
	"github.com/bnema/hdmiprobe/internal/domain/capability"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(config.DefaultConfig())
}

func sampleAggregate(t *testing.T) entity.ResultAggregate {
	t.Helper()

	agg := entity.NewResultAggregate("Linux", "6.8.0")
	agg.SetDisplays([]entity.DisplayIdentity{
		{
			Manufacturer:      "DEL",
			ProductCode:       "A0F5",
			SerialNumber:      "14156",
			FriendlyName:      "DELL U2720Q",
			YearOfManufacture: 2020,
			WeekOfManufacture: 12,
			CurrentResolution: "3840x2160",
			IsPrimary:         true,
		},
	})

	modes := []entity.DisplayMode{
		{WidthPx: 3840, HeightPx: 2160, RefreshHz: 60},
		{WidthPx: 1920, HeightPx: 1080, RefreshHz: 144},
		{WidthPx: 1920, HeightPx: 1080, RefreshHz: 60},
	}
	agg.AppendTest(capability.EvaluateResolutions(modes, capability.StandardResolutions()))
	agg.AppendTest(capability.EvaluateRefreshRates(modes, capability.StandardRefreshRates()))

	bandwidth, err := capability.AnalyzeScenarios(capability.StandardScenarios())
	require.NoError(t, err)
	agg.AppendTest(bandwidth)

	agg.AppendTest(entity.NewTestRecord(entity.TestNameStability, true, entity.StabilityDetails{
		DurationSeconds: 3,
		Samples: []entity.StabilitySample{
			entity.ConnectedSample(1, 1),
			entity.ConnectedSample(2, 1),
			entity.ConnectedSample(3, 1),
		},
	}))

	agg.AddWarning("running in WSL: display detection may be limited")
	agg.OverallQuality = capability.AggregateQuality(agg.Tests)
	return *agg
}

func TestReportRenderer_RenderFullReport(t *testing.T) {
	out := styles.NewReportRenderer(testTheme()).Render(sampleAggregate(t))

	assert.Contains(t, out, "HDMI Capability Report")
	assert.Contains(t, out, "Linux 6.8.0")
	assert.Contains(t, out, "DELL U2720Q")
	assert.Contains(t, out, "serial 14156")
	assert.Contains(t, out, entity.TestNameResolution)
	assert.Contains(t, out, entity.TestNameRefreshRate)
	assert.Contains(t, out, entity.TestNameBandwidth)
	assert.Contains(t, out, entity.TestNameStability)
	assert.Contains(t, out, "1080p@60Hz")
	assert.Contains(t, out, "3.73 Gbps")
	assert.Contains(t, out, "Signal stable across all 3 samples")
	assert.Contains(t, out, "running in WSL")
}

func TestReportRenderer_ResolutionSupportLines(t *testing.T) {
	out := styles.NewReportRenderer(testTheme()).Render(sampleAggregate(t))

	// 4K is present in the mode list, UltraWide is not.
	assert.Contains(t, out, "4K UHD")
	assert.Contains(t, out, "Not available")
	assert.Contains(t, out, "Supported")
}

func TestReportRenderer_StabilityDrops(t *testing.T) {
	record := entity.NewTestRecord(entity.TestNameStability, false, entity.StabilityDetails{
		DurationSeconds: 3,
		Samples: []entity.StabilitySample{
			entity.ConnectedSample(1, 1),
			entity.ConnectedSample(2, 0),
			entity.ErrorSample(3, assert.AnError),
		},
	})

	out := styles.NewReportRenderer(testTheme()).RenderTest(record)

	assert.Contains(t, out, "Signal dropped in 1 of 3 samples")
	assert.Contains(t, out, "t+2s: no displays connected")
	assert.Contains(t, out, "t+3s:")
}

func TestReportRenderer_RenderSaved(t *testing.T) {
	r := styles.NewReportRenderer(testTheme())

	out := r.RenderSaved("/tmp/report.json", true, 7)
	assert.Contains(t, out, "Report saved to /tmp/report.json")
	assert.Contains(t, out, "#7")

	out = r.RenderSaved("/tmp/report.json", false, 0)
	assert.NotContains(t, out, "history")
}

func TestBandwidthRenderer_SingleVerdict(t *testing.T) {
	result := entity.BandwidthResult{
		Scenario:            "3840x2160@60Hz",
		BandwidthGbps:       18.66,
		CompatibleRevisions: []string{"HDMI 2.1"},
	}

	out := styles.NewBandwidthRenderer(testTheme()).RenderSingle(result)

	assert.Contains(t, out, "18.66 Gbps")
	assert.Contains(t, out, "within limit")
	assert.Contains(t, out, "exceeds limit")
	assert.Contains(t, out, "HDMI 2.1")
}

func TestBandwidthRenderer_MatrixColumns(t *testing.T) {
	record, err := capability.AnalyzeScenarios(capability.StandardScenarios())
	require.NoError(t, err)
	details := record.Details.(entity.BandwidthDetails)

	out := styles.NewBandwidthRenderer(testTheme()).RenderMatrix(details.BandwidthTests)

	for _, rev := range capability.Revisions() {
		assert.Contains(t, out, rev.Label)
	}
	for _, scenario := range capability.StandardScenarios() {
		assert.Contains(t, out, scenario.Name)
	}
}

func TestDisplaysRenderer_EmptySnapshot(t *testing.T) {
	out := styles.NewDisplaysRenderer(testTheme()).Render(nil)

	assert.Contains(t, out, "Connected Displays")
	assert.Contains(t, out, "0 displays")
	assert.Contains(t, out, "No connected displays detected")
}

func TestDisplaysRenderer_ModesTable(t *testing.T) {
	modes := []entity.DisplayMode{
		{WidthPx: 3840, HeightPx: 2160, RefreshHz: 60},
		{WidthPx: 1920, HeightPx: 1080, RefreshHz: 144, BitsPerPixel: 32},
	}

	out := styles.NewDisplaysRenderer(testTheme()).RenderModes(modes)

	assert.Contains(t, out, "2 modes")
	assert.Contains(t, out, "3840x2160")
	assert.Contains(t, out, "144 Hz")
	assert.Contains(t, out, "32 bpp")
}

func TestHistoryRenderer_Stats(t *testing.T) {
	r := styles.NewHistoryRenderer(testTheme())

	out := r.RenderStats(entity.HistoryStats{})
	assert.Contains(t, out, "No reports recorded yet")

	now := time.Now()
	out = r.RenderStats(entity.HistoryStats{
		TotalReports: 4,
		FirstRun:     now.Add(-48 * time.Hour),
		LastRun:      now,
	})
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "First run")
	assert.Contains(t, out, "Last run")
}

func TestHistoryRenderer_Cleared(t *testing.T) {
	r := styles.NewHistoryRenderer(testTheme())

	assert.Contains(t, r.RenderCleared(0), "Nothing to remove")
	assert.Contains(t, r.RenderCleared(1), "Removed 1 report")
	assert.Contains(t, r.RenderCleared(3), "Removed 3 reports")
}
