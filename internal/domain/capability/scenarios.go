package capability

import (
	"fmt"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

// AnalyzeScenarios computes the bandwidth requirement of each scenario at the
// default 8-bit 4:4:4 signal and classifies which HDMI revisions can carry it.
// The analysis is informational and the record always passes.
func AnalyzeScenarios(scenarios []BandwidthScenario) (entity.TestRecord, error) {
	results := make([]entity.BandwidthResult, 0, len(scenarios))

	for _, sc := range scenarios {
		gbps, err := ComputeBandwidthGbps(sc.WidthPx, sc.HeightPx, sc.RefreshHz, DefaultBitDepth, DefaultChroma)
		if err != nil {
			return entity.TestRecord{}, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		results = append(results, entity.BandwidthResult{
			Scenario:            sc.Name,
			BandwidthGbps:       gbps,
			CompatibleRevisions: CompatibleRevisions(gbps),
		})
	}

	return entity.NewTestRecord(entity.TestNameBandwidth, true, entity.BandwidthDetails{
		BandwidthTests: results,
	}), nil
}
