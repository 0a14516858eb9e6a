package capability

import (
	"fmt"
	"sort"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

// EvaluateResolutions probes each standard resolution against the available
// mode catalog. Matching is exact integer equality on width and height; the
// distinct refresh rates of matching modes are collected per supported probe.
//
// Per-probe failures are informational only, so the record itself always
// passes. Callers wanting a stricter policy can inspect the per-probe detail.
func EvaluateResolutions(modes []entity.DisplayMode, probes []ResolutionProbe) entity.TestRecord {
	results := make([]entity.ResolutionResult, 0, len(probes))

	for _, probe := range probes {
		seen := make(map[int]struct{})
		var rates []int
		for _, mode := range modes {
			if mode.WidthPx != probe.WidthPx || mode.HeightPx != probe.HeightPx {
				continue
			}
			if _, dup := seen[mode.RefreshHz]; dup {
				continue
			}
			seen[mode.RefreshHz] = struct{}{}
			rates = append(rates, mode.RefreshHz)
		}
		sort.Ints(rates)

		results = append(results, entity.ResolutionResult{
			ResolutionLabel:       fmt.Sprintf("%dx%d", probe.WidthPx, probe.HeightPx),
			Supported:             len(rates) > 0,
			AvailableRefreshRates: rates,
		})
	}

	return entity.NewTestRecord(entity.TestNameResolution, true, entity.ResolutionDetails{
		ResolutionsTested: results,
	})
}

// EvaluateRefreshRates probes each standard rate against the distinct refresh
// rates present anywhere in the mode catalog. Same always-passing policy as
// EvaluateResolutions.
func EvaluateRefreshRates(modes []entity.DisplayMode, probes []int) entity.TestRecord {
	available := make(map[int]struct{}, len(modes))
	for _, mode := range modes {
		available[mode.RefreshHz] = struct{}{}
	}

	results := make([]entity.RefreshRateResult, 0, len(probes))
	for _, rate := range probes {
		_, ok := available[rate]
		results = append(results, entity.RefreshRateResult{
			RefreshRateHz: rate,
			Supported:     ok,
		})
	}

	return entity.NewTestRecord(entity.TestNameRefreshRate, true, entity.RefreshRateDetails{
		RefreshRatesTested: results,
	})
}
