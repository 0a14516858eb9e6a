package capability

import "github.com/bnema/hdmiprobe/internal/domain/entity"

// AggregateQuality reduces every test record's pass/fail outcome into one
// overall tier. Thresholds are inclusive lower bounds evaluated with
// real-number arithmetic, so ties go to the higher tier: exactly 80% passed
// is Good, exactly 50% is Fair.
func AggregateQuality(records []entity.TestRecord) entity.QualityTier {
	total := len(records)
	if total == 0 {
		return entity.QualityUnknown
	}

	passed := 0
	for _, rec := range records {
		if rec.Passed {
			passed++
		}
	}

	switch {
	case passed == total:
		return entity.QualityExcellent
	case float64(passed) >= 0.8*float64(total):
		return entity.QualityGood
	case float64(passed) >= 0.5*float64(total):
		return entity.QualityFair
	default:
		return entity.QualityPoor
	}
}
