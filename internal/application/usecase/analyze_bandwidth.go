package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/hdmiprobe/internal/domain/capability"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

// AnalyzeBandwidthUseCase computes the bandwidth requirement of a single
// signal, or of the standard scenario catalog when no geometry is given.
type AnalyzeBandwidthUseCase struct{}

// NewAnalyzeBandwidthUseCase creates a new use case.
func NewAnalyzeBandwidthUseCase() *AnalyzeBandwidthUseCase {
	return &AnalyzeBandwidthUseCase{}
}

// AnalyzeBandwidthInput describes the signal to analyze. Leaving Width,
// Height and RefreshHz all zero selects the standard scenario catalog
// instead of a single signal.
type AnalyzeBandwidthInput struct {
	Width     int
	Height    int
	RefreshHz int

	// BitDepth defaults to 8 when zero.
	BitDepth int
	// Chroma defaults to 4:4:4 when empty.
	Chroma string
}

// IsCatalog reports whether the input selects the standard scenario catalog.
func (in AnalyzeBandwidthInput) IsCatalog() bool {
	return in.Width == 0 && in.Height == 0 && in.RefreshHz == 0
}

// AnalyzeBandwidthOutput holds either the single-signal result or the
// catalog matrix, never both.
type AnalyzeBandwidthOutput struct {
	// Single is set for a single-signal analysis.
	Single *entity.BandwidthResult

	// Scenarios is set for a catalog analysis, in catalog order.
	Scenarios []entity.BandwidthResult
}

// Execute runs the analysis. Malformed single-signal input surfaces the
// calculator's invalid-argument error unchanged.
func (uc *AnalyzeBandwidthUseCase) Execute(_ context.Context, input AnalyzeBandwidthInput) (*AnalyzeBandwidthOutput, error) {
	if input.IsCatalog() {
		record, err := capability.AnalyzeScenarios(capability.StandardScenarios())
		if err != nil {
			return nil, err
		}
		details := record.Details.(entity.BandwidthDetails)
		return &AnalyzeBandwidthOutput{Scenarios: details.BandwidthTests}, nil
	}

	bitDepth := input.BitDepth
	if bitDepth == 0 {
		bitDepth = capability.DefaultBitDepth
	}
	chroma := input.Chroma
	if chroma == "" {
		chroma = capability.DefaultChroma
	}

	gbps, err := capability.ComputeBandwidthGbps(input.Width, input.Height, input.RefreshHz, bitDepth, chroma)
	if err != nil {
		return nil, err
	}

	return &AnalyzeBandwidthOutput{
		Single: &entity.BandwidthResult{
			Scenario:            fmt.Sprintf("%dx%d@%dHz", input.Width, input.Height, input.RefreshHz),
			BandwidthGbps:       gbps,
			CompatibleRevisions: capability.CompatibleRevisions(gbps),
		},
	}, nil
}
