// Package usecase contains application business logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/hdmiprobe/internal/application/port"
	"github.com/bnema/hdmiprobe/internal/domain/capability"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
	"github.com/bnema/hdmiprobe/internal/logging"
)

// RunCapabilitySuiteUseCase runs the full test sequence: display detection,
// resolution and refresh-rate probing, bandwidth analysis, optional stability
// sampling, then the overall quality verdict. The aggregate is threaded
// through the run explicitly; there is no shared state between runs.
type RunCapabilitySuiteUseCase struct {
	enumerator port.DisplayEnumerator
	surveyor   port.SystemSurveyor
	sampler    *capability.Sampler
}

// NewRunCapabilitySuiteUseCase creates a new use case.
func NewRunCapabilitySuiteUseCase(
	enumerator port.DisplayEnumerator,
	surveyor port.SystemSurveyor,
	sampler *capability.Sampler,
) *RunCapabilitySuiteUseCase {
	return &RunCapabilitySuiteUseCase{
		enumerator: enumerator,
		surveyor:   surveyor,
		sampler:    sampler,
	}
}

// RunCapabilitySuiteInput contains options for the full test run.
type RunCapabilitySuiteInput struct {
	// StabilityDuration is the stability sample count in seconds.
	// Zero or negative uses the default.
	StabilityDuration int

	// SkipStability omits the timed stability test entirely.
	SkipStability bool

	// Progress, when set, is called once per stability poll with the 1-based
	// tick and the total tick count. Used for live progress rendering.
	Progress func(tick, total int)
}

// RunCapabilitySuiteOutput contains the finalized report.
type RunCapabilitySuiteOutput struct {
	Report entity.ResultAggregate
}

// Execute runs every test in sequence and finalizes the aggregate. A failing
// or absent display collaborator degrades the affected tests to empty inputs
// and attaches a warning; it never aborts the run. When ctx is cancelled
// during stability sampling the partial record is kept, the verdict is still
// computed, and the output is returned alongside the context error.
func (uc *RunCapabilitySuiteUseCase) Execute(ctx context.Context, input RunCapabilitySuiteInput) (*RunCapabilitySuiteOutput, error) {
	log := logging.FromContext(ctx).With().Str("component", "suite").Logger()

	info := uc.surveyor.Survey(ctx)
	agg := entity.NewResultAggregate(info.Platform, info.OSVersion)
	if info.WSL {
		agg.AddWarning("running in WSL: display detection may be limited")
	}

	displays, err := uc.enumerator.ListConnectedDisplays(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("display enumeration unavailable")
		agg.AddWarning(fmt.Sprintf("display enumeration unavailable: %v", err))
		displays = nil
	}
	agg.SetDisplays(displays)
	log.Debug().Int("displays", len(displays)).Msg("display detection complete")

	modes, err := uc.enumerator.ListAvailableModes(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("mode enumeration unavailable")
		agg.AddWarning(fmt.Sprintf("mode enumeration unavailable: %v", err))
		modes = nil
	}

	agg.AppendTest(capability.EvaluateResolutions(modes, capability.StandardResolutions()))
	agg.AppendTest(capability.EvaluateRefreshRates(modes, capability.StandardRefreshRates()))

	bandwidth, err := capability.AnalyzeScenarios(capability.StandardScenarios())
	if err != nil {
		return nil, fmt.Errorf("bandwidth analysis: %w", err)
	}
	agg.AppendTest(bandwidth)

	if !input.SkipStability {
		duration := input.StabilityDuration
		if duration <= 0 {
			duration = capability.DefaultStabilityDuration
		}

		record, sampleErr := uc.sampler.Sample(ctx, duration, pollConnected(uc.enumerator, input.Progress, duration))
		if sampleErr != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("stability sampling: %w", sampleErr)
		}
		agg.AppendTest(record)

		if sampleErr != nil {
			// Cancelled mid-sampling: finalize what we have and surface the
			// interruption to the caller.
			agg.OverallQuality = capability.AggregateQuality(agg.Tests)
			log.Warn().Err(sampleErr).Msg("stability sampling interrupted")
			return &RunCapabilitySuiteOutput{Report: *agg}, sampleErr
		}
	}

	agg.OverallQuality = capability.AggregateQuality(agg.Tests)
	log.Info().
		Int("tests", len(agg.Tests)).
		Str("quality", string(agg.OverallQuality)).
		Msg("capability suite complete")

	return &RunCapabilitySuiteOutput{Report: *agg}, nil
}

// pollConnected adapts the enumerator's connected-display count to the
// sampler's poll contract, reporting tick progress along the way.
func pollConnected(enumerator port.DisplayEnumerator, progress func(tick, total int), total int) capability.PollFunc {
	tick := 0
	return func(ctx context.Context) (int, error) {
		tick++
		if progress != nil {
			progress(tick, total)
		}
		return enumerator.CountConnected(ctx)
	}
}
