package usecase

import (
	"context"

	"github.com/bnema/hdmiprobe/internal/application/port"
	"github.com/bnema/hdmiprobe/internal/domain/capability"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
	"github.com/bnema/hdmiprobe/internal/logging"
)

// SampleStabilityUseCase runs the standalone signal stability test.
type SampleStabilityUseCase struct {
	enumerator port.DisplayEnumerator
	sampler    *capability.Sampler
}

// NewSampleStabilityUseCase creates a new use case.
func NewSampleStabilityUseCase(enumerator port.DisplayEnumerator, sampler *capability.Sampler) *SampleStabilityUseCase {
	return &SampleStabilityUseCase{enumerator: enumerator, sampler: sampler}
}

// SampleStabilityInput contains options for the stability run.
type SampleStabilityInput struct {
	// DurationSeconds is the sample count; zero or negative uses the default.
	DurationSeconds int

	// Progress, when set, is called once per poll with the 1-based tick and
	// the total tick count.
	Progress func(tick, total int)
}

// SampleStabilityOutput contains the finished stability record.
type SampleStabilityOutput struct {
	Record entity.TestRecord
}

// Execute samples the connected display count once per second. On ctx
// cancellation the partial record is returned alongside the context error.
func (uc *SampleStabilityUseCase) Execute(ctx context.Context, input SampleStabilityInput) (*SampleStabilityOutput, error) {
	log := logging.FromContext(ctx).With().Str("component", "stability").Logger()

	duration := input.DurationSeconds
	if duration <= 0 {
		duration = capability.DefaultStabilityDuration
	}

	record, err := uc.sampler.Sample(ctx, duration, pollConnected(uc.enumerator, input.Progress, duration))
	if err != nil && ctx.Err() == nil {
		return nil, err
	}

	log.Info().Bool("passed", record.Passed).Int("duration", duration).Msg("stability sampling complete")
	return &SampleStabilityOutput{Record: record}, err
}
