package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/hdmiprobe/internal/application/port"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
	"github.com/bnema/hdmiprobe/internal/logging"
)

// DetectDisplaysUseCase fetches the connected display snapshot and the raw
// mode catalog for direct inspection, outside a full test run.
type DetectDisplaysUseCase struct {
	enumerator port.DisplayEnumerator
}

// NewDetectDisplaysUseCase creates a new use case.
func NewDetectDisplaysUseCase(enumerator port.DisplayEnumerator) *DetectDisplaysUseCase {
	return &DetectDisplaysUseCase{enumerator: enumerator}
}

// DetectDisplaysInput contains options for detection.
type DetectDisplaysInput struct {
	// IncludeModes also fetches the available mode catalog.
	IncludeModes bool
}

// DetectDisplaysOutput contains the detection results.
type DetectDisplaysOutput struct {
	Displays []entity.DisplayIdentity
	Modes    []entity.DisplayMode
}

// Execute queries the enumerator. Unlike the full suite, failures here are
// surfaced directly: the caller asked for exactly this data.
func (uc *DetectDisplaysUseCase) Execute(ctx context.Context, input DetectDisplaysInput) (*DetectDisplaysOutput, error) {
	log := logging.FromContext(ctx).With().Str("component", "detect").Logger()

	displays, err := uc.enumerator.ListConnectedDisplays(ctx)
	if err != nil {
		return nil, fmt.Errorf("list connected displays: %w", err)
	}

	out := &DetectDisplaysOutput{Displays: displays}
	if input.IncludeModes {
		modes, err := uc.enumerator.ListAvailableModes(ctx)
		if err != nil {
			return nil, fmt.Errorf("list available modes: %w", err)
		}
		out.Modes = modes
	}

	log.Debug().Int("displays", len(out.Displays)).Int("modes", len(out.Modes)).Msg("detection complete")
	return out, nil
}
