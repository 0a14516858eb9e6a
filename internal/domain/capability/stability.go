package capability

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

// PollFunc reports the number of currently connected displays.
type PollFunc func(ctx context.Context) (int, error)

// DefaultStabilityDuration is the number of one-second samples taken when the
// caller does not override it.
const DefaultStabilityDuration = 10

// Sampler runs the timed signal stability loop. This is the only part of the
// engine with a time dimension.
type Sampler struct {
	// Interval between samples. One second in production; tests shorten it.
	Interval time.Duration

	// PollTimeout bounds each individual poll call. Zero leaves polls
	// bounded only by the caller's context.
	PollTimeout time.Duration
}

// NewSampler returns a sampler with the production one-second interval.
func NewSampler() *Sampler {
	return &Sampler{Interval: time.Second}
}

// Sample polls once per tick, durationSeconds times, recording one sample per
// tick. A failed poll becomes an error sample and sampling continues; the run
// only fails when a sample observes zero connected displays.
//
// Cancelling ctx stops the loop early. The returned record then holds the
// samples collected up to that point alongside the context error.
func (s *Sampler) Sample(ctx context.Context, durationSeconds int, poll PollFunc) (entity.TestRecord, error) {
	if durationSeconds <= 0 {
		return entity.TestRecord{}, fmt.Errorf("%w: duration %d must be positive", ErrInvalidArgument, durationSeconds)
	}
	if poll == nil {
		return entity.TestRecord{}, fmt.Errorf("%w: poll function is required", ErrInvalidArgument)
	}

	interval := s.Interval
	if interval <= 0 {
		interval = time.Second
	}

	details := entity.StabilityDetails{
		DurationSeconds: durationSeconds,
		Samples:         make([]entity.StabilitySample, 0, durationSeconds),
	}
	passed := true

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for tick := 1; tick <= durationSeconds; tick++ {
		if err := ctx.Err(); err != nil {
			return entity.NewTestRecord(entity.TestNameStability, passed, details), err
		}

		count, err := s.pollOnce(ctx, poll)
		if err != nil {
			details.Samples = append(details.Samples, entity.ErrorSample(tick, err))
		} else {
			details.Samples = append(details.Samples, entity.ConnectedSample(tick, count))
			if count == 0 {
				passed = false
			}
		}

		if tick == durationSeconds {
			break
		}
		select {
		case <-ctx.Done():
			return entity.NewTestRecord(entity.TestNameStability, passed, details), ctx.Err()
		case <-ticker.C:
		}
	}

	return entity.NewTestRecord(entity.TestNameStability, passed, details), nil
}

// pollOnce runs a single poll under the per-poll timeout. A timed-out poll
// surfaces as an ordinary poll error, so the run records an error sample and
// keeps going instead of stalling on a hung backend.
func (s *Sampler) pollOnce(ctx context.Context, poll PollFunc) (int, error) {
	if s.PollTimeout <= 0 {
		return poll(ctx)
	}
	pollCtx, cancel := context.WithTimeout(ctx, s.PollTimeout)
	defer cancel()
	return poll(pollCtx)
}
