package capability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hdmiprobe/internal/domain/capability"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
)

// sequencePoll returns the scripted counts in order; an entry below zero
// simulates a poll failure.
func sequencePoll(counts ...int) capability.PollFunc {
	i := 0
	return func(context.Context) (int, error) {
		if i >= len(counts) {
			return 0, errors.New("poll script exhausted")
		}
		c := counts[i]
		i++
		if c < 0 {
			return 0, errors.New("simulated poll failure")
		}
		return c, nil
	}
}

func fastSampler() *capability.Sampler {
	return &capability.Sampler{Interval: time.Millisecond}
}

func TestSampler_DisconnectionFailsRun(t *testing.T) {
	record, err := fastSampler().Sample(context.Background(), 3, sequencePoll(1, 1, 0))
	require.NoError(t, err)

	assert.Equal(t, entity.TestNameStability, record.TestName)
	assert.False(t, record.Passed, "a zero-count sample must fail the run")

	details, ok := record.Details.(entity.StabilityDetails)
	require.True(t, ok)
	assert.Equal(t, 3, details.DurationSeconds)
	require.Len(t, details.Samples, 3)

	assert.Equal(t, entity.ConnectedSample(1, 1), details.Samples[0])
	assert.Equal(t, entity.ConnectedSample(2, 1), details.Samples[1])
	assert.Equal(t, entity.ConnectedSample(3, 0), details.Samples[2])
	assert.False(t, details.Samples[2].IsStable())
}

func TestSampler_AllStablePasses(t *testing.T) {
	record, err := fastSampler().Sample(context.Background(), 4, sequencePoll(2, 2, 1, 2))
	require.NoError(t, err)
	assert.True(t, record.Passed)

	details := record.Details.(entity.StabilityDetails)
	require.Len(t, details.Samples, 4)
	for _, s := range details.Samples {
		assert.True(t, s.IsStable())
	}
}

func TestSampler_PollFailureDoesNotFailRun(t *testing.T) {
	record, err := fastSampler().Sample(context.Background(), 3, sequencePoll(1, -1, 1))
	require.NoError(t, err)
	assert.True(t, record.Passed, "error samples alone never flip the verdict")

	details := record.Details.(entity.StabilityDetails)
	require.Len(t, details.Samples, 3)

	errSample := details.Samples[1]
	assert.Equal(t, 2, errSample.TimeIndex)
	assert.Nil(t, errSample.DisplaysConnected)
	assert.Nil(t, errSample.Stable)
	assert.Equal(t, "simulated poll failure", errSample.Error)
}

func TestSampler_CancellationPreservesPartials(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	polls := 0
	poll := func(context.Context) (int, error) {
		polls++
		if polls == 2 {
			cancel()
		}
		return 1, nil
	}

	sampler := &capability.Sampler{Interval: 50 * time.Millisecond}
	record, err := sampler.Sample(ctx, 10, poll)
	require.ErrorIs(t, err, context.Canceled)

	details := record.Details.(entity.StabilityDetails)
	assert.Len(t, details.Samples, 2, "samples up to the cancellation point are kept")
	assert.True(t, record.Passed)
}

func TestSampler_PollTimeoutBoundsSlowPolls(t *testing.T) {
	calls := 0
	poll := func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			<-ctx.Done()
			return 0, ctx.Err()
		}
		return 1, nil
	}

	sampler := &capability.Sampler{Interval: time.Millisecond, PollTimeout: 5 * time.Millisecond}
	record, err := sampler.Sample(context.Background(), 2, poll)
	require.NoError(t, err)
	assert.True(t, record.Passed, "a timed-out poll is an error sample, not a failure")

	details := record.Details.(entity.StabilityDetails)
	require.Len(t, details.Samples, 2)
	assert.Equal(t, context.DeadlineExceeded.Error(), details.Samples[0].Error)
	assert.True(t, details.Samples[1].IsStable())
}

func TestSampler_InvalidDuration(t *testing.T) {
	_, err := fastSampler().Sample(context.Background(), 0, sequencePoll(1))
	require.ErrorIs(t, err, capability.ErrInvalidArgument)

	_, err = fastSampler().Sample(context.Background(), -5, sequencePoll(1))
	require.ErrorIs(t, err, capability.ErrInvalidArgument)

	_, err = fastSampler().Sample(context.Background(), 3, nil)
	require.ErrorIs(t, err, capability.ErrInvalidArgument)
}

func TestSampler_OneBasedTimeIndex(t *testing.T) {
	record, err := fastSampler().Sample(context.Background(), 2, sequencePoll(1, 1))
	require.NoError(t, err)

	details := record.Details.(entity.StabilityDetails)
	require.Len(t, details.Samples, 2)
	assert.Equal(t, 1, details.Samples[0].TimeIndex)
	assert.Equal(t, 2, details.Samples[1].TimeIndex)
}

func TestNewSampler_ProductionInterval(t *testing.T) {
	assert.Equal(t, time.Second, capability.NewSampler().Interval)
}
