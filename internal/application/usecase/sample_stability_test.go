package usecase_test

import (
	"context"
	"testing"
	"time"

	portmocks "github.com/bnema/hdmiprobe/internal/application/port/mocks"
	"github.com/bnema/hdmiprobe/internal/application/usecase"
	"github.com/bnema/hdmiprobe/internal/domain/capability"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSampleStabilityUseCase_Execute_StableRun(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enumerator := portmocks.NewMockDisplayEnumerator(ctrl)
	enumerator.EXPECT().CountConnected(gomock.Any()).Return(2, nil).Times(3)

	uc := usecase.NewSampleStabilityUseCase(enumerator, fastSampler())
	output, err := uc.Execute(ctx, usecase.SampleStabilityInput{DurationSeconds: 3})
	require.NoError(t, err)

	record := output.Record
	assert.Equal(t, entity.TestNameStability, record.TestName)
	assert.True(t, record.Passed)

	details, ok := record.Details.(entity.StabilityDetails)
	require.True(t, ok)
	assert.Equal(t, 3, details.DurationSeconds)
	require.Len(t, details.Samples, 3)
	for i, sample := range details.Samples {
		assert.Equal(t, i+1, sample.TimeIndex)
		require.NotNil(t, sample.DisplaysConnected)
		assert.Equal(t, 2, *sample.DisplaysConnected)
		assert.True(t, sample.IsStable())
	}
}

func TestSampleStabilityUseCase_Execute_DefaultDuration(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enumerator := portmocks.NewMockDisplayEnumerator(ctrl)
	enumerator.EXPECT().CountConnected(gomock.Any()).Return(1, nil).Times(capability.DefaultStabilityDuration)

	uc := usecase.NewSampleStabilityUseCase(enumerator, fastSampler())
	output, err := uc.Execute(ctx, usecase.SampleStabilityInput{})
	require.NoError(t, err)

	details, ok := output.Record.Details.(entity.StabilityDetails)
	require.True(t, ok)
	assert.Len(t, details.Samples, capability.DefaultStabilityDuration)
}

func TestSampleStabilityUseCase_Execute_CancellationReturnsPartialRecord(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	polls := 0
	enumerator := portmocks.NewMockDisplayEnumerator(ctrl)
	enumerator.EXPECT().CountConnected(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		polls++
		if polls == 2 {
			cancel()
		}
		return 1, nil
	}).AnyTimes()

	sampler := &capability.Sampler{Interval: 50 * time.Millisecond}
	uc := usecase.NewSampleStabilityUseCase(enumerator, sampler)
	output, err := uc.Execute(ctx, usecase.SampleStabilityInput{DurationSeconds: 8})
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, output)

	details, ok := output.Record.Details.(entity.StabilityDetails)
	require.True(t, ok)
	assert.Len(t, details.Samples, 2)
}
