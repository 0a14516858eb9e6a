package usecase_test

import (
	"testing"

	portmocks "github.com/bnema/hdmiprobe/internal/application/port/mocks"
	"github.com/bnema/hdmiprobe/internal/application/usecase"
	"github.com/bnema/hdmiprobe/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDetectDisplaysUseCase_Execute_ListsDisplays(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	displays := []entity.DisplayIdentity{
		{Manufacturer: "GSM", FriendlyName: "LG HDR 4K", IsPrimary: true},
		{Manufacturer: "DEL", ProductCode: "A0F5"},
	}

	enumerator := portmocks.NewMockDisplayEnumerator(ctrl)
	enumerator.EXPECT().ListConnectedDisplays(gomock.Any()).Return(displays, nil)

	uc := usecase.NewDetectDisplaysUseCase(enumerator)
	output, err := uc.Execute(ctx, usecase.DetectDisplaysInput{})
	require.NoError(t, err)
	assert.Equal(t, displays, output.Displays)
	assert.Empty(t, output.Modes)
}

func TestDetectDisplaysUseCase_Execute_IncludesModes(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enumerator := portmocks.NewMockDisplayEnumerator(ctrl)
	enumerator.EXPECT().ListConnectedDisplays(gomock.Any()).Return(nil, nil)
	enumerator.EXPECT().ListAvailableModes(gomock.Any()).Return(testModes(), nil)

	uc := usecase.NewDetectDisplaysUseCase(enumerator)
	output, err := uc.Execute(ctx, usecase.DetectDisplaysInput{IncludeModes: true})
	require.NoError(t, err)
	assert.Len(t, output.Modes, 3)
}

func TestDetectDisplaysUseCase_Execute_SurfacesDetectionError(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enumerator := portmocks.NewMockDisplayEnumerator(ctrl)
	enumerator.EXPECT().ListConnectedDisplays(gomock.Any()).Return(nil, assert.AnError)

	uc := usecase.NewDetectDisplaysUseCase(enumerator)
	output, err := uc.Execute(ctx, usecase.DetectDisplaysInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, output)
}
