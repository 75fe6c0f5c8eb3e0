package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/goldenclub/lottery-service/internal/domain/errors"
	"github.com/goldenclub/lottery-service/internal/domain/repository"
	"go.uber.org/zap"
)

func TestDrawService_TriggerLiveDraw(t *testing.T) {
	mockSettings := new(MockSettingsRepository)
	mockConductor := new(MockDrawConductor)
	service := NewDrawService(mockSettings, mockConductor, zap.NewNop())

	mockSettings.On("GetValues", mock.Anything, []string{SettingCurrentJackpot, SettingNextDrawDate}).
		Return(map[string]string{
			SettingCurrentJackpot: "250",
			SettingNextDrawDate:   "2025-03-31",
		}, nil)

	expected := json.RawMessage(`{"winning_numbers":[4,8,15,16,23,42]}`)
	mockConductor.On("ConductDraw", mock.Anything, repository.DrawParams{
		DrawDate:      "2025-03-31",
		JackpotAmount: 250,
		IsTestDraw:    false,
	}).Return(expected, nil)

	result, err := service.TriggerLiveDraw(context.Background())
	require.NoError(t, err)

	// Result passes through unmodified
	assert.Equal(t, expected, result)
	mockConductor.AssertExpectations(t)
}

func TestDrawService_TriggerLiveDraw_Defaults(t *testing.T) {
	mockSettings := new(MockSettingsRepository)
	mockConductor := new(MockDrawConductor)
	service := NewDrawService(mockSettings, mockConductor, zap.NewNop())
	service.now = fixedNow(time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC))

	// Neither key present
	mockSettings.On("GetValues", mock.Anything, mock.Anything).
		Return(map[string]string{}, nil)

	mockConductor.On("ConductDraw", mock.Anything, repository.DrawParams{
		DrawDate:      "2025-04-10",
		JackpotAmount: 100,
		IsTestDraw:    false,
	}).Return(json.RawMessage(`{}`), nil)

	_, err := service.TriggerLiveDraw(context.Background())
	require.NoError(t, err)
	mockConductor.AssertExpectations(t)
}

func TestDrawService_TriggerLiveDraw_SettingsUnreadable(t *testing.T) {
	mockSettings := new(MockSettingsRepository)
	mockConductor := new(MockDrawConductor)
	service := NewDrawService(mockSettings, mockConductor, zap.NewNop())

	mockSettings.On("GetValues", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := service.TriggerLiveDraw(context.Background())
	assert.Error(t, err)
	assert.Equal(t, domainErrors.ErrTypeConfiguration, domainErrors.TypeOf(err))

	// No fallback here: a real draw must not run on guessed settings
	mockConductor.AssertNotCalled(t, "ConductDraw", mock.Anything, mock.Anything)
}

func TestDrawService_TriggerLiveDraw_MalformedJackpot(t *testing.T) {
	mockSettings := new(MockSettingsRepository)
	mockConductor := new(MockDrawConductor)
	service := NewDrawService(mockSettings, mockConductor, zap.NewNop())

	mockSettings.On("GetValues", mock.Anything, mock.Anything).
		Return(map[string]string{
			SettingCurrentJackpot: "a lot",
			SettingNextDrawDate:   "2025-03-31",
		}, nil)

	_, err := service.TriggerLiveDraw(context.Background())
	assert.Error(t, err)
	assert.Equal(t, domainErrors.ErrTypeConfiguration, domainErrors.TypeOf(err))
	mockConductor.AssertNotCalled(t, "ConductDraw", mock.Anything, mock.Anything)
}

func TestDrawService_TriggerLiveDraw_ConductorFailure(t *testing.T) {
	mockSettings := new(MockSettingsRepository)
	mockConductor := new(MockDrawConductor)
	service := NewDrawService(mockSettings, mockConductor, zap.NewNop())

	mockSettings.On("GetValues", mock.Anything, mock.Anything).
		Return(map[string]string{
			SettingCurrentJackpot: "250",
			SettingNextDrawDate:   "2025-03-31",
		}, nil)
	mockConductor.On("ConductDraw", mock.Anything, mock.Anything).
		Return(nil, errors.New("rpc timed out"))

	_, err := service.TriggerLiveDraw(context.Background())
	assert.Error(t, err)
	assert.Equal(t, domainErrors.ErrTypeUpstream, domainErrors.TypeOf(err))
	assert.Contains(t, err.Error(), "rpc timed out")
}
