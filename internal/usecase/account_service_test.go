package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/goldenclub/lottery-service/internal/domain/errors"
	"go.uber.org/zap"
)

func TestAccountService_DeleteUserAndData(t *testing.T) {
	mockData := new(MockLotteryDataRepository)
	mockIdentity := new(MockIdentityRepository)
	service := NewAccountService(mockData, mockIdentity, zap.NewNop())

	mockData.On("DeleteEntries", mock.Anything, "user-1").Return(nil)
	mockData.On("DeleteSubscriptions", mock.Anything, "user-1").Return(nil)
	mockData.On("DeleteResults", mock.Anything, "user-1").Return(nil)
	mockData.On("DeleteRoles", mock.Anything, "user-1").Return(nil)
	mockIdentity.On("DeleteUser", mock.Anything, "user-1").Return(nil)

	report, err := service.DeleteUserAndData(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", report.UserID)
	assert.True(t, report.IdentityDeleted)
	require.Len(t, report.Steps, 4)

	// Strict cascade order
	assert.Equal(t, "lottery_entries", report.Steps[0].Table)
	assert.Equal(t, "lottery_subscriptions", report.Steps[1].Table)
	assert.Equal(t, "lottery_results", report.Steps[2].Table)
	assert.Equal(t, "user_roles", report.Steps[3].Table)
	for _, step := range report.Steps {
		assert.True(t, step.Deleted)
		assert.Empty(t, step.Error)
	}
}

func TestAccountService_DeleteUserAndData_StepFailureContinues(t *testing.T) {
	mockData := new(MockLotteryDataRepository)
	mockIdentity := new(MockIdentityRepository)
	service := NewAccountService(mockData, mockIdentity, zap.NewNop())

	mockData.On("DeleteEntries", mock.Anything, "user-1").Return(nil)
	mockData.On("DeleteSubscriptions", mock.Anything, "user-1").Return(errors.New("deadlock detected"))
	mockData.On("DeleteResults", mock.Anything, "user-1").Return(nil)
	mockData.On("DeleteRoles", mock.Anything, "user-1").Return(nil)
	mockIdentity.On("DeleteUser", mock.Anything, "user-1").Return(nil)

	report, err := service.DeleteUserAndData(context.Background(), "user-1")
	require.NoError(t, err)

	// Every table after the failing one is still attempted
	mockData.AssertExpectations(t)
	mockIdentity.AssertExpectations(t)

	assert.True(t, report.IdentityDeleted)
	assert.False(t, report.Steps[1].Deleted)
	assert.Contains(t, report.Steps[1].Error, "deadlock")
	assert.True(t, report.Steps[2].Deleted)
	assert.True(t, report.Steps[3].Deleted)
}

func TestAccountService_DeleteUserAndData_IdentityFailureIsFatal(t *testing.T) {
	mockData := new(MockLotteryDataRepository)
	mockIdentity := new(MockIdentityRepository)
	service := NewAccountService(mockData, mockIdentity, zap.NewNop())

	mockData.On("DeleteEntries", mock.Anything, "user-1").Return(nil)
	mockData.On("DeleteSubscriptions", mock.Anything, "user-1").Return(nil)
	mockData.On("DeleteResults", mock.Anything, "user-1").Return(nil)
	mockData.On("DeleteRoles", mock.Anything, "user-1").Return(nil)
	mockIdentity.On("DeleteUser", mock.Anything, "user-1").Return(errors.New("admin api: 500"))

	report, err := service.DeleteUserAndData(context.Background(), "user-1")
	assert.Error(t, err)
	assert.Equal(t, domainErrors.ErrTypeUpstream, domainErrors.TypeOf(err))

	// The partial report is still returned so the caller sees what happened
	require.NotNil(t, report)
	assert.False(t, report.IdentityDeleted)
	require.Len(t, report.Steps, 4)
}

func TestAccountService_DeleteUserAndData_EmptyUserID(t *testing.T) {
	mockData := new(MockLotteryDataRepository)
	mockIdentity := new(MockIdentityRepository)
	service := NewAccountService(mockData, mockIdentity, zap.NewNop())

	report, err := service.DeleteUserAndData(context.Background(), "")
	assert.Error(t, err)
	assert.Nil(t, report)
	assert.Equal(t, domainErrors.ErrTypeValidation, domainErrors.TypeOf(err))
	mockData.AssertNotCalled(t, "DeleteEntries", mock.Anything, mock.Anything)
	mockIdentity.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}
