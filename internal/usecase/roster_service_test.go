package usecase

import (
	"context"
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

func TestRosterService_ListLotteryUsers(t *testing.T) {
	mockData := new(MockLotteryDataRepository)
	mockIdentity := new(MockIdentityRepository)
	service := NewRosterService(mockData, mockIdentity, zap.NewNop())

	since := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)

	// user-2 appears in both tables and must be listed once
	mockData.On("ActiveEntryUserIDs", mock.Anything).Return([]string{"user-1", "user-2"}, nil)
	mockData.On("ActiveSubscriberUserIDs", mock.Anything).Return([]string{"user-2", "user-3"}, nil)

	for _, id := range []string{"user-1", "user-2", "user-3"} {
		mockIdentity.On("GetUserByID", mock.Anything, id).
			Return(&repository.Identity{ID: id, Email: id + "@club.example", CreatedAt: since}, nil)
	}
	mockData.On("CountActiveEntries", mock.Anything, "user-1").Return(int64(2), nil)
	mockData.On("CountActiveEntries", mock.Anything, "user-2").Return(int64(5), nil)
	mockData.On("CountActiveEntries", mock.Anything, "user-3").Return(int64(0), nil)
	mockData.On("ActiveSubscriptionSince", mock.Anything, "user-1").Return(nil, nil)
	mockData.On("ActiveSubscriptionSince", mock.Anything, "user-2").Return(&since, nil)
	mockData.On("ActiveSubscriptionSince", mock.Anything, "user-3").Return(&since, nil)

	roster, err := service.ListLotteryUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, roster, 3)

	// Insertion order: entry users first, then new subscribers
	assert.Equal(t, "user-1", roster[0].ID)
	assert.Equal(t, "user-2", roster[1].ID)
	assert.Equal(t, "user-3", roster[2].ID)

	assert.Equal(t, int64(2), roster[0].EntriesCount)
	assert.False(t, roster[0].HasActiveSubscription)
	assert.Nil(t, roster[0].SubscriptionSince)

	assert.Equal(t, int64(5), roster[1].EntriesCount)
	assert.True(t, roster[1].HasActiveSubscription)
	assert.Equal(t, &since, roster[1].SubscriptionSince)

	assert.Equal(t, "user-2@club.example", roster[1].Email)
}

func TestRosterService_ListLotteryUsers_SkipsFailedLookups(t *testing.T) {
	mockData := new(MockLotteryDataRepository)
	mockIdentity := new(MockIdentityRepository)
	service := NewRosterService(mockData, mockIdentity, zap.NewNop())

	mockData.On("ActiveEntryUserIDs", mock.Anything).Return([]string{"user-1", "user-2"}, nil)
	mockData.On("ActiveSubscriberUserIDs", mock.Anything).Return([]string{}, nil)

	mockIdentity.On("GetUserByID", mock.Anything, "user-1").
		Return(nil, errors.New("user not found"))
	mockIdentity.On("GetUserByID", mock.Anything, "user-2").
		Return(&repository.Identity{ID: "user-2", Email: "user-2@club.example"}, nil)
	mockData.On("CountActiveEntries", mock.Anything, "user-2").Return(int64(1), nil)
	mockData.On("ActiveSubscriptionSince", mock.Anything, "user-2").Return(nil, nil)

	roster, err := service.ListLotteryUsers(context.Background())
	require.NoError(t, err)

	// The failing id is dropped, the rest of the roster survives
	require.Len(t, roster, 1)
	assert.Equal(t, "user-2", roster[0].ID)
}

func TestRosterService_ListLotteryUsers_SourceFailure(t *testing.T) {
	t.Run("entry ids unreadable", func(t *testing.T) {
		mockData := new(MockLotteryDataRepository)
		service := NewRosterService(mockData, new(MockIdentityRepository), zap.NewNop())

		mockData.On("ActiveEntryUserIDs", mock.Anything).Return(nil, errors.New("relation missing"))

		_, err := service.ListLotteryUsers(context.Background())
		assert.Error(t, err)
		assert.Equal(t, domainErrors.ErrTypeUpstream, domainErrors.TypeOf(err))
	})

	t.Run("subscriber ids unreadable", func(t *testing.T) {
		mockData := new(MockLotteryDataRepository)
		service := NewRosterService(mockData, new(MockIdentityRepository), zap.NewNop())

		mockData.On("ActiveEntryUserIDs", mock.Anything).Return([]string{"user-1"}, nil)
		mockData.On("ActiveSubscriberUserIDs", mock.Anything).Return(nil, errors.New("relation missing"))

		_, err := service.ListLotteryUsers(context.Background())
		assert.Error(t, err)
		assert.Equal(t, domainErrors.ErrTypeUpstream, domainErrors.TypeOf(err))
	})
}

func TestRosterService_ListLotteryUsers_Empty(t *testing.T) {
	mockData := new(MockLotteryDataRepository)
	service := NewRosterService(mockData, new(MockIdentityRepository), zap.NewNop())

	mockData.On("ActiveEntryUserIDs", mock.Anything).Return([]string{}, nil)
	mockData.On("ActiveSubscriberUserIDs", mock.Anything).Return([]string{}, nil)

	roster, err := service.ListLotteryUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, roster)
}
