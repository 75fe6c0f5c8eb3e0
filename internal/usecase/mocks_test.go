package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/goldenclub/lottery-service/internal/domain/model"
	"github.com/goldenclub/lottery-service/internal/domain/repository"
)

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetValue(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsRepository) GetValues(ctx context.Context, keys []string) (map[string]string, error) {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

// MockIdentityRepository is a mock implementation of IdentityRepository
type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) GetUserByToken(ctx context.Context, token string) (*repository.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Identity), args.Error(1)
}

func (m *MockIdentityRepository) GetUserByID(ctx context.Context, userID string) (*repository.Identity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Identity), args.Error(1)
}

func (m *MockIdentityRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockPaymentGateway is a mock implementation of PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) FindCustomerByEmail(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) CreateSubscriptionCheckout(ctx context.Context, spec repository.CheckoutSessionSpec) (string, error) {
	args := m.Called(ctx, spec)
	return args.String(0), args.Error(1)
}

// MockDrawConductor is a mock implementation of DrawConductor
type MockDrawConductor struct {
	mock.Mock
}

func (m *MockDrawConductor) ConductDraw(ctx context.Context, params repository.DrawParams) (json.RawMessage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// MockLotteryDataRepository is a mock implementation of LotteryDataRepository
type MockLotteryDataRepository struct {
	mock.Mock
}

func (m *MockLotteryDataRepository) DeleteEntries(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockLotteryDataRepository) DeleteSubscriptions(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockLotteryDataRepository) DeleteResults(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockLotteryDataRepository) DeleteRoles(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockLotteryDataRepository) ActiveEntryUserIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLotteryDataRepository) ActiveSubscriberUserIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLotteryDataRepository) CountActiveEntries(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLotteryDataRepository) ActiveSubscriptionSince(ctx context.Context, userID string) (*time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockLotteryDataRepository) CreateEntry(ctx context.Context, entry *model.LotteryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLotteryDataRepository) CreateSubscription(ctx context.Context, sub *model.LotterySubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockLotteryDataRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}
