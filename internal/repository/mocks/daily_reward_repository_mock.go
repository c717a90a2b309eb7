package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockDailyRewardRepository is a mock type for the DailyRewardRepository type
type MockDailyRewardRepository struct {
	mock.Mock
}

// CreateTier provides a mock function with given fields: ctx, tier
func (_m *MockDailyRewardRepository) CreateTier(ctx context.Context, tier *models.DailyRewardTier) (int, error) {
	ret := _m.Called(ctx, tier)
	return ret.Get(0).(int), ret.Error(1)
}

// GetTierByID provides a mock function with given fields: ctx, id
func (_m *MockDailyRewardRepository) GetTierByID(ctx context.Context, id int) (*models.DailyRewardTier, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.DailyRewardTier
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.DailyRewardTier)
	}

	return r0, ret.Error(1)
}

// ListTiers provides a mock function with given fields: ctx, activeOnly
func (_m *MockDailyRewardRepository) ListTiers(ctx context.Context, activeOnly bool) ([]models.DailyRewardTier, error) {
	ret := _m.Called(ctx, activeOnly)

	var r0 []models.DailyRewardTier
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.DailyRewardTier)
	}

	return r0, ret.Error(1)
}

// UpdateTier provides a mock function with given fields: ctx, id, input
func (_m *MockDailyRewardRepository) UpdateTier(ctx context.Context, id int, input *models.UpdateRewardTierInput) error {
	ret := _m.Called(ctx, id, input)
	return ret.Error(0)
}

// DeleteTier provides a mock function with given fields: ctx, id
func (_m *MockDailyRewardRepository) DeleteTier(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// ListActiveTiersTx provides a mock function with given fields: ctx, tx
func (_m *MockDailyRewardRepository) ListActiveTiersTx(ctx context.Context, tx pgx.Tx) ([]models.DailyRewardTier, error) {
	ret := _m.Called(ctx, tx)

	var r0 []models.DailyRewardTier
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.DailyRewardTier)
	}

	return r0, ret.Error(1)
}

// GetStreakForUpdateTx provides a mock function with given fields: ctx, tx, userID
func (_m *MockDailyRewardRepository) GetStreakForUpdateTx(ctx context.Context, tx pgx.Tx, userID int64) (*models.DailyStreak, error) {
	ret := _m.Called(ctx, tx, userID)

	var r0 *models.DailyStreak
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.DailyStreak)
	}

	return r0, ret.Error(1)
}

// SaveStreakTx provides a mock function with given fields: ctx, tx, s
func (_m *MockDailyRewardRepository) SaveStreakTx(ctx context.Context, tx pgx.Tx, s *models.DailyStreak) error {
	ret := _m.Called(ctx, tx, s)
	return ret.Error(0)
}

// GetStreak provides a mock function with given fields: ctx, userID
func (_m *MockDailyRewardRepository) GetStreak(ctx context.Context, userID int64) (*models.DailyStreak, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.DailyStreak
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.DailyStreak)
	}

	return r0, ret.Error(1)
}

// GetStreakTx provides a mock function with given fields: ctx, tx, userID
func (_m *MockDailyRewardRepository) GetStreakTx(ctx context.Context, tx pgx.Tx, userID int64) (*models.DailyStreak, error) {
	ret := _m.Called(ctx, tx, userID)

	var r0 *models.DailyStreak
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.DailyStreak)
	}

	return r0, ret.Error(1)
}

// NewMockDailyRewardRepository creates a new instance of MockDailyRewardRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDailyRewardRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDailyRewardRepository {
	mock := &MockDailyRewardRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
