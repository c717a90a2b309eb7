package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockDailyRewardService is a mock type for the DailyRewardService type
type MockDailyRewardService struct {
	mock.Mock
}

// CreateTier provides a mock function with given fields: ctx, input
func (_m *MockDailyRewardService) CreateTier(ctx context.Context, input *models.CreateRewardTierInput) (int, error) {
	ret := _m.Called(ctx, input)
	return ret.Get(0).(int), ret.Error(1)
}

// GetTier provides a mock function with given fields: ctx, id
func (_m *MockDailyRewardService) GetTier(ctx context.Context, id int) (*models.DailyRewardTier, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.DailyRewardTier
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.DailyRewardTier)
	}

	return r0, ret.Error(1)
}

// ListTiers provides a mock function with given fields: ctx, activeOnly
func (_m *MockDailyRewardService) ListTiers(ctx context.Context, activeOnly bool) ([]models.DailyRewardTier, error) {
	ret := _m.Called(ctx, activeOnly)

	var r0 []models.DailyRewardTier
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.DailyRewardTier)
	}

	return r0, ret.Error(1)
}

// UpdateTier provides a mock function with given fields: ctx, id, input
func (_m *MockDailyRewardService) UpdateTier(ctx context.Context, id int, input *models.UpdateRewardTierInput) error {
	ret := _m.Called(ctx, id, input)
	return ret.Error(0)
}

// DeleteTier provides a mock function with given fields: ctx, id
func (_m *MockDailyRewardService) DeleteTier(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// CanClaim provides a mock function with given fields: ctx, userID
func (_m *MockDailyRewardService) CanClaim(ctx context.Context, userID int64) (bool, *models.DailyStreak, error) {
	ret := _m.Called(ctx, userID)

	var r1 *models.DailyStreak
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*models.DailyStreak)
	}

	return ret.Get(0).(bool), r1, ret.Error(2)
}

// Claim provides a mock function with given fields: ctx, userID
func (_m *MockDailyRewardService) Claim(ctx context.Context, userID int64) (*models.DailyClaimResult, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.DailyClaimResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.DailyClaimResult)
	}

	return r0, ret.Error(1)
}

// NewMockDailyRewardService creates a new instance of MockDailyRewardService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDailyRewardService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDailyRewardService {
	mock := &MockDailyRewardService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
