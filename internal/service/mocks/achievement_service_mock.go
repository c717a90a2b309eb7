package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockAchievementService is a mock type for the AchievementService type
type MockAchievementService struct {
	mock.Mock
}

// CreateAchievement provides a mock function with given fields: ctx, input
func (_m *MockAchievementService) CreateAchievement(ctx context.Context, input *models.CreateAchievementInput) (int, error) {
	ret := _m.Called(ctx, input)
	return ret.Get(0).(int), ret.Error(1)
}

// GetAchievement provides a mock function with given fields: ctx, id
func (_m *MockAchievementService) GetAchievement(ctx context.Context, id int) (*models.Achievement, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Achievement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Achievement)
	}

	return r0, ret.Error(1)
}

// ListAchievements provides a mock function with given fields: ctx, activeOnly, page, limit
func (_m *MockAchievementService) ListAchievements(ctx context.Context, activeOnly bool, page int, limit int) ([]models.Achievement, int, error) {
	ret := _m.Called(ctx, activeOnly, page, limit)

	var r0 []models.Achievement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Achievement)
	}

	return r0, ret.Get(1).(int), ret.Error(2)
}

// UpdateAchievement provides a mock function with given fields: ctx, id, input
func (_m *MockAchievementService) UpdateAchievement(ctx context.Context, id int, input *models.UpdateAchievementInput) error {
	ret := _m.Called(ctx, id, input)
	return ret.Error(0)
}

// DeleteAchievement provides a mock function with given fields: ctx, id
func (_m *MockAchievementService) DeleteAchievement(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// EvaluateTx provides a mock function with given fields: ctx, tx, userID, level, totalEarned
func (_m *MockAchievementService) EvaluateTx(ctx context.Context, tx pgx.Tx, userID int64, level int, totalEarned int) ([]models.AchievementUnlock, error) {
	ret := _m.Called(ctx, tx, userID, level, totalEarned)

	var r0 []models.AchievementUnlock
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.AchievementUnlock)
	}

	return r0, ret.Error(1)
}

// ListForUser provides a mock function with given fields: ctx, userID, page, limit
func (_m *MockAchievementService) ListForUser(ctx context.Context, userID int64, page int, limit int) ([]models.UserAchievement, int, error) {
	ret := _m.Called(ctx, userID, page, limit)

	var r0 []models.UserAchievement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.UserAchievement)
	}

	return r0, ret.Get(1).(int), ret.Error(2)
}

// NewMockAchievementService creates a new instance of MockAchievementService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAchievementService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAchievementService {
	mock := &MockAchievementService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
