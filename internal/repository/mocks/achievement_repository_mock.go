package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/repository"
)

// MockAchievementRepository is a mock type for the AchievementRepository type
type MockAchievementRepository struct {
	mock.Mock
}

// CreateAchievement provides a mock function with given fields: ctx, a
func (_m *MockAchievementRepository) CreateAchievement(ctx context.Context, a *models.Achievement) (int, error) {
	ret := _m.Called(ctx, a)
	return ret.Get(0).(int), ret.Error(1)
}

// GetAchievementByID provides a mock function with given fields: ctx, id
func (_m *MockAchievementRepository) GetAchievementByID(ctx context.Context, id int) (*models.Achievement, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Achievement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Achievement)
	}

	return r0, ret.Error(1)
}

// ListAchievements provides a mock function with given fields: ctx, activeOnly, page, limit
func (_m *MockAchievementRepository) ListAchievements(ctx context.Context, activeOnly bool, page int, limit int) ([]models.Achievement, int, error) {
	ret := _m.Called(ctx, activeOnly, page, limit)

	var r0 []models.Achievement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Achievement)
	}

	return r0, ret.Get(1).(int), ret.Error(2)
}

// UpdateAchievement provides a mock function with given fields: ctx, id, input
func (_m *MockAchievementRepository) UpdateAchievement(ctx context.Context, id int, input *models.UpdateAchievementInput) error {
	ret := _m.Called(ctx, id, input)
	return ret.Error(0)
}

// DeleteAchievement provides a mock function with given fields: ctx, id
func (_m *MockAchievementRepository) DeleteAchievement(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// ListPendingTx provides a mock function with given fields: ctx, tx, userID
func (_m *MockAchievementRepository) ListPendingTx(ctx context.Context, tx pgx.Tx, userID int64) ([]repository.AchievementEvaluation, error) {
	ret := _m.Called(ctx, tx, userID)

	var r0 []repository.AchievementEvaluation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]repository.AchievementEvaluation)
	}

	return r0, ret.Error(1)
}

// UpsertStateTx provides a mock function with given fields: ctx, tx, ua
func (_m *MockAchievementRepository) UpsertStateTx(ctx context.Context, tx pgx.Tx, ua *models.UserAchievement) error {
	ret := _m.Called(ctx, tx, ua)
	return ret.Error(0)
}

// ListByUser provides a mock function with given fields: ctx, userID, page, limit
func (_m *MockAchievementRepository) ListByUser(ctx context.Context, userID int64, page int, limit int) ([]models.UserAchievement, int, error) {
	ret := _m.Called(ctx, userID, page, limit)

	var r0 []models.UserAchievement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.UserAchievement)
	}

	return r0, ret.Get(1).(int), ret.Error(2)
}

// NewMockAchievementRepository creates a new instance of MockAchievementRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAchievementRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAchievementRepository {
	mock := &MockAchievementRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
