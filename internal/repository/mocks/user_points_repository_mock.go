package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockUserPointsRepository is a mock type for the UserPointsRepository type
type MockUserPointsRepository struct {
	mock.Mock
}

// GetByUserID provides a mock function with given fields: ctx, userID
func (_m *MockUserPointsRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserPoints, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.UserPoints
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UserPoints)
	}

	return r0, ret.Error(1)
}

// GetForUpdateTx provides a mock function with given fields: ctx, tx, userID
func (_m *MockUserPointsRepository) GetForUpdateTx(ctx context.Context, tx pgx.Tx, userID int64) (*models.UserPoints, error) {
	ret := _m.Called(ctx, tx, userID)

	var r0 *models.UserPoints
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UserPoints)
	}

	return r0, ret.Error(1)
}

// GetTx provides a mock function with given fields: ctx, tx, userID
func (_m *MockUserPointsRepository) GetTx(ctx context.Context, tx pgx.Tx, userID int64) (*models.UserPoints, error) {
	ret := _m.Called(ctx, tx, userID)

	var r0 *models.UserPoints
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UserPoints)
	}

	return r0, ret.Error(1)
}

// SaveTx provides a mock function with given fields: ctx, tx, up
func (_m *MockUserPointsRepository) SaveTx(ctx context.Context, tx pgx.Tx, up *models.UserPoints) error {
	ret := _m.Called(ctx, tx, up)
	return ret.Error(0)
}

// TopByTotalEarned provides a mock function with given fields: ctx, limit
func (_m *MockUserPointsRepository) TopByTotalEarned(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	ret := _m.Called(ctx, limit)

	var r0 []models.LeaderboardEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.LeaderboardEntry)
	}

	return r0, ret.Error(1)
}

// NewMockUserPointsRepository creates a new instance of MockUserPointsRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserPointsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserPointsRepository {
	mock := &MockUserPointsRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
