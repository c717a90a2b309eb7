package mocks

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockUserMissionRepository is a mock type for the UserMissionRepository type
type MockUserMissionRepository struct {
	mock.Mock
}

// AssignTx provides a mock function with given fields: ctx, tx, userID, mission, expiresAt
func (_m *MockUserMissionRepository) AssignTx(ctx context.Context, tx pgx.Tx, userID int64, mission *models.Mission, expiresAt *time.Time) (int64, error) {
	ret := _m.Called(ctx, tx, userID, mission, expiresAt)
	return ret.Get(0).(int64), ret.Error(1)
}

// GetActiveForUpdateTx provides a mock function with given fields: ctx, tx, userID
func (_m *MockUserMissionRepository) GetActiveForUpdateTx(ctx context.Context, tx pgx.Tx, userID int64) ([]models.UserMission, error) {
	ret := _m.Called(ctx, tx, userID)

	var r0 []models.UserMission
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.UserMission)
	}

	return r0, ret.Error(1)
}

// SaveProgressTx provides a mock function with given fields: ctx, tx, um
func (_m *MockUserMissionRepository) SaveProgressTx(ctx context.Context, tx pgx.Tx, um *models.UserMission) error {
	ret := _m.Called(ctx, tx, um)
	return ret.Error(0)
}

// ExpireOverdueTx provides a mock function with given fields: ctx, tx, now
func (_m *MockUserMissionRepository) ExpireOverdueTx(ctx context.Context, tx pgx.Tx, now time.Time) (int64, error) {
	ret := _m.Called(ctx, tx, now)
	return ret.Get(0).(int64), ret.Error(1)
}

// CountCompletedByUserTx provides a mock function with given fields: ctx, tx, userID
func (_m *MockUserMissionRepository) CountCompletedByUserTx(ctx context.Context, tx pgx.Tx, userID int64) (int, error) {
	ret := _m.Called(ctx, tx, userID)
	return ret.Get(0).(int), ret.Error(1)
}

// CountActiveDailyTx provides a mock function with given fields: ctx, tx, userID
func (_m *MockUserMissionRepository) CountActiveDailyTx(ctx context.Context, tx pgx.Tx, userID int64) (int, error) {
	ret := _m.Called(ctx, tx, userID)
	return ret.Get(0).(int), ret.Error(1)
}

// ListByUser provides a mock function with given fields: ctx, userID, statusFilter, page, limit
func (_m *MockUserMissionRepository) ListByUser(ctx context.Context, userID int64, statusFilter string, page int, limit int) ([]models.UserMission, int, error) {
	ret := _m.Called(ctx, userID, statusFilter, page, limit)

	var r0 []models.UserMission
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.UserMission)
	}

	return r0, ret.Get(1).(int), ret.Error(2)
}

// ListUsersWithActiveDaily provides a mock function with given fields: ctx
func (_m *MockUserMissionRepository) ListUsersWithActiveDaily(ctx context.Context) ([]int64, error) {
	ret := _m.Called(ctx)

	var r0 []int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]int64)
	}

	return r0, ret.Error(1)
}

// NewMockUserMissionRepository creates a new instance of MockUserMissionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserMissionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserMissionRepository {
	mock := &MockUserMissionRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
