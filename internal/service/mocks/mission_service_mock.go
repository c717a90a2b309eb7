package mocks

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockMissionService is a mock type for the MissionService type
type MockMissionService struct {
	mock.Mock
}

// CreateMission provides a mock function with given fields: ctx, input
func (_m *MockMissionService) CreateMission(ctx context.Context, input *models.CreateMissionInput) (int, error) {
	ret := _m.Called(ctx, input)
	return ret.Get(0).(int), ret.Error(1)
}

// GetMission provides a mock function with given fields: ctx, id
func (_m *MockMissionService) GetMission(ctx context.Context, id int) (*models.Mission, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Mission
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Mission)
	}

	return r0, ret.Error(1)
}

// ListMissions provides a mock function with given fields: ctx, activeOnly, page, limit
func (_m *MockMissionService) ListMissions(ctx context.Context, activeOnly bool, page int, limit int) ([]models.Mission, int, error) {
	ret := _m.Called(ctx, activeOnly, page, limit)

	var r0 []models.Mission
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Mission)
	}

	return r0, ret.Get(1).(int), ret.Error(2)
}

// UpdateMission provides a mock function with given fields: ctx, id, input
func (_m *MockMissionService) UpdateMission(ctx context.Context, id int, input *models.UpdateMissionInput) error {
	ret := _m.Called(ctx, id, input)
	return ret.Error(0)
}

// DeleteMission provides a mock function with given fields: ctx, id
func (_m *MockMissionService) DeleteMission(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// AssignMissionsTx provides a mock function with given fields: ctx, tx, userID, level, vip
func (_m *MockMissionService) AssignMissionsTx(ctx context.Context, tx pgx.Tx, userID int64, level int, vip bool) (int, error) {
	ret := _m.Called(ctx, tx, userID, level, vip)
	return ret.Get(0).(int), ret.Error(1)
}

// ApplyActionTx provides a mock function with given fields: ctx, tx, userID, action, value, now
func (_m *MockMissionService) ApplyActionTx(ctx context.Context, tx pgx.Tx, userID int64, action models.ActionType, value int, now time.Time) ([]models.MissionCompletion, error) {
	ret := _m.Called(ctx, tx, userID, action, value, now)

	var r0 []models.MissionCompletion
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.MissionCompletion)
	}

	return r0, ret.Error(1)
}

// RefreshDaily provides a mock function with given fields: ctx
func (_m *MockMissionService) RefreshDaily(ctx context.Context) (int64, int, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(int64), ret.Get(1).(int), ret.Error(2)
}

// ListForUser provides a mock function with given fields: ctx, userID, statusFilter, page, limit
func (_m *MockMissionService) ListForUser(ctx context.Context, userID int64, statusFilter string, page int, limit int) ([]models.UserMission, int, error) {
	ret := _m.Called(ctx, userID, statusFilter, page, limit)

	var r0 []models.UserMission
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.UserMission)
	}

	return r0, ret.Get(1).(int), ret.Error(2)
}

// NewMockMissionService creates a new instance of MockMissionService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMissionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMissionService {
	mock := &MockMissionService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
