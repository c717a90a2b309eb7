package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockMissionRepository is a mock type for the MissionRepository type
type MockMissionRepository struct {
	mock.Mock
}

// CreateMissionTx provides a mock function with given fields: ctx, tx, mission
func (_m *MockMissionRepository) CreateMissionTx(ctx context.Context, tx pgx.Tx, mission *models.Mission) (int, error) {
	ret := _m.Called(ctx, tx, mission)
	return ret.Get(0).(int), ret.Error(1)
}

// CreateObjectiveTx provides a mock function with given fields: ctx, tx, missionID, obj
func (_m *MockMissionRepository) CreateObjectiveTx(ctx context.Context, tx pgx.Tx, missionID int, obj *models.MissionObjective) (int, error) {
	ret := _m.Called(ctx, tx, missionID, obj)
	return ret.Get(0).(int), ret.Error(1)
}

// GetMissionByID provides a mock function with given fields: ctx, id
func (_m *MockMissionRepository) GetMissionByID(ctx context.Context, id int) (*models.Mission, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Mission
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Mission)
	}

	return r0, ret.Error(1)
}

// ListMissions provides a mock function with given fields: ctx, activeOnly, page, limit
func (_m *MockMissionRepository) ListMissions(ctx context.Context, activeOnly bool, page int, limit int) ([]models.Mission, int, error) {
	ret := _m.Called(ctx, activeOnly, page, limit)

	var r0 []models.Mission
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Mission)
	}

	return r0, ret.Get(1).(int), ret.Error(2)
}

// UpdateMission provides a mock function with given fields: ctx, id, input
func (_m *MockMissionRepository) UpdateMission(ctx context.Context, id int, input *models.UpdateMissionInput) error {
	ret := _m.Called(ctx, id, input)
	return ret.Error(0)
}

// DeleteMission provides a mock function with given fields: ctx, id
func (_m *MockMissionRepository) DeleteMission(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// ListAssignableTx provides a mock function with given fields: ctx, tx, userID, mtype, level, vip
func (_m *MockMissionRepository) ListAssignableTx(ctx context.Context, tx pgx.Tx, userID int64, mtype models.MissionType, level int, vip bool) ([]models.Mission, error) {
	ret := _m.Called(ctx, tx, userID, mtype, level, vip)

	var r0 []models.Mission
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Mission)
	}

	return r0, ret.Error(1)
}

// NewMockMissionRepository creates a new instance of MockMissionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMissionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMissionRepository {
	mock := &MockMissionRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
