package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockPlayerService is a mock type for the PlayerService type
type MockPlayerService struct {
	mock.Mock
}

// GetPlayer provides a mock function with given fields: ctx, userID
func (_m *MockPlayerService) GetPlayer(ctx context.Context, userID int64) (*models.Player, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.Player
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Player)
	}

	return r0, ret.Error(1)
}

// ListPlayers provides a mock function with given fields: ctx, page, limit
func (_m *MockPlayerService) ListPlayers(ctx context.Context, page int, limit int) ([]models.Player, int, error) {
	ret := _m.Called(ctx, page, limit)

	var r0 []models.Player
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Player)
	}

	return r0, ret.Get(1).(int), ret.Error(2)
}

// SetVIP provides a mock function with given fields: ctx, userID, input
func (_m *MockPlayerService) SetVIP(ctx context.Context, userID int64, input *models.SetVIPInput) error {
	ret := _m.Called(ctx, userID, input)
	return ret.Error(0)
}

// NewMockPlayerService creates a new instance of MockPlayerService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPlayerService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlayerService {
	mock := &MockPlayerService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
