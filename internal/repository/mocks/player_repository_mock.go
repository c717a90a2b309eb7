package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockPlayerRepository is a mock type for the PlayerRepository type
type MockPlayerRepository struct {
	mock.Mock
}

// UpsertPlayerTx provides a mock function with given fields: ctx, tx, player
func (_m *MockPlayerRepository) UpsertPlayerTx(ctx context.Context, tx pgx.Tx, player *models.Player) error {
	ret := _m.Called(ctx, tx, player)
	return ret.Error(0)
}

// GetPlayerByID provides a mock function with given fields: ctx, id
func (_m *MockPlayerRepository) GetPlayerByID(ctx context.Context, id int64) (*models.Player, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Player
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Player)
	}

	return r0, ret.Error(1)
}

// ListPlayers provides a mock function with given fields: ctx, page, limit
func (_m *MockPlayerRepository) ListPlayers(ctx context.Context, page int, limit int) ([]models.Player, int, error) {
	ret := _m.Called(ctx, page, limit)

	var r0 []models.Player
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Player)
	}

	return r0, ret.Get(1).(int), ret.Error(2)
}

// SetVIP provides a mock function with given fields: ctx, id, isVIP
func (_m *MockPlayerRepository) SetVIP(ctx context.Context, id int64, isVIP bool) error {
	ret := _m.Called(ctx, id, isVIP)
	return ret.Error(0)
}

// NewMockPlayerRepository creates a new instance of MockPlayerRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPlayerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlayerRepository {
	mock := &MockPlayerRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
