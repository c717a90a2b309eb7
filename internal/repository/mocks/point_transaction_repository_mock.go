package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockPointTransactionRepository is a mock type for the PointTransactionRepository type
type MockPointTransactionRepository struct {
	mock.Mock
}

// AppendTx provides a mock function with given fields: ctx, tx, entry
func (_m *MockPointTransactionRepository) AppendTx(ctx context.Context, tx pgx.Tx, entry *models.PointTransaction) error {
	ret := _m.Called(ctx, tx, entry)
	return ret.Error(0)
}

// GetHistoryByUserID provides a mock function with given fields: ctx, userID, page, limit
func (_m *MockPointTransactionRepository) GetHistoryByUserID(ctx context.Context, userID int64, page int, limit int) ([]models.PointTransaction, int, error) {
	ret := _m.Called(ctx, userID, page, limit)

	var r0 []models.PointTransaction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.PointTransaction)
	}

	return r0, ret.Get(1).(int), ret.Error(2)
}

// NewMockPointTransactionRepository creates a new instance of MockPointTransactionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPointTransactionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPointTransactionRepository {
	mock := &MockPointTransactionRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
