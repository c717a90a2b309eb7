package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockAccountRepository is a mock type for the AccountRepository type
type MockAccountRepository struct {
	mock.Mock
}

// CreateAccount provides a mock function with given fields: ctx, input, hashedPassword
func (_m *MockAccountRepository) CreateAccount(ctx context.Context, input *models.RegisterAccountInput, hashedPassword string) (int, error) {
	ret := _m.Called(ctx, input, hashedPassword)
	return ret.Get(0).(int), ret.Error(1)
}

// GetAccountByUsername provides a mock function with given fields: ctx, username
func (_m *MockAccountRepository) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	ret := _m.Called(ctx, username)

	var r0 *models.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Account)
	}

	return r0, ret.Error(1)
}

// GetAccountByID provides a mock function with given fields: ctx, id
func (_m *MockAccountRepository) GetAccountByID(ctx context.Context, id int) (*models.Account, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Account)
	}

	return r0, ret.Error(1)
}

// NewMockAccountRepository creates a new instance of MockAccountRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	mock := &MockAccountRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
