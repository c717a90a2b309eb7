package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockAuthService is a mock type for the AuthService type
type MockAuthService struct {
	mock.Mock
}

// RegisterAccount provides a mock function with given fields: ctx, input
func (_m *MockAuthService) RegisterAccount(ctx context.Context, input *models.RegisterAccountInput) (int, error) {
	ret := _m.Called(ctx, input)

	var r0 int
	if rf, ok := ret.Get(0).(func(context.Context, *models.RegisterAccountInput) int); ok {
		r0 = rf(ctx, input)
	} else {
		r0 = ret.Get(0).(int)
	}

	return r0, ret.Error(1)
}

// Login provides a mock function with given fields: ctx, input
func (_m *MockAuthService) Login(ctx context.Context, input *models.LoginInput) (string, error) {
	ret := _m.Called(ctx, input)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, *models.LoginInput) string); ok {
		r0 = rf(ctx, input)
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0, ret.Error(1)
}

// NewMockAuthService creates a new instance of MockAuthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthService {
	mock := &MockAuthService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
