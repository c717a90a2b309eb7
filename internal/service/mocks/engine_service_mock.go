package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockEngineService is a mock type for the EngineService type
type MockEngineService struct {
	mock.Mock
}

// ProcessEvent provides a mock function with given fields: ctx, event
func (_m *MockEngineService) ProcessEvent(ctx context.Context, event *models.DomainEvent) (*models.EventOutcome, error) {
	ret := _m.Called(ctx, event)

	var r0 *models.EventOutcome
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.EventOutcome)
	}

	return r0, ret.Error(1)
}

// NewMockEngineService creates a new instance of MockEngineService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockEngineService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEngineService {
	mock := &MockEngineService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
