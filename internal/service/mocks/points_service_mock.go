package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// MockPointsService is a mock type for the PointsService type
type MockPointsService struct {
	mock.Mock
}

// AwardTx provides a mock function with given fields
func (_m *MockPointsService) AwardTx(ctx context.Context, tx pgx.Tx, userID int64, base int, source models.PointSource, eventID *uuid.UUID, notes string, createdBy int, applyMultiplier bool) (*models.AwardResult, error) {
	ret := _m.Called(ctx, tx, userID, base, source, eventID, notes, createdBy, applyMultiplier)

	var r0 *models.AwardResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.AwardResult)
	}

	return r0, ret.Error(1)
}

// Spend provides a mock function with given fields: ctx, userID, input, accountID
func (_m *MockPointsService) Spend(ctx context.Context, userID int64, input *models.SpendPointsInput, accountID int) (*models.UserPoints, error) {
	ret := _m.Called(ctx, userID, input, accountID)

	var r0 *models.UserPoints
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UserPoints)
	}

	return r0, ret.Error(1)
}

// AdjustPoints provides a mock function with given fields: ctx, userID, input, accountID
func (_m *MockPointsService) AdjustPoints(ctx context.Context, userID int64, input *models.AdjustPointsInput, accountID int) (*models.UserPoints, error) {
	ret := _m.Called(ctx, userID, input, accountID)

	var r0 *models.UserPoints
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UserPoints)
	}

	return r0, ret.Error(1)
}

// GetProfile provides a mock function with given fields: ctx, userID
func (_m *MockPointsService) GetProfile(ctx context.Context, userID int64) (*models.PlayerProfile, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.PlayerProfile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.PlayerProfile)
	}

	return r0, ret.Error(1)
}

// GetHistory provides a mock function with given fields: ctx, userID, page, limit
func (_m *MockPointsService) GetHistory(ctx context.Context, userID int64, page int, limit int) ([]models.PointTransaction, int, error) {
	ret := _m.Called(ctx, userID, page, limit)

	var r0 []models.PointTransaction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.PointTransaction)
	}

	return r0, ret.Get(1).(int), ret.Error(2)
}

// Leaderboard provides a mock function with given fields: ctx, limit
func (_m *MockPointsService) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	ret := _m.Called(ctx, limit)

	var r0 []models.LeaderboardEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.LeaderboardEntry)
	}

	return r0, ret.Error(1)
}

// NewMockPointsService creates a new instance of MockPointsService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPointsService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPointsService {
	mock := &MockPointsService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
