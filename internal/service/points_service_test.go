// internal/service/points_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/repository"
	"github.com/carlostoek/diana-gamification-be/internal/repository/mocks"
)

func newPointsServiceForTest(
	db TxBeginner,
	pointsRepo repository.UserPointsRepository,
	ledgerRepo repository.PointTransactionRepository,
	now func() time.Time,
) *pointsServiceImpl {
	return &pointsServiceImpl{
		db:         db,
		pointsRepo: pointsRepo,
		ledgerRepo: ledgerRepo,
		now:        now,
	}
}

func TestAwardTx(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tx := &stubTx{}

	t.Run("MultiplierApplied", func(t *testing.T) {
		expires := now.Add(time.Hour)
		up := &models.UserPoints{UserID: 42, CurrentPoints: 100, TotalEarned: 100, Multiplier: 2, MultiplierExpiresAt: &expires}

		pointsRepo := mocks.NewMockUserPointsRepository(t)
		ledgerRepo := mocks.NewMockPointTransactionRepository(t)
		pointsRepo.On("GetForUpdateTx", mock.Anything, tx, int64(42)).Return(up, nil).Once()
		pointsRepo.On("SaveTx", mock.Anything, tx, up).Return(nil).Once()
		ledgerRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(e *models.PointTransaction) bool {
			return e.ChangeAmount == 20 && e.BalanceAfter == 120 && e.Source == models.SourceMission
		})).Return(nil).Once()

		svc := newPointsServiceForTest(nil, pointsRepo, ledgerRepo, func() time.Time { return now })
		res, err := svc.AwardTx(context.Background(), tx, 42, 10, models.SourceMission, nil, "mission reward", 0, true)

		assert.NoError(t, err)
		assert.Equal(t, 20, res.Awarded)
		assert.Equal(t, 120, res.CurrentPoints)
		assert.Equal(t, float64(2), res.Multiplier)
	})

	t.Run("ExpiredMultiplierIgnored", func(t *testing.T) {
		expired := now.Add(-time.Minute)
		up := &models.UserPoints{UserID: 42, CurrentPoints: 100, TotalEarned: 100, Multiplier: 2, MultiplierExpiresAt: &expired}

		pointsRepo := mocks.NewMockUserPointsRepository(t)
		ledgerRepo := mocks.NewMockPointTransactionRepository(t)
		pointsRepo.On("GetForUpdateTx", mock.Anything, tx, int64(42)).Return(up, nil).Once()
		pointsRepo.On("SaveTx", mock.Anything, tx, up).Return(nil).Once()
		ledgerRepo.On("AppendTx", mock.Anything, tx, mock.Anything).Return(nil).Once()

		svc := newPointsServiceForTest(nil, pointsRepo, ledgerRepo, func() time.Time { return now })
		res, err := svc.AwardTx(context.Background(), tx, 42, 10, models.SourceMission, nil, "", 0, true)

		assert.NoError(t, err)
		assert.Equal(t, 10, res.Awarded)
		assert.Equal(t, float64(1), res.Multiplier)
	})

	t.Run("MultiplierSkippedForNonActionSources", func(t *testing.T) {
		expires := now.Add(time.Hour)
		up := &models.UserPoints{UserID: 42, Multiplier: 2, MultiplierExpiresAt: &expires}

		pointsRepo := mocks.NewMockUserPointsRepository(t)
		ledgerRepo := mocks.NewMockPointTransactionRepository(t)
		pointsRepo.On("GetForUpdateTx", mock.Anything, tx, int64(42)).Return(up, nil).Once()
		pointsRepo.On("SaveTx", mock.Anything, tx, up).Return(nil).Once()
		ledgerRepo.On("AppendTx", mock.Anything, tx, mock.Anything).Return(nil).Once()

		svc := newPointsServiceForTest(nil, pointsRepo, ledgerRepo, func() time.Time { return now })
		res, err := svc.AwardTx(context.Background(), tx, 42, 50, models.SourceAchievement, nil, "", 0, false)

		assert.NoError(t, err)
		assert.Equal(t, 50, res.Awarded)
	})

	t.Run("DuplicateEventID", func(t *testing.T) {
		eventID := uuid.New()
		up := &models.UserPoints{UserID: 42, Multiplier: 1}

		pointsRepo := mocks.NewMockUserPointsRepository(t)
		ledgerRepo := mocks.NewMockPointTransactionRepository(t)
		pointsRepo.On("GetForUpdateTx", mock.Anything, tx, int64(42)).Return(up, nil).Once()
		pointsRepo.On("SaveTx", mock.Anything, tx, up).Return(nil).Once()
		ledgerRepo.On("AppendTx", mock.Anything, tx, mock.Anything).Return(repository.ErrDuplicateEventID).Once()

		svc := newPointsServiceForTest(nil, pointsRepo, ledgerRepo, func() time.Time { return now })
		_, err := svc.AwardTx(context.Background(), tx, 42, 10, models.SourceReaction, &eventID, "", 0, true)

		assert.ErrorIs(t, err, ErrDuplicateEvent)
	})

	t.Run("ZeroAwardWithEventIDStillLedgered", func(t *testing.T) {
		eventID := uuid.New()
		up := &models.UserPoints{UserID: 42, Multiplier: 1}

		pointsRepo := mocks.NewMockUserPointsRepository(t)
		ledgerRepo := mocks.NewMockPointTransactionRepository(t)
		pointsRepo.On("GetForUpdateTx", mock.Anything, tx, int64(42)).Return(up, nil).Once()
		pointsRepo.On("SaveTx", mock.Anything, tx, up).Return(nil).Once()
		ledgerRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(e *models.PointTransaction) bool {
			return e.ChangeAmount == 0 && e.EventID == &eventID
		})).Return(nil).Once()

		svc := newPointsServiceForTest(nil, pointsRepo, ledgerRepo, func() time.Time { return now })
		res, err := svc.AwardTx(context.Background(), tx, 42, 0, models.SourceReaction, &eventID, "", 0, true)

		assert.NoError(t, err)
		assert.Equal(t, 0, res.Awarded)
	})
}

func TestSpend(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, tx := newStubDB()
		up := &models.UserPoints{UserID: 42, CurrentPoints: 100, TotalEarned: 200, Multiplier: 1}

		pointsRepo := mocks.NewMockUserPointsRepository(t)
		ledgerRepo := mocks.NewMockPointTransactionRepository(t)
		pointsRepo.On("GetForUpdateTx", mock.Anything, tx, int64(42)).Return(up, nil).Once()
		pointsRepo.On("SaveTx", mock.Anything, tx, up).Return(nil).Once()
		ledgerRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(e *models.PointTransaction) bool {
			return e.ChangeAmount == -30 && e.BalanceAfter == 70 && e.Source == models.SourceShop
		})).Return(nil).Once()

		svc := newPointsServiceForTest(db, pointsRepo, ledgerRepo, time.Now)
		result, err := svc.Spend(context.Background(), 42, &models.SpendPointsInput{Amount: 30, Reason: "narrative hint"}, 1)

		assert.NoError(t, err)
		assert.Equal(t, 70, result.CurrentPoints)
		assert.Equal(t, 30, result.TotalSpent)
		assert.True(t, tx.committed)
	})

	t.Run("InsufficientBalance", func(t *testing.T) {
		db, tx := newStubDB()
		up := &models.UserPoints{UserID: 42, CurrentPoints: 10, Multiplier: 1}

		pointsRepo := mocks.NewMockUserPointsRepository(t)
		ledgerRepo := mocks.NewMockPointTransactionRepository(t)
		pointsRepo.On("GetForUpdateTx", mock.Anything, tx, int64(42)).Return(up, nil).Once()

		svc := newPointsServiceForTest(db, pointsRepo, ledgerRepo, time.Now)
		_, err := svc.Spend(context.Background(), 42, &models.SpendPointsInput{Amount: 30, Reason: "narrative hint"}, 1)

		assert.ErrorIs(t, err, ErrInsufficientPoints)
		assert.True(t, tx.rolledBack)
		assert.False(t, tx.committed)
	})
}

func TestAdjustPoints(t *testing.T) {
	t.Run("NegativeAdjustmentBelowZeroRejected", func(t *testing.T) {
		db, tx := newStubDB()
		up := &models.UserPoints{UserID: 42, CurrentPoints: 10, Multiplier: 1}

		pointsRepo := mocks.NewMockUserPointsRepository(t)
		ledgerRepo := mocks.NewMockPointTransactionRepository(t)
		pointsRepo.On("GetForUpdateTx", mock.Anything, tx, int64(42)).Return(up, nil).Once()

		svc := newPointsServiceForTest(db, pointsRepo, ledgerRepo, time.Now)
		_, err := svc.AdjustPoints(context.Background(), 42, &models.AdjustPointsInput{ChangeAmount: -50, Notes: "correction"}, 1)

		assert.ErrorIs(t, err, ErrInsufficientPoints)
		assert.True(t, tx.rolledBack)
	})

	t.Run("PositiveAdjustment", func(t *testing.T) {
		db, tx := newStubDB()
		up := &models.UserPoints{UserID: 42, CurrentPoints: 10, TotalEarned: 10, Multiplier: 1}

		pointsRepo := mocks.NewMockUserPointsRepository(t)
		ledgerRepo := mocks.NewMockPointTransactionRepository(t)
		pointsRepo.On("GetForUpdateTx", mock.Anything, tx, int64(42)).Return(up, nil).Once()
		pointsRepo.On("SaveTx", mock.Anything, tx, up).Return(nil).Once()
		ledgerRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(e *models.PointTransaction) bool {
			return e.ChangeAmount == 25 && e.Source == models.SourceAdjustment && e.CreatedByAccountID == 3
		})).Return(nil).Once()

		svc := newPointsServiceForTest(db, pointsRepo, ledgerRepo, time.Now)
		result, err := svc.AdjustPoints(context.Background(), 42, &models.AdjustPointsInput{ChangeAmount: 25, Notes: "event compensation"}, 3)

		assert.NoError(t, err)
		assert.Equal(t, 35, result.CurrentPoints)
		assert.Equal(t, 35, result.TotalEarned)
		assert.True(t, tx.committed)
	})
}
