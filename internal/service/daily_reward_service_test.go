// internal/service/daily_reward_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	repomocks "github.com/carlostoek/diana-gamification-be/internal/repository/mocks"
	svcmocks "github.com/carlostoek/diana-gamification-be/internal/service/mocks"
)

func newDailyRewardServiceForTest(
	db TxBeginner,
	dailyRepo *repomocks.MockDailyRewardRepository,
	pointsRepo *repomocks.MockUserPointsRepository,
	points *svcmocks.MockPointsService,
	achievements *svcmocks.MockAchievementService,
	now time.Time,
	roll int,
) *dailyRewardServiceImpl {
	return &dailyRewardServiceImpl{
		db:           db,
		dailyRepo:    dailyRepo,
		pointsRepo:   pointsRepo,
		points:       points,
		achievements: achievements,
		now:          func() time.Time { return now },
		intn:         func(int) int { return roll },
	}
}

func TestClaim(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	pointsTier := models.DailyRewardTier{ID: 1, Rarity: models.RarityCommon, Kind: models.RewardKindPoints, Points: 25, Weight: 100, IsActive: true}

	t.Run("PointsTierPayout", func(t *testing.T) {
		db, tx := newStubDB()
		dailyRepo := repomocks.NewMockDailyRewardRepository(t)
		pointsRepo := repomocks.NewMockUserPointsRepository(t)
		points := svcmocks.NewMockPointsService(t)
		achievements := svcmocks.NewMockAchievementService(t)

		streak := &models.DailyStreak{UserID: 42, LastClaimDate: &yesterday, ConsecutiveDays: 2, LongestStreak: 5}
		dailyRepo.On("GetStreakForUpdateTx", mock.Anything, tx, int64(42)).Return(streak, nil).Once()
		dailyRepo.On("ListActiveTiersTx", mock.Anything, tx).Return([]models.DailyRewardTier{pointsTier}, nil).Once()
		dailyRepo.On("SaveStreakTx", mock.Anything, tx, mock.MatchedBy(func(s *models.DailyStreak) bool {
			return s.ConsecutiveDays == 3 && s.LongestStreak == 5 && s.LastClaimDate.Equal(utcDate(now))
		})).Return(nil).Once()
		points.On("AwardTx", mock.Anything, tx, int64(42), 25, models.SourceDaily, (*uuid.UUID)(nil), mock.AnythingOfType("string"), 0, false).
			Return(&models.AwardResult{Awarded: 25, CurrentPoints: 125, TotalEarned: 225}, nil).Once()
		pointsRepo.On("GetTx", mock.Anything, tx, int64(42)).Return(&models.UserPoints{UserID: 42, TotalEarned: 225}, nil).Once()
		achievements.On("EvaluateTx", mock.Anything, tx, int64(42), 2, 225).Return(nil, nil).Once()

		svc := newDailyRewardServiceForTest(db, dailyRepo, pointsRepo, points, achievements, now, 0)
		result, err := svc.Claim(context.Background(), 42)

		assert.NoError(t, err)
		assert.Equal(t, 3, result.ConsecutiveDays)
		assert.Equal(t, 25, result.PointsAwarded)
		assert.Equal(t, 125, result.NewBalance)
		assert.True(t, tx.committed)
	})

	t.Run("AlreadyClaimedToday", func(t *testing.T) {
		db, tx := newStubDB()
		dailyRepo := repomocks.NewMockDailyRewardRepository(t)
		pointsRepo := repomocks.NewMockUserPointsRepository(t)
		points := svcmocks.NewMockPointsService(t)
		achievements := svcmocks.NewMockAchievementService(t)

		today := utcDate(now)
		streak := &models.DailyStreak{UserID: 42, LastClaimDate: &today, ConsecutiveDays: 3}
		dailyRepo.On("GetStreakForUpdateTx", mock.Anything, tx, int64(42)).Return(streak, nil).Once()

		svc := newDailyRewardServiceForTest(db, dailyRepo, pointsRepo, points, achievements, now, 0)
		_, err := svc.Claim(context.Background(), 42)

		assert.ErrorIs(t, err, ErrAlreadyClaimedToday)
		assert.True(t, tx.rolledBack)
	})

	t.Run("NoActiveTiers", func(t *testing.T) {
		db, tx := newStubDB()
		dailyRepo := repomocks.NewMockDailyRewardRepository(t)
		pointsRepo := repomocks.NewMockUserPointsRepository(t)
		points := svcmocks.NewMockPointsService(t)
		achievements := svcmocks.NewMockAchievementService(t)

		streak := &models.DailyStreak{UserID: 42}
		dailyRepo.On("GetStreakForUpdateTx", mock.Anything, tx, int64(42)).Return(streak, nil).Once()
		dailyRepo.On("ListActiveTiersTx", mock.Anything, tx).Return([]models.DailyRewardTier{}, nil).Once()

		svc := newDailyRewardServiceForTest(db, dailyRepo, pointsRepo, points, achievements, now, 0)
		_, err := svc.Claim(context.Background(), 42)

		assert.ErrorIs(t, err, ErrNoActiveRewardTiers)
		assert.True(t, tx.rolledBack)
	})

	t.Run("MultiplierTierOpensWindow", func(t *testing.T) {
		db, tx := newStubDB()
		dailyRepo := repomocks.NewMockDailyRewardRepository(t)
		pointsRepo := repomocks.NewMockUserPointsRepository(t)
		points := svcmocks.NewMockPointsService(t)
		achievements := svcmocks.NewMockAchievementService(t)

		multTier := models.DailyRewardTier{ID: 2, Rarity: models.RarityEpic, Kind: models.RewardKindMultiplier, Multiplier: 2, MultiplierHours: 24, Weight: 100, IsActive: true}
		streak := &models.DailyStreak{UserID: 42}
		up := &models.UserPoints{UserID: 42, CurrentPoints: 80, Multiplier: 1}

		dailyRepo.On("GetStreakForUpdateTx", mock.Anything, tx, int64(42)).Return(streak, nil).Once()
		dailyRepo.On("ListActiveTiersTx", mock.Anything, tx).Return([]models.DailyRewardTier{multTier}, nil).Once()
		dailyRepo.On("SaveStreakTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
		pointsRepo.On("GetForUpdateTx", mock.Anything, tx, int64(42)).Return(up, nil).Once()
		pointsRepo.On("SaveTx", mock.Anything, tx, mock.MatchedBy(func(saved *models.UserPoints) bool {
			return saved.Multiplier == 2 && saved.MultiplierExpiresAt != nil && saved.MultiplierExpiresAt.Equal(now.Add(24*time.Hour))
		})).Return(nil).Once()
		pointsRepo.On("GetTx", mock.Anything, tx, int64(42)).Return(&models.UserPoints{UserID: 42, CurrentPoints: 80, TotalEarned: 80}, nil).Once()
		achievements.On("EvaluateTx", mock.Anything, tx, int64(42), 1, 80).Return(nil, nil).Once()

		svc := newDailyRewardServiceForTest(db, dailyRepo, pointsRepo, points, achievements, now, 0)
		result, err := svc.Claim(context.Background(), 42)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.ConsecutiveDays)
		assert.Equal(t, 0, result.PointsAwarded)
		assert.Equal(t, 80, result.NewBalance)
		assert.True(t, tx.committed)
	})
}

func TestCanClaim(t *testing.T) {
	now := time.Now().UTC()

	t.Run("FreshPlayerCanClaim", func(t *testing.T) {
		dailyRepo := repomocks.NewMockDailyRewardRepository(t)
		dailyRepo.On("GetStreak", mock.Anything, int64(42)).Return(&models.DailyStreak{UserID: 42}, nil).Once()

		svc := &dailyRewardServiceImpl{dailyRepo: dailyRepo, now: func() time.Time { return now }}
		can, streak, err := svc.CanClaim(context.Background(), 42)

		assert.NoError(t, err)
		assert.True(t, can)
		assert.Equal(t, 0, streak.ConsecutiveDays)
	})

	t.Run("SameDayBlocks", func(t *testing.T) {
		today := utcDate(now)
		dailyRepo := repomocks.NewMockDailyRewardRepository(t)
		dailyRepo.On("GetStreak", mock.Anything, int64(42)).Return(&models.DailyStreak{UserID: 42, LastClaimDate: &today, ConsecutiveDays: 4}, nil).Once()

		svc := &dailyRewardServiceImpl{dailyRepo: dailyRepo, now: func() time.Time { return now }}
		can, _, err := svc.CanClaim(context.Background(), 42)

		assert.NoError(t, err)
		assert.False(t, can)
	})
}
