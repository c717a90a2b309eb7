// internal/service/mission_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	repomocks "github.com/carlostoek/diana-gamification-be/internal/repository/mocks"
	svcmocks "github.com/carlostoek/diana-gamification-be/internal/service/mocks"
)

func newMissionServiceForTest(
	db TxBeginner,
	missionRepo *repomocks.MockMissionRepository,
	userMissionRepo *repomocks.MockUserMissionRepository,
	points *svcmocks.MockPointsService,
	now time.Time,
) *missionServiceImpl {
	return &missionServiceImpl{
		db:              db,
		missionRepo:     missionRepo,
		userMissionRepo: userMissionRepo,
		points:          points,
		dailyCap:        defaultDailyMissionCap,
		now:             func() time.Time { return now },
	}
}

func TestAssignMissionsTx(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("DailySlotsCapped", func(t *testing.T) {
		tx := &stubTx{}
		missionRepo := repomocks.NewMockMissionRepository(t)
		userMissionRepo := repomocks.NewMockUserMissionRepository(t)
		points := svcmocks.NewMockPointsService(t)

		missionRepo.On("ListAssignableTx", mock.Anything, tx, int64(42), models.MissionTypeOneTime, 3, false).
			Return([]models.Mission{{ID: 1, MissionKey: "first_steps"}}, nil).Once()
		userMissionRepo.On("CountActiveDailyTx", mock.Anything, tx, int64(42)).Return(1, nil).Once()
		missionRepo.On("ListAssignableTx", mock.Anything, tx, int64(42), models.MissionTypeDaily, 3, false).
			Return([]models.Mission{
				{ID: 2, MissionKey: "daily_react", MissionType: models.MissionTypeDaily, DurationHours: 24},
				{ID: 3, MissionKey: "daily_trivia", MissionType: models.MissionTypeDaily, DurationHours: 24},
				{ID: 4, MissionKey: "daily_checkin", MissionType: models.MissionTypeDaily, DurationHours: 24},
			}, nil).Once()
		// One daily slot is taken, so only two of the three candidates fit.
		userMissionRepo.On("AssignTx", mock.Anything, tx, int64(42), mock.Anything, (*time.Time)(nil)).Return(int64(10), nil).Once()
		expires := now.Add(24 * time.Hour)
		userMissionRepo.On("AssignTx", mock.Anything, tx, int64(42), mock.Anything, &expires).Return(int64(11), nil).Twice()

		svc := newMissionServiceForTest(nil, missionRepo, userMissionRepo, points, now)
		assigned, err := svc.AssignMissionsTx(context.Background(), tx, 42, 3, false)

		assert.NoError(t, err)
		assert.Equal(t, 3, assigned)
	})

	t.Run("NoDailySlotsLeft", func(t *testing.T) {
		tx := &stubTx{}
		missionRepo := repomocks.NewMockMissionRepository(t)
		userMissionRepo := repomocks.NewMockUserMissionRepository(t)
		points := svcmocks.NewMockPointsService(t)

		missionRepo.On("ListAssignableTx", mock.Anything, tx, int64(42), models.MissionTypeOneTime, 1, true).
			Return([]models.Mission{}, nil).Once()
		userMissionRepo.On("CountActiveDailyTx", mock.Anything, tx, int64(42)).Return(defaultDailyMissionCap, nil).Once()

		svc := newMissionServiceForTest(nil, missionRepo, userMissionRepo, points, now)
		assigned, err := svc.AssignMissionsTx(context.Background(), tx, 42, 1, true)

		assert.NoError(t, err)
		assert.Equal(t, 0, assigned)
	})
}

func TestApplyActionTx(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("CompletionPaysOnce", func(t *testing.T) {
		tx := &stubTx{}
		missionRepo := repomocks.NewMockMissionRepository(t)
		userMissionRepo := repomocks.NewMockUserMissionRepository(t)
		points := svcmocks.NewMockPointsService(t)

		mission := &models.Mission{ID: 1, MissionKey: "react_3", Title: "Reacciona 3 veces", PointsReward: 50}
		um := models.UserMission{
			ID:        7,
			UserID:    42,
			MissionID: 1,
			Status:    models.UserMissionStatusInProgress,
			Mission:   mission,
			Objectives: []models.UserMissionObjective{
				{ObjectiveID: 1, Progress: 2, Objective: &models.MissionObjective{ID: 1, ActionType: models.ActionReactions, Required: 3}},
			},
		}
		userMissionRepo.On("GetActiveForUpdateTx", mock.Anything, tx, int64(42)).Return([]models.UserMission{um}, nil).Once()
		points.On("AwardTx", mock.Anything, tx, int64(42), 50, models.SourceMission, mock.Anything, mock.AnythingOfType("string"), 0, false).
			Return(&models.AwardResult{Awarded: 50}, nil).Once()
		userMissionRepo.On("SaveProgressTx", mock.Anything, tx, mock.MatchedBy(func(saved *models.UserMission) bool {
			return saved.Status == models.UserMissionStatusCompleted && saved.RewardClaimed
		})).Return(nil).Once()

		svc := newMissionServiceForTest(nil, missionRepo, userMissionRepo, points, now)
		completions, err := svc.ApplyActionTx(context.Background(), tx, 42, models.ActionReactions, 1, now)

		assert.NoError(t, err)
		assert.Len(t, completions, 1)
		assert.Equal(t, "react_3", completions[0].MissionKey)
		assert.Equal(t, 50, completions[0].PointsReward)
	})

	t.Run("AlreadyClaimedMissionDoesNotPayAgain", func(t *testing.T) {
		tx := &stubTx{}
		missionRepo := repomocks.NewMockMissionRepository(t)
		userMissionRepo := repomocks.NewMockUserMissionRepository(t)
		points := svcmocks.NewMockPointsService(t)

		um := models.UserMission{
			ID:            7,
			UserID:        42,
			Status:        models.UserMissionStatusInProgress,
			RewardClaimed: true,
			Mission:       &models.Mission{ID: 1, MissionKey: "react_3", PointsReward: 50},
			Objectives: []models.UserMissionObjective{
				{ObjectiveID: 1, Progress: 2, Objective: &models.MissionObjective{ID: 1, ActionType: models.ActionReactions, Required: 3}},
			},
		}
		userMissionRepo.On("GetActiveForUpdateTx", mock.Anything, tx, int64(42)).Return([]models.UserMission{um}, nil).Once()
		userMissionRepo.On("SaveProgressTx", mock.Anything, tx, mock.Anything).Return(nil).Once()

		svc := newMissionServiceForTest(nil, missionRepo, userMissionRepo, points, now)
		completions, err := svc.ApplyActionTx(context.Background(), tx, 42, models.ActionReactions, 1, now)

		assert.NoError(t, err)
		assert.Empty(t, completions)
	})

	t.Run("ZeroValueCountsAsOne", func(t *testing.T) {
		tx := &stubTx{}
		missionRepo := repomocks.NewMockMissionRepository(t)
		userMissionRepo := repomocks.NewMockUserMissionRepository(t)
		points := svcmocks.NewMockPointsService(t)

		um := models.UserMission{
			ID:     7,
			UserID: 42,
			Status: models.UserMissionStatusInProgress,
			Objectives: []models.UserMissionObjective{
				{ObjectiveID: 1, Progress: 0, Objective: &models.MissionObjective{ID: 1, ActionType: models.ActionTrivia, Required: 5}},
			},
		}
		userMissionRepo.On("GetActiveForUpdateTx", mock.Anything, tx, int64(42)).Return([]models.UserMission{um}, nil).Once()
		userMissionRepo.On("SaveProgressTx", mock.Anything, tx, mock.MatchedBy(func(saved *models.UserMission) bool {
			return saved.Objectives[0].Progress == 1
		})).Return(nil).Once()

		svc := newMissionServiceForTest(nil, missionRepo, userMissionRepo, points, now)
		completions, err := svc.ApplyActionTx(context.Background(), tx, 42, models.ActionTrivia, 0, now)

		assert.NoError(t, err)
		assert.Empty(t, completions)
	})
}

func TestRefreshDaily(t *testing.T) {
	now := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	t.Run("RefillsBoardsOfPlayersWithActiveDailies", func(t *testing.T) {
		db, tx := newStubDB()
		missionRepo := repomocks.NewMockMissionRepository(t)
		userMissionRepo := repomocks.NewMockUserMissionRepository(t)
		playerRepo := repomocks.NewMockPlayerRepository(t)
		pointsRepo := repomocks.NewMockUserPointsRepository(t)
		points := svcmocks.NewMockPointsService(t)

		// The player set comes from the active daily boards, captured before
		// the expiry sweep runs.
		userMissionRepo.On("ListUsersWithActiveDaily", mock.Anything).Return([]int64{42, 99}, nil).Once()
		userMissionRepo.On("ExpireOverdueTx", mock.Anything, tx, now).Return(int64(8), nil).Once()

		playerRepo.On("GetPlayerByID", mock.Anything, int64(42)).Return(&models.Player{ID: 42}, nil).Once()
		pointsRepo.On("GetTx", mock.Anything, tx, int64(42)).Return(&models.UserPoints{UserID: 42, TotalEarned: 400}, nil).Once()
		missionRepo.On("ListAssignableTx", mock.Anything, tx, int64(42), models.MissionTypeOneTime, 3, false).
			Return([]models.Mission{}, nil).Once()
		userMissionRepo.On("CountActiveDailyTx", mock.Anything, tx, int64(42)).Return(0, nil).Once()
		missionRepo.On("ListAssignableTx", mock.Anything, tx, int64(42), models.MissionTypeDaily, 3, false).
			Return([]models.Mission{{ID: 2, MissionKey: "daily_react", MissionType: models.MissionTypeDaily, DurationHours: 24}}, nil).Once()
		expires := now.Add(24 * time.Hour)
		userMissionRepo.On("AssignTx", mock.Anything, tx, int64(42), mock.Anything, &expires).Return(int64(10), nil).Once()

		// A player that cannot be loaded is skipped, not fatal.
		playerRepo.On("GetPlayerByID", mock.Anything, int64(99)).Return(nil, pgx.ErrNoRows).Once()

		svc := &missionServiceImpl{
			db:              db,
			missionRepo:     missionRepo,
			userMissionRepo: userMissionRepo,
			playerRepo:      playerRepo,
			pointsRepo:      pointsRepo,
			points:          points,
			dailyCap:        defaultDailyMissionCap,
			now:             func() time.Time { return now },
		}
		expired, assigned, err := svc.RefreshDaily(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(8), expired)
		assert.Equal(t, 1, assigned)
		assert.True(t, tx.committed)
	})

	t.Run("EmptyPlayerSetOnlyExpires", func(t *testing.T) {
		db, tx := newStubDB()
		userMissionRepo := repomocks.NewMockUserMissionRepository(t)

		userMissionRepo.On("ListUsersWithActiveDaily", mock.Anything).Return([]int64{}, nil).Once()
		userMissionRepo.On("ExpireOverdueTx", mock.Anything, tx, now).Return(int64(3), nil).Once()

		svc := &missionServiceImpl{
			db:              db,
			userMissionRepo: userMissionRepo,
			dailyCap:        defaultDailyMissionCap,
			now:             func() time.Time { return now },
		}
		expired, assigned, err := svc.RefreshDaily(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(3), expired)
		assert.Equal(t, 0, assigned)
	})
}

func TestMissionCRUDErrorMapping(t *testing.T) {
	t.Run("GetMissionNotFound", func(t *testing.T) {
		missionRepo := repomocks.NewMockMissionRepository(t)
		missionRepo.On("GetMissionByID", mock.Anything, 99).Return(nil, pgx.ErrNoRows).Once()

		svc := &missionServiceImpl{missionRepo: missionRepo}
		_, err := svc.GetMission(context.Background(), 99)

		assert.ErrorIs(t, err, ErrMissionNotFound)
	})

	t.Run("DeleteMissionNotFound", func(t *testing.T) {
		missionRepo := repomocks.NewMockMissionRepository(t)
		missionRepo.On("DeleteMission", mock.Anything, 99).Return(pgx.ErrNoRows).Once()

		svc := &missionServiceImpl{missionRepo: missionRepo}
		err := svc.DeleteMission(context.Background(), 99)

		assert.ErrorIs(t, err, ErrMissionNotFound)
	})
}
