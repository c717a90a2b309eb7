// internal/service/engine_service_test.go
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

type engineTestDeps struct {
	db           *stubBeginner
	tx           *stubTx
	playerRepo   *repomocks.MockPlayerRepository
	pointsRepo   *repomocks.MockUserPointsRepository
	points       *svcmocks.MockPointsService
	missions     *svcmocks.MockMissionService
	achievements *svcmocks.MockAchievementService
}

func newEngineServiceForTest(t *testing.T, now time.Time) (*engineServiceImpl, *engineTestDeps) {
	db, tx := newStubDB()
	deps := &engineTestDeps{
		db:           db,
		tx:           tx,
		playerRepo:   repomocks.NewMockPlayerRepository(t),
		pointsRepo:   repomocks.NewMockUserPointsRepository(t),
		points:       svcmocks.NewMockPointsService(t),
		missions:     svcmocks.NewMockMissionService(t),
		achievements: svcmocks.NewMockAchievementService(t),
	}
	svc := &engineServiceImpl{
		db:           db,
		playerRepo:   deps.playerRepo,
		pointsRepo:   deps.pointsRepo,
		points:       deps.points,
		missions:     deps.missions,
		achievements: deps.achievements,
		now:          func() time.Time { return now },
	}
	return svc, deps
}

func TestProcessEvent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("ReactionAwardsAndAdvancesMissions", func(t *testing.T) {
		svc, deps := newEngineServiceForTest(t, now)
		event := &models.DomainEvent{EventID: uuid.New(), UserID: 42, Type: models.EventReactionAdded, Value: 1, Username: "lucia"}

		deps.playerRepo.On("UpsertPlayerTx", mock.Anything, deps.tx, mock.MatchedBy(func(p *models.Player) bool {
			return p.ID == 42 && p.Username == "lucia"
		})).Return(nil).Once()
		deps.points.On("AwardTx", mock.Anything, deps.tx, int64(42), 10, models.SourceReaction, &event.EventID, string(models.EventReactionAdded), 0, true).
			Return(&models.AwardResult{Awarded: 10, CurrentPoints: 100, TotalEarned: 100, Multiplier: 1}, nil).Once()
		completions := []models.MissionCompletion{{UserMissionID: 7, MissionKey: "react_10", Title: "Reacciona 10 veces", PointsReward: 50}}
		deps.missions.On("ApplyActionTx", mock.Anything, deps.tx, int64(42), models.ActionReactions, 1, now).
			Return(completions, nil).Once()
		// Mission payout landed between the two reads.
		deps.pointsRepo.On("GetTx", mock.Anything, deps.tx, int64(42)).
			Return(&models.UserPoints{UserID: 42, CurrentPoints: 150, TotalEarned: 150}, nil).Twice()
		unlocks := []models.AchievementUnlock{{AchievementKey: "first_reaction", Name: "Primera Reacción", PointsReward: 0}}
		deps.achievements.On("EvaluateTx", mock.Anything, deps.tx, int64(42), 2, 150).Return(unlocks, nil).Once()

		outcome, err := svc.ProcessEvent(context.Background(), event)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), outcome.UserID)
		// 150 total earned minus the 90 that existed before this event.
		assert.Equal(t, 60, outcome.PointsAwarded)
		assert.Equal(t, 150, outcome.NewBalance)
		assert.Equal(t, 1, outcome.PreviousLevel)
		assert.Equal(t, 2, outcome.Level)
		assert.True(t, outcome.LevelUp)
		assert.Equal(t, completions, outcome.CompletedMissions)
		assert.Equal(t, unlocks, outcome.UnlockedAchievements)
		assert.True(t, deps.tx.committed)
	})

	t.Run("StartEventSeedsMissionBoard", func(t *testing.T) {
		svc, deps := newEngineServiceForTest(t, now)
		event := &models.DomainEvent{EventID: uuid.New(), UserID: 42, Type: models.EventUserStartedBot}

		deps.playerRepo.On("UpsertPlayerTx", mock.Anything, deps.tx, mock.Anything).Return(nil).Once()
		deps.points.On("AwardTx", mock.Anything, deps.tx, int64(42), 25, models.SourceStart, &event.EventID, string(models.EventUserStartedBot), 0, true).
			Return(&models.AwardResult{Awarded: 25, CurrentPoints: 25, TotalEarned: 25, Multiplier: 1}, nil).Once()
		deps.missions.On("AssignMissionsTx", mock.Anything, deps.tx, int64(42), 1, false).Return(4, nil).Once()
		deps.pointsRepo.On("GetTx", mock.Anything, deps.tx, int64(42)).
			Return(&models.UserPoints{UserID: 42, CurrentPoints: 25, TotalEarned: 25}, nil).Twice()
		deps.achievements.On("EvaluateTx", mock.Anything, deps.tx, int64(42), 1, 25).Return(nil, nil).Once()

		outcome, err := svc.ProcessEvent(context.Background(), event)

		assert.NoError(t, err)
		assert.Equal(t, 25, outcome.PointsAwarded)
		assert.False(t, outcome.LevelUp)
		assert.Empty(t, outcome.CompletedMissions)
	})

	t.Run("MissionActionRoutesDeclaredActionType", func(t *testing.T) {
		svc, deps := newEngineServiceForTest(t, now)
		event := &models.DomainEvent{EventID: uuid.New(), UserID: 42, Type: models.EventMissionAction, ActionType: models.ActionCheckins, Value: 2}

		deps.playerRepo.On("UpsertPlayerTx", mock.Anything, deps.tx, mock.Anything).Return(nil).Once()
		deps.points.On("AwardTx", mock.Anything, deps.tx, int64(42), 0, models.SourceMission, &event.EventID, string(models.EventMissionAction), 0, true).
			Return(&models.AwardResult{Awarded: 0, CurrentPoints: 50, TotalEarned: 50, Multiplier: 1}, nil).Once()
		deps.missions.On("ApplyActionTx", mock.Anything, deps.tx, int64(42), models.ActionCheckins, 2, now).
			Return([]models.MissionCompletion{}, nil).Once()
		deps.pointsRepo.On("GetTx", mock.Anything, deps.tx, int64(42)).
			Return(&models.UserPoints{UserID: 42, CurrentPoints: 50, TotalEarned: 50}, nil).Twice()
		deps.achievements.On("EvaluateTx", mock.Anything, deps.tx, int64(42), 1, 50).Return(nil, nil).Once()

		outcome, err := svc.ProcessEvent(context.Background(), event)

		assert.NoError(t, err)
		assert.Equal(t, 0, outcome.PointsAwarded)
	})

	t.Run("DuplicateEventRollsBack", func(t *testing.T) {
		svc, deps := newEngineServiceForTest(t, now)
		event := &models.DomainEvent{EventID: uuid.New(), UserID: 42, Type: models.EventCheckin}

		deps.playerRepo.On("UpsertPlayerTx", mock.Anything, deps.tx, mock.Anything).Return(nil).Once()
		deps.points.On("AwardTx", mock.Anything, deps.tx, int64(42), 5, models.SourceCheckin, &event.EventID, string(models.EventCheckin), 0, true).
			Return(nil, ErrDuplicateEvent).Once()

		_, err := svc.ProcessEvent(context.Background(), event)

		assert.ErrorIs(t, err, ErrDuplicateEvent)
		assert.True(t, deps.tx.rolledBack)
		assert.False(t, deps.tx.committed)
	})

	t.Run("UnknownEventType", func(t *testing.T) {
		svc, _ := newEngineServiceForTest(t, now)
		event := &models.DomainEvent{EventID: uuid.New(), UserID: 42, Type: "poll_answered"}

		_, err := svc.ProcessEvent(context.Background(), event)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown event type")
	})
}
