// internal/service/engine_service_impl.go
package service

import (
	"context"
	"fmt"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/leveling"
	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/repository"
)

// eventRule maps an event type to its base award and the mission action it
// feeds, if any.
type eventRule struct {
	points int
	source models.PointSource
	action models.ActionType
}

// Base awards per event type. mission_action carries no points of its own;
// it only advances objectives.
var eventRules = map[models.EventType]eventRule{
	models.EventReactionAdded:       {points: 10, source: models.SourceReaction, action: models.ActionReactions},
	models.EventUserStartedBot:      {points: 25, source: models.SourceStart},
	models.EventNarrativeProgressed: {points: 15, source: models.SourceNarrative, action: models.ActionNarrative},
	models.EventTriviaAnswered:      {points: 20, source: models.SourceTrivia, action: models.ActionTrivia},
	models.EventCheckin:             {points: 5, source: models.SourceCheckin, action: models.ActionCheckins},
	models.EventMissionAction:       {points: 0, source: models.SourceMission},
}

type engineServiceImpl struct {
	db           TxBeginner
	playerRepo   repository.PlayerRepository
	pointsRepo   repository.UserPointsRepository
	points       PointsService
	missions     MissionService
	achievements AchievementService
	now          func() time.Time
}

// NewEngineService creates a new instance of EngineService.
func NewEngineService(
	db TxBeginner,
	playerRepo repository.PlayerRepository,
	pointsRepo repository.UserPointsRepository,
	points PointsService,
	missions MissionService,
	achievements AchievementService,
) EngineService {
	return &engineServiceImpl{
		db:           db,
		playerRepo:   playerRepo,
		pointsRepo:   pointsRepo,
		points:       points,
		missions:     missions,
		achievements: achievements,
		now:          time.Now,
	}
}

// ProcessEvent runs the whole pipeline for one event inside one transaction.
// Order matters: the base award moves TotalEarned, mission completions pay on
// top of it, and achievements see the sum of both.
func (s *engineServiceImpl) ProcessEvent(ctx context.Context, event *models.DomainEvent) (outcome *models.EventOutcome, err error) {
	rule, ok := eventRules[event.Type]
	if !ok {
		return nil, fmt.Errorf("unknown event type '%s'", event.Type)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: failed to begin transaction for event")
		return nil, fmt.Errorf("internal server error: could not start operation")
	}
	defer finishTx(ctx, tx, &err)

	player := &models.Player{
		ID:        event.UserID,
		Username:  event.Username,
		FirstName: event.FirstName,
	}
	if err = s.playerRepo.UpsertPlayerTx(ctx, tx, player); err != nil {
		return nil, fmt.Errorf("internal server error: could not upsert player")
	}

	// 1. Base award, multiplier window applied. The event id rides on this
	// ledger entry; a redelivered event dies here with ErrDuplicateEvent.
	eventID := event.EventID
	award, err := s.points.AwardTx(ctx, tx, event.UserID, rule.points, rule.source, &eventID, string(event.Type), 0, true)
	if err != nil {
		return nil, err
	}

	prevLevel := leveling.LevelForPoints(award.TotalEarned - award.Awarded)

	// 2. Mission progress. A first contact also seeds the mission board.
	now := s.now()
	completions := []models.MissionCompletion{}
	if event.Type == models.EventUserStartedBot {
		level := leveling.LevelForPoints(award.TotalEarned)
		if _, err = s.missions.AssignMissionsTx(ctx, tx, event.UserID, level, player.IsVIP); err != nil {
			return nil, err
		}
	}
	action := rule.action
	if event.Type == models.EventMissionAction {
		action = event.ActionType
	}
	if action != "" {
		completions, err = s.missions.ApplyActionTx(ctx, tx, event.UserID, action, event.Value, now)
		if err != nil {
			return nil, err
		}
	}

	// 3. Achievements, evaluated against the balance after mission payouts.
	up, err := s.pointsRepo.GetTx(ctx, tx, event.UserID)
	if err != nil {
		return nil, fmt.Errorf("internal server error: could not reload balance")
	}
	level := leveling.LevelForPoints(up.TotalEarned)
	unlocks, err := s.achievements.EvaluateTx(ctx, tx, event.UserID, level, up.TotalEarned)
	if err != nil {
		return nil, err
	}

	// 4. Final read for the outcome, after every payout has landed.
	up, err = s.pointsRepo.GetTx(ctx, tx, event.UserID)
	if err != nil {
		return nil, fmt.Errorf("internal server error: could not reload balance")
	}
	finalLevel := leveling.LevelForPoints(up.TotalEarned)

	outcome = &models.EventOutcome{
		EventID:              event.EventID,
		UserID:               event.UserID,
		PointsAwarded:        up.TotalEarned - (award.TotalEarned - award.Awarded),
		NewBalance:           up.CurrentPoints,
		TotalEarned:          up.TotalEarned,
		PreviousLevel:        prevLevel,
		Level:                finalLevel,
		LevelUp:              finalLevel > prevLevel,
		CompletedMissions:    completions,
		UnlockedAchievements: unlocks,
	}

	zlog.Info().
		Str("event_id", event.EventID.String()).
		Int64("user_id", event.UserID).
		Str("type", string(event.Type)).
		Int("points_awarded", outcome.PointsAwarded).
		Bool("level_up", outcome.LevelUp).
		Int("completed_missions", len(completions)).
		Int("unlocked_achievements", len(unlocks)).
		Msg("Service: event processed")
	return outcome, nil
}
