// internal/service/mission_service_impl.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/leveling"
	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/repository"
)

// defaultDailyMissionCap bounds how many daily missions a player can hold at
// once, so the bot's mission screen stays short.
const defaultDailyMissionCap = 3

type missionServiceImpl struct {
	db              TxBeginner
	missionRepo     repository.MissionRepository
	userMissionRepo repository.UserMissionRepository
	playerRepo      repository.PlayerRepository
	pointsRepo      repository.UserPointsRepository
	points          PointsService
	dailyCap        int
	now             func() time.Time
}

// NewMissionService creates a new instance of MissionService.
func NewMissionService(
	db TxBeginner,
	missionRepo repository.MissionRepository,
	userMissionRepo repository.UserMissionRepository,
	playerRepo repository.PlayerRepository,
	pointsRepo repository.UserPointsRepository,
	points PointsService,
) MissionService {
	return &missionServiceImpl{
		db:              db,
		missionRepo:     missionRepo,
		userMissionRepo: userMissionRepo,
		playerRepo:      playerRepo,
		pointsRepo:      pointsRepo,
		points:          points,
		dailyCap:        defaultDailyMissionCap,
		now:             time.Now,
	}
}

func (s *missionServiceImpl) CreateMission(ctx context.Context, input *models.CreateMissionInput) (id int, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: failed to begin transaction for mission creation")
		return 0, fmt.Errorf("internal server error: could not start operation")
	}
	defer finishTx(ctx, tx, &err)

	mission := &models.Mission{
		MissionKey:    input.MissionKey,
		Title:         input.Title,
		Description:   input.Description,
		MissionType:   models.MissionType(input.MissionType),
		PointsReward:  input.PointsReward,
		LevelRequired: input.LevelRequired,
		VIPOnly:       input.VIPOnly,
		DurationHours: input.DurationHours,
	}
	id, err = s.missionRepo.CreateMissionTx(ctx, tx, mission)
	if err != nil {
		return 0, err
	}

	for i, objInput := range input.Objectives {
		obj := &models.MissionObjective{
			ObjectiveKey: objInput.ObjectiveKey,
			ActionType:   models.ActionType(objInput.ActionType),
			Required:     objInput.Required,
			SortOrder:    i,
		}
		if _, err = s.missionRepo.CreateObjectiveTx(ctx, tx, id, obj); err != nil {
			return 0, fmt.Errorf("internal server error: could not store objective")
		}
	}

	zlog.Info().Int("mission_id", id).Str("mission_key", input.MissionKey).Int("objectives", len(input.Objectives)).Msg("Service: mission created")
	return id, nil
}

func (s *missionServiceImpl) GetMission(ctx context.Context, id int) (*models.Mission, error) {
	mission, err := s.missionRepo.GetMissionByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMissionNotFound
		}
		return nil, fmt.Errorf("internal server error: could not get mission")
	}
	return mission, nil
}

func (s *missionServiceImpl) ListMissions(ctx context.Context, activeOnly bool, page, limit int) ([]models.Mission, int, error) {
	return s.missionRepo.ListMissions(ctx, activeOnly, page, limit)
}

func (s *missionServiceImpl) UpdateMission(ctx context.Context, id int, input *models.UpdateMissionInput) error {
	if err := s.missionRepo.UpdateMission(ctx, id, input); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrMissionNotFound
		}
		return fmt.Errorf("internal server error: could not update mission")
	}
	zlog.Info().Int("mission_id", id).Msg("Service: mission updated")
	return nil
}

func (s *missionServiceImpl) DeleteMission(ctx context.Context, id int) error {
	if err := s.missionRepo.DeleteMission(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrMissionNotFound
		}
		return fmt.Errorf("internal server error: could not delete mission")
	}
	return nil
}

func (s *missionServiceImpl) AssignMissionsTx(ctx context.Context, tx pgx.Tx, userID int64, level int, vip bool) (int, error) {
	assigned := 0
	now := s.now()

	oneTime, err := s.missionRepo.ListAssignableTx(ctx, tx, userID, models.MissionTypeOneTime, level, vip)
	if err != nil {
		return 0, fmt.Errorf("internal server error: could not list assignable missions")
	}
	for i := range oneTime {
		if err := s.assignOne(ctx, tx, userID, &oneTime[i], now); err != nil {
			return assigned, err
		}
		assigned++
	}

	activeDaily, err := s.userMissionRepo.CountActiveDailyTx(ctx, tx, userID)
	if err != nil {
		return assigned, fmt.Errorf("internal server error: could not count daily missions")
	}
	slots := s.dailyCap - activeDaily
	if slots <= 0 {
		return assigned, nil
	}

	daily, err := s.missionRepo.ListAssignableTx(ctx, tx, userID, models.MissionTypeDaily, level, vip)
	if err != nil {
		return assigned, fmt.Errorf("internal server error: could not list assignable missions")
	}
	for i := range daily {
		if slots == 0 {
			break
		}
		if err := s.assignOne(ctx, tx, userID, &daily[i], now); err != nil {
			return assigned, err
		}
		assigned++
		slots--
	}
	return assigned, nil
}

func (s *missionServiceImpl) assignOne(ctx context.Context, tx pgx.Tx, userID int64, mission *models.Mission, now time.Time) error {
	var expiresAt *time.Time
	if mission.DurationHours > 0 {
		t := now.Add(time.Duration(mission.DurationHours) * time.Hour)
		expiresAt = &t
	}
	if _, err := s.userMissionRepo.AssignTx(ctx, tx, userID, mission, expiresAt); err != nil {
		return fmt.Errorf("internal server error: could not assign mission")
	}
	return nil
}

func (s *missionServiceImpl) ApplyActionTx(ctx context.Context, tx pgx.Tx, userID int64, action models.ActionType, value int, now time.Time) ([]models.MissionCompletion, error) {
	if value <= 0 {
		value = 1
	}

	active, err := s.userMissionRepo.GetActiveForUpdateTx(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("internal server error: could not load active missions")
	}

	completions := []models.MissionCompletion{}
	for i := range active {
		um := &active[i]
		changed, completedNow := applyActionToMission(um, action, value, now)
		if !changed {
			continue
		}

		if completedNow && !um.RewardClaimed {
			// Payout happens in the same transaction as the status flip, so a
			// completed mission can never pay twice or not at all.
			um.RewardClaimed = true
			notes := fmt.Sprintf("mission completed: %s", um.Mission.MissionKey)
			if _, err := s.points.AwardTx(ctx, tx, userID, um.Mission.PointsReward, models.SourceMission, nil, notes, 0, false); err != nil {
				return nil, err
			}
			completions = append(completions, models.MissionCompletion{
				UserMissionID: um.ID,
				MissionKey:    um.Mission.MissionKey,
				Title:         um.Mission.Title,
				PointsReward:  um.Mission.PointsReward,
			})
			zlog.Info().Int64("user_id", userID).Str("mission_key", um.Mission.MissionKey).Int("reward", um.Mission.PointsReward).Msg("Service: mission completed")
		}

		if err := s.userMissionRepo.SaveProgressTx(ctx, tx, um); err != nil {
			return nil, fmt.Errorf("internal server error: could not save mission progress")
		}
	}
	return completions, nil
}

func (s *missionServiceImpl) RefreshDaily(ctx context.Context) (expired int64, assigned int, err error) {
	// Capture the boards to refill before the sweep wipes them: only players
	// currently holding a daily mission get a fresh board at midnight.
	// Everyone else gets theirs on their next event.
	userIDs, err := s.userMissionRepo.ListUsersWithActiveDaily(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("internal server error: could not list players for refresh")
	}

	// Expiry sweep in its own short transaction.
	tx, err := s.db.Begin(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: failed to begin transaction for daily refresh")
		return 0, 0, fmt.Errorf("internal server error: could not start operation")
	}
	expired, err = s.userMissionRepo.ExpireOverdueTx(ctx, tx, s.now())
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, 0, fmt.Errorf("internal server error: could not expire missions")
	}
	if err = tx.Commit(ctx); err != nil {
		zlog.Error().Err(err).Msg("Service: failed to commit expiry sweep")
		return 0, 0, fmt.Errorf("internal server error: could not finalize operation")
	}

	// Then one transaction per player, so a failure for one player never
	// holds up the rest.
	for _, userID := range userIDs {
		player, getErr := s.playerRepo.GetPlayerByID(ctx, userID)
		if getErr != nil {
			zlog.Error().Err(getErr).Int64("user_id", userID).Msg("Service: daily refresh could not load player")
			continue
		}
		n, assignErr := s.refreshPlayer(ctx, player)
		if assignErr != nil {
			zlog.Error().Err(assignErr).Int64("user_id", userID).Msg("Service: daily refresh failed for player")
			continue
		}
		assigned += n
	}

	zlog.Info().Int64("expired", expired).Int("assigned", assigned).Msg("Service: daily mission refresh finished")
	return expired, assigned, nil
}

func (s *missionServiceImpl) refreshPlayer(ctx context.Context, player *models.Player) (n int, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer finishTx(ctx, tx, &err)

	up, err := s.pointsRepo.GetTx(ctx, tx, player.ID)
	if err != nil {
		return 0, err
	}
	level := leveling.LevelForPoints(up.TotalEarned)

	n, err = s.AssignMissionsTx(ctx, tx, player.ID, level, player.IsVIP)
	return n, err
}

func (s *missionServiceImpl) ListForUser(ctx context.Context, userID int64, statusFilter string, page, limit int) ([]models.UserMission, int, error) {
	return s.userMissionRepo.ListByUser(ctx, userID, statusFilter, page, limit)
}
