// internal/service/points_service_impl.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/leveling"
	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/repository"
)

type pointsServiceImpl struct {
	db         TxBeginner
	playerRepo repository.PlayerRepository
	pointsRepo repository.UserPointsRepository
	ledgerRepo repository.PointTransactionRepository
	dailyRepo  repository.DailyRewardRepository
	now        func() time.Time
}

// NewPointsService creates a new instance of PointsService.
func NewPointsService(
	db TxBeginner,
	playerRepo repository.PlayerRepository,
	pointsRepo repository.UserPointsRepository,
	ledgerRepo repository.PointTransactionRepository,
	dailyRepo repository.DailyRewardRepository,
) PointsService {
	return &pointsServiceImpl{
		db:         db,
		playerRepo: playerRepo,
		pointsRepo: pointsRepo,
		ledgerRepo: ledgerRepo,
		dailyRepo:  dailyRepo,
		now:        time.Now,
	}
}

// activeMultiplier returns the player's multiplier if its window is still
// open, 1 otherwise.
func activeMultiplier(up *models.UserPoints, now time.Time) float64 {
	if up.Multiplier > 1 && up.MultiplierExpiresAt != nil && now.Before(*up.MultiplierExpiresAt) {
		return up.Multiplier
	}
	return 1
}

func (s *pointsServiceImpl) AwardTx(ctx context.Context, tx pgx.Tx, userID int64, base int, source models.PointSource, eventID *uuid.UUID, notes string, createdBy int, applyMultiplier bool) (*models.AwardResult, error) {
	up, err := s.pointsRepo.GetForUpdateTx(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("internal server error: could not load balance")
	}

	now := s.now()
	multiplier := 1.0
	if applyMultiplier {
		multiplier = activeMultiplier(up, now)
	}
	awarded := int(float64(base) * multiplier)

	up.CurrentPoints += awarded
	up.TotalEarned += awarded
	if err := s.pointsRepo.SaveTx(ctx, tx, up); err != nil {
		return nil, fmt.Errorf("internal server error: could not save balance")
	}

	// A zero-point entry is still appended when an event id is present: the
	// UNIQUE constraint on event_id is what makes redelivery detectable.
	if awarded != 0 || eventID != nil {
		entry := &models.PointTransaction{
			UserID:             userID,
			ChangeAmount:       awarded,
			BalanceAfter:       up.CurrentPoints,
			Source:             source,
			EventID:            eventID,
			Notes:              notes,
			CreatedByAccountID: createdBy,
		}
		if err := s.ledgerRepo.AppendTx(ctx, tx, entry); err != nil {
			if errors.Is(err, repository.ErrDuplicateEventID) {
				return nil, ErrDuplicateEvent
			}
			return nil, fmt.Errorf("internal server error: could not record points")
		}
	}

	if awarded > 0 {
		zlog.Info().Int64("user_id", userID).Int("awarded", awarded).Str("source", string(source)).Float64("multiplier", multiplier).Msg("Service: points awarded")
	}
	return &models.AwardResult{
		Awarded:       awarded,
		CurrentPoints: up.CurrentPoints,
		TotalEarned:   up.TotalEarned,
		TotalSpent:    up.TotalSpent,
		Multiplier:    multiplier,
	}, nil
}

func (s *pointsServiceImpl) Spend(ctx context.Context, userID int64, input *models.SpendPointsInput, accountID int) (result *models.UserPoints, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: failed to begin transaction for spend")
		return nil, fmt.Errorf("internal server error: could not start operation")
	}
	defer finishTx(ctx, tx, &err)

	up, err := s.pointsRepo.GetForUpdateTx(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("internal server error: could not load balance")
	}

	if up.CurrentPoints < input.Amount {
		zlog.Warn().Int64("user_id", userID).Int("balance", up.CurrentPoints).Int("amount", input.Amount).Msg("Service: spend rejected, balance too low")
		err = ErrInsufficientPoints
		return nil, err
	}

	up.CurrentPoints -= input.Amount
	up.TotalSpent += input.Amount
	if err = s.pointsRepo.SaveTx(ctx, tx, up); err != nil {
		return nil, fmt.Errorf("internal server error: could not save balance")
	}

	entry := &models.PointTransaction{
		UserID:             userID,
		ChangeAmount:       -input.Amount,
		BalanceAfter:       up.CurrentPoints,
		Source:             models.SourceShop,
		Notes:              input.Reason,
		CreatedByAccountID: accountID,
	}
	if err = s.ledgerRepo.AppendTx(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("internal server error: could not record spend")
	}

	zlog.Info().Int64("user_id", userID).Int("amount", input.Amount).Str("reason", input.Reason).Msg("Service: points spent")
	return up, nil
}

func (s *pointsServiceImpl) AdjustPoints(ctx context.Context, userID int64, input *models.AdjustPointsInput, accountID int) (result *models.UserPoints, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: failed to begin transaction for adjustment")
		return nil, fmt.Errorf("internal server error: could not start operation")
	}
	defer finishTx(ctx, tx, &err)

	up, err := s.pointsRepo.GetForUpdateTx(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("internal server error: could not load balance")
	}

	if input.ChangeAmount < 0 && up.CurrentPoints+input.ChangeAmount < 0 {
		err = ErrInsufficientPoints
		return nil, err
	}

	up.CurrentPoints += input.ChangeAmount
	if input.ChangeAmount > 0 {
		up.TotalEarned += input.ChangeAmount
	} else {
		up.TotalSpent += -input.ChangeAmount
	}
	if err = s.pointsRepo.SaveTx(ctx, tx, up); err != nil {
		return nil, fmt.Errorf("internal server error: could not save balance")
	}

	entry := &models.PointTransaction{
		UserID:             userID,
		ChangeAmount:       input.ChangeAmount,
		BalanceAfter:       up.CurrentPoints,
		Source:             models.SourceAdjustment,
		Notes:              input.Notes,
		CreatedByAccountID: accountID,
	}
	if err = s.ledgerRepo.AppendTx(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("internal server error: could not record adjustment")
	}

	zlog.Info().Int64("user_id", userID).Int("change", input.ChangeAmount).Int("account_id", accountID).Msg("Service: manual point adjustment applied")
	return up, nil
}

func (s *pointsServiceImpl) GetProfile(ctx context.Context, userID int64) (*models.PlayerProfile, error) {
	player, err := s.playerRepo.GetPlayerByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("internal server error: could not load player")
	}

	up, err := s.pointsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("internal server error: could not load balance")
	}

	streak, err := s.dailyRepo.GetStreak(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("internal server error: could not load streak")
	}

	level := leveling.LevelForPoints(up.TotalEarned)
	return &models.PlayerProfile{
		Player:            *player,
		Points:            *up,
		Level:             level,
		PointsToNextLevel: leveling.PointsToNextLevel(up.TotalEarned),
		Streak:            *streak,
	}, nil
}

func (s *pointsServiceImpl) GetHistory(ctx context.Context, userID int64, page, limit int) ([]models.PointTransaction, int, error) {
	return s.ledgerRepo.GetHistoryByUserID(ctx, userID, page, limit)
}

func (s *pointsServiceImpl) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	return s.pointsRepo.TopByTotalEarned(ctx, limit)
}
