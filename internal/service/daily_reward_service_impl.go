// internal/service/daily_reward_service_impl.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/leveling"
	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/repository"
)

type dailyRewardServiceImpl struct {
	db           TxBeginner
	dailyRepo    repository.DailyRewardRepository
	pointsRepo   repository.UserPointsRepository
	points       PointsService
	achievements AchievementService
	now          func() time.Time
	intn         func(n int) int
}

// NewDailyRewardService creates a new instance of DailyRewardService.
func NewDailyRewardService(
	db TxBeginner,
	dailyRepo repository.DailyRewardRepository,
	pointsRepo repository.UserPointsRepository,
	points PointsService,
	achievements AchievementService,
) DailyRewardService {
	return &dailyRewardServiceImpl{
		db:           db,
		dailyRepo:    dailyRepo,
		pointsRepo:   pointsRepo,
		points:       points,
		achievements: achievements,
		now:          time.Now,
		intn:         rand.IntN,
	}
}

func (s *dailyRewardServiceImpl) CreateTier(ctx context.Context, input *models.CreateRewardTierInput) (int, error) {
	tier := &models.DailyRewardTier{
		Rarity:            models.RewardRarity(input.Rarity),
		Kind:              models.RewardKind(input.Kind),
		Points:            input.Points,
		Multiplier:        input.Multiplier,
		MultiplierHours:   input.MultiplierHours,
		Weight:            input.Weight,
		StreakBonusWeight: input.StreakBonusWeight,
	}
	id, err := s.dailyRepo.CreateTier(ctx, tier)
	if err != nil {
		return 0, err
	}
	zlog.Info().Int("tier_id", id).Str("rarity", input.Rarity).Str("kind", input.Kind).Msg("Service: reward tier created")
	return id, nil
}

func (s *dailyRewardServiceImpl) GetTier(ctx context.Context, id int) (*models.DailyRewardTier, error) {
	tier, err := s.dailyRepo.GetTierByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRewardTierNotFound
		}
		return nil, fmt.Errorf("internal server error: could not get reward tier")
	}
	return tier, nil
}

func (s *dailyRewardServiceImpl) ListTiers(ctx context.Context, activeOnly bool) ([]models.DailyRewardTier, error) {
	return s.dailyRepo.ListTiers(ctx, activeOnly)
}

func (s *dailyRewardServiceImpl) UpdateTier(ctx context.Context, id int, input *models.UpdateRewardTierInput) error {
	if err := s.dailyRepo.UpdateTier(ctx, id, input); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRewardTierNotFound
		}
		return fmt.Errorf("internal server error: could not update reward tier")
	}
	zlog.Info().Int("tier_id", id).Msg("Service: reward tier updated")
	return nil
}

func (s *dailyRewardServiceImpl) DeleteTier(ctx context.Context, id int) error {
	if err := s.dailyRepo.DeleteTier(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRewardTierNotFound
		}
		return fmt.Errorf("internal server error: could not delete reward tier")
	}
	return nil
}

func (s *dailyRewardServiceImpl) CanClaim(ctx context.Context, userID int64) (bool, *models.DailyStreak, error) {
	streak, err := s.dailyRepo.GetStreak(ctx, userID)
	if err != nil {
		return false, nil, fmt.Errorf("internal server error: could not load streak")
	}
	_, sameDay := nextStreak(streak.LastClaimDate, streak.ConsecutiveDays, s.now())
	return !sameDay, streak, nil
}

func (s *dailyRewardServiceImpl) Claim(ctx context.Context, userID int64) (result *models.DailyClaimResult, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Service: failed to begin transaction for daily claim")
		return nil, fmt.Errorf("internal server error: could not start operation")
	}
	defer finishTx(ctx, tx, &err)

	// The locked streak row is the claim's mutex: two same-day requests
	// serialize here and the loser sees today's date already written.
	streak, err := s.dailyRepo.GetStreakForUpdateTx(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("internal server error: could not load streak")
	}

	now := s.now()
	next, sameDay := nextStreak(streak.LastClaimDate, streak.ConsecutiveDays, now)
	if sameDay {
		err = ErrAlreadyClaimedToday
		return nil, err
	}

	tiers, err := s.dailyRepo.ListActiveTiersTx(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("internal server error: could not load reward tiers")
	}
	tier := drawRewardTier(tiers, next, s.intn)
	if tier == nil {
		err = ErrNoActiveRewardTiers
		return nil, err
	}

	streak.ConsecutiveDays = next
	if next > streak.LongestStreak {
		streak.LongestStreak = next
	}
	today := utcDate(now)
	streak.LastClaimDate = &today
	if err = s.dailyRepo.SaveStreakTx(ctx, tx, streak); err != nil {
		return nil, fmt.Errorf("internal server error: could not save streak")
	}

	result = &models.DailyClaimResult{
		Tier:            *tier,
		ConsecutiveDays: streak.ConsecutiveDays,
		LongestStreak:   streak.LongestStreak,
	}

	switch tier.Kind {
	case models.RewardKindPoints:
		notes := fmt.Sprintf("daily reward (%s, day %d)", tier.Rarity, next)
		award, awardErr := s.points.AwardTx(ctx, tx, userID, tier.Points, models.SourceDaily, nil, notes, 0, false)
		if awardErr != nil {
			err = awardErr
			return nil, err
		}
		result.PointsAwarded = award.Awarded
		result.NewBalance = award.CurrentPoints

	case models.RewardKindMultiplier:
		up, upErr := s.pointsRepo.GetForUpdateTx(ctx, tx, userID)
		if upErr != nil {
			err = fmt.Errorf("internal server error: could not load balance")
			return nil, err
		}
		expires := now.Add(time.Duration(tier.MultiplierHours) * time.Hour)
		up.Multiplier = tier.Multiplier
		up.MultiplierExpiresAt = &expires
		if err = s.pointsRepo.SaveTx(ctx, tx, up); err != nil {
			return nil, fmt.Errorf("internal server error: could not save balance")
		}
		result.NewBalance = up.CurrentPoints

	default:
		err = fmt.Errorf("internal server error: unknown reward kind '%s'", tier.Kind)
		return nil, err
	}

	// A fresh streak may unlock streak achievements right away.
	up, upErr := s.pointsRepo.GetTx(ctx, tx, userID)
	if upErr != nil {
		err = fmt.Errorf("internal server error: could not reload balance")
		return nil, err
	}
	level := leveling.LevelForPoints(up.TotalEarned)
	if _, err = s.achievements.EvaluateTx(ctx, tx, userID, level, up.TotalEarned); err != nil {
		return nil, err
	}

	zlog.Info().Int64("user_id", userID).Str("rarity", string(tier.Rarity)).Str("kind", string(tier.Kind)).Int("streak", next).Msg("Service: daily reward claimed")
	return result, nil
}
