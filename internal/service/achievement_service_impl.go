// internal/service/achievement_service_impl.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/repository"
)

type achievementServiceImpl struct {
	achievementRepo repository.AchievementRepository
	userMissionRepo repository.UserMissionRepository
	dailyRepo       repository.DailyRewardRepository
	points          PointsService
}

// NewAchievementService creates a new instance of AchievementService.
func NewAchievementService(
	achievementRepo repository.AchievementRepository,
	userMissionRepo repository.UserMissionRepository,
	dailyRepo repository.DailyRewardRepository,
	points PointsService,
) AchievementService {
	return &achievementServiceImpl{
		achievementRepo: achievementRepo,
		userMissionRepo: userMissionRepo,
		dailyRepo:       dailyRepo,
		points:          points,
	}
}

func (s *achievementServiceImpl) CreateAchievement(ctx context.Context, input *models.CreateAchievementInput) (int, error) {
	a := &models.Achievement{
		AchievementKey: input.AchievementKey,
		Name:           input.Name,
		Description:    input.Description,
		CriteriaType:   models.AchievementCriteria(input.CriteriaType),
		CriteriaValue:  input.CriteriaValue,
		PointsReward:   input.PointsReward,
		IsSecret:       input.IsSecret,
	}
	id, err := s.achievementRepo.CreateAchievement(ctx, a)
	if err != nil {
		return 0, err
	}
	zlog.Info().Int("achievement_id", id).Str("achievement_key", input.AchievementKey).Msg("Service: achievement created")
	return id, nil
}

func (s *achievementServiceImpl) GetAchievement(ctx context.Context, id int) (*models.Achievement, error) {
	a, err := s.achievementRepo.GetAchievementByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAchievementNotFound
		}
		return nil, fmt.Errorf("internal server error: could not get achievement")
	}
	return a, nil
}

func (s *achievementServiceImpl) ListAchievements(ctx context.Context, activeOnly bool, page, limit int) ([]models.Achievement, int, error) {
	return s.achievementRepo.ListAchievements(ctx, activeOnly, page, limit)
}

func (s *achievementServiceImpl) UpdateAchievement(ctx context.Context, id int, input *models.UpdateAchievementInput) error {
	if err := s.achievementRepo.UpdateAchievement(ctx, id, input); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAchievementNotFound
		}
		return fmt.Errorf("internal server error: could not update achievement")
	}
	zlog.Info().Int("achievement_id", id).Msg("Service: achievement updated")
	return nil
}

func (s *achievementServiceImpl) DeleteAchievement(ctx context.Context, id int) error {
	if err := s.achievementRepo.DeleteAchievement(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAchievementNotFound
		}
		return fmt.Errorf("internal server error: could not delete achievement")
	}
	return nil
}

func (s *achievementServiceImpl) EvaluateTx(ctx context.Context, tx pgx.Tx, userID int64, level, totalEarned int) ([]models.AchievementUnlock, error) {
	pending, err := s.achievementRepo.ListPendingTx(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("internal server error: could not load achievements")
	}
	if len(pending) == 0 {
		return []models.AchievementUnlock{}, nil
	}

	// The mission and streak counters are only fetched when some pending
	// achievement actually needs them.
	missionsCompleted := -1
	streakDays := -1

	unlocks := []models.AchievementUnlock{}
	for i := range pending {
		a := &pending[i].Achievement

		var progress int
		switch a.CriteriaType {
		case models.CriteriaLevel:
			progress = level
		case models.CriteriaPointsEarned:
			progress = totalEarned
		case models.CriteriaMissionsCompleted:
			if missionsCompleted < 0 {
				missionsCompleted, err = s.userMissionRepo.CountCompletedByUserTx(ctx, tx, userID)
				if err != nil {
					return nil, fmt.Errorf("internal server error: could not count missions")
				}
			}
			progress = missionsCompleted
		case models.CriteriaStreak:
			if streakDays < 0 {
				streak, streakErr := s.dailyRepo.GetStreakTx(ctx, tx, userID)
				if streakErr != nil {
					return nil, fmt.Errorf("internal server error: could not load streak")
				}
				streakDays = streak.ConsecutiveDays
			}
			progress = streakDays
		default:
			zlog.Warn().Str("criteria_type", string(a.CriteriaType)).Int("achievement_id", a.ID).Msg("Service: unknown achievement criteria, skipping")
			continue
		}

		prevProgress := 0
		if pending[i].State != nil {
			prevProgress = pending[i].State.Progress
		}
		completed := progress >= a.CriteriaValue

		if !completed && progress == prevProgress {
			continue
		}

		state := &models.UserAchievement{
			UserID:        userID,
			AchievementID: a.ID,
			IsCompleted:   completed,
			Progress:      progress,
		}
		if completed {
			t := time.Now()
			state.CompletedAt = &t
		}
		if err = s.achievementRepo.UpsertStateTx(ctx, tx, state); err != nil {
			return nil, fmt.Errorf("internal server error: could not save achievement state")
		}

		if completed {
			if a.PointsReward > 0 {
				notes := fmt.Sprintf("achievement unlocked: %s", a.AchievementKey)
				if _, err = s.points.AwardTx(ctx, tx, userID, a.PointsReward, models.SourceAchievement, nil, notes, 0, false); err != nil {
					return nil, err
				}
			}
			unlocks = append(unlocks, models.AchievementUnlock{
				AchievementKey: a.AchievementKey,
				Name:           a.Name,
				PointsReward:   a.PointsReward,
			})
			zlog.Info().Int64("user_id", userID).Str("achievement_key", a.AchievementKey).Msg("Service: achievement unlocked")
		}
	}
	return unlocks, nil
}

func (s *achievementServiceImpl) ListForUser(ctx context.Context, userID int64, page, limit int) ([]models.UserAchievement, int, error) {
	states, total, err := s.achievementRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	// Secret achievements stay invisible until unlocked.
	visible := states[:0]
	for _, st := range states {
		if st.Achievement != nil && st.Achievement.IsSecret && !st.IsCompleted {
			continue
		}
		visible = append(visible, st)
	}
	return visible, total, nil
}
