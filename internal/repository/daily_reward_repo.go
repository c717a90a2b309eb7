// internal/repository/daily_reward_repo.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

type dailyRewardRepo struct {
	db *pgxpool.Pool
}

// NewDailyRewardRepository creates a new DailyRewardRepository backed by
// PostgreSQL.
func NewDailyRewardRepository(db *pgxpool.Pool) DailyRewardRepository {
	return &dailyRewardRepo{db: db}
}

const rewardTierColumns = `id, rarity, kind, points, multiplier, multiplier_hours,
       weight, streak_bonus_weight, is_active, created_at, updated_at`

func scanRewardTier(row pgx.Row, t *models.DailyRewardTier) error {
	return row.Scan(
		&t.ID, &t.Rarity, &t.Kind, &t.Points, &t.Multiplier, &t.MultiplierHours,
		&t.Weight, &t.StreakBonusWeight, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
}

func (r *dailyRewardRepo) CreateTier(ctx context.Context, tier *models.DailyRewardTier) (int, error) {
	query := `INSERT INTO daily_reward_tiers (rarity, kind, points, multiplier, multiplier_hours, weight, streak_bonus_weight, is_active)
              VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
              RETURNING id`

	var id int
	err := r.db.QueryRow(ctx, query,
		tier.Rarity, tier.Kind, tier.Points, tier.Multiplier, tier.MultiplierHours,
		tier.Weight, tier.StreakBonusWeight,
	).Scan(&id)
	if err != nil {
		zlog.Error().Err(err).Str("rarity", string(tier.Rarity)).Msg("Repo: error creating reward tier")
		return 0, fmt.Errorf("error creating reward tier: %w", err)
	}

	zlog.Info().Int("tier_id", id).Str("rarity", string(tier.Rarity)).Str("kind", string(tier.Kind)).Msg("Reward tier created")
	return id, nil
}

func (r *dailyRewardRepo) GetTierByID(ctx context.Context, id int) (*models.DailyRewardTier, error) {
	query := `SELECT ` + rewardTierColumns + ` FROM daily_reward_tiers WHERE id = $1`

	var t models.DailyRewardTier
	if err := scanRewardTier(r.db.QueryRow(ctx, query, id), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		zlog.Error().Err(err).Int("tier_id", id).Msg("Repo: error getting reward tier")
		return nil, fmt.Errorf("error getting reward tier %d: %w", id, err)
	}
	return &t, nil
}

func (r *dailyRewardRepo) ListTiers(ctx context.Context, activeOnly bool) ([]models.DailyRewardTier, error) {
	where := ""
	if activeOnly {
		where = " WHERE is_active = TRUE"
	}
	query := `SELECT ` + rewardTierColumns + ` FROM daily_reward_tiers` + where + ` ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zlog.Error().Err(err).Msg("Repo: error querying reward tiers")
		return nil, fmt.Errorf("error getting reward tiers: %w", err)
	}
	defer rows.Close()

	tiers := []models.DailyRewardTier{}
	for rows.Next() {
		var t models.DailyRewardTier
		if err := scanRewardTier(rows, &t); err != nil {
			return nil, fmt.Errorf("error scanning reward tier: %w", err)
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

func (r *dailyRewardRepo) UpdateTier(ctx context.Context, id int, input *models.UpdateRewardTierInput) error {
	query := `UPDATE daily_reward_tiers
              SET points = $2, multiplier = $3, multiplier_hours = $4, weight = $5,
                  streak_bonus_weight = $6, is_active = $7, updated_at = NOW()
              WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		id, input.Points, input.Multiplier, input.MultiplierHours, input.Weight,
		input.StreakBonusWeight, input.IsActive,
	)
	if err != nil {
		zlog.Error().Err(err).Int("tier_id", id).Msg("Repo: error updating reward tier")
		return fmt.Errorf("error updating reward tier %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *dailyRewardRepo) DeleteTier(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM daily_reward_tiers WHERE id = $1`, id)
	if err != nil {
		zlog.Error().Err(err).Int("tier_id", id).Msg("Repo: error deleting reward tier")
		return fmt.Errorf("error deleting reward tier %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	zlog.Info().Int("tier_id", id).Msg("Reward tier deleted")
	return nil
}

func (r *dailyRewardRepo) ListActiveTiersTx(ctx context.Context, tx pgx.Tx) ([]models.DailyRewardTier, error) {
	query := `SELECT ` + rewardTierColumns + ` FROM daily_reward_tiers WHERE is_active = TRUE ORDER BY id`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		zlog.Error().Err(err).Msg("RepoTx: error querying active reward tiers")
		return nil, fmt.Errorf("repoTx error getting active reward tiers: %w", err)
	}
	defer rows.Close()

	tiers := []models.DailyRewardTier{}
	for rows.Next() {
		var t models.DailyRewardTier
		if err := scanRewardTier(rows, &t); err != nil {
			return nil, fmt.Errorf("repoTx error scanning reward tier: %w", err)
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

const dailyStreakColumns = `user_id, last_claim_date, consecutive_days, longest_streak, updated_at`

func scanDailyStreak(row pgx.Row, s *models.DailyStreak) error {
	return row.Scan(&s.UserID, &s.LastClaimDate, &s.ConsecutiveDays, &s.LongestStreak, &s.UpdatedAt)
}

func (r *dailyRewardRepo) GetStreakForUpdateTx(ctx context.Context, tx pgx.Tx, userID int64) (*models.DailyStreak, error) {
	// Same pattern as the balance row: make sure it exists, then lock it.
	_, err := tx.Exec(ctx,
		`INSERT INTO daily_streaks (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("RepoTx: error ensuring streak row")
		return nil, fmt.Errorf("repoTx error ensuring streak row for player %d: %w", userID, err)
	}

	query := `SELECT ` + dailyStreakColumns + ` FROM daily_streaks WHERE user_id = $1 FOR UPDATE`
	var s models.DailyStreak
	if err := scanDailyStreak(tx.QueryRow(ctx, query, userID), &s); err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("RepoTx: error locking streak row")
		return nil, fmt.Errorf("repoTx error locking streak row for player %d: %w", userID, err)
	}
	return &s, nil
}

func (r *dailyRewardRepo) SaveStreakTx(ctx context.Context, tx pgx.Tx, s *models.DailyStreak) error {
	query := `UPDATE daily_streaks
              SET last_claim_date = $2, consecutive_days = $3, longest_streak = $4, updated_at = NOW()
              WHERE user_id = $1`

	tag, err := tx.Exec(ctx, query, s.UserID, s.LastClaimDate, s.ConsecutiveDays, s.LongestStreak)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", s.UserID).Msg("RepoTx: error saving streak")
		return fmt.Errorf("repoTx error saving streak for player %d: %w", s.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *dailyRewardRepo) GetStreak(ctx context.Context, userID int64) (*models.DailyStreak, error) {
	query := `SELECT ` + dailyStreakColumns + ` FROM daily_streaks WHERE user_id = $1`

	var s models.DailyStreak
	if err := scanDailyStreak(r.db.QueryRow(ctx, query, userID), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Never claimed: zero streak, no error.
			return &models.DailyStreak{UserID: userID}, nil
		}
		zlog.Error().Err(err).Int64("user_id", userID).Msg("Repo: error getting streak")
		return nil, fmt.Errorf("error getting streak for player %d: %w", userID, err)
	}
	return &s, nil
}

func (r *dailyRewardRepo) GetStreakTx(ctx context.Context, tx pgx.Tx, userID int64) (*models.DailyStreak, error) {
	query := `SELECT ` + dailyStreakColumns + ` FROM daily_streaks WHERE user_id = $1`

	var s models.DailyStreak
	if err := scanDailyStreak(tx.QueryRow(ctx, query, userID), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.DailyStreak{UserID: userID}, nil
		}
		zlog.Error().Err(err).Int64("user_id", userID).Msg("RepoTx: error getting streak")
		return nil, fmt.Errorf("repoTx error getting streak for player %d: %w", userID, err)
	}
	return &s, nil
}
