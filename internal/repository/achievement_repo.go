// internal/repository/achievement_repo.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

type achievementRepo struct {
	db *pgxpool.Pool
}

// NewAchievementRepository creates a new AchievementRepository backed by
// PostgreSQL.
func NewAchievementRepository(db *pgxpool.Pool) AchievementRepository {
	return &achievementRepo{db: db}
}

const achievementColumns = `id, achievement_key, name, description, criteria_type, criteria_value,
       points_reward, is_secret, is_active, created_at, updated_at`

func scanAchievement(row pgx.Row, a *models.Achievement) error {
	return row.Scan(
		&a.ID, &a.AchievementKey, &a.Name, &a.Description, &a.CriteriaType, &a.CriteriaValue,
		&a.PointsReward, &a.IsSecret, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
}

func (r *achievementRepo) CreateAchievement(ctx context.Context, a *models.Achievement) (int, error) {
	query := `INSERT INTO achievements (achievement_key, name, description, criteria_type, criteria_value, points_reward, is_secret, is_active)
              VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
              RETURNING id`

	var id int
	err := r.db.QueryRow(ctx, query,
		a.AchievementKey, a.Name, a.Description, a.CriteriaType, a.CriteriaValue,
		a.PointsReward, a.IsSecret,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, fmt.Errorf("achievement key '%s' already exists", a.AchievementKey)
		}
		zlog.Error().Err(err).Str("achievement_key", a.AchievementKey).Msg("Repo: error creating achievement")
		return 0, fmt.Errorf("error creating achievement: %w", err)
	}

	zlog.Info().Int("achievement_id", id).Str("achievement_key", a.AchievementKey).Msg("Achievement created")
	return id, nil
}

func (r *achievementRepo) GetAchievementByID(ctx context.Context, id int) (*models.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE id = $1`

	var a models.Achievement
	if err := scanAchievement(r.db.QueryRow(ctx, query, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		zlog.Error().Err(err).Int("achievement_id", id).Msg("Repo: error getting achievement")
		return nil, fmt.Errorf("error getting achievement %d: %w", id, err)
	}
	return &a, nil
}

func (r *achievementRepo) ListAchievements(ctx context.Context, activeOnly bool, page, limit int) ([]models.Achievement, int, error) {
	where := ""
	if activeOnly {
		where = " WHERE is_active = TRUE"
	}

	var totalCount int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM achievements"+where).Scan(&totalCount); err != nil {
		zlog.Error().Err(err).Msg("Repo: error counting achievements")
		return nil, 0, fmt.Errorf("error counting achievements: %w", err)
	}
	if totalCount == 0 {
		return []models.Achievement{}, 0, nil
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + achievementColumns + ` FROM achievements` + where + `
              ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zlog.Error().Err(err).Msg("Repo: error querying achievements")
		return nil, totalCount, fmt.Errorf("error getting achievements: %w", err)
	}
	defer rows.Close()

	achievements := []models.Achievement{}
	for rows.Next() {
		var a models.Achievement
		if err := scanAchievement(rows, &a); err != nil {
			return nil, totalCount, fmt.Errorf("error scanning achievement: %w", err)
		}
		achievements = append(achievements, a)
	}
	return achievements, totalCount, rows.Err()
}

func (r *achievementRepo) UpdateAchievement(ctx context.Context, id int, input *models.UpdateAchievementInput) error {
	query := `UPDATE achievements
              SET name = $2, description = $3, criteria_value = $4, points_reward = $5,
                  is_secret = $6, is_active = $7, updated_at = NOW()
              WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		id, input.Name, input.Description, input.CriteriaValue, input.PointsReward,
		input.IsSecret, input.IsActive,
	)
	if err != nil {
		zlog.Error().Err(err).Int("achievement_id", id).Msg("Repo: error updating achievement")
		return fmt.Errorf("error updating achievement %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *achievementRepo) DeleteAchievement(ctx context.Context, id int) error {
	// user_achievements rows go with it (ON DELETE CASCADE).
	tag, err := r.db.Exec(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		zlog.Error().Err(err).Int("achievement_id", id).Msg("Repo: error deleting achievement")
		return fmt.Errorf("error deleting achievement %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	zlog.Info().Int("achievement_id", id).Msg("Achievement deleted")
	return nil
}

func (r *achievementRepo) ListPendingTx(ctx context.Context, tx pgx.Tx, userID int64) ([]AchievementEvaluation, error) {
	// LEFT JOIN so achievements the player has never touched come back with a
	// NULL state.
	query := `SELECT a.id, a.achievement_key, a.name, a.description, a.criteria_type, a.criteria_value,
                     a.points_reward, a.is_secret, a.is_active, a.created_at, a.updated_at,
                     ua.id, ua.progress, ua.created_at, ua.updated_at
              FROM achievements a
              LEFT JOIN user_achievements ua ON ua.achievement_id = a.id AND ua.user_id = $1
              WHERE a.is_active = TRUE
                AND (ua.id IS NULL OR ua.is_completed = FALSE)
              ORDER BY a.id`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("RepoTx: error querying pending achievements")
		return nil, fmt.Errorf("repoTx error getting pending achievements for player %d: %w", userID, err)
	}
	defer rows.Close()

	pending := []AchievementEvaluation{}
	for rows.Next() {
		var ev AchievementEvaluation
		var stateID *int64
		var progress *int
		var createdAt, updatedAt *time.Time
		a := &ev.Achievement
		err := rows.Scan(
			&a.ID, &a.AchievementKey, &a.Name, &a.Description, &a.CriteriaType, &a.CriteriaValue,
			&a.PointsReward, &a.IsSecret, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
			&stateID, &progress, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repoTx error scanning pending achievement: %w", err)
		}
		if stateID != nil {
			ev.State = &models.UserAchievement{
				ID:            *stateID,
				UserID:        userID,
				AchievementID: a.ID,
				Progress:      *progress,
				CreatedAt:     *createdAt,
				UpdatedAt:     *updatedAt,
			}
		}
		pending = append(pending, ev)
	}
	return pending, rows.Err()
}

func (r *achievementRepo) UpsertStateTx(ctx context.Context, tx pgx.Tx, ua *models.UserAchievement) error {
	// Unlocks stay unlocked: the ORs keep is_completed and completed_at from
	// ever going backwards.
	query := `INSERT INTO user_achievements (user_id, achievement_id, is_completed, progress, completed_at)
              VALUES ($1, $2, $3, $4, $5)
              ON CONFLICT (user_id, achievement_id) DO UPDATE
              SET is_completed = user_achievements.is_completed OR EXCLUDED.is_completed,
                  progress = GREATEST(user_achievements.progress, EXCLUDED.progress),
                  completed_at = COALESCE(user_achievements.completed_at, EXCLUDED.completed_at),
                  updated_at = NOW()
              RETURNING id`

	err := tx.QueryRow(ctx, query,
		ua.UserID, ua.AchievementID, ua.IsCompleted, ua.Progress, ua.CompletedAt,
	).Scan(&ua.ID)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", ua.UserID).Int("achievement_id", ua.AchievementID).Msg("RepoTx: error upserting achievement state")
		return fmt.Errorf("repoTx error upserting achievement state: %w", err)
	}
	return nil
}

func (r *achievementRepo) ListByUser(ctx context.Context, userID int64, page, limit int) ([]models.UserAchievement, int, error) {
	var totalCount int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_achievements WHERE user_id = $1`, userID).Scan(&totalCount)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("Repo: error counting user achievements")
		return nil, 0, fmt.Errorf("error counting achievements for player %d: %w", userID, err)
	}
	if totalCount == 0 {
		return []models.UserAchievement{}, 0, nil
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ua.id, ua.user_id, ua.achievement_id, ua.is_completed, ua.progress,
                     ua.completed_at, ua.created_at, ua.updated_at,
                     a.id, a.achievement_key, a.name, a.description, a.criteria_type, a.criteria_value,
                     a.points_reward, a.is_secret, a.is_active, a.created_at, a.updated_at
              FROM user_achievements ua
              JOIN achievements a ON a.id = ua.achievement_id
              WHERE ua.user_id = $1
              ORDER BY ua.is_completed DESC, ua.completed_at DESC NULLS LAST, a.id
              LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("Repo: error querying user achievements")
		return nil, totalCount, fmt.Errorf("error getting achievements for player %d: %w", userID, err)
	}
	defer rows.Close()

	states := []models.UserAchievement{}
	for rows.Next() {
		var ua models.UserAchievement
		var a models.Achievement
		err := rows.Scan(
			&ua.ID, &ua.UserID, &ua.AchievementID, &ua.IsCompleted, &ua.Progress,
			&ua.CompletedAt, &ua.CreatedAt, &ua.UpdatedAt,
			&a.ID, &a.AchievementKey, &a.Name, &a.Description, &a.CriteriaType, &a.CriteriaValue,
			&a.PointsReward, &a.IsSecret, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, totalCount, fmt.Errorf("error scanning user achievement: %w", err)
		}
		ua.Achievement = &a
		states = append(states, ua)
	}
	return states, totalCount, rows.Err()
}
