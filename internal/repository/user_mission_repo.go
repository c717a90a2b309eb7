// internal/repository/user_mission_repo.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

type userMissionRepo struct {
	db *pgxpool.Pool
}

// NewUserMissionRepository creates a new UserMissionRepository backed by
// PostgreSQL.
func NewUserMissionRepository(db *pgxpool.Pool) UserMissionRepository {
	return &userMissionRepo{db: db}
}

func (r *userMissionRepo) AssignTx(ctx context.Context, tx pgx.Tx, userID int64, mission *models.Mission, expiresAt *time.Time) (int64, error) {
	query := `INSERT INTO user_missions (user_id, mission_id, status, expires_at)
              VALUES ($1, $2, 'available', $3)
              RETURNING id`

	var id int64
	if err := tx.QueryRow(ctx, query, userID, mission.ID, expiresAt).Scan(&id); err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Int("mission_id", mission.ID).Msg("RepoTx: error assigning mission")
		return 0, fmt.Errorf("repoTx error assigning mission %d to player %d: %w", mission.ID, userID, err)
	}

	// One counter row per objective, starting at zero.
	for i := range mission.Objectives {
		obj := &mission.Objectives[i]
		_, err := tx.Exec(ctx,
			`INSERT INTO user_mission_objectives (user_mission_id, objective_id, progress) VALUES ($1, $2, 0)`,
			id, obj.ID,
		)
		if err != nil {
			zlog.Error().Err(err).Int64("user_mission_id", id).Int("objective_id", obj.ID).Msg("RepoTx: error seeding objective counter")
			return 0, fmt.Errorf("repoTx error seeding objective counter: %w", err)
		}
	}

	zlog.Info().Int64("user_id", userID).Str("mission_key", mission.MissionKey).Int64("user_mission_id", id).Msg("Mission assigned")
	return id, nil
}

const userMissionColumns = `um.id, um.user_id, um.mission_id, um.status, um.reward_claimed,
       um.progress_percentage, um.assigned_at, um.started_at, um.completed_at,
       um.expires_at, um.created_at, um.updated_at,
       m.id, m.mission_key, m.title, m.description, m.mission_type, m.points_reward,
       m.level_required, m.vip_only, m.duration_hours, m.is_active, m.created_at, m.updated_at`

func scanUserMission(rows pgx.Rows) (*models.UserMission, error) {
	var um models.UserMission
	var m models.Mission
	err := rows.Scan(
		&um.ID, &um.UserID, &um.MissionID, &um.Status, &um.RewardClaimed,
		&um.ProgressPercentage, &um.AssignedAt, &um.StartedAt, &um.CompletedAt,
		&um.ExpiresAt, &um.CreatedAt, &um.UpdatedAt,
		&m.ID, &m.MissionKey, &m.Title, &m.Description, &m.MissionType, &m.PointsReward,
		&m.LevelRequired, &m.VIPOnly, &m.DurationHours, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	um.Mission = &m
	return &um, nil
}

// loadObjectiveCounters attaches counters (with their objective templates) to
// the given instances.
func loadObjectiveCounters(ctx context.Context, q interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}, missions map[int64]*models.UserMission) error {
	ids := make([]int64, 0, len(missions))
	for id := range missions {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}

	query := `SELECT umo.id, umo.user_mission_id, umo.objective_id, umo.progress,
                     mo.id, mo.mission_id, mo.objective_key, mo.action_type, mo.required, mo.sort_order
              FROM user_mission_objectives umo
              JOIN mission_objectives mo ON mo.id = umo.objective_id
              WHERE umo.user_mission_id = ANY($1)
              ORDER BY umo.user_mission_id, mo.sort_order, mo.id`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("error getting objective counters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.UserMissionObjective
		var o models.MissionObjective
		if err := rows.Scan(
			&c.ID, &c.UserMissionID, &c.ObjectiveID, &c.Progress,
			&o.ID, &o.MissionID, &o.ObjectiveKey, &o.ActionType, &o.Required, &o.SortOrder,
		); err != nil {
			return fmt.Errorf("error scanning objective counter: %w", err)
		}
		c.Objective = &o
		if um, ok := missions[c.UserMissionID]; ok {
			um.Objectives = append(um.Objectives, c)
		}
	}
	return rows.Err()
}

func (r *userMissionRepo) GetActiveForUpdateTx(ctx context.Context, tx pgx.Tx, userID int64) ([]models.UserMission, error) {
	// Lock the instance rows, not the template rows, so concurrent events for
	// different players never contend.
	query := `SELECT ` + userMissionColumns + `
              FROM user_missions um
              JOIN missions m ON m.id = um.mission_id
              WHERE um.user_id = $1 AND um.status IN ('available', 'in_progress')
              ORDER BY um.id
              FOR UPDATE OF um`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("RepoTx: error locking active missions")
		return nil, fmt.Errorf("repoTx error getting active missions for player %d: %w", userID, err)
	}

	byID := map[int64]*models.UserMission{}
	order := []int64{}
	for rows.Next() {
		um, scanErr := scanUserMission(rows)
		if scanErr != nil {
			rows.Close()
			return nil, fmt.Errorf("repoTx error scanning active mission: %w", scanErr)
		}
		byID[um.ID] = um
		order = append(order, um.ID)
	}
	rowsErr := rows.Err()
	rows.Close()
	if rowsErr != nil {
		return nil, fmt.Errorf("repoTx error iterating active missions: %w", rowsErr)
	}

	if err := loadObjectiveCounters(ctx, tx, byID); err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("RepoTx: error loading objective counters")
		return nil, fmt.Errorf("repoTx %w", err)
	}

	result := make([]models.UserMission, 0, len(order))
	for _, id := range order {
		result = append(result, *byID[id])
	}
	return result, nil
}

func (r *userMissionRepo) SaveProgressTx(ctx context.Context, tx pgx.Tx, um *models.UserMission) error {
	query := `UPDATE user_missions
              SET status = $2, reward_claimed = $3, progress_percentage = $4,
                  started_at = $5, completed_at = $6, updated_at = NOW()
              WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		um.ID, um.Status, um.RewardClaimed, um.ProgressPercentage,
		um.StartedAt, um.CompletedAt,
	)
	if err != nil {
		zlog.Error().Err(err).Int64("user_mission_id", um.ID).Msg("RepoTx: error saving mission progress")
		return fmt.Errorf("repoTx error saving mission progress %d: %w", um.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	for i := range um.Objectives {
		c := &um.Objectives[i]
		_, err := tx.Exec(ctx,
			`UPDATE user_mission_objectives SET progress = $2 WHERE id = $1`,
			c.ID, c.Progress,
		)
		if err != nil {
			zlog.Error().Err(err).Int64("counter_id", c.ID).Msg("RepoTx: error saving objective counter")
			return fmt.Errorf("repoTx error saving objective counter %d: %w", c.ID, err)
		}
	}
	return nil
}

func (r *userMissionRepo) ExpireOverdueTx(ctx context.Context, tx pgx.Tx, now time.Time) (int64, error) {
	query := `UPDATE user_missions
              SET status = 'expired', updated_at = NOW()
              WHERE status IN ('available', 'in_progress')
                AND expires_at IS NOT NULL
                AND expires_at < $1`

	tag, err := tx.Exec(ctx, query, now)
	if err != nil {
		zlog.Error().Err(err).Msg("RepoTx: error expiring overdue missions")
		return 0, fmt.Errorf("repoTx error expiring overdue missions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *userMissionRepo) CountCompletedByUserTx(ctx context.Context, tx pgx.Tx, userID int64) (int, error) {
	var count int
	err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_missions WHERE user_id = $1 AND status = 'completed'`,
		userID,
	).Scan(&count)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("RepoTx: error counting completed missions")
		return 0, fmt.Errorf("repoTx error counting completed missions for player %d: %w", userID, err)
	}
	return count, nil
}

func (r *userMissionRepo) CountActiveDailyTx(ctx context.Context, tx pgx.Tx, userID int64) (int, error) {
	var count int
	err := tx.QueryRow(ctx,
		`SELECT COUNT(*)
         FROM user_missions um
         JOIN missions m ON m.id = um.mission_id
         WHERE um.user_id = $1
           AND m.mission_type = 'daily'
           AND um.status IN ('available', 'in_progress')`,
		userID,
	).Scan(&count)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("RepoTx: error counting active daily missions")
		return 0, fmt.Errorf("repoTx error counting active daily missions for player %d: %w", userID, err)
	}
	return count, nil
}

func (r *userMissionRepo) ListByUser(ctx context.Context, userID int64, statusFilter string, page, limit int) ([]models.UserMission, int, error) {
	// Lazy expiry: flip overdue instances before reading so callers never see
	// an expired mission still reported as active.
	_, err := r.db.Exec(ctx,
		`UPDATE user_missions
         SET status = 'expired', updated_at = NOW()
         WHERE user_id = $1 AND status IN ('available', 'in_progress')
           AND expires_at IS NOT NULL AND expires_at < NOW()`,
		userID,
	)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("Repo: error applying lazy mission expiry")
		return nil, 0, fmt.Errorf("error expiring missions for player %d: %w", userID, err)
	}

	args := []any{userID}
	where := `WHERE um.user_id = $1`
	if statusFilter != "" {
		where += ` AND um.status = $2`
		args = append(args, statusFilter)
	}

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM user_missions um ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("Repo: error counting user missions")
		return nil, 0, fmt.Errorf("error counting missions for player %d: %w", userID, err)
	}
	if totalCount == 0 {
		return []models.UserMission{}, 0, nil
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	query := fmt.Sprintf(`SELECT `+userMissionColumns+`
              FROM user_missions um
              JOIN missions m ON m.id = um.mission_id
              %s
              ORDER BY um.assigned_at DESC, um.id DESC
              LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("Repo: error querying user missions")
		return nil, totalCount, fmt.Errorf("error getting missions for player %d: %w", userID, err)
	}

	byID := map[int64]*models.UserMission{}
	order := []int64{}
	for rows.Next() {
		um, scanErr := scanUserMission(rows)
		if scanErr != nil {
			rows.Close()
			return nil, totalCount, fmt.Errorf("error scanning user mission: %w", scanErr)
		}
		byID[um.ID] = um
		order = append(order, um.ID)
	}
	rowsErr := rows.Err()
	rows.Close()
	if rowsErr != nil {
		return nil, totalCount, fmt.Errorf("error iterating user missions: %w", rowsErr)
	}

	if err := loadObjectiveCounters(ctx, r.db, byID); err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("Repo: error loading objective counters")
		return nil, totalCount, err
	}

	result := make([]models.UserMission, 0, len(order))
	for _, id := range order {
		result = append(result, *byID[id])
	}
	return result, totalCount, nil
}

func (r *userMissionRepo) ListUsersWithActiveDaily(ctx context.Context) ([]int64, error) {
	query := `SELECT DISTINCT um.user_id
              FROM user_missions um
              JOIN missions m ON m.id = um.mission_id
              WHERE m.mission_type = 'daily'
                AND um.status IN ('available', 'in_progress')`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zlog.Error().Err(err).Msg("Repo: error querying users with active daily missions")
		return nil, fmt.Errorf("error getting users with active daily missions: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return ids, fmt.Errorf("error scanning user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
