// internal/repository/mission_repo.go
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

type missionRepo struct {
	db *pgxpool.Pool
}

// NewMissionRepository creates a new MissionRepository backed by PostgreSQL.
func NewMissionRepository(db *pgxpool.Pool) MissionRepository {
	return &missionRepo{db: db}
}

func (r *missionRepo) CreateMissionTx(ctx context.Context, tx pgx.Tx, mission *models.Mission) (int, error) {
	query := `INSERT INTO missions
                (mission_key, title, description, mission_type, points_reward,
                 level_required, vip_only, duration_hours, is_active)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
              RETURNING id`

	var id int
	err := tx.QueryRow(ctx, query,
		mission.MissionKey, mission.Title, mission.Description, mission.MissionType,
		mission.PointsReward, mission.LevelRequired, mission.VIPOnly,
		mission.DurationHours, mission.IsActive,
	).Scan(&id)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			zlog.Warn().Str("mission_key", mission.MissionKey).Msg("RepoTx: duplicate mission key")
			return 0, fmt.Errorf("mission key '%s' already exists", mission.MissionKey)
		}
		zlog.Error().Err(err).Str("mission_key", mission.MissionKey).Msg("RepoTx: error creating mission")
		return 0, fmt.Errorf("repoTx error creating mission: %w", err)
	}
	return id, nil
}

func (r *missionRepo) CreateObjectiveTx(ctx context.Context, tx pgx.Tx, missionID int, obj *models.MissionObjective) (int, error) {
	query := `INSERT INTO mission_objectives
                (mission_id, objective_key, action_type, required, sort_order)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`

	var id int
	err := tx.QueryRow(ctx, query, missionID, obj.ObjectiveKey, obj.ActionType, obj.Required, obj.SortOrder).Scan(&id)
	if err != nil {
		zlog.Error().Err(err).Int("mission_id", missionID).Str("objective_key", obj.ObjectiveKey).Msg("RepoTx: error creating mission objective")
		return 0, fmt.Errorf("repoTx error creating mission objective: %w", err)
	}
	return id, nil
}

const missionColumns = `id, mission_key, title, description, mission_type, points_reward,
                        level_required, vip_only, duration_hours, is_active, created_at, updated_at`

func scanMission(row pgx.Row, m *models.Mission) error {
	return row.Scan(
		&m.ID, &m.MissionKey, &m.Title, &m.Description, &m.MissionType,
		&m.PointsReward, &m.LevelRequired, &m.VIPOnly, &m.DurationHours,
		&m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
}

func (r *missionRepo) GetMissionByID(ctx context.Context, id int) (*models.Mission, error) {
	query := `SELECT ` + missionColumns + ` FROM missions WHERE id = $1`

	var m models.Mission
	if err := scanMission(r.db.QueryRow(ctx, query, id), &m); err != nil {
		return nil, err
	}

	objectives, err := r.objectivesFor(ctx, []int{m.ID})
	if err != nil {
		return nil, err
	}
	m.Objectives = objectives[m.ID]
	return &m, nil
}

// objectivesFor loads objectives for a set of missions in one query.
func (r *missionRepo) objectivesFor(ctx context.Context, missionIDs []int) (map[int][]models.MissionObjective, error) {
	query := `SELECT id, mission_id, objective_key, action_type, required, sort_order
              FROM mission_objectives
              WHERE mission_id = ANY($1)
              ORDER BY mission_id, sort_order, id`

	rows, err := r.db.Query(ctx, query, missionIDs)
	if err != nil {
		zlog.Error().Err(err).Msg("Repo: error querying mission objectives")
		return nil, fmt.Errorf("error getting mission objectives: %w", err)
	}
	defer rows.Close()

	return collectObjectives(rows)
}

func collectObjectives(rows pgx.Rows) (map[int][]models.MissionObjective, error) {
	byMission := map[int][]models.MissionObjective{}
	for rows.Next() {
		var o models.MissionObjective
		if err := rows.Scan(&o.ID, &o.MissionID, &o.ObjectiveKey, &o.ActionType, &o.Required, &o.SortOrder); err != nil {
			return byMission, fmt.Errorf("error scanning mission objective: %w", err)
		}
		byMission[o.MissionID] = append(byMission[o.MissionID], o)
	}
	if err := rows.Err(); err != nil {
		return byMission, fmt.Errorf("error iterating mission objectives: %w", err)
	}
	return byMission, nil
}

func (r *missionRepo) ListMissions(ctx context.Context, activeOnly bool, page, limit int) ([]models.Mission, int, error) {
	where := ""
	if activeOnly {
		where = " WHERE is_active"
	}

	var totalCount int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM missions`+where).Scan(&totalCount); err != nil {
		zlog.Error().Err(err).Msg("Repo: error counting missions")
		return nil, 0, fmt.Errorf("error counting missions: %w", err)
	}
	if totalCount == 0 {
		return []models.Mission{}, 0, nil
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + missionColumns + ` FROM missions` + where + `
              ORDER BY created_at DESC
              LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zlog.Error().Err(err).Msg("Repo: error querying missions")
		return nil, totalCount, fmt.Errorf("error getting missions: %w", err)
	}
	defer rows.Close()

	missions := []models.Mission{}
	ids := []int{}
	for rows.Next() {
		var m models.Mission
		if scanErr := scanMission(rows, &m); scanErr != nil {
			zlog.Warn().Err(scanErr).Msg("Repo: error scanning mission row")
			return missions, totalCount, fmt.Errorf("error scanning mission data: %w", scanErr)
		}
		missions = append(missions, m)
		ids = append(ids, m.ID)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		zlog.Error().Err(rowsErr).Msg("Repo: error iterating mission rows")
		return missions, totalCount, fmt.Errorf("error iterating mission data: %w", rowsErr)
	}

	if len(ids) > 0 {
		objectives, objErr := r.objectivesFor(ctx, ids)
		if objErr != nil {
			return missions, totalCount, objErr
		}
		for i := range missions {
			missions[i].Objectives = objectives[missions[i].ID]
		}
	}

	return missions, totalCount, nil
}

func (r *missionRepo) UpdateMission(ctx context.Context, id int, input *models.UpdateMissionInput) error {
	query := `UPDATE missions
              SET title = $2, description = $3, points_reward = $4,
                  level_required = $5, vip_only = $6, duration_hours = $7,
                  is_active = $8, updated_at = NOW()
              WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		id, input.Title, input.Description, input.PointsReward,
		input.LevelRequired, input.VIPOnly, input.DurationHours, input.IsActive,
	)
	if err != nil {
		zlog.Error().Err(err).Int("mission_id", id).Msg("Repo: error updating mission")
		return fmt.Errorf("error updating mission %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *missionRepo) DeleteMission(ctx context.Context, id int) error {
	// mission_objectives and user_missions cascade via FK.
	tag, err := r.db.Exec(ctx, `DELETE FROM missions WHERE id = $1`, id)
	if err != nil {
		zlog.Error().Err(err).Int("mission_id", id).Msg("Repo: error deleting mission")
		return fmt.Errorf("error deleting mission %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	zlog.Info().Int("mission_id", id).Msg("Mission deleted")
	return nil
}

func (r *missionRepo) ListAssignableTx(ctx context.Context, tx pgx.Tx, userID int64, mtype models.MissionType, level int, vip bool) ([]models.Mission, error) {
	// One-time missions are assignable once ever; daily missions whenever no
	// non-terminal instance is open.
	query := `SELECT ` + missionColumns + `
              FROM missions m
              WHERE m.is_active
                AND m.mission_type = $2
                AND m.level_required <= $3
                AND (NOT m.vip_only OR $4)
                AND NOT EXISTS (
                      SELECT 1 FROM user_missions um
                      WHERE um.mission_id = m.id
                        AND um.user_id = $1
                        AND (m.mission_type = 'one_time'
                             OR um.status IN ('available', 'in_progress'))
                )
              ORDER BY m.level_required, m.id`

	rows, err := tx.Query(ctx, query, userID, mtype, level, vip)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Str("mission_type", string(mtype)).Msg("RepoTx: error querying assignable missions")
		return nil, fmt.Errorf("repoTx error getting assignable missions: %w", err)
	}
	defer rows.Close()

	missions := []models.Mission{}
	ids := []int{}
	for rows.Next() {
		var m models.Mission
		if scanErr := scanMission(rows, &m); scanErr != nil {
			return missions, fmt.Errorf("repoTx error scanning assignable mission: %w", scanErr)
		}
		missions = append(missions, m)
		ids = append(ids, m.ID)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return missions, fmt.Errorf("repoTx error iterating assignable missions: %w", rowsErr)
	}

	if len(ids) == 0 {
		return missions, nil
	}

	objQuery := `SELECT id, mission_id, objective_key, action_type, required, sort_order
                 FROM mission_objectives
                 WHERE mission_id = ANY($1)
                 ORDER BY mission_id, sort_order, id`
	objRows, err := tx.Query(ctx, objQuery, ids)
	if err != nil {
		return missions, fmt.Errorf("repoTx error getting objectives for assignable missions: %w", err)
	}
	defer objRows.Close()

	byMission, err := collectObjectives(objRows)
	if err != nil {
		return missions, err
	}
	for i := range missions {
		missions[i].Objectives = byMission[missions[i].ID]
	}
	return missions, nil
}
