// internal/repository/player_repo.go
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

type playerRepo struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository backed by PostgreSQL.
func NewPlayerRepository(db *pgxpool.Pool) PlayerRepository {
	return &playerRepo{db: db}
}

func (r *playerRepo) UpsertPlayerTx(ctx context.Context, tx pgx.Tx, player *models.Player) error {
	// The VIP flag is managed by admins only, so the conflict branch leaves it
	// alone and just refreshes the Telegram profile fields.
	query := `INSERT INTO players (id, username, first_name)
              VALUES ($1, $2, $3)
              ON CONFLICT (id) DO UPDATE
                SET username = EXCLUDED.username,
                    first_name = EXCLUDED.first_name,
                    updated_at = NOW()
              RETURNING is_vip, created_at, updated_at`

	err := tx.QueryRow(ctx, query, player.ID, player.Username, player.FirstName).
		Scan(&player.IsVIP, &player.CreatedAt, &player.UpdatedAt)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", player.ID).Msg("RepoTx: error upserting player")
		return fmt.Errorf("repoTx error upserting player %d: %w", player.ID, err)
	}
	return nil
}

func (r *playerRepo) GetPlayerByID(ctx context.Context, id int64) (*models.Player, error) {
	query := `SELECT id, username, first_name, is_vip, created_at, updated_at
              FROM players
              WHERE id = $1`

	var p models.Player
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Username, &p.FirstName, &p.IsVIP, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *playerRepo) ListPlayers(ctx context.Context, page, limit int) ([]models.Player, int, error) {
	countQuery := `SELECT COUNT(*) FROM players`
	var totalCount int
	if err := r.db.QueryRow(ctx, countQuery).Scan(&totalCount); err != nil {
		zlog.Error().Err(err).Msg("Repo: error counting players")
		return nil, 0, fmt.Errorf("error counting players: %w", err)
	}
	if totalCount == 0 {
		return []models.Player{}, 0, nil
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	query := `SELECT id, username, first_name, is_vip, created_at, updated_at
              FROM players
              ORDER BY created_at DESC
              LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zlog.Error().Err(err).Msg("Repo: error querying players")
		return nil, totalCount, fmt.Errorf("error getting players: %w", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		var p models.Player
		if scanErr := rows.Scan(&p.ID, &p.Username, &p.FirstName, &p.IsVIP, &p.CreatedAt, &p.UpdatedAt); scanErr != nil {
			zlog.Warn().Err(scanErr).Msg("Repo: error scanning player row")
			return players, totalCount, fmt.Errorf("error scanning player data: %w", scanErr)
		}
		players = append(players, p)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		zlog.Error().Err(rowsErr).Msg("Repo: error iterating player rows")
		return players, totalCount, fmt.Errorf("error iterating player data: %w", rowsErr)
	}

	return players, totalCount, nil
}

func (r *playerRepo) SetVIP(ctx context.Context, id int64, isVIP bool) error {
	query := `UPDATE players SET is_vip = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, isVIP)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", id).Msg("Repo: error updating VIP flag")
		return fmt.Errorf("error updating VIP flag for player %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	zlog.Info().Int64("user_id", id).Bool("is_vip", isVIP).Msg("Player VIP flag updated")
	return nil
}
