// internal/repository/user_points_repo.go
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/leveling"
	"github.com/carlostoek/diana-gamification-be/internal/models"
)

type userPointsRepo struct {
	db *pgxpool.Pool
}

// NewUserPointsRepository creates a new UserPointsRepository backed by PostgreSQL.
func NewUserPointsRepository(db *pgxpool.Pool) UserPointsRepository {
	return &userPointsRepo{db: db}
}

const userPointsColumns = `user_id, current_points, total_earned, total_spent, multiplier, multiplier_expires_at, updated_at`

func scanUserPoints(row pgx.Row, up *models.UserPoints) error {
	return row.Scan(
		&up.UserID, &up.CurrentPoints, &up.TotalEarned, &up.TotalSpent,
		&up.Multiplier, &up.MultiplierExpiresAt, &up.UpdatedAt,
	)
}

func (r *userPointsRepo) GetByUserID(ctx context.Context, userID int64) (*models.UserPoints, error) {
	query := `SELECT ` + userPointsColumns + ` FROM user_points WHERE user_id = $1`

	var up models.UserPoints
	err := scanUserPoints(r.db.QueryRow(ctx, query, userID), &up)
	if err == pgx.ErrNoRows {
		// A player who never earned points has a well-defined zero balance.
		return &models.UserPoints{UserID: userID, Multiplier: 1}, nil
	}
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("Repo: error reading user points")
		return nil, fmt.Errorf("error reading points for player %d: %w", userID, err)
	}
	return &up, nil
}

func (r *userPointsRepo) GetForUpdateTx(ctx context.Context, tx pgx.Tx, userID int64) (*models.UserPoints, error) {
	// Create the row on first touch, then lock it. The row lock serializes
	// every point mutation for the same player within concurrent events.
	insert := `INSERT INTO user_points (user_id, current_points, total_earned, total_spent, multiplier)
               VALUES ($1, 0, 0, 0, 1)
               ON CONFLICT (user_id) DO NOTHING`
	if _, err := tx.Exec(ctx, insert, userID); err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("RepoTx: error ensuring user points row")
		return nil, fmt.Errorf("repoTx error ensuring points row for player %d: %w", userID, err)
	}

	query := `SELECT ` + userPointsColumns + ` FROM user_points WHERE user_id = $1 FOR UPDATE`
	var up models.UserPoints
	if err := scanUserPoints(tx.QueryRow(ctx, query, userID), &up); err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("RepoTx: error locking user points row")
		return nil, fmt.Errorf("repoTx error locking points row for player %d: %w", userID, err)
	}
	return &up, nil
}

func (r *userPointsRepo) GetTx(ctx context.Context, tx pgx.Tx, userID int64) (*models.UserPoints, error) {
	query := `SELECT ` + userPointsColumns + ` FROM user_points WHERE user_id = $1`

	var up models.UserPoints
	err := scanUserPoints(tx.QueryRow(ctx, query, userID), &up)
	if err == pgx.ErrNoRows {
		return &models.UserPoints{UserID: userID, Multiplier: 1}, nil
	}
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("RepoTx: error reading user points")
		return nil, fmt.Errorf("repoTx error reading points for player %d: %w", userID, err)
	}
	return &up, nil
}

func (r *userPointsRepo) SaveTx(ctx context.Context, tx pgx.Tx, up *models.UserPoints) error {
	query := `UPDATE user_points
              SET current_points = $2,
                  total_earned = $3,
                  total_spent = $4,
                  multiplier = $5,
                  multiplier_expires_at = $6,
                  updated_at = NOW()
              WHERE user_id = $1`

	tag, err := tx.Exec(ctx, query,
		up.UserID, up.CurrentPoints, up.TotalEarned, up.TotalSpent,
		up.Multiplier, up.MultiplierExpiresAt,
	)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", up.UserID).Msg("RepoTx: error saving user points")
		return fmt.Errorf("repoTx error saving points for player %d: %w", up.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		// GetForUpdateTx must have been called first in the same transaction.
		return fmt.Errorf("repoTx points row for player %d does not exist", up.UserID)
	}
	return nil
}

func (r *userPointsRepo) TopByTotalEarned(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	query := `SELECT up.user_id, COALESCE(p.username, ''), up.total_earned
              FROM user_points up
              JOIN players p ON p.id = up.user_id
              ORDER BY up.total_earned DESC, up.user_id ASC
              LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zlog.Error().Err(err).Msg("Repo: error querying leaderboard")
		return nil, fmt.Errorf("error getting leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	rank := 0
	for rows.Next() {
		var e models.LeaderboardEntry
		if scanErr := rows.Scan(&e.UserID, &e.Username, &e.TotalEarned); scanErr != nil {
			zlog.Warn().Err(scanErr).Msg("Repo: error scanning leaderboard row")
			return entries, fmt.Errorf("error scanning leaderboard data: %w", scanErr)
		}
		rank++
		e.Rank = rank
		e.Level = leveling.LevelForPoints(e.TotalEarned)
		entries = append(entries, e)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		zlog.Error().Err(rowsErr).Msg("Repo: error iterating leaderboard rows")
		return entries, fmt.Errorf("error iterating leaderboard data: %w", rowsErr)
	}

	return entries, nil
}
