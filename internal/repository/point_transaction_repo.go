// internal/repository/point_transaction_repo.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// ErrDuplicateEventID reports a ledger append whose event id was already
// recorded. The service layer maps it to its own duplicate-event error.
var ErrDuplicateEventID = errors.New("ledger entry with this event id already exists")

type pointTransactionRepo struct {
	db *pgxpool.Pool
}

// NewPointTransactionRepository creates a new PointTransactionRepository
// backed by PostgreSQL.
func NewPointTransactionRepository(db *pgxpool.Pool) PointTransactionRepository {
	return &pointTransactionRepo{db: db}
}

func (r *pointTransactionRepo) AppendTx(ctx context.Context, tx pgx.Tx, entry *models.PointTransaction) error {
	query := `INSERT INTO point_transactions
                (user_id, change_amount, balance_after, source, event_id, notes, created_by_account_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var createdBy sql.NullInt64
	if entry.CreatedByAccountID != 0 {
		createdBy = sql.NullInt64{Int64: int64(entry.CreatedByAccountID), Valid: true}
	}

	_, err := tx.Exec(ctx, query,
		entry.UserID,
		entry.ChangeAmount,
		entry.BalanceAfter,
		entry.Source,
		entry.EventID,
		entry.Notes,
		createdBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation on event_id: redelivered event
				zlog.Warn().Int64("user_id", entry.UserID).Interface("event_id", entry.EventID).Msg("RepoTx: duplicate event id on ledger append")
				return ErrDuplicateEventID
			case "23503": // foreign_key_violation
				zlog.Warn().Err(err).Int64("user_id", entry.UserID).Msg("RepoTx: foreign key violation on ledger append")
				return fmt.Errorf("invalid player or account id for ledger entry")
			}
		}
		zlog.Error().Err(err).Int64("user_id", entry.UserID).Msg("RepoTx: error appending ledger entry")
		return fmt.Errorf("repoTx error appending ledger entry: %w", err)
	}

	zlog.Debug().Int64("user_id", entry.UserID).Int("change", entry.ChangeAmount).Str("source", string(entry.Source)).Msg("Ledger entry appended")
	return nil
}

func (r *pointTransactionRepo) GetHistoryByUserID(ctx context.Context, userID int64, page, limit int) ([]models.PointTransaction, int, error) {
	countQuery := `SELECT COUNT(*) FROM point_transactions WHERE user_id = $1`
	var totalCount int
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&totalCount); err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("Repo: error counting ledger entries")
		return nil, 0, fmt.Errorf("error counting ledger entries for player %d: %w", userID, err)
	}
	if totalCount == 0 {
		return []models.PointTransaction{}, 0, nil
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	query := `SELECT id, user_id, change_amount, balance_after, source, event_id,
                     notes, created_by_account_id, created_at
              FROM point_transactions
              WHERE user_id = $1
              ORDER BY created_at DESC, id DESC
              LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zlog.Error().Err(err).Int64("user_id", userID).Msg("Repo: error querying ledger history")
		return nil, totalCount, fmt.Errorf("error getting ledger history for player %d: %w", userID, err)
	}
	defer rows.Close()

	entries := []models.PointTransaction{}
	for rows.Next() {
		var e models.PointTransaction
		var notes sql.NullString
		var createdBy sql.NullInt64

		scanErr := rows.Scan(
			&e.ID, &e.UserID, &e.ChangeAmount, &e.BalanceAfter, &e.Source,
			&e.EventID, &notes, &createdBy, &e.CreatedAt,
		)
		if scanErr != nil {
			zlog.Warn().Err(scanErr).Int64("user_id", userID).Msg("Repo: error scanning ledger row")
			return entries, totalCount, fmt.Errorf("error scanning ledger data: %w", scanErr)
		}

		if notes.Valid {
			e.Notes = notes.String
		}
		if createdBy.Valid {
			e.CreatedByAccountID = int(createdBy.Int64)
		}
		entries = append(entries, e)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		zlog.Error().Err(rowsErr).Int64("user_id", userID).Msg("Repo: error iterating ledger rows")
		return entries, totalCount, fmt.Errorf("error iterating ledger data: %w", rowsErr)
	}

	return entries, totalCount, nil
}
