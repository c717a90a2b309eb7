// internal/repository/account_repo.go
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

type accountRepo struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository backed by PostgreSQL.
func NewAccountRepository(db *pgxpool.Pool) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) CreateAccount(ctx context.Context, input *models.RegisterAccountInput, hashedPassword string) (int, error) {
	query := `INSERT INTO accounts (username, password, role)
              VALUES ($1, $2, $3)
              RETURNING id`

	var id int
	err := r.db.QueryRow(ctx, query, input.Username, hashedPassword, input.Role).Scan(&id)
	if err != nil {
		// 23505 = unique_violation (duplicate username)
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			zlog.Warn().Str("username", input.Username).Msg("Repo: duplicate username on account creation")
			return 0, fmt.Errorf("username '%s' already exists", input.Username)
		}
		zlog.Error().Err(err).Str("username", input.Username).Msg("Repo: error creating account")
		return 0, fmt.Errorf("error creating account: %w", err)
	}

	zlog.Info().Int("account_id", id).Str("username", input.Username).Str("role", input.Role).Msg("Account created")
	return id, nil
}

func (r *accountRepo) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `SELECT id, username, password, role, created_at, updated_at
              FROM accounts
              WHERE username = $1`

	var a models.Account
	err := r.db.QueryRow(ctx, query, username).Scan(
		&a.ID, &a.Username, &a.Password, &a.Role, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err // pgx.ErrNoRows passes through for the caller to map
	}
	return &a, nil
}

func (r *accountRepo) GetAccountByID(ctx context.Context, id int) (*models.Account, error) {
	query := `SELECT id, username, password, role, created_at, updated_at
              FROM accounts
              WHERE id = $1`

	var a models.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Username, &a.Password, &a.Role, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
