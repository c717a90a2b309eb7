// internal/database/schema.go
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	zlog "github.com/rs/zerolog/log"
)

// schemaDDL is applied on startup. Statements are idempotent, so restarting
// the service against an existing database is safe. The UNIQUE constraint on
// point_transactions.event_id is what makes event redelivery a no-op, and the
// (user_id) / (user_id, achievement_id) keys are the ON CONFLICT targets the
// repositories rely on.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
        id         SERIAL PRIMARY KEY,
        username   TEXT NOT NULL UNIQUE,
        password   TEXT NOT NULL,
        role       TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,

	`CREATE TABLE IF NOT EXISTS players (
        id         BIGINT PRIMARY KEY,
        username   TEXT NOT NULL DEFAULT '',
        first_name TEXT NOT NULL DEFAULT '',
        is_vip     BOOLEAN NOT NULL DEFAULT FALSE,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,

	`CREATE TABLE IF NOT EXISTS user_points (
        user_id               BIGINT PRIMARY KEY REFERENCES players(id),
        current_points        INTEGER NOT NULL DEFAULT 0,
        total_earned          INTEGER NOT NULL DEFAULT 0,
        total_spent           INTEGER NOT NULL DEFAULT 0,
        multiplier            DOUBLE PRECISION NOT NULL DEFAULT 1,
        multiplier_expires_at TIMESTAMPTZ,
        updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,

	`CREATE TABLE IF NOT EXISTS point_transactions (
        id                    BIGSERIAL PRIMARY KEY,
        user_id               BIGINT NOT NULL REFERENCES players(id),
        change_amount         INTEGER NOT NULL,
        balance_after         INTEGER NOT NULL,
        source                TEXT NOT NULL,
        event_id              UUID UNIQUE,
        notes                 TEXT NOT NULL DEFAULT '',
        created_by_account_id INTEGER REFERENCES accounts(id),
        created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE INDEX IF NOT EXISTS idx_point_transactions_user
        ON point_transactions (user_id, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS missions (
        id             SERIAL PRIMARY KEY,
        mission_key    TEXT NOT NULL UNIQUE,
        title          TEXT NOT NULL,
        description    TEXT NOT NULL DEFAULT '',
        mission_type   TEXT NOT NULL,
        points_reward  INTEGER NOT NULL DEFAULT 0,
        level_required INTEGER NOT NULL DEFAULT 1,
        vip_only       BOOLEAN NOT NULL DEFAULT FALSE,
        duration_hours INTEGER NOT NULL DEFAULT 0,
        is_active      BOOLEAN NOT NULL DEFAULT TRUE,
        created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,

	`CREATE TABLE IF NOT EXISTS mission_objectives (
        id            SERIAL PRIMARY KEY,
        mission_id    INTEGER NOT NULL REFERENCES missions(id) ON DELETE CASCADE,
        objective_key TEXT NOT NULL,
        action_type   TEXT NOT NULL,
        required      INTEGER NOT NULL,
        sort_order    INTEGER NOT NULL DEFAULT 0
    )`,

	`CREATE TABLE IF NOT EXISTS user_missions (
        id                  BIGSERIAL PRIMARY KEY,
        user_id             BIGINT NOT NULL REFERENCES players(id),
        mission_id          INTEGER NOT NULL REFERENCES missions(id),
        status              TEXT NOT NULL DEFAULT 'available',
        reward_claimed      BOOLEAN NOT NULL DEFAULT FALSE,
        progress_percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
        assigned_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        started_at          TIMESTAMPTZ,
        completed_at        TIMESTAMPTZ,
        expires_at          TIMESTAMPTZ,
        created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE INDEX IF NOT EXISTS idx_user_missions_user_status
        ON user_missions (user_id, status)`,

	`CREATE TABLE IF NOT EXISTS user_mission_objectives (
        id              BIGSERIAL PRIMARY KEY,
        user_mission_id BIGINT NOT NULL REFERENCES user_missions(id) ON DELETE CASCADE,
        objective_id    INTEGER NOT NULL REFERENCES mission_objectives(id),
        progress        INTEGER NOT NULL DEFAULT 0,
        UNIQUE (user_mission_id, objective_id)
    )`,

	`CREATE TABLE IF NOT EXISTS achievements (
        id              SERIAL PRIMARY KEY,
        achievement_key TEXT NOT NULL UNIQUE,
        name            TEXT NOT NULL,
        description     TEXT NOT NULL DEFAULT '',
        criteria_type   TEXT NOT NULL,
        criteria_value  INTEGER NOT NULL,
        points_reward   INTEGER NOT NULL DEFAULT 0,
        is_secret       BOOLEAN NOT NULL DEFAULT FALSE,
        is_active       BOOLEAN NOT NULL DEFAULT TRUE,
        created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,

	`CREATE TABLE IF NOT EXISTS user_achievements (
        id             BIGSERIAL PRIMARY KEY,
        user_id        BIGINT NOT NULL REFERENCES players(id),
        achievement_id INTEGER NOT NULL REFERENCES achievements(id),
        is_completed   BOOLEAN NOT NULL DEFAULT FALSE,
        progress       INTEGER NOT NULL DEFAULT 0,
        completed_at   TIMESTAMPTZ,
        created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        UNIQUE (user_id, achievement_id)
    )`,

	`CREATE TABLE IF NOT EXISTS daily_streaks (
        user_id          BIGINT PRIMARY KEY REFERENCES players(id),
        last_claim_date  DATE,
        consecutive_days INTEGER NOT NULL DEFAULT 0,
        longest_streak   INTEGER NOT NULL DEFAULT 0,
        updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,

	`CREATE TABLE IF NOT EXISTS daily_reward_tiers (
        id                  SERIAL PRIMARY KEY,
        rarity              TEXT NOT NULL,
        kind                TEXT NOT NULL,
        points              INTEGER NOT NULL DEFAULT 0,
        multiplier          DOUBLE PRECISION NOT NULL DEFAULT 1,
        multiplier_hours    INTEGER NOT NULL DEFAULT 0,
        weight              INTEGER NOT NULL,
        streak_bonus_weight INTEGER NOT NULL DEFAULT 0,
        is_active           BOOLEAN NOT NULL DEFAULT TRUE,
        created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
}

// EnsureSchema creates any missing tables and indexes.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	zlog.Info().Msg("Ensuring database schema...")
	for _, stmt := range schemaDDL {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			zlog.Error().Err(err).Msg("Failed to apply schema statement")
			return fmt.Errorf("unable to apply database schema: %w", err)
		}
	}
	zlog.Info().Msg("Database schema is up to date")
	return nil
}
