// internal/repository/repository.go
package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// This file defines the interfaces of the Data Access Layer. The concrete
// PostgreSQL implementations live in the *_repo.go files next to it; the
// service layer depends only on these contracts.
//
// Methods with a `Tx` suffix take a pgx.Tx and run inside a transaction owned
// by the caller (usually a service). The engine processes each domain event
// in exactly one transaction, so everything it touches has a Tx variant.

// ====================================================================================
// Account Repository (operator accounts: Admin / Bot)
// ====================================================================================

type AccountRepository interface {
	// CreateAccount stores a new operator account with an already-hashed password.
	CreateAccount(ctx context.Context, input *models.RegisterAccountInput, hashedPassword string) (int, error)

	// GetAccountByUsername returns the account or pgx.ErrNoRows.
	GetAccountByUsername(ctx context.Context, username string) (*models.Account, error)

	// GetAccountByID returns the account or pgx.ErrNoRows.
	GetAccountByID(ctx context.Context, id int) (*models.Account, error)
}

// ====================================================================================
// Player Repository
// ====================================================================================

type PlayerRepository interface {
	// UpsertPlayerTx inserts the player or refreshes username/first name,
	// filling the persisted VIP flag and timestamps back into the struct.
	// The VIP flag itself is never touched by the upsert.
	UpsertPlayerTx(ctx context.Context, tx pgx.Tx, player *models.Player) error

	// GetPlayerByID returns the player or pgx.ErrNoRows.
	GetPlayerByID(ctx context.Context, id int64) (*models.Player, error)

	// ListPlayers returns players ordered by creation time, paginated.
	ListPlayers(ctx context.Context, page, limit int) ([]models.Player, int, error)

	// SetVIP flips the paid-tier flag.
	SetVIP(ctx context.Context, id int64, isVIP bool) error
}

// ====================================================================================
// User Points Repository (balances)
// ====================================================================================

type UserPointsRepository interface {
	// GetByUserID returns the balance row, or a zero-valued row if the player
	// has never earned points.
	GetByUserID(ctx context.Context, userID int64) (*models.UserPoints, error)

	// GetForUpdateTx creates the balance row if missing and locks it
	// (SELECT ... FOR UPDATE). Serializes concurrent updates per player.
	GetForUpdateTx(ctx context.Context, tx pgx.Tx, userID int64) (*models.UserPoints, error)

	// GetTx reads the balance row inside the transaction without locking.
	GetTx(ctx context.Context, tx pgx.Tx, userID int64) (*models.UserPoints, error)

	// SaveTx writes back current/earned/spent and the multiplier window.
	SaveTx(ctx context.Context, tx pgx.Tx, up *models.UserPoints) error

	// TopByTotalEarned returns the leaderboard, best first.
	TopByTotalEarned(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// ====================================================================================
// Point Transaction Repository (append-only ledger)
// ====================================================================================

type PointTransactionRepository interface {
	// AppendTx appends one ledger entry. A duplicate EventID fails with a
	// unique violation, which the ledger surfaces as ErrDuplicateEvent.
	AppendTx(ctx context.Context, tx pgx.Tx, entry *models.PointTransaction) error

	// GetHistoryByUserID returns the ledger for a player, newest first.
	GetHistoryByUserID(ctx context.Context, userID int64, page, limit int) ([]models.PointTransaction, int, error)
}

// ====================================================================================
// Mission Repository (templates)
// ====================================================================================

type MissionRepository interface {
	// CreateMissionTx inserts the template; objectives are inserted separately.
	CreateMissionTx(ctx context.Context, tx pgx.Tx, mission *models.Mission) (int, error)

	// CreateObjectiveTx inserts one objective of a template.
	CreateObjectiveTx(ctx context.Context, tx pgx.Tx, missionID int, obj *models.MissionObjective) (int, error)

	// GetMissionByID returns the template with its objectives, or pgx.ErrNoRows.
	GetMissionByID(ctx context.Context, id int) (*models.Mission, error)

	// ListMissions returns templates (optionally only active ones), paginated,
	// objectives included.
	ListMissions(ctx context.Context, activeOnly bool, page, limit int) ([]models.Mission, int, error)

	// UpdateMission updates mutable template fields (not key/type/objectives).
	UpdateMission(ctx context.Context, id int, input *models.UpdateMissionInput) error

	// DeleteMission removes a template and cascades to its objectives.
	DeleteMission(ctx context.Context, id int) error

	// ListAssignableTx returns active templates of the given type the player
	// can receive: level and VIP gates pass, and no instance exists yet
	// (one_time: ever; daily: none currently active).
	ListAssignableTx(ctx context.Context, tx pgx.Tx, userID int64, mtype models.MissionType, level int, vip bool) ([]models.Mission, error)
}

// ====================================================================================
// User Mission Repository (instances)
// ====================================================================================

type UserMissionRepository interface {
	// AssignTx creates an instance in AVAILABLE state with zeroed objective
	// counters.
	AssignTx(ctx context.Context, tx pgx.Tx, userID int64, mission *models.Mission, expiresAt *time.Time) (int64, error)

	// GetActiveForUpdateTx returns the player's AVAILABLE/IN_PROGRESS
	// instances with template, objectives and counters, rows locked.
	GetActiveForUpdateTx(ctx context.Context, tx pgx.Tx, userID int64) ([]models.UserMission, error)

	// SaveProgressTx writes back instance status fields and objective counters.
	SaveProgressTx(ctx context.Context, tx pgx.Tx, um *models.UserMission) error

	// ExpireOverdueTx marks non-terminal instances past their deadline as
	// EXPIRED. Returns the number of rows flipped.
	ExpireOverdueTx(ctx context.Context, tx pgx.Tx, now time.Time) (int64, error)

	// CountCompletedByUserTx counts COMPLETED instances for achievement
	// criteria.
	CountCompletedByUserTx(ctx context.Context, tx pgx.Tx, userID int64) (int, error)

	// CountActiveDailyTx counts the player's non-terminal daily instances,
	// for the concurrent-assignment cap.
	CountActiveDailyTx(ctx context.Context, tx pgx.Tx, userID int64) (int, error)

	// ListByUser returns instances for a player, optional status filter,
	// newest first, paginated. Expiry is applied lazily: overdue rows are
	// flipped to EXPIRED before being returned.
	ListByUser(ctx context.Context, userID int64, statusFilter string, page, limit int) ([]models.UserMission, int, error)

	// ListUsersWithActiveDaily returns the ids of players holding at least
	// one non-terminal daily instance, for the scheduled refresh.
	ListUsersWithActiveDaily(ctx context.Context) ([]int64, error)
}

// ====================================================================================
// Achievement Repository
// ====================================================================================

// AchievementEvaluation pairs a template with the player's state (nil when
// the player has no row yet).
type AchievementEvaluation struct {
	Achievement models.Achievement
	State       *models.UserAchievement
}

type AchievementRepository interface {
	CreateAchievement(ctx context.Context, a *models.Achievement) (int, error)

	GetAchievementByID(ctx context.Context, id int) (*models.Achievement, error)

	ListAchievements(ctx context.Context, activeOnly bool, page, limit int) ([]models.Achievement, int, error)

	UpdateAchievement(ctx context.Context, id int, input *models.UpdateAchievementInput) error

	DeleteAchievement(ctx context.Context, id int) error

	// ListPendingTx returns active achievements the player has NOT completed
	// yet, with current state where one exists.
	ListPendingTx(ctx context.Context, tx pgx.Tx, userID int64) ([]AchievementEvaluation, error)

	// UpsertStateTx creates or updates the player's row for one achievement.
	// Completion is monotonic: the implementation never flips is_completed
	// back to false.
	UpsertStateTx(ctx context.Context, tx pgx.Tx, ua *models.UserAchievement) error

	// ListByUser returns the player's achievement states with templates,
	// paginated.
	ListByUser(ctx context.Context, userID int64, page, limit int) ([]models.UserAchievement, int, error)
}

// ====================================================================================
// Daily Reward Repository (tiers + streaks)
// ====================================================================================

type DailyRewardRepository interface {
	CreateTier(ctx context.Context, tier *models.DailyRewardTier) (int, error)

	GetTierByID(ctx context.Context, id int) (*models.DailyRewardTier, error)

	ListTiers(ctx context.Context, activeOnly bool) ([]models.DailyRewardTier, error)

	UpdateTier(ctx context.Context, id int, input *models.UpdateRewardTierInput) error

	DeleteTier(ctx context.Context, id int) error

	// ListActiveTiersTx returns the draw table inside the claim transaction.
	ListActiveTiersTx(ctx context.Context, tx pgx.Tx) ([]models.DailyRewardTier, error)

	// GetStreakForUpdateTx creates the streak row if missing and locks it,
	// so two same-day claims cannot race.
	GetStreakForUpdateTx(ctx context.Context, tx pgx.Tx, userID int64) (*models.DailyStreak, error)

	// SaveStreakTx writes back claim date and counters.
	SaveStreakTx(ctx context.Context, tx pgx.Tx, s *models.DailyStreak) error

	// GetStreak reads the streak row without locking (zero row if absent).
	GetStreak(ctx context.Context, userID int64) (*models.DailyStreak, error)

	// GetStreakTx is GetStreak inside a caller-owned transaction.
	GetStreakTx(ctx context.Context, tx pgx.Tx, userID int64) (*models.DailyStreak, error)
}
