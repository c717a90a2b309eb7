// internal/service/service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/carlostoek/diana-gamification-be/internal/models"
)

// Service Layer Interfaces define the business logic operations.
// Handlers depend on these interfaces, not directly on repositories.
//
// Services own database transactions. A method with a `Tx` suffix joins a
// transaction owned by the caller instead; the engine uses those to process
// one domain event atomically.

// Sentinel errors the handlers map to HTTP statuses.
var (
	ErrInsufficientPoints  = errors.New("insufficient points for this operation")
	ErrAlreadyClaimedToday = errors.New("daily reward already claimed today")
	ErrDuplicateEvent      = errors.New("event already processed")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrMissionNotFound     = errors.New("mission not found")
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrRewardTierNotFound  = errors.New("reward tier not found")
	ErrNoActiveRewardTiers = errors.New("no active reward tiers configured")
)

// TxBeginner is the slice of pgxpool.Pool the services need to open
// transactions. Kept as an interface so tests can substitute it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// AuthService handles operator accounts (the bot process and admins).
type AuthService interface {
	// RegisterAccount creates a new operator account with a hashed password.
	RegisterAccount(ctx context.Context, input *models.RegisterAccountInput) (int, error)

	// Login verifies credentials and returns a signed JWT.
	Login(ctx context.Context, input *models.LoginInput) (string, error)
}

// PlayerService handles admin-facing player management.
type PlayerService interface {
	// GetPlayer returns the player record or ErrPlayerNotFound.
	GetPlayer(ctx context.Context, userID int64) (*models.Player, error)

	// ListPlayers returns players ordered by registration time, paginated.
	ListPlayers(ctx context.Context, page, limit int) ([]models.Player, int, error)

	// SetVIP flips the paid-tier flag, gating vip_only missions.
	SetVIP(ctx context.Context, userID int64, input *models.SetVIPInput) error
}

// PointsService manages the besitos ledger and balances.
type PointsService interface {
	// AwardTx credits points inside a caller-owned transaction. The balance row
	// is locked, the multiplier window applied when applyMultiplier is true,
	// and a ledger entry appended. A duplicate eventID fails with
	// ErrDuplicateEvent.
	AwardTx(ctx context.Context, tx pgx.Tx, userID int64, base int, source models.PointSource, eventID *uuid.UUID, notes string, createdBy int, applyMultiplier bool) (*models.AwardResult, error)

	// Spend debits points atomically. Fails with ErrInsufficientPoints when
	// the balance does not cover the amount.
	Spend(ctx context.Context, userID int64, input *models.SpendPointsInput, accountID int) (*models.UserPoints, error)

	// AdjustPoints applies a manual admin correction (positive or negative).
	// Negative adjustments may not push the balance below zero.
	AdjustPoints(ctx context.Context, userID int64, input *models.AdjustPointsInput, accountID int) (*models.UserPoints, error)

	// GetProfile assembles the profile read model (player, balance, level,
	// streak). Fails with ErrPlayerNotFound for unknown players.
	GetProfile(ctx context.Context, userID int64) (*models.PlayerProfile, error)

	// GetHistory returns the player's ledger, newest first.
	GetHistory(ctx context.Context, userID int64, page, limit int) ([]models.PointTransaction, int, error)

	// Leaderboard returns the top players by lifetime earnings.
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// MissionService manages mission templates and per-player instances.
type MissionService interface {
	// CreateMission stores a template with its objectives atomically.
	CreateMission(ctx context.Context, input *models.CreateMissionInput) (int, error)

	// GetMission returns a template with objectives, or ErrMissionNotFound.
	GetMission(ctx context.Context, id int) (*models.Mission, error)

	// ListMissions returns templates, optionally only active ones, paginated.
	ListMissions(ctx context.Context, activeOnly bool, page, limit int) ([]models.Mission, int, error)

	// UpdateMission updates mutable template fields. ErrMissionNotFound when
	// the template does not exist.
	UpdateMission(ctx context.Context, id int, input *models.UpdateMissionInput) error

	// DeleteMission removes a template (instances cascade).
	DeleteMission(ctx context.Context, id int) error

	// AssignMissionsTx assigns every eligible template the player does not
	// hold yet, inside a caller-owned transaction. Daily assignments respect
	// the concurrent cap. Returns the number of instances created.
	AssignMissionsTx(ctx context.Context, tx pgx.Tx, userID int64, level int, vip bool) (int, error)

	// ApplyActionTx feeds one player action into the player's active missions:
	// expires overdue instances, advances matching objective counters, flips
	// fully-met instances to completed and pays their reward exactly once.
	ApplyActionTx(ctx context.Context, tx pgx.Tx, userID int64, action models.ActionType, value int, now time.Time) ([]models.MissionCompletion, error)

	// RefreshDaily is the scheduled rollover: expires every overdue instance,
	// then hands out fresh daily missions to players holding none.
	RefreshDaily(ctx context.Context) (expired int64, assigned int, err error)

	// ListForUser returns a player's mission instances with lazy expiry applied.
	ListForUser(ctx context.Context, userID int64, statusFilter string, page, limit int) ([]models.UserMission, int, error)
}

// AchievementService evaluates and unlocks achievements.
type AchievementService interface {
	// CreateAchievement stores a new achievement definition.
	CreateAchievement(ctx context.Context, input *models.CreateAchievementInput) (int, error)

	// GetAchievement returns a definition or ErrAchievementNotFound.
	GetAchievement(ctx context.Context, id int) (*models.Achievement, error)

	// ListAchievements returns definitions, optionally only active ones.
	ListAchievements(ctx context.Context, activeOnly bool, page, limit int) ([]models.Achievement, int, error)

	// UpdateAchievement updates mutable fields (not key or criteria type).
	UpdateAchievement(ctx context.Context, id int, input *models.UpdateAchievementInput) error

	// DeleteAchievement removes a definition (player states cascade).
	DeleteAchievement(ctx context.Context, id int) error

	// EvaluateTx re-checks every pending achievement for the player inside a
	// caller-owned transaction, updates progress, and unlocks (with reward
	// payout) the ones whose criteria are now met. Unlocks are permanent.
	EvaluateTx(ctx context.Context, tx pgx.Tx, userID int64, level, totalEarned int) ([]models.AchievementUnlock, error)

	// ListForUser returns the player's achievement states. Secret achievements
	// not yet completed are filtered out.
	ListForUser(ctx context.Context, userID int64, page, limit int) ([]models.UserAchievement, int, error)
}

// DailyRewardService runs the daily gift cycle.
type DailyRewardService interface {
	// CreateTier stores a reward tier for the daily draw table.
	CreateTier(ctx context.Context, input *models.CreateRewardTierInput) (int, error)

	// GetTier returns a tier or ErrRewardTierNotFound.
	GetTier(ctx context.Context, id int) (*models.DailyRewardTier, error)

	// ListTiers returns the configured tiers, optionally only active ones.
	ListTiers(ctx context.Context, activeOnly bool) ([]models.DailyRewardTier, error)

	// UpdateTier updates a tier's payout and weighting.
	UpdateTier(ctx context.Context, id int, input *models.UpdateRewardTierInput) error

	// DeleteTier removes a tier from the draw table.
	DeleteTier(ctx context.Context, id int) error

	// CanClaim reports whether the player may claim today, with the current
	// streak state.
	CanClaim(ctx context.Context, userID int64) (bool, *models.DailyStreak, error)

	// Claim performs the at-most-once daily claim: advances the streak, draws
	// a weighted tier, applies its payout, all in one transaction. A second
	// claim on the same UTC day fails with ErrAlreadyClaimedToday.
	Claim(ctx context.Context, userID int64) (*models.DailyClaimResult, error)
}

// EngineService is the single entry point for bot-reported domain events.
type EngineService interface {
	// ProcessEvent runs the full pipeline for one event in one transaction:
	// player upsert, point award, mission progress, achievement evaluation.
	// Redelivered events (same EventID) fail with ErrDuplicateEvent.
	ProcessEvent(ctx context.Context, event *models.DomainEvent) (*models.EventOutcome, error)
}
