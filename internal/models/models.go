package models

import (
	"time"

	"github.com/google/uuid"
)

// ====================================================================================
// Operator accounts (bot process + administrators)
// ====================================================================================

// AccountRole is a closed set; operator roles are not data-driven.
type AccountRole string

const (
	RoleAdmin AccountRole = "Admin" // template CRUD, manual adjustments
	RoleBot   AccountRole = "Bot"   // event ingestion and player-facing reads
)

// Account is an operator identity (the bot process itself, or a human admin).
// Telegram players never log in here; they are represented by Player.
type Account struct {
	ID        int         `json:"id"`
	Username  string      `json:"username" validate:"required,min=3,max=100"`
	Password  string      `json:"-"`
	Role      AccountRole `json:"role"`
	CreatedAt time.Time   `json:"created_at,omitzero"`
	UpdatedAt time.Time   `json:"updated_at,omitzero"`
}

// ====================================================================================
// Players & points
// ====================================================================================

// Player is a Telegram user known to the engine. The ID is the Telegram user id.
type Player struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	IsVIP     bool      `json:"is_vip"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// UserPoints is a player's besitos balance. TotalEarned is monotonic and
// drives leveling; CurrentPoints = TotalEarned - TotalSpent at all times.
type UserPoints struct {
	UserID              int64      `json:"user_id"`
	CurrentPoints       int        `json:"current_points"`
	TotalEarned         int        `json:"total_earned"`
	TotalSpent          int        `json:"total_spent"`
	Multiplier          float64    `json:"multiplier"`
	MultiplierExpiresAt *time.Time `json:"multiplier_expires_at,omitzero"`
	UpdatedAt           time.Time  `json:"updated_at,omitzero"`
}

// PointSource categorizes ledger entries.
type PointSource string

const (
	SourceReaction    PointSource = "reaction"
	SourceStart       PointSource = "start"
	SourceNarrative   PointSource = "narrative"
	SourceTrivia      PointSource = "trivia"
	SourceCheckin     PointSource = "checkin"
	SourceMission     PointSource = "mission_reward"
	SourceAchievement PointSource = "achievement_reward"
	SourceDaily       PointSource = "daily_reward"
	SourceShop        PointSource = "shop_purchase"
	SourceAdjustment  PointSource = "manual_adjustment"
)

// PointTransaction is one append-only ledger entry. BalanceAfter records the
// balance that resulted from the entry, for auditability. EventID, when set,
// carries the originating domain event id; a UNIQUE constraint on it makes
// event-driven awarding idempotent under redelivery.
type PointTransaction struct {
	ID                 int64       `json:"id"`
	UserID             int64       `json:"user_id"`
	ChangeAmount       int         `json:"change_amount"`
	BalanceAfter       int         `json:"balance_after"`
	Source             PointSource `json:"source"`
	EventID            *uuid.UUID  `json:"event_id,omitempty"`
	Notes              string      `json:"notes,omitempty"`
	CreatedByAccountID int         `json:"created_by_account_id,omitzero"`
	CreatedAt          time.Time   `json:"created_at,omitzero"`
}

// ====================================================================================
// Missions
// ====================================================================================

type MissionType string

const (
	MissionTypeOneTime MissionType = "one_time"
	MissionTypeDaily   MissionType = "daily"
)

// ActionType names the kind of player action an objective counts.
type ActionType string

const (
	ActionReactions ActionType = "reactions"
	ActionNarrative ActionType = "narrative_fragments"
	ActionTrivia    ActionType = "trivia_answers"
	ActionCheckins  ActionType = "checkins"
)

// Mission is an admin-authored template; UserMission is a per-player instance.
type Mission struct {
	ID            int                `json:"id"`
	MissionKey    string             `json:"mission_key" validate:"required,min=3,max=100"`
	Title         string             `json:"title" validate:"required,min=3,max=255"`
	Description   string             `json:"description,omitempty"`
	MissionType   MissionType        `json:"mission_type" validate:"required,oneof=one_time daily"`
	PointsReward  int                `json:"points_reward" validate:"required,gt=0"`
	LevelRequired int                `json:"level_required" validate:"gte=0"`
	VIPOnly       bool               `json:"vip_only"`
	DurationHours int                `json:"duration_hours" validate:"gte=0"`
	IsActive      bool               `json:"is_active"`
	Objectives    []MissionObjective `json:"objectives,omitempty"`
	CreatedAt     time.Time          `json:"created_at,omitzero"`
	UpdatedAt     time.Time          `json:"updated_at,omitzero"`
}

type MissionObjective struct {
	ID           int        `json:"id"`
	MissionID    int        `json:"mission_id"`
	ObjectiveKey string     `json:"objective_key" validate:"required,min=1,max=100"`
	ActionType   ActionType `json:"action_type" validate:"required,oneof=reactions narrative_fragments trivia_answers checkins"`
	Required     int        `json:"required" validate:"required,gt=0"`
	SortOrder    int        `json:"sort_order"`
}

type UserMissionStatus string

const (
	UserMissionStatusAvailable  UserMissionStatus = "available"
	UserMissionStatusInProgress UserMissionStatus = "in_progress"
	UserMissionStatusCompleted  UserMissionStatus = "completed"
	UserMissionStatusExpired    UserMissionStatus = "expired"
)

// UserMission holds per-player mission state. RewardClaimed guards the
// at-most-once payout on completion.
type UserMission struct {
	ID                 int64                  `json:"id"`
	UserID             int64                  `json:"user_id"`
	MissionID          int                    `json:"mission_id"`
	Status             UserMissionStatus      `json:"status"`
	RewardClaimed      bool                   `json:"reward_claimed"`
	ProgressPercentage float64                `json:"progress_percentage"`
	AssignedAt         time.Time              `json:"assigned_at,omitzero"`
	StartedAt          *time.Time             `json:"started_at,omitzero"`
	CompletedAt        *time.Time             `json:"completed_at,omitzero"`
	ExpiresAt          *time.Time             `json:"expires_at,omitzero"`
	Mission            *Mission               `json:"mission,omitempty"`
	Objectives         []UserMissionObjective `json:"progress,omitempty"`
	CreatedAt          time.Time              `json:"created_at,omitzero"`
	UpdatedAt          time.Time              `json:"updated_at,omitzero"`
}

// UserMissionObjective is the accumulated counter for one objective of one
// mission instance.
type UserMissionObjective struct {
	ID            int64             `json:"id"`
	UserMissionID int64             `json:"user_mission_id"`
	ObjectiveID   int               `json:"objective_id"`
	Progress      int               `json:"progress"`
	Objective     *MissionObjective `json:"objective,omitempty"`
}

// ====================================================================================
// Achievements
// ====================================================================================

// AchievementCriteria is the tagged variant evaluated with an exhaustive
// switch; no free-form criteria blobs.
type AchievementCriteria string

const (
	CriteriaLevel             AchievementCriteria = "level"
	CriteriaMissionsCompleted AchievementCriteria = "missions_completed"
	CriteriaPointsEarned      AchievementCriteria = "points_earned"
	CriteriaStreak            AchievementCriteria = "streak"
)

type Achievement struct {
	ID             int                 `json:"id"`
	AchievementKey string              `json:"achievement_key" validate:"required,min=3,max=100"`
	Name           string              `json:"name" validate:"required,min=3,max=255"`
	Description    string              `json:"description,omitempty"`
	CriteriaType   AchievementCriteria `json:"criteria_type" validate:"required,oneof=level missions_completed points_earned streak"`
	CriteriaValue  int                 `json:"criteria_value" validate:"required,gt=0"`
	PointsReward   int                 `json:"points_reward" validate:"gte=0"`
	IsSecret       bool                `json:"is_secret"`
	IsActive       bool                `json:"is_active"`
	CreatedAt      time.Time           `json:"created_at,omitzero"`
	UpdatedAt      time.Time           `json:"updated_at,omitzero"`
}

// UserAchievement is one player's state on one achievement. Once IsCompleted
// is true it is never revisited.
type UserAchievement struct {
	ID            int64        `json:"id"`
	UserID        int64        `json:"user_id"`
	AchievementID int          `json:"achievement_id"`
	IsCompleted   bool         `json:"is_completed"`
	Progress      int          `json:"progress"`
	CompletedAt   *time.Time   `json:"completed_at,omitzero"`
	Achievement   *Achievement `json:"achievement,omitempty"`
	CreatedAt     time.Time    `json:"created_at,omitzero"`
	UpdatedAt     time.Time    `json:"updated_at,omitzero"`
}

// ====================================================================================
// Daily rewards & streaks
// ====================================================================================

// DailyStreak tracks claim continuity per player. LastClaimDate is a UTC
// calendar date (time component zeroed).
type DailyStreak struct {
	UserID          int64      `json:"user_id"`
	LastClaimDate   *time.Time `json:"last_claim_date,omitzero"`
	ConsecutiveDays int        `json:"consecutive_days"`
	LongestStreak   int        `json:"longest_streak"`
	UpdatedAt       time.Time  `json:"updated_at,omitzero"`
}

type RewardKind string

const (
	RewardKindPoints     RewardKind = "points"
	RewardKindMultiplier RewardKind = "multiplier"
)

type RewardRarity string

const (
	RarityCommon    RewardRarity = "common"
	RarityRare      RewardRarity = "rare"
	RarityEpic      RewardRarity = "epic"
	RarityLegendary RewardRarity = "legendary"
)

// DailyRewardTier is one entry of the weighted draw table. The effective
// weight during a draw is Weight + StreakBonusWeight * min(streak-1, cap),
// so rarer tiers get likelier as the streak grows.
type DailyRewardTier struct {
	ID                int          `json:"id"`
	Rarity            RewardRarity `json:"rarity" validate:"required,oneof=common rare epic legendary"`
	Kind              RewardKind   `json:"kind" validate:"required,oneof=points multiplier"`
	Points            int          `json:"points" validate:"gte=0"`
	Multiplier        float64      `json:"multiplier" validate:"gte=0"`
	MultiplierHours   int          `json:"multiplier_hours" validate:"gte=0"`
	Weight            int          `json:"weight" validate:"required,gt=0"`
	StreakBonusWeight int          `json:"streak_bonus_weight" validate:"gte=0"`
	IsActive          bool         `json:"is_active"`
	CreatedAt         time.Time    `json:"created_at,omitzero"`
	UpdatedAt         time.Time    `json:"updated_at,omitzero"`
}

// DailyClaimResult is what the bot renders after a successful claim.
type DailyClaimResult struct {
	Tier            DailyRewardTier `json:"tier"`
	ConsecutiveDays int             `json:"consecutive_days"`
	LongestStreak   int             `json:"longest_streak"`
	PointsAwarded   int             `json:"points_awarded"`
	NewBalance      int             `json:"new_balance"`
}

// ====================================================================================
// Domain events & outcomes
// ====================================================================================

type EventType string

const (
	EventReactionAdded       EventType = "reaction_added"
	EventUserStartedBot      EventType = "user_started_bot"
	EventNarrativeProgressed EventType = "narrative_progressed"
	EventTriviaAnswered      EventType = "trivia_answered"
	EventCheckin             EventType = "checkin"
	EventMissionAction       EventType = "mission_action"
)

// DomainEvent is one typed event forwarded by the bot transport. EventID is
// the idempotency key: redelivery of the same id is rejected.
type DomainEvent struct {
	EventID    uuid.UUID  `json:"event_id" validate:"required"`
	UserID     int64      `json:"user_id" validate:"required,gt=0"`
	Type       EventType  `json:"type" validate:"required,oneof=reaction_added user_started_bot narrative_progressed trivia_answered checkin mission_action"`
	ActionType ActionType `json:"action_type,omitempty" validate:"omitempty,oneof=reactions narrative_fragments trivia_answers checkins"`
	Value      int        `json:"value" validate:"gte=0"`
	Username   string     `json:"username,omitempty"`
	FirstName  string     `json:"first_name,omitempty"`
	OccurredAt time.Time  `json:"occurred_at,omitzero"`
}

type MissionCompletion struct {
	UserMissionID int64  `json:"user_mission_id"`
	MissionKey    string `json:"mission_key"`
	Title         string `json:"title"`
	PointsReward  int    `json:"points_reward"`
}

type AchievementUnlock struct {
	AchievementKey string `json:"achievement_key"`
	Name           string `json:"name"`
	PointsReward   int    `json:"points_reward"`
}

// EventOutcome carries the downstream events (points awarded, level-up,
// mission completions, achievement unlocks) for the bot to render. The
// engine renders no text itself.
type EventOutcome struct {
	EventID              uuid.UUID           `json:"event_id"`
	UserID               int64               `json:"user_id"`
	PointsAwarded        int                 `json:"points_awarded"`
	NewBalance           int                 `json:"new_balance"`
	TotalEarned          int                 `json:"total_earned"`
	PreviousLevel        int                 `json:"previous_level"`
	Level                int                 `json:"level"`
	LevelUp              bool                `json:"level_up"`
	CompletedMissions    []MissionCompletion `json:"completed_missions"`
	UnlockedAchievements []AchievementUnlock `json:"unlocked_achievements"`
}

// AwardResult reports one ledger award. Awarded is the amount actually
// credited (after any multiplier window).
type AwardResult struct {
	Awarded       int     `json:"awarded"`
	CurrentPoints int     `json:"current_points"`
	TotalEarned   int     `json:"total_earned"`
	TotalSpent    int     `json:"total_spent"`
	Multiplier    float64 `json:"multiplier"`
}

// PlayerProfile is the read model for the bot's profile screen.
type PlayerProfile struct {
	Player            Player      `json:"player"`
	Points            UserPoints  `json:"points"`
	Level             int         `json:"level"`
	PointsToNextLevel int         `json:"points_to_next_level"`
	Streak            DailyStreak `json:"streak"`
}

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username,omitempty"`
	TotalEarned int    `json:"total_earned"`
	Level       int    `json:"level"`
}

// ====================================================================================
// Input structs
// ====================================================================================

type RegisterAccountInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=Admin Bot"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ObjectiveInput struct {
	ObjectiveKey string `json:"objective_key" validate:"required,min=1,max=100"`
	ActionType   string `json:"action_type" validate:"required,oneof=reactions narrative_fragments trivia_answers checkins"`
	Required     int    `json:"required" validate:"required,gt=0"`
}

type CreateMissionInput struct {
	MissionKey    string           `json:"mission_key" validate:"required,min=3,max=100"`
	Title         string           `json:"title" validate:"required,min=3,max=255"`
	Description   string           `json:"description,omitempty"`
	MissionType   string           `json:"mission_type" validate:"required,oneof=one_time daily"`
	PointsReward  int              `json:"points_reward" validate:"required,gt=0"`
	LevelRequired int              `json:"level_required" validate:"gte=0"`
	VIPOnly       bool             `json:"vip_only"`
	DurationHours int              `json:"duration_hours" validate:"gte=0"`
	Objectives    []ObjectiveInput `json:"objectives" validate:"required,min=1,dive"`
}

type UpdateMissionInput struct {
	Title         string `json:"title" validate:"required,min=3,max=255"`
	Description   string `json:"description,omitempty"`
	PointsReward  int    `json:"points_reward" validate:"required,gt=0"`
	LevelRequired int    `json:"level_required" validate:"gte=0"`
	VIPOnly       bool   `json:"vip_only"`
	DurationHours int    `json:"duration_hours" validate:"gte=0"`
	IsActive      bool   `json:"is_active"`
}

type CreateAchievementInput struct {
	AchievementKey string `json:"achievement_key" validate:"required,min=3,max=100"`
	Name           string `json:"name" validate:"required,min=3,max=255"`
	Description    string `json:"description,omitempty"`
	CriteriaType   string `json:"criteria_type" validate:"required,oneof=level missions_completed points_earned streak"`
	CriteriaValue  int    `json:"criteria_value" validate:"required,gt=0"`
	PointsReward   int    `json:"points_reward" validate:"gte=0"`
	IsSecret       bool   `json:"is_secret"`
}

type UpdateAchievementInput struct {
	Name          string `json:"name" validate:"required,min=3,max=255"`
	Description   string `json:"description,omitempty"`
	CriteriaValue int    `json:"criteria_value" validate:"required,gt=0"`
	PointsReward  int    `json:"points_reward" validate:"gte=0"`
	IsSecret      bool   `json:"is_secret"`
	IsActive      bool   `json:"is_active"`
}

type CreateRewardTierInput struct {
	Rarity            string  `json:"rarity" validate:"required,oneof=common rare epic legendary"`
	Kind              string  `json:"kind" validate:"required,oneof=points multiplier"`
	Points            int     `json:"points" validate:"gte=0"`
	Multiplier        float64 `json:"multiplier" validate:"gte=0"`
	MultiplierHours   int     `json:"multiplier_hours" validate:"gte=0"`
	Weight            int     `json:"weight" validate:"required,gt=0"`
	StreakBonusWeight int     `json:"streak_bonus_weight" validate:"gte=0"`
}

type UpdateRewardTierInput struct {
	Points            int     `json:"points" validate:"gte=0"`
	Multiplier        float64 `json:"multiplier" validate:"gte=0"`
	MultiplierHours   int     `json:"multiplier_hours" validate:"gte=0"`
	Weight            int     `json:"weight" validate:"required,gt=0"`
	StreakBonusWeight int     `json:"streak_bonus_weight" validate:"gte=0"`
	IsActive          bool    `json:"is_active"`
}

// AdjustPointsInput is a manual besitos adjustment by an admin. The note is
// mandatory: every manual entry must say why.
type AdjustPointsInput struct {
	ChangeAmount int    `json:"change_amount" validate:"required,ne=0"`
	Notes        string `json:"notes" validate:"required,min=3,max=255"`
}

type SpendPointsInput struct {
	Amount int    `json:"amount" validate:"required,gt=0"`
	Reason string `json:"reason" validate:"required,min=3,max=255"`
}

type SetVIPInput struct {
	IsVIP bool `json:"is_vip"`
}

// Response is the standard API envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
