// internal/api/v1/handlers/player_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/service"
	"github.com/carlostoek/diana-gamification-be/internal/utils"
)

// PlayerHandler serves the bot-facing read and spend endpoints: profile,
// ledger history, mission and achievement lists, the daily reward cycle and
// the leaderboard.
type PlayerHandler struct {
	PointsService      service.PointsService
	MissionService     service.MissionService
	AchievementService service.AchievementService
	DailyRewardService service.DailyRewardService
	Validate           *validator.Validate
}

func NewPlayerHandler(
	pointsService service.PointsService,
	missionService service.MissionService,
	achievementService service.AchievementService,
	dailyRewardService service.DailyRewardService,
) *PlayerHandler {
	return &PlayerHandler{
		PointsService:      pointsService,
		MissionService:     missionService,
		AchievementService: achievementService,
		DailyRewardService: dailyRewardService,
		Validate:           validator.New(),
	}
}

// GetProfile godoc
// @Summary Get Player Profile
// @Description Returns the profile read model for the bot's profile screen: player, balance, level, progress to next level and streak.
// @Tags Players
// @Produce json
// @Param userId path int true "Telegram User ID"
// @Success 200 {object} models.Response{data=models.PlayerProfile} "Player profile"
// @Failure 400 {object} models.Response "Invalid user ID"
// @Failure 404 {object} models.Response "Player not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /players/{userId}/profile [get]
func (h *PlayerHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.ParsePlayerIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}

	profile, err := h.PointsService.GetProfile(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err, "GetProfile")
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Player profile retrieved successfully",
		Data:    profile,
	})
}

// GetPointsHistory godoc
// @Summary Get Points History
// @Description Returns the player's besitos ledger, newest first, paginated.
// @Tags Players
// @Produce json
// @Param userId path int true "Telegram User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponseGeneric{data=[]models.PointTransaction} "Points history"
// @Failure 400 {object} models.Response "Invalid user ID"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /players/{userId}/points/history [get]
func (h *PlayerHandler) GetPointsHistory(c *fiber.Ctx) error {
	userID, err := utils.ParsePlayerIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}
	pagination := utils.ParsePaginationParams(c)

	history, total, err := h.PointsService.GetHistory(c.Context(), userID, pagination.Page, pagination.Limit)
	if err != nil {
		return respondServiceError(c, err, "GetPointsHistory")
	}

	meta := utils.BuildPaginationMeta(total, pagination.Limit, pagination.Page)
	return c.Status(http.StatusOK).JSON(utils.NewPaginatedResponse("Points history retrieved successfully", history, meta))
}

// SpendPoints godoc
// @Summary Spend Points
// @Description Debits besitos from a player's balance atomically, e.g. for a shop purchase in the bot.
// @Tags Players
// @Accept json
// @Produce json
// @Param userId path int true "Telegram User ID"
// @Param spend body models.SpendPointsInput true "Amount and reason"
// @Success 200 {object} models.Response{data=models.UserPoints} "Updated balance"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed or invalid request"
// @Failure 402 {object} models.Response "Insufficient points"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /players/{userId}/points/spend [post]
func (h *PlayerHandler) SpendPoints(c *fiber.Ctx) error {
	userID, err := utils.ParsePlayerIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}

	input := new(models.SpendPointsInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: "Invalid request body"})
	}
	if err := h.Validate.Struct(input); err != nil {
		errorDetails := utils.FormatValidationErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Message: "Validation failed", Data: errorDetails,
		})
	}

	accountID, err := utils.ExtractAccountIDFromJWT(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.Response{Success: false, Message: "Invalid or missing token"})
	}

	up, err := h.PointsService.Spend(c.Context(), userID, input, accountID)
	if err != nil {
		return respondServiceError(c, err, "SpendPoints")
	}

	zlog.Info().Int64("user_id", userID).Int("amount", input.Amount).Msg("Handler: points spent")
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Points spent successfully",
		Data:    up,
	})
}

// ListMissions godoc
// @Summary List Player Missions
// @Description Returns the player's mission instances, newest first, with overdue instances expired on read. Optional status filter.
// @Tags Players
// @Produce json
// @Param userId path int true "Telegram User ID"
// @Param status query string false "Status filter" Enums(available, in_progress, completed, expired)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponseGeneric{data=[]models.UserMission} "Mission instances"
// @Failure 400 {object} models.Response "Invalid user ID or status filter"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /players/{userId}/missions [get]
func (h *PlayerHandler) ListMissions(c *fiber.Ctx) error {
	userID, err := utils.ParsePlayerIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}

	status := c.Query("status")
	switch status {
	case "", string(models.UserMissionStatusAvailable), string(models.UserMissionStatusInProgress),
		string(models.UserMissionStatusCompleted), string(models.UserMissionStatusExpired):
	default:
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: "Invalid status filter"})
	}
	pagination := utils.ParsePaginationParams(c)

	missions, total, err := h.MissionService.ListForUser(c.Context(), userID, status, pagination.Page, pagination.Limit)
	if err != nil {
		return respondServiceError(c, err, "ListPlayerMissions")
	}

	meta := utils.BuildPaginationMeta(total, pagination.Limit, pagination.Page)
	return c.Status(http.StatusOK).JSON(utils.NewPaginatedResponse("Missions retrieved successfully", missions, meta))
}

// ListAchievements godoc
// @Summary List Player Achievements
// @Description Returns the player's achievement states. Secret achievements stay hidden until unlocked.
// @Tags Players
// @Produce json
// @Param userId path int true "Telegram User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponseGeneric{data=[]models.UserAchievement} "Achievement states"
// @Failure 400 {object} models.Response "Invalid user ID"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /players/{userId}/achievements [get]
func (h *PlayerHandler) ListAchievements(c *fiber.Ctx) error {
	userID, err := utils.ParsePlayerIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}
	pagination := utils.ParsePaginationParams(c)

	achievements, total, err := h.AchievementService.ListForUser(c.Context(), userID, pagination.Page, pagination.Limit)
	if err != nil {
		return respondServiceError(c, err, "ListPlayerAchievements")
	}

	meta := utils.BuildPaginationMeta(total, pagination.Limit, pagination.Page)
	return c.Status(http.StatusOK).JSON(utils.NewPaginatedResponse("Achievements retrieved successfully", achievements, meta))
}

// GetDailyRewardStatus godoc
// @Summary Get Daily Reward Status
// @Description Reports whether the player can claim today's reward, with the current streak state.
// @Tags Players
// @Produce json
// @Param userId path int true "Telegram User ID"
// @Success 200 {object} models.Response{data=map[string]interface{}} "Claimable flag and streak"
// @Failure 400 {object} models.Response "Invalid user ID"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /players/{userId}/daily-reward [get]
func (h *PlayerHandler) GetDailyRewardStatus(c *fiber.Ctx) error {
	userID, err := utils.ParsePlayerIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}

	canClaim, streak, err := h.DailyRewardService.CanClaim(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err, "GetDailyRewardStatus")
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Daily reward status retrieved successfully",
		Data: fiber.Map{
			"can_claim": canClaim,
			"streak":    streak,
		},
	})
}

// ClaimDailyReward godoc
// @Summary Claim Daily Reward
// @Description Performs the at-most-once daily claim: advances the streak, draws a weighted tier and applies its payout. A second claim on the same UTC day returns 409.
// @Tags Players
// @Produce json
// @Param userId path int true "Telegram User ID"
// @Success 200 {object} models.Response{data=models.DailyClaimResult} "Claim result"
// @Failure 400 {object} models.Response "Invalid user ID"
// @Failure 409 {object} models.Response "Already claimed today or no active tiers"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /players/{userId}/daily-reward/claim [post]
func (h *PlayerHandler) ClaimDailyReward(c *fiber.Ctx) error {
	userID, err := utils.ParsePlayerIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}

	result, err := h.DailyRewardService.Claim(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err, "ClaimDailyReward")
	}

	zlog.Info().Int64("user_id", userID).Int("streak", result.ConsecutiveDays).Msg("Handler: daily reward claimed")
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Daily reward claimed successfully",
		Data:    result,
	})
}

// Leaderboard godoc
// @Summary Get Leaderboard
// @Description Returns the top players ranked by lifetime besitos earned.
// @Tags Players
// @Produce json
// @Param limit query int false "Number of entries" default(10)
// @Success 200 {object} models.Response{data=[]models.LeaderboardEntry} "Leaderboard entries"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /players/leaderboard [get]
func (h *PlayerHandler) Leaderboard(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(utils.DefaultLimit)))
	if err != nil || limit < 1 {
		limit = utils.DefaultLimit
	}
	if limit > utils.MaxLimit {
		limit = utils.MaxLimit
	}

	entries, err := h.PointsService.Leaderboard(c.Context(), limit)
	if err != nil {
		return respondServiceError(c, err, "Leaderboard")
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Leaderboard retrieved successfully",
		Data:    entries,
	})
}
