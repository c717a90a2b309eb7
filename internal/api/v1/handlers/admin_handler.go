// internal/api/v1/handlers/admin_handler.go
package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/service"
	"github.com/carlostoek/diana-gamification-be/internal/utils"
)

// AdminHandler serves the back-office endpoints: mission, achievement and
// reward tier management, player administration and manual point
// adjustments.
type AdminHandler struct {
	PlayerService      service.PlayerService
	PointsService      service.PointsService
	MissionService     service.MissionService
	AchievementService service.AchievementService
	DailyRewardService service.DailyRewardService
	Validate           *validator.Validate
}

func NewAdminHandler(
	playerService service.PlayerService,
	pointsService service.PointsService,
	missionService service.MissionService,
	achievementService service.AchievementService,
	dailyRewardService service.DailyRewardService,
) *AdminHandler {
	return &AdminHandler{
		PlayerService:      playerService,
		PointsService:      pointsService,
		MissionService:     missionService,
		AchievementService: achievementService,
		DailyRewardService: dailyRewardService,
		Validate:           validator.New(),
	}
}

// parseBody reads and validates a JSON body, writing the 400 response itself.
// Returns false when the request was already answered.
func (h *AdminHandler) parseBody(c *fiber.Ctx, input interface{}) bool {
	if err := c.BodyParser(input); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: "Invalid request body"})
		return false
	}
	if err := h.Validate.Struct(input); err != nil {
		errorDetails := utils.FormatValidationErrors(err)
		_ = c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Message: "Validation failed", Data: errorDetails,
		})
		return false
	}
	return true
}

// ====================================================================================
// Missions
// ====================================================================================

// CreateMission godoc
// @Summary Create Mission
// @Description Creates a mission template with its objectives.
// @Tags Admin - Missions
// @Accept json
// @Produce json
// @Param mission body models.CreateMissionInput true "Mission Definition"
// @Success 201 {object} models.Response{data=map[string]int} "Mission created, returns ID"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/missions [post]
func (h *AdminHandler) CreateMission(c *fiber.Ctx) error {
	input := new(models.CreateMissionInput)
	if !h.parseBody(c, input) {
		return nil
	}

	id, err := h.MissionService.CreateMission(c.Context(), input)
	if err != nil {
		return respondServiceError(c, err, "CreateMission")
	}
	return c.Status(fiber.StatusCreated).JSON(models.Response{
		Success: true,
		Message: "Mission created successfully",
		Data:    fiber.Map{"mission_id": id},
	})
}

// GetMission godoc
// @Summary Get Mission
// @Description Returns one mission template with its objectives.
// @Tags Admin - Missions
// @Produce json
// @Param id path int true "Mission ID"
// @Success 200 {object} models.Response{data=models.Mission} "Mission template"
// @Failure 400 {object} models.Response "Invalid ID"
// @Failure 404 {object} models.Response "Mission not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/missions/{id} [get]
func (h *AdminHandler) GetMission(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}

	mission, err := h.MissionService.GetMission(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err, "GetMission")
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Mission retrieved successfully", Data: mission,
	})
}

// ListMissions godoc
// @Summary List Missions
// @Description Returns mission templates, paginated. Pass active_only=true to hide disabled templates.
// @Tags Admin - Missions
// @Produce json
// @Param active_only query bool false "Only active templates" default(false)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponseGeneric{data=[]models.Mission} "Mission templates"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/missions [get]
func (h *AdminHandler) ListMissions(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("active_only", false)
	pagination := utils.ParsePaginationParams(c)

	missions, total, err := h.MissionService.ListMissions(c.Context(), activeOnly, pagination.Page, pagination.Limit)
	if err != nil {
		return respondServiceError(c, err, "ListMissions")
	}

	meta := utils.BuildPaginationMeta(total, pagination.Limit, pagination.Page)
	return c.Status(http.StatusOK).JSON(utils.NewPaginatedResponse("Missions retrieved successfully", missions, meta))
}

// UpdateMission godoc
// @Summary Update Mission
// @Description Updates mutable fields of a mission template. Key, type and objectives are immutable.
// @Tags Admin - Missions
// @Accept json
// @Produce json
// @Param id path int true "Mission ID"
// @Param mission body models.UpdateMissionInput true "Updated fields"
// @Success 200 {object} models.Response "Mission updated"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed or invalid ID"
// @Failure 404 {object} models.Response "Mission not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/missions/{id} [put]
func (h *AdminHandler) UpdateMission(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}
	input := new(models.UpdateMissionInput)
	if !h.parseBody(c, input) {
		return nil
	}

	if err := h.MissionService.UpdateMission(c.Context(), id, input); err != nil {
		return respondServiceError(c, err, "UpdateMission")
	}
	return c.Status(http.StatusOK).JSON(models.Response{Success: true, Message: "Mission updated successfully"})
}

// DeleteMission godoc
// @Summary Delete Mission
// @Description Removes a mission template. Player instances cascade.
// @Tags Admin - Missions
// @Produce json
// @Param id path int true "Mission ID"
// @Success 200 {object} models.Response "Mission deleted"
// @Failure 400 {object} models.Response "Invalid ID"
// @Failure 404 {object} models.Response "Mission not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/missions/{id} [delete]
func (h *AdminHandler) DeleteMission(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}

	if err := h.MissionService.DeleteMission(c.Context(), id); err != nil {
		return respondServiceError(c, err, "DeleteMission")
	}
	return c.Status(http.StatusOK).JSON(models.Response{Success: true, Message: "Mission deleted successfully"})
}

// RefreshDailyMissions godoc
// @Summary Trigger Daily Mission Refresh
// @Description Runs the daily rollover on demand: expires overdue instances and assigns fresh daily missions. The scheduler runs this automatically at midnight UTC.
// @Tags Admin - Missions
// @Produce json
// @Success 200 {object} models.Response{data=map[string]interface{}} "Expired and assigned counts"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/missions/refresh [post]
func (h *AdminHandler) RefreshDailyMissions(c *fiber.Ctx) error {
	expired, assigned, err := h.MissionService.RefreshDaily(c.Context())
	if err != nil {
		return respondServiceError(c, err, "RefreshDailyMissions")
	}

	zlog.Info().Int64("expired", expired).Int("assigned", assigned).Msg("Handler: manual daily mission refresh")
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Daily mission refresh finished",
		Data:    fiber.Map{"expired": expired, "assigned": assigned},
	})
}

// ====================================================================================
// Achievements
// ====================================================================================

// CreateAchievement godoc
// @Summary Create Achievement
// @Description Creates an achievement definition.
// @Tags Admin - Achievements
// @Accept json
// @Produce json
// @Param achievement body models.CreateAchievementInput true "Achievement Definition"
// @Success 201 {object} models.Response{data=map[string]int} "Achievement created, returns ID"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/achievements [post]
func (h *AdminHandler) CreateAchievement(c *fiber.Ctx) error {
	input := new(models.CreateAchievementInput)
	if !h.parseBody(c, input) {
		return nil
	}

	id, err := h.AchievementService.CreateAchievement(c.Context(), input)
	if err != nil {
		return respondServiceError(c, err, "CreateAchievement")
	}
	return c.Status(fiber.StatusCreated).JSON(models.Response{
		Success: true,
		Message: "Achievement created successfully",
		Data:    fiber.Map{"achievement_id": id},
	})
}

// GetAchievement godoc
// @Summary Get Achievement
// @Description Returns one achievement definition.
// @Tags Admin - Achievements
// @Produce json
// @Param id path int true "Achievement ID"
// @Success 200 {object} models.Response{data=models.Achievement} "Achievement definition"
// @Failure 400 {object} models.Response "Invalid ID"
// @Failure 404 {object} models.Response "Achievement not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/achievements/{id} [get]
func (h *AdminHandler) GetAchievement(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}

	achievement, err := h.AchievementService.GetAchievement(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err, "GetAchievement")
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Achievement retrieved successfully", Data: achievement,
	})
}

// ListAchievements godoc
// @Summary List Achievements
// @Description Returns achievement definitions, paginated, secret ones included.
// @Tags Admin - Achievements
// @Produce json
// @Param active_only query bool false "Only active achievements" default(false)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponseGeneric{data=[]models.Achievement} "Achievement definitions"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/achievements [get]
func (h *AdminHandler) ListAchievements(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("active_only", false)
	pagination := utils.ParsePaginationParams(c)

	achievements, total, err := h.AchievementService.ListAchievements(c.Context(), activeOnly, pagination.Page, pagination.Limit)
	if err != nil {
		return respondServiceError(c, err, "ListAchievements")
	}

	meta := utils.BuildPaginationMeta(total, pagination.Limit, pagination.Page)
	return c.Status(http.StatusOK).JSON(utils.NewPaginatedResponse("Achievements retrieved successfully", achievements, meta))
}

// UpdateAchievement godoc
// @Summary Update Achievement
// @Description Updates mutable fields of an achievement. Key and criteria type are immutable.
// @Tags Admin - Achievements
// @Accept json
// @Produce json
// @Param id path int true "Achievement ID"
// @Param achievement body models.UpdateAchievementInput true "Updated fields"
// @Success 200 {object} models.Response "Achievement updated"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed or invalid ID"
// @Failure 404 {object} models.Response "Achievement not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/achievements/{id} [put]
func (h *AdminHandler) UpdateAchievement(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}
	input := new(models.UpdateAchievementInput)
	if !h.parseBody(c, input) {
		return nil
	}

	if err := h.AchievementService.UpdateAchievement(c.Context(), id, input); err != nil {
		return respondServiceError(c, err, "UpdateAchievement")
	}
	return c.Status(http.StatusOK).JSON(models.Response{Success: true, Message: "Achievement updated successfully"})
}

// DeleteAchievement godoc
// @Summary Delete Achievement
// @Description Removes an achievement definition. Player states cascade.
// @Tags Admin - Achievements
// @Produce json
// @Param id path int true "Achievement ID"
// @Success 200 {object} models.Response "Achievement deleted"
// @Failure 400 {object} models.Response "Invalid ID"
// @Failure 404 {object} models.Response "Achievement not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/achievements/{id} [delete]
func (h *AdminHandler) DeleteAchievement(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}

	if err := h.AchievementService.DeleteAchievement(c.Context(), id); err != nil {
		return respondServiceError(c, err, "DeleteAchievement")
	}
	return c.Status(http.StatusOK).JSON(models.Response{Success: true, Message: "Achievement deleted successfully"})
}

// ====================================================================================
// Daily reward tiers
// ====================================================================================

// CreateRewardTier godoc
// @Summary Create Reward Tier
// @Description Adds a tier to the daily reward draw table.
// @Tags Admin - Daily Rewards
// @Accept json
// @Produce json
// @Param tier body models.CreateRewardTierInput true "Reward Tier Definition"
// @Success 201 {object} models.Response{data=map[string]int} "Tier created, returns ID"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/reward-tiers [post]
func (h *AdminHandler) CreateRewardTier(c *fiber.Ctx) error {
	input := new(models.CreateRewardTierInput)
	if !h.parseBody(c, input) {
		return nil
	}

	id, err := h.DailyRewardService.CreateTier(c.Context(), input)
	if err != nil {
		return respondServiceError(c, err, "CreateRewardTier")
	}
	return c.Status(fiber.StatusCreated).JSON(models.Response{
		Success: true,
		Message: "Reward tier created successfully",
		Data:    fiber.Map{"tier_id": id},
	})
}

// GetRewardTier godoc
// @Summary Get Reward Tier
// @Description Returns one daily reward tier.
// @Tags Admin - Daily Rewards
// @Produce json
// @Param id path int true "Tier ID"
// @Success 200 {object} models.Response{data=models.DailyRewardTier} "Reward tier"
// @Failure 400 {object} models.Response "Invalid ID"
// @Failure 404 {object} models.Response "Tier not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/reward-tiers/{id} [get]
func (h *AdminHandler) GetRewardTier(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}

	tier, err := h.DailyRewardService.GetTier(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err, "GetRewardTier")
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Reward tier retrieved successfully", Data: tier,
	})
}

// ListRewardTiers godoc
// @Summary List Reward Tiers
// @Description Returns the configured daily reward tiers.
// @Tags Admin - Daily Rewards
// @Produce json
// @Param active_only query bool false "Only active tiers" default(false)
// @Success 200 {object} models.Response{data=[]models.DailyRewardTier} "Reward tiers"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/reward-tiers [get]
func (h *AdminHandler) ListRewardTiers(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("active_only", false)

	tiers, err := h.DailyRewardService.ListTiers(c.Context(), activeOnly)
	if err != nil {
		return respondServiceError(c, err, "ListRewardTiers")
	}
	if tiers == nil {
		tiers = []models.DailyRewardTier{}
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Reward tiers retrieved successfully", Data: tiers,
	})
}

// UpdateRewardTier godoc
// @Summary Update Reward Tier
// @Description Updates a tier's payout and draw weighting.
// @Tags Admin - Daily Rewards
// @Accept json
// @Produce json
// @Param id path int true "Tier ID"
// @Param tier body models.UpdateRewardTierInput true "Updated fields"
// @Success 200 {object} models.Response "Tier updated"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed or invalid ID"
// @Failure 404 {object} models.Response "Tier not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/reward-tiers/{id} [put]
func (h *AdminHandler) UpdateRewardTier(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}
	input := new(models.UpdateRewardTierInput)
	if !h.parseBody(c, input) {
		return nil
	}

	if err := h.DailyRewardService.UpdateTier(c.Context(), id, input); err != nil {
		return respondServiceError(c, err, "UpdateRewardTier")
	}
	return c.Status(http.StatusOK).JSON(models.Response{Success: true, Message: "Reward tier updated successfully"})
}

// DeleteRewardTier godoc
// @Summary Delete Reward Tier
// @Description Removes a tier from the draw table.
// @Tags Admin - Daily Rewards
// @Produce json
// @Param id path int true "Tier ID"
// @Success 200 {object} models.Response "Tier deleted"
// @Failure 400 {object} models.Response "Invalid ID"
// @Failure 404 {object} models.Response "Tier not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/reward-tiers/{id} [delete]
func (h *AdminHandler) DeleteRewardTier(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}

	if err := h.DailyRewardService.DeleteTier(c.Context(), id); err != nil {
		return respondServiceError(c, err, "DeleteRewardTier")
	}
	return c.Status(http.StatusOK).JSON(models.Response{Success: true, Message: "Reward tier deleted successfully"})
}

// ====================================================================================
// Players
// ====================================================================================

// ListPlayers godoc
// @Summary List Players
// @Description Returns registered players ordered by registration time, paginated.
// @Tags Admin - Players
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponseGeneric{data=[]models.Player} "Players"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/players [get]
func (h *AdminHandler) ListPlayers(c *fiber.Ctx) error {
	pagination := utils.ParsePaginationParams(c)

	players, total, err := h.PlayerService.ListPlayers(c.Context(), pagination.Page, pagination.Limit)
	if err != nil {
		return respondServiceError(c, err, "ListPlayers")
	}

	meta := utils.BuildPaginationMeta(total, pagination.Limit, pagination.Page)
	return c.Status(http.StatusOK).JSON(utils.NewPaginatedResponse("Players retrieved successfully", players, meta))
}

// GetPlayer godoc
// @Summary Get Player
// @Description Returns one player record.
// @Tags Admin - Players
// @Produce json
// @Param userId path int true "Telegram User ID"
// @Success 200 {object} models.Response{data=models.Player} "Player record"
// @Failure 400 {object} models.Response "Invalid user ID"
// @Failure 404 {object} models.Response "Player not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/players/{userId} [get]
func (h *AdminHandler) GetPlayer(c *fiber.Ctx) error {
	userID, err := utils.ParsePlayerIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}

	player, err := h.PlayerService.GetPlayer(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err, "GetPlayer")
	}
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true, Message: "Player retrieved successfully", Data: player,
	})
}

// SetVIP godoc
// @Summary Set Player VIP Flag
// @Description Grants or revokes a player's VIP status, which gates vip_only missions.
// @Tags Admin - Players
// @Accept json
// @Produce json
// @Param userId path int true "Telegram User ID"
// @Param vip body models.SetVIPInput true "VIP flag"
// @Success 200 {object} models.Response "VIP flag updated"
// @Failure 400 {object} models.Response "Invalid user ID or request body"
// @Failure 404 {object} models.Response "Player not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/players/{userId}/vip [put]
func (h *AdminHandler) SetVIP(c *fiber.Ctx) error {
	userID, err := utils.ParsePlayerIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}
	input := new(models.SetVIPInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: "Invalid request body"})
	}

	if err := h.PlayerService.SetVIP(c.Context(), userID, input); err != nil {
		return respondServiceError(c, err, "SetVIP")
	}
	return c.Status(http.StatusOK).JSON(models.Response{Success: true, Message: "Player VIP flag updated successfully"})
}

// AdjustPoints godoc
// @Summary Adjust Player Points
// @Description Applies a manual besitos correction, positive or negative. Negative adjustments may not push the balance below zero. The note is mandatory.
// @Tags Admin - Players
// @Accept json
// @Produce json
// @Param userId path int true "Telegram User ID"
// @Param adjustment body models.AdjustPointsInput true "Adjustment amount and note"
// @Success 200 {object} models.Response{data=models.UserPoints} "Updated balance"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed or invalid user ID"
// @Failure 402 {object} models.Response "Adjustment would make the balance negative"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/players/{userId}/points/adjust [post]
func (h *AdminHandler) AdjustPoints(c *fiber.Ctx) error {
	userID, err := utils.ParsePlayerIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{Success: false, Message: err.Error()})
	}
	input := new(models.AdjustPointsInput)
	if !h.parseBody(c, input) {
		return nil
	}

	accountID, err := utils.ExtractAccountIDFromJWT(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.Response{Success: false, Message: "Invalid or missing token"})
	}

	up, err := h.PointsService.AdjustPoints(c.Context(), userID, input, accountID)
	if err != nil {
		return respondServiceError(c, err, "AdjustPoints")
	}

	zlog.Info().Int64("user_id", userID).Int("change", input.ChangeAmount).Int("account_id", accountID).Msg("Handler: points adjusted")
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Points adjusted successfully",
		Data:    up,
	})
}
