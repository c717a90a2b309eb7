package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carlostoek/diana-gamification-be/internal/api/v1/handlers"
	"github.com/carlostoek/diana-gamification-be/internal/middleware"
)

// SetupRoutes registers every API v1 endpoint on the Fiber app.
//
// Two operator roles exist: "Bot" is the Telegram bot process reporting
// events and reading player state, "Admin" is the back office managing
// content. Admins can also hit the read endpoints the bot uses.
func SetupRoutes(
	app *fiber.App,
	authHandler *handlers.AuthHandler,
	eventHandler *handlers.EventHandler,
	playerHandler *handlers.PlayerHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := app.Group("/api/v1")

	// -------------------------------------------------------------------------
	// Authentication (public)
	// -------------------------------------------------------------------------
	auth := api.Group("/auth")
	{
		auth.Post("/register", authHandler.Register)
		auth.Post("/login", authHandler.Login)
	}

	// -------------------------------------------------------------------------
	// Engine (Bot only): the single event ingestion endpoint
	// -------------------------------------------------------------------------
	engine := api.Group("/engine", middleware.Protected(), middleware.Authorize("Bot"))
	{
		engine.Post("/events", eventHandler.ProcessEvent)
	}

	// -------------------------------------------------------------------------
	// Players (Bot and Admin): reads plus the spend/claim operations the bot
	// performs on behalf of a player
	// -------------------------------------------------------------------------
	players := api.Group("/players", middleware.Protected(), middleware.Authorize("Bot", "Admin"))
	{
		players.Get("/leaderboard", playerHandler.Leaderboard)
		players.Get("/:userId/profile", playerHandler.GetProfile)
		players.Get("/:userId/points/history", playerHandler.GetPointsHistory)
		players.Post("/:userId/points/spend", playerHandler.SpendPoints)
		players.Get("/:userId/missions", playerHandler.ListMissions)
		players.Get("/:userId/achievements", playerHandler.ListAchievements)
		players.Get("/:userId/daily-reward", playerHandler.GetDailyRewardStatus)
		players.Post("/:userId/daily-reward/claim", playerHandler.ClaimDailyReward)
	}

	// -------------------------------------------------------------------------
	// Admin (Admin only): content management and manual corrections
	// -------------------------------------------------------------------------
	admin := api.Group("/admin", middleware.Protected(), middleware.Authorize("Admin"))
	{
		// Mission templates
		admin.Post("/missions", adminHandler.CreateMission)
		admin.Get("/missions", adminHandler.ListMissions)
		admin.Post("/missions/refresh", adminHandler.RefreshDailyMissions)
		admin.Get("/missions/:id", adminHandler.GetMission)
		admin.Put("/missions/:id", adminHandler.UpdateMission)
		admin.Delete("/missions/:id", adminHandler.DeleteMission)

		// Achievements
		admin.Post("/achievements", adminHandler.CreateAchievement)
		admin.Get("/achievements", adminHandler.ListAchievements)
		admin.Get("/achievements/:id", adminHandler.GetAchievement)
		admin.Put("/achievements/:id", adminHandler.UpdateAchievement)
		admin.Delete("/achievements/:id", adminHandler.DeleteAchievement)

		// Daily reward tiers
		admin.Post("/reward-tiers", adminHandler.CreateRewardTier)
		admin.Get("/reward-tiers", adminHandler.ListRewardTiers)
		admin.Get("/reward-tiers/:id", adminHandler.GetRewardTier)
		admin.Put("/reward-tiers/:id", adminHandler.UpdateRewardTier)
		admin.Delete("/reward-tiers/:id", adminHandler.DeleteRewardTier)

		// Players
		admin.Get("/players", adminHandler.ListPlayers)
		admin.Get("/players/:userId", adminHandler.GetPlayer)
		admin.Put("/players/:userId/vip", adminHandler.SetVIP)
		admin.Post("/players/:userId/points/adjust", adminHandler.AdjustPoints)
	}

	// -------------------------------------------------------------------------
	// Utilities (public)
	// -------------------------------------------------------------------------
	api.Get("/health", HealthCheck)
}

// HealthCheck godoc
// @Summary Check API Health Status
// @Description Public endpoint to verify that the API is running and responsive.
// @Tags Public, Health
// @ID health-check-v1
// @Produce json
// @Success 200 {object} map[string]string "{"status":"UP"}"
// @Router /health [get]
func HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "UP"})
}
