package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/configs"
	v1 "github.com/carlostoek/diana-gamification-be/internal/api/v1"
	"github.com/carlostoek/diana-gamification-be/internal/api/v1/handlers"
	"github.com/carlostoek/diana-gamification-be/internal/database"
	applogger "github.com/carlostoek/diana-gamification-be/internal/logger"
	appmiddleware "github.com/carlostoek/diana-gamification-be/internal/middleware"
	"github.com/carlostoek/diana-gamification-be/internal/repository"
	"github.com/carlostoek/diana-gamification-be/internal/scheduler"
	"github.com/carlostoek/diana-gamification-be/internal/service"

	_ "github.com/carlostoek/diana-gamification-be/docs"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Diana Gamification Engine API
// @version 1.0
// @description Gamification backend for the Diana Telegram bot: besitos points, levels, missions, achievements and daily rewards.

// @host localhost:3000
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description "Type 'Bearer YOUR_JWT_TOKEN' into the value field."

func main() {
	// Config first: everything below reads env vars.
	configs.LoadConfig()

	logCloser := applogger.SetupLogger()
	if logCloser != nil {
		defer func() {
			zlog.Info().Msg("Closing log file...")
			if err := logCloser.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "[ERROR] Failed to close log file: %v\n", err)
			}
		}()
	}
	zlog.Info().Msg("Configuration loaded")

	dbPool, err := database.NewPgxPool()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Could not connect to the database")
	}
	defer dbPool.Close()
	zlog.Info().Msg("Database connection pool established")

	if err := database.EnsureSchema(context.Background(), dbPool); err != nil {
		zlog.Fatal().Err(err).Msg("Could not apply database schema")
	}

	appmiddleware.InitPrometheus()

	// Repositories
	accountRepo := repository.NewAccountRepository(dbPool)
	playerRepo := repository.NewPlayerRepository(dbPool)
	pointsRepo := repository.NewUserPointsRepository(dbPool)
	ledgerRepo := repository.NewPointTransactionRepository(dbPool)
	missionRepo := repository.NewMissionRepository(dbPool)
	userMissionRepo := repository.NewUserMissionRepository(dbPool)
	achievementRepo := repository.NewAchievementRepository(dbPool)
	dailyRepo := repository.NewDailyRewardRepository(dbPool)
	zlog.Info().Msg("Repositories initialized")

	// Services. The points service pays all rewards, so mission, achievement
	// and daily reward services are built on top of it, and the engine on top
	// of all of them.
	authService := service.NewAuthService(accountRepo)
	playerService := service.NewPlayerService(playerRepo)
	pointsService := service.NewPointsService(dbPool, playerRepo, pointsRepo, ledgerRepo, dailyRepo)
	missionService := service.NewMissionService(dbPool, missionRepo, userMissionRepo, playerRepo, pointsRepo, pointsService)
	achievementService := service.NewAchievementService(achievementRepo, userMissionRepo, dailyRepo, pointsService)
	dailyRewardService := service.NewDailyRewardService(dbPool, dailyRepo, pointsRepo, pointsService, achievementService)
	engineService := service.NewEngineService(dbPool, playerRepo, pointsRepo, pointsService, missionService, achievementService)
	zlog.Info().Msg("Services initialized")

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	eventHandler := handlers.NewEventHandler(engineService)
	playerHandler := handlers.NewPlayerHandler(pointsService, missionService, achievementService, dailyRewardService)
	adminHandler := handlers.NewAdminHandler(playerService, pointsService, missionService, achievementService, dailyRewardService)
	zlog.Info().Msg("Handlers initialized")

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	appmiddleware.SetupGlobalMiddleware(app)
	app.Use(appmiddleware.Monitor())

	app.Get("/swagger/*", fiberSwagger.WrapHandler)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1.SetupRoutes(app, authHandler, eventHandler, playerHandler, adminHandler)
	zlog.Info().Msg("API v1 routes registered")

	// Background daily mission rollover.
	sched, err := scheduler.New(missionService)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Could not create scheduler")
	}
	if err := sched.Start(); err != nil {
		zlog.Fatal().Err(err).Msg("Could not start scheduler")
	}
	defer func() {
		if err := sched.Shutdown(); err != nil {
			zlog.Error().Err(err).Msg("Scheduler shutdown failed")
		}
	}()

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "3000"
	}

	// Serve in a goroutine so the main goroutine can wait for a shutdown
	// signal and drain in-flight requests.
	go func() {
		zlog.Info().Msgf("Server is starting on port %s...", appPort)
		if err := app.Listen(fmt.Sprintf(":%s", appPort)); err != nil {
			zlog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info().Msg("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		zlog.Error().Err(err).Msg("Server shutdown failed")
	}
}
