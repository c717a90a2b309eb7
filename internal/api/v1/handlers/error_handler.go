// internal/api/v1/handlers/error_handler.go
package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/service"
)

// ErrorHandler is the global Fiber error handler: anything a handler returns
// instead of responding itself lands here.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		code = fiber.StatusBadRequest
		message = "Validation Failed"
	}

	log.Error().Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status_sent", code).
		Msg("Error occurred during request processing")

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Status(code).JSON(models.Response{
		Success: false,
		Message: message,
	})
}

// respondServiceError maps service sentinel errors onto HTTP statuses. Every
// handler funnels its service errors through here so the mapping stays in one
// place.
func respondServiceError(c *fiber.Ctx, err error, operation string) error {
	log := log.With().Str("operation", operation).Logger()

	switch {
	case errors.Is(err, service.ErrInsufficientPoints):
		log.Warn().Err(err).Msg("Insufficient points")
		return c.Status(fiber.StatusPaymentRequired).JSON(models.Response{Success: false, Message: err.Error()})
	case errors.Is(err, service.ErrAlreadyClaimedToday):
		log.Warn().Err(err).Msg("Daily reward already claimed")
		return c.Status(fiber.StatusConflict).JSON(models.Response{Success: false, Message: err.Error()})
	case errors.Is(err, service.ErrDuplicateEvent):
		log.Warn().Err(err).Msg("Duplicate event")
		return c.Status(fiber.StatusConflict).JSON(models.Response{Success: false, Message: err.Error()})
	case errors.Is(err, service.ErrPlayerNotFound),
		errors.Is(err, service.ErrMissionNotFound),
		errors.Is(err, service.ErrAchievementNotFound),
		errors.Is(err, service.ErrRewardTierNotFound),
		errors.Is(err, pgx.ErrNoRows):
		log.Warn().Err(err).Msg("Resource not found")
		message := err.Error()
		if errors.Is(err, pgx.ErrNoRows) {
			message = "Resource not found"
		}
		return c.Status(fiber.StatusNotFound).JSON(models.Response{Success: false, Message: message})
	case errors.Is(err, service.ErrNoActiveRewardTiers):
		log.Error().Err(err).Msg("Reward tiers misconfigured")
		return c.Status(fiber.StatusConflict).JSON(models.Response{Success: false, Message: err.Error()})
	}

	log.Error().Err(err).Msg("Internal server error")
	return c.Status(fiber.StatusInternalServerError).JSON(models.Response{Success: false, Message: "An internal error occurred"})
}
