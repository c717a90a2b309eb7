// internal/api/v1/handlers/event_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/middleware"
	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/service"
	"github.com/carlostoek/diana-gamification-be/internal/utils"
)

type EventHandler struct {
	EngineService service.EngineService
	Validate      *validator.Validate
}

func NewEventHandler(engineService service.EngineService) *EventHandler {
	return &EventHandler{
		EngineService: engineService,
		Validate:      validator.New(),
	}
}

// ProcessEvent godoc
// @Summary Process Gamification Event
// @Description Ingests one bot event (reaction, start, narrative, trivia, checkin, mission action) and runs the full pipeline: points, missions, achievements. Redelivery of the same event_id is rejected with 409.
// @Tags Engine
// @Accept json
// @Produce json
// @Param event body models.DomainEvent true "Domain Event"
// @Success 200 {object} models.Response{data=models.EventOutcome} "Event processed, returns the outcome"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed or invalid request body"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 409 {object} models.Response "Duplicate event ID"
// @Failure 500 {object} models.Response "Internal server error"
// @Security ApiKeyAuth
// @Router /engine/events [post]
func (h *EventHandler) ProcessEvent(c *fiber.Ctx) error {
	event := new(models.DomainEvent)

	if err := c.BodyParser(event); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Invalid request body for event")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Message: "Invalid request body",
		})
	}

	if err := h.Validate.Struct(event); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Event validation failed")
		errorDetails := utils.FormatValidationErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Message: "Validation failed", Data: errorDetails,
		})
	}
	if event.Type == models.EventMissionAction && event.ActionType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Message: "action_type is required for mission_action events",
		})
	}

	ctx := c.Context()
	outcome, err := h.EngineService.ProcessEvent(ctx, event)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEvent) {
			middleware.CountEvent(string(event.Type), "duplicate")
			return c.Status(fiber.StatusConflict).JSON(models.Response{
				Success: false, Message: service.ErrDuplicateEvent.Error(),
			})
		}
		middleware.CountEvent(string(event.Type), "error")
		return respondServiceError(c, err, "ProcessEvent")
	}

	middleware.CountEvent(string(event.Type), "ok")
	zlog.Info().
		Str("event_id", event.EventID.String()).
		Int64("user_id", event.UserID).
		Str("type", string(event.Type)).
		Int("points_awarded", outcome.PointsAwarded).
		Bool("level_up", outcome.LevelUp).
		Msg("Handler: Event processed")
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Event processed successfully",
		Data:    outcome,
	})
}
