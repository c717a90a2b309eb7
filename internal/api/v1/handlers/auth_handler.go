// internal/api/v1/handlers/auth_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/service"
	"github.com/carlostoek/diana-gamification-be/internal/utils"
)

type AuthHandler struct {
	AuthService service.AuthService
	Validate    *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		AuthService: authService,
		Validate:    validator.New(),
	}
}

// Register godoc
// @Summary Register Operator Account
// @Description Creates a new operator account (Admin or Bot).
// @Tags Authentication
// @Accept json
// @Produce json
// @Param register body models.RegisterAccountInput true "Account Registration Details"
// @Success 201 {object} models.Response{data=map[string]int} "Account registered successfully, returns account ID"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed or invalid request body"
// @Failure 409 {object} models.Response "Username already exists"
// @Failure 500 {object} models.Response "Internal server error during registration"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	input := new(models.RegisterAccountInput)

	if err := c.BodyParser(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Invalid request body during registration")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Message: "Invalid request body",
		})
	}

	if err := h.Validate.Struct(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Validation failed during registration")
		errorDetails := utils.FormatValidationErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Message: "Validation failed", Data: errorDetails,
		})
	}

	ctx := c.Context()
	accountID, err := h.AuthService.RegisterAccount(ctx, input)
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) {
			return c.Status(fiber.StatusConflict).JSON(models.Response{
				Success: false, Message: service.ErrUsernameExists.Error(),
			})
		}
		zlog.Error().Err(err).Str("username", input.Username).Msg("Handler: Error returned from AuthService.RegisterAccount")
		return c.Status(fiber.StatusInternalServerError).JSON(models.Response{
			Success: false, Message: "Failed to register account",
		})
	}

	zlog.Info().Int("account_id", accountID).Str("username", input.Username).Msg("Handler: Account registered successfully")
	return c.Status(fiber.StatusCreated).JSON(models.Response{
		Success: true,
		Message: "Account registered successfully",
		Data:    fiber.Map{"account_id": accountID},
	})
}

// Login godoc
// @Summary Operator Login
// @Description Authenticates an operator account and returns a JWT token.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param login body models.LoginInput true "Login Credentials"
// @Success 200 {object} models.Response{data=map[string]string} "Login successful, returns JWT token"
// @Failure 400 {object} models.Response{data=map[string]string} "Validation failed or invalid request body"
// @Failure 401 {object} models.Response "Invalid username or password"
// @Failure 500 {object} models.Response "Internal server error during login"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	input := new(models.LoginInput)

	if err := c.BodyParser(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Invalid request body during login")
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Message: "Invalid request body",
		})
	}

	if err := h.Validate.Struct(input); err != nil {
		zlog.Warn().Err(err).Msg("Handler: Validation failed during login")
		errorDetails := utils.FormatValidationErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Success: false, Message: "Validation failed", Data: errorDetails,
		})
	}

	ctx := c.Context()
	token, err := h.AuthService.Login(ctx, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.Response{
				Success: false, Message: service.ErrInvalidCredentials.Error(),
			})
		}
		zlog.Error().Err(err).Str("username", input.Username).Msg("Handler: Error returned from AuthService.Login")
		return c.Status(fiber.StatusInternalServerError).JSON(models.Response{
			Success: false, Message: "Login process failed",
		})
	}

	zlog.Info().Str("username", input.Username).Msg("Handler: Login successful")
	return c.Status(http.StatusOK).JSON(models.Response{
		Success: true,
		Message: "Login successful",
		Data:    fiber.Map{"token": token},
	})
}
