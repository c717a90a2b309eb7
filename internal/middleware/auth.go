// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/models"
	"github.com/carlostoek/diana-gamification-be/internal/utils"
)

// Protected ensures the request carries a valid JWT. It must run before any
// handler or middleware that needs the authenticated account.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := utils.ExtractToken(c)
		if tokenString == "" {
			zlog.Warn().Str("path", c.Path()).Str("ip", c.IP()).Msg("Protected route access attempt without token")
			return c.Status(fiber.StatusUnauthorized).JSON(models.Response{
				Success: false, Message: "Unauthorized: Missing token",
			})
		}

		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			zlog.Warn().Err(err).Str("path", c.Path()).Str("ip", c.IP()).Msg("Protected route access attempt with invalid token")
			return c.Status(fiber.StatusUnauthorized).JSON(models.Response{
				Success: false, Message: "Unauthorized: Invalid token",
			})
		}

		// Later middleware and handlers read the claims from here.
		c.Locals("user", claims)

		zlog.Debug().Str("username", claims.Username).Int("account_id", claims.AccountID).Str("role", claims.Role).Msg("JWT authenticated, proceeding")
		return c.Next()
	}
}

// Authorize checks that the authenticated account holds one of the allowed
// roles. Must run after Protected().
func Authorize(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*utils.JwtClaims)
		if !ok {
			zlog.Error().Str("path", c.Path()).Str("ip", c.IP()).Msg("Account claims not found in context during authorization. Ensure Protected middleware runs first.")
			return c.Status(fiber.StatusForbidden).JSON(models.Response{
				Success: false, Message: "Forbidden: Cannot determine account role",
			})
		}

		isAllowed := false
		for _, role := range allowedRoles {
			if strings.EqualFold(claims.Role, role) {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			zlog.Warn().Str("username", claims.Username).Int("account_id", claims.AccountID).Str("account_role", claims.Role).Strs("required_roles", allowedRoles).Str("path", c.Path()).Msg("Authorization failed: account role not permitted")
			return c.Status(fiber.StatusForbidden).JSON(models.Response{
				Success: false, Message: "Forbidden: Insufficient privileges",
			})
		}

		zlog.Debug().Str("username", claims.Username).Str("role", claims.Role).Msg("Authorization successful, proceeding")
		return c.Next()
	}
}
