// internal/utils/params.go
package utils

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

// ParseIDParam reads a positive integer path parameter (mission ids,
// achievement ids, tier ids).
func ParseIDParam(c *fiber.Ctx, paramName string) (int, error) {
	idStr := c.Params(paramName)
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		zlog.Warn().Str("paramName", paramName).Str("value", idStr).Str("path", c.Path()).Msg("Invalid numeric value for ID parameter")
		return 0, fmt.Errorf("invalid parameter '%s': must be a positive number", paramName)
	}
	return id, nil
}

// ParsePlayerIDParam reads a Telegram user id path parameter. Telegram ids
// exceed int32, so these are int64.
func ParsePlayerIDParam(c *fiber.Ctx, paramName string) (int64, error) {
	idStr := c.Params(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		zlog.Warn().Str("paramName", paramName).Str("value", idStr).Str("path", c.Path()).Msg("Invalid numeric value for player ID parameter")
		return 0, fmt.Errorf("invalid parameter '%s': must be a positive number", paramName)
	}
	return id, nil
}
