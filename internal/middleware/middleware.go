// internal/middleware/middleware.go
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// SetupGlobalMiddleware registers the standard middleware chain. Registration
// order matters: recover must catch everything downstream of it.
func SetupGlobalMiddleware(app *fiber.App) {
	app.Use(recover.New())
	zlog.Info().Msg("Recover middleware registered")

	// X-Request-ID on every request, stored in c.Locals("requestid") for the
	// request logger below.
	app.Use(requestid.New())
	zlog.Info().Msg("RequestID middleware registered")

	// The API is consumed by the bot process and the admin panel, both
	// server-side; CORS only matters for the panel's dev setup.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173, http://127.0.0.1:5173, http://localhost:3001",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	zlog.Info().Msg("CORS middleware registered")

	// The bot fans in events for all chats through a handful of workers, so
	// the per-IP limit has to accommodate bursts.
	app.Use(limiter.New(limiter.Config{
		Max:               600,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
	}))
	zlog.Info().Msg("Rate limiter middleware registered")

	// Request logger on the global zerolog logger.
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		latency := time.Since(start)
		statusCode := c.Response().StatusCode()

		requestID := ""
		if idStr, ok := c.Locals("requestid").(string); ok {
			requestID = idStr
		}

		var logEvent *zerolog.Event
		if err != nil {
			logEvent = zlog.Warn().Err(err)
		} else {
			logEvent = zlog.Info()
			if statusCode >= 500 {
				logEvent = zlog.Error()
			} else if statusCode >= 400 {
				logEvent = zlog.Warn()
			}
		}

		loggerWithFields := logEvent.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", statusCode).
			Dur("latency", latency).
			Str("ip", c.IP()).
			Str("user_agent", c.Get(fiber.HeaderUserAgent))
		if requestID != "" {
			loggerWithFields = loggerWithFields.Str("request_id", requestID)
		}
		loggerWithFields.Msg("Request handled")

		// Hand the error on so the global ErrorHandler builds the response.
		return err
	})
	zlog.Info().Msg("Request logger middleware registered")

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	zlog.Info().Msg("Compress middleware registered")
}
