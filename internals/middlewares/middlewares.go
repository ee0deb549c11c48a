package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "sitani_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar dalam urutan yang benar
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
