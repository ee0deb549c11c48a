package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat satu baris ringkasan per request registri,
// dengan waktu lokal WIB.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "02-01-2006 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] ${status} ${method} ${path} ${latency} ${ip}\n",
	})
}
