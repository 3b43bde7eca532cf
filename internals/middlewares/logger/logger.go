package logger

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"staffhub_backend/internals/configs"
)

// LoggerMiddleware mencatat semua request di timezone agency.
func LoggerMiddleware() fiber.Handler {
	return fiberlogger.New(fiberlogger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   configs.AgencyTimezone,
		Format:     "[${time}] ${status} ${method} ${path} (${latency}) ip=${ip}\n",
	})
}
