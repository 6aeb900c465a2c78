package handlers

import (
	"telon/internal/database"

	"github.com/gofiber/fiber/v2"
)

func HealthHandler(router fiber.Router, db database.DB) {
	router.Get("/health", func(c *fiber.Ctx) error {
		if err := db.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":   "error",
				"database": "not connected",
				"message":  err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": "connected",
		})
	})
}
