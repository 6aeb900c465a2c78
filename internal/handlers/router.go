package handlers

import (
	"errors"
	"fmt"
	"sort"

	"telon/internal/app"
	"telon/internal/handlers/middleware"
	"telon/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")
	api.Use(app.Middleware.TraceID())

	HealthHandler(api, app.Database)
	NewAuthHandler(*app, api).Register()
	NewPlayHandler(*app, api).Register()
	NewQuestionHandler(*app, api).Register()
	NewOptionHandler(*app, api).Register()
	NewPerformanceHandler(*app, api).Register()

	return nil
}

// respondError maps controller errors onto the API's error taxonomy:
// field-scoped validation failures become 422 with the full field map,
// missing or soft deleted records become 404, everything else is a 500.
func respondError(c *fiber.Ctx, log logger.Logger, err error, fallback string) error {
	if verrs, ok := models.AsValidationErrors(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": validationSummary(verrs),
			"errors":  verrs,
		})
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Not found.",
		})
	}

	_ = log.Err(fallback, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fallback,
	})
}

func validationSummary(verrs models.ValidationErrors) string {
	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	total := 0
	first := ""
	for _, field := range fields {
		messages := verrs[field]
		if first == "" && len(messages) > 0 {
			first = messages[0]
		}
		total += len(messages)
	}

	switch {
	case total <= 1:
		return first
	case total == 2:
		return fmt.Sprintf("%s (and 1 more error)", first)
	default:
		return fmt.Sprintf("%s (and %d more errors)", first, total-1)
	}
}

// trashFlags reads the mutually exclusive listing filters from the query
// string. only_trashed wins when both are present.
func trashFlags(c *fiber.Ctx) (onlyTrashed, withTrashed bool) {
	return c.QueryBool("only_trashed"), c.QueryBool("with_trashed")
}
