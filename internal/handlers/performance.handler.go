package handlers

import (
	"telon/internal/app"
	performanceController "telon/internal/controllers/performances"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type PerformanceHandler struct {
	Handler
	performanceController performanceController.PerformanceControllerInterface
}

func NewPerformanceHandler(app app.App, router fiber.Router) *PerformanceHandler {
	log := logger.New("handlers").File("performance_handler")
	return &PerformanceHandler{
		performanceController: app.Controllers.Performance,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *PerformanceHandler) Register() {
	auth := h.middleware.RequireAuth()

	h.router.Get("/plays/:playId/performances", auth, h.listByPlay)
	h.router.Post("/plays/:playId/performances", auth, h.create)

	performances := h.router.Group("/performances", auth)
	performances.Get("/:id", h.show)
	performances.Patch("/:id", h.update)
	performances.Put("/:id", h.update)
	performances.Delete("/:id", h.delete)
	performances.Patch("/:id/restore", h.restore)
}

func (h *PerformanceHandler) listByPlay(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listByPlay")

	playID, err := c.ParamsInt("playId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	onlyTrashed, withTrashed := trashFlags(c)
	performances, err := h.performanceController.ListByPlay(
		c.UserContext(), playID, onlyTrashed, withTrashed,
	)
	if err != nil {
		return respondError(c, log, err, "Failed to list performances")
	}

	return c.JSON(performances)
}

func (h *PerformanceHandler) create(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("create")

	playID, err := c.ParamsInt("playId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	var req performanceController.CreatePerformanceRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	performance, err := h.performanceController.Create(c.UserContext(), playID, &req)
	if err != nil {
		return respondError(c, log, err, "Failed to create performance")
	}

	return c.Status(fiber.StatusCreated).JSON(performance)
}

func (h *PerformanceHandler) show(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("show")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	performance, err := h.performanceController.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, log, err, "Failed to retrieve performance")
	}

	return c.JSON(performance)
}

func (h *PerformanceHandler) update(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("update")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	var req performanceController.UpdatePerformanceRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	performance, err := h.performanceController.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, log, err, "Failed to update performance")
	}

	return c.JSON(performance)
}

func (h *PerformanceHandler) delete(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("delete")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	if err := h.performanceController.Delete(c.UserContext(), id); err != nil {
		return respondError(c, log, err, "Failed to delete performance")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *PerformanceHandler) restore(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("restore")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	performance, err := h.performanceController.Restore(c.UserContext(), id)
	if err != nil {
		return respondError(c, log, err, "Failed to restore performance")
	}

	return c.JSON(performance)
}
