package handlers

import (
	"telon/internal/app"
	optionController "telon/internal/controllers/options"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type OptionHandler struct {
	Handler
	optionController optionController.OptionControllerInterface
}

func NewOptionHandler(app app.App, router fiber.Router) *OptionHandler {
	log := logger.New("handlers").File("option_handler")
	return &OptionHandler{
		optionController: app.Controllers.Option,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *OptionHandler) Register() {
	auth := h.middleware.RequireAuth()

	h.router.Get("/questions/:questionId/options", auth, h.listByQuestion)
	h.router.Post("/questions/:questionId/options", auth, h.create)

	options := h.router.Group("/options", auth)
	options.Get("/:id", h.show)
	options.Patch("/:id", h.update)
	options.Put("/:id", h.update)
	options.Delete("/:id", h.delete)
	options.Patch("/:id/restore", h.restore)
}

func (h *OptionHandler) listByQuestion(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listByQuestion")

	questionID, err := c.ParamsInt("questionId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	onlyTrashed, withTrashed := trashFlags(c)
	options, err := h.optionController.ListByQuestion(
		c.UserContext(), questionID, onlyTrashed, withTrashed,
	)
	if err != nil {
		return respondError(c, log, err, "Failed to list options")
	}

	return c.JSON(options)
}

func (h *OptionHandler) create(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("create")

	questionID, err := c.ParamsInt("questionId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	var req optionController.CreateOptionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	option, err := h.optionController.Create(c.UserContext(), questionID, &req)
	if err != nil {
		return respondError(c, log, err, "Failed to create option")
	}

	return c.Status(fiber.StatusCreated).JSON(option)
}

func (h *OptionHandler) show(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("show")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	option, err := h.optionController.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, log, err, "Failed to retrieve option")
	}

	return c.JSON(option)
}

func (h *OptionHandler) update(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("update")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	var req optionController.UpdateOptionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	option, err := h.optionController.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, log, err, "Failed to update option")
	}

	return c.JSON(option)
}

func (h *OptionHandler) delete(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("delete")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	if err := h.optionController.Delete(c.UserContext(), id); err != nil {
		return respondError(c, log, err, "Failed to delete option")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *OptionHandler) restore(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("restore")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	option, err := h.optionController.Restore(c.UserContext(), id)
	if err != nil {
		return respondError(c, log, err, "Failed to restore option")
	}

	return c.JSON(option)
}
