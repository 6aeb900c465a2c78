package handlers

import (
	"telon/internal/app"
	playController "telon/internal/controllers/plays"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type PlayHandler struct {
	Handler
	playController playController.PlayControllerInterface
}

func NewPlayHandler(app app.App, router fiber.Router) *PlayHandler {
	log := logger.New("handlers").File("play_handler")
	return &PlayHandler{
		playController: app.Controllers.Play,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *PlayHandler) Register() {
	plays := h.router.Group("/plays", h.middleware.RequireAuth())

	plays.Get("", h.list)
	plays.Post("", h.create)
	plays.Get("/:id", h.show)
	plays.Patch("/:id", h.update)
	plays.Put("/:id", h.update)
	plays.Delete("/:id", h.delete)
	plays.Patch("/:id/restore", h.restore)
}

func (h *PlayHandler) list(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("list")

	onlyTrashed, withTrashed := trashFlags(c)
	plays, err := h.playController.List(c.UserContext(), onlyTrashed, withTrashed)
	if err != nil {
		return respondError(c, log, err, "Failed to list plays")
	}

	return c.JSON(plays)
}

func (h *PlayHandler) create(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("create")

	var req playController.CreatePlayRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	play, err := h.playController.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, log, err, "Failed to create play")
	}

	return c.Status(fiber.StatusCreated).JSON(play)
}

func (h *PlayHandler) show(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("show")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	play, err := h.playController.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, log, err, "Failed to retrieve play")
	}

	return c.JSON(play)
}

func (h *PlayHandler) update(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("update")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	var req playController.UpdatePlayRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	play, err := h.playController.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, log, err, "Failed to update play")
	}

	return c.JSON(play)
}

func (h *PlayHandler) delete(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("delete")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	if err := h.playController.Delete(c.UserContext(), id); err != nil {
		return respondError(c, log, err, "Failed to delete play")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *PlayHandler) restore(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("restore")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	play, err := h.playController.Restore(c.UserContext(), id)
	if err != nil {
		return respondError(c, log, err, "Failed to restore play")
	}

	return c.JSON(play)
}
