package handlers

import (
	"telon/internal/app"
	questionController "telon/internal/controllers/questions"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type QuestionHandler struct {
	Handler
	questionController questionController.QuestionControllerInterface
}

func NewQuestionHandler(app app.App, router fiber.Router) *QuestionHandler {
	log := logger.New("handlers").File("question_handler")
	return &QuestionHandler{
		questionController: app.Controllers.Question,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *QuestionHandler) Register() {
	auth := h.middleware.RequireAuth()

	h.router.Get("/plays/:playId/questions", auth, h.listByPlay)
	h.router.Post("/plays/:playId/questions", auth, h.create)

	questions := h.router.Group("/questions", auth)
	questions.Get("/:id", h.show)
	questions.Patch("/:id", h.update)
	questions.Put("/:id", h.update)
	questions.Delete("/:id", h.delete)
	questions.Patch("/:id/restore", h.restore)
}

func (h *QuestionHandler) listByPlay(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listByPlay")

	playID, err := c.ParamsInt("playId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	onlyTrashed, withTrashed := trashFlags(c)
	questions, err := h.questionController.ListByPlay(
		c.UserContext(), playID, onlyTrashed, withTrashed,
	)
	if err != nil {
		return respondError(c, log, err, "Failed to list questions")
	}

	return c.JSON(questions)
}

func (h *QuestionHandler) create(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("create")

	playID, err := c.ParamsInt("playId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	var req questionController.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	question, err := h.questionController.Create(c.UserContext(), playID, &req)
	if err != nil {
		return respondError(c, log, err, "Failed to create question")
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

func (h *QuestionHandler) show(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("show")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	question, err := h.questionController.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, log, err, "Failed to retrieve question")
	}

	return c.JSON(question)
}

func (h *QuestionHandler) update(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("update")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	var req questionController.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	question, err := h.questionController.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, log, err, "Failed to update question")
	}

	return c.JSON(question)
}

func (h *QuestionHandler) delete(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("delete")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	if err := h.questionController.Delete(c.UserContext(), id); err != nil {
		return respondError(c, log, err, "Failed to delete question")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *QuestionHandler) restore(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("restore")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found."})
	}

	question, err := h.questionController.Restore(c.UserContext(), id)
	if err != nil {
		return respondError(c, log, err, "Failed to restore question")
	}

	return c.JSON(question)
}
