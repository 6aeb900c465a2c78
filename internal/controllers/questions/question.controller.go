package questionController

import (
	"context"
	"strings"
	"unicode/utf8"

	"telon/config"
	"telon/internal/database"
	. "telon/internal/models"
	"telon/internal/repositories"
	"telon/internal/services"

	logger "github.com/Bparsons0904/goLogger"

	"gorm.io/gorm"
)

type QuestionController struct {
	questionRepo       repositories.QuestionRepository
	playRepo           repositories.PlayRepository
	transactionService *services.TransactionService
	db                 database.DB
	Config             config.Config
	log                logger.Logger
}

type CreateQuestionRequest struct {
	QuestionText string  `json:"questionText"`
	Order        *int    `json:"order"`
	Observations *string `json:"observations,omitempty"`
}

type UpdateQuestionRequest struct {
	QuestionText *string `json:"questionText,omitempty"`
	Order        *int    `json:"order,omitempty"`
	Observations *string `json:"observations,omitempty"`
}

type QuestionControllerInterface interface {
	ListByPlay(ctx context.Context, playID int, onlyTrashed, withTrashed bool) ([]*Question, error)
	Create(ctx context.Context, playID int, request *CreateQuestionRequest) (*Question, error)
	Get(ctx context.Context, id int) (*Question, error)
	Update(ctx context.Context, id int, request *UpdateQuestionRequest) (*Question, error)
	Delete(ctx context.Context, id int) error
	Restore(ctx context.Context, id int) (*Question, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) QuestionControllerInterface {
	return &QuestionController{
		questionRepo:       repos.Question,
		playRepo:           repos.Play,
		transactionService: services.Transaction,
		db:                 db,
		Config:             config,
		log:                logger.New("questionController"),
	}
}

func (c *QuestionController) ListByPlay(
	ctx context.Context,
	playID int,
	onlyTrashed, withTrashed bool,
) ([]*Question, error) {
	log := c.log.Function("ListByPlay")

	if _, err := c.playRepo.GetByID(ctx, c.db.SQL, playID); err != nil {
		return nil, err
	}

	filter := repositories.FilterFromFlags(onlyTrashed, withTrashed)
	questions, err := c.questionRepo.ListByPlay(ctx, c.db.SQL, playID, filter)
	if err != nil {
		return nil, log.Err("failed to list questions", err, "playID", playID)
	}

	return questions, nil
}

func (c *QuestionController) Create(
	ctx context.Context,
	playID int,
	request *CreateQuestionRequest,
) (*Question, error) {
	log := c.log.Function("Create")

	if _, err := c.playRepo.GetByID(ctx, c.db.SQL, playID); err != nil {
		return nil, err
	}

	verrs := NewValidationErrors()
	validateQuestionText(verrs, request.QuestionText)
	validateOrder(verrs, request.Order, true)
	validateObservations(verrs, request.Observations)
	if verrs.Any() {
		return nil, verrs
	}

	question := &Question{
		PlayID:       playID,
		QuestionText: strings.TrimSpace(request.QuestionText),
		Order:        *request.Order,
		Observations: request.Observations,
	}

	// The order collision pre-check and the insert share one transaction;
	// the partial unique index is the authority under concurrency.
	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		taken, err := c.questionRepo.OrderTaken(ctx, tx, playID, question.Order, nil)
		if err != nil {
			return err
		}
		if taken {
			verrs.Add("order", "The order has already been taken.")
			return verrs
		}

		return c.questionRepo.Create(ctx, tx, question)
	})
	if err != nil {
		if verrs.Any() {
			return nil, verrs
		}
		return nil, log.Err("failed to create question", err, "playID", playID)
	}

	if err := c.questionRepo.LoadCounts(ctx, c.db.SQL, question); err != nil {
		return nil, log.Err("failed to load question counts", err, "questionID", question.ID)
	}

	log.Info("Question created", "questionID", question.ID, "playID", playID)
	return question, nil
}

func (c *QuestionController) Get(ctx context.Context, id int) (*Question, error) {
	question, err := c.questionRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}

	if err := c.questionRepo.LoadCounts(ctx, c.db.SQL, question); err != nil {
		return nil, err
	}

	return question, nil
}

func (c *QuestionController) Update(
	ctx context.Context,
	id int,
	request *UpdateQuestionRequest,
) (*Question, error) {
	log := c.log.Function("Update")

	question, err := c.questionRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}

	verrs := NewValidationErrors()
	updates := make(map[string]any)

	if request.QuestionText != nil {
		validateQuestionText(verrs, *request.QuestionText)
		updates["question"] = strings.TrimSpace(*request.QuestionText)
	}
	if request.Order != nil {
		validateOrder(verrs, request.Order, true)
		updates["order"] = *request.Order
	}
	if request.Observations != nil {
		validateObservations(verrs, request.Observations)
		updates["observations"] = request.Observations
	}

	if verrs.Any() {
		return nil, verrs
	}

	if len(updates) > 0 {
		err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
			if request.Order != nil {
				taken, err := c.questionRepo.OrderTaken(
					ctx, tx, question.PlayID, *request.Order, &question.ID,
				)
				if err != nil {
					return err
				}
				if taken {
					verrs.Add("order", "The order has already been taken.")
					return verrs
				}
			}

			return c.questionRepo.Update(ctx, tx, id, updates)
		})
		if err != nil {
			if verrs.Any() {
				return nil, verrs
			}
			return nil, log.Err("failed to update question", err, "questionID", id)
		}
	}

	return c.Get(ctx, id)
}

func (c *QuestionController) Delete(ctx context.Context, id int) error {
	log := c.log.Function("Delete")

	if err := c.questionRepo.Delete(ctx, c.db.SQL, id); err != nil {
		return err
	}

	log.Info("Question soft deleted", "questionID", id)
	return nil
}

func (c *QuestionController) Restore(ctx context.Context, id int) (*Question, error) {
	log := c.log.Function("Restore")

	if _, err := c.questionRepo.GetByIDWithTrashed(ctx, c.db.SQL, id); err != nil {
		return nil, err
	}

	if err := c.questionRepo.Restore(ctx, c.db.SQL, id); err != nil {
		return nil, log.Err("failed to restore question", err, "questionID", id)
	}

	log.Info("Question restored", "questionID", id)
	return c.Get(ctx, id)
}

func validateQuestionText(verrs ValidationErrors, text string) {
	if strings.TrimSpace(text) == "" {
		verrs.Add("questionText", "The question text field is required.")
	}
}

func validateOrder(verrs ValidationErrors, order *int, required bool) {
	if order == nil {
		if required {
			verrs.Add("order", "The order field is required.")
		}
		return
	}
	if *order < 1 {
		verrs.Add("order", "The order field must be at least 1.")
	}
}

func validateObservations(verrs ValidationErrors, observations *string) {
	if observations != nil && utf8.RuneCountInString(*observations) > MaxObservationsLength {
		verrs.Add("observations", "The observations field must not be greater than 500 characters.")
	}
}
