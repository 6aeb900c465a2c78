package optionController

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

type OptionController struct {
	optionRepo         repositories.QuestionOptionRepository
	questionRepo       repositories.QuestionRepository
	transactionService *services.TransactionService
	db                 database.DB
	Config             config.Config
	log                logger.Logger
}

type CreateOptionRequest struct {
	Text           string  `json:"text"`
	Order          *int    `json:"order"`
	Notes          *string `json:"notes,omitempty"`
	NextQuestionID *int    `json:"nextQuestionId,omitempty"`
}

type UpdateOptionRequest struct {
	Text           *string `json:"text,omitempty"`
	Order          *int    `json:"order,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	NextQuestionID *int    `json:"nextQuestionId,omitempty"`
}

type OptionControllerInterface interface {
	ListByQuestion(ctx context.Context, questionID int, onlyTrashed, withTrashed bool) ([]*QuestionOption, error)
	Create(ctx context.Context, questionID int, request *CreateOptionRequest) (*QuestionOption, error)
	Get(ctx context.Context, id int) (*QuestionOption, error)
	Update(ctx context.Context, id int, request *UpdateOptionRequest) (*QuestionOption, error)
	Delete(ctx context.Context, id int) error
	Restore(ctx context.Context, id int) (*QuestionOption, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) OptionControllerInterface {
	return &OptionController{
		optionRepo:         repos.QuestionOption,
		questionRepo:       repos.Question,
		transactionService: services.Transaction,
		db:                 db,
		Config:             config,
		log:                logger.New("optionController"),
	}
}

func (c *OptionController) ListByQuestion(
	ctx context.Context,
	questionID int,
	onlyTrashed, withTrashed bool,
) ([]*QuestionOption, error) {
	log := c.log.Function("ListByQuestion")

	if _, err := c.questionRepo.GetByID(ctx, c.db.SQL, questionID); err != nil {
		return nil, err
	}

	filter := repositories.FilterFromFlags(onlyTrashed, withTrashed)
	options, err := c.optionRepo.ListByQuestion(ctx, c.db.SQL, questionID, filter)
	if err != nil {
		return nil, log.Err("failed to list options", err, "questionID", questionID)
	}

	return options, nil
}

func (c *OptionController) Create(
	ctx context.Context,
	questionID int,
	request *CreateOptionRequest,
) (*QuestionOption, error) {
	log := c.log.Function("Create")

	if _, err := c.questionRepo.GetByID(ctx, c.db.SQL, questionID); err != nil {
		return nil, err
	}

	verrs := NewValidationErrors()
	validateOptionText(verrs, request.Text)
	validateOptionOrder(verrs, request.Order, true)
	validateNotes(verrs, request.Notes)
	if err := c.validateNextQuestion(ctx, verrs, request.NextQuestionID); err != nil {
		return nil, err
	}
	if verrs.Any() {
		return nil, verrs
	}

	option := &QuestionOption{
		QuestionID:     questionID,
		Text:           strings.TrimSpace(request.Text),
		Order:          *request.Order,
		Notes:          request.Notes,
		NextQuestionID: request.NextQuestionID,
	}

	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		taken, err := c.optionRepo.OrderTaken(ctx, tx, questionID, option.Order, nil)
		if err != nil {
			return err
		}
		if taken {
			verrs.Add("order", "The order has already been taken.")
			return verrs
		}

		return c.optionRepo.Create(ctx, tx, option)
	})
	if err != nil {
		if verrs.Any() {
			return nil, verrs
		}
		return nil, log.Err("failed to create option", err, "questionID", questionID)
	}

	log.Info("Option created", "optionID", option.ID, "questionID", questionID)
	return option, nil
}

func (c *OptionController) Get(ctx context.Context, id int) (*QuestionOption, error) {
	return c.optionRepo.GetByID(ctx, c.db.SQL, id)
}

func (c *OptionController) Update(
	ctx context.Context,
	id int,
	request *UpdateOptionRequest,
) (*QuestionOption, error) {
	log := c.log.Function("Update")

	option, err := c.optionRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}

	verrs := NewValidationErrors()
	updates := make(map[string]any)

	if request.Text != nil {
		validateOptionText(verrs, *request.Text)
		updates["text"] = strings.TrimSpace(*request.Text)
	}
	if request.Order != nil {
		validateOptionOrder(verrs, request.Order, true)
		updates["order"] = *request.Order
	}
	if request.Notes != nil {
		validateNotes(verrs, request.Notes)
		updates["notes"] = request.Notes
	}
	if request.NextQuestionID != nil {
		if err := c.validateNextQuestion(ctx, verrs, request.NextQuestionID); err != nil {
			return nil, err
		}
		updates["next_question_id"] = *request.NextQuestionID
	}

	if verrs.Any() {
		return nil, verrs
	}

	if len(updates) > 0 {
		err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
			if request.Order != nil {
				taken, err := c.optionRepo.OrderTaken(
					ctx, tx, option.QuestionID, *request.Order, &option.ID,
				)
				if err != nil {
					return err
				}
				if taken {
					verrs.Add("order", "The order has already been taken.")
					return verrs
				}
			}

			return c.optionRepo.Update(ctx, tx, id, updates)
		})
		if err != nil {
			if verrs.Any() {
				return nil, verrs
			}
			return nil, log.Err("failed to update option", err, "optionID", id)
		}
	}

	return c.Get(ctx, id)
}

func (c *OptionController) Delete(ctx context.Context, id int) error {
	log := c.log.Function("Delete")

	if err := c.optionRepo.Delete(ctx, c.db.SQL, id); err != nil {
		return err
	}

	log.Info("Option soft deleted", "optionID", id)
	return nil
}

func (c *OptionController) Restore(ctx context.Context, id int) (*QuestionOption, error) {
	log := c.log.Function("Restore")

	if _, err := c.optionRepo.GetByIDWithTrashed(ctx, c.db.SQL, id); err != nil {
		return nil, err
	}

	if err := c.optionRepo.Restore(ctx, c.db.SQL, id); err != nil {
		return nil, log.Err("failed to restore option", err, "optionID", id)
	}

	log.Info("Option restored", "optionID", id)
	return c.Get(ctx, id)
}

// validateNextQuestion checks the branch target references an active
// question. Cycles are allowed; an option may even point back at its own
// question.
func (c *OptionController) validateNextQuestion(
	ctx context.Context,
	verrs ValidationErrors,
	nextQuestionID *int,
) error {
	if nextQuestionID == nil {
		return nil
	}

	exists, err := c.questionRepo.Exists(ctx, c.db.SQL, *nextQuestionID)
	if err != nil {
		return err
	}
	if !exists {
		verrs.Add("nextQuestionId", "The selected next question id is invalid.")
	}

	return nil
}

func validateOptionText(verrs ValidationErrors, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		verrs.Add("text", "The text field is required.")
		return
	}
	if utf8.RuneCountInString(text) > MaxOptionTextLength {
		verrs.Add("text", "The text field must not be greater than 255 characters.")
	}
}

func validateOptionOrder(verrs ValidationErrors, order *int, required bool) {
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

func validateNotes(verrs ValidationErrors, notes *string) {
	if notes != nil && utf8.RuneCountInString(*notes) > MaxNotesLength {
		verrs.Add("notes", "The notes field must not be greater than 500 characters.")
	}
}
