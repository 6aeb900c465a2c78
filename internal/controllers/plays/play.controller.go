package playController

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
)

type PlayController struct {
	playRepo           repositories.PlayRepository
	transactionService *services.TransactionService
	db                 database.DB
	Config             config.Config
	log                logger.Logger
}

type CreatePlayRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdatePlayRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type PlayControllerInterface interface {
	List(ctx context.Context, onlyTrashed, withTrashed bool) ([]*Play, error)
	Create(ctx context.Context, request *CreatePlayRequest) (*Play, error)
	Get(ctx context.Context, id int) (*Play, error)
	Update(ctx context.Context, id int, request *UpdatePlayRequest) (*Play, error)
	Delete(ctx context.Context, id int) error
	Restore(ctx context.Context, id int) (*Play, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) PlayControllerInterface {
	return &PlayController{
		playRepo:           repos.Play,
		transactionService: services.Transaction,
		db:                 db,
		Config:             config,
		log:                logger.New("playController"),
	}
}

func (c *PlayController) List(
	ctx context.Context,
	onlyTrashed, withTrashed bool,
) ([]*Play, error) {
	log := c.log.Function("List")

	filter := repositories.FilterFromFlags(onlyTrashed, withTrashed)
	plays, err := c.playRepo.List(ctx, c.db.SQL, filter)
	if err != nil {
		return nil, log.Err("failed to list plays", err)
	}

	return plays, nil
}

func (c *PlayController) Create(
	ctx context.Context,
	request *CreatePlayRequest,
) (*Play, error) {
	log := c.log.Function("Create")

	verrs := NewValidationErrors()
	validateTitle(verrs, request.Title)
	validateDescription(verrs, request.Description)
	if verrs.Any() {
		return nil, verrs
	}

	play := &Play{
		Title:       strings.TrimSpace(request.Title),
		Description: strings.TrimSpace(request.Description),
	}

	if err := c.playRepo.Create(ctx, c.db.SQL, play); err != nil {
		return nil, log.Err("failed to create play", err)
	}

	if err := c.playRepo.LoadCounts(ctx, c.db.SQL, play); err != nil {
		return nil, log.Err("failed to load play counts", err, "playID", play.ID)
	}

	log.Info("Play created", "playID", play.ID)
	return play, nil
}

func (c *PlayController) Get(ctx context.Context, id int) (*Play, error) {
	play, err := c.playRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}

	if err := c.playRepo.LoadCounts(ctx, c.db.SQL, play); err != nil {
		return nil, err
	}

	return play, nil
}

func (c *PlayController) Update(
	ctx context.Context,
	id int,
	request *UpdatePlayRequest,
) (*Play, error) {
	log := c.log.Function("Update")

	if _, err := c.playRepo.GetByID(ctx, c.db.SQL, id); err != nil {
		return nil, err
	}

	verrs := NewValidationErrors()
	updates := make(map[string]any)

	if request.Title != nil {
		validateTitle(verrs, *request.Title)
		updates["title"] = strings.TrimSpace(*request.Title)
	}
	if request.Description != nil {
		validateDescription(verrs, *request.Description)
		updates["description"] = strings.TrimSpace(*request.Description)
	}

	if verrs.Any() {
		return nil, verrs
	}

	if len(updates) > 0 {
		if err := c.playRepo.Update(ctx, c.db.SQL, id, updates); err != nil {
			return nil, log.Err("failed to update play", err, "playID", id)
		}
	}

	return c.Get(ctx, id)
}

func (c *PlayController) Delete(ctx context.Context, id int) error {
	log := c.log.Function("Delete")

	if err := c.playRepo.Delete(ctx, c.db.SQL, id); err != nil {
		return err
	}

	log.Info("Play soft deleted", "playID", id)
	return nil
}

func (c *PlayController) Restore(ctx context.Context, id int) (*Play, error) {
	log := c.log.Function("Restore")

	if _, err := c.playRepo.GetByIDWithTrashed(ctx, c.db.SQL, id); err != nil {
		return nil, err
	}

	if err := c.playRepo.Restore(ctx, c.db.SQL, id); err != nil {
		return nil, log.Err("failed to restore play", err, "playID", id)
	}

	log.Info("Play restored", "playID", id)
	return c.Get(ctx, id)
}

func validateTitle(verrs ValidationErrors, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		verrs.Add("title", "The title field is required.")
		return
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		verrs.Add("title", "The title field must not be greater than 255 characters.")
	}
}

func validateDescription(verrs ValidationErrors, description string) {
	description = strings.TrimSpace(description)
	if description == "" {
		verrs.Add("description", "The description field is required.")
		return
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		verrs.Add("description", "The description field must not be greater than 500 characters.")
	}
}
