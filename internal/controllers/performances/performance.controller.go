package performanceController

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"telon/config"
	"telon/internal/database"
	. "telon/internal/models"
	"telon/internal/repositories"
	"telon/internal/services"

	logger "github.com/Bparsons0904/goLogger"

	"gorm.io/gorm"
)

var alphaNumPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

type PerformanceController struct {
	performanceRepo    repositories.PerformanceRepository
	playRepo           repositories.PlayRepository
	transactionService *services.TransactionService
	db                 database.DB
	Config             config.Config
	log                logger.Logger
}

type CreatePerformanceRequest struct {
	UID         *string    `json:"uid,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Location    string     `json:"location"`
	Comment     *string    `json:"comment,omitempty"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	EndedAt     *time.Time `json:"endedAt,omitempty"`
}

type UpdatePerformanceRequest struct {
	UID         *string    `json:"uid,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Comment     *string    `json:"comment,omitempty"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	EndedAt     *time.Time `json:"endedAt,omitempty"`
}

type PerformanceControllerInterface interface {
	ListByPlay(ctx context.Context, playID int, onlyTrashed, withTrashed bool) ([]*Performance, error)
	Create(ctx context.Context, playID int, request *CreatePerformanceRequest) (*Performance, error)
	Get(ctx context.Context, id int) (*Performance, error)
	Update(ctx context.Context, id int, request *UpdatePerformanceRequest) (*Performance, error)
	Delete(ctx context.Context, id int) error
	Restore(ctx context.Context, id int) (*Performance, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
) PerformanceControllerInterface {
	return &PerformanceController{
		performanceRepo:    repos.Performance,
		playRepo:           repos.Play,
		transactionService: services.Transaction,
		db:                 db,
		Config:             config,
		log:                logger.New("performanceController"),
	}
}

func (c *PerformanceController) ListByPlay(
	ctx context.Context,
	playID int,
	onlyTrashed, withTrashed bool,
) ([]*Performance, error) {
	log := c.log.Function("ListByPlay")

	if _, err := c.playRepo.GetByID(ctx, c.db.SQL, playID); err != nil {
		return nil, err
	}

	filter := repositories.FilterFromFlags(onlyTrashed, withTrashed)
	performances, err := c.performanceRepo.ListByPlay(ctx, c.db.SQL, playID, filter)
	if err != nil {
		return nil, log.Err("failed to list performances", err, "playID", playID)
	}

	return performances, nil
}

func (c *PerformanceController) Create(
	ctx context.Context,
	playID int,
	request *CreatePerformanceRequest,
) (*Performance, error) {
	log := c.log.Function("Create")

	if _, err := c.playRepo.GetByID(ctx, c.db.SQL, playID); err != nil {
		return nil, err
	}

	verrs := NewValidationErrors()
	validateUID(verrs, request.UID)
	if request.ScheduledAt == nil {
		verrs.Add("scheduledAt", "The scheduled at field is required.")
	}
	validateLocation(verrs, request.Location)
	validateComment(verrs, request.Comment)
	if verrs.Any() {
		return nil, verrs
	}

	performance := &Performance{
		PlayID:      playID,
		ScheduledAt: *request.ScheduledAt,
		Location:    strings.TrimSpace(request.Location),
		Comment:     request.Comment,
		StartedAt:   request.StartedAt,
		EndedAt:     request.EndedAt,
	}
	if request.UID != nil {
		performance.UID = *request.UID
	}

	// A caller-supplied uid that collides is rejected; a generated uid is
	// never pre-checked and relies on the partial unique index.
	err := c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if performance.UID != "" {
			taken, err := c.performanceRepo.UIDTaken(ctx, tx, performance.UID, nil)
			if err != nil {
				return err
			}
			if taken {
				verrs.Add("uid", "The uid has already been taken.")
				return verrs
			}
		}

		return c.performanceRepo.Create(ctx, tx, performance)
	})
	if err != nil {
		if verrs.Any() {
			return nil, verrs
		}
		return nil, log.Err("failed to create performance", err, "playID", playID)
	}

	log.Info("Performance created", "performanceID", performance.ID, "uid", performance.UID)
	return performance, nil
}

func (c *PerformanceController) Get(ctx context.Context, id int) (*Performance, error) {
	return c.performanceRepo.GetByID(ctx, c.db.SQL, id)
}

func (c *PerformanceController) Update(
	ctx context.Context,
	id int,
	request *UpdatePerformanceRequest,
) (*Performance, error) {
	log := c.log.Function("Update")

	performance, err := c.performanceRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}

	verrs := NewValidationErrors()
	updates := make(map[string]any)

	if request.UID != nil {
		validateUID(verrs, request.UID)
		if strings.TrimSpace(*request.UID) == "" {
			verrs.Add("uid", "The uid field is required.")
		}
		updates["uid"] = *request.UID
	}
	if request.ScheduledAt != nil {
		updates["scheduled_at"] = *request.ScheduledAt
	}
	if request.Location != nil {
		validateLocation(verrs, *request.Location)
		updates["location"] = strings.TrimSpace(*request.Location)
	}
	if request.Comment != nil {
		validateComment(verrs, request.Comment)
		updates["comment"] = request.Comment
	}
	if request.StartedAt != nil {
		updates["started_at"] = request.StartedAt
	}
	if request.EndedAt != nil {
		updates["ended_at"] = request.EndedAt
	}

	if verrs.Any() {
		return nil, verrs
	}

	if len(updates) > 0 {
		err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
			if request.UID != nil {
				taken, err := c.performanceRepo.UIDTaken(ctx, tx, *request.UID, &performance.ID)
				if err != nil {
					return err
				}
				if taken {
					verrs.Add("uid", "The uid has already been taken.")
					return verrs
				}
			}

			return c.performanceRepo.Update(ctx, tx, id, updates)
		})
		if err != nil {
			if verrs.Any() {
				return nil, verrs
			}
			return nil, log.Err("failed to update performance", err, "performanceID", id)
		}
	}

	return c.Get(ctx, id)
}

func (c *PerformanceController) Delete(ctx context.Context, id int) error {
	log := c.log.Function("Delete")

	if err := c.performanceRepo.Delete(ctx, c.db.SQL, id); err != nil {
		return err
	}

	log.Info("Performance soft deleted", "performanceID", id)
	return nil
}

func (c *PerformanceController) Restore(ctx context.Context, id int) (*Performance, error) {
	log := c.log.Function("Restore")

	if _, err := c.performanceRepo.GetByIDWithTrashed(ctx, c.db.SQL, id); err != nil {
		return nil, err
	}

	// Restore does not re-validate uid collisions; callers are expected to
	// avoid restoring into a conflicting uid.
	if err := c.performanceRepo.Restore(ctx, c.db.SQL, id); err != nil {
		return nil, log.Err("failed to restore performance", err, "performanceID", id)
	}

	log.Info("Performance restored", "performanceID", id)
	return c.Get(ctx, id)
}

func validateUID(verrs ValidationErrors, uid *string) {
	if uid == nil {
		return
	}
	if utf8.RuneCountInString(*uid) > MaxUIDLength {
		verrs.Add("uid", "The uid field must not be greater than 32 characters.")
	}
	if *uid != "" && !alphaNumPattern.MatchString(*uid) {
		verrs.Add("uid", "The uid field must only contain letters and numbers.")
	}
}

func validateLocation(verrs ValidationErrors, location string) {
	location = strings.TrimSpace(location)
	if location == "" {
		verrs.Add("location", "The location field is required.")
		return
	}
	if utf8.RuneCountInString(location) > MaxLocationLength {
		verrs.Add("location", "The location field must not be greater than 255 characters.")
	}
}

func validateComment(verrs ValidationErrors, comment *string) {
	if comment != nil && utf8.RuneCountInString(*comment) > MaxCommentLength {
		verrs.Add("comment", "The comment field must not be greater than 500 characters.")
	}
}
