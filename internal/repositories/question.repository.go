package repositories

import (
	"context"
	"time"

	. "telon/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	ListByPlay(ctx context.Context, db *gorm.DB, playID int, filter TrashFilter) ([]*Question, error)
	GetByID(ctx context.Context, db *gorm.DB, id int) (*Question, error)
	GetByIDWithTrashed(ctx context.Context, db *gorm.DB, id int) (*Question, error)
	Create(ctx context.Context, db *gorm.DB, question *Question) error
	Update(ctx context.Context, db *gorm.DB, id int, updates map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id int) error
	Restore(ctx context.Context, db *gorm.DB, id int) error
	OrderTaken(ctx context.Context, db *gorm.DB, playID, order int, excludeID *int) (bool, error)
	Exists(ctx context.Context, db *gorm.DB, id int) (bool, error)
	LoadCounts(ctx context.Context, db *gorm.DB, question *Question) error
	PurgeTrashed(ctx context.Context, db *gorm.DB, before time.Time) (int64, error)
}

type questionRepository struct {
	log logger.Logger
}

func NewQuestionRepository() QuestionRepository {
	return &questionRepository{
		log: logger.New("questionRepository"),
	}
}

func (r *questionRepository) ListByPlay(
	ctx context.Context,
	db *gorm.DB,
	playID int,
	filter TrashFilter,
) ([]*Question, error) {
	log := r.log.Function("ListByPlay")

	var questions []*Question
	query := withTrashFilter(db.WithContext(ctx).Model(&Question{}), filter).
		Where("play_id = ?", playID).
		Order(`"order" ASC`)
	if err := query.Find(&questions).Error; err != nil {
		return nil, log.Err("failed to list questions", err, "playID", playID)
	}

	for _, question := range questions {
		if err := r.LoadCounts(ctx, db, question); err != nil {
			return nil, err
		}
	}

	return questions, nil
}

func (r *questionRepository) GetByID(ctx context.Context, db *gorm.DB, id int) (*Question, error) {
	var question Question
	if err := db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) GetByIDWithTrashed(
	ctx context.Context,
	db *gorm.DB,
	id int,
) (*Question, error) {
	var question Question
	if err := db.WithContext(ctx).Unscoped().First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) Create(ctx context.Context, db *gorm.DB, question *Question) error {
	log := r.log.Function("Create")

	if err := db.WithContext(ctx).Create(question).Error; err != nil {
		return log.Err("failed to create question", err, "playID", question.PlayID)
	}

	return nil
}

func (r *questionRepository) Update(
	ctx context.Context,
	db *gorm.DB,
	id int,
	updates map[string]any,
) error {
	log := r.log.Function("Update")

	result := db.WithContext(ctx).Model(&Question{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return log.Err("failed to update question", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *questionRepository) Delete(ctx context.Context, db *gorm.DB, id int) error {
	log := r.log.Function("Delete")

	result := db.WithContext(ctx).Delete(&Question{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete question", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *questionRepository) Restore(ctx context.Context, db *gorm.DB, id int) error {
	log := r.log.Function("Restore")

	result := db.WithContext(ctx).Unscoped().Model(&Question{}).
		Where("id = ?", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return log.Err("failed to restore question", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// OrderTaken reports whether another non-deleted question of the same play
// already holds the proposed order. excludeID omits the row being updated.
func (r *questionRepository) OrderTaken(
	ctx context.Context,
	db *gorm.DB,
	playID, order int,
	excludeID *int,
) (bool, error) {
	log := r.log.Function("OrderTaken")

	query := db.WithContext(ctx).Model(&Question{}).
		Where(`play_id = ? AND "order" = ?`, playID, order)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, log.Err("failed to check question order", err, "playID", playID, "order", order)
	}

	return count > 0, nil
}

func (r *questionRepository) Exists(ctx context.Context, db *gorm.DB, id int) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&Question{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *questionRepository) LoadCounts(
	ctx context.Context,
	db *gorm.DB,
	question *Question,
) error {
	log := r.log.Function("LoadCounts")

	if err := db.WithContext(ctx).Model(&QuestionOption{}).
		Where("question_id = ?", question.ID).
		Count(&question.OptionsCount).Error; err != nil {
		return log.Err("failed to count options", err, "questionID", question.ID)
	}

	return nil
}

func (r *questionRepository) PurgeTrashed(
	ctx context.Context,
	db *gorm.DB,
	before time.Time,
) (int64, error) {
	log := r.log.Function("PurgeTrashed")

	result := db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Delete(&Question{})
	if result.Error != nil {
		return 0, log.Err("failed to purge trashed questions", result.Error)
	}

	return result.RowsAffected, nil
}
