package repositories

import (
	"context"
	"time"

	. "telon/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"gorm.io/gorm"
)

type QuestionOptionRepository interface {
	ListByQuestion(ctx context.Context, db *gorm.DB, questionID int, filter TrashFilter) ([]*QuestionOption, error)
	GetByID(ctx context.Context, db *gorm.DB, id int) (*QuestionOption, error)
	GetByIDWithTrashed(ctx context.Context, db *gorm.DB, id int) (*QuestionOption, error)
	Create(ctx context.Context, db *gorm.DB, option *QuestionOption) error
	Update(ctx context.Context, db *gorm.DB, id int, updates map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id int) error
	Restore(ctx context.Context, db *gorm.DB, id int) error
	OrderTaken(ctx context.Context, db *gorm.DB, questionID, order int, excludeID *int) (bool, error)
	PurgeTrashed(ctx context.Context, db *gorm.DB, before time.Time) (int64, error)
}

type questionOptionRepository struct {
	log logger.Logger
}

func NewQuestionOptionRepository() QuestionOptionRepository {
	return &questionOptionRepository{
		log: logger.New("questionOptionRepository"),
	}
}

func (r *questionOptionRepository) ListByQuestion(
	ctx context.Context,
	db *gorm.DB,
	questionID int,
	filter TrashFilter,
) ([]*QuestionOption, error) {
	log := r.log.Function("ListByQuestion")

	var options []*QuestionOption
	query := withTrashFilter(db.WithContext(ctx).Model(&QuestionOption{}), filter).
		Where("question_id = ?", questionID).
		Order(`"order" ASC`)
	if err := query.Find(&options).Error; err != nil {
		return nil, log.Err("failed to list options", err, "questionID", questionID)
	}

	return options, nil
}

func (r *questionOptionRepository) GetByID(
	ctx context.Context,
	db *gorm.DB,
	id int,
) (*QuestionOption, error) {
	var option QuestionOption
	if err := db.WithContext(ctx).First(&option, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *questionOptionRepository) GetByIDWithTrashed(
	ctx context.Context,
	db *gorm.DB,
	id int,
) (*QuestionOption, error) {
	var option QuestionOption
	if err := db.WithContext(ctx).Unscoped().First(&option, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *questionOptionRepository) Create(
	ctx context.Context,
	db *gorm.DB,
	option *QuestionOption,
) error {
	log := r.log.Function("Create")

	if err := db.WithContext(ctx).Create(option).Error; err != nil {
		return log.Err("failed to create option", err, "questionID", option.QuestionID)
	}

	return nil
}

func (r *questionOptionRepository) Update(
	ctx context.Context,
	db *gorm.DB,
	id int,
	updates map[string]any,
) error {
	log := r.log.Function("Update")

	result := db.WithContext(ctx).Model(&QuestionOption{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return log.Err("failed to update option", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *questionOptionRepository) Delete(ctx context.Context, db *gorm.DB, id int) error {
	log := r.log.Function("Delete")

	result := db.WithContext(ctx).Delete(&QuestionOption{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete option", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *questionOptionRepository) Restore(ctx context.Context, db *gorm.DB, id int) error {
	log := r.log.Function("Restore")

	result := db.WithContext(ctx).Unscoped().Model(&QuestionOption{}).
		Where("id = ?", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return log.Err("failed to restore option", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// OrderTaken reports whether another non-deleted option of the same question
// already holds the proposed order. excludeID omits the row being updated.
func (r *questionOptionRepository) OrderTaken(
	ctx context.Context,
	db *gorm.DB,
	questionID, order int,
	excludeID *int,
) (bool, error) {
	log := r.log.Function("OrderTaken")

	query := db.WithContext(ctx).Model(&QuestionOption{}).
		Where(`question_id = ? AND "order" = ?`, questionID, order)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, log.Err("failed to check option order", err, "questionID", questionID, "order", order)
	}

	return count > 0, nil
}

func (r *questionOptionRepository) PurgeTrashed(
	ctx context.Context,
	db *gorm.DB,
	before time.Time,
) (int64, error) {
	log := r.log.Function("PurgeTrashed")

	result := db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Delete(&QuestionOption{})
	if result.Error != nil {
		return 0, log.Err("failed to purge trashed options", result.Error)
	}

	return result.RowsAffected, nil
}
