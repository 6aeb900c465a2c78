package repositories

import (
	"context"
	"time"

	. "telon/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"gorm.io/gorm"
)

type PlayRepository interface {
	List(ctx context.Context, db *gorm.DB, filter TrashFilter) ([]*Play, error)
	GetByID(ctx context.Context, db *gorm.DB, id int) (*Play, error)
	GetByIDWithTrashed(ctx context.Context, db *gorm.DB, id int) (*Play, error)
	Create(ctx context.Context, db *gorm.DB, play *Play) error
	Update(ctx context.Context, db *gorm.DB, id int, updates map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id int) error
	Restore(ctx context.Context, db *gorm.DB, id int) error
	LoadCounts(ctx context.Context, db *gorm.DB, play *Play) error
	PurgeTrashed(ctx context.Context, db *gorm.DB, before time.Time) (int64, error)
}

type playRepository struct {
	log logger.Logger
}

func NewPlayRepository() PlayRepository {
	return &playRepository{
		log: logger.New("playRepository"),
	}
}

func (r *playRepository) List(
	ctx context.Context,
	db *gorm.DB,
	filter TrashFilter,
) ([]*Play, error) {
	log := r.log.Function("List")

	var plays []*Play
	query := withTrashFilter(db.WithContext(ctx).Model(&Play{}), filter).
		Order("created_at DESC")
	if err := query.Find(&plays).Error; err != nil {
		return nil, log.Err("failed to list plays", err)
	}

	for _, play := range plays {
		if err := r.LoadCounts(ctx, db, play); err != nil {
			return nil, err
		}
	}

	return plays, nil
}

func (r *playRepository) GetByID(ctx context.Context, db *gorm.DB, id int) (*Play, error) {
	var play Play
	if err := db.WithContext(ctx).First(&play, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &play, nil
}

func (r *playRepository) GetByIDWithTrashed(
	ctx context.Context,
	db *gorm.DB,
	id int,
) (*Play, error) {
	var play Play
	if err := db.WithContext(ctx).Unscoped().First(&play, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &play, nil
}

func (r *playRepository) Create(ctx context.Context, db *gorm.DB, play *Play) error {
	log := r.log.Function("Create")

	if err := db.WithContext(ctx).Create(play).Error; err != nil {
		return log.Err("failed to create play", err, "title", play.Title)
	}

	return nil
}

func (r *playRepository) Update(
	ctx context.Context,
	db *gorm.DB,
	id int,
	updates map[string]any,
) error {
	log := r.log.Function("Update")

	result := db.WithContext(ctx).Model(&Play{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return log.Err("failed to update play", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *playRepository) Delete(ctx context.Context, db *gorm.DB, id int) error {
	log := r.log.Function("Delete")

	result := db.WithContext(ctx).Delete(&Play{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete play", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *playRepository) Restore(ctx context.Context, db *gorm.DB, id int) error {
	log := r.log.Function("Restore")

	result := db.WithContext(ctx).Unscoped().Model(&Play{}).
		Where("id = ?", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return log.Err("failed to restore play", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *playRepository) LoadCounts(ctx context.Context, db *gorm.DB, play *Play) error {
	log := r.log.Function("LoadCounts")

	if err := db.WithContext(ctx).Model(&Question{}).
		Where("play_id = ?", play.ID).
		Count(&play.QuestionsCount).Error; err != nil {
		return log.Err("failed to count questions", err, "playID", play.ID)
	}

	if err := db.WithContext(ctx).Model(&Performance{}).
		Where("play_id = ?", play.ID).
		Count(&play.PerformancesCount).Error; err != nil {
		return log.Err("failed to count performances", err, "playID", play.ID)
	}

	return nil
}

func (r *playRepository) PurgeTrashed(
	ctx context.Context,
	db *gorm.DB,
	before time.Time,
) (int64, error) {
	log := r.log.Function("PurgeTrashed")

	result := db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Delete(&Play{})
	if result.Error != nil {
		return 0, log.Err("failed to purge trashed plays", result.Error)
	}

	return result.RowsAffected, nil
}

// withTrashFilter widens the default soft delete scope per the caller's
// listing flags. only_trashed wins over with_trashed.
func withTrashFilter(query *gorm.DB, filter TrashFilter) *gorm.DB {
	switch filter {
	case TrashOnly:
		return query.Unscoped().Where("deleted_at IS NOT NULL")
	case TrashWith:
		return query.Unscoped()
	default:
		return query
	}
}
