package repositories

import (
	"context"
	"time"

	. "telon/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"gorm.io/gorm"
)

type PerformanceRepository interface {
	ListByPlay(ctx context.Context, db *gorm.DB, playID int, filter TrashFilter) ([]*Performance, error)
	GetByID(ctx context.Context, db *gorm.DB, id int) (*Performance, error)
	GetByIDWithTrashed(ctx context.Context, db *gorm.DB, id int) (*Performance, error)
	Create(ctx context.Context, db *gorm.DB, performance *Performance) error
	Update(ctx context.Context, db *gorm.DB, id int, updates map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id int) error
	Restore(ctx context.Context, db *gorm.DB, id int) error
	UIDTaken(ctx context.Context, db *gorm.DB, uid string, excludeID *int) (bool, error)
	PurgeTrashed(ctx context.Context, db *gorm.DB, before time.Time) (int64, error)
}

type performanceRepository struct {
	log logger.Logger
}

func NewPerformanceRepository() PerformanceRepository {
	return &performanceRepository{
		log: logger.New("performanceRepository"),
	}
}

func (r *performanceRepository) ListByPlay(
	ctx context.Context,
	db *gorm.DB,
	playID int,
	filter TrashFilter,
) ([]*Performance, error) {
	log := r.log.Function("ListByPlay")

	var performances []*Performance
	query := withTrashFilter(db.WithContext(ctx).Model(&Performance{}), filter).
		Where("play_id = ?", playID).
		Order("scheduled_at ASC")
	if err := query.Find(&performances).Error; err != nil {
		return nil, log.Err("failed to list performances", err, "playID", playID)
	}

	for _, performance := range performances {
		performance.RefreshStatus()
	}

	return performances, nil
}

func (r *performanceRepository) GetByID(
	ctx context.Context,
	db *gorm.DB,
	id int,
) (*Performance, error) {
	var performance Performance
	if err := db.WithContext(ctx).First(&performance, "id = ?", id).Error; err != nil {
		return nil, err
	}

	performance.RefreshStatus()
	return &performance, nil
}

func (r *performanceRepository) GetByIDWithTrashed(
	ctx context.Context,
	db *gorm.DB,
	id int,
) (*Performance, error) {
	var performance Performance
	if err := db.WithContext(ctx).Unscoped().First(&performance, "id = ?", id).Error; err != nil {
		return nil, err
	}

	performance.RefreshStatus()
	return &performance, nil
}

func (r *performanceRepository) Create(
	ctx context.Context,
	db *gorm.DB,
	performance *Performance,
) error {
	log := r.log.Function("Create")

	if err := db.WithContext(ctx).Create(performance).Error; err != nil {
		return log.Err("failed to create performance", err, "playID", performance.PlayID)
	}

	performance.RefreshStatus()
	return nil
}

func (r *performanceRepository) Update(
	ctx context.Context,
	db *gorm.DB,
	id int,
	updates map[string]any,
) error {
	log := r.log.Function("Update")

	result := db.WithContext(ctx).Model(&Performance{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return log.Err("failed to update performance", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *performanceRepository) Delete(ctx context.Context, db *gorm.DB, id int) error {
	log := r.log.Function("Delete")

	result := db.WithContext(ctx).Delete(&Performance{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete performance", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *performanceRepository) Restore(ctx context.Context, db *gorm.DB, id int) error {
	log := r.log.Function("Restore")

	result := db.WithContext(ctx).Unscoped().Model(&Performance{}).
		Where("id = ?", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return log.Err("failed to restore performance", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// UIDTaken reports whether another non-deleted performance already holds the
// uid. Uniqueness is global, not scoped to a play.
func (r *performanceRepository) UIDTaken(
	ctx context.Context,
	db *gorm.DB,
	uid string,
	excludeID *int,
) (bool, error) {
	log := r.log.Function("UIDTaken")

	query := db.WithContext(ctx).Model(&Performance{}).Where("uid = ?", uid)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, log.Err("failed to check performance uid", err, "uid", uid)
	}

	return count > 0, nil
}

func (r *performanceRepository) PurgeTrashed(
	ctx context.Context,
	db *gorm.DB,
	before time.Time,
) (int64, error) {
	log := r.log.Function("PurgeTrashed")

	result := db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Delete(&Performance{})
	if result.Error != nil {
		return 0, log.Err("failed to purge trashed performances", result.Error)
	}

	return result.RowsAffected, nil
}
