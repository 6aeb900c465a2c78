package jobs

import (
	"context"
	"time"

	"telon/internal/database"
	"telon/internal/repositories"
	"telon/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// TrashRetentionJob hard-purges rows that have been soft deleted for longer
// than the retention window. The API surface itself never hard deletes;
// this keeps the trash from growing without bound. Children are purged
// before their parents so the storage-level cascade never fires on rows a
// caller could still restore.
type TrashRetentionJob struct {
	db            database.DB
	repos         repositories.Repository
	retentionDays int
	schedule      services.Schedule
	log           logger.Logger
}

func NewTrashRetentionJob(
	db database.DB,
	repos repositories.Repository,
	retentionDays int,
	schedule services.Schedule,
) *TrashRetentionJob {
	log := logger.New("trashRetentionJob")
	log.Info("Creating trash retention job", "retentionDays", retentionDays, "schedule", schedule)

	return &TrashRetentionJob{
		db:            db,
		repos:         repos,
		retentionDays: retentionDays,
		schedule:      schedule,
		log:           log,
	}
}

func (j *TrashRetentionJob) Name() string {
	return "DailyTrashRetention"
}

func (j *TrashRetentionJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	cutoff := time.Now().AddDate(0, 0, -j.retentionDays)
	log.Info("Purging soft deleted rows", "cutoff", cutoff)

	purges := []struct {
		name  string
		purge func() (int64, error)
	}{
		{"question_options", func() (int64, error) {
			return j.repos.QuestionOption.PurgeTrashed(ctx, j.db.SQL, cutoff)
		}},
		{"questions", func() (int64, error) {
			return j.repos.Question.PurgeTrashed(ctx, j.db.SQL, cutoff)
		}},
		{"performances", func() (int64, error) {
			return j.repos.Performance.PurgeTrashed(ctx, j.db.SQL, cutoff)
		}},
		{"plays", func() (int64, error) {
			return j.repos.Play.PurgeTrashed(ctx, j.db.SQL, cutoff)
		}},
	}

	for _, p := range purges {
		purged, err := p.purge()
		if err != nil {
			return log.Err("purge failed", err, "table", p.name)
		}
		if purged > 0 {
			log.Info("Purged trashed rows", "table", p.name, "count", purged)
		}
	}

	return nil
}

func (j *TrashRetentionJob) Schedule() services.Schedule {
	return j.schedule
}
