package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"telon/internal/database"
	"telon/internal/repositories"
	"telon/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type purgeRecorder struct {
	order *[]string
	name  string
	err   error
}

func (p purgeRecorder) purge() (int64, error) {
	if p.err != nil {
		return 0, p.err
	}
	*p.order = append(*p.order, p.name)
	return 1, nil
}

type stubPlayRepo struct {
	repositories.PlayRepository
	recorder purgeRecorder
}

func (r stubPlayRepo) PurgeTrashed(context.Context, *gorm.DB, time.Time) (int64, error) {
	return r.recorder.purge()
}

type stubQuestionRepo struct {
	repositories.QuestionRepository
	recorder purgeRecorder
}

func (r stubQuestionRepo) PurgeTrashed(context.Context, *gorm.DB, time.Time) (int64, error) {
	return r.recorder.purge()
}

type stubOptionRepo struct {
	repositories.QuestionOptionRepository
	recorder purgeRecorder
}

func (r stubOptionRepo) PurgeTrashed(context.Context, *gorm.DB, time.Time) (int64, error) {
	return r.recorder.purge()
}

type stubPerformanceRepo struct {
	repositories.PerformanceRepository
	recorder purgeRecorder
}

func (r stubPerformanceRepo) PurgeTrashed(context.Context, *gorm.DB, time.Time) (int64, error) {
	return r.recorder.purge()
}

func TestTrashRetentionJobPurgesChildrenFirst(t *testing.T) {
	var order []string

	repos := repositories.Repository{
		Play:           stubPlayRepo{recorder: purgeRecorder{order: &order, name: "plays"}},
		Question:       stubQuestionRepo{recorder: purgeRecorder{order: &order, name: "questions"}},
		QuestionOption: stubOptionRepo{recorder: purgeRecorder{order: &order, name: "question_options"}},
		Performance:    stubPerformanceRepo{recorder: purgeRecorder{order: &order, name: "performances"}},
	}

	job := NewTrashRetentionJob(database.DB{}, repos, 90, services.Daily)
	require.NoError(t, job.Execute(context.Background()))

	assert.Equal(t, []string{"question_options", "questions", "performances", "plays"}, order)
}

func TestTrashRetentionJobStopsOnError(t *testing.T) {
	var order []string
	boom := errors.New("storage unavailable")

	repos := repositories.Repository{
		Play:           stubPlayRepo{recorder: purgeRecorder{order: &order, name: "plays"}},
		Question:       stubQuestionRepo{recorder: purgeRecorder{order: &order, name: "questions", err: boom}},
		QuestionOption: stubOptionRepo{recorder: purgeRecorder{order: &order, name: "question_options"}},
		Performance:    stubPerformanceRepo{recorder: purgeRecorder{order: &order, name: "performances"}},
	}

	job := NewTrashRetentionJob(database.DB{}, repos, 90, services.Daily)
	assert.Error(t, job.Execute(context.Background()))

	// options purge before the failing questions purge; nothing after runs
	assert.Equal(t, []string{"question_options"}, order)
}

func TestTrashRetentionJobMetadata(t *testing.T) {
	job := NewTrashRetentionJob(database.DB{}, repositories.Repository{}, 30, services.Daily)

	assert.Equal(t, "DailyTrashRetention", job.Name())
	assert.Equal(t, services.Daily, job.Schedule())
}
