package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopJob struct {
	name     string
	schedule Schedule
}

func (j noopJob) Name() string { return j.name }

func (j noopJob) Execute(context.Context) error { return nil }

func (j noopJob) Schedule() Schedule { return j.schedule }

func TestSchedulerAddJob(t *testing.T) {
	scheduler := NewSchedulerService()
	assert.Equal(t, 0, scheduler.GetJobCount())

	require.NoError(t, scheduler.AddJob(noopJob{name: "daily", schedule: Daily}))
	require.NoError(t, scheduler.AddJob(noopJob{name: "hourly", schedule: Hourly}))
	assert.Equal(t, 2, scheduler.GetJobCount())
}

func TestSchedulerStartWithoutJobs(t *testing.T) {
	scheduler := NewSchedulerService()

	require.NoError(t, scheduler.Start(context.Background()))
	assert.False(t, scheduler.IsRunning())
}

func TestSchedulerStartAndStop(t *testing.T) {
	scheduler := NewSchedulerService()
	require.NoError(t, scheduler.AddJob(noopJob{name: "daily", schedule: Daily}))

	require.NoError(t, scheduler.Start(context.Background()))
	assert.True(t, scheduler.IsRunning())

	// starting twice is a no-op
	require.NoError(t, scheduler.Start(context.Background()))

	require.NoError(t, scheduler.Stop(context.Background()))
	assert.False(t, scheduler.IsRunning())

	// stopping twice is a no-op
	require.NoError(t, scheduler.Stop(context.Background()))
}
