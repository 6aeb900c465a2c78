package app

import (
	"context"

	"telon/config"
	"telon/internal/controllers"
	"telon/internal/database"
	"telon/internal/handlers/middleware"
	"telon/internal/jobs"
	"telon/internal/repositories"
	"telon/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database    database.DB
	Config      config.Config
	Middleware  middleware.Middleware
	Services    services.Service
	Repos       repositories.Repository
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New()
	svc := services.New(db, config)
	ctrl := controllers.New(svc, repos, config, db)
	middleware := middleware.New(db, config, ctrl.Auth)

	if config.SchedulerEnabled {
		retentionJob := jobs.NewTrashRetentionJob(
			db,
			repos,
			config.TrashRetentionDays,
			services.Daily,
		)
		if err := svc.Scheduler.AddJob(retentionJob); err != nil {
			return &App{}, log.Err("failed to register trash retention job", err)
		}
		if err := svc.Scheduler.Start(context.Background()); err != nil {
			return &App{}, log.Err("failed to start scheduler", err)
		}
		log.Info("Registered trash retention job with scheduler")
	}

	app := &App{
		Database:    db,
		Config:      config,
		Middleware:  middleware,
		Services:    svc,
		Repos:       repos,
		Controllers: ctrl,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.Error("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.Error("config is nil")
	}

	nilChecks := []any{
		a.Services.Transaction,
		a.Services.Session,
		a.Services.Scheduler,
		a.Repos.User,
		a.Repos.Play,
		a.Repos.Question,
		a.Repos.QuestionOption,
		a.Repos.Performance,
		a.Controllers.Auth,
		a.Controllers.Play,
		a.Controllers.Question,
		a.Controllers.Option,
		a.Controllers.Performance,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.Error("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.Services.Scheduler != nil {
		if closeErr := a.Services.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
