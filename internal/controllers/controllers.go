package controllers

import (
	"telon/config"
	"telon/internal/database"
	"telon/internal/repositories"
	"telon/internal/services"

	authController "telon/internal/controllers/auth"
	optionController "telon/internal/controllers/options"
	performanceController "telon/internal/controllers/performances"
	playController "telon/internal/controllers/plays"
	questionController "telon/internal/controllers/questions"
)

type Controllers struct {
	Auth        authController.AuthControllerInterface
	Play        playController.PlayControllerInterface
	Question    questionController.QuestionControllerInterface
	Option      optionController.OptionControllerInterface
	Performance performanceController.PerformanceControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	config config.Config,
	db database.DB,
) Controllers {
	return Controllers{
		Auth:        authController.New(repos, services, db),
		Play:        playController.New(repos, services, config, db),
		Question:    questionController.New(repos, services, config, db),
		Option:      optionController.New(repos, services, config, db),
		Performance: performanceController.New(repos, services, config, db),
	}
}
