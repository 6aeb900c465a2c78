package middleware

import (
	"telon/config"
	authController "telon/internal/controllers/auth"
	"telon/internal/database"

	logger "github.com/Bparsons0904/goLogger"
)

type Middleware struct {
	DB             database.DB
	Config         config.Config
	authController authController.AuthControllerInterface
	log            logger.Logger
}

func New(
	db database.DB,
	config config.Config,
	auth authController.AuthControllerInterface,
) Middleware {
	return Middleware{
		DB:             db,
		Config:         config,
		authController: auth,
		log:            logger.New("middleware"),
	}
}
