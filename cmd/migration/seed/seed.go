package seed

import (
	"context"

	"telon/config"
	"telon/internal/models"
	"telon/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"

	"gorm.io/gorm"
)

const (
	defaultAdminEmail    = "admin@teatro.local"
	defaultAdminPassword = "password"
)

// Seed provisions the admin account the API authenticates against. Safe to
// run repeatedly; an existing row matched by email is refreshed in place.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("Seed")
	log.Info("Seeding admin user")

	email := config.SeedAdminEmail
	if email == "" {
		email = defaultAdminEmail
	}
	password := config.SeedAdminPassword
	if password == "" {
		password = defaultAdminPassword
	}

	admin := models.User{
		Name:    "Administrator",
		Email:   email,
		IsAdmin: true,
	}
	if err := admin.SetPassword(password); err != nil {
		return log.Err("failed to hash admin password", err)
	}

	userRepo := repositories.NewUserRepository()
	if err := userRepo.Upsert(context.Background(), db, &admin); err != nil {
		return log.Err("failed to upsert admin user", err)
	}

	log.Info("Admin user ready", "email", email)
	return nil
}
