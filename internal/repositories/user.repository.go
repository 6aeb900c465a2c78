package repositories

import (
	"context"
	"errors"
	"strings"

	. "telon/internal/models"

	logger "github.com/Bparsons0904/goLogger"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(ctx context.Context, db *gorm.DB, id int) (*User, error)
	GetByEmail(ctx context.Context, db *gorm.DB, email string) (*User, error)
	Update(ctx context.Context, db *gorm.DB, user *User) error
	Upsert(ctx context.Context, db *gorm.DB, user *User) error
}

type userRepository struct {
	log logger.Logger
}

func NewUserRepository() UserRepository {
	return &userRepository{
		log: logger.New("userRepository"),
	}
}

func (r *userRepository) GetByID(ctx context.Context, db *gorm.DB, id int) (*User, error) {
	var user User
	if err := db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(
	ctx context.Context,
	db *gorm.DB,
	email string,
) (*User, error) {
	var user User
	email = strings.ToLower(strings.TrimSpace(email))
	if err := db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, db *gorm.DB, user *User) error {
	log := r.log.Function("Update")

	if err := db.WithContext(ctx).Save(user).Error; err != nil {
		return log.Err("failed to update user", err, "userID", user.ID)
	}

	return nil
}

// Upsert creates the user or refreshes an existing row matched by email.
// Used by the seeder so it can run repeatedly.
func (r *userRepository) Upsert(ctx context.Context, db *gorm.DB, user *User) error {
	log := r.log.Function("Upsert")

	existing, err := r.GetByEmail(ctx, db, user.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if createErr := db.WithContext(ctx).Create(user).Error; createErr != nil {
				return log.Err("failed to create user", createErr, "email", user.Email)
			}
			return nil
		}
		return log.Err("failed to look up user", err, "email", user.Email)
	}

	existing.Name = user.Name
	existing.PasswordHash = user.PasswordHash
	existing.IsAdmin = user.IsAdmin
	if err := r.Update(ctx, db, existing); err != nil {
		return err
	}

	*user = *existing
	return nil
}
