package authController

import (
	"context"
	"errors"
	"strings"
	"time"

	"telon/internal/database"
	. "telon/internal/models"
	"telon/internal/repositories"
	"telon/internal/services"

	logger "github.com/Bparsons0904/goLogger"

	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned when the email/password pair does not
// match a known user. Deliberately indistinguishable between the two cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthController struct {
	userRepo       repositories.UserRepository
	sessionService *services.SessionService
	db             database.DB
	log            logger.Logger
}

type AuthControllerInterface interface {
	Login(ctx context.Context, request *LoginRequest) (*User, *services.Session, error)
	Logout(ctx context.Context, token string) error
	UserFromSession(ctx context.Context, token string) (*User, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) AuthControllerInterface {
	return &AuthController{
		userRepo:       repos.User,
		sessionService: services.Session,
		db:             db,
		log:            logger.New("authController"),
	}
}

func (c *AuthController) Login(
	ctx context.Context,
	request *LoginRequest,
) (*User, *services.Session, error) {
	log := c.log.Function("Login")

	verrs := NewValidationErrors()
	email := strings.TrimSpace(request.Email)
	if email == "" {
		verrs.Add("email", "The email field is required.")
	} else if !strings.Contains(email, "@") {
		verrs.Add("email", "The email field must be a valid email address.")
	}
	if request.Password == "" {
		verrs.Add("password", "The password field is required.")
	}
	if verrs.Any() {
		return nil, nil, verrs
	}

	user, err := c.userRepo.GetByEmail(ctx, c.db.SQL, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Info("login attempt for unknown email")
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, log.Err("failed to look up user", err)
	}

	if !user.CheckPassword(request.Password) {
		log.Info("login attempt with wrong password", "userID", user.ID)
		return nil, nil, ErrInvalidCredentials
	}

	session, err := c.sessionService.Create(ctx, user.ID)
	if err != nil {
		return nil, nil, log.Err("failed to create session", err, "userID", user.ID)
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := c.userRepo.Update(ctx, c.db.SQL, user); err != nil {
		log.Warn("failed to record last login", "userID", user.ID, "error", err)
	}

	log.Info("user logged in", "userID", user.ID)
	return user, session, nil
}

func (c *AuthController) Logout(ctx context.Context, token string) error {
	log := c.log.Function("Logout")

	if err := c.sessionService.Destroy(ctx, token); err != nil {
		return log.Err("failed to destroy session", err)
	}

	log.Info("user logged out")
	return nil
}

// UserFromSession resolves a session token to its user. Returns nil user
// when the token is unknown or expired.
func (c *AuthController) UserFromSession(ctx context.Context, token string) (*User, error) {
	session, err := c.sessionService.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	user, err := c.userRepo.GetByID(ctx, c.db.SQL, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}
