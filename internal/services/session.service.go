package services

import (
	"context"
	"time"

	"telon/config"
	"telon/internal/database"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/google/uuid"
)

const sessionCachePrefix = "session:"

// Session is the payload stored in the session cache under an opaque token.
type Session struct {
	Token     string    `json:"token"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionService issues, resolves and revokes cookie sessions backed by the
// dedicated session cache database. Expiry is enforced by the cache TTL.
type SessionService struct {
	db  database.DB
	ttl time.Duration
	log logger.Logger
}

func NewSessionService(db database.DB, config config.Config) *SessionService {
	return &SessionService{
		db:  db,
		ttl: time.Duration(config.SessionTTLHours) * time.Hour,
		log: logger.New("sessionService"),
	}
}

// TTL returns the configured session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Create issues a fresh session token for the user. A new token is always
// generated, which doubles as fixation protection on login.
func (s *SessionService) Create(ctx context.Context, userID int) (*Session, error) {
	log := s.log.Function("Create")

	now := time.Now()
	session := &Session{
		Token:     uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := database.NewCacheBuilder(s.db.Cache.Session, sessionCachePrefix+session.Token).
		WithStruct(session).
		WithTTL(s.ttl).
		WithContext(ctx).
		Set(); err != nil {
		return nil, log.Err("failed to store session", err, "userID", userID)
	}

	return session, nil
}

// Get resolves a session token. Returns nil without error when the token is
// unknown or expired.
func (s *SessionService) Get(ctx context.Context, token string) (*Session, error) {
	log := s.log.Function("Get")

	if token == "" {
		return nil, nil
	}

	var session Session
	found, err := database.NewCacheBuilder(s.db.Cache.Session, sessionCachePrefix+token).
		WithContext(ctx).
		Get(&session)
	if err != nil {
		return nil, log.Err("failed to look up session", err)
	}
	if !found {
		return nil, nil
	}

	return &session, nil
}

// Destroy revokes a session token.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	log := s.log.Function("Destroy")

	if token == "" {
		return nil
	}

	if err := database.NewCacheBuilder(s.db.Cache.Session, sessionCachePrefix+token).
		WithContext(ctx).
		Delete(); err != nil {
		return log.Err("failed to destroy session", err)
	}

	return nil
}
