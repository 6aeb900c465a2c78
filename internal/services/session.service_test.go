package services

import (
	"context"
	"testing"
	"time"

	"telon/config"
	"telon/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionServiceTTL(t *testing.T) {
	service := NewSessionService(database.DB{}, config.Config{SessionTTLHours: 12})
	assert.Equal(t, 12*time.Hour, service.TTL())
}

func TestSessionGetEmptyToken(t *testing.T) {
	service := NewSessionService(database.DB{}, config.Config{SessionTTLHours: 24})

	session, err := service.Get(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionDestroyEmptyToken(t *testing.T) {
	service := NewSessionService(database.DB{}, config.Config{SessionTTLHours: 24})
	assert.NoError(t, service.Destroy(context.Background(), ""))
}
