package config

import (
	"testing"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfigRejectsMissingPort(t *testing.T) {
	log := logger.New("config")

	config := Config{}
	assert.Error(t, validateConfig(&config, log))

	config = Config{ServerPort: -1}
	assert.Error(t, validateConfig(&config, log))
}

func TestValidateConfigAppliesDefaults(t *testing.T) {
	log := logger.New("config")

	config := Config{ServerPort: 8288}
	require.NoError(t, validateConfig(&config, log))

	assert.Equal(t, 24, ConfigInstance.SessionTTLHours)
	assert.Equal(t, 90, ConfigInstance.TrashRetentionDays)
}

func TestValidateConfigKeepsExplicitValues(t *testing.T) {
	log := logger.New("config")

	config := Config{
		ServerPort:         8288,
		SessionTTLHours:    6,
		TrashRetentionDays: 30,
	}
	require.NoError(t, validateConfig(&config, log))

	assert.Equal(t, 6, ConfigInstance.SessionTTLHours)
	assert.Equal(t, 30, ConfigInstance.TrashRetentionDays)
}
