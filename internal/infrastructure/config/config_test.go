package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporelab/fungal-evolution/internal/infrastructure/config"
)

func TestSetDefaults_FillsZeroValues(t *testing.T) {
	// Arrange
	cfg := &config.Config{}

	// Act
	config.SetDefaults(cfg)

	// Assert
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "fungal.db", cfg.Database.Path)
	assert.Equal(t, 100*time.Millisecond, cfg.Daemon.TickInterval)
	assert.Equal(t, 1*time.Second, cfg.Daemon.MissionPollInterval)
	assert.Equal(t, 5*time.Second, cfg.Daemon.AutosaveInterval)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "localhost:9110", cfg.Metrics.Address)
	assert.Equal(t, 4.0, cfg.Bot.ClicksPerSecond)
}

func TestSetDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	// Arrange
	cfg := &config.Config{}
	cfg.Daemon.AutosaveInterval = 30 * time.Second
	cfg.Database.Type = "postgres"

	// Act
	config.SetDefaults(cfg)

	// Assert
	assert.Equal(t, 30*time.Second, cfg.Daemon.AutosaveInterval)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Empty(t, cfg.Database.Path)
}

func TestValidateConfig_AcceptsDefaults(t *testing.T) {
	// Arrange
	cfg := &config.Config{}
	config.SetDefaults(cfg)

	// Act / Assert
	require.NoError(t, config.ValidateConfig(cfg))
}

func TestValidateConfig_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
	}{
		{
			name:   "unknown database type",
			mutate: func(cfg *config.Config) { cfg.Database.Type = "mongodb" },
		},
		{
			name:   "unknown log level",
			mutate: func(cfg *config.Config) { cfg.Logging.Level = "verbose" },
		},
		{
			name:   "port out of range",
			mutate: func(cfg *config.Config) { cfg.Database.Port = 99999 },
		},
		{
			name:   "negative bot rate",
			mutate: func(cfg *config.Config) { cfg.Bot.ClicksPerSecond = -1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			config.SetDefaults(cfg)
			tt.mutate(cfg)

			assert.Error(t, config.ValidateConfig(cfg))
		})
	}
}
