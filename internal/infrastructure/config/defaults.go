package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults: a local sqlite file keeps the game zero-setup
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "fungal.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "fungal"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "fungal"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Daemon defaults
	if cfg.Daemon.PIDFile == "" {
		cfg.Daemon.PIDFile = "/tmp/fungal-daemon.pid"
	}
	if cfg.Daemon.TickInterval == 0 {
		cfg.Daemon.TickInterval = 100 * time.Millisecond
	}
	if cfg.Daemon.MissionPollInterval == 0 {
		cfg.Daemon.MissionPollInterval = 1 * time.Second
	}
	if cfg.Daemon.AutosaveInterval == 0 {
		cfg.Daemon.AutosaveInterval = 5 * time.Second
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	// Metrics defaults
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = "localhost:9110"
	}
	if cfg.Metrics.CollectInterval == 0 {
		cfg.Metrics.CollectInterval = 5 * time.Second
	}

	// Bot defaults
	if cfg.Bot.ClicksPerSecond == 0 {
		cfg.Bot.ClicksPerSecond = 4
	}
}
