package config

import "time"

// DaemonConfig holds the engine daemon's scheduling configuration
type DaemonConfig struct {
	// PID file location
	PIDFile string `mapstructure:"pid_file"`

	// Elapsed-time tick cadence for passive production
	TickInterval time.Duration `mapstructure:"tick_interval" validate:"required"`

	// Mission resolution poll cadence
	MissionPollInterval time.Duration `mapstructure:"mission_poll_interval" validate:"required"`

	// Snapshot write cadence
	AutosaveInterval time.Duration `mapstructure:"autosave_interval" validate:"required"`
}

// BotConfig holds the optional autoclicker bot configuration
type BotConfig struct {
	// Run the bot alongside the daemon drivers
	Enabled bool `mapstructure:"enabled"`

	// Manual click dispatch rate
	ClicksPerSecond float64 `mapstructure:"clicks_per_second" validate:"omitempty,gt=0"`

	// Let the bot buy the cheapest affordable upgrade as it goes
	BuyUpgrades bool `mapstructure:"buy_upgrades"`
}

// MetricsConfig holds the Prometheus exposition configuration
type MetricsConfig struct {
	// Serve /metrics when enabled
	Enabled bool `mapstructure:"enabled"`

	// Listen address for the metrics endpoint (host:port)
	Address string `mapstructure:"address"`

	// How often gauges are refreshed from the engine snapshot
	CollectInterval time.Duration `mapstructure:"collect_interval"`
}
