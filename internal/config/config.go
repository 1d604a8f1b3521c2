package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Catalog
		Database
		History
		Metrics
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Catalog struct {
		Path string // YAML catalog file; empty loads the built-in sample cabinet
	}
	Database struct {
		Path string
	}
	History struct {
		Enabled         bool
		RetentionDays   int    // Days to keep move journal entries (default: 30)
		CleanupSchedule string // Cron format
	}
	Metrics struct {
		Enabled bool
		Path    string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("catalog_path", "")
	v.SetDefault("database_path", DefaultDatabasePath)

	v.SetDefault("history_enabled", true)
	v.SetDefault("history_retention_days", 30)
	v.SetDefault("history_cleanup_schedule", DefaultHistoryCleanupSchedule)

	v.SetDefault("metrics_enabled", true)
	v.SetDefault("metrics_path", "/metrics")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Catalog: Catalog{
			Path: v.GetString("CATALOG_PATH"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		History: History{
			Enabled:         v.GetBool("HISTORY_ENABLED"),
			RetentionDays:   v.GetInt("HISTORY_RETENTION_DAYS"),
			CleanupSchedule: v.GetString("HISTORY_CLEANUP_SCHEDULE"),
		},
		Metrics: Metrics{
			Enabled: v.GetBool("METRICS_ENABLED"),
			Path:    v.GetString("METRICS_PATH"),
		},
	}
}
