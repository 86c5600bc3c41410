// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the task manager server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - DatabaseDSN: SQLite file/URI (default) or PostgreSQL DSN (pgx).
//   - SecretKey: HMAC secret for signing the session cookie (HS256). Do not use test defaults in prod.
//   - SessionValidityDuration: lifetime of a plain login session.
//   - RememberValidityDuration: lifetime when the "remember" box is ticked.
//   - TaskSortOrder: "asc" or "desc" priority ordering of the task list.
//   - Debug: verbose logging toggle.
type Config struct {
	EndpointAddrHTTP         string
	DatabaseDSN              string
	SecretKey                string
	SessionValidityDuration  time.Duration
	RememberValidityDuration time.Duration
	TaskSortOrder            string
	Debug                    bool
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDSN = "file:tasks.db?_pragma=foreign_keys(1)"
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 24 * time.Hour
	c.RememberValidityDuration = 30 * 24 * time.Hour
	c.TaskSortOrder = "desc"
	c.Debug = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
