// Package config handles server configuration: defaults first, then
// environment variables, then command-line flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the accountd server.
type Config struct {
	// Address is the bind address for the HTTP endpoint.
	Address string
	// DatabasePath is the SQLite database file ("" means in-memory).
	DatabasePath string
	// SecretKey is the HMAC secret for signing session tokens. The default
	// is for development only.
	SecretKey string
	// SessionTTL is how long an issued session stays valid.
	SessionTTL time.Duration
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Address = ":8080"
	c.DatabasePath = "accountd.db"
	c.SecretKey = "dev-secret"
	c.SessionTTL = 24 * time.Hour
	c.LogLevel = "info"
}

// Load builds a Config by applying defaults, then the environment, then
// command-line flags.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := cfg.parseEnv(); err != nil {
		return nil, err
	}
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parseEnv() error {
	if v := os.Getenv("ACCOUNTD_ADDRESS"); v != "" {
		c.Address = v
	}
	if v := os.Getenv("ACCOUNTD_DATABASE"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("ACCOUNTD_SECRET"); v != "" {
		c.SecretKey = v
	}
	if v := os.Getenv("ACCOUNTD_SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid ACCOUNTD_SESSION_TTL: %w", err)
		}
		c.SessionTTL = ttl
	}
	if v := os.Getenv("ACCOUNTD_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("accountd", flag.ContinueOnError)

	fs.StringVar(&c.Address, "a", c.Address, "address and port to run server")
	fs.StringVar(&c.DatabasePath, "d", c.DatabasePath, "SQLite database path")
	fs.StringVar(&c.SecretKey, "s", c.SecretKey, "token signing secret")
	fs.DurationVar(&c.SessionTTL, "t", c.SessionTTL, "session time to live")
	fs.StringVar(&c.LogLevel, "l", c.LogLevel, "log level (debug|info|warn|error)")

	return fs.Parse(args)
}
