package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the postboard CLI.
type Config struct {
	APIBaseURL            string
	DatabasePath          string
	RequestTimeout        time.Duration
	LogLevel              string
	RollbackFailedUploads bool
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.DatabasePath = "postboard.db"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
	c.RollbackFailedUploads = true
}

// LoadConfig builds a Config from defaults, the environment, an optional JSON
// file and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
