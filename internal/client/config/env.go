package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with POSTBOARD_* variables. A .env file in the
// working directory is loaded first when it exists; variables already set in
// the process environment win over the file. A value that does not parse
// panics, like a bad config file or flag does.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("POSTBOARD_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("POSTBOARD_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("POSTBOARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("POSTBOARD_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("POSTBOARD_REQUEST_TIMEOUT: %w", err))
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("POSTBOARD_ROLLBACK_UPLOADS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("POSTBOARD_ROLLBACK_UPLOADS: %w", err))
		}
		cfg.RollbackFailedUploads = b
	}
}
