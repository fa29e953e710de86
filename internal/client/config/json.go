package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/postboard/internal/flagx"
	"github.com/dmitrijs2005/postboard/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields let a
// file set only some values.
type JsonConfig struct {
	APIBaseURL            *string         `json:"api_base_url"`
	DatabasePath          *string         `json:"database_path"`
	RequestTimeout        *timex.Duration `json:"request_timeout"`
	LogLevel              *string         `json:"log_level"`
	RollbackFailedUploads *bool           `json:"rollback_failed_uploads"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without the flag nothing happens. Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.RollbackFailedUploads != nil {
		cfg.RollbackFailedUploads = *jc.RollbackFailedUploads
	}
}
