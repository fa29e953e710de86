// Package config loads runtime configuration for the postboard client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading an optional .env file
//     (see parseEnv).
//  3. Optional JSON file selected with -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones.
//
// Supported flags
//
//	-a string   base URL of the API, e.g. http://localhost:3000
//	-d string   path of the local database holding the session token
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//	-r bool     delete a newly created post when its file upload fails
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:3000",
//	  "database_path": "postboard.db",
//	  "request_timeout": "30s",
//	  "log_level": "info",
//	  "rollback_failed_uploads": true
//	}
//
// # Environment
//
//	POSTBOARD_API_URL, POSTBOARD_DB, POSTBOARD_REQUEST_TIMEOUT,
//	POSTBOARD_LOG_LEVEL, POSTBOARD_ROLLBACK_UPLOADS
package config
