// Package config loads and validates configuration for the hangs API.
//
// Values are layered with koanf, lowest precedence first: the defaults from
// New, an optional YAML file named by HANGS_CONFIG, then HANGS_* environment
// variables. An environment key is split on its first underscore after the
// prefix into group and field:
//
//	HANGS_SERVER_PORT=9090          server.port
//	HANGS_DATABASE_HOST=db          database.host
//	HANGS_RATELIMIT_WINDOW=30s      ratelimit.window
//	HANGS_SERVER_ALLOWED_ORIGINS=https://a.example,https://b.example
//
// Load does not validate. Callers run Validate, which reports every problem
// at once via errors.Join.
package config
