// Package config manages application configuration for the camp API.
//
// Configuration is read from environment variables with defaults suited to
// local development, then checked as a whole:
//
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    // every problem, joined
//	}
//
// # Environment Variables
//
//	SERVER_PORT              - HTTP port (default: 5555)
//	SERVER_ENV               - development, production or test
//	SERVER_READ_TIMEOUT      - e.g. 15s
//	SERVER_WRITE_TIMEOUT     - e.g. 15s
//	SERVER_SHUTDOWN_TIMEOUT  - graceful shutdown budget (default: 30s)
//	CORS_ALLOWED_ORIGINS     - comma separated, * allowed
//	DB_URI                   - sqlite:///app.db, postgres://..., ws://user:pass@host:port/ns/db
//	DB_AUTO_MIGRATE          - apply SQL migrations or the SurrealDB schema on start (default: true)
//	DB_MAX_OPEN_CONNS        - SQL pool size
//	LOG_LEVEL                - debug, info, warn, error
//	LOG_FORMAT               - json or text
//	METRICS_ENABLED          - expose Prometheus metrics (default: true)
//	METRICS_PATH             - exposition path (default: /metrics)
package config
