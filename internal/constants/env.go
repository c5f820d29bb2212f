// Package constants provides centralized definitions of constants used throughout the application
package constants

// Environment variable names
const (
	// EnvAPIURL is the base URL of the POS API under test, e.g. https://staging.example.com/api/v1
	EnvAPIURL = "POS_API_URL"

	// EnvAPITimeout is the per-request timeout of the API client
	EnvAPITimeout = "POS_API_TIMEOUT"

	// EnvRetryAttempts is the number of attempts made when the API answers 429
	EnvRetryAttempts = "POS_RETRY_ATTEMPTS"
	// EnvRetryDelay is the initial delay between rate-limited attempts
	EnvRetryDelay = "POS_RETRY_DELAY"
	// EnvRetryMaxDelay caps the delay between rate-limited attempts
	EnvRetryMaxDelay = "POS_RETRY_MAX_DELAY"

	// EnvTestPassword is the password used for every registered test user
	EnvTestPassword = "POS_TEST_PASSWORD"

	// EnvLogLevel is the logrus level name
	EnvLogLevel = "LOG_LEVEL"

	// EnvPort is the listen port of the stand-in API server
	EnvPort = "PORT"
	// EnvJWTSecret signs the stand-in API tokens
	EnvJWTSecret = "JWT_SECRET"
	// EnvDatabaseDSN is the SQLite file of the stand-in API; unset keeps it in memory
	EnvDatabaseDSN = "DATABASE_DSN"
	// EnvRateLimit is the requests per second the stand-in allows on register and
	// establishment creation; unset or 0 disables limiting
	EnvRateLimit = "RATE_LIMIT"
	// EnvRateBurst is the burst of the stand-in rate limiter
	EnvRateBurst = "RATE_BURST"
)
