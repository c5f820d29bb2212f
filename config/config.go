// Package config loads the suite configuration from the environment and an optional .env file
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/restopos/pos-e2e/internal/constants"
)

// Defaults applied when the corresponding environment variable is unset
const (
	DefaultTimeout       = 30 * time.Second
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 2 * time.Second
	DefaultRetryMaxDelay = 10 * time.Second
	DefaultTestPassword  = "TestPassword123!"
	DefaultPort          = "3000"
	DefaultJWTSecret     = "pos-e2e-standin-secret"
)

// Config holds everything the harness, the CLI and the stand-in server read from the environment
type Config struct {
	// APIURL is the base URL of the POS API under test. Empty means the in-process stand-in.
	APIURL        string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
	RetryMaxDelay time.Duration
	TestPassword  string
	LogLevel      string
	Port          string
	JWTSecret     string
	DatabaseDSN   string
	RateLimit     float64
	RateBurst     int
}

// Load reads the .env files given (or ".env" when none are given) and then the environment.
// Missing .env files are not an error.
func Load(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set
		_ = godotenv.Load(f)
	}

	return &Config{
		APIURL:        GetEnv(constants.EnvAPIURL, ""),
		Timeout:       GetEnvDuration(constants.EnvAPITimeout, DefaultTimeout),
		RetryAttempts: GetEnvInt(constants.EnvRetryAttempts, DefaultRetryAttempts),
		RetryDelay:    GetEnvDuration(constants.EnvRetryDelay, DefaultRetryDelay),
		RetryMaxDelay: GetEnvDuration(constants.EnvRetryMaxDelay, DefaultRetryMaxDelay),
		TestPassword:  GetEnv(constants.EnvTestPassword, DefaultTestPassword),
		LogLevel:      GetEnv(constants.EnvLogLevel, "info"),
		Port:          GetEnv(constants.EnvPort, DefaultPort),
		JWTSecret:     GetEnv(constants.EnvJWTSecret, DefaultJWTSecret),
		DatabaseDSN:   GetEnv(constants.EnvDatabaseDSN, ""),
		RateLimit:     GetEnvFloat(constants.EnvRateLimit, 0),
		RateBurst:     GetEnvInt(constants.EnvRateBurst, 1),
	}
}

// UseStandIn reports whether no remote API was configured
func (c *Config) UseStandIn() bool {
	return c.APIURL == ""
}

// GetEnv retrieves the value of an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvInt retrieves an integer environment variable, returning fallback when unset or malformed
func GetEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// GetEnvFloat retrieves a float environment variable, returning fallback when unset or malformed
func GetEnvFloat(key string, fallback float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}

// GetEnvDuration retrieves a duration environment variable ("500ms", "2s").
// A bare integer is read as seconds.
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if n, err := strconv.Atoi(value); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
