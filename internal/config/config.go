package config

import (
	"fmt"
	"os"
	"time"
)

// Store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Store StoreConfig
	HTTP  HTTPConfig
	Auth  AuthConfig
}

// StoreConfig contains persistence settings.
type StoreConfig struct {
	Backend string // "file" or "sqlite"
	Dir     string // data directory for the file backend
	Path    string // database file path for the sqlite backend
}

// HTTPConfig contains HTTP server settings.
type HTTPConfig struct {
	Address string // listen address (e.g., ":8080")
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	JWTSecret string        // JWT signing secret
	TokenTTL  time.Duration // session token lifetime
}

// Load loads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg, err := loadCommon()
	if err != nil {
		return nil, err
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set; required for production")
	}
	return cfg, nil
}

// LoadWithDefaults is like Load but uses a safe default for JWT_SECRET in development.
// WARNING: Only use in development! Use Load() in production.
func LoadWithDefaults() (*Config, error) {
	cfg, err := loadCommon()
	if err != nil {
		return nil, err
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "dev-secret-change-me"
	}
	return cfg, nil
}

func loadCommon() (*Config, error) {
	ttl, err := getEnvDuration("TOKEN_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", BackendFile),
			Dir:     getEnv("DATA_DIR", "data"),
			Path:    getEnv("DB_PATH", "tracker.db"),
		},
		HTTP: HTTPConfig{
			Address: getEnv("HTTP_ADDRESS", ":8080"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  ttl,
		},
	}
	if cfg.Store.Backend != BackendFile && cfg.Store.Backend != BackendSQLite {
		return nil, fmt.Errorf("unknown STORE_BACKEND %q (want %q or %q)", cfg.Store.Backend, BackendFile, BackendSQLite)
	}
	return cfg, nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// getEnvDuration retrieves an environment variable as a duration with a default fallback.
func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
		}
		return d, nil
	}
	return defaultVal, nil
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	return fmt.Sprintf("Config{Store: %s (%s/%s), HTTP: %s, Auth: *** (masked) ***}",
		c.Store.Backend, c.Store.Dir, c.Store.Path, c.HTTP.Address)
}
