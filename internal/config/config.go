package config

import (
	"os"
	"time"
)

// Config holds all runtime configuration, loaded once at startup and
// passed explicitly to the components that need it.
type Config struct {
	DatabaseURL string
	HTTPPort    string
	JWTSecret   string
	JWTTTL      time.Duration
	LogLevel    string
	Env         string
}

// Load reads configuration from environment variables, applying
// defaults where the variable is unset.
func Load() Config {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    os.Getenv("HTTP_PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      24 * time.Hour,
		LogLevel:    os.Getenv("LOG_LEVEL"),
		Env:         os.Getenv("ENV"),
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}
	if s := os.Getenv("JWT_EXPIRES_IN"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			cfg.JWTTTL = d
		}
	}
	return cfg
}
