package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable in the current
// environment. Development and Test fill gaps with defaults; Production and
// CI must provide every sensitive value explicitly.
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()

	var errors []string

	if cfg.MongoURI == "" {
		errors = append(errors, "MONGO_URI is required")
	}
	if cfg.MongoDatabase == "" {
		errors = append(errors, "MONGO_DATABASE is required")
	}
	if cfg.ServerPort == "" {
		errors = append(errors, "SERVER_PORT is required")
	}

	if env == Production || env == CI {
		if cfg.JWTSecret == "" {
			errors = append(errors, "JWT_SECRET (or the jwt_secret secret) is required")
		}
		if cfg.RedisURL == "" && cfg.RedisHost == "" {
			errors = append(errors, "REDIS_URL or REDIS_HOST is required")
		}
	} else if cfg.JWTSecret == "" {
		// Keep local development running without a secrets setup.
		cfg.JWTSecret = "development-jwt-secret"
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
