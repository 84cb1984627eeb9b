package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// MongoDB configuration
	MongoURI      string
	MongoDatabase string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// CORS allowed origins
	AllowedOrigins []string

	// UniqueHandles enables write-time enforcement of profile handle
	// uniqueness. Off by default; handle lookups assume it either way.
	UniqueHandles bool

	// Avatar storage
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a new Config instance with values from environment
// variables or Docker secrets
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:    getValue("SERVER_PORT", "server_port", "8080"),
		ServerHost:    getValue("SERVER_HOST", "server_host", "0.0.0.0"),
		MongoURI:      getValue("MONGO_URI", "mongo_uri", "mongodb://localhost:27017"),
		MongoDatabase: getValue("MONGO_DATABASE", "mongo_database", "devconnect"),
		RedisHost:     getValue("REDIS_HOST", "redis_host", "localhost"),
		RedisPort:     getValue("REDIS_PORT", "redis_port", "6379"),
		RedisPassword: getValue("REDIS_PASSWORD", "redis_password", ""),
		RedisURL:      getValue("REDIS_URL", "redis_url", ""),
		JWTSecret:     getValue("JWT_SECRET", "jwt_secret", ""),
		S3Bucket:      getValue("S3_BUCKET_NAME", "s3_bucket_name", ""),
		AWSRegion:     getValue("AWS_REGION", "aws_region", ""),
	}

	redisDB, err := strconv.Atoi(getValue("REDIS_DB", "redis_db", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}
	cfg.RedisDB = redisDB

	if origins := getValue("CORS_ALLOWED_ORIGINS", "cors_allowed_origins", "http://localhost:5173"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	cfg.UniqueHandles = getValue("UNIQUE_HANDLES", "unique_handles", "false") == "true"

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getValue resolves a setting from the environment first, then from a Docker
// secret, falling back to the given default.
func getValue(envKey, secretName, fallback string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if v := readSecret(secretName); v != "" {
		return v
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
