package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Open Food Facts configuration
	OpenFoodFactsURL string

	// CORS configuration
	CORSAllowedOrigins string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case Development, Test, CI:
		loadEnvConfig(cfg)
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadEnvConfig loads configuration from environment variables with
// development defaults.
func loadEnvConfig(cfg *Config) {
	cfg.ServerPort = getEnv("SERVER_PORT", "8080")
	cfg.ServerHost = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBUser = getEnv("DB_USER", "postgres")
	cfg.DBPassword = getEnv("DB_PASSWORD", "postgres")
	cfg.DBName = getEnv("DB_NAME", "bytetrack")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "disable")
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB = 0
	cfg.RedisURL = getEnv("REDIS_URL", "redis://localhost:6379")
	cfg.JWTSecret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.OpenFoodFactsURL = getEnv("OPENFOODFACTS_URL", "https://world.openfoodfacts.org")
	cfg.CORSAllowedOrigins = getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

// loadProdConfig loads configuration for production using Docker secrets,
// falling back to environment variables for non-sensitive values.
func loadProdConfig(cfg *Config) error {
	cfg.ServerPort = firstOf(readSecret("server_port"), getEnv("SERVER_PORT", "8080"))
	cfg.ServerHost = firstOf(readSecret("server_host"), getEnv("SERVER_HOST", "0.0.0.0"))
	cfg.DBHost = firstOf(readSecret("db_host"), os.Getenv("DB_HOST"))
	cfg.DBPort = firstOf(readSecret("db_port"), getEnv("DB_PORT", "5432"))
	cfg.DBUser = firstOf(readSecret("db_user"), os.Getenv("DB_USER"))
	cfg.DBPassword = firstOf(readSecret("db_password"), os.Getenv("DB_PASSWORD"))
	cfg.DBName = firstOf(readSecret("db_name"), os.Getenv("DB_NAME"))
	cfg.DBSSLMode = firstOf(readSecret("db_ssl_mode"), getEnv("DB_SSL_MODE", "require"))
	cfg.RedisHost = firstOf(readSecret("redis_host"), os.Getenv("REDIS_HOST"))
	cfg.RedisPort = firstOf(readSecret("redis_port"), getEnv("REDIS_PORT", "6379"))
	cfg.RedisPassword = firstOf(readSecret("redis_password"), os.Getenv("REDIS_PASSWORD"))
	cfg.RedisDB = 0
	cfg.RedisURL = firstOf(readSecret("redis_url"), os.Getenv("REDIS_URL"))
	cfg.JWTSecret = firstOf(readSecret("jwt_secret"), os.Getenv("JWT_SECRET"))
	cfg.OpenFoodFactsURL = getEnv("OPENFOODFACTS_URL", "https://world.openfoodfacts.org")
	cfg.CORSAllowedOrigins = os.Getenv("CORS_ALLOWED_ORIGINS")

	return nil
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
