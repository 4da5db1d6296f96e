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

// ValidateConfig checks that the loaded configuration is usable in the
// current environment. Production refuses to start on placeholder or
// missing credentials; other environments accept the defaults.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, "server port is required")
	}
	if cfg.DBHost == "" {
		errors = append(errors, "database host is required")
	}
	if cfg.DBName == "" {
		errors = append(errors, "database name is required")
	}
	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT secret is required")
	}

	if IsProduction() {
		if cfg.JWTSecret == "your-secret-key" {
			errors = append(errors, "JWT secret must not use the development default in production")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "database password is required in production")
		}
		if cfg.DBSSLMode == "disable" {
			errors = append(errors, "database SSL must be enabled in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
