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

// requiredValue pairs a config value with the name operators know it by.
type requiredValue struct {
	name  string
	value func(*Config) string
}

var (
	connectionValues = []requiredValue{
		{"server_port", func(c *Config) string { return c.ServerPort }},
		{"db_host", func(c *Config) string { return c.DBHost }},
		{"db_port", func(c *Config) string { return c.DBPort }},
		{"db_name", func(c *Config) string { return c.DBName }},
		{"db_user", func(c *Config) string { return c.DBUser }},
	}

	secretValues = []requiredValue{
		{"db_password", func(c *Config) string { return c.DBPassword }},
		{"jwt_secret", func(c *Config) string { return c.JWTSecret }},
		{"spoonacular_api_key", func(c *Config) string { return c.ProviderAPIKey }},
	}
)

// ValidateConfig checks if the configuration meets the requirements for the current environment.
// All problems are reported together.
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()

	var errors []string

	for _, req := range connectionValues {
		if req.value(cfg) == "" {
			errors = append(errors, fmt.Sprintf("%s is not set", req.name))
		}
	}

	for _, req := range secretValues {
		if req.value(cfg) != "" {
			continue
		}
		if env == CI {
			errors = append(errors, fmt.Sprintf("TEST_%s environment variable is required in CI environment", strings.ToUpper(req.name)))
		} else {
			errors = append(errors, fmt.Sprintf("%s secret is required", req.name))
		}
	}

	if cfg.RedisURL == "" && cfg.RedisHost == "" {
		errors = append(errors, "either redis_url or redis_host must be set")
	}

	if cfg.ResultLimit < 1 {
		errors = append(errors, "result limit must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
