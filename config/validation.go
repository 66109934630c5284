package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that every value the server cannot run without is
// present. Sensitive values are validated by presence only; their source
// (env var or Docker secret) already depends on the environment.
func ValidateConfig(cfg *Config) error {
	required := map[string]string{
		"server port":   cfg.ServerPort,
		"database host": cfg.DBHost,
		"database port": cfg.DBPort,
		"database user": cfg.DBUser,
		"database name": cfg.DBName,
		"redis url":     cfg.RedisURL,
		"jwt secret":    cfg.JWTSecret,
	}

	var missing []string
	for name, value := range required {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if cfg.DBPassword == "" {
		return fmt.Errorf("database password is required")
	}

	return nil
}
