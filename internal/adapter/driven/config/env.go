package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/diillson/runway-dashboard-go/internal/shared/types"
	"github.com/joho/godotenv"
)

// LoadEnvFile loads variables from a .env file into the process environment.
// Variables already set in the environment win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %s: %w", path, err)
	}
	return nil
}

// ApplyEmailEnv overrides the SMTP settings with SMTP_HOST, SMTP_PORT, SMTP_USER,
// SMTP_PASS, EMAIL_SENDER_ENABLED and INSECURE_SKIP_VERIFY when they are set.
func ApplyEmailEnv(cfg types.EmailConfig) (types.EmailConfig, error) {
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid SMTP_PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.User = v
		if cfg.From == "" {
			cfg.From = v
		}
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("EMAIL_SENDER_ENABLED"); v != "" {
		cfg.Enabled = v == "true"
	}
	if v := os.Getenv("INSECURE_SKIP_VERIFY"); v != "" {
		cfg.InsecureSkipVerify = v == "true"
	}
	return cfg, nil
}
