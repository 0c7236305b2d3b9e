package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"5000"`
	SecretKey   string `env:"SECRET_KEY"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFile     string `env:"LOG_FILE"`

	// Database Configuration
	DatabaseURL string `env:"DATABASE_URL" envDefault:"streamline_labs.db"`

	// Mail Configuration
	MailServer   string `env:"MAIL_SERVER" envDefault:"smtp.gmail.com"`
	MailPort     int    `env:"MAIL_PORT" envDefault:"587"`
	MailUsername string `env:"MAIL_USERNAME"`
	MailPassword string `env:"MAIL_PASSWORD"`
	AdminEmail   string `env:"ADMIN_EMAIL" envDefault:"infostreamlinelabs@gmail.com"`

	// CORS Configuration
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"*"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env if present; real environment variables take precedence
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// MailEnabled reports whether SMTP credentials are configured.
// Without credentials the mail service logs notifications instead of sending.
func (c *Config) MailEnabled() bool {
	return c.MailUsername != "" && c.MailPassword != ""
}
