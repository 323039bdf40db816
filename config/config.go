package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string `env:"GO_ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`

	// Upstream backends. The two event families live behind separate
	// deployments; the user directory is the account service.
	UniversityAPIURL string `env:"UNIVERSITY_API_URL" envDefault:"http://localhost:8081/api"`
	ClubAPIURL       string `env:"CLUB_API_URL" envDefault:"http://localhost:8082/api"`
	UserAPIURL       string `env:"USER_API_URL" envDefault:"http://localhost:8083/api"`

	// UpstreamRPS caps request throughput per upstream backend.
	UpstreamRPS float64 `env:"UPSTREAM_RPS" envDefault:"20"`

	JWTSecret      string   `env:"JWT_SECRET"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
}

// Load loads configuration from environment variables. It attempts to load a
// .env file first when not in production; in production the .env file might
// not exist and system environment variables are relied on.
func Load() (*Config, error) {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}
	if goEnv != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.Environment == "production" {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret"
	}

	return cfg, nil
}
