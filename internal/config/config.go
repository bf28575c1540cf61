package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
	AppEnv     string
	LogOutput  string
	ExportDir  string

	// AdminEmails restricts the admin panel. Empty means unrestricted.
	AdminEmails   []string
	LoginAttempts int
}

var ErrMissingDBHost = errors.New("DB_HOST is not set")

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		AppEnv:        os.Getenv("APP_ENV"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
		ExportDir:     getEnv("EXPORT_DIR", "."),
		AdminEmails:   splitList(os.Getenv("ADMIN_EMAILS")),
		LoginAttempts: 5,
	}

	if v := os.Getenv("LOGIN_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, errors.New("LOGIN_ATTEMPTS must be a positive integer")
		}
		cfg.LoginAttempts = n
	}

	if cfg.DBHost == "" {
		return nil, ErrMissingDBHost
	}

	return cfg, nil
}

func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Environment variables not loaded properly: %v", err)
	}
	return cfg
}

// IsAdmin reports whether email may open the admin panel.
func (c *Config) IsAdmin(email string) bool {
	if len(c.AdminEmails) == 0 {
		return true
	}
	for _, e := range c.AdminEmails {
		if e == email {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
