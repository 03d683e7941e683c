// Package config provides application configuration loaded from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Admin  AdminConfig
	App    AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// AdminConfig holds the seeded administrator account.
type AdminConfig struct {
	Email    string
	Name     string
	Password string
}

// AppConfig holds application-level settings.
type AppConfig struct {
	// DatabaseDSN selects the store: a postgres:// URL or a sqlite file path.
	DatabaseDSN   string
	SessionSecret string
	Migrations    bool
}

// Load reads configuration from environment variables with defaults suited
// to local development. Precedence: explicit env var > .env file (if loaded
// by the caller) > default.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@mbaocraft.co.ke"),
			Name:     getEnv("ADMIN_NAME", "Admin User"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		App: AppConfig{
			DatabaseDSN:   getEnv("DATABASE_DSN", "mbaocraft.db"),
			SessionSecret: getEnv("SESSION_SECRET", ""),
			Migrations:    getEnvBool("MIGRATIONS", true),
		},
	}
}

// IsPostgres reports whether the configured DSN points at PostgreSQL.
func (a AppConfig) IsPostgres() bool {
	return strings.HasPrefix(a.DatabaseDSN, "postgres://") ||
		strings.HasPrefix(a.DatabaseDSN, "host=")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
