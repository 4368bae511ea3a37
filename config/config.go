// Package config loads and validates application configuration from
// environment variables. Errors are collected and reported together so a
// misconfigured deployment fails fast with a complete list of problems.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DBConfig holds settings for the PostgreSQL connection pool.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	PoolSize int
}

// AuthConfig holds token signing settings. Register and login deliberately
// issue tokens with different lifetimes; both are configurable.
type AuthConfig struct {
	JWTSecret        string
	RegisterTokenTTL time.Duration
	LoginTokenTTL    time.Duration
}

// RedisConfig holds settings for the optional notification channel. An empty
// Addr disables event publishing entirely.
type RedisConfig struct {
	Addr     string
	Password string
	Channel  string
}

// MediaConfig holds settings for uploaded media storage.
type MediaConfig struct {
	Dir     string // filesystem directory for stored files
	BaseURL string // URL prefix the files are served under
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port  string
	Debug bool
}

// AppConfig is the top-level configuration for the application.
type AppConfig struct {
	DB     *DBConfig
	Auth   *AuthConfig
	Redis  *RedisConfig
	Media  *MediaConfig
	Server *ServerConfig
}

func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got %q: %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got %q: %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// LoadConfig reads the full application configuration from the environment.
// All problems found are returned as a single aggregated error.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	db := &DBConfig{
		Host:     getOptionalEnv("DB_HOST", "localhost"),
		Port:     getOptionalEnvInt("DB_PORT", 5432, &errs),
		User:     getRequiredEnv("DB_USER", &errs),
		Password: getRequiredEnv("DB_PASSWORD", &errs),
		DBName:   getRequiredEnv("DB_NAME", &errs),
		PoolSize: getOptionalEnvInt("DB_POOL_SIZE", 10, &errs),
	}
	if db.PoolSize < 1 || db.PoolSize > 100 {
		errs = append(errs, fmt.Sprintf("DB_POOL_SIZE must be between 1 and 100, got %d", db.PoolSize))
	}

	auth := &AuthConfig{
		JWTSecret: getRequiredEnv("JWT_SECRET", &errs),
		// The register/login lifetime asymmetry is inherited product
		// behavior; see DESIGN.md.
		RegisterTokenTTL: getOptionalEnvDuration("JWT_REGISTER_TOKEN_TTL", time.Hour, &errs),
		LoginTokenTTL:    getOptionalEnvDuration("JWT_LOGIN_TOKEN_TTL", 24*time.Hour, &errs),
	}

	redis := &RedisConfig{
		Addr:     getOptionalEnv("REDIS_ADDR", ""),
		Password: getOptionalEnv("REDIS_PASSWORD", ""),
		Channel:  getOptionalEnv("REDIS_CHANNEL", "news_updates"),
	}

	media := &MediaConfig{
		Dir:     getOptionalEnv("MEDIA_DIR", "./uploads"),
		BaseURL: getOptionalEnv("MEDIA_BASE_URL", "/uploads"),
	}

	server := &ServerConfig{
		Port:  getOptionalEnv("PORT", "8080"),
		Debug: getOptionalEnv("APP_ENV", "development") != "production",
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		DB:     db,
		Auth:   auth,
		Redis:  redis,
		Media:  media,
		Server: server,
	}, nil
}
