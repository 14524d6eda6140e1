package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// State backends for the bot
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds all application configuration
type Config struct {
	APIBaseURL   string
	HTTPTimeout  time.Duration
	BotToken     string
	StateBackend string
	StateDir     string
	Database     DatabaseConfig
	Redis        RedisConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Addr     string
	Password string
}

// Load reads configuration shared by all front ends from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:8000/app"),
		BotToken:     os.Getenv("BOT_TOKEN"),
		StateBackend: getEnv("STATE_BACKEND", BackendPostgres),
		StateDir:     getEnv("STATE_DIR", defaultStateDir()),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "easywords"),
			User:     getEnv("DB_USER", "easywords"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", cfg.APIBaseURL)
	}

	// Zero means no client-side timeout
	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = timeout
	}

	return cfg, nil
}

// LoadBot loads configuration and validates the fields the bot requires
func LoadBot() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	switch cfg.StateBackend {
	case BackendPostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required")
		}
	case BackendRedis:
	default:
		return nil, fmt.Errorf("STATE_BACKEND must be %q or %q, got %q", BackendPostgres, BackendRedis, cfg.StateBackend)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".easywords"
	}
	return filepath.Join(home, ".easywords")
}
