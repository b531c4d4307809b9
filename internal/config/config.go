package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Cache backends
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds bot configuration
type Config struct {
	BotToken       string
	AssetOrigin    string
	VocabularyPath string
	Cache          CacheConfig
	Database       DatabaseConfig
}

// CacheConfig holds offline cache settings
type CacheConfig struct {
	Name    string
	Assets  []string
	Backend string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// ServerConfig holds asset origin settings
type ServerConfig struct {
	Port    string
	WebRoot string
}

const defaultAssets = "/,/index.html,/styles.css,/script.js,/vocabulary_persian_final.json"

// Load reads bot configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:       os.Getenv("BOT_TOKEN"),
		AssetOrigin:    getEnv("ASSET_ORIGIN", "http://localhost:8001"),
		VocabularyPath: getEnv("VOCABULARY_PATH", "/vocabulary_persian_final.json"),
		Cache: CacheConfig{
			Name:    getEnv("CACHE_NAME", "gre-flashcards-v1"),
			Assets:  splitList(getEnv("CACHE_ASSETS", defaultAssets)),
			Backend: getEnv("CACHE_BACKEND", BackendPostgres),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "flashcards"),
			User:     getEnv("DB_USER", "flashcards"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	switch cfg.Cache.Backend {
	case BackendPostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required for the postgres cache backend")
		}
	case BackendMemory:
	default:
		return nil, fmt.Errorf("CACHE_BACKEND must be %q or %q, got %q", BackendPostgres, BackendMemory, cfg.Cache.Backend)
	}

	return cfg, nil
}

// LoadServer reads asset origin configuration from environment variables
func LoadServer() (*ServerConfig, error) {
	_ = godotenv.Load()

	cfg := &ServerConfig{
		Port:    getEnv("SERVER_PORT", "8001"),
		WebRoot: getEnv("WEB_ROOT", "web"),
	}

	info, err := os.Stat(cfg.WebRoot)
	if err != nil {
		return nil, fmt.Errorf("WEB_ROOT %q: %w", cfg.WebRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("WEB_ROOT %q is not a directory", cfg.WebRoot)
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

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
