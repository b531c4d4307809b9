package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"/", "/a.js", "/b.css"}, splitList(" /, /a.js ,,/b.css,"))
	assert.Nil(t, splitList(""))
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOT_TOKEN", "ASSET_ORIGIN", "VOCABULARY_PATH",
		"CACHE_NAME", "CACHE_ASSETS", "CACHE_BACKEND",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"SERVER_PORT", "WEB_ROOT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingBotToken(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_MissingDBPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_UnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("CACHE_BACKEND", "redis")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "CACHE_BACKEND")
}

func TestLoad_MemoryBackendNeedsNoDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("CACHE_ASSETS", "/, /words.json")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Cache.Backend)
	assert.Equal(t, []string{"/", "/words.json"}, cfg.Cache.Assets)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "http://localhost:8001", cfg.AssetOrigin)
	assert.Equal(t, "/vocabulary_persian_final.json", cfg.VocabularyPath)
	assert.Equal(t, "gre-flashcards-v1", cfg.Cache.Name)
	assert.Equal(t, BackendPostgres, cfg.Cache.Backend)
	assert.Equal(t, []string{
		"/", "/index.html", "/styles.css", "/script.js", "/vocabulary_persian_final.json",
	}, cfg.Cache.Assets)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "flashcards", cfg.Database.Name)
	assert.Equal(t, "flashcards", cfg.Database.User)
}

func TestLoadServer(t *testing.T) {
	t.Run("defaults with existing web root", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WEB_ROOT", t.TempDir())

		cfg, err := LoadServer()
		assert.NoError(t, err)
		assert.Equal(t, "8001", cfg.Port)
	})

	t.Run("missing web root", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WEB_ROOT", "/does/not/exist")

		cfg, err := LoadServer()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("web root is a file", func(t *testing.T) {
		clearEnv(t)
		f, err := os.CreateTemp(t.TempDir(), "root")
		assert.NoError(t, err)
		f.Close()
		t.Setenv("WEB_ROOT", f.Name())

		cfg, err := LoadServer()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}
