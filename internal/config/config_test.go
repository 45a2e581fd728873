package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func devConfig() *Config {
	return &Config{
		Port:          "8462",
		DBHost:        "localhost",
		DBPort:        "5432",
		DBUser:        "user",
		DBPassword:    "password",
		DBName:        "corkboard",
		DBSSLMode:     "disable",
		JWTSecret:     "your-secret-key-change-in-production",
		JWTExpiry:     "30m",
		UploadDir:     "uploads/images",
		MaxUploadSize: 10 * 1024 * 1024,
		Env:           "development",
	}
}

func TestConfig_Validate_Development(t *testing.T) {
	cfg := devConfig()
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_MissingValues(t *testing.T) {
	t.Run("missing port", func(t *testing.T) {
		cfg := devConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := devConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing upload dir", func(t *testing.T) {
		cfg := devConfig()
		cfg.UploadDir = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad jwt expiry", func(t *testing.T) {
		cfg := devConfig()
		cfg.JWTExpiry = "soon"
		assert.Error(t, cfg.Validate())
	})
}

func TestConfig_Validate_ProductionStrictness(t *testing.T) {
	t.Run("default secret rejected", func(t *testing.T) {
		cfg := devConfig()
		cfg.Env = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("short secret rejected", func(t *testing.T) {
		cfg := devConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		cfg.DBPassword = "actually-strong-password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("default db password rejected", func(t *testing.T) {
		cfg := devConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "a-proper-secret-of-at-least-32-chars!!"
		assert.Error(t, cfg.Validate())
	})

	t.Run("hardened config accepted", func(t *testing.T) {
		cfg := devConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "a-proper-secret-of-at-least-32-chars!!"
		cfg.DBPassword = "actually-strong-password"
		assert.NoError(t, cfg.Validate())
	})
}

func TestConfig_TokenExpiry(t *testing.T) {
	cfg := devConfig()
	assert.Equal(t, 30*time.Minute, cfg.TokenExpiry())

	cfg.JWTExpiry = "2h"
	assert.Equal(t, 2*time.Hour, cfg.TokenExpiry())

	// Unparseable values fall back to the default lifetime
	cfg.JWTExpiry = "bogus"
	assert.Equal(t, 30*time.Minute, cfg.TokenExpiry())
}
