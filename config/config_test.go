package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DB_DRIVER", "DB_PATH", "DATABASE_URL", "DB_HOST", "JWT_SECRET",
		"JWT_ACCESS_TTL", "BCRYPT_COST", "CORS_ALLOWED_ORIGINS", "SEED_ON_STARTUP",
		"SEED_FILE", "APP_ENV", "CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "portfolio.db", cfg.Database.Path)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, []string{"http://localhost:8000"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Seed.OnStartup)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.False(t, cfg.App.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "PGX")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/portfolio")
	t.Setenv("JWT_ACCESS_TTL", "1h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("SEED_ON_STARTUP", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Seed.OnStartup)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET: from-file\nPORT: \"7000\"\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, "7000", cfg.Server.Port)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "5000"},
			Database: DatabaseConfig{Driver: "sqlite", Path: "portfolio.db"},
			Auth:     AuthConfig{JWTSecret: "s", AccessTokenTTL: time.Minute, BcryptCost: 10},
			CORS:     CORSConfig{AllowedOrigins: []string{"http://localhost:8000"}},
		}
	}

	t.Run("accepts a complete config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("requires a JWT secret", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.JWTSecret = ""
		assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")
	})

	t.Run("rejects unknown drivers", func(t *testing.T) {
		cfg := valid()
		cfg.Database.Driver = "mysql"
		assert.ErrorContains(t, cfg.Validate(), "DB_DRIVER")
	})

	t.Run("postgres needs a location", func(t *testing.T) {
		cfg := valid()
		cfg.Database = DatabaseConfig{Driver: "postgres"}
		assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")
	})

	t.Run("rejects out of range bcrypt cost", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.BcryptCost = 2
		assert.ErrorContains(t, cfg.Validate(), "BCRYPT_COST")
	})

	t.Run("rejects non-positive ttl", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.AccessTokenTTL = 0
		assert.ErrorContains(t, cfg.Validate(), "JWT_ACCESS_TTL")
	})
}
