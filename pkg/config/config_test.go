package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "JWT_SECRET", "BCRYPT_COST", "DB_DRIVER", "DATABASE_URL", "DB_DEBUG", "CORS_ORIGIN", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.False(t, cfg.JWTSecretIsSet)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "autohub.db", cfg.DatabaseURL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/autohub")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "s3cr3t", cfg.JWTSecret)
	assert.True(t, cfg.JWTSecretIsSet)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	require.True(t, cfg.IsProduction())
	assert.ErrorIs(t, cfg.Validate(), ErrInsecureSecret)

	cfg.JWTSecret = "real"
	cfg.JWTSecretIsSet = true
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &Config{DBDriver: "mysql"}
	assert.Error(t, cfg.Validate())
}
