package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is used when JWT_SECRET is not set. Validate rejects it in
// production.
const DefaultJWTSecret = "your_super_secret_key_replace_this_in_env"

var ErrInsecureSecret = errors.New("JWT_SECRET must be set when APP_ENV=production")

type Config struct {
	Port            string
	Env             string
	JWTSecret       string
	JWTSecretIsSet  bool
	BcryptCost      int
	DBDriver        string
	DatabaseURL     string
	DBDebug         bool
	CORSOrigin      string
	ShutdownTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	shutdownTimeout := 10 * time.Second
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			shutdownTimeout = parsed
		} else {
			log.Printf("[Config] [WARN] ignoring SHUTDOWN_TIMEOUT=%q: %v", v, err)
		}
	}

	cost := 10
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cost = parsed
		} else {
			log.Printf("[Config] [WARN] ignoring BCRYPT_COST=%q: %v", v, err)
		}
	}

	secret, secretSet := os.LookupEnv("JWT_SECRET")
	if !secretSet || secret == "" {
		secret = DefaultJWTSecret
		secretSet = false
	}

	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		Env:             strings.ToLower(getEnv("APP_ENV", "development")),
		JWTSecret:       secret,
		JWTSecretIsSet:  secretSet,
		BcryptCost:      cost,
		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DatabaseURL:     getEnv("DATABASE_URL", "autohub.db"),
		DBDebug:         getEnv("DB_DEBUG", "false") == "true",
		CORSOrigin:      getEnv("CORS_ORIGIN", ""),
		ShutdownTimeout: shutdownTimeout,
	}

	if !cfg.JWTSecretIsSet {
		log.Printf("[Config] [CRITICAL] JWT_SECRET is not set, tokens are signed with a publicly known default key")
	}

	return cfg
}

// IsProduction reports whether APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate rejects configurations that must not be served.
func (c *Config) Validate() error {
	if c.IsProduction() && !c.JWTSecretIsSet {
		return ErrInsecureSecret
	}
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return errors.New("DB_DRIVER must be sqlite or postgres, got " + c.DBDriver)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
