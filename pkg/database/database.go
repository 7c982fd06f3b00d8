package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	authdomain "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/auth/domain"
	submissiondomain "github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/internal/submission/domain"
	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the store selected by cfg.DBDriver. The handle lives for
// the whole process and must be released with Close.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gcfg := gormConfig(cfg.DBDebug)

	switch cfg.DBDriver {
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gcfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		log.Printf("[Database] Connected to postgres")
		return db, nil
	case "sqlite", "":
		db, err := openSQLite(cfg.DatabaseURL, gcfg)
		if err != nil {
			return nil, err
		}
		log.Printf("[Database] Connected to sqlite database %s", cfg.DatabaseURL)
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// OpenSQLite opens a sqlite database with quiet logging. ":memory:" gives
// each call its own private database.
func OpenSQLite(path string) (*gorm.DB, error) {
	return openSQLite(path, gormConfig(false))
}

func openSQLite(path string, gcfg *gorm.Config) (*gorm.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	}
	db, err := gorm.Open(sqlite.Open(dsn), gcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// An in-memory database lives and dies with its connection.
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func gormConfig(debug bool) *gorm.Config {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Migrate makes sure the fixed schema exists.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authdomain.User{},
		&submissiondomain.TestDrive{},
		&submissiondomain.Message{},
		&submissiondomain.FinancingRequest{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
