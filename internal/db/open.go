package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to PostgreSQL when databaseURL is set and falls back to
// the SQLite file at dbPath otherwise.
func Open(databaseURL string, dbPath string) (*gorm.DB, error) {
	if strings.TrimSpace(databaseURL) != "" {
		return OpenPostgres(databaseURL)
	}
	return OpenSQLite(dbPath)
}

func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

func OpenPostgres(databaseURL string) (*gorm.DB, error) {
	dsn := strings.TrimSpace(databaseURL)
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil, errors.New("DATABASE_URL must be a postgres:// or postgresql:// URL")
	}

	config := newGormConfig()
	config.PrepareStmt = true
	database, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

var (
	queryLogWriter   gormlogger.Writer = log.New(os.Stdout, "\r\n", log.LstdFlags)
	queryLogColorful                   = true
)

// SetQueryLogger sends slow-query and error lines from later opens to
// writer, typically the application logger.
func SetQueryLogger(writer gormlogger.Writer) {
	if writer == nil {
		return
	}
	queryLogWriter = writer
	queryLogColorful = false
}

func newGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(
			queryLogWriter,
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  queryLogColorful,
			},
		),
	}
}
