package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/monitoring-dashboard/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SlowQueryThreshold is the latency above which queries are logged as warnings
const SlowQueryThreshold = 200 * time.Millisecond

// Dialector picks postgres when a database URL is configured and falls back to
// a local SQLite file otherwise.
func Dialector(cfg config.DatabaseConfig) gorm.Dialector {
	if cfg.URL != "" {
		return postgres.Open(cfg.URL)
	}
	return sqlite.Open(sqliteDSN(cfg.SQLitePath))
}

// sqliteBusyTimeout is how long a SQLite connection waits on a locked database
const sqliteBusyTimeout = 5 * time.Second

func sqliteDSN(path string) string {
	params := fmt.Sprintf("_foreign_keys=on&_busy_timeout=%d", sqliteBusyTimeout.Milliseconds())
	if strings.Contains(path, "?") {
		return path + "&" + params
	}
	return path + "?" + params
}

// Open sets up the GORM database connection
func Open(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	dialector := Dialector(cfg)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(log, SlowQueryThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	if dialector.Name() == "sqlite" {
		// SQLite takes one writer at a time
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info("connected to database", zap.String("driver", dialector.Name()))
	return db, nil
}

// Ping checks that the database answers
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
