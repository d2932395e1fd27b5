// Package databasetest provides throwaway in-memory databases for tests.
package databasetest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/monitoring-dashboard/config"
	"github.com/monitoring-dashboard/database"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New returns a migrated in-memory SQLite database private to t
func New(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := database.Open(config.DatabaseConfig{SQLitePath: dsn}, zap.NewNop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get test SQL DB: %v", err)
	}
	// Open keeps SQLite to one connection, which also keeps the in-memory database alive
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
