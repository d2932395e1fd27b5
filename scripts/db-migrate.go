package main

import (
	"log"

	"github.com/monitoring-dashboard/config"
	"github.com/monitoring-dashboard/database"
	"github.com/monitoring-dashboard/logger"
	"go.uber.org/zap"
)

// Copies every dashboard table from SOURCE_DATABASE_URL to TARGET_DATABASE_URL.
func main() {
	config.LoadEnv()

	zlog, err := logger.New(config.GetEnv("LOG_LEVEL", "info"), config.GetEnv("GIN_MODE", "release"))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	sourceDBURL := config.GetEnv("SOURCE_DATABASE_URL", "")
	targetDBURL := config.GetEnv("TARGET_DATABASE_URL", "")
	if sourceDBURL == "" || targetDBURL == "" {
		zlog.Fatal("SOURCE_DATABASE_URL and TARGET_DATABASE_URL are required")
	}
	if sourceDBURL == targetDBURL {
		zlog.Fatal("SOURCE_DATABASE_URL and TARGET_DATABASE_URL must differ")
	}

	zlog.Info("Starting database migration...")

	// Connect to source database
	sourceDB, err := database.NewDBConnection("source", sourceDBURL, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to source database", zap.Error(err))
	}

	// Connect to target database
	targetDB, err := database.NewDBConnection("target", targetDBURL, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to target database", zap.Error(err))
	}

	// Ensure target database schema is migrated
	if err := targetDB.Migrate(); err != nil {
		zlog.Fatal("Failed to migrate target database schema", zap.Error(err))
	}

	if err := database.MigrateDataBetweenDatabases(sourceDB, targetDB); err != nil {
		zlog.Fatal("Data migration failed", zap.Error(err))
	}

	zlog.Info("Database migration completed successfully!")
}
