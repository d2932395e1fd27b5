package database

import (
	"errors"
	"fmt"

	"github.com/monitoring-dashboard/config"
	"github.com/monitoring-dashboard/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Models lists every table owned by the dashboard, parents before children
func Models() []interface{} {
	return []interface{}{
		&models.Project{},
		&models.NonProject{},
		&models.ManPower{},
		&models.Task{},
		&models.Assignment{},
	}
}

// Migrate creates or updates the schema
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

// DBConnection represents a named database connection
type DBConnection struct {
	DB    *gorm.DB
	Name  string
	DbURL string
	log   *zap.Logger
}

// NewDBConnection creates a new database connection
func NewDBConnection(name, dbURL string, log *zap.Logger) (*DBConnection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	log = log.With(zap.String("database", name))
	db, err := Open(config.DatabaseConfig{URL: config.NormalizeDatabaseURL(dbURL)}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", name, err)
	}

	return &DBConnection{
		DB:    db,
		Name:  name,
		DbURL: dbURL,
		log:   log,
	}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	c.log.Info("migrating database schema")
	if err := Migrate(c.DB); err != nil {
		return fmt.Errorf("failed to migrate %s database: %w", c.Name, err)
	}
	c.log.Info("database schema migrated")
	return nil
}

// MigrateDataBetweenDatabases copies every dashboard table from source to target.
// Parents are copied before children so foreign keys resolve.
func MigrateDataBetweenDatabases(source, target *DBConnection) error {
	target.log.Info("starting data migration", zap.String("source", source.Name))

	steps := []func() error{
		func() error { return copyTable[models.Project](source, target, "projects") },
		func() error { return copyTable[models.NonProject](source, target, "non_projects") },
		func() error { return copyTable[models.ManPower](source, target, "man_power") },
		func() error { return copyTable[models.Task](source, target, "tasks") },
		func() error { return copyTable[models.Assignment](source, target, "assignments") },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	target.log.Info("data migration completed")
	return nil
}

func copyTable[T any](source, target *DBConnection, table string) error {
	var rows []T
	if err := source.DB.Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to fetch %s: %w", table, err)
	}
	target.log.Info("copying rows", zap.String("table", table), zap.Int("count", len(rows)))
	if len(rows) == 0 {
		return nil
	}

	if err := target.DB.Omit(clause.Associations).CreateInBatches(&rows, 100).Error; err != nil {
		return fmt.Errorf("failed to migrate %s: %w", table, err)
	}
	return resetSequence(target.DB, table)
}

// resetSequence moves a postgres serial past the copied ids so new rows don't collide
func resetSequence(db *gorm.DB, table string) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	stmt := fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 1)) FROM %s", table, table)
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("failed to reset %s id sequence: %w", table, err)
	}
	return nil
}
