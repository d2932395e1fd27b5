package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repositories bundles the per-entity repositories over one database handle
type Repositories struct {
	db *gorm.DB

	Projects    *ProjectRepository
	NonProjects *NonProjectRepository
	Tasks       *TaskRepository
	ManPower    *ManPowerRepository
	Assignments *AssignmentRepository
}

// New creates the repositories for db
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:          db,
		Projects:    NewProjectRepository(db),
		NonProjects: NewNonProjectRepository(db),
		Tasks:       NewTaskRepository(db),
		ManPower:    NewManPowerRepository(db),
		Assignments: NewAssignmentRepository(db),
	}
}

// Transaction runs fn with repositories bound to a single transaction.
// Returning an error from fn rolls everything back.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// updateRow writes every column of an existing row. It never inserts, so a row
// deleted since it was read yields gorm.ErrRecordNotFound.
func updateRow(ctx context.Context, db *gorm.DB, value interface{}) error {
	result := db.WithContext(ctx).Model(value).Select("*").Omit(clause.Associations).Updates(value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
