package repositories

import (
	"context"

	"github.com/monitoring-dashboard/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NonProjectRepository handles database operations for non-project activities
type NonProjectRepository struct {
	db *gorm.DB
}

// NewNonProjectRepository creates a new non-project repository instance
func NewNonProjectRepository(db *gorm.DB) *NonProjectRepository {
	return &NonProjectRepository{db: db}
}

// FindAll retrieves all non-projects
func (r *NonProjectRepository) FindAll(ctx context.Context) ([]models.NonProject, error) {
	var nonProjects []models.NonProject
	result := r.db.WithContext(ctx).Order("id").Find(&nonProjects)
	return nonProjects, result.Error
}

// FindByID retrieves a non-project by its ID
func (r *NonProjectRepository) FindByID(ctx context.Context, id uint) (models.NonProject, error) {
	var nonProject models.NonProject
	result := r.db.WithContext(ctx).First(&nonProject, id)
	return nonProject, result.Error
}

// Create inserts a new non-project into the database
func (r *NonProjectRepository) Create(ctx context.Context, nonProject models.NonProject) (models.NonProject, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&nonProject)
	return nonProject, result.Error
}

// Update writes every column of an existing non-project
func (r *NonProjectRepository) Update(ctx context.Context, nonProject models.NonProject) (models.NonProject, error) {
	err := updateRow(ctx, r.db, &nonProject)
	return nonProject, err
}

// Delete removes a non-project together with its tasks and assignments
func (r *NonProjectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("non_project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("non_project_id = ?", id).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.NonProject{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Exists checks if a non-project exists
func (r *NonProjectRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NonProject{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
