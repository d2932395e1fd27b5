package repositories

import (
	"context"

	"github.com/monitoring-dashboard/models"
	"gorm.io/gorm"
)

// AssignmentFilter narrows an assignment listing. The first non-nil field is used,
// in the order ManPowerID, ProjectID, NonProjectID.
type AssignmentFilter struct {
	ManPowerID   *uint
	ProjectID    *uint
	NonProjectID *uint
}

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository instance
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Find retrieves assignments matching filter
func (r *AssignmentRepository) Find(ctx context.Context, filter AssignmentFilter) ([]models.Assignment, error) {
	query := r.db.WithContext(ctx).Order("id")
	switch {
	case filter.ManPowerID != nil:
		query = query.Where("manpower_id = ?", *filter.ManPowerID)
	case filter.ProjectID != nil:
		query = query.Where("project_id = ?", *filter.ProjectID)
	case filter.NonProjectID != nil:
		query = query.Where("non_project_id = ?", *filter.NonProjectID)
	}

	var assignments []models.Assignment
	result := query.Find(&assignments)
	return assignments, result.Error
}

// FindByID retrieves an assignment by its ID
func (r *AssignmentRepository) FindByID(ctx context.Context, id uint) (models.Assignment, error) {
	var assignment models.Assignment
	result := r.db.WithContext(ctx).First(&assignment, id)
	return assignment, result.Error
}

// Create inserts a new assignment
func (r *AssignmentRepository) Create(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	result := r.db.WithContext(ctx).Create(&assignment)
	return assignment, result.Error
}

// Update writes every column of an existing assignment
func (r *AssignmentRepository) Update(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	err := updateRow(ctx, r.db, &assignment)
	return assignment, err
}

// Delete removes an assignment
func (r *AssignmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Assignment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
