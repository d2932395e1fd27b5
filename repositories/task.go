package repositories

import (
	"context"

	"github.com/monitoring-dashboard/models"
	"gorm.io/gorm"
)

// TaskFilter narrows a task listing to one owner. ProjectID wins when both are set.
type TaskFilter struct {
	ProjectID    *uint
	NonProjectID *uint
}

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Find retrieves tasks matching filter
func (r *TaskRepository) Find(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	query := r.db.WithContext(ctx).Order("id")
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	} else if filter.NonProjectID != nil {
		query = query.Where("non_project_id = ?", *filter.NonProjectID)
	}

	var tasks []models.Task
	result := query.Find(&tasks)
	return tasks, result.Error
}

// FindByID retrieves a task by its ID
func (r *TaskRepository) FindByID(ctx context.Context, id uint) (models.Task, error) {
	var task models.Task
	result := r.db.WithContext(ctx).First(&task, id)
	return task, result.Error
}

// Create inserts a new task
func (r *TaskRepository) Create(ctx context.Context, task models.Task) (models.Task, error) {
	result := r.db.WithContext(ctx).Create(&task)
	return task, result.Error
}

// Update writes every column of an existing task
func (r *TaskRepository) Update(ctx context.Context, task models.Task) (models.Task, error) {
	err := updateRow(ctx, r.db, &task)
	return task, err
}

// Delete removes a task
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
