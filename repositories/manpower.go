package repositories

import (
	"context"

	"github.com/monitoring-dashboard/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ManPowerRepository handles database operations for personnel
type ManPowerRepository struct {
	db *gorm.DB
}

// NewManPowerRepository creates a new manpower repository instance
func NewManPowerRepository(db *gorm.DB) *ManPowerRepository {
	return &ManPowerRepository{db: db}
}

// FindAll retrieves all people
func (r *ManPowerRepository) FindAll(ctx context.Context) ([]models.ManPower, error) {
	var people []models.ManPower
	result := r.db.WithContext(ctx).Order("id").Find(&people)
	return people, result.Error
}

// FindByID retrieves a person by ID
func (r *ManPowerRepository) FindByID(ctx context.Context, id uint) (models.ManPower, error) {
	var person models.ManPower
	result := r.db.WithContext(ctx).First(&person, id)
	return person, result.Error
}

// Create inserts a new person
func (r *ManPowerRepository) Create(ctx context.Context, person models.ManPower) (models.ManPower, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&person)
	return person, result.Error
}

// Update writes every column of an existing person
func (r *ManPowerRepository) Update(ctx context.Context, person models.ManPower) (models.ManPower, error) {
	err := updateRow(ctx, r.db, &person)
	return person, err
}

// Delete removes a person together with their assignments
func (r *ManPowerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("manpower_id = ?", id).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.ManPower{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Exists checks if a person exists
func (r *ManPowerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ManPower{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Count counts all people
func (r *ManPowerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.ManPower{}).Count(&count)
	return count, result.Error
}
