package repository

import (
	"clinic-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpecialtyRepository handles database operations for specialties
type SpecialtyRepository struct {
	db *gorm.DB
}

// NewSpecialtyRepository creates a new specialty repository
func NewSpecialtyRepository(db *gorm.DB) *SpecialtyRepository {
	return &SpecialtyRepository{db: db}
}

// Create creates a new specialty
func (r *SpecialtyRepository) Create(specialty *models.Specialty) error {
	return r.db.Create(specialty).Error
}

// GetByID retrieves a specialty by ID
func (r *SpecialtyRepository) GetByID(id uuid.UUID) (*models.Specialty, error) {
	var specialty models.Specialty
	err := r.db.First(&specialty, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &specialty, nil
}

// GetByName retrieves a specialty by name
func (r *SpecialtyRepository) GetByName(name string) (*models.Specialty, error) {
	var specialty models.Specialty
	err := r.db.First(&specialty, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &specialty, nil
}

// GetAll retrieves all specialties with pagination
func (r *SpecialtyRepository) GetAll(limit, offset int) ([]models.Specialty, int64, error) {
	var specialties []models.Specialty
	var total int64

	if err := r.db.Model(&models.Specialty{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&specialties).Error
	return specialties, total, err
}

// Update updates a specialty
func (r *SpecialtyRepository) Update(specialty *models.Specialty) error {
	return r.db.Save(specialty).Error
}

// Delete deletes a specialty
func (r *SpecialtyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Specialty{}, "id = ?", id).Error
}
