package repository

import (
	"clinic-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorRepository handles database operations for doctors
type DoctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository creates a new doctor repository
func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// Create creates a new doctor
func (r *DoctorRepository) Create(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// GetByID retrieves a doctor by ID
func (r *DoctorRepository) GetByID(id uuid.UUID) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Preload("Specialty").First(&doctor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

// GetByEmail retrieves a doctor by email
func (r *DoctorRepository) GetByEmail(email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.First(&doctor, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

// GetAll retrieves all doctors with pagination
func (r *DoctorRepository) GetAll(limit, offset int) ([]models.Doctor, int64, error) {
	var doctors []models.Doctor
	var total int64

	if err := r.db.Model(&models.Doctor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Specialty").Order("last_name ASC, first_name ASC").Limit(limit).Offset(offset).Find(&doctors).Error
	return doctors, total, err
}

// GetBySpecialtyID retrieves doctors for a specialty
func (r *DoctorRepository) GetBySpecialtyID(specialtyID uuid.UUID, limit, offset int) ([]models.Doctor, int64, error) {
	var doctors []models.Doctor
	var total int64

	if err := r.db.Model(&models.Doctor{}).Where("specialty_id = ?", specialtyID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("specialty_id = ?", specialtyID).Order("last_name ASC").Limit(limit).Offset(offset).Find(&doctors).Error
	return doctors, total, err
}

// Update updates a doctor
func (r *DoctorRepository) Update(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

// Deactivate soft-deactivates a doctor; existing appointments keep referencing it
func (r *DoctorRepository) Deactivate(id uuid.UUID) error {
	return r.db.Model(&models.Doctor{}).Where("id = ?", id).Update("active", false).Error
}

// HasAppointments reports whether any appointment references the doctor
func (r *DoctorRepository) HasAppointments(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).Where("doctor_id = ?", id).Count(&count).Error
	return count > 0, err
}

// Delete hard-deletes a doctor. Callers must check HasAppointments first.
func (r *DoctorRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Doctor{}, "id = ?", id).Error
}
