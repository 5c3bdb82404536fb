package repository

import (
	"clinic-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientRepository handles database operations for patients
type PatientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// Create creates a new patient
func (r *PatientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// GetByID retrieves a patient by ID
func (r *PatientRepository) GetByID(id uuid.UUID) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetAll retrieves all patients with pagination
func (r *PatientRepository) GetAll(limit, offset int) ([]models.Patient, int64, error) {
	var patients []models.Patient
	var total int64

	if err := r.db.Model(&models.Patient{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("last_name ASC, first_name ASC").Limit(limit).Offset(offset).Find(&patients).Error
	return patients, total, err
}

// Search finds patients by name or document number
func (r *PatientRepository) Search(query string, limit, offset int) ([]models.Patient, int64, error) {
	var patients []models.Patient
	var total int64

	pattern := "%" + query + "%"
	q := r.db.Model(&models.Patient{}).Where(
		"first_name ILIKE ? OR last_name ILIKE ? OR document_no ILIKE ?",
		pattern, pattern, pattern,
	)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("last_name ASC").Limit(limit).Offset(offset).Find(&patients).Error
	return patients, total, err
}

// Update updates a patient
func (r *PatientRepository) Update(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// Delete deletes a patient
func (r *PatientRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Patient{}, "id = ?", id).Error
}
