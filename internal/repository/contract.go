package repository

import (
	"time"

	"clinic-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContractRepository handles database operations for doctor employment contracts
type ContractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// Create creates a new contract
func (r *ContractRepository) Create(contract *models.Contract) error {
	return r.db.Create(contract).Error
}

// GetByID retrieves a contract by ID
func (r *ContractRepository) GetByID(id uuid.UUID) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.First(&contract, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// GetByDoctorID retrieves all contracts for a doctor
func (r *ContractRepository) GetByDoctorID(doctorID uuid.UUID, limit, offset int) ([]models.Contract, int64, error) {
	var contracts []models.Contract
	var total int64

	if err := r.db.Model(&models.Contract{}).Where("doctor_id = ?", doctorID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("doctor_id = ?", doctorID).Order("start_date DESC").Limit(limit).Offset(offset).Find(&contracts).Error
	return contracts, total, err
}

// GetActiveByDoctorID retrieves the active contracts for a doctor
func (r *ContractRepository) GetActiveByDoctorID(doctorID uuid.UUID) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.Where("doctor_id = ? AND active = ?", doctorID, true).Order("start_date ASC").Find(&contracts).Error
	return contracts, err
}

// HasActiveOnDate reports whether an active contract covers the given date.
// The contract window is half-open: [start_date, end_date), nil end = open.
// Deactivated doctors have no coverage no matter what their contracts say.
func (r *ContractRepository) HasActiveOnDate(doctorID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Contract{}).
		Joins("JOIN doctors ON doctors.id = contracts.doctor_id AND doctors.active = ?", true).
		Where(
			"contracts.doctor_id = ? AND contracts.active = ? AND contracts.start_date <= ? AND (contracts.end_date IS NULL OR contracts.end_date > ?)",
			doctorID, true, date, date,
		).Count(&count).Error
	return count > 0, err
}

// CheckOverlap reports whether an active contract for the doctor overlaps the
// [startDate, endDate) window; nil endDate means open-ended.
func (r *ContractRepository) CheckOverlap(doctorID uuid.UUID, startDate time.Time, endDate *time.Time, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Contract{}).Where("doctor_id = ? AND active = ?", doctorID, true)

	if endDate != nil {
		query = query.Where("start_date < ?", *endDate)
	}
	query = query.Where("end_date IS NULL OR end_date > ?", startDate)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update updates a contract
func (r *ContractRepository) Update(contract *models.Contract) error {
	return r.db.Save(contract).Error
}

// Delete deletes a contract
func (r *ContractRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contract{}, "id = ?", id).Error
}
