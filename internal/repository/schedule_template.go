package repository

import (
	"clinic-portal-backend/internal/database/models"
	"clinic-portal-backend/internal/scheduling"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleTemplateRepository handles database operations for schedule templates
type ScheduleTemplateRepository struct {
	db *gorm.DB
}

// NewScheduleTemplateRepository creates a new schedule template repository
func NewScheduleTemplateRepository(db *gorm.DB) *ScheduleTemplateRepository {
	return &ScheduleTemplateRepository{db: db}
}

// Create creates a new schedule template
func (r *ScheduleTemplateRepository) Create(template *models.ScheduleTemplate) error {
	return r.db.Create(template).Error
}

// GetByID retrieves a schedule template by ID
func (r *ScheduleTemplateRepository) GetByID(id uuid.UUID) (*models.ScheduleTemplate, error) {
	var template models.ScheduleTemplate
	err := r.db.First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetByDoctorID retrieves all schedule templates for a doctor
func (r *ScheduleTemplateRepository) GetByDoctorID(doctorID uuid.UUID) ([]models.ScheduleTemplate, error) {
	var templates []models.ScheduleTemplate
	err := r.db.Where("doctor_id = ?", doctorID).Order("day_of_week ASC, start_time ASC").Find(&templates).Error
	return templates, err
}

// GetByDoctorAndDay retrieves a doctor's templates for a weekday, ordered by
// start time. An empty result means the doctor has no hours that day.
func (r *ScheduleTemplateRepository) GetByDoctorAndDay(doctorID uuid.UUID, dayOfWeek int) ([]models.ScheduleTemplate, error) {
	var templates []models.ScheduleTemplate
	err := r.db.Where("doctor_id = ? AND day_of_week = ?", doctorID, dayOfWeek).Order("start_time ASC").Find(&templates).Error
	return templates, err
}

// CheckOverlap reports whether another template for the doctor/day overlaps
// the [startMinute, endMinute) window. HH:MM:SS strings compare correctly as
// text, so the overlap predicate runs on the stored columns directly.
func (r *ScheduleTemplateRepository) CheckOverlap(doctorID uuid.UUID, dayOfWeek int, startMinute, endMinute int, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.ScheduleTemplate{}).Where(
		"doctor_id = ? AND day_of_week = ? AND start_time < ? AND end_time > ?",
		doctorID, dayOfWeek,
		scheduling.FormatTimeOfDay(endMinute),
		scheduling.FormatTimeOfDay(startMinute),
	)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update updates a schedule template
func (r *ScheduleTemplateRepository) Update(template *models.ScheduleTemplate) error {
	return r.db.Save(template).Error
}

// Delete deletes a schedule template
func (r *ScheduleTemplateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ScheduleTemplate{}, "id = ?", id).Error
}
