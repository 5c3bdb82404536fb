package repository

import (
	"errors"
	"time"

	"clinic-portal-backend/internal/database/models"
	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/scheduling"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes surfaced by the appointments_no_overlap constraint.
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

// AppointmentRepository handles database operations for appointments
type AppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create persists a new appointment. A concurrent booking that slipped past
// validation trips the exclusion constraint, which is reported as
// apperrors.ErrBookingConflict so callers can distinguish the race from a
// validation-time overlap.
func (r *AppointmentRepository) Create(appointment *models.Appointment) error {
	if err := r.db.Create(appointment).Error; err != nil {
		return translateConflict(err)
	}
	return nil
}

// GetByID retrieves an appointment by ID
func (r *AppointmentRepository) GetByID(id uuid.UUID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").First(&appointment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// GetByDoctorAndDate retrieves all appointments for a doctor on a date
func (r *AppointmentRepository) GetByDoctorAndDate(doctorID uuid.UUID, date time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("doctor_id = ? AND date = ?", doctorID, scheduling.Midnight(date)).
		Order("start_minute ASC").Find(&appointments).Error
	return appointments, err
}

// GetActiveByDoctorAndDate retrieves the doctor's scheduled/confirmed
// appointments on a date, ordered by start time. These are the rows that
// occupy the calendar for overlap purposes.
func (r *AppointmentRepository) GetActiveByDoctorAndDate(doctorID uuid.UUID, date time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("doctor_id = ? AND date = ? AND state IN ?",
		doctorID, scheduling.Midnight(date), models.ActiveAppointmentStates()).
		Order("start_minute ASC").Find(&appointments).Error
	return appointments, err
}

// GetByPatientAndDateRange retrieves a patient's appointments in [from, to]
func (r *AppointmentRepository) GetByPatientAndDateRange(patientID uuid.UUID, from, to time.Time, limit, offset int) ([]models.Appointment, int64, error) {
	var appointments []models.Appointment
	var total int64

	query := r.db.Model(&models.Appointment{}).Where(
		"patient_id = ? AND date >= ? AND date <= ?",
		patientID, scheduling.Midnight(from), scheduling.Midnight(to),
	)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date ASC, start_minute ASC").Limit(limit).Offset(offset).Find(&appointments).Error
	return appointments, total, err
}

// CountActiveByPatientOnDate counts a patient's scheduled/confirmed
// appointments on a calendar date. excludeID leaves one appointment out of
// the count so reschedules do not count themselves.
func (r *AppointmentRepository) CountActiveByPatientOnDate(patientID uuid.UUID, date time.Time, excludeID *uuid.UUID) (int64, error) {
	query := r.db.Model(&models.Appointment{}).Where(
		"patient_id = ? AND date = ? AND state IN ?",
		patientID, scheduling.Midnight(date), models.ActiveAppointmentStates(),
	)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

// CountActiveByPatientInMonth counts a patient's scheduled/confirmed
// appointments in a calendar month.
func (r *AppointmentRepository) CountActiveByPatientInMonth(patientID uuid.UUID, year int, month time.Month, excludeID *uuid.UUID) (int64, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := r.db.Model(&models.Appointment{}).Where(
		"patient_id = ? AND date >= ? AND date < ? AND state IN ?",
		patientID, monthStart, monthEnd, models.ActiveAppointmentStates(),
	)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

// Update saves appointment changes; reschedules can race like creates, so the
// exclusion constraint is translated here as well.
func (r *AppointmentRepository) Update(appointment *models.Appointment) error {
	if err := r.db.Save(appointment).Error; err != nil {
		return translateConflict(err)
	}
	return nil
}

// UpdateState persists only the state transition fields
func (r *AppointmentRepository) UpdateState(appointment *models.Appointment) error {
	return r.db.Model(appointment).Select(
		"state", "cancellation_reason", "confirmed_by", "confirmed_at", "cancelled_by", "cancelled_at", "updated_at",
	).Updates(appointment).Error
}

// GetAll retrieves all appointments with pagination
func (r *AppointmentRepository) GetAll(limit, offset int) ([]models.Appointment, int64, error) {
	var appointments []models.Appointment
	var total int64

	if err := r.db.Model(&models.Appointment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("date DESC, start_minute ASC").Limit(limit).Offset(offset).Find(&appointments).Error
	return appointments, total, err
}

func translateConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation {
			return apperrors.ErrBookingConflict
		}
	}
	return err
}
