package repository

import (
	"time"

	"clinic-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// DoctorRepositoryInterface defines the interface for doctor repository operations
type DoctorRepositoryInterface interface {
	Create(doctor *models.Doctor) error
	GetByID(id uuid.UUID) (*models.Doctor, error)
	GetByEmail(email string) (*models.Doctor, error)
	GetAll(limit, offset int) ([]models.Doctor, int64, error)
	GetBySpecialtyID(specialtyID uuid.UUID, limit, offset int) ([]models.Doctor, int64, error)
	Update(doctor *models.Doctor) error
	Deactivate(id uuid.UUID) error
	HasAppointments(id uuid.UUID) (bool, error)
	Delete(id uuid.UUID) error
}

// PatientRepositoryInterface defines the interface for patient repository operations
type PatientRepositoryInterface interface {
	Create(patient *models.Patient) error
	GetByID(id uuid.UUID) (*models.Patient, error)
	GetAll(limit, offset int) ([]models.Patient, int64, error)
	Search(query string, limit, offset int) ([]models.Patient, int64, error)
	Update(patient *models.Patient) error
	Delete(id uuid.UUID) error
}

// SpecialtyRepositoryInterface defines the interface for specialty repository operations
type SpecialtyRepositoryInterface interface {
	Create(specialty *models.Specialty) error
	GetByID(id uuid.UUID) (*models.Specialty, error)
	GetByName(name string) (*models.Specialty, error)
	GetAll(limit, offset int) ([]models.Specialty, int64, error)
	Update(specialty *models.Specialty) error
	Delete(id uuid.UUID) error
}

// ContractRepositoryInterface defines the interface for contract repository operations
type ContractRepositoryInterface interface {
	Create(contract *models.Contract) error
	GetByID(id uuid.UUID) (*models.Contract, error)
	GetByDoctorID(doctorID uuid.UUID, limit, offset int) ([]models.Contract, int64, error)
	GetActiveByDoctorID(doctorID uuid.UUID) ([]models.Contract, error)
	HasActiveOnDate(doctorID uuid.UUID, date time.Time) (bool, error)
	CheckOverlap(doctorID uuid.UUID, startDate time.Time, endDate *time.Time, excludeID *uuid.UUID) (bool, error)
	Update(contract *models.Contract) error
	Delete(id uuid.UUID) error
}

// ScheduleTemplateRepositoryInterface defines the interface for schedule template repository operations
type ScheduleTemplateRepositoryInterface interface {
	Create(template *models.ScheduleTemplate) error
	GetByID(id uuid.UUID) (*models.ScheduleTemplate, error)
	GetByDoctorID(doctorID uuid.UUID) ([]models.ScheduleTemplate, error)
	GetByDoctorAndDay(doctorID uuid.UUID, dayOfWeek int) ([]models.ScheduleTemplate, error)
	CheckOverlap(doctorID uuid.UUID, dayOfWeek int, startMinute, endMinute int, excludeID *uuid.UUID) (bool, error)
	Update(template *models.ScheduleTemplate) error
	Delete(id uuid.UUID) error
}

// AppointmentRepositoryInterface defines the interface for appointment repository operations
type AppointmentRepositoryInterface interface {
	Create(appointment *models.Appointment) error
	GetByID(id uuid.UUID) (*models.Appointment, error)
	GetByDoctorAndDate(doctorID uuid.UUID, date time.Time) ([]models.Appointment, error)
	GetActiveByDoctorAndDate(doctorID uuid.UUID, date time.Time) ([]models.Appointment, error)
	GetByPatientAndDateRange(patientID uuid.UUID, from, to time.Time, limit, offset int) ([]models.Appointment, int64, error)
	CountActiveByPatientOnDate(patientID uuid.UUID, date time.Time, excludeID *uuid.UUID) (int64, error)
	CountActiveByPatientInMonth(patientID uuid.UUID, year int, month time.Month, excludeID *uuid.UUID) (int64, error)
	Update(appointment *models.Appointment) error
	UpdateState(appointment *models.Appointment) error
	GetAll(limit, offset int) ([]models.Appointment, int64, error)
}

// AuditEventRepositoryInterface defines the interface for audit event repository operations
type AuditEventRepositoryInterface interface {
	Create(event *models.AuditEvent) error
	GetByEntity(entity string, entityID uuid.UUID, limit, offset int) ([]models.AuditEvent, int64, error)
	GetAll(limit, offset int) ([]models.AuditEvent, int64, error)
}
