package service

import (
	"context"
	"time"

	"clinic-portal-backend/internal/database/models"
	"clinic-portal-backend/internal/scheduling"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ScheduleSource exposes the subset of repository behavior the
// availability components need. Unknown doctors yield empty results,
// never a not-found error.
type ScheduleSource interface {
	TemplatesFor(doctorID uuid.UUID, dayOfWeek int) ([]models.ScheduleTemplate, error)
	HasActiveContract(doctorID uuid.UUID, date time.Time) (bool, error)
}

// BookingSource exposes the booking lookups needed for conflict
// detection and frequency limits. *repository.AppointmentRepository
// satisfies it directly.
type BookingSource interface {
	GetActiveByDoctorAndDate(doctorID uuid.UUID, date time.Time) ([]models.Appointment, error)
	CountActiveByPatientOnDate(patientID uuid.UUID, date time.Time, excludeID *uuid.UUID) (int64, error)
	CountActiveByPatientInMonth(patientID uuid.UUID, year int, month time.Month, excludeID *uuid.UUID) (int64, error)
}

// OverlapChecker reports whether a candidate interval collides with an
// existing active booking for a doctor on a date.
type OverlapChecker interface {
	HasOverlap(doctorID uuid.UUID, date time.Time, candidate scheduling.Interval, excludeID *uuid.UUID) (bool, error)
}

// DoctorServiceInterface defines the interface for doctor service
type DoctorServiceInterface interface {
	Create(req *CreateDoctorRequest) (*models.Doctor, error)
	GetByID(id uuid.UUID) (*models.Doctor, error)
	GetAll(limit, offset int) ([]models.Doctor, int64, error)
	GetBySpecialty(specialtyID uuid.UUID, limit, offset int) ([]models.Doctor, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateDoctorRequest) (*models.Doctor, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PatientServiceInterface defines the interface for patient service
type PatientServiceInterface interface {
	Create(req *CreatePatientRequest) (*models.Patient, error)
	GetByID(id uuid.UUID) (*models.Patient, error)
	GetAll(limit, offset int) ([]models.Patient, int64, error)
	Search(query string, limit, offset int) ([]models.Patient, int64, error)
	Update(id uuid.UUID, req *UpdatePatientRequest) (*models.Patient, error)
	Delete(id uuid.UUID) error
}

// SpecialtyServiceInterface defines the interface for specialty service
type SpecialtyServiceInterface interface {
	Create(req *CreateSpecialtyRequest) (*models.Specialty, error)
	GetByID(id uuid.UUID) (*models.Specialty, error)
	GetAll(limit, offset int) ([]models.Specialty, int64, error)
	Update(id uuid.UUID, req *UpdateSpecialtyRequest) (*models.Specialty, error)
	Delete(id uuid.UUID) error
}

// ContractServiceInterface defines the interface for contract service
type ContractServiceInterface interface {
	Create(ctx context.Context, req *CreateContractRequest) (*models.Contract, error)
	GetByID(id uuid.UUID) (*models.Contract, error)
	GetByDoctor(doctorID uuid.UUID, limit, offset int) ([]models.Contract, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateContractRequest) (*models.Contract, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ScheduleTemplateServiceInterface defines the interface for schedule template service
type ScheduleTemplateServiceInterface interface {
	Create(ctx context.Context, req *CreateScheduleTemplateRequest) (*models.ScheduleTemplate, error)
	GetByID(id uuid.UUID) (*models.ScheduleTemplate, error)
	GetByDoctor(doctorID uuid.UUID) ([]models.ScheduleTemplate, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateScheduleTemplateRequest) (*models.ScheduleTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AppointmentServiceInterface defines the interface for appointment service
type AppointmentServiceInterface interface {
	Validate(req *BookingRequest) (*ValidationResult, error)
	Create(ctx context.Context, req *BookingRequest, actorID *uuid.UUID) (*models.Appointment, *ValidationResult, error)
	Reschedule(ctx context.Context, id uuid.UUID, req *RescheduleRequest, actorID *uuid.UUID) (*models.Appointment, *ValidationResult, error)
	Confirm(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (*models.Appointment, error)
	Complete(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (*models.Appointment, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string, actorID *uuid.UUID) (*models.Appointment, error)
	GetByID(id uuid.UUID) (*models.Appointment, error)
	GetByDoctorAndDate(doctorID uuid.UUID, date time.Time) ([]models.Appointment, error)
	GetByPatient(patientID uuid.UUID, from, to time.Time, limit, offset int) ([]models.Appointment, int64, error)
	GetAll(limit, offset int) ([]models.Appointment, int64, error)
}

// SlotServiceInterface defines the interface for slot generation
type SlotServiceInterface interface {
	AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]TimeSlot, error)
	AvailableSlotsByShift(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]ShiftSlots, error)
}

// AuditServiceInterface defines the interface for the audit trail
type AuditServiceInterface interface {
	Record(event, entity string, entityID uuid.UUID, actorID *uuid.UUID, details map[string]interface{})
	GetByEntity(entity string, entityID uuid.UUID, limit, offset int) ([]models.AuditEvent, int64, error)
	GetAll(limit, offset int) ([]models.AuditEvent, int64, error)
}
