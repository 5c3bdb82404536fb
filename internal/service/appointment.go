package service

import (
	"context"
	"errors"
	"time"

	"clinic-portal-backend/internal/cache"
	"clinic-portal-backend/internal/database/models"
	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/logger"
	"clinic-portal-backend/internal/repository"
	"clinic-portal-backend/internal/scheduling"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RescheduleRequest moves an existing appointment to a new date and/or time.
type RescheduleRequest struct {
	Date      time.Time `json:"date" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time"`
}

// AppointmentService orchestrates the booking lifecycle: validate, persist,
// invalidate cached availability, audit. The database exclusion constraint
// backs up the validator, so two requests that both pass validation cannot
// both commit an overlapping booking; the loser surfaces ErrBookingConflict.
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepositoryInterface
	doctorRepo      repository.DoctorRepositoryInterface
	patientRepo     repository.PatientRepositoryInterface
	validator       *AppointmentValidator
	audit           *AuditService
	cache           *cache.AvailabilityCache
}

// Ensure AppointmentService implements AppointmentServiceInterface
var _ AppointmentServiceInterface = (*AppointmentService)(nil)

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepositoryInterface,
	doctorRepo repository.DoctorRepositoryInterface,
	patientRepo repository.PatientRepositoryInterface,
	validator *AppointmentValidator,
	audit *AuditService,
	availabilityCache *cache.AvailabilityCache,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		validator:       validator,
		audit:           audit,
		cache:           availabilityCache,
	}
}

// Validate runs the booking rules without persisting anything.
func (s *AppointmentService) Validate(req *BookingRequest) (*ValidationResult, error) {
	return s.validator.Validate(req, nil)
}

// Create books an appointment. When the request violates booking rules the
// violations come back in the result with a nil appointment and nil error;
// infrastructure failures come back as errors.
func (s *AppointmentService) Create(ctx context.Context, req *BookingRequest, actorID *uuid.UUID) (*models.Appointment, *ValidationResult, error) {
	if err := s.ensureParticipantsExist(req.DoctorID, req.PatientID); err != nil {
		return nil, nil, err
	}

	result, err := s.validator.Validate(req, nil)
	if err != nil {
		return nil, nil, err
	}
	if !result.Valid {
		return nil, result, nil
	}

	appointment := &models.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      scheduling.Midnight(req.Date),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		State:     models.AppointmentStateScheduled,
	}
	if err := s.appointmentRepo.Create(appointment); err != nil {
		return nil, nil, err
	}

	s.cache.InvalidateDoctor(ctx, appointment.DoctorID)
	s.audit.Record(EventAppointmentCreated, "appointment", appointment.ID, actorID, map[string]interface{}{
		"doctor_id":  appointment.DoctorID,
		"patient_id": appointment.PatientID,
		"date":       appointment.Date.Format("2006-01-02"),
		"start_time": appointment.StartTime,
	})

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"appointment_id": appointment.ID,
		"doctor_id":      appointment.DoctorID,
		"date":           appointment.Date.Format("2006-01-02"),
	}).Info("Appointment created")
	return appointment, result, nil
}

// Reschedule moves a scheduled or confirmed appointment to a new slot. The
// appointment itself is excluded from collision and frequency checks so it
// never conflicts with the slot it is leaving.
func (s *AppointmentService) Reschedule(ctx context.Context, id uuid.UUID, req *RescheduleRequest, actorID *uuid.UUID) (*models.Appointment, *ValidationResult, error) {
	appointment, err := s.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if appointment.State.IsTerminal() {
		return nil, nil, apperrors.ErrAppointmentTerminal
	}

	bookingReq := &BookingRequest{
		DoctorID:  appointment.DoctorID,
		PatientID: appointment.PatientID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	result, err := s.validator.Validate(bookingReq, &appointment.ID)
	if err != nil {
		return nil, nil, err
	}
	if !result.Valid {
		return nil, result, nil
	}

	previous := map[string]interface{}{
		"date":       appointment.Date.Format("2006-01-02"),
		"start_time": appointment.StartTime,
		"end_time":   appointment.EndTime,
	}
	appointment.Date = scheduling.Midnight(req.Date)
	appointment.StartTime = req.StartTime
	appointment.EndTime = req.EndTime
	if err := s.appointmentRepo.Update(appointment); err != nil {
		return nil, nil, err
	}

	s.cache.InvalidateDoctor(ctx, appointment.DoctorID)
	s.audit.Record(EventAppointmentRescheduled, "appointment", appointment.ID, actorID, map[string]interface{}{
		"previous":   previous,
		"date":       appointment.Date.Format("2006-01-02"),
		"start_time": appointment.StartTime,
		"end_time":   appointment.EndTime,
	})
	return appointment, result, nil
}

// Confirm moves a scheduled appointment to confirmed.
func (s *AppointmentService) Confirm(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (*models.Appointment, error) {
	return s.transition(ctx, id, models.AppointmentStateConfirmed, EventAppointmentConfirmed, actorID, func(a *models.Appointment, now time.Time) {
		a.ConfirmedBy = actorID
		a.ConfirmedAt = &now
	})
}

// Complete moves a confirmed appointment to completed.
func (s *AppointmentService) Complete(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) (*models.Appointment, error) {
	return s.transition(ctx, id, models.AppointmentStateCompleted, EventAppointmentCompleted, actorID, nil)
}

// Cancel moves a scheduled or confirmed appointment to cancelled, freeing
// its slot.
func (s *AppointmentService) Cancel(ctx context.Context, id uuid.UUID, reason string, actorID *uuid.UUID) (*models.Appointment, error) {
	return s.transition(ctx, id, models.AppointmentStateCancelled, EventAppointmentCancelled, actorID, func(a *models.Appointment, now time.Time) {
		if reason != "" {
			a.CancellationReason = &reason
		}
		a.CancelledBy = actorID
		a.CancelledAt = &now
	})
}

func (s *AppointmentService) transition(ctx context.Context, id uuid.UUID, target models.AppointmentState, event string, actorID *uuid.UUID, apply func(*models.Appointment, time.Time)) (*models.Appointment, error) {
	appointment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !appointment.State.CanTransitionTo(target) {
		if appointment.State.IsTerminal() {
			return nil, apperrors.ErrAppointmentTerminal
		}
		return nil, apperrors.ErrInvalidStateTransition
	}

	from := appointment.State
	appointment.State = target
	if apply != nil {
		apply(appointment, time.Now())
	}
	if err := s.appointmentRepo.UpdateState(appointment); err != nil {
		return nil, err
	}

	// Cancelled appointments free their slot; terminal states also stop
	// counting toward the overlap constraint.
	s.cache.InvalidateDoctor(ctx, appointment.DoctorID)
	s.audit.Record(event, "appointment", appointment.ID, actorID, map[string]interface{}{
		"from": string(from),
		"to":   string(target),
	})
	return appointment, nil
}

// GetByID returns one appointment with its doctor and patient loaded.
func (s *AppointmentService) GetByID(id uuid.UUID) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

// GetByDoctorAndDate returns a doctor's appointments on a date, all states,
// ordered by start time.
func (s *AppointmentService) GetByDoctorAndDate(doctorID uuid.UUID, date time.Time) ([]models.Appointment, error) {
	return s.appointmentRepo.GetByDoctorAndDate(doctorID, date)
}

// GetByPatient returns a patient's appointments inside a date range.
func (s *AppointmentService) GetByPatient(patientID uuid.UUID, from, to time.Time, limit, offset int) ([]models.Appointment, int64, error) {
	return s.appointmentRepo.GetByPatientAndDateRange(patientID, from, to, limit, offset)
}

// GetAll returns all appointments with pagination.
func (s *AppointmentService) GetAll(limit, offset int) ([]models.Appointment, int64, error) {
	return s.appointmentRepo.GetAll(limit, offset)
}

func (s *AppointmentService) ensureParticipantsExist(doctorID, patientID uuid.UUID) error {
	doctor, err := s.doctorRepo.GetByID(doctorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDoctorNotFound
		}
		return err
	}
	if !doctor.Active {
		return apperrors.ErrDoctorInactive
	}
	if _, err := s.patientRepo.GetByID(patientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPatientNotFound
		}
		return err
	}
	return nil
}
