package service

import (
	"context"
	"errors"
	"fmt"

	"clinic-portal-backend/internal/cache"
	"clinic-portal-backend/internal/database/models"
	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/repository"
	"clinic-portal-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleTemplateService provides schedule-template business logic.
// Templates for the same doctor and weekday must not overlap, so every
// booked time fits exactly one template.
type ScheduleTemplateService struct {
	repo       repository.ScheduleTemplateRepositoryInterface
	doctorRepo repository.DoctorRepositoryInterface
	validator  *validator.Validate
	cache      *cache.AvailabilityCache
}

// Ensure ScheduleTemplateService implements ScheduleTemplateServiceInterface
var _ ScheduleTemplateServiceInterface = (*ScheduleTemplateService)(nil)

// NewScheduleTemplateService creates a new ScheduleTemplateService
func NewScheduleTemplateService(repo repository.ScheduleTemplateRepositoryInterface, doctorRepo repository.DoctorRepositoryInterface, validator *validator.Validate, availabilityCache *cache.AvailabilityCache) *ScheduleTemplateService {
	return &ScheduleTemplateService{
		repo:       repo,
		doctorRepo: doctorRepo,
		validator:  validator,
		cache:      availabilityCache,
	}
}

// CreateScheduleTemplateRequest represents a request to create a schedule template
type CreateScheduleTemplateRequest struct {
	DoctorID            uuid.UUID         `json:"doctor_id" validate:"required"`
	DayOfWeek           int               `json:"day_of_week" validate:"required,min=1,max=6"`
	StartTime           string            `json:"start_time" validate:"required"`
	EndTime             string            `json:"end_time" validate:"required"`
	ShiftLabel          models.ShiftLabel `json:"shift_label" validate:"required"`
	SlotDurationMinutes int               `json:"slot_duration_minutes"`
}

// UpdateScheduleTemplateRequest represents a request to update a schedule template
type UpdateScheduleTemplateRequest struct {
	DayOfWeek           *int               `json:"day_of_week,omitempty" validate:"omitempty,min=1,max=6"`
	StartTime           *string            `json:"start_time,omitempty"`
	EndTime             *string            `json:"end_time,omitempty"`
	ShiftLabel          *models.ShiftLabel `json:"shift_label,omitempty"`
	SlotDurationMinutes *int               `json:"slot_duration_minutes,omitempty"`
}

// Create creates a new schedule template for a doctor
func (s *ScheduleTemplateService) Create(ctx context.Context, req *CreateScheduleTemplateRequest) (*models.ScheduleTemplate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.ShiftLabel.IsValid() {
		return nil, apperrors.NewValidationError("shift_label", "must be one of morning, afternoon, full")
	}
	if req.SlotDurationMinutes == 0 {
		req.SlotDurationMinutes = models.DefaultAppointmentMinutes
	}
	if req.SlotDurationMinutes < 15 || req.SlotDurationMinutes > 120 {
		return nil, apperrors.NewValidationError("slot_duration_minutes", "must be between 15 and 120")
	}

	window, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	if _, err := s.doctorRepo.GetByID(req.DoctorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to check doctor: %w", err)
	}

	overlap, err := s.repo.CheckOverlap(req.DoctorID, req.DayOfWeek, window.Start, window.End, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check template overlap: %w", err)
	}
	if overlap {
		return nil, apperrors.ErrTemplateOverlap
	}

	template := &models.ScheduleTemplate{
		DoctorID:            req.DoctorID,
		DayOfWeek:           req.DayOfWeek,
		StartTime:           scheduling.FormatTimeOfDay(window.Start),
		EndTime:             scheduling.FormatTimeOfDay(window.End),
		ShiftLabel:          req.ShiftLabel,
		SlotDurationMinutes: req.SlotDurationMinutes,
	}
	if err := s.repo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create schedule template: %w", err)
	}

	s.cache.InvalidateDoctor(ctx, template.DoctorID)
	return template, nil
}

// GetByID retrieves a schedule template by ID
func (s *ScheduleTemplateService) GetByID(id uuid.UUID) (*models.ScheduleTemplate, error) {
	template, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get schedule template: %w", err)
	}
	return template, nil
}

// GetByDoctor retrieves all templates for a doctor, ordered by day and start time
func (s *ScheduleTemplateService) GetByDoctor(doctorID uuid.UUID) ([]models.ScheduleTemplate, error) {
	return s.repo.GetByDoctorID(doctorID)
}

// Update applies partial changes to a template, re-checking overlap when the
// window or day moves.
func (s *ScheduleTemplateService) Update(ctx context.Context, id uuid.UUID, req *UpdateScheduleTemplateRequest) (*models.ScheduleTemplate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	template, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.DayOfWeek != nil {
		template.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		template.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		template.EndTime = *req.EndTime
	}
	if req.ShiftLabel != nil {
		if !req.ShiftLabel.IsValid() {
			return nil, apperrors.NewValidationError("shift_label", "must be one of morning, afternoon, full")
		}
		template.ShiftLabel = *req.ShiftLabel
	}
	if req.SlotDurationMinutes != nil {
		if *req.SlotDurationMinutes < 15 || *req.SlotDurationMinutes > 120 {
			return nil, apperrors.NewValidationError("slot_duration_minutes", "must be between 15 and 120")
		}
		template.SlotDurationMinutes = *req.SlotDurationMinutes
	}

	window, err := parseWindow(template.StartTime, template.EndTime)
	if err != nil {
		return nil, err
	}
	template.StartTime = scheduling.FormatTimeOfDay(window.Start)
	template.EndTime = scheduling.FormatTimeOfDay(window.End)

	overlap, err := s.repo.CheckOverlap(template.DoctorID, template.DayOfWeek, window.Start, window.End, &template.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check template overlap: %w", err)
	}
	if overlap {
		return nil, apperrors.ErrTemplateOverlap
	}

	if err := s.repo.Update(template); err != nil {
		return nil, fmt.Errorf("failed to update schedule template: %w", err)
	}

	s.cache.InvalidateDoctor(ctx, template.DoctorID)
	return template, nil
}

// Delete removes a schedule template
func (s *ScheduleTemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	template, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete schedule template: %w", err)
	}
	s.cache.InvalidateDoctor(ctx, template.DoctorID)
	return nil
}

// parseWindow parses and sanity-checks a start/end time pair.
func parseWindow(startTime, endTime string) (scheduling.Interval, error) {
	start, err := scheduling.ParseTimeOfDay(startTime)
	if err != nil {
		return scheduling.Interval{}, apperrors.NewValidationError("start_time", "is not a valid time of day")
	}
	end, err := scheduling.ParseTimeOfDay(endTime)
	if err != nil {
		return scheduling.Interval{}, apperrors.NewValidationError("end_time", "is not a valid time of day")
	}
	window := scheduling.NewInterval(start, end)
	if !window.IsValid() {
		return scheduling.Interval{}, apperrors.ErrInvalidTimeRange
	}
	return window, nil
}
