package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinic-portal-backend/internal/cache"
	"clinic-portal-backend/internal/database/models"
	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorService provides doctor-related business logic
type DoctorService struct {
	repo          repository.DoctorRepositoryInterface
	specialtyRepo repository.SpecialtyRepositoryInterface
	validator     *validator.Validate
	cache         *cache.AvailabilityCache
}

// Ensure DoctorService implements DoctorServiceInterface
var _ DoctorServiceInterface = (*DoctorService)(nil)

// NewDoctorService creates a new DoctorService
func NewDoctorService(repo repository.DoctorRepositoryInterface, specialtyRepo repository.SpecialtyRepositoryInterface, validator *validator.Validate, availabilityCache *cache.AvailabilityCache) *DoctorService {
	return &DoctorService{
		repo:          repo,
		specialtyRepo: specialtyRepo,
		validator:     validator,
		cache:         availabilityCache,
	}
}

// CreateDoctorRequest represents a request to create a doctor
type CreateDoctorRequest struct {
	FirstName   string    `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string    `json:"last_name" validate:"required,min=1,max=100"`
	Email       string    `json:"email" validate:"omitempty,email"`
	LicenseNo   string    `json:"license_no" validate:"max=40"`
	SpecialtyID uuid.UUID `json:"specialty_id" validate:"required"`
}

// UpdateDoctorRequest represents a request to update a doctor
type UpdateDoctorRequest struct {
	FirstName   *string    `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName    *string    `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email       *string    `json:"email,omitempty" validate:"omitempty,email"`
	LicenseNo   *string    `json:"license_no,omitempty" validate:"omitempty,max=40"`
	SpecialtyID *uuid.UUID `json:"specialty_id,omitempty"`
	Active      *bool      `json:"active,omitempty"`
}

// Create creates a new doctor
func (s *DoctorService) Create(req *CreateDoctorRequest) (*models.Doctor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.specialtyRepo.GetByID(req.SpecialtyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSpecialtyNotFound
		}
		return nil, fmt.Errorf("failed to check specialty: %w", err)
	}

	if email := strings.TrimSpace(req.Email); email != "" {
		if _, err := s.repo.GetByEmail(email); err == nil {
			return nil, apperrors.ErrDoctorExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check doctor email: %w", err)
		}
	}

	doctor := &models.Doctor{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.TrimSpace(req.Email),
		LicenseNo:   strings.TrimSpace(req.LicenseNo),
		SpecialtyID: req.SpecialtyID,
		Active:      true,
	}
	if err := s.repo.Create(doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return doctor, nil
}

// GetByID retrieves a doctor by ID
func (s *DoctorService) GetByID(id uuid.UUID) (*models.Doctor, error) {
	doctor, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return doctor, nil
}

// GetAll retrieves doctors with pagination
func (s *DoctorService) GetAll(limit, offset int) ([]models.Doctor, int64, error) {
	return s.repo.GetAll(limit, offset)
}

// GetBySpecialty retrieves doctors for one specialty with pagination
func (s *DoctorService) GetBySpecialty(specialtyID uuid.UUID, limit, offset int) ([]models.Doctor, int64, error) {
	return s.repo.GetBySpecialtyID(specialtyID, limit, offset)
}

// Update applies partial changes to a doctor
func (s *DoctorService) Update(ctx context.Context, id uuid.UUID, req *UpdateDoctorRequest) (*models.Doctor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	doctor, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		doctor.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		doctor.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		doctor.Email = strings.TrimSpace(*req.Email)
	}
	if req.LicenseNo != nil {
		doctor.LicenseNo = strings.TrimSpace(*req.LicenseNo)
	}
	if req.SpecialtyID != nil {
		if _, err := s.specialtyRepo.GetByID(*req.SpecialtyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSpecialtyNotFound
			}
			return nil, fmt.Errorf("failed to check specialty: %w", err)
		}
		doctor.SpecialtyID = *req.SpecialtyID
	}
	if req.Active != nil {
		doctor.Active = *req.Active
	}

	if err := s.repo.Update(doctor); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}

	// A deactivated doctor stops offering slots immediately.
	s.cache.InvalidateDoctor(ctx, doctor.ID)
	return doctor, nil
}

// Deactivate soft-deletes a doctor: the record stays, no new bookings.
func (s *DoctorService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Deactivate(id); err != nil {
		return fmt.Errorf("failed to deactivate doctor: %w", err)
	}
	s.cache.InvalidateDoctor(ctx, id)
	return nil
}

// Delete removes a doctor permanently. Doctors with any appointment history
// must be deactivated instead so past bookings keep their reference.
func (s *DoctorService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	has, err := s.repo.HasAppointments(id)
	if err != nil {
		return fmt.Errorf("failed to check doctor appointments: %w", err)
	}
	if has {
		return apperrors.ErrDoctorHasAppointments
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	s.cache.InvalidateDoctor(ctx, id)
	return nil
}
