package service

import (
	"errors"
	"fmt"
	"strings"

	"clinic-portal-backend/internal/database/models"
	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpecialtyService provides specialty-related business logic
type SpecialtyService struct {
	repo      repository.SpecialtyRepositoryInterface
	validator *validator.Validate
}

// Ensure SpecialtyService implements SpecialtyServiceInterface
var _ SpecialtyServiceInterface = (*SpecialtyService)(nil)

// NewSpecialtyService creates a new SpecialtyService
func NewSpecialtyService(repo repository.SpecialtyRepositoryInterface, validator *validator.Validate) *SpecialtyService {
	return &SpecialtyService{
		repo:      repo,
		validator: validator,
	}
}

// CreateSpecialtyRequest represents a request to create a specialty
type CreateSpecialtyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=200"`
}

// UpdateSpecialtyRequest represents a request to update a specialty
type UpdateSpecialtyRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=200"`
}

// Create creates a new specialty. Names are unique.
func (s *SpecialtyService) Create(req *CreateSpecialtyRequest) (*models.Specialty, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	name := strings.TrimSpace(req.Name)
	if _, err := s.repo.GetByName(name); err == nil {
		return nil, apperrors.ErrSpecialtyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check specialty name: %w", err)
	}

	specialty := &models.Specialty{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.Create(specialty); err != nil {
		return nil, fmt.Errorf("failed to create specialty: %w", err)
	}
	return specialty, nil
}

// GetByID retrieves a specialty by ID
func (s *SpecialtyService) GetByID(id uuid.UUID) (*models.Specialty, error) {
	specialty, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSpecialtyNotFound
		}
		return nil, fmt.Errorf("failed to get specialty: %w", err)
	}
	return specialty, nil
}

// GetAll retrieves specialties with pagination
func (s *SpecialtyService) GetAll(limit, offset int) ([]models.Specialty, int64, error) {
	return s.repo.GetAll(limit, offset)
}

// Update applies partial changes to a specialty
func (s *SpecialtyService) Update(id uuid.UUID, req *UpdateSpecialtyRequest) (*models.Specialty, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	specialty, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if existing, err := s.repo.GetByName(name); err == nil && existing.ID != id {
			return nil, apperrors.ErrSpecialtyExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check specialty name: %w", err)
		}
		specialty.Name = name
	}
	if req.Description != nil {
		specialty.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.repo.Update(specialty); err != nil {
		return nil, fmt.Errorf("failed to update specialty: %w", err)
	}
	return specialty, nil
}

// Delete removes a specialty
func (s *SpecialtyService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete specialty: %w", err)
	}
	return nil
}
