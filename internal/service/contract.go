package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-portal-backend/internal/cache"
	"clinic-portal-backend/internal/database/models"
	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/repository"
	"clinic-portal-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContractService provides contract-related business logic. Active contracts
// for the same doctor must not overlap in time; an open-ended contract
// (nil end date) blocks every later start.
type ContractService struct {
	repo       repository.ContractRepositoryInterface
	doctorRepo repository.DoctorRepositoryInterface
	validator  *validator.Validate
	cache      *cache.AvailabilityCache
}

// Ensure ContractService implements ContractServiceInterface
var _ ContractServiceInterface = (*ContractService)(nil)

// NewContractService creates a new ContractService
func NewContractService(repo repository.ContractRepositoryInterface, doctorRepo repository.DoctorRepositoryInterface, validator *validator.Validate, availabilityCache *cache.AvailabilityCache) *ContractService {
	return &ContractService{
		repo:       repo,
		doctorRepo: doctorRepo,
		validator:  validator,
		cache:      availabilityCache,
	}
}

// CreateContractRequest represents a request to create a contract
type CreateContractRequest struct {
	DoctorID     uuid.UUID           `json:"doctor_id" validate:"required"`
	ContractType models.ContractType `json:"contract_type" validate:"required"`
	StartDate    time.Time           `json:"start_date" validate:"required"`
	EndDate      *time.Time          `json:"end_date,omitempty"`
	Notes        string              `json:"notes"`
}

// UpdateContractRequest represents a request to update a contract
type UpdateContractRequest struct {
	ContractType *models.ContractType `json:"contract_type,omitempty"`
	StartDate    *time.Time           `json:"start_date,omitempty"`
	EndDate      *time.Time           `json:"end_date,omitempty"`
	Active       *bool                `json:"active,omitempty"`
	Notes        *string              `json:"notes,omitempty"`
}

// Create creates a new contract for a doctor
func (s *ContractService) Create(ctx context.Context, req *CreateContractRequest) (*models.Contract, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.ContractType.IsValid() {
		return nil, apperrors.NewValidationError("contract_type", "must be one of temporary, permanent, substitute, on_call")
	}
	if req.EndDate != nil && !scheduling.Midnight(req.StartDate).Before(scheduling.Midnight(*req.EndDate)) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if _, err := s.doctorRepo.GetByID(req.DoctorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to check doctor: %w", err)
	}

	overlap, err := s.repo.CheckOverlap(req.DoctorID, scheduling.Midnight(req.StartDate), req.EndDate, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check contract overlap: %w", err)
	}
	if overlap {
		return nil, apperrors.ErrContractOverlap
	}

	contract := &models.Contract{
		DoctorID:     req.DoctorID,
		ContractType: req.ContractType,
		StartDate:    scheduling.Midnight(req.StartDate),
		EndDate:      req.EndDate,
		Active:       true,
		Notes:        req.Notes,
	}
	if err := s.repo.Create(contract); err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	s.cache.InvalidateDoctor(ctx, contract.DoctorID)
	return contract, nil
}

// GetByID retrieves a contract by ID
func (s *ContractService) GetByID(id uuid.UUID) (*models.Contract, error) {
	contract, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return contract, nil
}

// GetByDoctor retrieves a doctor's contracts with pagination
func (s *ContractService) GetByDoctor(doctorID uuid.UUID, limit, offset int) ([]models.Contract, int64, error) {
	return s.repo.GetByDoctorID(doctorID, limit, offset)
}

// Update applies partial changes to a contract, re-checking overlap when the
// date range moves.
func (s *ContractService) Update(ctx context.Context, id uuid.UUID, req *UpdateContractRequest) (*models.Contract, error) {
	contract, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.ContractType != nil {
		if !req.ContractType.IsValid() {
			return nil, apperrors.NewValidationError("contract_type", "must be one of temporary, permanent, substitute, on_call")
		}
		contract.ContractType = *req.ContractType
	}
	if req.StartDate != nil {
		contract.StartDate = scheduling.Midnight(*req.StartDate)
	}
	if req.EndDate != nil {
		contract.EndDate = req.EndDate
	}
	if req.Active != nil {
		contract.Active = *req.Active
	}
	if req.Notes != nil {
		contract.Notes = *req.Notes
	}

	if contract.EndDate != nil && !contract.StartDate.Before(scheduling.Midnight(*contract.EndDate)) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if contract.Active {
		overlap, err := s.repo.CheckOverlap(contract.DoctorID, contract.StartDate, contract.EndDate, &contract.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check contract overlap: %w", err)
		}
		if overlap {
			return nil, apperrors.ErrContractOverlap
		}
	}

	if err := s.repo.Update(contract); err != nil {
		return nil, fmt.Errorf("failed to update contract: %w", err)
	}

	s.cache.InvalidateDoctor(ctx, contract.DoctorID)
	return contract, nil
}

// Delete removes a contract
func (s *ContractService) Delete(ctx context.Context, id uuid.UUID) error {
	contract, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}
	s.cache.InvalidateDoctor(ctx, contract.DoctorID)
	return nil
}
