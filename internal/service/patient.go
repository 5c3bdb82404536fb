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

// PatientService provides patient-related business logic
type PatientService struct {
	repo      repository.PatientRepositoryInterface
	validator *validator.Validate
}

// Ensure PatientService implements PatientServiceInterface
var _ PatientServiceInterface = (*PatientService)(nil)

// NewPatientService creates a new PatientService
func NewPatientService(repo repository.PatientRepositoryInterface, validator *validator.Validate) *PatientService {
	return &PatientService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePatientRequest represents a request to create a patient
type CreatePatientRequest struct {
	FirstName  string `json:"first_name" validate:"required,min=1,max=100"`
	LastName   string `json:"last_name" validate:"required,min=1,max=100"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"max=40"`
	DocumentNo string `json:"document_no" validate:"max=40"`
}

// UpdatePatientRequest represents a request to update a patient
type UpdatePatientRequest struct {
	FirstName  *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName   *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	DocumentNo *string `json:"document_no,omitempty" validate:"omitempty,max=40"`
	Active     *bool   `json:"active,omitempty"`
}

// Create creates a new patient
func (s *PatientService) Create(req *CreatePatientRequest) (*models.Patient, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	patient := &models.Patient{
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		DocumentNo: strings.TrimSpace(req.DocumentNo),
		Active:     true,
	}
	if err := s.repo.Create(patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient, nil
}

// GetByID retrieves a patient by ID
func (s *PatientService) GetByID(id uuid.UUID) (*models.Patient, error) {
	patient, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

// GetAll retrieves patients with pagination
func (s *PatientService) GetAll(limit, offset int) ([]models.Patient, int64, error) {
	return s.repo.GetAll(limit, offset)
}

// Search finds patients by name or document number
func (s *PatientService) Search(query string, limit, offset int) ([]models.Patient, int64, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.GetAll(limit, offset)
	}
	return s.repo.Search(query, limit, offset)
}

// Update applies partial changes to a patient
func (s *PatientService) Update(id uuid.UUID, req *UpdatePatientRequest) (*models.Patient, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	patient, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		patient.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		patient.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		patient.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		patient.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.DocumentNo != nil {
		patient.DocumentNo = strings.TrimSpace(*req.DocumentNo)
	}
	if req.Active != nil {
		patient.Active = *req.Active
	}

	if err := s.repo.Update(patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

// Delete removes a patient
func (s *PatientService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}
