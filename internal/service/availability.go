package service

import (
	"fmt"
	"time"

	"clinic-portal-backend/internal/database/models"
	"clinic-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// AvailabilityCatalog answers "when does this doctor work" questions by
// combining contracts and weekly schedule templates. Lookups for unknown
// doctors return empty results rather than errors so callers can treat
// "no such doctor" and "doctor never works then" uniformly.
type AvailabilityCatalog struct {
	templateRepo repository.ScheduleTemplateRepositoryInterface
	contractRepo repository.ContractRepositoryInterface
}

// Ensure AvailabilityCatalog implements ScheduleSource
var _ ScheduleSource = (*AvailabilityCatalog)(nil)

// NewAvailabilityCatalog creates a new AvailabilityCatalog
func NewAvailabilityCatalog(templateRepo repository.ScheduleTemplateRepositoryInterface, contractRepo repository.ContractRepositoryInterface) *AvailabilityCatalog {
	return &AvailabilityCatalog{
		templateRepo: templateRepo,
		contractRepo: contractRepo,
	}
}

// TemplatesFor returns the doctor's schedule templates for a day of week
// (1=Monday..6=Saturday), ordered by start time. Sunday (0) and any value
// outside the working week yield an empty list.
func (c *AvailabilityCatalog) TemplatesFor(doctorID uuid.UUID, dayOfWeek int) ([]models.ScheduleTemplate, error) {
	if dayOfWeek < 1 || dayOfWeek > 6 {
		return nil, nil
	}
	templates, err := c.templateRepo.GetByDoctorAndDay(doctorID, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule templates: %w", err)
	}
	return templates, nil
}

// HasActiveContract reports whether the doctor has a contract covering the
// given date. Unknown doctors simply have no contract.
func (c *AvailabilityCatalog) HasActiveContract(doctorID uuid.UUID, date time.Time) (bool, error) {
	active, err := c.contractRepo.HasActiveOnDate(doctorID, date)
	if err != nil {
		return false, fmt.Errorf("failed to check contract coverage: %w", err)
	}
	return active, nil
}
