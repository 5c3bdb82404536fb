package models

import (
	"time"

	"github.com/google/uuid"

	"clinic-portal-backend/internal/scheduling"
)

// Contract represents an employment period for a doctor. A doctor has no
// legal appointments outside an active contract's date range. Active
// contracts for the same doctor must not overlap (nil EndDate = open-ended).
type Contract struct {
	BaseModel
	DoctorID     uuid.UUID    `json:"doctor_id" gorm:"type:uuid;not null;index" validate:"required"`
	ContractType ContractType `json:"contract_type" gorm:"type:varchar(50);not null" validate:"required"`
	StartDate    time.Time    `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate      *time.Time   `json:"end_date,omitempty" gorm:"type:date"`
	Active       bool         `json:"active" gorm:"default:true"`
	Notes        string       `json:"notes" gorm:"type:text"`

	// Relationships
	Doctor Doctor `json:"doctor,omitempty" gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Contract
func (Contract) TableName() string {
	return "contracts"
}

// DateRange returns the contract validity window as a half-open date range
func (c *Contract) DateRange() scheduling.DateRange {
	return scheduling.DateRange{Start: c.StartDate, End: c.EndDate}
}

// CoversDate reports whether the contract authorizes bookings on the given date
func (c *Contract) CoversDate(date time.Time) bool {
	return c.Active && c.DateRange().ContainsDate(date)
}
