package models

import (
	"github.com/google/uuid"
)

// Doctor represents a clinic doctor. Doctors are soft-deactivated via the
// Active flag and never hard-deleted while appointments reference them.
type Doctor struct {
	BaseModel
	FirstName   string    `json:"first_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	LastName    string    `json:"last_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email       string    `json:"email" gorm:"size:255;uniqueIndex" validate:"omitempty,email"`
	LicenseNo   string    `json:"license_no" gorm:"size:40"`
	SpecialtyID uuid.UUID `json:"specialty_id" gorm:"type:uuid;not null;index" validate:"required"`
	Active      bool      `json:"active" gorm:"default:true"`

	// Relationships
	Specialty         Specialty          `json:"specialty,omitempty" gorm:"foreignKey:SpecialtyID"`
	Contracts         []Contract         `json:"contracts,omitempty" gorm:"foreignKey:DoctorID"`
	ScheduleTemplates []ScheduleTemplate `json:"schedule_templates,omitempty" gorm:"foreignKey:DoctorID"`
	Appointments      []Appointment      `json:"appointments,omitempty" gorm:"foreignKey:DoctorID"`
}

// TableName returns the table name for Doctor
func (Doctor) TableName() string {
	return "doctors"
}

// FullName returns the doctor's display name
func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
