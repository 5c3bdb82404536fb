package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinic-portal-backend/internal/scheduling"
)

// DefaultAppointmentMinutes is assumed for appointments persisted without an
// end time.
const DefaultAppointmentMinutes = 30

// Appointment is the central booking entity. For a given doctor, no two
// appointments in states scheduled/confirmed may have overlapping buffered
// [start, end) intervals on the same date. StartMinute/EndMinute mirror the
// HH:MM:SS columns so Postgres can enforce the overlap exclusion with an
// int4range constraint.
type Appointment struct {
	BaseModel
	DoctorID           uuid.UUID        `json:"doctor_id" gorm:"type:uuid;not null;index" validate:"required"`
	PatientID          uuid.UUID        `json:"patient_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date               time.Time        `json:"date" gorm:"type:date;not null;index" validate:"required"`
	StartTime          string           `json:"start_time" gorm:"size:8;not null" validate:"required"`
	EndTime            string           `json:"end_time" gorm:"size:8"`
	StartMinute        int              `json:"-" gorm:"not null"`
	EndMinute          int              `json:"-" gorm:"not null"`
	State              AppointmentState `json:"state" gorm:"type:varchar(50);not null;default:'scheduled';index"`
	CancellationReason *string          `json:"cancellation_reason,omitempty" gorm:"size:200"`
	ConfirmedBy        *uuid.UUID       `json:"confirmed_by,omitempty" gorm:"type:uuid"`
	ConfirmedAt        *time.Time       `json:"confirmed_at,omitempty"`
	CancelledBy        *uuid.UUID       `json:"cancelled_by,omitempty" gorm:"type:uuid"`
	CancelledAt        *time.Time       `json:"cancelled_at,omitempty"`

	// Relationships
	Doctor  Doctor  `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	Patient Patient `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
}

// TableName returns the table name for Appointment
func (Appointment) TableName() string {
	return "appointments"
}

// BeforeSave keeps the minute mirror columns in sync with the time strings.
func (a *Appointment) BeforeSave(tx *gorm.DB) error {
	start, err := scheduling.ParseTimeOfDay(a.StartTime)
	if err != nil {
		return err
	}
	a.StartMinute = start

	if a.EndTime == "" {
		a.EndMinute = start + DefaultAppointmentMinutes
		a.EndTime = scheduling.FormatTimeOfDay(a.EndMinute)
		return nil
	}
	end, err := scheduling.ParseTimeOfDay(a.EndTime)
	if err != nil {
		return err
	}
	a.EndMinute = end
	return nil
}

// Interval returns the booked time window in minutes. Appointments stored
// without an end default to DefaultAppointmentMinutes.
func (a *Appointment) Interval() scheduling.Interval {
	start, end := a.StartMinute, a.EndMinute
	if end <= start {
		end = start + DefaultAppointmentMinutes
	}
	return scheduling.NewInterval(start, end)
}
