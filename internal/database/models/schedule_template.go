package models

import (
	"github.com/google/uuid"

	"clinic-portal-backend/internal/scheduling"
)

// ScheduleTemplate represents a doctor's recurring weekly availability:
// a day of week (1=Monday .. 6=Saturday, Sunday is never bookable) with a
// time window and a default slot duration. Templates for the same doctor
// and day must not overlap.
type ScheduleTemplate struct {
	BaseModel
	DoctorID            uuid.UUID  `json:"doctor_id" gorm:"type:uuid;not null;index" validate:"required"`
	DayOfWeek           int        `json:"day_of_week" gorm:"not null;index" validate:"required,min=1,max=6"`
	StartTime           string     `json:"start_time" gorm:"size:8;not null" validate:"required"`
	EndTime             string     `json:"end_time" gorm:"size:8;not null" validate:"required"`
	ShiftLabel          ShiftLabel `json:"shift_label" gorm:"type:varchar(50);not null" validate:"required"`
	SlotDurationMinutes int        `json:"slot_duration_minutes" gorm:"default:30" validate:"min=15,max=120"`

	// Relationships
	Doctor Doctor `json:"doctor,omitempty" gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ScheduleTemplate
func (ScheduleTemplate) TableName() string {
	return "schedule_templates"
}

// Window returns the template's time window as a minute interval
func (t *ScheduleTemplate) Window() (scheduling.Interval, error) {
	start, err := scheduling.ParseTimeOfDay(t.StartTime)
	if err != nil {
		return scheduling.Interval{}, err
	}
	end, err := scheduling.ParseTimeOfDay(t.EndTime)
	if err != nil {
		return scheduling.Interval{}, err
	}
	return scheduling.NewInterval(start, end), nil
}
