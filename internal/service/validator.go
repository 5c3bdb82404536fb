package service

import (
	"fmt"
	"time"

	"clinic-portal-backend/internal/config"
	"clinic-portal-backend/internal/database/models"
	"clinic-portal-backend/internal/scheduling"

	"github.com/google/uuid"
)

// BookingRequest is a candidate appointment to be validated. Date carries the
// calendar date; StartTime and EndTime are "HH:MM" or "HH:MM:SS" strings.
type BookingRequest struct {
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time"`
}

// ValidationResult collects every business-rule violation found for a
// request. Valid is true only when Violations is empty.
type ValidationResult struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

func (r *ValidationResult) add(violation string) {
	r.Valid = false
	r.Violations = append(r.Violations, violation)
}

// AppointmentValidator runs the complete rule set for a booking request:
// date sanity, duration bounds, contract coverage, working-hours
// containment, collision with existing bookings, and patient frequency
// limits. All checks run even after one fails so the caller sees the full
// list of violations in a single pass. Infrastructure failures are returned
// as errors, never folded into the violation list.
type AppointmentValidator struct {
	schedule  ScheduleSource
	bookings  BookingSource
	conflicts OverlapChecker
	policy    config.SchedulingPolicy

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

// NewAppointmentValidator creates a new AppointmentValidator
func NewAppointmentValidator(schedule ScheduleSource, bookings BookingSource, conflicts OverlapChecker, policy config.SchedulingPolicy) *AppointmentValidator {
	return &AppointmentValidator{
		schedule:  schedule,
		bookings:  bookings,
		conflicts: conflicts,
		policy:    policy,
		now:       time.Now,
	}
}

// WithClock overrides the validator's time source. Tests use it to pin
// "today"; production code never calls it.
func (v *AppointmentValidator) WithClock(now func() time.Time) *AppointmentValidator {
	v.now = now
	return v
}

// Validate checks the request against every booking rule and returns the
// accumulated violations. excludeID, when set, exempts that appointment from
// the collision and frequency checks so reschedules do not trip over
// themselves.
func (v *AppointmentValidator) Validate(req *BookingRequest, excludeID *uuid.UUID) (*ValidationResult, error) {
	result := &ValidationResult{Valid: true, Violations: []string{}}

	today := scheduling.Midnight(v.now())
	date := scheduling.Midnight(req.Date)

	if date.Before(today) {
		result.add("appointment date cannot be in the past")
	}
	horizon := today.AddDate(0, v.policy.MaxAdvanceBookingMonths, 0)
	if date.After(horizon) {
		result.add(fmt.Sprintf("appointment date cannot be more than %d months ahead", v.policy.MaxAdvanceBookingMonths))
	}
	if scheduling.IsSunday(date) {
		result.add("appointments cannot be booked on Sundays")
	}

	interval, timesOK := v.checkTimes(req, result)

	covered, err := v.schedule.HasActiveContract(req.DoctorID, date)
	if err != nil {
		return nil, err
	}
	if !covered {
		result.add("doctor has no active contract on this date")
	}

	if timesOK {
		withinHours, err := v.checkWorkingHours(req.DoctorID, date, interval)
		if err != nil {
			return nil, err
		}
		if !withinHours {
			result.add("requested time is outside the doctor's working hours")
		}

		overlap, err := v.conflicts.HasOverlap(req.DoctorID, date, interval, excludeID)
		if err != nil {
			return nil, err
		}
		if overlap {
			result.add("requested time overlaps an existing appointment")
		}
	}

	if err := v.checkFrequency(req.PatientID, date, excludeID, result); err != nil {
		return nil, err
	}

	return result, nil
}

// checkTimes parses the requested times and validates duration bounds. It
// returns the parsed interval and whether one could be parsed at all; a
// duration out of bounds is recorded as a violation but still yields a usable
// interval, so the positional checks that follow can report their own
// findings in the same pass.
func (v *AppointmentValidator) checkTimes(req *BookingRequest, result *ValidationResult) (scheduling.Interval, bool) {
	start, err := scheduling.ParseTimeOfDay(req.StartTime)
	if err != nil {
		result.add("start_time is not a valid time of day")
		return scheduling.Interval{}, false
	}

	end := start + models.DefaultAppointmentMinutes
	if req.EndTime != "" {
		end, err = scheduling.ParseTimeOfDay(req.EndTime)
		if err != nil {
			result.add("end_time is not a valid time of day")
			return scheduling.Interval{}, false
		}
	}

	if end <= start {
		result.add("end time must be after start time")
		return scheduling.Interval{}, false
	}

	interval := scheduling.NewInterval(start, end)
	duration := interval.Duration()
	if duration < v.policy.MinAppointmentMinutes || duration > v.policy.MaxAppointmentMinutes {
		result.add(fmt.Sprintf("appointment duration must be between %d and %d minutes",
			v.policy.MinAppointmentMinutes, v.policy.MaxAppointmentMinutes))
	}
	return interval, true
}

// checkWorkingHours reports whether the interval fits entirely inside one of
// the doctor's schedule templates for that weekday.
func (v *AppointmentValidator) checkWorkingHours(doctorID uuid.UUID, date time.Time, interval scheduling.Interval) (bool, error) {
	templates, err := v.schedule.TemplatesFor(doctorID, scheduling.DayOfWeek(date))
	if err != nil {
		return false, err
	}
	for _, template := range templates {
		window, err := template.Window()
		if err != nil {
			return false, fmt.Errorf("schedule template %s has invalid times: %w", template.ID, err)
		}
		if window.Contains(interval) {
			return true, nil
		}
	}
	return false, nil
}

func (v *AppointmentValidator) checkFrequency(patientID uuid.UUID, date time.Time, excludeID *uuid.UUID, result *ValidationResult) error {
	daily, err := v.bookings.CountActiveByPatientOnDate(patientID, date, excludeID)
	if err != nil {
		return fmt.Errorf("failed to count patient appointments for the day: %w", err)
	}
	if daily >= int64(v.policy.MaxPatientPerDay) {
		result.add(fmt.Sprintf("patient already has %d appointments on this date", v.policy.MaxPatientPerDay))
	}

	monthly, err := v.bookings.CountActiveByPatientInMonth(patientID, date.Year(), date.Month(), excludeID)
	if err != nil {
		return fmt.Errorf("failed to count patient appointments for the month: %w", err)
	}
	if monthly >= int64(v.policy.MaxPatientPerMonth) {
		result.add(fmt.Sprintf("patient already has %d appointments in this month", v.policy.MaxPatientPerMonth))
	}
	return nil
}
