package service

import (
	"fmt"
	"time"

	"clinic-portal-backend/internal/database/models"
	"clinic-portal-backend/internal/scheduling"

	"github.com/google/uuid"
)

// ConflictChecker detects collisions between a candidate time interval and a
// doctor's existing active appointments. The candidate is expanded by the
// configured buffer on both sides before testing, so two bookings closer than
// the buffer count as a conflict even when they do not touch.
type ConflictChecker struct {
	bookings      BookingSource
	bufferMinutes int
}

// Ensure ConflictChecker implements OverlapChecker
var _ OverlapChecker = (*ConflictChecker)(nil)

// NewConflictChecker creates a new ConflictChecker
func NewConflictChecker(bookings BookingSource, bufferMinutes int) *ConflictChecker {
	return &ConflictChecker{
		bookings:      bookings,
		bufferMinutes: bufferMinutes,
	}
}

// HasOverlap reports whether the candidate interval, widened by the buffer,
// overlaps any active appointment of the doctor on the date. excludeID, when
// set, skips that appointment so a booking never conflicts with itself during
// reschedule.
func (c *ConflictChecker) HasOverlap(doctorID uuid.UUID, date time.Time, candidate scheduling.Interval, excludeID *uuid.UUID) (bool, error) {
	existing, err := c.bookings.GetActiveByDoctorAndDate(doctorID, date)
	if err != nil {
		return false, fmt.Errorf("failed to load existing appointments: %w", err)
	}
	return overlapsAny(existing, candidate, c.bufferMinutes, excludeID), nil
}

// overlapsAny is the shared collision test: the candidate widened by the
// buffer against each appointment as stored. Expanding only one side keeps
// the relation symmetric without double-counting the buffer.
func overlapsAny(existing []models.Appointment, candidate scheduling.Interval, buffer int, excludeID *uuid.UUID) bool {
	expanded := candidate.Expand(buffer)
	for _, appointment := range existing {
		if excludeID != nil && appointment.ID == *excludeID {
			continue
		}
		if expanded.Overlaps(appointment.Interval()) {
			return true
		}
	}
	return false
}
