package models_test

import (
	"testing"

	"clinic-portal-backend/internal/database/models"
	"clinic-portal-backend/internal/scheduling"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStateTransitions(t *testing.T) {
	testCases := []struct {
		name    string
		from    models.AppointmentState
		to      models.AppointmentState
		allowed bool
	}{
		{name: "Scheduled to confirmed", from: models.AppointmentStateScheduled, to: models.AppointmentStateConfirmed, allowed: true},
		{name: "Scheduled to cancelled", from: models.AppointmentStateScheduled, to: models.AppointmentStateCancelled, allowed: true},
		{name: "Scheduled to completed skips confirmation", from: models.AppointmentStateScheduled, to: models.AppointmentStateCompleted, allowed: false},
		{name: "Confirmed to completed", from: models.AppointmentStateConfirmed, to: models.AppointmentStateCompleted, allowed: true},
		{name: "Confirmed to cancelled", from: models.AppointmentStateConfirmed, to: models.AppointmentStateCancelled, allowed: true},
		{name: "Confirmed back to scheduled", from: models.AppointmentStateConfirmed, to: models.AppointmentStateScheduled, allowed: false},
		{name: "Completed is terminal", from: models.AppointmentStateCompleted, to: models.AppointmentStateCancelled, allowed: false},
		{name: "Cancelled is terminal", from: models.AppointmentStateCancelled, to: models.AppointmentStateScheduled, allowed: false},
		{name: "Cancelled cannot be re-confirmed", from: models.AppointmentStateCancelled, to: models.AppointmentStateConfirmed, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestAppointmentStateFlags(t *testing.T) {
	assert.True(t, models.AppointmentStateScheduled.IsActive())
	assert.True(t, models.AppointmentStateConfirmed.IsActive())
	assert.False(t, models.AppointmentStateCompleted.IsActive())
	assert.False(t, models.AppointmentStateCancelled.IsActive())

	assert.True(t, models.AppointmentStateCompleted.IsTerminal())
	assert.True(t, models.AppointmentStateCancelled.IsTerminal())
	assert.False(t, models.AppointmentStateScheduled.IsTerminal())

	assert.False(t, models.AppointmentState("pending").IsValid())
	assert.True(t, models.AppointmentStateScheduled.IsValid())
}

func TestAppointmentInterval(t *testing.T) {
	a := &models.Appointment{StartMinute: 10 * 60, EndMinute: 10*60 + 45}
	assert.Equal(t, scheduling.NewInterval(10*60, 10*60+45), a.Interval())

	// A missing end defaults to 30 minutes before comparison.
	open := &models.Appointment{StartMinute: 10 * 60}
	assert.Equal(t, scheduling.NewInterval(10*60, 10*60+30), open.Interval())
}
