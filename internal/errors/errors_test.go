package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "doctor"}
		assert.Equal(t, "doctor not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "doctor"}
		err2 := &NotFoundError{Entity: "doctor"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "doctor"}
		err2 := &NotFoundError{Entity: "patient"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrDoctorNotFound, ErrDoctorNotFound))
		assert.False(t, errors.Is(ErrDoctorNotFound, ErrPatientNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrAppointmentNotFound))
		assert.False(t, IsNotFound(ErrContractOverlap))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "specialty", Context: "with this name"}
		assert.Equal(t, "specialty already exists with this name", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "specialty"}
		assert.Equal(t, "specialty already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrSpecialtyExists))
		assert.False(t, IsAlreadyExists(ErrSpecialtyNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "start_time", Message: "invalid format"}
		assert.Equal(t, "validation error: start_time - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("date", "in the past")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrDoctorNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message with detail", func(t *testing.T) {
		assert.Equal(t, "appointment conflict: time slot was booked concurrently", ErrBookingConflict.Error())
	})

	t.Run("Error message without detail", func(t *testing.T) {
		err := &ConflictError{Entity: "contract"}
		assert.Equal(t, "contract conflict", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		wrapped := NewConflictError("appointment", "race detected")
		assert.True(t, errors.Is(wrapped, &ConflictError{Entity: "appointment"}))
	})

	t.Run("IsConflict helper distinguishes race from validation", func(t *testing.T) {
		assert.True(t, IsConflict(ErrBookingConflict))
		assert.False(t, IsConflict(NewValidationError("", "overlap")))
		assert.False(t, IsValidation(ErrBookingConflict))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewAuthenticationError", func(t *testing.T) {
		err := NewAuthenticationError("token expired")
		assert.Equal(t, "token expired", err.Error())
		assert.True(t, IsAuthentication(err))
	})
}
