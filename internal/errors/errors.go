package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this doctor"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents an invariant violation detected at write time,
// i.e. a race the validator could not see. It is distinct from a
// validation-time overlap, which is reported as a business violation.
type ConflictError struct {
	Entity  string
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrDoctorNotFound           = &NotFoundError{Entity: "doctor"}
	ErrPatientNotFound          = &NotFoundError{Entity: "patient"}
	ErrSpecialtyNotFound        = &NotFoundError{Entity: "specialty"}
	ErrContractNotFound         = &NotFoundError{Entity: "contract"}
	ErrScheduleTemplateNotFound = &NotFoundError{Entity: "schedule template"}
	ErrAppointmentNotFound      = &NotFoundError{Entity: "appointment"}
)

// Already Exists Errors
var (
	ErrSpecialtyExists = &AlreadyExistsError{Entity: "specialty", Context: "with this name"}
	ErrDoctorExists    = &AlreadyExistsError{Entity: "doctor", Context: "with this email"}
)

// Conflict Errors (write-time races)
var (
	ErrBookingConflict = &ConflictError{Entity: "appointment", Message: "time slot was booked concurrently"}
)

// Business Logic Errors
var (
	ErrContractOverlap         = errors.New("active contract overlaps an existing contract for this doctor")
	ErrTemplateOverlap         = errors.New("schedule template overlaps an existing template for this doctor and day")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrInvalidStateTransition  = errors.New("invalid appointment state transition")
	ErrDoctorInactive          = errors.New("doctor is deactivated and cannot take new appointments")
	ErrAppointmentTerminal     = errors.New("appointment is in a terminal state and cannot be modified")
	ErrDoctorHasAppointments   = errors.New("doctor has appointments and cannot be deleted; deactivate instead")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, message string) error {
	return &ConflictError{Entity: entity, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
