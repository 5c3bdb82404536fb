package models

// ContractType defines the kinds of doctor employment contracts
type ContractType string

const (
	ContractTypeTemporary  ContractType = "temporary"
	ContractTypePermanent  ContractType = "permanent"
	ContractTypeSubstitute ContractType = "substitute"
	ContractTypeOnCall     ContractType = "on_call"
)

// ShiftLabel defines the shift a schedule template covers
type ShiftLabel string

const (
	ShiftLabelMorning   ShiftLabel = "morning"
	ShiftLabelAfternoon ShiftLabel = "afternoon"
	ShiftLabelFull      ShiftLabel = "full"
)

// AppointmentState defines the lifecycle states of an appointment
type AppointmentState string

const (
	AppointmentStateScheduled AppointmentState = "scheduled"
	AppointmentStateConfirmed AppointmentState = "confirmed"
	AppointmentStateCompleted AppointmentState = "completed"
	AppointmentStateCancelled AppointmentState = "cancelled"
)

// IsValid checks if the ContractType is valid
func (c ContractType) IsValid() bool {
	switch c {
	case ContractTypeTemporary, ContractTypePermanent, ContractTypeSubstitute, ContractTypeOnCall:
		return true
	}
	return false
}

// IsValid checks if the ShiftLabel is valid
func (s ShiftLabel) IsValid() bool {
	switch s {
	case ShiftLabelMorning, ShiftLabelAfternoon, ShiftLabelFull:
		return true
	}
	return false
}

// IsValid checks if the AppointmentState is valid
func (s AppointmentState) IsValid() bool {
	switch s {
	case AppointmentStateScheduled, AppointmentStateConfirmed, AppointmentStateCompleted, AppointmentStateCancelled:
		return true
	}
	return false
}

// IsActive reports whether the state still occupies the doctor's calendar
func (s AppointmentState) IsActive() bool {
	return s == AppointmentStateScheduled || s == AppointmentStateConfirmed
}

// IsTerminal reports whether the state permits no further transitions
func (s AppointmentState) IsTerminal() bool {
	return s == AppointmentStateCompleted || s == AppointmentStateCancelled
}

// CanTransitionTo reports whether the state machine allows moving to target.
// Allowed moves: scheduled -> confirmed -> completed, and
// scheduled|confirmed -> cancelled. Terminal states permit nothing.
func (s AppointmentState) CanTransitionTo(target AppointmentState) bool {
	switch s {
	case AppointmentStateScheduled:
		return target == AppointmentStateConfirmed || target == AppointmentStateCancelled
	case AppointmentStateConfirmed:
		return target == AppointmentStateCompleted || target == AppointmentStateCancelled
	}
	return false
}

// ActiveAppointmentStates lists the states that block other bookings
func ActiveAppointmentStates() []AppointmentState {
	return []AppointmentState{AppointmentStateScheduled, AppointmentStateConfirmed}
}
