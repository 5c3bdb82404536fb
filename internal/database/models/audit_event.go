package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// AuditEvent records who did what to which entity. Writes are fire-and-forget
// from the caller's perspective; a failed audit write never blocks a booking.
type AuditEvent struct {
	BaseModel
	Event    string          `json:"event" gorm:"size:100;not null;index" validate:"required"`
	Entity   string          `json:"entity" gorm:"size:100;not null;index" validate:"required"`
	EntityID uuid.UUID       `json:"entity_id" gorm:"type:uuid;not null;index" validate:"required"`
	ActorID  *uuid.UUID      `json:"actor_id,omitempty" gorm:"type:uuid;index"`
	Details  json.RawMessage `json:"details,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for AuditEvent
func (AuditEvent) TableName() string {
	return "audit_events"
}
