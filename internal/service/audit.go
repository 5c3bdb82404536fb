package service

import (
	"encoding/json"

	"clinic-portal-backend/internal/database/models"
	"clinic-portal-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Audit event names.
const (
	EventAppointmentCreated     = "appointment.created"
	EventAppointmentConfirmed   = "appointment.confirmed"
	EventAppointmentCancelled   = "appointment.cancelled"
	EventAppointmentCompleted   = "appointment.completed"
	EventAppointmentRescheduled = "appointment.rescheduled"
)

// AuditService records state-changing operations. Recording is best-effort:
// a failed audit write is logged and swallowed so it never fails the
// operation it describes.
type AuditService struct {
	auditRepo repository.AuditEventRepositoryInterface
}

// Ensure AuditService implements AuditServiceInterface
var _ AuditServiceInterface = (*AuditService)(nil)

// NewAuditService creates a new AuditService
func NewAuditService(auditRepo repository.AuditEventRepositoryInterface) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record persists one audit event. details may be nil.
func (s *AuditService) Record(event, entity string, entityID uuid.UUID, actorID *uuid.UUID, details map[string]interface{}) {
	var raw json.RawMessage
	if details != nil {
		encoded, err := json.Marshal(details)
		if err != nil {
			logrus.WithError(err).WithField("event", event).Warn("failed to encode audit details")
		} else {
			raw = encoded
		}
	}

	auditEvent := &models.AuditEvent{
		Event:    event,
		Entity:   entity,
		EntityID: entityID,
		ActorID:  actorID,
		Details:  raw,
	}
	if err := s.auditRepo.Create(auditEvent); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event":     event,
			"entity":    entity,
			"entity_id": entityID,
		}).Error("failed to record audit event")
	}
}

// GetByEntity returns the audit trail for one entity, newest first.
func (s *AuditService) GetByEntity(entity string, entityID uuid.UUID, limit, offset int) ([]models.AuditEvent, int64, error) {
	return s.auditRepo.GetByEntity(entity, entityID, limit, offset)
}

// GetAll returns all audit events, newest first.
func (s *AuditService) GetAll(limit, offset int) ([]models.AuditEvent, int64, error) {
	return s.auditRepo.GetAll(limit, offset)
}
