package repository

import (
	"clinic-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditEventRepository handles database operations for audit events
type AuditEventRepository struct {
	db *gorm.DB
}

// NewAuditEventRepository creates a new audit event repository
func NewAuditEventRepository(db *gorm.DB) *AuditEventRepository {
	return &AuditEventRepository{db: db}
}

// Create creates a new audit event
func (r *AuditEventRepository) Create(event *models.AuditEvent) error {
	return r.db.Create(event).Error
}

// GetByEntity retrieves audit events for an entity, newest first
func (r *AuditEventRepository) GetByEntity(entity string, entityID uuid.UUID, limit, offset int) ([]models.AuditEvent, int64, error) {
	var events []models.AuditEvent
	var total int64

	query := r.db.Model(&models.AuditEvent{}).Where("entity = ? AND entity_id = ?", entity, entityID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

// GetAll retrieves all audit events with pagination, newest first
func (r *AuditEventRepository) GetAll(limit, offset int) ([]models.AuditEvent, int64, error) {
	var events []models.AuditEvent
	var total int64

	if err := r.db.Model(&models.AuditEvent{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}
