package handlers

import (
	"net/http"

	"clinic-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditHandler handles HTTP requests for the audit trail
type AuditHandler struct {
	service service.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(service service.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{service: service}
}

// ListAuditEvents handles GET /api/v1/audit-events
// @Summary List audit events
// @Description Get audit events newest first, optionally filtered by entity and entity ID
// @Tags audit
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param entity query string false "Filter by entity type (e.g. appointment)"
// @Param entity_id query string false "Filter by entity ID (UUID); requires entity"
// @Success 200 {object} map[string]interface{} "Successfully retrieved audit events"
// @Failure 400 {object} map[string]interface{} "Invalid entity ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /audit-events [get]
func (h *AuditHandler) ListAuditEvents(c *gin.Context) {
	page, pageSize, limit, offset := parsePagination(c)

	entity := c.Query("entity")
	entityIDStr := c.Query("entity_id")
	if entity != "" && entityIDStr != "" {
		entityID, err := uuid.Parse(entityIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entity ID: invalid UUID format"})
			return
		}
		events, total, err := h.service.GetByEntity(entity, entityID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get audit events", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, listResponse("audit_events", events, total, page, pageSize))
		return
	}

	events, total, err := h.service.GetAll(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get audit events", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listResponse("audit_events", events, total, page, pageSize))
}
