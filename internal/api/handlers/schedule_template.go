package handlers

import (
	"errors"
	"net/http"

	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleTemplateHandler handles HTTP requests for schedule templates
type ScheduleTemplateHandler struct {
	service service.ScheduleTemplateServiceInterface
}

// NewScheduleTemplateHandler creates a new schedule template handler
func NewScheduleTemplateHandler(service service.ScheduleTemplateServiceInterface) *ScheduleTemplateHandler {
	return &ScheduleTemplateHandler{service: service}
}

// CreateScheduleTemplate handles POST /api/v1/schedule-templates
// @Summary Create a new schedule template
// @Description Create a weekly working-hours block for a doctor; templates for the same doctor and weekday must not overlap
// @Tags schedule-templates
// @Accept json
// @Produce json
// @Param template body service.CreateScheduleTemplateRequest true "Schedule template data"
// @Success 201 {object} models.ScheduleTemplate "Successfully created schedule template"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Doctor not found"
// @Failure 409 {object} map[string]interface{} "Template overlaps an existing one"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule-templates [post]
func (h *ScheduleTemplateHandler) CreateScheduleTemplate(c *gin.Context) {
	var req service.CreateScheduleTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	template, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDoctorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrTemplateOverlap):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule template", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, template)
}

// GetScheduleTemplate handles GET /api/v1/schedule-templates/:id
// @Summary Get schedule template by ID
// @Description Get a specific schedule template by its UUID
// @Tags schedule-templates
// @Accept json
// @Produce json
// @Param id path string true "Schedule template ID (UUID)"
// @Success 200 {object} models.ScheduleTemplate "Successfully retrieved schedule template"
// @Failure 400 {object} map[string]interface{} "Invalid schedule template ID"
// @Failure 404 {object} map[string]interface{} "Schedule template not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule-templates/{id} [get]
func (h *ScheduleTemplateHandler) GetScheduleTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule template ID: invalid UUID format"})
		return
	}

	template, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrScheduleTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get schedule template", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, template)
}

// GetTemplatesByDoctor handles GET /api/v1/doctors/:id/schedule-templates
// @Summary Get schedule templates for a doctor
// @Description Get all weekly working-hours blocks for a doctor, ordered by day and start time
// @Tags schedule-templates
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved schedule templates"
// @Failure 400 {object} map[string]interface{} "Invalid doctor ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /doctors/{id}/schedule-templates [get]
func (h *ScheduleTemplateHandler) GetTemplatesByDoctor(c *gin.Context) {
	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	templates, err := h.service.GetByDoctor(doctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get schedule templates", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule_templates": templates})
}

// UpdateScheduleTemplate handles PUT /api/v1/schedule-templates/:id
// @Summary Update schedule template
// @Description Apply partial changes to an existing schedule template; overlap is re-checked when the window moves
// @Tags schedule-templates
// @Accept json
// @Produce json
// @Param id path string true "Schedule template ID (UUID)"
// @Param template body service.UpdateScheduleTemplateRequest true "Updated schedule template data"
// @Success 200 {object} models.ScheduleTemplate "Successfully updated schedule template"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Schedule template not found"
// @Failure 409 {object} map[string]interface{} "Template overlaps an existing one"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule-templates/{id} [put]
func (h *ScheduleTemplateHandler) UpdateScheduleTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule template ID"})
		return
	}

	var req service.UpdateScheduleTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	template, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrScheduleTemplateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrTemplateOverlap):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule template", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, template)
}

// DeleteScheduleTemplate handles DELETE /api/v1/schedule-templates/:id
// @Summary Delete schedule template
// @Description Delete a schedule template by ID
// @Tags schedule-templates
// @Accept json
// @Produce json
// @Param id path string true "Schedule template ID (UUID)"
// @Success 204 "Successfully deleted schedule template"
// @Failure 400 {object} map[string]interface{} "Invalid schedule template ID"
// @Failure 404 {object} map[string]interface{} "Schedule template not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /schedule-templates/{id} [delete]
func (h *ScheduleTemplateHandler) DeleteScheduleTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule template ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrScheduleTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule template", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
