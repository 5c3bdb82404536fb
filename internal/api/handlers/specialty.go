package handlers

import (
	"errors"
	"net/http"

	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SpecialtyHandler handles HTTP requests for specialties
type SpecialtyHandler struct {
	service service.SpecialtyServiceInterface
}

// NewSpecialtyHandler creates a new specialty handler
func NewSpecialtyHandler(service service.SpecialtyServiceInterface) *SpecialtyHandler {
	return &SpecialtyHandler{service: service}
}

// CreateSpecialty handles POST /api/v1/specialties
// @Summary Create a new specialty
// @Description Create a medical specialty with a unique name
// @Tags specialties
// @Accept json
// @Produce json
// @Param specialty body service.CreateSpecialtyRequest true "Specialty data"
// @Success 201 {object} models.Specialty "Successfully created specialty"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Specialty already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /specialties [post]
func (h *SpecialtyHandler) CreateSpecialty(c *gin.Context) {
	var req service.CreateSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	specialty, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSpecialtyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create specialty", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, specialty)
}

// GetSpecialty handles GET /api/v1/specialties/:id
// @Summary Get specialty by ID
// @Description Get a specific specialty by its UUID
// @Tags specialties
// @Accept json
// @Produce json
// @Param id path string true "Specialty ID (UUID)"
// @Success 200 {object} models.Specialty "Successfully retrieved specialty"
// @Failure 400 {object} map[string]interface{} "Invalid specialty ID"
// @Failure 404 {object} map[string]interface{} "Specialty not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /specialties/{id} [get]
func (h *SpecialtyHandler) GetSpecialty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid specialty ID: invalid UUID format"})
		return
	}

	specialty, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSpecialtyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get specialty", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, specialty)
}

// ListSpecialties handles GET /api/v1/specialties
// @Summary List specialties
// @Description Get all specialties with pagination
// @Tags specialties
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved specialties"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /specialties [get]
func (h *SpecialtyHandler) ListSpecialties(c *gin.Context) {
	page, pageSize, limit, offset := parsePagination(c)

	specialties, total, err := h.service.GetAll(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get specialties", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listResponse("specialties", specialties, total, page, pageSize))
}

// UpdateSpecialty handles PUT /api/v1/specialties/:id
// @Summary Update specialty
// @Description Apply partial changes to an existing specialty
// @Tags specialties
// @Accept json
// @Produce json
// @Param id path string true "Specialty ID (UUID)"
// @Param specialty body service.UpdateSpecialtyRequest true "Updated specialty data"
// @Success 200 {object} models.Specialty "Successfully updated specialty"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Specialty not found"
// @Failure 409 {object} map[string]interface{} "Specialty name already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /specialties/{id} [put]
func (h *SpecialtyHandler) UpdateSpecialty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid specialty ID"})
		return
	}

	var req service.UpdateSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	specialty, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSpecialtyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrSpecialtyExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update specialty", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, specialty)
}

// DeleteSpecialty handles DELETE /api/v1/specialties/:id
// @Summary Delete specialty
// @Description Delete a specialty by ID
// @Tags specialties
// @Accept json
// @Produce json
// @Param id path string true "Specialty ID (UUID)"
// @Success 204 "Successfully deleted specialty"
// @Failure 400 {object} map[string]interface{} "Invalid specialty ID"
// @Failure 404 {object} map[string]interface{} "Specialty not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /specialties/{id} [delete]
func (h *SpecialtyHandler) DeleteSpecialty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid specialty ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrSpecialtyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete specialty", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
