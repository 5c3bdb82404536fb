package handlers

import (
	"errors"
	"net/http"

	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PatientHandler handles HTTP requests for patients
type PatientHandler struct {
	service service.PatientServiceInterface
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(service service.PatientServiceInterface) *PatientHandler {
	return &PatientHandler{service: service}
}

// CreatePatient handles POST /api/v1/patients
// @Summary Create a new patient
// @Description Register a patient with the provided details
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body service.CreatePatientRequest true "Patient data"
// @Success 201 {object} models.Patient "Successfully created patient"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /patients [post]
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req service.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	patient, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patient", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// GetPatient handles GET /api/v1/patients/:id
// @Summary Get patient by ID
// @Description Get a specific patient by its UUID
// @Tags patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID (UUID)"
// @Success 200 {object} models.Patient "Successfully retrieved patient"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /patients/{id} [get]
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID: invalid UUID format"})
		return
	}

	patient, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get patient", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, patient)
}

// ListPatients handles GET /api/v1/patients
// @Summary List patients
// @Description Get patients with pagination, optionally filtered by a search query
// @Tags patients
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param q query string false "Search by name or document number"
// @Success 200 {object} map[string]interface{} "Successfully retrieved patients"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /patients [get]
func (h *PatientHandler) ListPatients(c *gin.Context) {
	page, pageSize, limit, offset := parsePagination(c)

	patients, total, err := h.service.Search(c.Query("q"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get patients", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listResponse("patients", patients, total, page, pageSize))
}

// UpdatePatient handles PUT /api/v1/patients/:id
// @Summary Update patient
// @Description Apply partial changes to an existing patient
// @Tags patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID (UUID)"
// @Param patient body service.UpdatePatientRequest true "Updated patient data"
// @Success 200 {object} models.Patient "Successfully updated patient"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /patients/{id} [put]
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return
	}

	var req service.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	patient, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPatientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update patient", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, patient)
}

// DeletePatient handles DELETE /api/v1/patients/:id
// @Summary Delete patient
// @Description Delete a patient by ID
// @Tags patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID (UUID)"
// @Success 204 "Successfully deleted patient"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /patients/{id} [delete]
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete patient", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
