package handlers

import (
	"errors"
	"net/http"

	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DoctorHandler handles HTTP requests for doctors
type DoctorHandler struct {
	service     service.DoctorServiceInterface
	slotService service.SlotServiceInterface
}

// NewDoctorHandler creates a new doctor handler
func NewDoctorHandler(service service.DoctorServiceInterface, slotService service.SlotServiceInterface) *DoctorHandler {
	return &DoctorHandler{service: service, slotService: slotService}
}

// CreateDoctor handles POST /api/v1/doctors
// @Summary Create a new doctor
// @Description Register a doctor with the provided details
// @Tags doctors
// @Accept json
// @Produce json
// @Param doctor body service.CreateDoctorRequest true "Doctor data"
// @Success 201 {object} models.Doctor "Successfully created doctor"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Specialty not found"
// @Failure 409 {object} map[string]interface{} "Doctor already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /doctors [post]
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req service.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	doctor, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDoctorExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrSpecialtyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, doctor)
}

// GetDoctor handles GET /api/v1/doctors/:id
// @Summary Get doctor by ID
// @Description Get a specific doctor by its UUID
// @Tags doctors
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID (UUID)"
// @Success 200 {object} models.Doctor "Successfully retrieved doctor"
// @Failure 400 {object} map[string]interface{} "Invalid doctor ID"
// @Failure 404 {object} map[string]interface{} "Doctor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /doctors/{id} [get]
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID: invalid UUID format"})
		return
	}

	doctor, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get doctor", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, doctor)
}

// ListDoctors handles GET /api/v1/doctors
// @Summary List doctors
// @Description Get doctors with pagination, optionally filtered by specialty
// @Tags doctors
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param specialty_id query string false "Filter by specialty ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved doctors"
// @Failure 400 {object} map[string]interface{} "Invalid specialty ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /doctors [get]
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	page, pageSize, limit, offset := parsePagination(c)

	if specialtyIDStr := c.Query("specialty_id"); specialtyIDStr != "" {
		specialtyID, err := uuid.Parse(specialtyIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid specialty ID: invalid UUID format"})
			return
		}
		doctors, total, err := h.service.GetBySpecialty(specialtyID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get doctors", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, listResponse("doctors", doctors, total, page, pageSize))
		return
	}

	doctors, total, err := h.service.GetAll(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get doctors", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listResponse("doctors", doctors, total, page, pageSize))
}

// UpdateDoctor handles PUT /api/v1/doctors/:id
// @Summary Update doctor
// @Description Apply partial changes to an existing doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID (UUID)"
// @Param doctor body service.UpdateDoctorRequest true "Updated doctor data"
// @Success 200 {object} models.Doctor "Successfully updated doctor"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Doctor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /doctors/{id} [put]
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	var req service.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	doctor, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update doctor", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, doctor)
}

// DeactivateDoctor handles POST /api/v1/doctors/:id/deactivate
// @Summary Deactivate doctor
// @Description Soft-delete a doctor: record stays, no new bookings or slots
// @Tags doctors
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID (UUID)"
// @Success 204 "Successfully deactivated doctor"
// @Failure 400 {object} map[string]interface{} "Invalid doctor ID"
// @Failure 404 {object} map[string]interface{} "Doctor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /doctors/{id}/deactivate [post]
func (h *DoctorHandler) DeactivateDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate doctor", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteDoctor handles DELETE /api/v1/doctors/:id
// @Summary Delete doctor
// @Description Permanently delete a doctor without appointment history
// @Tags doctors
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID (UUID)"
// @Success 204 "Successfully deleted doctor"
// @Failure 400 {object} map[string]interface{} "Invalid doctor ID"
// @Failure 404 {object} map[string]interface{} "Doctor not found"
// @Failure 409 {object} map[string]interface{} "Doctor has appointments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /doctors/{id} [delete]
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDoctorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDoctorHasAppointments):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor", "details": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDoctorSlots handles GET /api/v1/doctors/:id/slots
// @Summary Get available slots
// @Description Get a doctor's bookable slots for a date, optionally grouped by shift
// @Tags doctors
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID (UUID)"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param group_by query string false "Set to 'shift' to group slots by shift"
// @Success 200 {object} map[string]interface{} "Successfully retrieved slots"
// @Failure 400 {object} map[string]interface{} "Invalid doctor ID or date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /doctors/{id}/slots [get]
func (h *DoctorHandler) GetDoctorSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	date, ok := parseDateQuery(c, "date")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required in YYYY-MM-DD format"})
		return
	}

	if c.Query("group_by") == "shift" {
		shifts, err := h.slotService.AvailableSlotsByShift(c.Request.Context(), id, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get slots", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"doctor_id": id, "date": date.Format("2006-01-02"), "shifts": shifts})
		return
	}

	slots, err := h.slotService.AvailableSlots(c.Request.Context(), id, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get slots", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctor_id": id, "date": date.Format("2006-01-02"), "slots": slots})
}
