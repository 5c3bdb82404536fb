package handlers

import (
	"errors"
	"net/http"

	"clinic-portal-backend/internal/api/middleware"
	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AppointmentHandler handles HTTP requests for appointments
type AppointmentHandler struct {
	service service.AppointmentServiceInterface
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(service service.AppointmentServiceInterface) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// CancelAppointmentRequest carries the optional cancellation reason.
type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

// CreateAppointment handles POST /api/v1/appointments
// @Summary Book an appointment
// @Description Book an appointment after running every booking rule; rule violations come back as 422 with the full list
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body service.BookingRequest true "Booking data"
// @Success 201 {object} models.Appointment "Successfully booked appointment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Doctor or patient not found"
// @Failure 409 {object} map[string]interface{} "Slot was taken concurrently or the doctor is deactivated"
// @Failure 422 {object} map[string]interface{} "Booking rule violations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req service.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	appointment, result, err := h.service.Create(c.Request.Context(), &req, middleware.GetActorID(c))
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDoctorInactive),
			apperrors.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment", "details": err.Error()})
		}
		return
	}
	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "violations": result.Violations})
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// ValidateAppointment handles POST /api/v1/appointments/validate
// @Summary Validate a booking without persisting it
// @Description Run every booking rule for a prospective appointment and return the violations, if any
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body service.BookingRequest true "Booking data"
// @Success 200 {object} service.ValidationResult "Validation outcome"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /appointments/validate [post]
func (h *AppointmentHandler) ValidateAppointment(c *gin.Context) {
	var req service.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Validate(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate booking", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAppointment handles GET /api/v1/appointments/:id
// @Summary Get appointment by ID
// @Description Get a specific appointment with its doctor and patient loaded
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID (UUID)"
// @Success 200 {object} models.Appointment "Successfully retrieved appointment"
// @Failure 400 {object} map[string]interface{} "Invalid appointment ID"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID: invalid UUID format"})
		return
	}

	appointment, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get appointment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// ListAppointments handles GET /api/v1/appointments
// @Summary List appointments
// @Description Get all appointments with pagination
// @Tags appointments
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved appointments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	page, pageSize, limit, offset := parsePagination(c)

	appointments, total, err := h.service.GetAll(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get appointments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listResponse("appointments", appointments, total, page, pageSize))
}

// GetAppointmentsByDoctor handles GET /api/v1/doctors/:id/appointments
// @Summary Get a doctor's appointments for a date
// @Description Get all appointments of a doctor on a date, every state included, ordered by start time
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID (UUID)"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved appointments"
// @Failure 400 {object} map[string]interface{} "Invalid doctor ID or date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /doctors/{id}/appointments [get]
func (h *AppointmentHandler) GetAppointmentsByDoctor(c *gin.Context) {
	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	date, ok := parseDateQuery(c, "date")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date parameter is required in YYYY-MM-DD format"})
		return
	}

	appointments, err := h.service.GetByDoctorAndDate(doctorID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get appointments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// GetAppointmentsByPatient handles GET /api/v1/patients/:id/appointments
// @Summary Get a patient's appointments in a date range
// @Description Get a patient's appointments between the from and to dates with pagination
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Patient ID (UUID)"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved appointments"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID or range"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /patients/{id}/appointments [get]
func (h *AppointmentHandler) GetAppointmentsByPatient(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return
	}

	from, okFrom := parseDateQuery(c, "from")
	to, okTo := parseDateQuery(c, "to")
	if !okFrom || !okTo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to parameters are required in YYYY-MM-DD format"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not be before from"})
		return
	}

	page, pageSize, limit, offset := parsePagination(c)

	appointments, total, err := h.service.GetByPatient(patientID, from, to, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get appointments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listResponse("appointments", appointments, total, page, pageSize))
}

// RescheduleAppointment handles PUT /api/v1/appointments/:id/reschedule
// @Summary Reschedule an appointment
// @Description Move a scheduled or confirmed appointment to a new slot; the appointment never conflicts with the slot it is leaving
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID (UUID)"
// @Param appointment body service.RescheduleRequest true "New slot"
// @Success 200 {object} models.Appointment "Successfully rescheduled appointment"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Failure 409 {object} map[string]interface{} "Appointment is terminal or the slot was taken"
// @Failure 422 {object} map[string]interface{} "Booking rule violations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /appointments/{id}/reschedule [put]
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var req service.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	appointment, result, err := h.service.Reschedule(c.Request.Context(), id, &req, middleware.GetActorID(c))
	if err != nil {
		h.writeTransitionError(c, err, "Failed to reschedule appointment")
		return
	}
	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "violations": result.Violations})
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// ConfirmAppointment handles POST /api/v1/appointments/:id/confirm
// @Summary Confirm an appointment
// @Description Move a scheduled appointment to confirmed
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID (UUID)"
// @Success 200 {object} models.Appointment "Successfully confirmed appointment"
// @Failure 400 {object} map[string]interface{} "Invalid appointment ID"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Failure 409 {object} map[string]interface{} "Invalid state transition"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /appointments/{id}/confirm [post]
func (h *AppointmentHandler) ConfirmAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	appointment, err := h.service.Confirm(c.Request.Context(), id, middleware.GetActorID(c))
	if err != nil {
		h.writeTransitionError(c, err, "Failed to confirm appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// CompleteAppointment handles POST /api/v1/appointments/:id/complete
// @Summary Complete an appointment
// @Description Move a confirmed appointment to completed
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID (UUID)"
// @Success 200 {object} models.Appointment "Successfully completed appointment"
// @Failure 400 {object} map[string]interface{} "Invalid appointment ID"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Failure 409 {object} map[string]interface{} "Invalid state transition"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /appointments/{id}/complete [post]
func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	appointment, err := h.service.Complete(c.Request.Context(), id, middleware.GetActorID(c))
	if err != nil {
		h.writeTransitionError(c, err, "Failed to complete appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// CancelAppointment handles POST /api/v1/appointments/:id/cancel
// @Summary Cancel an appointment
// @Description Cancel a scheduled or confirmed appointment, freeing its slot
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID (UUID)"
// @Param cancellation body CancelAppointmentRequest false "Cancellation reason"
// @Success 200 {object} models.Appointment "Successfully cancelled appointment"
// @Failure 400 {object} map[string]interface{} "Invalid appointment ID"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Failure 409 {object} map[string]interface{} "Appointment is already terminal"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var req CancelAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	appointment, err := h.service.Cancel(c.Request.Context(), id, req.Reason, middleware.GetActorID(c))
	if err != nil {
		h.writeTransitionError(c, err, "Failed to cancel appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) writeTransitionError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, apperrors.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidStateTransition),
		errors.Is(err, apperrors.ErrAppointmentTerminal),
		apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
	}
}
