package handlers

import (
	"errors"
	"net/http"

	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContractHandler handles HTTP requests for contracts
type ContractHandler struct {
	service service.ContractServiceInterface
}

// NewContractHandler creates a new contract handler
func NewContractHandler(service service.ContractServiceInterface) *ContractHandler {
	return &ContractHandler{service: service}
}

// CreateContract handles POST /api/v1/contracts
// @Summary Create a new contract
// @Description Create a contract for a doctor; active contracts for the same doctor must not overlap
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract body service.CreateContractRequest true "Contract data"
// @Success 201 {object} models.Contract "Successfully created contract"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Doctor not found"
// @Failure 409 {object} map[string]interface{} "Contract overlaps an existing one"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req service.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contract, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDoctorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrContractOverlap):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contract", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, contract)
}

// GetContract handles GET /api/v1/contracts/:id
// @Summary Get contract by ID
// @Description Get a specific contract by its UUID
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID (UUID)"
// @Success 200 {object} models.Contract "Successfully retrieved contract"
// @Failure 400 {object} map[string]interface{} "Invalid contract ID"
// @Failure 404 {object} map[string]interface{} "Contract not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract ID: invalid UUID format"})
		return
	}

	contract, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrContractNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contract", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contract)
}

// GetContractsByDoctor handles GET /api/v1/doctors/:id/contracts
// @Summary Get contracts for a doctor
// @Description Get all contracts for a doctor with pagination
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved contracts"
// @Failure 400 {object} map[string]interface{} "Invalid doctor ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /doctors/{id}/contracts [get]
func (h *ContractHandler) GetContractsByDoctor(c *gin.Context) {
	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	page, pageSize, limit, offset := parsePagination(c)

	contracts, total, err := h.service.GetByDoctor(doctorID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contracts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listResponse("contracts", contracts, total, page, pageSize))
}

// UpdateContract handles PUT /api/v1/contracts/:id
// @Summary Update contract
// @Description Apply partial changes to an existing contract; overlap is re-checked when the date range moves
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID (UUID)"
// @Param contract body service.UpdateContractRequest true "Updated contract data"
// @Success 200 {object} models.Contract "Successfully updated contract"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Contract not found"
// @Failure 409 {object} map[string]interface{} "Contract overlaps an existing one"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /contracts/{id} [put]
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract ID"})
		return
	}

	var req service.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contract, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrContractNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrContractOverlap):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contract", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, contract)
}

// DeleteContract handles DELETE /api/v1/contracts/:id
// @Summary Delete contract
// @Description Delete a contract by ID
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID (UUID)"
// @Success 204 "Successfully deleted contract"
// @Failure 400 {object} map[string]interface{} "Invalid contract ID"
// @Failure 404 {object} map[string]interface{} "Contract not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /contracts/{id} [delete]
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrContractNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contract", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
