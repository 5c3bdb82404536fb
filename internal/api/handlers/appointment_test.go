package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-portal-backend/internal/api/handlers"
	"clinic-portal-backend/internal/database/models"
	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/mocks"
	"clinic-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AppointmentHandlerTestSuite defines the test suite for AppointmentHandler
type AppointmentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAppointmentServiceInterface
	handler     *handlers.AppointmentHandler
	router      *gin.Engine
}

func (suite *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAppointmentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAppointmentHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.POST("/appointments", suite.handler.CreateAppointment)
	suite.router.POST("/appointments/validate", suite.handler.ValidateAppointment)
	suite.router.GET("/appointments/:id", suite.handler.GetAppointment)
	suite.router.PUT("/appointments/:id/reschedule", suite.handler.RescheduleAppointment)
	suite.router.POST("/appointments/:id/confirm", suite.handler.ConfirmAppointment)
	suite.router.POST("/appointments/:id/cancel", suite.handler.CancelAppointment)
}

func (suite *AppointmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func bookingBody() []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"doctor_id":  uuid.New(),
		"patient_id": uuid.New(),
		"date":       "2024-06-10T00:00:00Z",
		"start_time": "09:00",
		"end_time":   "09:30",
	})
	return body
}

func (suite *AppointmentHandlerTestSuite) TestCreateAppointment_Success() {
	appointment := &models.Appointment{
		State:     models.AppointmentStateScheduled,
		StartTime: "09:00:00",
		EndTime:   "09:30:00",
	}
	appointment.ID = uuid.New()

	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(appointment, &service.ValidationResult{Valid: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(bookingBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got models.Appointment
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), appointment.ID, got.ID)
	assert.Equal(suite.T(), models.AppointmentStateScheduled, got.State)
}

func (suite *AppointmentHandlerTestSuite) TestCreateAppointment_RuleViolations() {
	result := &service.ValidationResult{
		Valid:      false,
		Violations: []string{"doctor has no working hours on this day"},
	}
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, result, nil)

	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(bookingBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)

	var got map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), false, got["valid"])
	assert.Len(suite.T(), got["violations"], 1)
}

func (suite *AppointmentHandlerTestSuite) TestCreateAppointment_UnknownDoctor() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, nil, apperrors.ErrDoctorNotFound)

	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(bookingBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AppointmentHandlerTestSuite) TestCreateAppointment_DeactivatedDoctor() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, nil, apperrors.ErrDoctorInactive)

	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(bookingBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "deactivated")
}

func (suite *AppointmentHandlerTestSuite) TestCreateAppointment_ConcurrentConflict() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, nil, apperrors.ErrBookingConflict)

	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(bookingBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "booked concurrently")
}

func (suite *AppointmentHandlerTestSuite) TestCreateAppointment_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AppointmentHandlerTestSuite) TestValidateAppointment_ReturnsViolations() {
	result := &service.ValidationResult{
		Valid: false,
		Violations: []string{
			"patient already has 3 appointments on this date",
			"requested time is outside the doctor's working hours",
		},
	}
	suite.mockService.EXPECT().Validate(gomock.Any()).Return(result, nil)

	req := httptest.NewRequest(http.MethodPost, "/appointments/validate", bytes.NewReader(bookingBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ValidationResult
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), got.Valid)
	assert.Len(suite.T(), got.Violations, 2)
}

func (suite *AppointmentHandlerTestSuite) TestGetAppointment_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/appointments/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid appointment ID")
}

func (suite *AppointmentHandlerTestSuite) TestGetAppointment_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrAppointmentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/appointments/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AppointmentHandlerTestSuite) TestRescheduleAppointment_TerminalRejected() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Reschedule(gomock.Any(), id, gomock.Any(), gomock.Nil()).
		Return(nil, nil, apperrors.ErrAppointmentTerminal)

	body, _ := json.Marshal(map[string]interface{}{
		"date":       "2024-06-11T00:00:00Z",
		"start_time": "10:00",
	})
	req := httptest.NewRequest(http.MethodPut, "/appointments/"+id.String()+"/reschedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "terminal")
}

func (suite *AppointmentHandlerTestSuite) TestRescheduleAppointment_RuleViolations() {
	id := uuid.New()
	result := &service.ValidationResult{
		Valid:      false,
		Violations: []string{"requested time collides with an existing appointment"},
	}
	suite.mockService.EXPECT().
		Reschedule(gomock.Any(), id, gomock.Any(), gomock.Nil()).
		Return(nil, result, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"date":       "2024-06-11T00:00:00Z",
		"start_time": "10:00",
	})
	req := httptest.NewRequest(http.MethodPut, "/appointments/"+id.String()+"/reschedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
}

func (suite *AppointmentHandlerTestSuite) TestConfirmAppointment_InvalidTransition() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Confirm(gomock.Any(), id, gomock.Nil()).
		Return(nil, apperrors.ErrInvalidStateTransition)

	req := httptest.NewRequest(http.MethodPost, "/appointments/"+id.String()+"/confirm", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *AppointmentHandlerTestSuite) TestCancelAppointment_WithReason() {
	id := uuid.New()
	cancelled := &models.Appointment{State: models.AppointmentStateCancelled}
	cancelled.ID = id

	suite.mockService.EXPECT().
		Cancel(gomock.Any(), id, "patient request", gomock.Nil()).
		Return(cancelled, nil)

	body, _ := json.Marshal(map[string]string{"reason": "patient request"})
	req := httptest.NewRequest(http.MethodPost, "/appointments/"+id.String()+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got models.Appointment
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AppointmentStateCancelled, got.State)
}

func (suite *AppointmentHandlerTestSuite) TestCancelAppointment_EmptyBody() {
	id := uuid.New()
	cancelled := &models.Appointment{State: models.AppointmentStateCancelled}
	cancelled.ID = id

	suite.mockService.EXPECT().
		Cancel(gomock.Any(), id, "", gomock.Nil()).
		Return(cancelled, nil)

	req := httptest.NewRequest(http.MethodPost, "/appointments/"+id.String()+"/cancel", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestAppointmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}
