package service_test

import (
	"context"
	"testing"
	"time"

	"clinic-portal-backend/internal/config"
	"clinic-portal-backend/internal/database/models"
	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/mocks"
	"clinic-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AppointmentServiceTestSuite defines the test suite for AppointmentService
type AppointmentServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockAppointmentRepo *mocks.MockAppointmentRepositoryInterface
	mockDoctorRepo      *mocks.MockDoctorRepositoryInterface
	mockPatientRepo     *mocks.MockPatientRepositoryInterface
	mockSchedule        *mocks.MockScheduleSource
	mockAuditRepo       *mocks.MockAuditEventRepositoryInterface
	service             *service.AppointmentService
	doctorID            uuid.UUID
	patientID           uuid.UUID
	actorID             uuid.UUID
	monday              time.Time
}

// SetupTest sets up the test suite
func (suite *AppointmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAppointmentRepo = mocks.NewMockAppointmentRepositoryInterface(suite.ctrl)
	suite.mockDoctorRepo = mocks.NewMockDoctorRepositoryInterface(suite.ctrl)
	suite.mockPatientRepo = mocks.NewMockPatientRepositoryInterface(suite.ctrl)
	suite.mockSchedule = mocks.NewMockScheduleSource(suite.ctrl)
	suite.mockAuditRepo = mocks.NewMockAuditEventRepositoryInterface(suite.ctrl)

	policy := config.DefaultSchedulingPolicy()
	checker := service.NewConflictChecker(suite.mockAppointmentRepo, policy.BufferMinutes)
	validator := service.NewAppointmentValidator(suite.mockSchedule, suite.mockAppointmentRepo, checker, policy).
		WithClock(func() time.Time { return fixedNow })

	suite.service = service.NewAppointmentService(
		suite.mockAppointmentRepo,
		suite.mockDoctorRepo,
		suite.mockPatientRepo,
		validator,
		service.NewAuditService(suite.mockAuditRepo),
		nil,
	)
	suite.doctorID = uuid.New()
	suite.patientID = uuid.New()
	suite.actorID = uuid.New()
	suite.monday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
}

// TearDownTest cleans up after each test
func (suite *AppointmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AppointmentServiceTestSuite) expectParticipants() {
	suite.mockDoctorRepo.EXPECT().GetByID(suite.doctorID).Return(&models.Doctor{Active: true}, nil)
	suite.mockPatientRepo.EXPECT().GetByID(suite.patientID).Return(&models.Patient{}, nil)
}

func (suite *AppointmentServiceTestSuite) expectValidationPasses() {
	template := models.ScheduleTemplate{
		DoctorID:            suite.doctorID,
		DayOfWeek:           1,
		StartTime:           "08:00:00",
		EndTime:             "12:00:00",
		ShiftLabel:          models.ShiftLabelMorning,
		SlotDurationMinutes: 30,
	}
	suite.mockSchedule.EXPECT().HasActiveContract(suite.doctorID, gomock.Any()).Return(true, nil)
	suite.mockSchedule.EXPECT().TemplatesFor(suite.doctorID, 1).Return([]models.ScheduleTemplate{template}, nil)
	suite.mockAppointmentRepo.EXPECT().GetActiveByDoctorAndDate(suite.doctorID, gomock.Any()).Return([]models.Appointment{}, nil)
	suite.mockAppointmentRepo.EXPECT().CountActiveByPatientOnDate(suite.patientID, gomock.Any(), gomock.Any()).Return(int64(0), nil)
	suite.mockAppointmentRepo.EXPECT().CountActiveByPatientInMonth(suite.patientID, 2024, time.June, gomock.Any()).Return(int64(0), nil)
}

func (suite *AppointmentServiceTestSuite) bookingRequest() *service.BookingRequest {
	return &service.BookingRequest{
		DoctorID:  suite.doctorID,
		PatientID: suite.patientID,
		Date:      suite.monday,
		StartTime: "09:00",
		EndTime:   "09:30",
	}
}

func (suite *AppointmentServiceTestSuite) TestCreateSuccess() {
	suite.expectParticipants()
	suite.expectValidationPasses()
	suite.mockAppointmentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Appointment) error {
		suite.Equal(models.AppointmentStateScheduled, a.State)
		suite.Equal("09:00", a.StartTime)
		a.ID = uuid.New()
		return nil
	})
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	appointment, result, err := suite.service.Create(context.Background(), suite.bookingRequest(), &suite.actorID)

	suite.NoError(err)
	suite.True(result.Valid)
	suite.NotNil(appointment)
	suite.Equal(suite.doctorID, appointment.DoctorID)
}

func (suite *AppointmentServiceTestSuite) TestCreateWithViolationsDoesNotPersist() {
	suite.expectParticipants()
	// No contract: validation fails, nothing is written.
	suite.mockSchedule.EXPECT().HasActiveContract(suite.doctorID, gomock.Any()).Return(false, nil)
	suite.mockSchedule.EXPECT().TemplatesFor(suite.doctorID, 1).Return(nil, nil)
	suite.mockAppointmentRepo.EXPECT().GetActiveByDoctorAndDate(suite.doctorID, gomock.Any()).Return([]models.Appointment{}, nil)
	suite.mockAppointmentRepo.EXPECT().CountActiveByPatientOnDate(suite.patientID, gomock.Any(), gomock.Any()).Return(int64(0), nil)
	suite.mockAppointmentRepo.EXPECT().CountActiveByPatientInMonth(suite.patientID, 2024, time.June, gomock.Any()).Return(int64(0), nil)

	appointment, result, err := suite.service.Create(context.Background(), suite.bookingRequest(), &suite.actorID)

	suite.NoError(err)
	suite.Nil(appointment)
	suite.False(result.Valid)
	suite.NotEmpty(result.Violations)
}

func (suite *AppointmentServiceTestSuite) TestCreateDeactivatedDoctorRejected() {
	// Soft-deactivation means no new bookings: the request is refused before
	// any rule runs and nothing is written.
	suite.mockDoctorRepo.EXPECT().GetByID(suite.doctorID).Return(&models.Doctor{Active: false}, nil)

	appointment, result, err := suite.service.Create(context.Background(), suite.bookingRequest(), &suite.actorID)

	suite.ErrorIs(err, apperrors.ErrDoctorInactive)
	suite.Nil(appointment)
	suite.Nil(result)
}

func (suite *AppointmentServiceTestSuite) TestCreateUnknownPatient() {
	suite.mockDoctorRepo.EXPECT().GetByID(suite.doctorID).Return(&models.Doctor{Active: true}, nil)
	suite.mockPatientRepo.EXPECT().GetByID(suite.patientID).Return(nil, gorm.ErrRecordNotFound)

	appointment, result, err := suite.service.Create(context.Background(), suite.bookingRequest(), &suite.actorID)

	suite.ErrorIs(err, apperrors.ErrPatientNotFound)
	suite.Nil(appointment)
	suite.Nil(result)
}

func (suite *AppointmentServiceTestSuite) TestCreateSurfacesWriteConflict() {
	suite.expectParticipants()
	suite.expectValidationPasses()
	// Validation passed but another booking won the race at commit time.
	suite.mockAppointmentRepo.EXPECT().Create(gomock.Any()).Return(apperrors.ErrBookingConflict)

	appointment, result, err := suite.service.Create(context.Background(), suite.bookingRequest(), &suite.actorID)

	suite.ErrorIs(err, apperrors.ErrBookingConflict)
	suite.Nil(appointment)
	suite.Nil(result)
}

func (suite *AppointmentServiceTestSuite) scheduled() *models.Appointment {
	appointment := &models.Appointment{
		DoctorID:    suite.doctorID,
		PatientID:   suite.patientID,
		Date:        suite.monday,
		StartTime:   "09:00:00",
		EndTime:     "09:30:00",
		StartMinute: 540,
		EndMinute:   570,
		State:       models.AppointmentStateScheduled,
	}
	appointment.ID = uuid.New()
	return appointment
}

func (suite *AppointmentServiceTestSuite) TestConfirmScheduled() {
	appointment := suite.scheduled()
	suite.mockAppointmentRepo.EXPECT().GetByID(appointment.ID).Return(appointment, nil)
	suite.mockAppointmentRepo.EXPECT().UpdateState(gomock.Any()).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	updated, err := suite.service.Confirm(context.Background(), appointment.ID, &suite.actorID)

	suite.NoError(err)
	suite.Equal(models.AppointmentStateConfirmed, updated.State)
	suite.Equal(&suite.actorID, updated.ConfirmedBy)
	suite.NotNil(updated.ConfirmedAt)
}

func (suite *AppointmentServiceTestSuite) TestCompleteRequiresConfirmed() {
	appointment := suite.scheduled()
	suite.mockAppointmentRepo.EXPECT().GetByID(appointment.ID).Return(appointment, nil)

	_, err := suite.service.Complete(context.Background(), appointment.ID, &suite.actorID)

	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
}

func (suite *AppointmentServiceTestSuite) TestCancelRecordsReason() {
	appointment := suite.scheduled()
	suite.mockAppointmentRepo.EXPECT().GetByID(appointment.ID).Return(appointment, nil)
	suite.mockAppointmentRepo.EXPECT().UpdateState(gomock.Any()).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	updated, err := suite.service.Cancel(context.Background(), appointment.ID, "patient request", &suite.actorID)

	suite.NoError(err)
	suite.Equal(models.AppointmentStateCancelled, updated.State)
	suite.Equal("patient request", *updated.CancellationReason)
	suite.NotNil(updated.CancelledAt)
}

func (suite *AppointmentServiceTestSuite) TestTerminalStateImmutable() {
	appointment := suite.scheduled()
	appointment.State = models.AppointmentStateCancelled
	suite.mockAppointmentRepo.EXPECT().GetByID(appointment.ID).Return(appointment, nil)

	_, err := suite.service.Confirm(context.Background(), appointment.ID, &suite.actorID)

	suite.ErrorIs(err, apperrors.ErrAppointmentTerminal)
}

func (suite *AppointmentServiceTestSuite) TestRescheduleExcludesItself() {
	appointment := suite.scheduled()
	suite.mockAppointmentRepo.EXPECT().GetByID(appointment.ID).Return(appointment, nil)

	template := models.ScheduleTemplate{
		DoctorID:            suite.doctorID,
		DayOfWeek:           1,
		StartTime:           "08:00:00",
		EndTime:             "12:00:00",
		ShiftLabel:          models.ShiftLabelMorning,
		SlotDurationMinutes: 30,
	}
	suite.mockSchedule.EXPECT().HasActiveContract(suite.doctorID, gomock.Any()).Return(true, nil)
	suite.mockSchedule.EXPECT().TemplatesFor(suite.doctorID, 1).Return([]models.ScheduleTemplate{template}, nil)
	// The day's only appointment is the one being moved: moving it to an
	// overlapping time must not conflict with itself.
	suite.mockAppointmentRepo.EXPECT().GetActiveByDoctorAndDate(suite.doctorID, gomock.Any()).Return([]models.Appointment{*appointment}, nil)
	suite.mockAppointmentRepo.EXPECT().CountActiveByPatientOnDate(suite.patientID, gomock.Any(), &appointment.ID).Return(int64(0), nil)
	suite.mockAppointmentRepo.EXPECT().CountActiveByPatientInMonth(suite.patientID, 2024, time.June, &appointment.ID).Return(int64(0), nil)
	suite.mockAppointmentRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil)

	updated, result, err := suite.service.Reschedule(context.Background(), appointment.ID, &service.RescheduleRequest{
		Date:      suite.monday,
		StartTime: "09:15",
		EndTime:   "09:45",
	}, &suite.actorID)

	suite.NoError(err)
	suite.True(result.Valid)
	suite.Equal("09:15", updated.StartTime)
}

func (suite *AppointmentServiceTestSuite) TestRescheduleTerminalRejected() {
	appointment := suite.scheduled()
	appointment.State = models.AppointmentStateCompleted
	suite.mockAppointmentRepo.EXPECT().GetByID(appointment.ID).Return(appointment, nil)

	_, _, err := suite.service.Reschedule(context.Background(), appointment.ID, &service.RescheduleRequest{
		Date:      suite.monday,
		StartTime: "09:15",
	}, &suite.actorID)

	suite.ErrorIs(err, apperrors.ErrAppointmentTerminal)
}

func (suite *AppointmentServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockAppointmentRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(id)

	suite.ErrorIs(err, apperrors.ErrAppointmentNotFound)
}

func (suite *AppointmentServiceTestSuite) TestAuditFailureDoesNotBlockBooking() {
	suite.expectParticipants()
	suite.expectValidationPasses()
	suite.mockAppointmentRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrInvalidDB)

	appointment, result, err := suite.service.Create(context.Background(), suite.bookingRequest(), &suite.actorID)

	suite.NoError(err)
	suite.True(result.Valid)
	suite.NotNil(appointment)
}

func TestAppointmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AppointmentServiceTestSuite))
}
