package service_test

import (
	"context"
	"testing"

	"clinic-portal-backend/internal/database/models"
	apperrors "clinic-portal-backend/internal/errors"
	"clinic-portal-backend/internal/mocks"
	"clinic-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScheduleTemplateServiceTestSuite defines the test suite for ScheduleTemplateService
type ScheduleTemplateServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockScheduleTemplateRepositoryInterface
	mockDoctorRepo *mocks.MockDoctorRepositoryInterface
	service        *service.ScheduleTemplateService
	doctorID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ScheduleTemplateServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockScheduleTemplateRepositoryInterface(suite.ctrl)
	suite.mockDoctorRepo = mocks.NewMockDoctorRepositoryInterface(suite.ctrl)
	suite.service = service.NewScheduleTemplateService(suite.mockRepo, suite.mockDoctorRepo, validator.New(), nil)
	suite.doctorID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ScheduleTemplateServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleTemplateServiceTestSuite) createRequest() *service.CreateScheduleTemplateRequest {
	return &service.CreateScheduleTemplateRequest{
		DoctorID:   suite.doctorID,
		DayOfWeek:  1,
		StartTime:  "08:00",
		EndTime:    "12:00",
		ShiftLabel: models.ShiftLabelMorning,
	}
}

func (suite *ScheduleTemplateServiceTestSuite) TestCreateSuccess() {
	suite.mockDoctorRepo.EXPECT().GetByID(suite.doctorID).Return(&models.Doctor{}, nil)
	suite.mockRepo.EXPECT().CheckOverlap(suite.doctorID, 1, 480, 720, gomock.Nil()).Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	template, err := suite.service.Create(context.Background(), suite.createRequest())

	suite.NoError(err)
	suite.Equal("08:00:00", template.StartTime)
	suite.Equal("12:00:00", template.EndTime)
	suite.Equal(30, template.SlotDurationMinutes)
}

func (suite *ScheduleTemplateServiceTestSuite) TestCreateOverlapRejected() {
	suite.mockDoctorRepo.EXPECT().GetByID(suite.doctorID).Return(&models.Doctor{}, nil)
	suite.mockRepo.EXPECT().CheckOverlap(suite.doctorID, 1, 480, 720, gomock.Nil()).Return(true, nil)

	template, err := suite.service.Create(context.Background(), suite.createRequest())

	suite.ErrorIs(err, apperrors.ErrTemplateOverlap)
	suite.Nil(template)
}

func (suite *ScheduleTemplateServiceTestSuite) TestCreateInvalidWindow() {
	req := suite.createRequest()
	req.StartTime = "12:00"
	req.EndTime = "08:00"

	template, err := suite.service.Create(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)
	suite.Nil(template)
}

func (suite *ScheduleTemplateServiceTestSuite) TestCreateMalformedTime() {
	req := suite.createRequest()
	req.StartTime = "8 o'clock"

	template, err := suite.service.Create(context.Background(), req)

	suite.True(apperrors.IsValidation(err))
	suite.Nil(template)
}

func (suite *ScheduleTemplateServiceTestSuite) TestCreateSundayRejected() {
	req := suite.createRequest()
	req.DayOfWeek = 0

	template, err := suite.service.Create(context.Background(), req)

	suite.Error(err)
	suite.Nil(template)
}

func (suite *ScheduleTemplateServiceTestSuite) TestCreateSlotDurationOutOfRange() {
	req := suite.createRequest()
	req.SlotDurationMinutes = 10

	template, err := suite.service.Create(context.Background(), req)

	suite.True(apperrors.IsValidation(err))
	suite.Nil(template)
}

func (suite *ScheduleTemplateServiceTestSuite) TestUpdateMoveWindowExcludesSelf() {
	id := uuid.New()
	existing := &models.ScheduleTemplate{
		DoctorID:            suite.doctorID,
		DayOfWeek:           1,
		StartTime:           "08:00:00",
		EndTime:             "12:00:00",
		ShiftLabel:          models.ShiftLabelMorning,
		SlotDurationMinutes: 30,
	}
	existing.ID = id
	newEnd := "13:00"
	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().CheckOverlap(suite.doctorID, 1, 480, 780, &existing.ID).Return(false, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	template, err := suite.service.Update(context.Background(), id, &service.UpdateScheduleTemplateRequest{EndTime: &newEnd})

	suite.NoError(err)
	suite.Equal("13:00:00", template.EndTime)
}

func TestScheduleTemplateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleTemplateServiceTestSuite))
}
