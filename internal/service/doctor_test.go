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
	"gorm.io/gorm"
)

// DoctorServiceTestSuite defines the test suite for DoctorService
type DoctorServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockDoctorRepositoryInterface
	mockSpecialtyRepo *mocks.MockSpecialtyRepositoryInterface
	service           *service.DoctorService
	specialtyID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *DoctorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockDoctorRepositoryInterface(suite.ctrl)
	suite.mockSpecialtyRepo = mocks.NewMockSpecialtyRepositoryInterface(suite.ctrl)
	suite.service = service.NewDoctorService(suite.mockRepo, suite.mockSpecialtyRepo, validator.New(), nil)
	suite.specialtyID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *DoctorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DoctorServiceTestSuite) createRequest() *service.CreateDoctorRequest {
	return &service.CreateDoctorRequest{
		FirstName:   "Ana",
		LastName:    "Silva",
		Email:       "ana.silva@clinic.test",
		LicenseNo:   "CRM-12345",
		SpecialtyID: suite.specialtyID,
	}
}

func (suite *DoctorServiceTestSuite) TestCreateSuccess() {
	suite.mockSpecialtyRepo.EXPECT().GetByID(suite.specialtyID).Return(&models.Specialty{Name: "Cardiology"}, nil)
	suite.mockRepo.EXPECT().GetByEmail("ana.silva@clinic.test").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	doctor, err := suite.service.Create(suite.createRequest())

	suite.NoError(err)
	suite.Equal("Ana", doctor.FirstName)
	suite.True(doctor.Active)
}

func (suite *DoctorServiceTestSuite) TestCreateDuplicateEmail() {
	suite.mockSpecialtyRepo.EXPECT().GetByID(suite.specialtyID).Return(&models.Specialty{}, nil)
	suite.mockRepo.EXPECT().GetByEmail("ana.silva@clinic.test").Return(&models.Doctor{}, nil)

	doctor, err := suite.service.Create(suite.createRequest())

	suite.ErrorIs(err, apperrors.ErrDoctorExists)
	suite.Nil(doctor)
}

func (suite *DoctorServiceTestSuite) TestCreateUnknownSpecialty() {
	suite.mockSpecialtyRepo.EXPECT().GetByID(suite.specialtyID).Return(nil, gorm.ErrRecordNotFound)

	doctor, err := suite.service.Create(suite.createRequest())

	suite.ErrorIs(err, apperrors.ErrSpecialtyNotFound)
	suite.Nil(doctor)
}

func (suite *DoctorServiceTestSuite) TestCreateMissingName() {
	req := suite.createRequest()
	req.FirstName = ""

	doctor, err := suite.service.Create(req)

	suite.Error(err)
	suite.Nil(doctor)
}

func (suite *DoctorServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	doctor, err := suite.service.GetByID(id)

	suite.ErrorIs(err, apperrors.ErrDoctorNotFound)
	suite.Nil(doctor)
}

func (suite *DoctorServiceTestSuite) TestDeleteWithAppointmentsRejected() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Doctor{}, nil)
	suite.mockRepo.EXPECT().HasAppointments(id).Return(true, nil)

	err := suite.service.Delete(context.Background(), id)

	suite.ErrorIs(err, apperrors.ErrDoctorHasAppointments)
}

func (suite *DoctorServiceTestSuite) TestDeleteWithoutAppointments() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Doctor{}, nil)
	suite.mockRepo.EXPECT().HasAppointments(id).Return(false, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	err := suite.service.Delete(context.Background(), id)

	suite.NoError(err)
}

func (suite *DoctorServiceTestSuite) TestDeactivate() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Doctor{Active: true}, nil)
	suite.mockRepo.EXPECT().Deactivate(id).Return(nil)

	err := suite.service.Deactivate(context.Background(), id)

	suite.NoError(err)
}

func (suite *DoctorServiceTestSuite) TestUpdatePartial() {
	id := uuid.New()
	existing := &models.Doctor{FirstName: "Ana", LastName: "Silva", Email: "ana.silva@clinic.test", SpecialtyID: suite.specialtyID, Active: true}
	existing.ID = id
	newLast := "Souza"
	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	doctor, err := suite.service.Update(context.Background(), id, &service.UpdateDoctorRequest{LastName: &newLast})

	suite.NoError(err)
	suite.Equal("Souza", doctor.LastName)
	suite.Equal("Ana", doctor.FirstName)
}

func TestDoctorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DoctorServiceTestSuite))
}
