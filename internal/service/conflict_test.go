package service_test

import (
	"testing"
	"time"

	"clinic-portal-backend/internal/database/models"
	"clinic-portal-backend/internal/mocks"
	"clinic-portal-backend/internal/scheduling"
	"clinic-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ConflictCheckerTestSuite defines the test suite for ConflictChecker
type ConflictCheckerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockBookings *mocks.MockBookingSource
	doctorID     uuid.UUID
	date         time.Time
}

// SetupTest sets up the test suite
func (suite *ConflictCheckerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBookings = mocks.NewMockBookingSource(suite.ctrl)
	suite.doctorID = uuid.New()
	suite.date = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
}

// TearDownTest cleans up after each test
func (suite *ConflictCheckerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func appointmentAt(start, end string) models.Appointment {
	startMin, _ := scheduling.ParseTimeOfDay(start)
	endMin, _ := scheduling.ParseTimeOfDay(end)
	return models.Appointment{
		StartTime:   start,
		EndTime:     end,
		StartMinute: startMin,
		EndMinute:   endMin,
		State:       models.AppointmentStateScheduled,
	}
}

func (suite *ConflictCheckerTestSuite) TestBufferedCandidateConflicts() {
	checker := service.NewConflictChecker(suite.mockBookings, 5)
	existing := appointmentAt("10:30:00", "11:00:00")
	suite.mockBookings.EXPECT().GetActiveByDoctorAndDate(suite.doctorID, suite.date).Return([]models.Appointment{existing}, nil)

	// Back-to-back with a 5-minute buffer is still a conflict.
	candidate := scheduling.NewInterval(10*60, 10*60+30)
	overlap, err := checker.HasOverlap(suite.doctorID, suite.date, candidate, nil)

	suite.NoError(err)
	suite.True(overlap)
}

func (suite *ConflictCheckerTestSuite) TestZeroBufferBackToBackIsFree() {
	checker := service.NewConflictChecker(suite.mockBookings, 0)
	existing := appointmentAt("10:30:00", "11:00:00")
	suite.mockBookings.EXPECT().GetActiveByDoctorAndDate(suite.doctorID, suite.date).Return([]models.Appointment{existing}, nil)

	candidate := scheduling.NewInterval(10*60, 10*60+30)
	overlap, err := checker.HasOverlap(suite.doctorID, suite.date, candidate, nil)

	suite.NoError(err)
	suite.False(overlap)
}

func (suite *ConflictCheckerTestSuite) TestGapWiderThanBufferIsFree() {
	checker := service.NewConflictChecker(suite.mockBookings, 5)
	existing := appointmentAt("10:40:00", "11:10:00")
	suite.mockBookings.EXPECT().GetActiveByDoctorAndDate(suite.doctorID, suite.date).Return([]models.Appointment{existing}, nil)

	// [10:00, 10:30) + 5 min buffer ends at 10:35, before 10:40.
	candidate := scheduling.NewInterval(10*60, 10*60+30)
	overlap, err := checker.HasOverlap(suite.doctorID, suite.date, candidate, nil)

	suite.NoError(err)
	suite.False(overlap)
}

func (suite *ConflictCheckerTestSuite) TestExcludeIDSkipsOwnBooking() {
	checker := service.NewConflictChecker(suite.mockBookings, 5)
	existing := appointmentAt("10:00:00", "10:30:00")
	existing.ID = uuid.New()
	suite.mockBookings.EXPECT().GetActiveByDoctorAndDate(suite.doctorID, suite.date).Return([]models.Appointment{existing}, nil).Times(2)

	candidate := scheduling.NewInterval(10*60, 10*60+30)

	overlap, err := checker.HasOverlap(suite.doctorID, suite.date, candidate, nil)
	suite.NoError(err)
	suite.True(overlap)

	overlap, err = checker.HasOverlap(suite.doctorID, suite.date, candidate, &existing.ID)
	suite.NoError(err)
	suite.False(overlap)
}

func (suite *ConflictCheckerTestSuite) TestEmptyDayIsFree() {
	checker := service.NewConflictChecker(suite.mockBookings, 5)
	suite.mockBookings.EXPECT().GetActiveByDoctorAndDate(suite.doctorID, suite.date).Return([]models.Appointment{}, nil)

	overlap, err := checker.HasOverlap(suite.doctorID, suite.date, scheduling.NewInterval(540, 570), nil)

	suite.NoError(err)
	suite.False(overlap)
}

func TestConflictCheckerTestSuite(t *testing.T) {
	suite.Run(t, new(ConflictCheckerTestSuite))
}
