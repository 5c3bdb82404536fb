//go:build integration
// +build integration

package repository

import (
	"testing"

	"clinic-portal-backend/internal/database/models"
	"clinic-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ScheduleTemplateRepositoryTestSuite tests the ScheduleTemplateRepository
type ScheduleTemplateRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ScheduleTemplateRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ScheduleTemplateRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewScheduleTemplateRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ScheduleTemplateRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ScheduleTemplateRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ScheduleTemplateRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createDoctor persists a specialty and doctor for templates
func (suite *ScheduleTemplateRepositoryTestSuite) createDoctor() *models.Doctor {
	specialty := suite.factories.Specialty.Create()
	err := NewSpecialtyRepository(suite.baseTestSuite.DB).Create(specialty)
	suite.NoError(err)

	doctor := suite.factories.Doctor.WithSpecialty(specialty.ID)
	err = NewDoctorRepository(suite.baseTestSuite.DB).Create(doctor)
	suite.NoError(err)

	return doctor
}

// TestCreate tests creating a new schedule template
func (suite *ScheduleTemplateRepositoryTestSuite) TestCreate() {
	doctor := suite.createDoctor()

	template := suite.factories.ScheduleTemplate.WithDoctor(doctor.ID)
	err := suite.repo.Create(template)

	suite.NoError(err)
	suite.NotZero(template.CreatedAt)
}

// TestGetByDoctorAndDay tests filtering templates by weekday
func (suite *ScheduleTemplateRepositoryTestSuite) TestGetByDoctorAndDay() {
	doctor := suite.createDoctor()

	monday := suite.factories.ScheduleTemplate.WithDoctor(doctor.ID)
	suite.NoError(suite.repo.Create(monday))

	wednesday := suite.factories.ScheduleTemplate.WithWindow(3, "08:00:00", "12:00:00")
	wednesday.DoctorID = doctor.ID
	suite.NoError(suite.repo.Create(wednesday))

	templates, err := suite.repo.GetByDoctorAndDay(doctor.ID, 1)

	suite.NoError(err)
	suite.Len(templates, 1)
	suite.Equal(1, templates[0].DayOfWeek)
}

// TestCheckOverlap tests weekday window overlap detection
func (suite *ScheduleTemplateRepositoryTestSuite) TestCheckOverlap() {
	doctor := suite.createDoctor()

	// Monday 08:00-12:00
	existing := suite.factories.ScheduleTemplate.WithDoctor(doctor.ID)
	suite.NoError(suite.repo.Create(existing))

	// Monday 11:00-15:00 overlaps
	overlaps, err := suite.repo.CheckOverlap(doctor.ID, 1, 660, 900, nil)
	suite.NoError(err)
	suite.True(overlaps)

	// Monday 12:00-16:00 starts exactly at the old end (half-open, no overlap)
	overlaps, err = suite.repo.CheckOverlap(doctor.ID, 1, 720, 960, nil)
	suite.NoError(err)
	suite.False(overlaps)

	// Same window on another weekday does not overlap
	overlaps, err = suite.repo.CheckOverlap(doctor.ID, 2, 480, 720, nil)
	suite.NoError(err)
	suite.False(overlaps)

	// The existing template does not overlap itself when excluded
	overlaps, err = suite.repo.CheckOverlap(doctor.ID, 1, 660, 900, &existing.ID)
	suite.NoError(err)
	suite.False(overlaps)
}

// TestDelete tests deleting a template
func (suite *ScheduleTemplateRepositoryTestSuite) TestDelete() {
	doctor := suite.createDoctor()

	template := suite.factories.ScheduleTemplate.WithDoctor(doctor.ID)
	suite.NoError(suite.repo.Create(template))

	err := suite.repo.Delete(template.ID)
	suite.NoError(err)

	templates, err := suite.repo.GetByDoctorID(doctor.ID)
	suite.NoError(err)
	suite.Empty(templates)
}

// Run the test suite
func TestScheduleTemplateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleTemplateRepositoryTestSuite))
}
