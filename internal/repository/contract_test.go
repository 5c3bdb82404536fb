//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"clinic-portal-backend/internal/database/models"
	"clinic-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ContractRepositoryTestSuite tests the ContractRepository
type ContractRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ContractRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ContractRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewContractRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ContractRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ContractRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ContractRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createDoctor persists a specialty and doctor for contracts
func (suite *ContractRepositoryTestSuite) createDoctor() *models.Doctor {
	specialty := suite.factories.Specialty.Create()
	err := NewSpecialtyRepository(suite.baseTestSuite.DB).Create(specialty)
	suite.NoError(err)

	doctor := suite.factories.Doctor.WithSpecialty(specialty.ID)
	err = NewDoctorRepository(suite.baseTestSuite.DB).Create(doctor)
	suite.NoError(err)

	return doctor
}

// TestCreate tests creating a new contract
func (suite *ContractRepositoryTestSuite) TestCreate() {
	doctor := suite.createDoctor()

	contract := suite.factories.Contract.WithDoctor(doctor.ID)
	err := suite.repo.Create(contract)

	suite.NoError(err)
	suite.NotZero(contract.CreatedAt)
}

// TestGetByIDNotFound tests retrieving a non-existent contract
func (suite *ContractRepositoryTestSuite) TestGetByIDNotFound() {
	contract, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(contract)
}

// TestHasActiveOnDate tests the half-open contract coverage window
func (suite *ContractRepositoryTestSuite) TestHasActiveOnDate() {
	doctor := suite.createDoctor()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	contract := suite.factories.Contract.WithRange(start, &end)
	contract.DoctorID = doctor.ID
	suite.NoError(suite.repo.Create(contract))

	// Covered date
	covered, err := suite.repo.HasActiveOnDate(doctor.ID, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	suite.NoError(err)
	suite.True(covered)

	// End date itself is excluded
	covered, err = suite.repo.HasActiveOnDate(doctor.ID, end)
	suite.NoError(err)
	suite.False(covered)

	// Before the start
	covered, err = suite.repo.HasActiveOnDate(doctor.ID, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
	suite.NoError(err)
	suite.False(covered)
}

// TestHasActiveOnDateIgnoresInactive tests that deactivated contracts do not
// provide coverage
func (suite *ContractRepositoryTestSuite) TestHasActiveOnDateIgnoresInactive() {
	doctor := suite.createDoctor()

	contract := suite.factories.Contract.WithDoctor(doctor.ID)
	contract.Active = false
	suite.NoError(suite.repo.Create(contract))

	covered, err := suite.repo.HasActiveOnDate(doctor.ID, time.Now().UTC())
	suite.NoError(err)
	suite.False(covered)
}

// TestHasActiveOnDateDeactivatedDoctor tests that a deactivated doctor has no
// coverage even with a live contract
func (suite *ContractRepositoryTestSuite) TestHasActiveOnDateDeactivatedDoctor() {
	doctor := suite.createDoctor()

	contract := suite.factories.Contract.WithDoctor(doctor.ID)
	suite.NoError(suite.repo.Create(contract))

	date := time.Now().UTC()
	covered, err := suite.repo.HasActiveOnDate(doctor.ID, date)
	suite.NoError(err)
	suite.True(covered)

	suite.NoError(NewDoctorRepository(suite.baseTestSuite.DB).Deactivate(doctor.ID))

	covered, err = suite.repo.HasActiveOnDate(doctor.ID, date)
	suite.NoError(err)
	suite.False(covered)
}

// TestCheckOverlap tests contract window overlap detection
func (suite *ContractRepositoryTestSuite) TestCheckOverlap() {
	doctor := suite.createDoctor()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	existing := suite.factories.Contract.WithRange(start, &end)
	existing.DoctorID = doctor.ID
	suite.NoError(suite.repo.Create(existing))

	// Window starting inside the existing one overlaps
	newStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	overlaps, err := suite.repo.CheckOverlap(doctor.ID, newStart, nil, nil)
	suite.NoError(err)
	suite.True(overlaps)

	// Window starting exactly at the old end does not (half-open)
	overlaps, err = suite.repo.CheckOverlap(doctor.ID, end, nil, nil)
	suite.NoError(err)
	suite.False(overlaps)

	// The existing contract does not overlap itself when excluded
	overlaps, err = suite.repo.CheckOverlap(doctor.ID, newStart, nil, &existing.ID)
	suite.NoError(err)
	suite.False(overlaps)
}

// TestCheckOverlapOpenEnded tests that an open-ended contract blocks any later
// window
func (suite *ContractRepositoryTestSuite) TestCheckOverlapOpenEnded() {
	doctor := suite.createDoctor()

	openEnded := suite.factories.Contract.WithRange(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	openEnded.DoctorID = doctor.ID
	suite.NoError(suite.repo.Create(openEnded))

	overlaps, err := suite.repo.CheckOverlap(doctor.ID, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil)
	suite.NoError(err)
	suite.True(overlaps)
}

// TestGetByDoctorID tests listing contracts with pagination
func (suite *ContractRepositoryTestSuite) TestGetByDoctorID() {
	doctor := suite.createDoctor()

	for year := 2020; year < 2023; year++ {
		start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, 12, 1, 0, 0, 0, 0, time.UTC)
		contract := suite.factories.Contract.WithRange(start, &end)
		contract.DoctorID = doctor.ID
		suite.NoError(suite.repo.Create(contract))
	}

	contracts, total, err := suite.repo.GetByDoctorID(doctor.ID, 2, 0)
	suite.NoError(err)
	suite.Len(contracts, 2)
	suite.Equal(int64(3), total)
}

// Run the test suite
func TestContractRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContractRepositoryTestSuite))
}
