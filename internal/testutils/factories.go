package testutils

import (
	"time"

	"clinic-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// SpecialtyFactory provides methods to create test Specialty data
type SpecialtyFactory struct{}

// NewSpecialtyFactory creates a new SpecialtyFactory
func NewSpecialtyFactory() *SpecialtyFactory {
	return &SpecialtyFactory{}
}

// Create creates a test Specialty with default values
func (f *SpecialtyFactory) Create() *models.Specialty {
	id := uuid.New()
	return &models.Specialty{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique name per instance so the uniqueness constraint never trips
		Name:        "Specialty " + id.String()[:8],
		Description: "A test specialty",
	}
}

// WithName sets a custom name for the specialty
func (f *SpecialtyFactory) WithName(name string) *models.Specialty {
	specialty := f.Create()
	specialty.Name = name
	return specialty
}

// DoctorFactory provides methods to create test Doctor data
type DoctorFactory struct{}

// NewDoctorFactory creates a new DoctorFactory
func NewDoctorFactory() *DoctorFactory {
	return &DoctorFactory{}
}

// Create creates a test Doctor with default values
func (f *DoctorFactory) Create() *models.Doctor {
	id := uuid.New()
	return &models.Doctor{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:   "Ana",
		LastName:    "Silva",
		Email:       "doctor-" + id.String()[:8] + "@clinic.test",
		LicenseNo:   "CRM-" + id.String()[:6],
		SpecialtyID: uuid.New(),
		Active:      true,
	}
}

// WithSpecialty sets the specialty ID for the doctor
func (f *DoctorFactory) WithSpecialty(specialtyID uuid.UUID) *models.Doctor {
	doctor := f.Create()
	doctor.SpecialtyID = specialtyID
	return doctor
}

// WithEmail sets a custom email for the doctor
func (f *DoctorFactory) WithEmail(email string) *models.Doctor {
	doctor := f.Create()
	doctor.Email = email
	return doctor
}

// Inactive creates a deactivated doctor
func (f *DoctorFactory) Inactive() *models.Doctor {
	doctor := f.Create()
	doctor.Active = false
	return doctor
}

// PatientFactory provides methods to create test Patient data
type PatientFactory struct{}

// NewPatientFactory creates a new PatientFactory
func NewPatientFactory() *PatientFactory {
	return &PatientFactory{}
}

// Create creates a test Patient with default values
func (f *PatientFactory) Create() *models.Patient {
	id := uuid.New()
	return &models.Patient{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:  "Joao",
		LastName:   "Souza",
		Email:      "patient-" + id.String()[:8] + "@example.test",
		Phone:      "+55-11-5555-0123",
		DocumentNo: id.String()[:12],
		Active:     true,
	}
}

// WithName sets a custom name for the patient
func (f *PatientFactory) WithName(firstName, lastName string) *models.Patient {
	patient := f.Create()
	patient.FirstName = firstName
	patient.LastName = lastName
	return patient
}

// WithDocument sets a custom document number for the patient
func (f *PatientFactory) WithDocument(documentNo string) *models.Patient {
	patient := f.Create()
	patient.DocumentNo = documentNo
	return patient
}

// ContractFactory provides methods to create test Contract data
type ContractFactory struct{}

// NewContractFactory creates a new ContractFactory
func NewContractFactory() *ContractFactory {
	return &ContractFactory{}
}

// Create creates a test Contract with default values: permanent, open-ended,
// starting a year ago.
func (f *ContractFactory) Create() *models.Contract {
	return &models.Contract{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DoctorID:     uuid.New(),
		ContractType: models.ContractTypePermanent,
		StartDate:    time.Now().UTC().Truncate(24 * time.Hour).AddDate(-1, 0, 0),
		EndDate:      nil,
		Active:       true,
	}
}

// WithDoctor sets the doctor ID for the contract
func (f *ContractFactory) WithDoctor(doctorID uuid.UUID) *models.Contract {
	contract := f.Create()
	contract.DoctorID = doctorID
	return contract
}

// WithRange sets the contract date range
func (f *ContractFactory) WithRange(start time.Time, end *time.Time) *models.Contract {
	contract := f.Create()
	contract.StartDate = start
	contract.EndDate = end
	return contract
}

// Expired creates a contract that ended a month ago
func (f *ContractFactory) Expired() *models.Contract {
	contract := f.Create()
	end := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, -1, 0)
	contract.EndDate = &end
	return contract
}

// ScheduleTemplateFactory provides methods to create test ScheduleTemplate data
type ScheduleTemplateFactory struct{}

// NewScheduleTemplateFactory creates a new ScheduleTemplateFactory
func NewScheduleTemplateFactory() *ScheduleTemplateFactory {
	return &ScheduleTemplateFactory{}
}

// Create creates a test ScheduleTemplate with default values: Monday morning,
// 08:00-12:00 in 30-minute slots.
func (f *ScheduleTemplateFactory) Create() *models.ScheduleTemplate {
	return &models.ScheduleTemplate{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DoctorID:            uuid.New(),
		DayOfWeek:           1,
		StartTime:           "08:00:00",
		EndTime:             "12:00:00",
		ShiftLabel:          models.ShiftLabelMorning,
		SlotDurationMinutes: 30,
	}
}

// WithDoctor sets the doctor ID for the template
func (f *ScheduleTemplateFactory) WithDoctor(doctorID uuid.UUID) *models.ScheduleTemplate {
	template := f.Create()
	template.DoctorID = doctorID
	return template
}

// WithWindow sets the day and time window for the template
func (f *ScheduleTemplateFactory) WithWindow(dayOfWeek int, startTime, endTime string) *models.ScheduleTemplate {
	template := f.Create()
	template.DayOfWeek = dayOfWeek
	template.StartTime = startTime
	template.EndTime = endTime
	return template
}

// Afternoon creates an afternoon template, 14:00-18:00
func (f *ScheduleTemplateFactory) Afternoon() *models.ScheduleTemplate {
	template := f.Create()
	template.StartTime = "14:00:00"
	template.EndTime = "18:00:00"
	template.ShiftLabel = models.ShiftLabelAfternoon
	return template
}

// AppointmentFactory provides methods to create test Appointment data
type AppointmentFactory struct{}

// NewAppointmentFactory creates a new AppointmentFactory
func NewAppointmentFactory() *AppointmentFactory {
	return &AppointmentFactory{}
}

// Create creates a test Appointment with default values: scheduled,
// 09:00-09:30 one week from now.
func (f *AppointmentFactory) Create() *models.Appointment {
	return &models.Appointment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DoctorID:    uuid.New(),
		PatientID:   uuid.New(),
		Date:        time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 7),
		StartTime:   "09:00:00",
		EndTime:     "09:30:00",
		StartMinute: 540,
		EndMinute:   570,
		State:       models.AppointmentStateScheduled,
	}
}

// WithParticipants sets the doctor and patient IDs for the appointment
func (f *AppointmentFactory) WithParticipants(doctorID, patientID uuid.UUID) *models.Appointment {
	appointment := f.Create()
	appointment.DoctorID = doctorID
	appointment.PatientID = patientID
	return appointment
}

// WithSlot sets the date and time window for the appointment
func (f *AppointmentFactory) WithSlot(date time.Time, startTime, endTime string, startMinute, endMinute int) *models.Appointment {
	appointment := f.Create()
	appointment.Date = date
	appointment.StartTime = startTime
	appointment.EndTime = endTime
	appointment.StartMinute = startMinute
	appointment.EndMinute = endMinute
	return appointment
}

// WithState sets the appointment state
func (f *AppointmentFactory) WithState(state models.AppointmentState) *models.Appointment {
	appointment := f.Create()
	appointment.State = state
	return appointment
}

// FactorySet bundles all entity factories for tests
type FactorySet struct {
	Specialty        *SpecialtyFactory
	Doctor           *DoctorFactory
	Patient          *PatientFactory
	Contract         *ContractFactory
	ScheduleTemplate *ScheduleTemplateFactory
	Appointment      *AppointmentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Specialty:        NewSpecialtyFactory(),
		Doctor:           NewDoctorFactory(),
		Patient:          NewPatientFactory(),
		Contract:         NewContractFactory(),
		ScheduleTemplate: NewScheduleTemplateFactory(),
		Appointment:      NewAppointmentFactory(),
	}
}
