package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"clinic-portal-backend/internal/config"
	"clinic-portal-backend/internal/database"
	"clinic-portal-backend/internal/database/models"
	"clinic-portal-backend/internal/scheduling"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type SpecialtyData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type DoctorData struct {
	FirstName     string `yaml:"first_name"`
	LastName      string `yaml:"last_name"`
	Email         string `yaml:"email"`
	LicenseNo     string `yaml:"license_no,omitempty"`
	SpecialtyName string `yaml:"specialty_name"`
	Active        *bool  `yaml:"active,omitempty"`
}

type PatientData struct {
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	Email      string `yaml:"email,omitempty"`
	Phone      string `yaml:"phone,omitempty"`
	DocumentNo string `yaml:"document_no,omitempty"`
}

type ContractData struct {
	DoctorEmail  string  `yaml:"doctor_email"`
	ContractType string  `yaml:"contract_type"`
	StartDate    string  `yaml:"start_date"`
	EndDate      *string `yaml:"end_date,omitempty"`
	Notes        string  `yaml:"notes,omitempty"`
}

type ScheduleTemplateData struct {
	DoctorEmail         string `yaml:"doctor_email"`
	DayOfWeek           int    `yaml:"day_of_week"`
	StartTime           string `yaml:"start_time"`
	EndTime             string `yaml:"end_time"`
	ShiftLabel          string `yaml:"shift_label"`
	SlotDurationMinutes int    `yaml:"slot_duration_minutes,omitempty"`
}

// File structures
type SpecialtiesFile struct {
	Specialties []SpecialtyData `yaml:"specialties"`
}

type DoctorsFile struct {
	Doctors []DoctorData `yaml:"doctors"`
}

type PatientsFile struct {
	Patients []PatientData `yaml:"patients"`
}

type ContractsFile struct {
	Contracts []ContractData `yaml:"contracts"`
}

type ScheduleTemplatesFile struct {
	ScheduleTemplates []ScheduleTemplateData `yaml:"schedule_templates"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var specialtiesFile SpecialtiesFile
	if err := loadYAML(filepath.Join(dataDir, "specialties.yaml"), &specialtiesFile); err != nil {
		return fmt.Errorf("failed to load specialties: %w", err)
	}
	var doctorsFile DoctorsFile
	if err := loadYAML(filepath.Join(dataDir, "doctors.yaml"), &doctorsFile); err != nil {
		return fmt.Errorf("failed to load doctors: %w", err)
	}
	var patientsFile PatientsFile
	if err := loadYAML(filepath.Join(dataDir, "patients.yaml"), &patientsFile); err != nil {
		return fmt.Errorf("failed to load patients: %w", err)
	}
	var contractsFile ContractsFile
	if err := loadYAML(filepath.Join(dataDir, "contracts.yaml"), &contractsFile); err != nil {
		return fmt.Errorf("failed to load contracts: %w", err)
	}
	var templatesFile ScheduleTemplatesFile
	if err := loadYAML(filepath.Join(dataDir, "schedule_templates.yaml"), &templatesFile); err != nil {
		return fmt.Errorf("failed to load schedule templates: %w", err)
	}

	if err := seedSpecialties(db, specialtiesFile.Specialties); err != nil {
		return err
	}
	if err := seedDoctors(db, doctorsFile.Doctors); err != nil {
		return err
	}
	if err := seedPatients(db, patientsFile.Patients); err != nil {
		return err
	}
	if err := seedContracts(db, contractsFile.Contracts); err != nil {
		return err
	}
	return seedScheduleTemplates(db, templatesFile.ScheduleTemplates)
}

func loadYAML(path string, target interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, target)
}

func seedSpecialties(db *gorm.DB, specialties []SpecialtyData) error {
	for _, data := range specialties {
		var existing models.Specialty
		if err := db.Where("name = ?", data.Name).First(&existing).Error; err == nil {
			continue
		}
		specialty := models.Specialty{
			Name:        data.Name,
			Description: data.Description,
		}
		if err := db.Create(&specialty).Error; err != nil {
			return fmt.Errorf("failed to create specialty %q: %w", data.Name, err)
		}
	}
	log.Printf("Seeded %d specialties", len(specialties))
	return nil
}

func seedDoctors(db *gorm.DB, doctors []DoctorData) error {
	for _, data := range doctors {
		var existing models.Doctor
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			continue
		}

		var specialty models.Specialty
		if err := db.Where("name = ?", data.SpecialtyName).First(&specialty).Error; err != nil {
			return fmt.Errorf("specialty %q for doctor %q not found: %w", data.SpecialtyName, data.Email, err)
		}

		active := true
		if data.Active != nil {
			active = *data.Active
		}
		doctor := models.Doctor{
			FirstName:   data.FirstName,
			LastName:    data.LastName,
			Email:       data.Email,
			LicenseNo:   data.LicenseNo,
			SpecialtyID: specialty.ID,
			Active:      active,
		}
		if err := db.Create(&doctor).Error; err != nil {
			return fmt.Errorf("failed to create doctor %q: %w", data.Email, err)
		}
	}
	log.Printf("Seeded %d doctors", len(doctors))
	return nil
}

func seedPatients(db *gorm.DB, patients []PatientData) error {
	for _, data := range patients {
		var existing models.Patient
		if err := db.Where("document_no = ? AND document_no <> ''", data.DocumentNo).First(&existing).Error; err == nil {
			continue
		}
		patient := models.Patient{
			FirstName:  data.FirstName,
			LastName:   data.LastName,
			Email:      data.Email,
			Phone:      data.Phone,
			DocumentNo: data.DocumentNo,
			Active:     true,
		}
		if err := db.Create(&patient).Error; err != nil {
			return fmt.Errorf("failed to create patient %q %q: %w", data.FirstName, data.LastName, err)
		}
	}
	log.Printf("Seeded %d patients", len(patients))
	return nil
}

func seedContracts(db *gorm.DB, contracts []ContractData) error {
	for _, data := range contracts {
		var doctor models.Doctor
		if err := db.Where("email = ?", data.DoctorEmail).First(&doctor).Error; err != nil {
			return fmt.Errorf("doctor %q for contract not found: %w", data.DoctorEmail, err)
		}

		startDate, err := time.Parse("2006-01-02", data.StartDate)
		if err != nil {
			return fmt.Errorf("invalid start_date %q: %w", data.StartDate, err)
		}
		var endDate *time.Time
		if data.EndDate != nil {
			parsed, err := time.Parse("2006-01-02", *data.EndDate)
			if err != nil {
				return fmt.Errorf("invalid end_date %q: %w", *data.EndDate, err)
			}
			endDate = &parsed
		}

		var existing models.Contract
		if err := db.Where("doctor_id = ? AND start_date = ?", doctor.ID, startDate).First(&existing).Error; err == nil {
			continue
		}

		contract := models.Contract{
			DoctorID:     doctor.ID,
			ContractType: models.ContractType(data.ContractType),
			StartDate:    startDate,
			EndDate:      endDate,
			Active:       true,
			Notes:        data.Notes,
		}
		if err := db.Create(&contract).Error; err != nil {
			return fmt.Errorf("failed to create contract for %q: %w", data.DoctorEmail, err)
		}
	}
	log.Printf("Seeded %d contracts", len(contracts))
	return nil
}

func seedScheduleTemplates(db *gorm.DB, templates []ScheduleTemplateData) error {
	for _, data := range templates {
		var doctor models.Doctor
		if err := db.Where("email = ?", data.DoctorEmail).First(&doctor).Error; err != nil {
			return fmt.Errorf("doctor %q for schedule template not found: %w", data.DoctorEmail, err)
		}

		start, err := scheduling.ParseTimeOfDay(data.StartTime)
		if err != nil {
			return fmt.Errorf("invalid start_time %q: %w", data.StartTime, err)
		}
		end, err := scheduling.ParseTimeOfDay(data.EndTime)
		if err != nil {
			return fmt.Errorf("invalid end_time %q: %w", data.EndTime, err)
		}

		var existing models.ScheduleTemplate
		if err := db.Where("doctor_id = ? AND day_of_week = ? AND start_time = ?",
			doctor.ID, data.DayOfWeek, scheduling.FormatTimeOfDay(start)).First(&existing).Error; err == nil {
			continue
		}

		slotDuration := data.SlotDurationMinutes
		if slotDuration == 0 {
			slotDuration = models.DefaultAppointmentMinutes
		}
		template := models.ScheduleTemplate{
			DoctorID:            doctor.ID,
			DayOfWeek:           data.DayOfWeek,
			StartTime:           scheduling.FormatTimeOfDay(start),
			EndTime:             scheduling.FormatTimeOfDay(end),
			ShiftLabel:          models.ShiftLabel(data.ShiftLabel),
			SlotDurationMinutes: slotDuration,
		}
		if err := db.Create(&template).Error; err != nil {
			return fmt.Errorf("failed to create schedule template for %q: %w", data.DoctorEmail, err)
		}
	}
	log.Printf("Seeded %d schedule templates", len(templates))
	return nil
}
