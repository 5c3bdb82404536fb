package models

// Patient represents a clinic patient
type Patient struct {
	BaseModel
	FirstName  string `json:"first_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	LastName   string `json:"last_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email      string `json:"email" gorm:"size:255" validate:"omitempty,email"`
	Phone      string `json:"phone" gorm:"size:40"`
	DocumentNo string `json:"document_no" gorm:"size:40;index"`
	Active     bool   `json:"active" gorm:"default:true"`

	// Relationships
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:PatientID"`
}

// TableName returns the table name for Patient
func (Patient) TableName() string {
	return "patients"
}
