package models

// Specialty represents a medical specialty doctors are assigned to
type Specialty struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:200" validate:"max=200"`

	// Relationships
	Doctors []Doctor `json:"doctors,omitempty" gorm:"foreignKey:SpecialtyID"`
}

// TableName returns the table name for Specialty
func (Specialty) TableName() string {
	return "specialties"
}
