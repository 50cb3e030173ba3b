package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scheduling is an appointment slot at an establishment. It references up to
// three accounts in distinct roles: the patient being seen, the professional
// attending, and the clerk who booked the slot.
type Scheduling struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date            time.Time  `gorm:"type:date;not null;index" json:"date"`
	StartTime       string     `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime         string     `gorm:"type:varchar(5);not null" json:"end_time"`
	PatientID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProfessionalID  *uuid.UUID `gorm:"type:uuid;index" json:"professional_id,omitempty"`
	ClerkID         *uuid.UUID `gorm:"type:uuid;index" json:"clerk_id,omitempty"`
	EstablishmentID uuid.UUID  `gorm:"type:uuid;not null;index" json:"establishment_id"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Establishment Establishment `gorm:"foreignKey:EstablishmentID" json:"establishment,omitempty"`
}

func (Scheduling) TableName() string {
	return "schedulings"
}
