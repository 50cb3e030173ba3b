package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Establishment is a physical clinic location that belongs to one network.
type Establishment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(32)" json:"phone,omitempty"`
	NetworkID uuid.UUID `gorm:"type:uuid;not null;index" json:"network_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Network     Network      `gorm:"foreignKey:NetworkID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"network,omitempty"`
	Schedulings []Scheduling `gorm:"foreignKey:EstablishmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"schedulings,omitempty"`
}

func (Establishment) TableName() string {
	return "establishments"
}
