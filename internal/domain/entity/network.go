package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Network groups accounts and establishments under one clinic operator.
// Deleting a network cascades to everything it owns.
type Network struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Accounts       []Account       `gorm:"foreignKey:NetworkID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"accounts,omitempty"`
	Establishments []Establishment `gorm:"foreignKey:NetworkID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"establishments,omitempty"`
}

func (Network) TableName() string {
	return "networks"
}
