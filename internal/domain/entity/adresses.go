package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Adresses is a postal address owned by exactly one account. The spelling is
// kept as the API exposes it.
type Adresses struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Zip       string    `gorm:"type:varchar(16);not null" json:"zip"`
	Address   string    `gorm:"type:varchar(255);not null" json:"address"`
	Number    string    `gorm:"type:varchar(16);not null" json:"number"`
	District  string    `gorm:"type:varchar(255);not null" json:"district"`
	City      string    `gorm:"type:varchar(255);not null" json:"city"`
	State     string    `gorm:"type:varchar(64);not null" json:"state"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Account Account `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"account,omitempty"`
}

func (Adresses) TableName() string {
	return "adresses"
}
