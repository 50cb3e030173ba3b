package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Handbook is a clinical record entry attached to an account.
type Handbook struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content,omitempty"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Handbook) TableName() string {
	return "handbooks"
}
