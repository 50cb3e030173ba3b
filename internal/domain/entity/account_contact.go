package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact kinds stored in account_contacts.kind.
const (
	ContactKindPhone = "phone"
	ContactKindEmail = "email"
)

// AccountContact is a reachable contact point (phone, secondary email) for an
// account.
type AccountContact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Kind      string    `gorm:"type:varchar(32);not null" json:"kind"`
	Value     string    `gorm:"type:varchar(255);not null" json:"value"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AccountContact) TableName() string {
	return "account_contacts"
}
