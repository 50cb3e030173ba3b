package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountNetwork links an account to a network with a role, on top of the
// account's primary network membership.
type AccountNetwork struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id"`
	NetworkID uuid.UUID `gorm:"type:uuid;not null;index" json:"network_id"`
	Role      string    `gorm:"type:varchar(32)" json:"role,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AccountNetwork) TableName() string {
	return "account_networks"
}
