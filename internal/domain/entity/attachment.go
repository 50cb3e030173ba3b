package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attachment is a stored file (exam result, document scan) owned by an account.
type Attachment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FileName  string    `gorm:"type:varchar(255);not null" json:"file_name"`
	MimeType  string    `gorm:"type:varchar(128)" json:"mime_type,omitempty"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Attachment) TableName() string {
	return "attachments"
}
