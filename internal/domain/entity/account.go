package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Genre is the value stored in the accounts genre column.
type Genre string

const (
	GenreMasculine Genre = "masc"
	GenreFeminine  Genre = "fem"
	GenreOthers    Genre = "others"
)

// Account represents a person (patient, professional or clerk) inside a network.
// It is the aggregate root for its owned collections: child rows are written and
// tombstoned only through account-rooted operations.
type Account struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName   string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(255);not null" json:"last_name"`
	Email       string    `gorm:"type:varchar(255);index" json:"email,omitempty"`
	Genre       Genre     `gorm:"type:varchar(16);not null;default:'others'" json:"genre"`
	DateOfBirth string    `gorm:"type:varchar(10)" json:"date_of_birth,omitempty"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	NetworkID   uuid.UUID `gorm:"type:uuid;not null;index" json:"network_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Non-null DeletedAt marks the row as logically deleted; GORM then keeps it
	// out of every default query.
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Network         Network          `gorm:"foreignKey:NetworkID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"network,omitempty"`
	Adresses        []Adresses       `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"adresses,omitempty"`
	AccountNetworks []AccountNetwork `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"account_networks,omitempty"`
	Handbooks       []Handbook       `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"handbooks,omitempty"`
	Attachments     []Attachment     `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"attachments,omitempty"`
	AccountContacts []AccountContact `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"account_contacts,omitempty"`

	// Three distinct role edges into Scheduling.
	Patient      []Scheduling `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"patient,omitempty"`
	Professional []Scheduling `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"professional,omitempty"`
	Clerk        []Scheduling `gorm:"foreignKey:ClerkID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"clerk,omitempty"`
}

func (Account) TableName() string {
	return "accounts"
}
