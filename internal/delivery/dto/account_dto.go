package dto

// CreateAccountInput mirrors the createAccountInput GraphQL input object.
type CreateAccountInput struct {
	FirstName   string  `json:"firstName" validate:"required,max=255"`
	LastName    string  `json:"lastName" validate:"required,max=255"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Genre       *string `json:"genre" validate:"omitempty,oneof=masc fem others"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Password    string  `json:"password" validate:"required,min=6"`
	NetworkID   string  `json:"networkId" validate:"required,uuid"`
}

// UpdateAccountInput is a field-wise patch: nil fields leave the stored value
// untouched. A non-empty Password is the only thing that re-triggers the
// hashing step.
type UpdateAccountInput struct {
	FirstName   *string `json:"firstName" validate:"omitempty,max=255"`
	LastName    *string `json:"lastName" validate:"omitempty,max=255"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Genre       *string `json:"genre" validate:"omitempty,oneof=masc fem others"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Password    *string `json:"password" validate:"omitempty,min=6"`
}
