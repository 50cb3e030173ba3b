package dto

type CreateAdressesInput struct {
	Zip       string `json:"zip" validate:"required,max=16"`
	Address   string `json:"address" validate:"required,max=255"`
	Number    string `json:"number" validate:"required,max=16"`
	District  string `json:"district" validate:"required,max=255"`
	City      string `json:"city" validate:"required,max=255"`
	State     string `json:"state" validate:"required,max=64"`
	AccountID string `json:"accountId" validate:"required,uuid"`
}

type UpdateAdressesInput struct {
	Zip      *string `json:"zip" validate:"omitempty,max=16"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
	Number   *string `json:"number" validate:"omitempty,max=16"`
	District *string `json:"district" validate:"omitempty,max=255"`
	City     *string `json:"city" validate:"omitempty,max=255"`
	State    *string `json:"state" validate:"omitempty,max=64"`
}
