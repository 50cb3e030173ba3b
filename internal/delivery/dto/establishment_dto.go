package dto

type CreateEstablishmentInput struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
	NetworkID string  `json:"networkId" validate:"required,uuid"`
}

type UpdateEstablishmentInput struct {
	Name  *string `json:"name" validate:"omitempty,max=255"`
	Phone *string `json:"phone" validate:"omitempty,max=32"`
}
