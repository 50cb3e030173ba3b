package dto

type CreateNetworkInput struct {
	Name string `json:"name" validate:"required,max=255"`
}
