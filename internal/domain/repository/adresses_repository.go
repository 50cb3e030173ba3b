package repository

import (
	"context"

	"redeem-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

type AdressesRepository interface {
	Create(ctx context.Context, adresses *entity.Adresses) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Adresses, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.Adresses, error)
	FindAll(ctx context.Context, filter entity.ListFilter) ([]entity.Adresses, error)
	Update(ctx context.Context, adresses *entity.Adresses) error
	SoftDelete(ctx context.Context, adresses *entity.Adresses) error
}
