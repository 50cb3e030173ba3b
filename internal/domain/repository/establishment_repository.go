package repository

import (
	"context"

	"redeem-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

type EstablishmentRepository interface {
	Create(ctx context.Context, establishment *entity.Establishment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Establishment, error)
	FindAll(ctx context.Context, filter entity.ListFilter) ([]entity.Establishment, error)
	Update(ctx context.Context, establishment *entity.Establishment) error
	SoftDelete(ctx context.Context, establishment *entity.Establishment) error
}
