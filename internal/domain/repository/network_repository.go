package repository

import (
	"context"

	"redeem-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

type NetworkRepository interface {
	Create(ctx context.Context, network *entity.Network) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Network, error)
	FindAll(ctx context.Context, filter entity.ListFilter) ([]entity.Network, error)
}
