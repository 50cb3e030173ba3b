package repository

import (
	"context"

	"redeem-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	FindAll(ctx context.Context, filter entity.ListFilter) ([]entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	SoftDelete(ctx context.Context, account *entity.Account) error
}
