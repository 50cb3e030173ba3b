package repository

import (
	"context"
	"errors"

	"redeem-clinic-api/internal/domain/entity"
	domainRepo "redeem-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type networkRepository struct {
	db *gorm.DB
}

func NewNetworkRepository(db *gorm.DB) domainRepo.NetworkRepository {
	return &networkRepository{db: db}
}

func (r *networkRepository) Create(ctx context.Context, network *entity.Network) error {
	return r.db.WithContext(ctx).Create(network).Error
}

func (r *networkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Network, error) {
	var network entity.Network
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&network).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &network, nil
}

func (r *networkRepository) FindAll(ctx context.Context, filter entity.ListFilter) ([]entity.Network, error) {
	var networks []entity.Network
	query := r.db.WithContext(ctx).Model(&entity.Network{})

	if filter.Take > 0 {
		query = query.Limit(filter.Take)
	}
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}

	err := query.Find(&networks).Error
	if err != nil {
		return nil, err
	}
	return networks, nil
}
