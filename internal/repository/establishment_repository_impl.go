package repository

import (
	"context"
	"errors"

	"redeem-clinic-api/internal/domain/entity"
	domainRepo "redeem-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type establishmentRepository struct {
	db *gorm.DB
}

func NewEstablishmentRepository(db *gorm.DB) domainRepo.EstablishmentRepository {
	return &establishmentRepository{db: db}
}

func (r *establishmentRepository) Create(ctx context.Context, establishment *entity.Establishment) error {
	return r.db.WithContext(ctx).Create(establishment).Error
}

func (r *establishmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Establishment, error) {
	var establishment entity.Establishment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&establishment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &establishment, nil
}

func (r *establishmentRepository) FindAll(ctx context.Context, filter entity.ListFilter) ([]entity.Establishment, error) {
	var establishments []entity.Establishment
	query := r.db.WithContext(ctx).Model(&entity.Establishment{})

	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Take > 0 {
		query = query.Limit(filter.Take)
	}
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}

	err := query.Find(&establishments).Error
	if err != nil {
		return nil, err
	}
	return establishments, nil
}

func (r *establishmentRepository) Update(ctx context.Context, establishment *entity.Establishment) error {
	return r.db.WithContext(ctx).Omit("Network").Save(establishment).Error
}

func (r *establishmentRepository) SoftDelete(ctx context.Context, establishment *entity.Establishment) error {
	return r.db.WithContext(ctx).Delete(establishment).Error
}
