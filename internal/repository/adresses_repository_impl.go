package repository

import (
	"context"
	"errors"

	"redeem-clinic-api/internal/domain/entity"
	domainRepo "redeem-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adressesRepository struct {
	db *gorm.DB
}

func NewAdressesRepository(db *gorm.DB) domainRepo.AdressesRepository {
	return &adressesRepository{db: db}
}

func (r *adressesRepository) Create(ctx context.Context, adresses *entity.Adresses) error {
	return r.db.WithContext(ctx).Create(adresses).Error
}

func (r *adressesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Adresses, error) {
	var adresses entity.Adresses
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&adresses).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &adresses, nil
}

func (r *adressesRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.Adresses, error) {
	var adresses []entity.Adresses
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Find(&adresses).Error
	if err != nil {
		return nil, err
	}
	return adresses, nil
}

func (r *adressesRepository) FindAll(ctx context.Context, filter entity.ListFilter) ([]entity.Adresses, error) {
	var adresses []entity.Adresses
	query := r.db.WithContext(ctx).Model(&entity.Adresses{})

	if filter.Search != "" {
		query = query.Where("city LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Take > 0 {
		query = query.Limit(filter.Take)
	}
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}

	err := query.Find(&adresses).Error
	if err != nil {
		return nil, err
	}
	return adresses, nil
}

func (r *adressesRepository) Update(ctx context.Context, adresses *entity.Adresses) error {
	return r.db.WithContext(ctx).Omit("Account").Save(adresses).Error
}

func (r *adressesRepository) SoftDelete(ctx context.Context, adresses *entity.Adresses) error {
	return r.db.WithContext(ctx).Delete(adresses).Error
}
