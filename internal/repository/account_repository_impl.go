package repository

import (
	"context"
	"errors"

	"redeem-clinic-api/internal/domain/entity"
	domainRepo "redeem-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) domainRepo.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	// Owned child rows attached to the struct are inserted in the same
	// statement batch (adresses, contacts, ...).
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var account entity.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindAll(ctx context.Context, filter entity.ListFilter) ([]entity.Account, error) {
	var accounts []entity.Account
	query := r.db.WithContext(ctx).Model(&entity.Account{})

	if filter.Search != "" {
		query = query.Where("first_name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Take > 0 {
		query = query.Limit(filter.Take)
	}
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}

	err := query.Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Omit("Network").Save(account).Error
}

func (r *accountRepository) SoftDelete(ctx context.Context, account *entity.Account) error {
	// Sets deleted_at; the row stays in storage and child rows keep theirs.
	return r.db.WithContext(ctx).Delete(account).Error
}
