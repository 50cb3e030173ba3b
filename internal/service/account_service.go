package service

import (
	"context"

	"redeem-clinic-api/internal/delivery/dto"
	"redeem-clinic-api/internal/domain/entity"
	"redeem-clinic-api/internal/domain/repository"
	"redeem-clinic-api/pkg/password"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AccountService interface {
	List(ctx context.Context, filter entity.ListFilter) ([]entity.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	Exists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, input *dto.CreateAccountInput) (*entity.Account, error)
	Update(ctx context.Context, existing *entity.Account, patch *dto.UpdateAccountInput) (*entity.Account, error)
	Delete(ctx context.Context, existing *entity.Account) (bool, error)
	ComparePassword(account *entity.Account, attempt string) bool
}

type accountService struct {
	log         *logrus.Logger
	accountRepo repository.AccountRepository
	cache       *AccountCache
}

// NewAccountService creates the account data-access service. cache may be nil,
// in which case every lookup goes to the repository.
func NewAccountService(log *logrus.Logger, accountRepo repository.AccountRepository, cache *AccountCache) AccountService {
	return &accountService{
		log:         log,
		accountRepo: accountRepo,
		cache:       cache,
	}
}

func (s *accountService) List(ctx context.Context, filter entity.ListFilter) ([]entity.Account, error) {
	accounts, err := s.accountRepo.FindAll(ctx, filter)
	if err != nil {
		s.log.Warnf("Failed to list accounts: %+v", err)
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if s.cache != nil {
		if account, ok := s.cache.Get(ctx, id); ok {
			return account, nil
		}
	}

	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Warnf("Failed to find account: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	if s.cache != nil {
		s.cache.Set(ctx, account)
	}
	return account, nil
}

// Exists reports whether a live account already uses the email. It is a
// pre-creation guard only; the partial unique index on accounts(email) closes
// the window between this check and the insert.
func (s *accountService) Exists(ctx context.Context, email string) (bool, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Warnf("Failed to check account email: %+v", err)
		return false, err
	}
	return account != nil, nil
}

func (s *accountService) Create(ctx context.Context, input *dto.CreateAccountInput) (*entity.Account, error) {
	if input.Email != nil && *input.Email != "" {
		exists, err := s.Exists(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailAlreadyExists
		}
	}

	networkID, err := uuid.Parse(input.NetworkID)
	if err != nil {
		return nil, badInput("invalid network id")
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		s.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	account := &entity.Account{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Genre:     entity.GenreOthers,
		Password:  hashed,
		NetworkID: networkID,
	}
	if input.Email != nil {
		account.Email = *input.Email
	}
	if input.Genre != nil {
		account.Genre = entity.Genre(*input.Genre)
	}
	if input.DateOfBirth != nil {
		account.DateOfBirth = *input.DateOfBirth
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		// A concurrent create can slip past Exists; the index reports it here.
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		s.log.Warnf("Failed to create account: %+v", err)
		return nil, err
	}

	return account, nil
}

// Update merges patch onto existing field by field; nil patch fields keep the
// stored value. The password is hashed only when the patch actually carries a
// new one, so updates that touch other fields never re-hash the stored hash.
func (s *accountService) Update(ctx context.Context, existing *entity.Account, patch *dto.UpdateAccountInput) (*entity.Account, error) {
	if patch.FirstName != nil {
		existing.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		existing.LastName = *patch.LastName
	}
	if patch.Email != nil {
		existing.Email = *patch.Email
	}
	if patch.Genre != nil {
		existing.Genre = entity.Genre(*patch.Genre)
	}
	if patch.DateOfBirth != nil {
		existing.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Password != nil && *patch.Password != "" {
		hashed, err := password.Hash(*patch.Password)
		if err != nil {
			s.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		existing.Password = hashed
	}

	if err := s.accountRepo.Update(ctx, existing); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		s.log.Warnf("Failed to update account: %+v", err)
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, existing.ID)
	}
	return existing, nil
}

func (s *accountService) Delete(ctx context.Context, existing *entity.Account) (bool, error) {
	if err := s.accountRepo.SoftDelete(ctx, existing); err != nil {
		s.log.Warnf("Failed to delete account: %+v", err)
		return false, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, existing.ID)
	}
	return true, nil
}

func (s *accountService) ComparePassword(account *entity.Account, attempt string) bool {
	return password.Compare(account.Password, attempt)
}
