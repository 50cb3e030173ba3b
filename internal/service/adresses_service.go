package service

import (
	"context"

	"redeem-clinic-api/internal/delivery/dto"
	"redeem-clinic-api/internal/domain/entity"
	"redeem-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AdressesService interface {
	List(ctx context.Context, filter entity.ListFilter) ([]entity.Adresses, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Adresses, error)
	GetByAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Adresses, error)
	Create(ctx context.Context, input *dto.CreateAdressesInput) (*entity.Adresses, error)
	Update(ctx context.Context, existing *entity.Adresses, patch *dto.UpdateAdressesInput) (*entity.Adresses, error)
	Delete(ctx context.Context, existing *entity.Adresses) (bool, error)
}

type adressesService struct {
	log          *logrus.Logger
	adressesRepo repository.AdressesRepository
}

func NewAdressesService(log *logrus.Logger, adressesRepo repository.AdressesRepository) AdressesService {
	return &adressesService{
		log:          log,
		adressesRepo: adressesRepo,
	}
}

func (s *adressesService) List(ctx context.Context, filter entity.ListFilter) ([]entity.Adresses, error) {
	adresses, err := s.adressesRepo.FindAll(ctx, filter)
	if err != nil {
		s.log.Warnf("Failed to list adresses: %+v", err)
		return nil, err
	}
	return adresses, nil
}

func (s *adressesService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Adresses, error) {
	adresses, err := s.adressesRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Warnf("Failed to find adresses: %+v", err)
		return nil, err
	}
	if adresses == nil {
		return nil, ErrAdressesNotFound
	}
	return adresses, nil
}

func (s *adressesService) GetByAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Adresses, error) {
	adresses, err := s.adressesRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		s.log.Warnf("Failed to find adresses by account: %+v", err)
		return nil, err
	}
	return adresses, nil
}

func (s *adressesService) Create(ctx context.Context, input *dto.CreateAdressesInput) (*entity.Adresses, error) {
	accountID, err := uuid.Parse(input.AccountID)
	if err != nil {
		return nil, badInput("invalid account id")
	}

	adresses := &entity.Adresses{
		Zip:       input.Zip,
		Address:   input.Address,
		Number:    input.Number,
		District:  input.District,
		City:      input.City,
		State:     input.State,
		AccountID: accountID,
	}

	if err := s.adressesRepo.Create(ctx, adresses); err != nil {
		s.log.Warnf("Failed to create adresses: %+v", err)
		return nil, err
	}
	return adresses, nil
}

func (s *adressesService) Update(ctx context.Context, existing *entity.Adresses, patch *dto.UpdateAdressesInput) (*entity.Adresses, error) {
	if patch.Zip != nil {
		existing.Zip = *patch.Zip
	}
	if patch.Address != nil {
		existing.Address = *patch.Address
	}
	if patch.Number != nil {
		existing.Number = *patch.Number
	}
	if patch.District != nil {
		existing.District = *patch.District
	}
	if patch.City != nil {
		existing.City = *patch.City
	}
	if patch.State != nil {
		existing.State = *patch.State
	}

	if err := s.adressesRepo.Update(ctx, existing); err != nil {
		s.log.Warnf("Failed to update adresses: %+v", err)
		return nil, err
	}
	return existing, nil
}

func (s *adressesService) Delete(ctx context.Context, existing *entity.Adresses) (bool, error) {
	if err := s.adressesRepo.SoftDelete(ctx, existing); err != nil {
		s.log.Warnf("Failed to delete adresses: %+v", err)
		return false, err
	}
	return true, nil
}
