package service

import (
	"context"

	"redeem-clinic-api/internal/delivery/dto"
	"redeem-clinic-api/internal/domain/entity"
	"redeem-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type EstablishmentService interface {
	List(ctx context.Context, filter entity.ListFilter) ([]entity.Establishment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Establishment, error)
	Create(ctx context.Context, input *dto.CreateEstablishmentInput) (*entity.Establishment, error)
	Update(ctx context.Context, existing *entity.Establishment, patch *dto.UpdateEstablishmentInput) (*entity.Establishment, error)
	Delete(ctx context.Context, existing *entity.Establishment) (bool, error)
}

type establishmentService struct {
	log               *logrus.Logger
	establishmentRepo repository.EstablishmentRepository
}

func NewEstablishmentService(log *logrus.Logger, establishmentRepo repository.EstablishmentRepository) EstablishmentService {
	return &establishmentService{
		log:               log,
		establishmentRepo: establishmentRepo,
	}
}

func (s *establishmentService) List(ctx context.Context, filter entity.ListFilter) ([]entity.Establishment, error) {
	establishments, err := s.establishmentRepo.FindAll(ctx, filter)
	if err != nil {
		s.log.Warnf("Failed to list establishments: %+v", err)
		return nil, err
	}
	return establishments, nil
}

func (s *establishmentService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Establishment, error) {
	establishment, err := s.establishmentRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Warnf("Failed to find establishment: %+v", err)
		return nil, err
	}
	if establishment == nil {
		return nil, ErrEstablishmentNotFound
	}
	return establishment, nil
}

func (s *establishmentService) Create(ctx context.Context, input *dto.CreateEstablishmentInput) (*entity.Establishment, error) {
	networkID, err := uuid.Parse(input.NetworkID)
	if err != nil {
		return nil, badInput("invalid network id")
	}

	establishment := &entity.Establishment{
		Name:      input.Name,
		NetworkID: networkID,
	}
	if input.Phone != nil {
		establishment.Phone = *input.Phone
	}

	if err := s.establishmentRepo.Create(ctx, establishment); err != nil {
		s.log.Warnf("Failed to create establishment: %+v", err)
		return nil, err
	}
	return establishment, nil
}

func (s *establishmentService) Update(ctx context.Context, existing *entity.Establishment, patch *dto.UpdateEstablishmentInput) (*entity.Establishment, error) {
	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Phone != nil {
		existing.Phone = *patch.Phone
	}

	if err := s.establishmentRepo.Update(ctx, existing); err != nil {
		s.log.Warnf("Failed to update establishment: %+v", err)
		return nil, err
	}
	return existing, nil
}

func (s *establishmentService) Delete(ctx context.Context, existing *entity.Establishment) (bool, error) {
	if err := s.establishmentRepo.SoftDelete(ctx, existing); err != nil {
		s.log.Warnf("Failed to delete establishment: %+v", err)
		return false, err
	}
	return true, nil
}
