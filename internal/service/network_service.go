package service

import (
	"context"

	"redeem-clinic-api/internal/delivery/dto"
	"redeem-clinic-api/internal/domain/entity"
	"redeem-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type NetworkService interface {
	List(ctx context.Context, filter entity.ListFilter) ([]entity.Network, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Network, error)
	Create(ctx context.Context, input *dto.CreateNetworkInput) (*entity.Network, error)
}

type networkService struct {
	log         *logrus.Logger
	networkRepo repository.NetworkRepository
}

func NewNetworkService(log *logrus.Logger, networkRepo repository.NetworkRepository) NetworkService {
	return &networkService{
		log:         log,
		networkRepo: networkRepo,
	}
}

func (s *networkService) List(ctx context.Context, filter entity.ListFilter) ([]entity.Network, error) {
	networks, err := s.networkRepo.FindAll(ctx, filter)
	if err != nil {
		s.log.Warnf("Failed to list networks: %+v", err)
		return nil, err
	}
	return networks, nil
}

func (s *networkService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Network, error) {
	network, err := s.networkRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Warnf("Failed to find network: %+v", err)
		return nil, err
	}
	if network == nil {
		return nil, ErrNetworkNotFound
	}
	return network, nil
}

func (s *networkService) Create(ctx context.Context, input *dto.CreateNetworkInput) (*entity.Network, error) {
	network := &entity.Network{Name: input.Name}
	if err := s.networkRepo.Create(ctx, network); err != nil {
		s.log.Warnf("Failed to create network: %+v", err)
		return nil, err
	}
	return network, nil
}
