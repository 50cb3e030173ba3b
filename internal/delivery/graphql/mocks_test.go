package graphql

import (
	"context"
	"fmt"
	"io"

	"redeem-clinic-api/internal/delivery/dto"
	"redeem-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// ---- mock services ----

type mockAccountService struct {
	listFn            func(ctx context.Context, filter entity.ListFilter) ([]entity.Account, error)
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	existsFn          func(ctx context.Context, email string) (bool, error)
	createFn          func(ctx context.Context, input *dto.CreateAccountInput) (*entity.Account, error)
	updateFn          func(ctx context.Context, existing *entity.Account, patch *dto.UpdateAccountInput) (*entity.Account, error)
	deleteFn          func(ctx context.Context, existing *entity.Account) (bool, error)
	comparePasswordFn func(account *entity.Account, attempt string) bool
}

func (m *mockAccountService) List(ctx context.Context, filter entity.ListFilter) ([]entity.Account, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountService) Exists(ctx context.Context, email string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, email)
	}
	return false, fmt.Errorf("not configured")
}

func (m *mockAccountService) Create(ctx context.Context, input *dto.CreateAccountInput) (*entity.Account, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountService) Update(ctx context.Context, existing *entity.Account, patch *dto.UpdateAccountInput) (*entity.Account, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, existing, patch)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountService) Delete(ctx context.Context, existing *entity.Account) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, existing)
	}
	return false, fmt.Errorf("not configured")
}

func (m *mockAccountService) ComparePassword(account *entity.Account, attempt string) bool {
	if m.comparePasswordFn != nil {
		return m.comparePasswordFn(account, attempt)
	}
	return false
}

type mockAdressesService struct {
	listFn         func(ctx context.Context, filter entity.ListFilter) ([]entity.Adresses, error)
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.Adresses, error)
	getByAccountFn func(ctx context.Context, accountID uuid.UUID) ([]entity.Adresses, error)
	createFn       func(ctx context.Context, input *dto.CreateAdressesInput) (*entity.Adresses, error)
	updateFn       func(ctx context.Context, existing *entity.Adresses, patch *dto.UpdateAdressesInput) (*entity.Adresses, error)
	deleteFn       func(ctx context.Context, existing *entity.Adresses) (bool, error)
}

func (m *mockAdressesService) List(ctx context.Context, filter entity.ListFilter) ([]entity.Adresses, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAdressesService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Adresses, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAdressesService) GetByAccount(ctx context.Context, accountID uuid.UUID) ([]entity.Adresses, error) {
	if m.getByAccountFn != nil {
		return m.getByAccountFn(ctx, accountID)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAdressesService) Create(ctx context.Context, input *dto.CreateAdressesInput) (*entity.Adresses, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAdressesService) Update(ctx context.Context, existing *entity.Adresses, patch *dto.UpdateAdressesInput) (*entity.Adresses, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, existing, patch)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAdressesService) Delete(ctx context.Context, existing *entity.Adresses) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, existing)
	}
	return false, fmt.Errorf("not configured")
}

type mockEstablishmentService struct {
	listFn    func(ctx context.Context, filter entity.ListFilter) ([]entity.Establishment, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Establishment, error)
	createFn  func(ctx context.Context, input *dto.CreateEstablishmentInput) (*entity.Establishment, error)
	updateFn  func(ctx context.Context, existing *entity.Establishment, patch *dto.UpdateEstablishmentInput) (*entity.Establishment, error)
	deleteFn  func(ctx context.Context, existing *entity.Establishment) (bool, error)
}

func (m *mockEstablishmentService) List(ctx context.Context, filter entity.ListFilter) ([]entity.Establishment, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockEstablishmentService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Establishment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockEstablishmentService) Create(ctx context.Context, input *dto.CreateEstablishmentInput) (*entity.Establishment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockEstablishmentService) Update(ctx context.Context, existing *entity.Establishment, patch *dto.UpdateEstablishmentInput) (*entity.Establishment, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, existing, patch)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockEstablishmentService) Delete(ctx context.Context, existing *entity.Establishment) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, existing)
	}
	return false, fmt.Errorf("not configured")
}

type mockNetworkService struct {
	listFn    func(ctx context.Context, filter entity.ListFilter) ([]entity.Network, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Network, error)
	createFn  func(ctx context.Context, input *dto.CreateNetworkInput) (*entity.Network, error)
}

func (m *mockNetworkService) List(ctx context.Context, filter entity.ListFilter) ([]entity.Network, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockNetworkService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Network, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockNetworkService) Create(ctx context.Context, input *dto.CreateNetworkInput) (*entity.Network, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return nil, fmt.Errorf("not configured")
}
