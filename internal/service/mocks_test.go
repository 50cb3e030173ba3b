package service

import (
	"context"
	"fmt"
	"io"

	"redeem-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// ---- mock repositories ----

type mockAccountRepository struct {
	createFn      func(ctx context.Context, account *entity.Account) error
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.Account, error)
	findAllFn     func(ctx context.Context, filter entity.ListFilter) ([]entity.Account, error)
	updateFn      func(ctx context.Context, account *entity.Account) error
	softDeleteFn  func(ctx context.Context, account *entity.Account) error
}

func (m *mockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	if m.createFn != nil {
		return m.createFn(ctx, account)
	}
	return fmt.Errorf("not configured")
}

func (m *mockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountRepository) FindAll(ctx context.Context, filter entity.ListFilter) ([]entity.Account, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, filter)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, account)
	}
	return fmt.Errorf("not configured")
}

func (m *mockAccountRepository) SoftDelete(ctx context.Context, account *entity.Account) error {
	if m.softDeleteFn != nil {
		return m.softDeleteFn(ctx, account)
	}
	return fmt.Errorf("not configured")
}

type mockAdressesRepository struct {
	createFn          func(ctx context.Context, adresses *entity.Adresses) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Adresses, error)
	findByAccountIDFn func(ctx context.Context, accountID uuid.UUID) ([]entity.Adresses, error)
	findAllFn         func(ctx context.Context, filter entity.ListFilter) ([]entity.Adresses, error)
	updateFn          func(ctx context.Context, adresses *entity.Adresses) error
	softDeleteFn      func(ctx context.Context, adresses *entity.Adresses) error
}

func (m *mockAdressesRepository) Create(ctx context.Context, adresses *entity.Adresses) error {
	if m.createFn != nil {
		return m.createFn(ctx, adresses)
	}
	return fmt.Errorf("not configured")
}

func (m *mockAdressesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Adresses, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAdressesRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.Adresses, error) {
	if m.findByAccountIDFn != nil {
		return m.findByAccountIDFn(ctx, accountID)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAdressesRepository) FindAll(ctx context.Context, filter entity.ListFilter) ([]entity.Adresses, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, filter)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAdressesRepository) Update(ctx context.Context, adresses *entity.Adresses) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, adresses)
	}
	return fmt.Errorf("not configured")
}

func (m *mockAdressesRepository) SoftDelete(ctx context.Context, adresses *entity.Adresses) error {
	if m.softDeleteFn != nil {
		return m.softDeleteFn(ctx, adresses)
	}
	return fmt.Errorf("not configured")
}

type mockEstablishmentRepository struct {
	createFn     func(ctx context.Context, establishment *entity.Establishment) error
	findByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.Establishment, error)
	findAllFn    func(ctx context.Context, filter entity.ListFilter) ([]entity.Establishment, error)
	updateFn     func(ctx context.Context, establishment *entity.Establishment) error
	softDeleteFn func(ctx context.Context, establishment *entity.Establishment) error
}

func (m *mockEstablishmentRepository) Create(ctx context.Context, establishment *entity.Establishment) error {
	if m.createFn != nil {
		return m.createFn(ctx, establishment)
	}
	return fmt.Errorf("not configured")
}

func (m *mockEstablishmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Establishment, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockEstablishmentRepository) FindAll(ctx context.Context, filter entity.ListFilter) ([]entity.Establishment, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, filter)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockEstablishmentRepository) Update(ctx context.Context, establishment *entity.Establishment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, establishment)
	}
	return fmt.Errorf("not configured")
}

func (m *mockEstablishmentRepository) SoftDelete(ctx context.Context, establishment *entity.Establishment) error {
	if m.softDeleteFn != nil {
		return m.softDeleteFn(ctx, establishment)
	}
	return fmt.Errorf("not configured")
}

type mockNetworkRepository struct {
	createFn   func(ctx context.Context, network *entity.Network) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Network, error)
	findAllFn  func(ctx context.Context, filter entity.ListFilter) ([]entity.Network, error)
}

func (m *mockNetworkRepository) Create(ctx context.Context, network *entity.Network) error {
	if m.createFn != nil {
		return m.createFn(ctx, network)
	}
	return fmt.Errorf("not configured")
}

func (m *mockNetworkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Network, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockNetworkRepository) FindAll(ctx context.Context, filter entity.ListFilter) ([]entity.Network, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, filter)
	}
	return nil, fmt.Errorf("not configured")
}
