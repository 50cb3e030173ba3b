package service

import (
	"context"
	"testing"

	"redeem-clinic-api/internal/delivery/dto"
	"redeem-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdressesService_Create(t *testing.T) {
	accountID := uuid.New()
	repo := &mockAdressesRepository{
		createFn: func(ctx context.Context, adresses *entity.Adresses) error {
			adresses.ID = uuid.New()
			return nil
		},
	}
	svc := NewAdressesService(testLogger(), repo)

	adresses, err := svc.Create(context.Background(), &dto.CreateAdressesInput{
		Zip:       "01310-100",
		Address:   "Avenida Paulista",
		Number:    "1578",
		District:  "Bela Vista",
		City:      "Sao Paulo",
		State:     "SP",
		AccountID: accountID.String(),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, adresses.ID)
	assert.Equal(t, "01310-100", adresses.Zip)
	assert.Equal(t, "Avenida Paulista", adresses.Address)
	assert.Equal(t, "1578", adresses.Number)
	assert.Equal(t, "Bela Vista", adresses.District)
	assert.Equal(t, "Sao Paulo", adresses.City)
	assert.Equal(t, "SP", adresses.State)
	assert.Equal(t, accountID, adresses.AccountID)
}

func TestAdressesService_Create_InvalidAccountID(t *testing.T) {
	svc := NewAdressesService(testLogger(), &mockAdressesRepository{})

	_, err := svc.Create(context.Background(), &dto.CreateAdressesInput{
		Zip:       "01310-100",
		Address:   "Avenida Paulista",
		Number:    "1578",
		District:  "Bela Vista",
		City:      "Sao Paulo",
		State:     "SP",
		AccountID: "not-a-uuid",
	})
	require.Error(t, err)
	assert.Equal(t, "invalid account id", err.Error())
}

func TestAdressesService_GetByID_NotFound(t *testing.T) {
	repo := &mockAdressesRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Adresses, error) {
			return nil, nil
		},
	}
	svc := NewAdressesService(testLogger(), repo)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAdressesNotFound)
}

func TestAdressesService_GetByAccount(t *testing.T) {
	accountID := uuid.New()
	repo := &mockAdressesRepository{
		findByAccountIDFn: func(ctx context.Context, got uuid.UUID) ([]entity.Adresses, error) {
			assert.Equal(t, accountID, got)
			return []entity.Adresses{
				{ID: uuid.New(), City: "Sao Paulo", AccountID: accountID},
				{ID: uuid.New(), City: "Campinas", AccountID: accountID},
			}, nil
		},
	}
	svc := NewAdressesService(testLogger(), repo)

	adresses, err := svc.GetByAccount(context.Background(), accountID)
	require.NoError(t, err)
	assert.Len(t, adresses, 2)
}

func TestAdressesService_Update_PreservesUnsetFields(t *testing.T) {
	existing := &entity.Adresses{
		ID:       uuid.New(),
		Zip:      "01310-100",
		Address:  "Avenida Paulista",
		Number:   "1578",
		District: "Bela Vista",
		City:     "Sao Paulo",
		State:    "SP",
	}
	repo := &mockAdressesRepository{
		updateFn: func(ctx context.Context, adresses *entity.Adresses) error {
			return nil
		},
	}
	svc := NewAdressesService(testLogger(), repo)

	adresses, err := svc.Update(context.Background(), existing, &dto.UpdateAdressesInput{
		Number: strptr("900"),
	})
	require.NoError(t, err)

	assert.Equal(t, "900", adresses.Number)
	assert.Equal(t, "Avenida Paulista", adresses.Address)
	assert.Equal(t, "Sao Paulo", adresses.City)
	assert.Equal(t, "SP", adresses.State)
}

func TestAdressesService_Delete(t *testing.T) {
	deleted := false
	repo := &mockAdressesRepository{
		softDeleteFn: func(ctx context.Context, adresses *entity.Adresses) error {
			deleted = true
			return nil
		},
	}
	svc := NewAdressesService(testLogger(), repo)

	ok, err := svc.Delete(context.Background(), &entity.Adresses{ID: uuid.New()})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, deleted)
}
