package graphql

import (
	"context"

	"redeem-clinic-api/internal/delivery/dto"
	"redeem-clinic-api/internal/domain/entity"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

func (r *Resolver) Adresses(ctx context.Context, args struct {
	Take int32
	Skip int32
}) ([]*adressesResolver, error) {
	adresses, err := r.adresses.List(ctx, listFilter(args.Take, args.Skip, nil))
	if err != nil {
		return nil, err
	}

	resolvers := make([]*adressesResolver, 0, len(adresses))
	for i := range adresses {
		resolvers = append(resolvers, &adressesResolver{r: r, adresses: &adresses[i]})
	}
	return resolvers, nil
}

func (r *Resolver) Adress(ctx context.Context, args struct{ ID graphqlgo.ID }) (*adressesResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	adresses, err := r.adresses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &adressesResolver{r: r, adresses: adresses}, nil
}

func (r *Resolver) CreateAdresses(ctx context.Context, args struct {
	CreateAdressesInput dto.CreateAdressesInput
}) (*adressesResolver, error) {
	if err := r.validate(&args.CreateAdressesInput); err != nil {
		return nil, err
	}

	adresses, err := r.adresses.Create(ctx, &args.CreateAdressesInput)
	if err != nil {
		return nil, err
	}
	return &adressesResolver{r: r, adresses: adresses}, nil
}

func (r *Resolver) UpdateAdresses(ctx context.Context, args struct {
	ID                  graphqlgo.ID
	UpdateAdressesInput dto.UpdateAdressesInput
}) (*adressesResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	if err := r.validate(&args.UpdateAdressesInput); err != nil {
		return nil, err
	}

	existing, err := r.adresses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	adresses, err := r.adresses.Update(ctx, existing, &args.UpdateAdressesInput)
	if err != nil {
		return nil, err
	}
	return &adressesResolver{r: r, adresses: adresses}, nil
}

func (r *Resolver) DeleteAdresses(ctx context.Context, args struct{ ID graphqlgo.ID }) (*adressesResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	existing, err := r.adresses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.adresses.Delete(ctx, existing); err != nil {
		return nil, err
	}
	return &adressesResolver{r: r, adresses: existing}, nil
}

type adressesResolver struct {
	r        *Resolver
	adresses *entity.Adresses
}

func (a *adressesResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(a.adresses.ID.String())
}

func (a *adressesResolver) Zip() string {
	return a.adresses.Zip
}

func (a *adressesResolver) Address() string {
	return a.adresses.Address
}

func (a *adressesResolver) Number() string {
	return a.adresses.Number
}

func (a *adressesResolver) District() string {
	return a.adresses.District
}

func (a *adressesResolver) City() string {
	return a.adresses.City
}

func (a *adressesResolver) State() string {
	return a.adresses.State
}

func (a *adressesResolver) Account(ctx context.Context) (*accountResolver, error) {
	account, err := a.r.accounts.GetByID(ctx, a.adresses.AccountID)
	if err != nil {
		return nil, err
	}
	return &accountResolver{r: a.r, account: account}, nil
}

func (a *adressesResolver) CreatedAt() string {
	return formatTime(a.adresses.CreatedAt)
}

func (a *adressesResolver) UpdatedAt() string {
	return formatTime(a.adresses.UpdatedAt)
}

func (a *adressesResolver) DeletedAt() *string {
	return formatDeletedAt(a.adresses.DeletedAt)
}
