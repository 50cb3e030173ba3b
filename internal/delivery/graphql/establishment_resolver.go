package graphql

import (
	"context"

	"redeem-clinic-api/internal/delivery/dto"
	"redeem-clinic-api/internal/domain/entity"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

func (r *Resolver) Establishments(ctx context.Context, args struct {
	Take   int32
	Skip   int32
	Search *string
}) ([]*establishmentResolver, error) {
	establishments, err := r.establishments.List(ctx, listFilter(args.Take, args.Skip, args.Search))
	if err != nil {
		return nil, err
	}

	resolvers := make([]*establishmentResolver, 0, len(establishments))
	for i := range establishments {
		resolvers = append(resolvers, &establishmentResolver{r: r, establishment: &establishments[i]})
	}
	return resolvers, nil
}

func (r *Resolver) Establishment(ctx context.Context, args struct{ ID graphqlgo.ID }) (*establishmentResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	establishment, err := r.establishments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &establishmentResolver{r: r, establishment: establishment}, nil
}

func (r *Resolver) CreateEstablishment(ctx context.Context, args struct {
	CreateEstablishmentInput dto.CreateEstablishmentInput
}) (*establishmentResolver, error) {
	if err := r.validate(&args.CreateEstablishmentInput); err != nil {
		return nil, err
	}

	establishment, err := r.establishments.Create(ctx, &args.CreateEstablishmentInput)
	if err != nil {
		return nil, err
	}
	return &establishmentResolver{r: r, establishment: establishment}, nil
}

func (r *Resolver) UpdateEstablishment(ctx context.Context, args struct {
	ID                       graphqlgo.ID
	UpdateEstablishmentInput dto.UpdateEstablishmentInput
}) (*establishmentResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	if err := r.validate(&args.UpdateEstablishmentInput); err != nil {
		return nil, err
	}

	existing, err := r.establishments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	establishment, err := r.establishments.Update(ctx, existing, &args.UpdateEstablishmentInput)
	if err != nil {
		return nil, err
	}
	return &establishmentResolver{r: r, establishment: establishment}, nil
}

func (r *Resolver) DeleteEstablishment(ctx context.Context, args struct{ ID graphqlgo.ID }) (*establishmentResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	existing, err := r.establishments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.establishments.Delete(ctx, existing); err != nil {
		return nil, err
	}
	return &establishmentResolver{r: r, establishment: existing}, nil
}

type establishmentResolver struct {
	r             *Resolver
	establishment *entity.Establishment
}

func (e *establishmentResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(e.establishment.ID.String())
}

func (e *establishmentResolver) Name() string {
	return e.establishment.Name
}

func (e *establishmentResolver) Phone() *string {
	if e.establishment.Phone == "" {
		return nil
	}
	return &e.establishment.Phone
}

// Network resolves the owning network by id when the field is requested.
func (e *establishmentResolver) Network(ctx context.Context) (*networkResolver, error) {
	network, err := e.r.networks.GetByID(ctx, e.establishment.NetworkID)
	if err != nil {
		return nil, err
	}
	return &networkResolver{network: network}, nil
}

func (e *establishmentResolver) CreatedAt() string {
	return formatTime(e.establishment.CreatedAt)
}

func (e *establishmentResolver) UpdatedAt() string {
	return formatTime(e.establishment.UpdatedAt)
}

func (e *establishmentResolver) DeletedAt() *string {
	return formatDeletedAt(e.establishment.DeletedAt)
}
