package graphql

import (
	"context"

	"redeem-clinic-api/internal/delivery/dto"
	"redeem-clinic-api/internal/domain/entity"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

func (r *Resolver) Networks(ctx context.Context, args struct {
	Take int32
	Skip int32
}) ([]*networkResolver, error) {
	networks, err := r.networks.List(ctx, listFilter(args.Take, args.Skip, nil))
	if err != nil {
		return nil, err
	}

	resolvers := make([]*networkResolver, 0, len(networks))
	for i := range networks {
		resolvers = append(resolvers, &networkResolver{network: &networks[i]})
	}
	return resolvers, nil
}

func (r *Resolver) Network(ctx context.Context, args struct{ ID graphqlgo.ID }) (*networkResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	network, err := r.networks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &networkResolver{network: network}, nil
}

func (r *Resolver) CreateNetwork(ctx context.Context, args struct {
	CreateNetworkInput dto.CreateNetworkInput
}) (*networkResolver, error) {
	if err := r.validate(&args.CreateNetworkInput); err != nil {
		return nil, err
	}

	network, err := r.networks.Create(ctx, &args.CreateNetworkInput)
	if err != nil {
		return nil, err
	}
	return &networkResolver{network: network}, nil
}

type networkResolver struct {
	network *entity.Network
}

func (n *networkResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(n.network.ID.String())
}

func (n *networkResolver) Name() string {
	return n.network.Name
}

func (n *networkResolver) CreatedAt() string {
	return formatTime(n.network.CreatedAt)
}

func (n *networkResolver) UpdatedAt() string {
	return formatTime(n.network.UpdatedAt)
}

func (n *networkResolver) DeletedAt() *string {
	return formatDeletedAt(n.network.DeletedAt)
}
