package graphql

import (
	"context"
	"time"

	"redeem-clinic-api/internal/delivery/dto"
	"redeem-clinic-api/internal/domain/entity"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"gorm.io/gorm"
)

// Accounts resolves the accounts(take, skip, search) query.
func (r *Resolver) Accounts(ctx context.Context, args struct {
	Take   int32
	Skip   int32
	Search *string
}) ([]*accountResolver, error) {
	accounts, err := r.accounts.List(ctx, listFilter(args.Take, args.Skip, args.Search))
	if err != nil {
		return nil, err
	}

	resolvers := make([]*accountResolver, 0, len(accounts))
	for i := range accounts {
		resolvers = append(resolvers, &accountResolver{r: r, account: &accounts[i]})
	}
	return resolvers, nil
}

func (r *Resolver) Account(ctx context.Context, args struct{ ID graphqlgo.ID }) (*accountResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	account, err := r.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &accountResolver{r: r, account: account}, nil
}

func (r *Resolver) CreateAccount(ctx context.Context, args struct {
	CreateAccountInput dto.CreateAccountInput
}) (*accountResolver, error) {
	if err := r.validate(&args.CreateAccountInput); err != nil {
		return nil, err
	}

	account, err := r.accounts.Create(ctx, &args.CreateAccountInput)
	if err != nil {
		return nil, err
	}
	return &accountResolver{r: r, account: account}, nil
}

func (r *Resolver) UpdateAccount(ctx context.Context, args struct {
	ID                 graphqlgo.ID
	UpdateAccountInput dto.UpdateAccountInput
}) (*accountResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	if err := r.validate(&args.UpdateAccountInput); err != nil {
		return nil, err
	}

	existing, err := r.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	account, err := r.accounts.Update(ctx, existing, &args.UpdateAccountInput)
	if err != nil {
		return nil, err
	}
	return &accountResolver{r: r, account: account}, nil
}

// DeleteAccount tombstones the account and returns it, matching the mutation
// contract of returning the deleted entity.
func (r *Resolver) DeleteAccount(ctx context.Context, args struct{ ID graphqlgo.ID }) (*accountResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	existing, err := r.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.accounts.Delete(ctx, existing); err != nil {
		return nil, err
	}
	return &accountResolver{r: r, account: existing}, nil
}

type accountResolver struct {
	r       *Resolver
	account *entity.Account
}

func (a *accountResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(a.account.ID.String())
}

func (a *accountResolver) FirstName() string {
	return a.account.FirstName
}

func (a *accountResolver) LastName() string {
	return a.account.LastName
}

func (a *accountResolver) Email() *string {
	if a.account.Email == "" {
		return nil
	}
	return &a.account.Email
}

func (a *accountResolver) Genre() string {
	return string(a.account.Genre)
}

func (a *accountResolver) DateOfBirth() *string {
	if a.account.DateOfBirth == "" {
		return nil
	}
	return &a.account.DateOfBirth
}

func (a *accountResolver) Network(ctx context.Context) (*networkResolver, error) {
	network, err := a.r.networks.GetByID(ctx, a.account.NetworkID)
	if err != nil {
		return nil, err
	}
	return &networkResolver{network: network}, nil
}

// Adresses resolves the owned address collection lazily, unless the parent
// row already carries it (cascaded create).
func (a *accountResolver) Adresses(ctx context.Context) ([]*adressesResolver, error) {
	adresses := a.account.Adresses
	if len(adresses) == 0 {
		loaded, err := a.r.adresses.GetByAccount(ctx, a.account.ID)
		if err != nil {
			return nil, err
		}
		adresses = loaded
	}

	resolvers := make([]*adressesResolver, 0, len(adresses))
	for i := range adresses {
		resolvers = append(resolvers, &adressesResolver{r: a.r, adresses: &adresses[i]})
	}
	return resolvers, nil
}

func (a *accountResolver) CreatedAt() string {
	return formatTime(a.account.CreatedAt)
}

func (a *accountResolver) UpdatedAt() string {
	return formatTime(a.account.UpdatedAt)
}

func (a *accountResolver) DeletedAt() *string {
	return formatDeletedAt(a.account.DeletedAt)
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatDeletedAt(d gorm.DeletedAt) *string {
	if !d.Valid {
		return nil
	}
	formatted := d.Time.Format(time.RFC3339)
	return &formatted
}
