package graphql

import (
	"sort"
	"strings"

	"redeem-clinic-api/internal/domain/entity"
	"redeem-clinic-api/internal/service"
	"redeem-clinic-api/pkg/exception"
	"redeem-clinic-api/pkg/validator"

	"github.com/google/uuid"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"
)

// Resolver is the root of the GraphQL schema. It forwards every operation to
// the matching service and holds no state of its own.
type Resolver struct {
	log            *logrus.Logger
	validator      *validator.CustomValidator
	accounts       service.AccountService
	adresses       service.AdressesService
	establishments service.EstablishmentService
	networks       service.NetworkService
}

func NewResolver(
	log *logrus.Logger,
	v *validator.CustomValidator,
	accounts service.AccountService,
	adresses service.AdressesService,
	establishments service.EstablishmentService,
	networks service.NetworkService,
) *Resolver {
	return &Resolver{
		log:            log,
		validator:      v,
		accounts:       accounts,
		adresses:       adresses,
		establishments: establishments,
		networks:       networks,
	}
}

// NewSchema parses the SDL against the resolver. Panics on a schema/resolver
// mismatch, which is a programming error caught at startup.
func NewSchema(resolver *Resolver) *graphqlgo.Schema {
	return graphqlgo.MustParseSchema(Schema, resolver)
}

func parseID(id graphqlgo.ID) (uuid.UUID, error) {
	parsed, err := uuid.Parse(string(id))
	if err != nil {
		return uuid.Nil, exception.New(exception.KeyBadUserInput, "invalid id")
	}
	return parsed, nil
}

func (r *Resolver) validate(input interface{}) error {
	err := r.validator.Validate(input)
	if err == nil {
		return nil
	}

	fields := r.validator.FormatValidationErrors(err)
	messages := make([]string, 0, len(fields))
	for field, message := range fields {
		messages = append(messages, field+": "+message)
	}
	sort.Strings(messages)
	return exception.New(exception.KeyBadUserInput, strings.Join(messages, "; "))
}

func listFilter(take, skip int32, search *string) entity.ListFilter {
	filter := entity.ListFilter{
		Take: int(take),
		Skip: int(skip),
	}
	if search != nil {
		filter.Search = *search
	}
	return filter
}
