package service

import (
	"errors"
	"strings"

	"redeem-clinic-api/pkg/exception"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrAccountNotFound       = exception.New(exception.KeyNotFound, "account not found")
	ErrEmailAlreadyExists    = exception.New(exception.KeyAlreadyExists, "email already registered")
	ErrAdressesNotFound      = exception.New(exception.KeyNotFound, "adresses not found")
	ErrEstablishmentNotFound = exception.New(exception.KeyNotFound, "establishment not found")
	ErrNetworkNotFound       = exception.New(exception.KeyNotFound, "network not found")
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

func badInput(message string) *exception.Error {
	return exception.New(exception.KeyBadUserInput, message)
}
