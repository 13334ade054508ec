// Package common defines shared constants and sentinel errors used across
// the data layer, services and the CLI of fleetkeeper. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorValidation    = errors.New("validation error")
	ErrorStorage       = errors.New("storage failure")
	ErrorHasDependents = errors.New("entity has dependents")

	// Access control errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
)
