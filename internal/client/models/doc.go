// Package models defines the fleet domain records persisted by the local
// store: users, ships, their installed components and maintenance jobs.
//
// JSON field names are part of the persisted format and must not change.
// Calendar dates (install, maintenance and scheduling dates) are kept as
// YYYY-MM-DD strings; CreatedAt/UpdatedAt are full timestamps stamped by the
// repositories.
//
// Every record type has a Validate method returning an error that wraps
// common.ErrorValidation, and a Patch type whose nil fields mean "keep the
// existing value".
package models
