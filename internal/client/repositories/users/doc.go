// Package users stores local accounts under the "users" key.
//
// Emails are unique across the collection. Users carry no timestamps, so
// updates do not stamp anything. FindByCredentials is the exact,
// case-sensitive lookup used by access control.
package users
