// Package jobs stores maintenance jobs under the "jobs" key.
//
// References are checked against the other repositories' caches when a
// job is added, and on update only for the references the update changes:
//
//   - the ship exists;
//   - the component exists and is installed on that ship;
//   - the assigned engineer, when set, is a user with the Engineer role.
//
// Any nil lookup in References turns its check off.
package jobs
