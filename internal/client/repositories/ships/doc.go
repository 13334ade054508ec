// Package ships stores the fleet under the "ships" key.
//
// Deleting a ship here only removes the ship record. What happens to its
// components and jobs is decided by services.Fleet according to the
// configured delete policy.
package ships
