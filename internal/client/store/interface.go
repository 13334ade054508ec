package store

import "context"

// Collection keys, relative to the Adapter prefix.
const (
	KeyUsers       = "users"
	KeyShips       = "ships"
	KeyComponents  = "components"
	KeyJobs        = "jobs"
	KeyCurrentUser = "currentUser"
)

// Store persists opaque values by key.
type Store interface {
	// Get returns the value and true, or nil and false when the key was
	// never written.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every key/value pair whose key starts with prefix.
	List(ctx context.Context, prefix string) (map[string][]byte, error)

	// Clear removes everything.
	Clear(ctx context.Context) error
}
