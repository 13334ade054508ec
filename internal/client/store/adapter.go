package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

// Adapter is the namespaced, JSON-encoding view of a Store.
type Adapter struct {
	store  Store
	prefix string
}

func NewAdapter(s Store, prefix string) *Adapter {
	return &Adapter{store: s, prefix: prefix}
}

// Prefix is the namespace every key is stored under.
func (a *Adapter) Prefix() string { return a.prefix }

// Key returns the full storage key for name.
func (a *Adapter) Key(name string) string { return a.prefix + name }

// Get decodes the value under key into dst. It reports false, leaving dst
// untouched, when the key has never been written.
func (a *Adapter) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, found, err := a.store.Get(ctx, a.Key(key))
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: decode %s: %w", common.ErrorStorage, key, err)
	}
	return true, nil
}

// Set replaces the value under key with the JSON encoding of v.
func (a *Adapter) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", common.ErrorStorage, key, err)
	}
	return a.store.Set(ctx, a.Key(key), raw)
}

// Remove deletes key; removing a missing key is a no-op.
func (a *Adapter) Remove(ctx context.Context, key string) error {
	return a.store.Delete(ctx, a.Key(key))
}

// Clear removes every key in the namespace and nothing else.
func (a *Adapter) Clear(ctx context.Context) error {
	items, err := a.store.List(ctx, a.prefix)
	if err != nil {
		return err
	}
	for key := range items {
		if err := a.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
