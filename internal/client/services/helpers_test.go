package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/collection"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/components"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/jobs"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/ships"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/users"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/seed"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/store"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/stretchr/testify/require"
)

var seededAt = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

// fixture is a seeded, loaded data layer over an in-memory database.
type fixture struct {
	adapter    *store.Adapter
	users      *users.StoreRepository
	ships      *ships.StoreRepository
	components *components.StoreRepository
	jobs       *jobs.StoreRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = seed.Seed(ctx, db, common.DefaultKeyPrefix, seededAt)
	require.NoError(t, err)

	f := &fixture{adapter: store.NewAdapter(store.NewSQLiteStore(db), common.DefaultKeyPrefix)}
	deps := collection.Deps{Storage: f.adapter}
	f.users = users.NewStoreRepository(deps)
	f.ships = ships.NewStoreRepository(deps)
	f.components = components.NewStoreRepository(deps, f.ships)
	f.jobs = jobs.NewStoreRepository(deps, jobs.References{Ships: f.ships, Components: f.components, Users: f.users})

	_, err = f.users.Load(ctx)
	require.NoError(t, err)
	_, err = f.ships.Load(ctx)
	require.NoError(t, err)
	_, err = f.components.Load(ctx)
	require.NoError(t, err)
	_, err = f.jobs.Load(ctx)
	require.NoError(t, err)
	return f
}
