package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeletePolicy(t *testing.T) {
	for _, s := range []string{"orphan", "restrict", "cascade"} {
		p, err := ParseDeletePolicy(s)
		require.NoError(t, err)
		assert.Equal(t, DeletePolicy(s), p)
	}
	_, err := ParseDeletePolicy("soft")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestSeedScenario_JobsFilteredByShip(t *testing.T) {
	f := newFixture(t)

	got := f.jobs.GetByShipID("s1")
	require.Len(t, got, 1)
	assert.Equal(t, "j1", got[0].ID)
	assert.Empty(t, f.jobs.GetByShipID("s2"))
}

func TestSeedScenario_AddComponentToS1(t *testing.T) {
	f := newFixture(t)

	c, err := f.components.Add(context.Background(), models.Component{
		ShipID: "s1", Name: "Generator", SerialNumber: "G-1",
		InstallDate: "2023-01-01", LastMaintenanceDate: "2023-06-01",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "c1", c.ID)

	onS1 := f.components.GetByShipID("s1")
	require.Len(t, onS1, 2)
	assert.Equal(t, "c1", onS1[0].ID)
	assert.Equal(t, c, onS1[1])
}

func TestDeleteShip_OrphanKeepsDependents(t *testing.T) {
	f := newFixture(t)
	fleet := NewFleetService(f.ships, f.components, f.jobs, "", nil)
	assert.Equal(t, DeleteOrphan, fleet.Policy())

	ok, err := fleet.DeleteShip(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.False(t, f.ships.Exists("s1"))
	_, found := f.components.GetByID("c1")
	assert.True(t, found)
	_, found = f.jobs.GetByID("j1")
	assert.True(t, found)

	comps, js := fleet.Orphans()
	require.Len(t, comps, 1)
	assert.Equal(t, "c1", comps[0].ID)
	require.Len(t, js, 1)
	assert.Equal(t, "j1", js[0].ID)
}

func TestDeleteShip_RestrictRefuses(t *testing.T) {
	f := newFixture(t)
	fleet := NewFleetService(f.ships, f.components, f.jobs, DeleteRestrict, nil)
	ctx := context.Background()

	ok, err := fleet.DeleteShip(ctx, "s1")
	require.ErrorIs(t, err, common.ErrorHasDependents)
	assert.False(t, ok)
	assert.True(t, f.ships.Exists("s1"))

	fresh, err := f.ships.Add(ctx, models.Ship{Name: "Empty", IMO: "1234567", Flag: "Malta", Status: models.ShipStatusActive})
	require.NoError(t, err)
	ok, err = fleet.DeleteShip(ctx, fresh.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = fleet.DeleteComponent(ctx, "c1")
	assert.ErrorIs(t, err, common.ErrorHasDependents)
	ok, err = fleet.DeleteComponent(ctx, "c2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteShip_CascadeRemovesDependents(t *testing.T) {
	f := newFixture(t)
	fleet := NewFleetService(f.ships, f.components, f.jobs, DeleteCascade, nil)

	ok, err := fleet.DeleteShip(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.False(t, f.ships.Exists("s1"))
	assert.Empty(t, f.components.GetByShipID("s1"))
	assert.Empty(t, f.jobs.GetByShipID("s1"))
	assert.Len(t, f.components.GetByShipID("s2"), 1)

	comps, js := fleet.Orphans()
	assert.Empty(t, comps)
	assert.Empty(t, js)
}

func TestDeleteComponent_Cascade(t *testing.T) {
	f := newFixture(t)
	fleet := NewFleetService(f.ships, f.components, f.jobs, DeleteCascade, nil)

	ok, err := fleet.DeleteComponent(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, f.jobs.All())
}

func TestOverview(t *testing.T) {
	f := newFixture(t)
	fleet := NewFleetService(f.ships, f.components, f.jobs, DeleteOrphan, nil)

	o, ok := fleet.Overview("s1")
	require.True(t, ok)
	assert.Equal(t, "Ever Given", o.Ship.Name)
	require.Len(t, o.Components, 1)
	assert.Equal(t, "c1", o.Components[0].ID)
	require.Len(t, o.Jobs, 1)
	assert.Equal(t, 1, o.ActiveJobs)

	_, ok = fleet.Overview("s404")
	assert.False(t, ok)
}
