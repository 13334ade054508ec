package ships

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/collection"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/store"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct{ t time.Time }

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newRepo(t *testing.T) (*StoreRepository, *store.Adapter) {
	t.Helper()
	ctx := context.Background()
	db, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	a := store.NewAdapter(store.NewSQLiteStore(db), common.DefaultKeyPrefix)
	clock := &stepClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := NewStoreRepository(collection.Deps{Storage: a, Now: clock.now})
	_, err = r.Load(ctx)
	require.NoError(t, err)
	return r, a
}

func everGiven() models.Ship {
	return models.Ship{Name: "Ever Given", IMO: "9811000", Flag: "Panama", Status: models.ShipStatusActive}
}

func TestAdd_LoadAllContainsRecord(t *testing.T) {
	r, a := newRepo(t)
	ctx := context.Background()

	got, err := r.Add(ctx, everGiven())
	require.NoError(t, err)
	assert.Regexp(t, `^s\d+-`, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)

	fresh := NewStoreRepository(collection.Deps{Storage: a})
	loaded, err := fresh.Load(ctx)
	require.NoError(t, err)

	want := everGiven()
	want.ID, want.CreatedAt, want.UpdatedAt = got.ID, got.CreatedAt, got.UpdatedAt
	if diff := cmp.Diff([]models.Ship{want}, loaded); diff != "" {
		t.Errorf("loaded ships mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd_Validation(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	cases := map[string]func(*models.Ship){
		"missing name": func(s *models.Ship) { s.Name = "" },
		"short imo":    func(s *models.Ship) { s.IMO = "123" },
		"bad status":   func(s *models.Ship) { s.Status = "Sunk" },
		"missing flag": func(s *models.Ship) { s.Flag = " " },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := everGiven()
			mutate(&s)
			_, err := r.Add(ctx, s)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}

	_, err := r.Add(ctx, everGiven())
	require.NoError(t, err)
	_, err = r.Add(ctx, everGiven())
	assert.ErrorIs(t, err, common.ErrorValidation, "duplicate imo")
	assert.Len(t, r.All(), 1)
}

func TestUpdate_PatchOverExisting(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	s, err := r.Add(ctx, everGiven())
	require.NoError(t, err)

	status := models.ShipStatusUnderMaintenance
	got, err := r.Update(ctx, s.ID, models.ShipPatch{Status: &status})
	require.NoError(t, err)

	want := s
	want.Status = status
	want.UpdatedAt = got.UpdatedAt
	assert.Equal(t, want, got)
	assert.True(t, got.UpdatedAt.After(s.UpdatedAt))
	assert.Equal(t, s.CreatedAt, got.CreatedAt)

	byID, ok := r.GetByID(s.ID)
	require.True(t, ok)
	assert.Equal(t, got, byID)
}

func TestDeleteExistsAndFilter(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	a, err := r.Add(ctx, everGiven())
	require.NoError(t, err)
	b, err := r.Add(ctx, models.Ship{Name: "Maersk Alabama", IMO: "9164263", Flag: "USA", Status: models.ShipStatusUnderMaintenance})
	require.NoError(t, err)

	assert.True(t, r.Exists(a.ID))
	assert.Equal(t, []models.Ship{b}, r.FilterByStatus(models.ShipStatusUnderMaintenance))
	assert.Empty(t, r.FilterByStatus(models.ShipStatusDecommissioned))

	for i := 0; i < 2; i++ {
		ok, err := r.Delete(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.False(t, r.Exists(a.ID))
	assert.Equal(t, []models.Ship{b}, r.All())
}
