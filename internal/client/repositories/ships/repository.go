package ships

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/idgen"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/collection"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/store"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

type StoreRepository struct {
	c *collection.Collection[models.Ship]
}

var _ Repository = (*StoreRepository)(nil)

func NewStoreRepository(deps collection.Deps) *StoreRepository {
	opts := collection.Options[models.Ship]{
		Key:      store.KeyShips,
		Entity:   "Ship",
		IDPrefix: idgen.PrefixShip,
		ID:       func(s models.Ship) string { return s.ID },
		Init: func(s *models.Ship, id string, now time.Time) {
			s.ID, s.CreatedAt, s.UpdatedAt = id, now, now
		},
		Touch:     func(s *models.Ship, now time.Time) { s.UpdatedAt = now },
		UpdatedAt: func(s models.Ship) time.Time { return s.UpdatedAt },
		Check:     uniqueIMO,
	}
	return &StoreRepository{c: collection.New(opts, deps)}
}

// uniqueIMO rejects a second ship with the same IMO number.
func uniqueIMO(_ collection.Op, current []models.Ship, s models.Ship) error {
	for _, other := range current {
		if other.IMO == s.IMO && other.ID != s.ID {
			return fmt.Errorf("%w: imo %s already belongs to %s", common.ErrorValidation, s.IMO, other.Name)
		}
	}
	return nil
}

func (r *StoreRepository) Load(ctx context.Context) ([]models.Ship, error) {
	return r.c.Load(ctx)
}

func (r *StoreRepository) Add(ctx context.Context, s models.Ship) (models.Ship, error) {
	return r.c.Add(ctx, s)
}

func (r *StoreRepository) Update(ctx context.Context, id string, patch models.ShipPatch) (models.Ship, error) {
	return r.c.Update(ctx, id, patch.Apply)
}

func (r *StoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.Delete(ctx, id)
}

func (r *StoreRepository) GetByID(id string) (models.Ship, bool) {
	return r.c.Get(id)
}

func (r *StoreRepository) Exists(id string) bool {
	_, ok := r.c.Get(id)
	return ok
}

func (r *StoreRepository) All() []models.Ship {
	return r.c.All()
}

func (r *StoreRepository) FilterByStatus(status models.ShipStatus) []models.Ship {
	return r.c.Filter(func(s models.Ship) bool { return s.Status == status })
}

func (r *StoreRepository) Status() collection.Status {
	return r.c.Status()
}
