package components

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
	c *collection.Collection[models.Component]
}

var _ Repository = (*StoreRepository)(nil)

// NewStoreRepository builds the repository. With a nil ships lookup the
// ship reference is not checked.
func NewStoreRepository(deps collection.Deps, ships ShipLookup) *StoreRepository {
	opts := collection.Options[models.Component]{
		Key:      store.KeyComponents,
		Entity:   "Component",
		IDPrefix: idgen.PrefixComponent,
		ID:       func(c models.Component) string { return c.ID },
		Init: func(c *models.Component, id string, now time.Time) {
			c.ID, c.CreatedAt, c.UpdatedAt = id, now, now
		},
		Touch:     func(c *models.Component, now time.Time) { c.UpdatedAt = now },
		UpdatedAt: func(c models.Component) time.Time { return c.UpdatedAt },
		Check: func(op collection.Op, _ []models.Component, c models.Component) error {
			if op != collection.OpAdd || ships == nil {
				return nil
			}
			if !ships.Exists(c.ShipID) {
				return fmt.Errorf("%w: ship %s does not exist", common.ErrorValidation, c.ShipID)
			}
			return nil
		},
	}
	return &StoreRepository{c: collection.New(opts, deps)}
}

func (r *StoreRepository) Load(ctx context.Context) ([]models.Component, error) {
	return r.c.Load(ctx)
}

func (r *StoreRepository) Add(ctx context.Context, c models.Component) (models.Component, error) {
	return r.c.Add(ctx, c)
}

func (r *StoreRepository) Update(ctx context.Context, id string, patch models.ComponentPatch) (models.Component, error) {
	return r.c.Update(ctx, id, patch.Apply)
}

func (r *StoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.Delete(ctx, id)
}

func (r *StoreRepository) DeleteByShipID(ctx context.Context, shipID string) (int, error) {
	return r.c.DeleteWhere(ctx, func(c models.Component) bool { return c.ShipID == shipID })
}

func (r *StoreRepository) GetByID(id string) (models.Component, bool) {
	return r.c.Get(id)
}

func (r *StoreRepository) Exists(id string) bool {
	_, ok := r.c.Get(id)
	return ok
}

func (r *StoreRepository) All() []models.Component {
	return r.c.All()
}

func (r *StoreRepository) GetByShipID(shipID string) []models.Component {
	return r.c.Filter(func(c models.Component) bool { return c.ShipID == shipID })
}

func (r *StoreRepository) CountByShipID(shipID string) int {
	return r.c.Count(func(c models.Component) bool { return c.ShipID == shipID })
}

func (r *StoreRepository) Status() collection.Status {
	return r.c.Status()
}
