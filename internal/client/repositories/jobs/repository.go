package jobs

import (
	"context"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/idgen"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/collection"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/store"
)

type StoreRepository struct {
	c *collection.Collection[models.Job]
}

var _ Repository = (*StoreRepository)(nil)

func NewStoreRepository(deps collection.Deps, refs References) *StoreRepository {
	opts := collection.Options[models.Job]{
		Key:      store.KeyJobs,
		Entity:   "Job",
		IDPrefix: idgen.PrefixJob,
		ID:       func(j models.Job) string { return j.ID },
		Init: func(j *models.Job, id string, now time.Time) {
			j.ID, j.CreatedAt, j.UpdatedAt = id, now, now
		},
		Touch:     func(j *models.Job, now time.Time) { j.UpdatedAt = now },
		UpdatedAt: func(j models.Job) time.Time { return j.UpdatedAt },
		Check:     refs.check,
		Describe:  describe,
	}
	return &StoreRepository{c: collection.New(opts, deps)}
}

func describe(op collection.Op, j models.Job) string {
	switch {
	case op == collection.OpAdd:
		return "Job created"
	case op == collection.OpUpdate && j.Status == models.JobStatusCompleted:
		return "Job completed"
	case op == collection.OpUpdate:
		return "Job updated"
	}
	return ""
}

func (r *StoreRepository) Load(ctx context.Context) ([]models.Job, error) {
	return r.c.Load(ctx)
}

func (r *StoreRepository) Add(ctx context.Context, j models.Job) (models.Job, error) {
	return r.c.Add(ctx, j)
}

func (r *StoreRepository) Update(ctx context.Context, id string, patch models.JobPatch) (models.Job, error) {
	return r.c.Update(ctx, id, patch.Apply)
}

func (r *StoreRepository) UpdateStatus(ctx context.Context, id string, status models.JobStatus) (models.Job, error) {
	return r.Update(ctx, id, models.JobPatch{Status: &status})
}

func (r *StoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.Delete(ctx, id)
}

func (r *StoreRepository) DeleteByShipID(ctx context.Context, shipID string) (int, error) {
	return r.c.DeleteWhere(ctx, func(j models.Job) bool { return j.ShipID == shipID })
}

func (r *StoreRepository) DeleteByComponentID(ctx context.Context, componentID string) (int, error) {
	return r.c.DeleteWhere(ctx, func(j models.Job) bool { return j.ComponentID == componentID })
}

func (r *StoreRepository) GetByID(id string) (models.Job, bool) {
	return r.c.Get(id)
}

func (r *StoreRepository) All() []models.Job {
	return r.c.All()
}

func (r *StoreRepository) GetByShipID(shipID string) []models.Job {
	return r.Filter(Filter{ShipID: shipID})
}

func (r *StoreRepository) GetByComponentID(componentID string) []models.Job {
	return r.c.Filter(func(j models.Job) bool { return j.ComponentID == componentID })
}

func (r *StoreRepository) GetByEngineerID(userID string) []models.Job {
	return r.c.Filter(func(j models.Job) bool { return j.AssignedEngineerID == userID })
}

func (r *StoreRepository) Filter(f Filter) []models.Job {
	return r.c.Filter(f.Match)
}

func (r *StoreRepository) ScheduledOn(date string) []models.Job {
	return r.c.Filter(func(j models.Job) bool { return j.ScheduledDate == date })
}

func (r *StoreRepository) CountByShipID(shipID string) int {
	return r.c.Count(func(j models.Job) bool { return j.ShipID == shipID })
}

func (r *StoreRepository) Status() collection.Status {
	return r.c.Status()
}
