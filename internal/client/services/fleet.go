package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/components"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/jobs"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/ships"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/dmitrijs2005/fleetkeeper/internal/logging"
)

// DeletePolicy decides what deleting a ship or component does to the
// records that reference it.
type DeletePolicy string

const (
	// DeleteOrphan removes only the record; dependents keep their ids.
	DeleteOrphan DeletePolicy = "orphan"
	// DeleteRestrict refuses while dependents exist.
	DeleteRestrict DeletePolicy = "restrict"
	// DeleteCascade removes dependents first.
	DeleteCascade DeletePolicy = "cascade"
)

// ParseDeletePolicy accepts orphan, restrict or cascade.
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch p := DeletePolicy(s); p {
	case DeleteOrphan, DeleteRestrict, DeleteCascade:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown delete policy %q", common.ErrorValidation, s)
}

// ShipOverview is a ship together with what hangs off it.
type ShipOverview struct {
	Ship       models.Ship
	Components []models.Component
	Jobs       []models.Job
	ActiveJobs int
}

// FleetService runs operations spanning several repositories.
type FleetService interface {
	Policy() DeletePolicy
	DeleteShip(ctx context.Context, id string) (bool, error)
	DeleteComponent(ctx context.Context, id string) (bool, error)
	Overview(shipID string) (ShipOverview, bool)
	// Orphans lists components and jobs whose ship no longer exists.
	Orphans() ([]models.Component, []models.Job)
}

type fleetService struct {
	ships      ships.Repository
	components components.Repository
	jobs       jobs.Repository
	policy     DeletePolicy
	log        logging.Logger
}

func NewFleetService(s ships.Repository, c components.Repository, j jobs.Repository, policy DeletePolicy, log logging.Logger) FleetService {
	if policy == "" {
		policy = DeleteOrphan
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &fleetService{ships: s, components: c, jobs: j, policy: policy, log: log.With("component", "fleet")}
}

func (f *fleetService) Policy() DeletePolicy { return f.policy }

func (f *fleetService) DeleteShip(ctx context.Context, id string) (bool, error) {
	switch f.policy {
	case DeleteRestrict:
		nc, nj := f.components.CountByShipID(id), f.jobs.CountByShipID(id)
		if nc+nj > 0 {
			return false, fmt.Errorf("%w: ship %s has %d components and %d jobs", common.ErrorHasDependents, id, nc, nj)
		}
	case DeleteCascade:
		nj, err := f.jobs.DeleteByShipID(ctx, id)
		if err != nil {
			return false, fmt.Errorf("delete jobs of ship %s: %w", id, err)
		}
		nc, err := f.components.DeleteByShipID(ctx, id)
		if err != nil {
			return false, fmt.Errorf("delete components of ship %s: %w", id, err)
		}
		f.log.Info(ctx, "cascade delete", "ship", id, "components", nc, "jobs", nj)
	}
	return f.ships.Delete(ctx, id)
}

func (f *fleetService) DeleteComponent(ctx context.Context, id string) (bool, error) {
	switch f.policy {
	case DeleteRestrict:
		if n := len(f.jobs.GetByComponentID(id)); n > 0 {
			return false, fmt.Errorf("%w: component %s has %d jobs", common.ErrorHasDependents, id, n)
		}
	case DeleteCascade:
		nj, err := f.jobs.DeleteByComponentID(ctx, id)
		if err != nil {
			return false, fmt.Errorf("delete jobs of component %s: %w", id, err)
		}
		f.log.Info(ctx, "cascade delete", "component", id, "jobs", nj)
	}
	return f.components.Delete(ctx, id)
}

func (f *fleetService) Overview(shipID string) (ShipOverview, bool) {
	ship, ok := f.ships.GetByID(shipID)
	if !ok {
		return ShipOverview{}, false
	}
	o := ShipOverview{
		Ship:       ship,
		Components: f.components.GetByShipID(shipID),
		Jobs:       f.jobs.GetByShipID(shipID),
	}
	for _, j := range o.Jobs {
		if j.Active() {
			o.ActiveJobs++
		}
	}
	return o, true
}

func (f *fleetService) Orphans() ([]models.Component, []models.Job) {
	var comps []models.Component
	for _, c := range f.components.All() {
		if !f.ships.Exists(c.ShipID) {
			comps = append(comps, c)
		}
	}
	var js []models.Job
	for _, j := range f.jobs.All() {
		if !f.ships.Exists(j.ShipID) {
			js = append(js, j)
		}
	}
	return comps, js
}
