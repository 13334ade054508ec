package jobs

import (
	"context"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/collection"
)

// Filter selects jobs; empty fields match everything.
type Filter struct {
	ShipID   string
	Status   models.JobStatus
	Priority models.JobPriority
}

func (f Filter) Match(j models.Job) bool {
	return (f.ShipID == "" || j.ShipID == f.ShipID) &&
		(f.Status == "" || j.Status == f.Status) &&
		(f.Priority == "" || j.Priority == f.Priority)
}

// Repository describes job persistence and lookups.
type Repository interface {
	Load(ctx context.Context) ([]models.Job, error)
	Add(ctx context.Context, j models.Job) (models.Job, error)
	Update(ctx context.Context, id string, patch models.JobPatch) (models.Job, error)
	UpdateStatus(ctx context.Context, id string, status models.JobStatus) (models.Job, error)
	Delete(ctx context.Context, id string) (bool, error)

	// DeleteByShipID removes every job of a ship in one write.
	DeleteByShipID(ctx context.Context, shipID string) (int, error)
	DeleteByComponentID(ctx context.Context, componentID string) (int, error)

	GetByID(id string) (models.Job, bool)
	All() []models.Job
	GetByShipID(shipID string) []models.Job
	GetByComponentID(componentID string) []models.Job
	GetByEngineerID(userID string) []models.Job
	Filter(f Filter) []models.Job
	// ScheduledOn returns the jobs whose scheduledDate is date (YYYY-MM-DD).
	ScheduledOn(date string) []models.Job
	CountByShipID(shipID string) int

	Status() collection.Status
}

type ShipLookup interface {
	Exists(id string) bool
}

type ComponentLookup interface {
	GetByID(id string) (models.Component, bool)
}

type UserLookup interface {
	GetByID(id string) (models.User, bool)
}

// References are the lookups used for reference checks.
type References struct {
	Ships      ShipLookup
	Components ComponentLookup
	Users      UserLookup
}
