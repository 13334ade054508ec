package components

import (
	"context"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/collection"
)

// Repository describes component persistence and lookups.
type Repository interface {
	Load(ctx context.Context) ([]models.Component, error)
	Add(ctx context.Context, c models.Component) (models.Component, error)
	Update(ctx context.Context, id string, patch models.ComponentPatch) (models.Component, error)
	Delete(ctx context.Context, id string) (bool, error)

	// DeleteByShipID removes every component of a ship in one write.
	DeleteByShipID(ctx context.Context, shipID string) (int, error)

	GetByID(id string) (models.Component, bool)
	Exists(id string) bool
	All() []models.Component
	GetByShipID(shipID string) []models.Component
	CountByShipID(shipID string) int

	Status() collection.Status
}

// ShipLookup is what the repository needs to know about ships.
type ShipLookup interface {
	Exists(id string) bool
}
