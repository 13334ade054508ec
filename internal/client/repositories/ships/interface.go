package ships

import (
	"context"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/collection"
)

// Repository describes ship persistence and lookups.
type Repository interface {
	Load(ctx context.Context) ([]models.Ship, error)
	Add(ctx context.Context, s models.Ship) (models.Ship, error)
	Update(ctx context.Context, id string, patch models.ShipPatch) (models.Ship, error)
	Delete(ctx context.Context, id string) (bool, error)

	GetByID(id string) (models.Ship, bool)
	Exists(id string) bool
	All() []models.Ship
	FilterByStatus(status models.ShipStatus) []models.Ship

	Status() collection.Status
}
