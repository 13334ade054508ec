package users

import (
	"context"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/collection"
)

// Repository describes user persistence and lookups. Reads are served from
// the in-memory cache filled by Load.
type Repository interface {
	// Load reads the stored collection into the cache.
	Load(ctx context.Context) ([]models.User, error)

	// Add assigns an id and persists a new user.
	Add(ctx context.Context, u models.User) (models.User, error)

	// Update merges patch into the user with id.
	Update(ctx context.Context, id string, patch models.UserPatch) (models.User, error)

	// Delete removes the user with id; unknown ids are not an error.
	Delete(ctx context.Context, id string) (bool, error)

	GetByID(id string) (models.User, bool)
	GetByEmail(email string) (models.User, bool)

	// FindByCredentials matches email and password exactly.
	FindByCredentials(email, password string) (models.User, bool)

	All() []models.User
	ListByRole(role models.Role) []models.User
	Engineers() []models.User

	Status() collection.Status
}
