package users

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

// StoreRepository implements Repository on a collection.Collection.
type StoreRepository struct {
	c *collection.Collection[models.User]
}

var _ Repository = (*StoreRepository)(nil)

func NewStoreRepository(deps collection.Deps) *StoreRepository {
	opts := collection.Options[models.User]{
		Key:      store.KeyUsers,
		Entity:   "User",
		IDPrefix: idgen.PrefixUser,
		ID:       func(u models.User) string { return u.ID },
		Init:     func(u *models.User, id string, _ time.Time) { u.ID = id },
		Check:    uniqueEmail,
	}
	return &StoreRepository{c: collection.New(opts, deps)}
}

func uniqueEmail(_ collection.Op, current []models.User, u models.User) error {
	for _, other := range current {
		if other.Email == u.Email && other.ID != u.ID {
			return fmt.Errorf("%w: email %s is already registered", common.ErrorValidation, u.Email)
		}
	}
	return nil
}

func (r *StoreRepository) Load(ctx context.Context) ([]models.User, error) {
	return r.c.Load(ctx)
}

func (r *StoreRepository) Add(ctx context.Context, u models.User) (models.User, error) {
	return r.c.Add(ctx, u)
}

func (r *StoreRepository) Update(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	return r.c.Update(ctx, id, patch.Apply)
}

func (r *StoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.Delete(ctx, id)
}

func (r *StoreRepository) GetByID(id string) (models.User, bool) {
	return r.c.Get(id)
}

func (r *StoreRepository) GetByEmail(email string) (models.User, bool) {
	return first(r.c.Filter(func(u models.User) bool { return u.Email == email }))
}

func (r *StoreRepository) FindByCredentials(email, password string) (models.User, bool) {
	return first(r.c.Filter(func(u models.User) bool {
		return u.Email == email && u.Password == password
	}))
}

func (r *StoreRepository) All() []models.User {
	return r.c.All()
}

func (r *StoreRepository) ListByRole(role models.Role) []models.User {
	return r.c.Filter(func(u models.User) bool { return u.Role == role })
}

func (r *StoreRepository) Engineers() []models.User {
	return r.ListByRole(models.RoleEngineer)
}

func (r *StoreRepository) Status() collection.Status {
	return r.c.Status()
}

func first(list []models.User) (models.User, bool) {
	if len(list) == 0 {
		return models.User{}, false
	}
	return list[0], true
}
