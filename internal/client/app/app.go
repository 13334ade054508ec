// Package app wires the fleetkeeper data layer together.
//
// New builds every collaborator exactly once: the store, the notification
// broadcaster, the four entity repositories and the services on top of
// them. Nothing in the tree reaches for package-level singletons; the CLI
// receives an *App and talks to its fields.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/config"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/notify"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/collection"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/components"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/jobs"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/ships"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/users"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/seed"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/services"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/store"
	"github.com/dmitrijs2005/fleetkeeper/internal/filex"
	"github.com/dmitrijs2005/fleetkeeper/internal/logging"
	"github.com/dmitrijs2005/fleetkeeper/internal/metrics"
)

const memoryDSN = ":memory:"

type App struct {
	Config *config.Config
	Log    logging.Logger

	Store    *store.Adapter
	Notifier *notify.Broadcaster
	Metrics  *metrics.Metrics

	Users      users.Repository
	Ships      ships.Repository
	Components components.Repository
	Jobs       jobs.Repository

	Access    services.AccessControl
	Fleet     services.FleetService
	Dashboard services.DashboardService

	db  *sql.DB
	now func() time.Time
}

// Option adjusts App construction.
type Option func(*App)

// WithClock replaces time.Now for seeding and record stamps.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New opens the database named by cfg, seeds missing collections and
// constructs the repositories and services. Collections are not loaded yet;
// call Load.
func New(ctx context.Context, cfg *config.Config, log logging.Logger, opts ...Option) (*App, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}
	policy, err := services.ParseDeletePolicy(cfg.ShipDeletePolicy)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, Log: log, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}

	dsn := cfg.DatabasePath
	if dsn != memoryDSN {
		if dsn, err = filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("data directory: %w", err)
		}
	}

	db, err := store.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	a.db = db

	written, err := seed.Seed(ctx, db, cfg.KeyPrefix, a.now())
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if len(written) > 0 {
		log.Info(ctx, "seeded demo data", "keys", written)
	}

	a.Metrics = metrics.New()
	a.Notifier = notify.New(cfg.NotificationDuration, a.Metrics)
	a.Store = store.NewAdapter(store.NewSQLiteStore(db), cfg.KeyPrefix)

	deps := collection.Deps{
		Storage:  a.Store,
		Notifier: a.Notifier,
		Logger:   log,
		Metrics:  a.Metrics,
		Now:      a.now,
	}
	u := users.NewStoreRepository(deps)
	s := ships.NewStoreRepository(deps)
	c := components.NewStoreRepository(deps, s)
	j := jobs.NewStoreRepository(deps, jobs.References{Ships: s, Components: c, Users: u})
	a.Users, a.Ships, a.Components, a.Jobs = u, s, c, j

	a.Access = services.NewAccessControl(u, a.Store, log, a.Metrics)
	a.Fleet = services.NewFleetService(s, c, j, policy, log)
	a.Dashboard = services.NewDashboardService(s, c, j, cfg.MaintenanceInterval)
	return a, nil
}

// Load reads the four collections concurrently and then restores the saved
// session. The first storage error is returned; the failing repository keeps
// it in its Status as well.
func (a *App) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := a.Users.Load(gctx)
		return err
	})
	g.Go(func() error {
		_, err := a.Ships.Load(gctx)
		return err
	})
	g.Go(func() error {
		_, err := a.Components.Load(gctx)
		return err
	})
	g.Go(func() error {
		_, err := a.Jobs.Load(gctx)
		return err
	})
	err := g.Wait()

	a.Access.Resolve(ctx)
	return err
}

// ResetAll clears the namespace, writes the demo data again and reloads
// every collection. The saved session is gone afterwards.
func (a *App) ResetAll(ctx context.Context) error {
	if err := seed.ResetAll(ctx, a.db, a.Config.KeyPrefix, a.now()); err != nil {
		a.Notifier.Error(fmt.Sprintf("Failed to reset data: %v", err))
		return err
	}
	if err := a.Load(ctx); err != nil {
		return err
	}
	a.Notifier.Success("All data reset to demo defaults")
	return nil
}

// Close stops pending notification timers and closes the database.
func (a *App) Close() error {
	a.Notifier.Close()
	return a.db.Close()
}
