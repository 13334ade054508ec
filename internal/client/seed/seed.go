// Package seed writes the demonstration dataset on first run.
//
// Each of the users, ships, components and jobs keys is written only when it
// is absent or holds an empty collection, so a partially seeded store is
// completed and user data is never overwritten. All writes happen in one
// transaction.
package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/store"
	"github.com/dmitrijs2005/fleetkeeper/internal/dbx"
)

// Data is one full dataset.
type Data struct {
	Users      []models.User
	Ships      []models.Ship
	Components []models.Component
	Jobs       []models.Job
}

// Demo returns the demonstration dataset stamped with now.
func Demo(now time.Time) Data {
	return Data{
		Users: []models.User{
			{ID: "1", Email: "admin@entnt.in", Password: "admin123", Role: models.RoleAdmin},
			{ID: "2", Email: "inspector@entnt.in", Password: "inspect123", Role: models.RoleInspector},
			{ID: "3", Email: "engineer@entnt.in", Password: "engine123", Role: models.RoleEngineer},
		},
		Ships: []models.Ship{
			{ID: "s1", Name: "Ever Given", IMO: "9811000", Flag: "Panama", Status: models.ShipStatusActive, CreatedAt: now, UpdatedAt: now},
			{ID: "s2", Name: "Maersk Alabama", IMO: "9164263", Flag: "USA", Status: models.ShipStatusUnderMaintenance, CreatedAt: now, UpdatedAt: now},
		},
		Components: []models.Component{
			{ID: "c1", ShipID: "s1", Name: "Main Engine", SerialNumber: "ME-1234", InstallDate: "2020-01-10", LastMaintenanceDate: "2024-03-12", CreatedAt: now, UpdatedAt: now},
			{ID: "c2", ShipID: "s2", Name: "Radar", SerialNumber: "RAD-5678", InstallDate: "2021-07-18", LastMaintenanceDate: "2023-12-01", CreatedAt: now, UpdatedAt: now},
		},
		Jobs: []models.Job{
			{
				ID:                 "j1",
				ShipID:             "s1",
				ComponentID:        "c1",
				Type:               models.JobTypeInspection,
				Priority:           models.JobPriorityHigh,
				Status:             models.JobStatusOpen,
				AssignedEngineerID: "3",
				ScheduledDate:      "2025-05-05",
				CreatedAt:          now,
				UpdatedAt:          now,
			},
		},
	}
}

// Seed fills every absent or empty collection with the demo dataset and
// returns the keys it wrote.
func Seed(ctx context.Context, db *sql.DB, prefix string, now time.Time) ([]string, error) {
	return seed(ctx, db, prefix, now, false)
}

// ResetAll removes everything under prefix, including the saved session,
// and seeds again.
func ResetAll(ctx context.Context, db *sql.DB, prefix string, now time.Time) error {
	_, err := seed(ctx, db, prefix, now, true)
	return err
}

func seed(ctx context.Context, db *sql.DB, prefix string, now time.Time, reset bool) ([]string, error) {
	data := Demo(now)
	values := map[string]any{
		store.KeyUsers:      data.Users,
		store.KeyShips:      data.Ships,
		store.KeyComponents: data.Components,
		store.KeyJobs:       data.Jobs,
	}
	order := []string{store.KeyUsers, store.KeyShips, store.KeyComponents, store.KeyJobs}

	var written []string
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		a := store.NewAdapter(store.NewSQLiteStore(tx), prefix)
		if reset {
			if err := a.Clear(ctx); err != nil {
				return err
			}
		}
		for _, key := range order {
			empty, err := isEmpty(ctx, a, key)
			if err != nil {
				return err
			}
			if !empty {
				continue
			}
			if err := a.Set(ctx, key, values[key]); err != nil {
				return err
			}
			written = append(written, key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return written, nil
}

func isEmpty(ctx context.Context, a *store.Adapter, key string) (bool, error) {
	var items []json.RawMessage
	found, err := a.Get(ctx, key, &items)
	if err != nil {
		return false, err
	}
	return !found || len(items) == 0, nil
}
