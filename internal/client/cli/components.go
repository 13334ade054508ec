package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/services"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

// Components lists every component, or those of one ship.
func (a *App) Components(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermViewFleet); err != nil {
		return err
	}
	switch len(args) {
	case 0:
		return a.printComponents(a.core.Components.All())
	case 1:
		return a.printComponents(a.core.Components.GetByShipID(args[0]))
	}
	return usage("components [shipId]")
}

func (a *App) printComponents(list []models.Component) error {
	now, interval := a.now(), a.core.Config.MaintenanceInterval
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		overdue := ""
		if c.MaintenanceOverdue(now, interval) {
			overdue = "OVERDUE"
		}
		rows = append(rows, []string{
			c.ID, c.ShipID, c.Name, c.SerialNumber, c.InstallDate, orDash(c.LastMaintenanceDate), overdue,
		})
	}
	return a.printTable([]string{"ID", "SHIP", "NAME", "SERIAL", "INSTALLED", "LAST MAINTENANCE", ""}, rows)
}

func (a *App) AddComponent(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermManageComponents); err != nil {
		return err
	}

	var c models.Component
	var err error
	switch len(args) {
	case 0:
		if c.ShipID, err = a.ask("Ship id"); err != nil {
			return err
		}
	case 1:
		c.ShipID = args[0]
	default:
		return usage("addcomp [shipId]")
	}
	if c.Name, err = a.ask("Component name"); err != nil {
		return err
	}
	if c.SerialNumber, err = a.ask("Serial number"); err != nil {
		return err
	}
	if c.InstallDate, err = a.ask("Install date (YYYY-MM-DD)"); err != nil {
		return err
	}
	if c.LastMaintenanceDate, err = a.ask("Last maintenance date (YYYY-MM-DD, empty if never)"); err != nil {
		return err
	}

	added, err := a.core.Components.Add(ctx, c)
	if err != nil {
		return err
	}
	printlnFn("Component id:", added.ID)
	return nil
}

func (a *App) EditComponent(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermManageComponents); err != nil {
		return err
	}
	id, err := oneArg(args, "editcomp <id>")
	if err != nil {
		return err
	}
	cur, ok := a.core.Components.GetByID(id)
	if !ok {
		return fmt.Errorf("%w: component %s", common.ErrorNotFound, id)
	}

	var patch models.ComponentPatch
	fields := []struct {
		prompt  string
		current string
		dst     **string
	}{
		{"Component name", cur.Name, &patch.Name},
		{"Serial number", cur.SerialNumber, &patch.SerialNumber},
		{"Install date", cur.InstallDate, &patch.InstallDate},
		{"Last maintenance date", cur.LastMaintenanceDate, &patch.LastMaintenanceDate},
	}
	for _, f := range fields {
		v, changed, err := a.askDefault(f.prompt, f.current)
		if err != nil {
			return err
		}
		if changed {
			*f.dst = &v
		}
	}

	_, err = a.core.Components.Update(ctx, id, patch)
	return err
}

// DeleteComponent removes a component according to the delete policy.
func (a *App) DeleteComponent(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermDeleteComponents); err != nil {
		return err
	}
	id, err := oneArg(args, "delcomp <id>")
	if err != nil {
		return err
	}
	_, err = a.core.Fleet.DeleteComponent(ctx, id)
	return err
}
