package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/services"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

// Ships lists the fleet, optionally only ships with the given status.
func (a *App) Ships(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermViewFleet); err != nil {
		return err
	}

	list := a.core.Ships.All()
	if len(args) > 0 {
		status, ok := matchChoice(strings.Join(args, " "), models.ShipStatuses)
		if !ok {
			return usage("ships [%s]", choices(models.ShipStatuses))
		}
		list = a.core.Ships.FilterByStatus(status)
	}

	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{
			s.ID, s.Name, s.IMO, s.Flag, string(s.Status),
			strconv.Itoa(len(a.core.Components.GetByShipID(s.ID))),
			a.ago(s.UpdatedAt),
		})
	}
	return a.printTable([]string{"ID", "NAME", "IMO", "FLAG", "STATUS", "COMPONENTS", "UPDATED"}, rows)
}

// ShowShip prints one ship with its components and jobs.
func (a *App) ShowShip(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermViewFleet); err != nil {
		return err
	}
	id, err := oneArg(args, "ship <id>")
	if err != nil {
		return err
	}

	ov, ok := a.core.Fleet.Overview(id)
	if !ok {
		return fmt.Errorf("%w: ship %s", common.ErrorNotFound, id)
	}
	s := ov.Ship
	printlnFn(fmt.Sprintf("%s  %s", s.ID, s.Name))
	printlnFn(fmt.Sprintf("IMO %s, flag %s, %s", s.IMO, s.Flag, s.Status))
	printlnFn(fmt.Sprintf("Created %s, updated %s", a.ago(s.CreatedAt), a.ago(s.UpdatedAt)))
	printlnFn(fmt.Sprintf("Components: %d, jobs: %d (%d active)", len(ov.Components), len(ov.Jobs), ov.ActiveJobs))

	if err := a.printComponents(ov.Components); err != nil {
		return err
	}
	return a.printJobs(ov.Jobs)
}

func (a *App) AddShip(ctx context.Context, _ []string) error {
	if err := a.require(ctx, services.PermManageShips); err != nil {
		return err
	}

	var s models.Ship
	var err error
	if s.Name, err = a.ask("Ship name"); err != nil {
		return err
	}
	if s.IMO, err = a.ask("IMO number (7 digits)"); err != nil {
		return err
	}
	if s.Flag, err = a.ask("Flag"); err != nil {
		return err
	}
	status, _, err := a.askDefault("Status "+choices(models.ShipStatuses), string(models.ShipStatusActive))
	if err != nil {
		return err
	}
	if st, ok := matchChoice(status, models.ShipStatuses); ok {
		s.Status = st
	} else {
		s.Status = models.ShipStatus(status)
	}

	added, err := a.core.Ships.Add(ctx, s)
	if err != nil {
		return err
	}
	printlnFn("Ship id:", added.ID)
	return nil
}

// EditShip prompts for every field, keeping the current value on empty input.
func (a *App) EditShip(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermManageShips); err != nil {
		return err
	}
	id, err := oneArg(args, "editship <id>")
	if err != nil {
		return err
	}
	cur, ok := a.core.Ships.GetByID(id)
	if !ok {
		return fmt.Errorf("%w: ship %s", common.ErrorNotFound, id)
	}

	var patch models.ShipPatch
	if v, changed, err := a.askDefault("Ship name", cur.Name); err != nil {
		return err
	} else if changed {
		patch.Name = &v
	}
	if v, changed, err := a.askDefault("IMO number", cur.IMO); err != nil {
		return err
	} else if changed {
		patch.IMO = &v
	}
	if v, changed, err := a.askDefault("Flag", cur.Flag); err != nil {
		return err
	} else if changed {
		patch.Flag = &v
	}
	if v, changed, err := a.askDefault("Status "+choices(models.ShipStatuses), string(cur.Status)); err != nil {
		return err
	} else if changed {
		st, ok := matchChoice(v, models.ShipStatuses)
		if !ok {
			st = models.ShipStatus(v)
		}
		patch.Status = &st
	}

	_, err = a.core.Ships.Update(ctx, id, patch)
	return err
}

// DeleteShip removes a ship according to the configured delete policy.
func (a *App) DeleteShip(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermDeleteShips); err != nil {
		return err
	}
	id, err := oneArg(args, "delship <id>")
	if err != nil {
		return err
	}
	if _, err := a.core.Fleet.DeleteShip(ctx, id); err != nil {
		return err
	}
	if a.core.Fleet.Policy() == services.DeleteOrphan {
		if n := len(a.core.Components.GetByShipID(id)) + len(a.core.Jobs.GetByShipID(id)); n > 0 {
			printlnFn(fmt.Sprintf("%d components/jobs still reference %s; see 'orphans'.", n, id))
		}
	}
	return nil
}
