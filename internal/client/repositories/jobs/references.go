package jobs

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/collection"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

func (refs References) check(op collection.Op, current []models.Job, j models.Job) error {
	var prev *models.Job
	if op == collection.OpUpdate {
		if i := slices.IndexFunc(current, func(x models.Job) bool { return x.ID == j.ID }); i >= 0 {
			prev = &current[i]
		}
	}
	changed := func(field func(models.Job) string) bool {
		return prev == nil || field(*prev) != field(j)
	}

	shipOrComponent := changed(func(x models.Job) string { return x.ShipID + "/" + x.ComponentID })
	if shipOrComponent {
		if err := refs.checkShip(j.ShipID); err != nil {
			return err
		}
		if err := refs.checkComponent(j.ShipID, j.ComponentID); err != nil {
			return err
		}
	}
	if changed(func(x models.Job) string { return x.AssignedEngineerID }) {
		return refs.checkEngineer(j.AssignedEngineerID)
	}
	return nil
}

func (refs References) checkShip(shipID string) error {
	if refs.Ships == nil || refs.Ships.Exists(shipID) {
		return nil
	}
	return fmt.Errorf("%w: ship %s does not exist", common.ErrorValidation, shipID)
}

func (refs References) checkComponent(shipID, componentID string) error {
	if refs.Components == nil {
		return nil
	}
	c, ok := refs.Components.GetByID(componentID)
	if !ok {
		return fmt.Errorf("%w: component %s does not exist", common.ErrorValidation, componentID)
	}
	if c.ShipID != shipID {
		return fmt.Errorf("%w: component %s is installed on ship %s, not %s",
			common.ErrorValidation, componentID, c.ShipID, shipID)
	}
	return nil
}

func (refs References) checkEngineer(userID string) error {
	if userID == "" || refs.Users == nil {
		return nil
	}
	u, ok := refs.Users.GetByID(userID)
	if !ok {
		return fmt.Errorf("%w: user %s does not exist", common.ErrorValidation, userID)
	}
	if u.Role != models.RoleEngineer {
		return fmt.Errorf("%w: user %s is %s, not %s", common.ErrorValidation, userID, u.Role, models.RoleEngineer)
	}
	return nil
}
