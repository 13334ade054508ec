package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

// Component is a piece of equipment installed on exactly one ship.
type Component struct {
	ID                  string    `json:"id"`
	ShipID              string    `json:"shipId"`
	Name                string    `json:"name"`
	SerialNumber        string    `json:"serialNumber"`
	InstallDate         string    `json:"installDate"`
	LastMaintenanceDate string    `json:"lastMaintenanceDate"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (c Component) Validate() error {
	if err := requireText("shipId", c.ShipID); err != nil {
		return err
	}
	if err := requireText("name", c.Name); err != nil {
		return err
	}
	if err := requireText("serialNumber", c.SerialNumber); err != nil {
		return err
	}
	if err := requireDate("installDate", c.InstallDate); err != nil {
		return err
	}
	if err := optionalDate("lastMaintenanceDate", c.LastMaintenanceDate); err != nil {
		return err
	}
	if c.LastMaintenanceDate != "" && c.LastMaintenanceDate < c.InstallDate {
		return fmt.Errorf("%w: lastMaintenanceDate %s is before installDate %s",
			common.ErrorValidation, c.LastMaintenanceDate, c.InstallDate)
	}
	return nil
}

// MaintenanceOverdue reports whether the component has gone longer than
// interval since its last maintenance (or installation, if never maintained).
func (c Component) MaintenanceOverdue(now time.Time, interval time.Duration) bool {
	ref := c.LastMaintenanceDate
	if ref == "" {
		ref = c.InstallDate
	}
	last, err := ParseDate(ref)
	if err != nil {
		return false
	}
	return now.Sub(last) > interval
}

// ComponentPatch has no ShipID: a component never moves between ships.
type ComponentPatch struct {
	Name                *string
	SerialNumber        *string
	InstallDate         *string
	LastMaintenanceDate *string
}

func (p ComponentPatch) Apply(c *Component) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.SerialNumber != nil {
		c.SerialNumber = *p.SerialNumber
	}
	if p.InstallDate != nil {
		c.InstallDate = *p.InstallDate
	}
	if p.LastMaintenanceDate != nil {
		c.LastMaintenanceDate = *p.LastMaintenanceDate
	}
}
