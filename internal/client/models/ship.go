package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

type ShipStatus string

const (
	ShipStatusActive           ShipStatus = "Active"
	ShipStatusUnderMaintenance ShipStatus = "Under Maintenance"
	ShipStatusDecommissioned   ShipStatus = "Decommissioned"
)

var ShipStatuses = []ShipStatus{ShipStatusActive, ShipStatusUnderMaintenance, ShipStatusDecommissioned}

func (s ShipStatus) Valid() bool {
	switch s {
	case ShipStatusActive, ShipStatusUnderMaintenance, ShipStatusDecommissioned:
		return true
	}
	return false
}

type Ship struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	IMO       string     `json:"imo"`
	Flag      string     `json:"flag"`
	Status    ShipStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (s Ship) Validate() error {
	if err := requireText("name", s.Name); err != nil {
		return err
	}
	if err := validateIMO(s.IMO); err != nil {
		return err
	}
	if err := requireText("flag", s.Flag); err != nil {
		return err
	}
	if !s.Status.Valid() {
		return fmt.Errorf("%w: unsupported ship status %q", common.ErrorValidation, s.Status)
	}
	return nil
}

// validateIMO checks for the seven-digit IMO ship identification number.
func validateIMO(imo string) error {
	if len(imo) != 7 {
		return fmt.Errorf("%w: imo must be 7 digits, got %q", common.ErrorValidation, imo)
	}
	for _, r := range imo {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: imo must be 7 digits, got %q", common.ErrorValidation, imo)
		}
	}
	return nil
}

type ShipPatch struct {
	Name   *string
	IMO    *string
	Flag   *string
	Status *ShipStatus
}

func (p ShipPatch) Apply(s *Ship) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.IMO != nil {
		s.IMO = *p.IMO
	}
	if p.Flag != nil {
		s.Flag = *p.Flag
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}
