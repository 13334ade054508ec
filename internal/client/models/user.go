package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

// Role gates which operations an identity may invoke.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleInspector Role = "Inspector"
	RoleEngineer  Role = "Engineer"
)

// Roles lists every known role.
var Roles = []Role{RoleAdmin, RoleInspector, RoleEngineer}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInspector, RoleEngineer:
		return true
	}
	return false
}

// User is a local account. Password is compared as plain text.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Email) == "" || !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: valid email is required", common.ErrorValidation)
	}
	if u.Password == "" {
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	if !u.Role.Valid() {
		return fmt.Errorf("%w: unsupported role %q", common.ErrorValidation, u.Role)
	}
	return nil
}

type UserPatch struct {
	Email    *string
	Password *string
	Role     *Role
}

func (p UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}
