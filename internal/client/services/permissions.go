package services

import "github.com/dmitrijs2005/fleetkeeper/internal/client/models"

// Permission names one gated operation.
type Permission string

const (
	PermViewFleet        Permission = "fleet:view"
	PermManageShips      Permission = "ships:manage"
	PermDeleteShips      Permission = "ships:delete"
	PermManageComponents Permission = "components:manage"
	PermDeleteComponents Permission = "components:delete"
	PermCreateJobs       Permission = "jobs:create"
	PermEditJobs         Permission = "jobs:edit"
	PermUpdateJobStatus  Permission = "jobs:status"
	PermDeleteJobs       Permission = "jobs:delete"
	PermManageUsers      Permission = "users:manage"
	PermResetData        Permission = "data:reset"
)

var (
	everyone       = []models.Role{models.RoleAdmin, models.RoleInspector, models.RoleEngineer}
	adminOnly      = []models.Role{models.RoleAdmin}
	adminInspector = []models.Role{models.RoleAdmin, models.RoleInspector}
)

// permissions is the single table of which roles may do what.
var permissions = map[Permission][]models.Role{
	PermViewFleet:        everyone,
	PermManageShips:      adminInspector,
	PermDeleteShips:      adminOnly,
	PermManageComponents: adminInspector,
	PermDeleteComponents: adminOnly,
	PermCreateJobs:       adminInspector,
	PermEditJobs:         adminOnly,
	PermUpdateJobStatus:  everyone,
	PermDeleteJobs:       adminOnly,
	PermManageUsers:      adminOnly,
	PermResetData:        adminOnly,
}

// RolesFor returns the roles allowed to perform p. Unknown permissions are
// allowed to nobody.
func RolesFor(p Permission) []models.Role {
	return permissions[p]
}
