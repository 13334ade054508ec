package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/services"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

// Users lists accounts without their passwords.
func (a *App) Users(ctx context.Context, _ []string) error {
	if err := a.require(ctx, services.PermManageUsers); err != nil {
		return err
	}
	list := a.core.Users.All()
	rows := make([][]string, 0, len(list))
	for _, u := range list {
		rows = append(rows, []string{u.ID, u.Email, string(u.Role), fmt.Sprint(len(a.core.Jobs.GetByEngineerID(u.ID)))})
	}
	return a.printTable([]string{"ID", "EMAIL", "ROLE", "JOBS"}, rows)
}

func (a *App) AddUser(ctx context.Context, _ []string) error {
	if err := a.require(ctx, services.PermManageUsers); err != nil {
		return err
	}

	var u models.User
	var err error
	if u.Email, err = a.ask("Email"); err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	u.Password = string(password)
	common.WipeByteArray(password)
	if u.Role, err = askChoice(a, "Role", models.Roles, models.RoleEngineer); err != nil {
		return err
	}

	added, err := a.core.Users.Add(ctx, u)
	if err != nil {
		return err
	}
	printlnFn("User id:", added.ID)
	return nil
}

// DeleteUser removes an account other than the signed-in one.
func (a *App) DeleteUser(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermManageUsers); err != nil {
		return err
	}
	id, err := oneArg(args, "deluser <id>")
	if err != nil {
		return err
	}
	if who, _ := a.core.Access.Identity(); who.ID == id {
		return fmt.Errorf("%w: cannot delete the signed-in user", common.ErrorValidation)
	}
	_, err = a.core.Users.Delete(ctx, id)
	return err
}

// Reset wipes every collection back to the demo data after confirmation.
// The session is cleared as well.
func (a *App) Reset(ctx context.Context, _ []string) error {
	if err := a.require(ctx, services.PermResetData); err != nil {
		return err
	}
	answer, err := a.ask("This deletes all data and signs you out. Type 'yes' to continue")
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Cancelled.")
		return nil
	}
	return a.core.ResetAll(ctx)
}

// Stats prints the non-zero operation counters.
func (a *App) Stats(ctx context.Context, _ []string) error {
	if err := a.require(ctx, services.PermViewFleet); err != nil {
		return err
	}
	lines, err := a.core.Metrics.Snapshot()
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		printlnFn("(no activity)")
	}
	for _, l := range lines {
		printlnFn(l)
	}
	return nil
}
