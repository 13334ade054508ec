package cli

import (
	"context"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/services"
)

// Notifications lists the notifications that have not expired yet.
func (a *App) Notifications(ctx context.Context, _ []string) error {
	if err := a.require(ctx, services.PermViewFleet); err != nil {
		return err
	}
	list := a.core.Notifier.List()
	rows := make([][]string, 0, len(list))
	for _, n := range list {
		rows = append(rows, []string{n.ID, string(n.Type), n.Message, a.ago(n.CreatedAt)})
	}
	return a.printTable([]string{"ID", "TYPE", "MESSAGE", "WHEN"}, rows)
}

func (a *App) Dismiss(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermViewFleet); err != nil {
		return err
	}
	id, err := oneArg(args, "dismiss <id>")
	if err != nil {
		return err
	}
	a.core.Notifier.Remove(id)
	return nil
}
