package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/services"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

const defaultCalendarDays = 7

// Dashboard prints the KPI figures and the components due for maintenance.
func (a *App) Dashboard(ctx context.Context, _ []string) error {
	if err := a.require(ctx, services.PermViewFleet); err != nil {
		return err
	}
	now := a.now()
	k := a.core.Dashboard.KPIs(now)

	printlnFn(fmt.Sprintf("Total ships:          %d", k.TotalShips))
	printlnFn(fmt.Sprintf("Overdue maintenance:  %d", k.OverdueMaintenance))
	printlnFn(fmt.Sprintf("Jobs in progress:     %d", k.JobsInProgress))
	printlnFn(fmt.Sprintf("Jobs completed:       %d", k.JobsCompleted))
	printlnFn(fmt.Sprintf("Overdue jobs:         %d", k.OverdueJobs))

	printCounts("Ships by status", models.ShipStatuses, k.ShipsByStatus)
	printCounts("Jobs by status", models.JobStatuses, k.JobsByStatus)
	printCounts("Jobs by priority", models.JobPriorities, k.JobsByPriority)

	overdue := a.core.Dashboard.OverdueComponents(now)
	if len(overdue) == 0 {
		return nil
	}
	printlnFn("Components due for maintenance:")
	return a.printComponents(overdue)
}

func printCounts[T ~string](title string, order []T, counts map[T]int) {
	printlnFn(title + ":")
	for _, k := range order {
		printlnFn(fmt.Sprintf("  %-18s %d", k, counts[k]))
	}
}

// Calendar lists the jobs scheduled on each day of a window starting at
// the given date (today by default).
func (a *App) Calendar(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermViewFleet); err != nil {
		return err
	}
	if len(args) > 2 {
		return usage("calendar [YYYY-MM-DD] [days]")
	}

	from := a.now()
	days := defaultCalendarDays
	if len(args) > 0 {
		d, err := models.ParseDate(args[0])
		if err != nil {
			return usage("calendar [YYYY-MM-DD] [days]")
		}
		from = d
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 || n > services.MaxCalendarDays {
			return usage("calendar [YYYY-MM-DD] [days]")
		}
		days = n
	}

	byDate := a.core.Dashboard.Calendar(from, days)
	if len(byDate) == 0 {
		printlnFn(fmt.Sprintf("No jobs scheduled from %s for %d days.", from.Format(common.DateLayout), days))
		return nil
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	slices.Sort(dates)
	for _, d := range dates {
		day, _ := time.Parse(common.DateLayout, d)
		printlnFn(fmt.Sprintf("%s (%s)", d, day.Weekday()))
		for _, j := range byDate[d] {
			printlnFn(fmt.Sprintf("  %s  %s %s on %s/%s [%s]", j.ID, j.Priority, j.Type, j.ShipID, j.ComponentID, j.Status))
		}
	}
	return nil
}

// Orphans lists components and jobs whose ship no longer exists.
func (a *App) Orphans(ctx context.Context, _ []string) error {
	if err := a.require(ctx, services.PermViewFleet); err != nil {
		return err
	}
	comps, js := a.core.Fleet.Orphans()
	printlnFn("Orphaned components:")
	if err := a.printComponents(comps); err != nil {
		return err
	}
	printlnFn("Orphaned jobs:")
	return a.printJobs(js)
}
