package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/jobs"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/services"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

const jobsUsage = "jobs [ship=<id>] [status=<status>] [priority=<priority>]"

// parseJobFilter reads key=value pairs. Tokens without '=' continue the
// previous value, so "status=In Progress" works unquoted.
func parseJobFilter(args []string) (jobs.Filter, error) {
	values := map[string]string{}
	last := ""
	for _, tok := range args {
		if k, v, ok := strings.Cut(tok, "="); ok {
			last = strings.ToLower(k)
			values[last] = v
			continue
		}
		if last == "" {
			return jobs.Filter{}, usage(jobsUsage)
		}
		values[last] += " " + tok
	}

	var f jobs.Filter
	for k, v := range values {
		switch k {
		case "ship":
			f.ShipID = v
		case "status":
			st, ok := matchChoice(v, models.JobStatuses)
			if !ok {
				return f, usage("status is one of %s", choices(models.JobStatuses))
			}
			f.Status = st
		case "priority":
			p, ok := matchChoice(v, models.JobPriorities)
			if !ok {
				return f, usage("priority is one of %s", choices(models.JobPriorities))
			}
			f.Priority = p
		default:
			return f, usage(jobsUsage)
		}
	}
	return f, nil
}

// Jobs lists maintenance jobs matching the optional filter.
func (a *App) Jobs(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermViewFleet); err != nil {
		return err
	}
	f, err := parseJobFilter(args)
	if err != nil {
		return err
	}
	return a.printJobs(a.core.Jobs.Filter(f))
}

func (a *App) printJobs(list []models.Job) error {
	rows := make([][]string, 0, len(list))
	for _, j := range list {
		engineer := j.AssignedEngineerID
		if u, ok := a.core.Users.GetByID(j.AssignedEngineerID); ok {
			engineer = u.Email
		}
		rows = append(rows, []string{
			j.ID, j.ShipID, j.ComponentID, string(j.Type), string(j.Priority), string(j.Status),
			orDash(engineer), j.ScheduledDate,
		})
	}
	return a.printTable([]string{"ID", "SHIP", "COMPONENT", "TYPE", "PRIORITY", "STATUS", "ENGINEER", "SCHEDULED"}, rows)
}

// AddJob walks through every job field. Enum answers accept any case.
func (a *App) AddJob(ctx context.Context, _ []string) error {
	if err := a.require(ctx, services.PermCreateJobs); err != nil {
		return err
	}

	var j models.Job
	var err error
	if j.ShipID, err = a.ask("Ship id"); err != nil {
		return err
	}
	if j.ComponentID, err = a.ask("Component id" + a.componentHint(j.ShipID)); err != nil {
		return err
	}
	if j.Type, err = askChoice(a, "Job type", models.JobTypes, models.JobTypeMaintenance); err != nil {
		return err
	}
	if j.Priority, err = askChoice(a, "Priority", models.JobPriorities, models.JobPriorityMedium); err != nil {
		return err
	}
	if j.Status, err = askChoice(a, "Status", models.JobStatuses, models.JobStatusOpen); err != nil {
		return err
	}
	if j.AssignedEngineerID, err = a.ask("Engineer id" + a.engineerHint()); err != nil {
		return err
	}
	if j.ScheduledDate, err = a.ask("Scheduled date (YYYY-MM-DD)"); err != nil {
		return err
	}
	if j.Description, err = getMultiline(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}

	added, err := a.core.Jobs.Add(ctx, j)
	if err != nil {
		return err
	}
	printlnFn("Job id:", added.ID)
	return nil
}

func (a *App) EditJob(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermEditJobs); err != nil {
		return err
	}
	id, err := oneArg(args, "editjob <id>")
	if err != nil {
		return err
	}
	cur, ok := a.core.Jobs.GetByID(id)
	if !ok {
		return fmt.Errorf("%w: job %s", common.ErrorNotFound, id)
	}

	var patch models.JobPatch
	if t, err := askChoice(a, "Job type", models.JobTypes, cur.Type); err != nil {
		return err
	} else if t != cur.Type {
		patch.Type = &t
	}
	if p, err := askChoice(a, "Priority", models.JobPriorities, cur.Priority); err != nil {
		return err
	} else if p != cur.Priority {
		patch.Priority = &p
	}
	if v, changed, err := a.askDefault("Engineer id"+a.engineerHint(), cur.AssignedEngineerID); err != nil {
		return err
	} else if changed {
		patch.AssignedEngineerID = &v
	}
	if v, changed, err := a.askDefault("Scheduled date", cur.ScheduledDate); err != nil {
		return err
	} else if changed {
		patch.ScheduledDate = &v
	}
	if v, changed, err := a.askDefault("Description", orDash(cur.Description)); err != nil {
		return err
	} else if changed {
		patch.Description = &v
	}

	_, err = a.core.Jobs.Update(ctx, id, patch)
	return err
}

// SetJobStatus moves a job through its lifecycle.
func (a *App) SetJobStatus(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermUpdateJobStatus); err != nil {
		return err
	}
	if len(args) < 2 {
		return usage("jobstatus <id> <%s>", choices(models.JobStatuses))
	}
	status, ok := matchChoice(strings.Join(args[1:], " "), models.JobStatuses)
	if !ok {
		return usage("jobstatus <id> <%s>", choices(models.JobStatuses))
	}
	_, err := a.core.Jobs.UpdateStatus(ctx, args[0], status)
	return err
}

func (a *App) DeleteJob(ctx context.Context, args []string) error {
	if err := a.require(ctx, services.PermDeleteJobs); err != nil {
		return err
	}
	id, err := oneArg(args, "deljob <id>")
	if err != nil {
		return err
	}
	_, err = a.core.Jobs.Delete(ctx, id)
	return err
}

// askChoice prompts for one of options; empty input keeps def.
func askChoice[T ~string](a *App, prompt string, options []T, def T) (T, error) {
	v, changed, err := a.askDefault(fmt.Sprintf("%s %s", prompt, choices(options)), string(def))
	if err != nil || !changed {
		return def, err
	}
	if c, ok := matchChoice(v, options); ok {
		return c, nil
	}
	return T(v), nil
}

func (a *App) componentHint(shipID string) string {
	var ids []string
	for _, c := range a.core.Components.GetByShipID(shipID) {
		ids = append(ids, fmt.Sprintf("%s=%s", c.ID, c.Name))
	}
	if len(ids) == 0 {
		return ""
	}
	return " (" + strings.Join(ids, ", ") + ")"
}

func (a *App) engineerHint() string {
	var ids []string
	for _, u := range a.core.Users.Engineers() {
		ids = append(ids, fmt.Sprintf("%s=%s", u.ID, u.Email))
	}
	if len(ids) == 0 {
		return ""
	}
	return " (" + strings.Join(ids, ", ") + ")"
}
