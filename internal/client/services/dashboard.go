package services

import (
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/components"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/jobs"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/repositories/ships"
	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

// DefaultMaintenanceInterval is how long a component may go without
// maintenance before it counts as overdue.
const DefaultMaintenanceInterval = 365 * 24 * time.Hour

// MaxCalendarDays bounds the Calendar window.
const MaxCalendarDays = 366

// KPIs are the dashboard figures.
type KPIs struct {
	TotalShips         int
	OverdueMaintenance int
	JobsInProgress     int
	JobsCompleted      int

	// OverdueJobs are active jobs scheduled before today.
	OverdueJobs    int
	ShipsByStatus  map[models.ShipStatus]int
	JobsByStatus   map[models.JobStatus]int
	JobsByPriority map[models.JobPriority]int
}

type DashboardService interface {
	KPIs(now time.Time) KPIs
	// OverdueComponents lists components due for maintenance at now.
	OverdueComponents(now time.Time) []models.Component
	// Calendar returns the jobs scheduled on each day of [from, from+days).
	// days is clamped to [0, MaxCalendarDays].
	Calendar(from time.Time, days int) map[string][]models.Job
}

type dashboardService struct {
	ships      ships.Repository
	components components.Repository
	jobs       jobs.Repository
	interval   time.Duration
}

func NewDashboardService(s ships.Repository, c components.Repository, j jobs.Repository, interval time.Duration) DashboardService {
	if interval <= 0 {
		interval = DefaultMaintenanceInterval
	}
	return &dashboardService{ships: s, components: c, jobs: j, interval: interval}
}

func (d *dashboardService) KPIs(now time.Time) KPIs {
	k := KPIs{
		ShipsByStatus:  make(map[models.ShipStatus]int),
		JobsByStatus:   make(map[models.JobStatus]int),
		JobsByPriority: make(map[models.JobPriority]int),
	}

	for _, s := range d.ships.All() {
		k.TotalShips++
		k.ShipsByStatus[s.Status]++
	}
	k.OverdueMaintenance = len(d.OverdueComponents(now))

	today := now.Format(common.DateLayout)
	for _, j := range d.jobs.All() {
		k.JobsByStatus[j.Status]++
		k.JobsByPriority[j.Priority]++
		if j.Active() && j.ScheduledDate < today {
			k.OverdueJobs++
		}
	}
	k.JobsInProgress = k.JobsByStatus[models.JobStatusInProgress]
	k.JobsCompleted = k.JobsByStatus[models.JobStatusCompleted]
	return k
}

func (d *dashboardService) OverdueComponents(now time.Time) []models.Component {
	var out []models.Component
	for _, c := range d.components.All() {
		if c.MaintenanceOverdue(now, d.interval) {
			out = append(out, c)
		}
	}
	return out
}

func (d *dashboardService) Calendar(from time.Time, days int) map[string][]models.Job {
	days = min(max(days, 0), MaxCalendarDays)
	out := make(map[string][]models.Job)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format(common.DateLayout)
		if list := d.jobs.ScheduledOn(date); len(list) > 0 {
			out[date] = list
		}
	}
	return out
}
