package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
)

type JobType string

const (
	JobTypeInspection   JobType = "Inspection"
	JobTypeRepair       JobType = "Repair"
	JobTypeMaintenance  JobType = "Maintenance"
	JobTypeOverhaul     JobType = "Overhaul"
	JobTypeInstallation JobType = "Installation"
)

var JobTypes = []JobType{JobTypeInspection, JobTypeRepair, JobTypeMaintenance, JobTypeOverhaul, JobTypeInstallation}

func (t JobType) Valid() bool {
	switch t {
	case JobTypeInspection, JobTypeRepair, JobTypeMaintenance, JobTypeOverhaul, JobTypeInstallation:
		return true
	}
	return false
}

type JobPriority string

const (
	JobPriorityLow      JobPriority = "Low"
	JobPriorityMedium   JobPriority = "Medium"
	JobPriorityHigh     JobPriority = "High"
	JobPriorityCritical JobPriority = "Critical"
)

var JobPriorities = []JobPriority{JobPriorityLow, JobPriorityMedium, JobPriorityHigh, JobPriorityCritical}

func (p JobPriority) Valid() bool {
	switch p {
	case JobPriorityLow, JobPriorityMedium, JobPriorityHigh, JobPriorityCritical:
		return true
	}
	return false
}

type JobStatus string

const (
	JobStatusOpen       JobStatus = "Open"
	JobStatusInProgress JobStatus = "In Progress"
	JobStatusPending    JobStatus = "Pending"
	JobStatusCompleted  JobStatus = "Completed"
	JobStatusCancelled  JobStatus = "Cancelled"
)

var JobStatuses = []JobStatus{JobStatusOpen, JobStatusInProgress, JobStatusPending, JobStatusCompleted, JobStatusCancelled}

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusPending, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// Job is a unit of maintenance work on one component of one ship.
// AssignedEngineerID may be empty while the job is unassigned.
type Job struct {
	ID                 string      `json:"id"`
	ShipID             string      `json:"shipId"`
	ComponentID        string      `json:"componentId"`
	Type               JobType     `json:"type"`
	Priority           JobPriority `json:"priority"`
	Status             JobStatus   `json:"status"`
	AssignedEngineerID string      `json:"assignedEngineerId"`
	ScheduledDate      string      `json:"scheduledDate"`
	Description        string      `json:"description,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

func (j Job) Validate() error {
	if err := requireText("shipId", j.ShipID); err != nil {
		return err
	}
	if err := requireText("componentId", j.ComponentID); err != nil {
		return err
	}
	if !j.Type.Valid() {
		return fmt.Errorf("%w: unsupported job type %q", common.ErrorValidation, j.Type)
	}
	if !j.Priority.Valid() {
		return fmt.Errorf("%w: unsupported job priority %q", common.ErrorValidation, j.Priority)
	}
	if !j.Status.Valid() {
		return fmt.Errorf("%w: unsupported job status %q", common.ErrorValidation, j.Status)
	}
	return requireDate("scheduledDate", j.ScheduledDate)
}

// Active reports whether work on the job is still expected.
func (j Job) Active() bool {
	return j.Status != JobStatusCompleted && j.Status != JobStatusCancelled
}

type JobPatch struct {
	ShipID             *string
	ComponentID        *string
	Type               *JobType
	Priority           *JobPriority
	Status             *JobStatus
	AssignedEngineerID *string
	ScheduledDate      *string
	Description        *string
}

func (p JobPatch) Apply(j *Job) {
	if p.ShipID != nil {
		j.ShipID = *p.ShipID
	}
	if p.ComponentID != nil {
		j.ComponentID = *p.ComponentID
	}
	if p.Type != nil {
		j.Type = *p.Type
	}
	if p.Priority != nil {
		j.Priority = *p.Priority
	}
	if p.Status != nil {
		j.Status = *p.Status
	}
	if p.AssignedEngineerID != nil {
		j.AssignedEngineerID = *p.AssignedEngineerID
	}
	if p.ScheduledDate != nil {
		j.ScheduledDate = *p.ScheduledDate
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
}
