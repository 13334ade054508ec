// Package common contains shared constants and sentinel errors used across
// fleetkeeper components.
package common

// DefaultKeyPrefix namespaces every persisted collection so that unrelated
// data sharing the same store does not collide with ours.
const DefaultKeyPrefix = "entnt_ship_dashboard_"

// DateLayout is the calendar date format used for install, maintenance and
// scheduling dates.
const DateLayout = "2006-01-02"
