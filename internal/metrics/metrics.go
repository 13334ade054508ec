// Package metrics counts data-layer activity with Prometheus collectors.
//
// Nothing is served over the network: the collectors live on a private
// registry and the CLI renders a snapshot on demand. A nil *Metrics is valid
// and records nothing, so tests and tools can skip instrumentation.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "fleetkeeper"

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

type Metrics struct {
	registry      *prometheus.Registry
	operations    *prometheus.CounterVec
	notifications *prometheus.CounterVec
	logins        *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repository_operations_total",
			Help:      "Repository operations by collection, operation and outcome.",
		}, []string{"collection", "op", "outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notifications pushed to the broadcaster by type.",
		}, []string{"type"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome (ok, rejected, error).",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.operations, m.notifications, m.logins)
	return m
}

// Registry exposes the private registry, e.g. for testutil helpers.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveOperation counts one repository operation.
func (m *Metrics) ObserveOperation(collection, op string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.operations.WithLabelValues(collection, op, outcome).Inc()
}

// ObserveNotification counts one notification of the given type.
func (m *Metrics) ObserveNotification(kind string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(kind).Inc()
}

// ObserveLogin counts a login attempt. A storage error wins over the result.
func (m *Metrics) ObserveLogin(ok bool, err error) {
	if m == nil {
		return
	}
	switch {
	case err != nil:
		m.logins.WithLabelValues(OutcomeError).Inc()
	case ok:
		m.logins.WithLabelValues(OutcomeOK).Inc()
	default:
		m.logins.WithLabelValues("rejected").Inc()
	}
}

// Snapshot renders every non-zero counter as `name{k="v",...} value`, sorted.
func (m *Metrics) Snapshot() ([]string, error) {
	if m == nil {
		return nil, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			value := metric.GetCounter().GetValue()
			if value == 0 {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s%s %g", mf.GetName(), formatLabels(metric.GetLabel()), value))
		}
	}
	sort.Strings(lines)
	return lines, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
