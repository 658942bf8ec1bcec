// Package metrics exposes layout activity as Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
)

const namespace = "dumbtile"

var _ port.LayoutMetrics = (*LayoutMetrics)(nil)

// LayoutMetrics records layout activity on its own registry.
// Each instance is independent, so several can coexist in one process.
type LayoutMetrics struct {
	registry *prometheus.Registry
	changes  *prometheus.CounterVec
	rebuilds *prometheus.CounterVec
	orphans  prometheus.Counter
}

// NewLayoutMetrics creates the layout counters and registers them together
// with the Go runtime and process collectors.
func NewLayoutMetrics() *LayoutMetrics {
	registry := prometheus.NewRegistry()

	m := &LayoutMetrics{
		registry: registry,
		changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "layout",
			Name:      "changes_total",
			Help:      "Host changes applied to the layout, by kind.",
		}, []string{"kind"}),
		rebuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "layout",
			Name:      "rebuilds_total",
			Help:      "Layout tree rebuilds, by reason.",
		}, []string{"reason"}),
		orphans: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "layout",
			Name:      "orphaned_windows_total",
			Help:      "Windows given the fallback frame because the tree did not place them.",
		}),
	}

	registry.MustRegister(
		m.changes,
		m.rebuilds,
		m.orphans,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveChange counts one applied change.
func (m *LayoutMetrics) ObserveChange(kind entity.ChangeKind) {
	m.changes.WithLabelValues(string(kind)).Inc()
}

// ObserveRebuild counts one tree rebuild.
func (m *LayoutMetrics) ObserveRebuild(reason port.RebuildReason) {
	m.rebuilds.WithLabelValues(string(reason)).Inc()
}

// ObserveOrphans adds count orphaned windows.
func (m *LayoutMetrics) ObserveOrphans(count int) {
	if count <= 0 {
		return
	}
	m.orphans.Add(float64(count))
}

// Registry returns the registry the counters live on.
func (m *LayoutMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an http.Handler serving the /metrics scrape endpoint.
func (m *LayoutMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
