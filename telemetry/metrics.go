package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes aquarium counters on a private prometheus registry.
type Metrics struct {
	registry *prometheus.Registry

	items   *prometheus.GaugeVec
	ticks   prometheus.Counter
	persist *prometheus.CounterVec
}

// NewMetrics creates and registers the aquarium collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		items: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "aquarium_items",
			Help: "Items in the aquarium by type.",
		}, []string{"type"}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aquarium_ticks_total",
			Help: "Simulation ticks applied.",
		}),
		persist: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aquarium_persist_total",
			Help: "Save and load attempts by outcome.",
		}, []string{"op", "result"}),
	}
	m.registry.MustRegister(m.items, m.ticks, m.persist)
	return m
}

// SetCensus replaces the per-type item gauges.
func (m *Metrics) SetCensus(census map[string]int) {
	if m == nil {
		return
	}
	m.items.Reset()
	for tag, n := range census {
		if tag == "" {
			tag = "untyped"
		}
		m.items.WithLabelValues(tag).Set(float64(n))
	}
}

// Tick counts one simulation step.
func (m *Metrics) Tick() {
	if m == nil {
		return
	}
	m.ticks.Inc()
}

// Persist records the outcome of a save or load.
func (m *Metrics) Persist(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.persist.WithLabelValues(op, result).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
