// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Prometheus instruments of a run, scoped to a private registry.

package pipeline

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Phase names used as the "phase" label.
const (
	PhaseLoad      = "load"
	PhaseNormalize = "normalize"
	PhasePOI       = "poi"
	PhaseSnap      = "snap"
	PhaseTerminal  = "terminal_graph"
	PhaseMST       = "mst"
	PhaseRoute     = "route"
)

// Metrics holds the instruments of one process.
type Metrics struct {
	registry *prometheus.Registry

	PhaseDuration    *prometheus.HistogramVec
	ShortestPathRuns prometheus.Counter
	ShortestPathTime prometheus.Histogram
	POIsTotal        prometheus.Gauge
	TerminalsTotal   prometheus.Gauge
	GraphVertices    prometheus.Gauge
	GraphEdges       prometheus.Gauge
	MSTWeight        *prometheus.GaugeVec
	RunsTotal        *prometheus.CounterVec
}

// NewMetrics creates the instruments on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}
	f := promauto.With(m.registry)

	m.PhaseDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poinet_phase_duration_seconds",
			Help:    "Duration of each pipeline phase in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
		[]string{"phase"},
	)
	m.ShortestPathRuns = f.NewCounter(prometheus.CounterOpts{
		Name: "poinet_shortest_path_runs_total",
		Help: "Single-source shortest path runs executed while building the terminal graph",
	})
	m.ShortestPathTime = f.NewHistogram(prometheus.HistogramOpts{
		Name:    "poinet_shortest_path_duration_seconds",
		Help:    "Duration of single-source shortest path runs in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
	})
	m.POIsTotal = f.NewGauge(prometheus.GaugeOpts{
		Name: "poinet_pois_total",
		Help: "Usable points of interest in the selected category",
	})
	m.TerminalsTotal = f.NewGauge(prometheus.GaugeOpts{
		Name: "poinet_terminals_total",
		Help: "Distinct graph vertices the POIs snapped to",
	})
	m.GraphVertices = f.NewGauge(prometheus.GaugeOpts{
		Name: "poinet_graph_vertices",
		Help: "Vertices of the normalized road graph",
	})
	m.GraphEdges = f.NewGauge(prometheus.GaugeOpts{
		Name: "poinet_graph_edges",
		Help: "Edges of the normalized road graph",
	})
	m.MSTWeight = f.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "poinet_mst_weight_total",
			Help: "Total weight of the terminal minimum spanning tree, in units of the weight attribute",
		},
		[]string{"weight"},
	)
	m.RunsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poinet_runs_total",
			Help: "Pipeline runs by outcome",
		},
		[]string{"status"}, // success, error
	)

	return m
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RecordMST sets the MST total for the given weight attribute.
func (m *Metrics) RecordMST(weight string, total float64) {
	m.MSTWeight.WithLabelValues(weight).Set(total)
}

// RecordPhase observes the duration of one phase.
func (m *Metrics) RecordPhase(phase string, d time.Duration) {
	m.PhaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

// RecordSearch counts one shortest path run.
func (m *Metrics) RecordSearch(_ string, d time.Duration) {
	m.ShortestPathRuns.Inc()
	m.ShortestPathTime.Observe(d.Seconds())
}

// RecordGraph sets the normalized graph size.
func (m *Metrics) RecordGraph(vertices, edges int) {
	m.GraphVertices.Set(float64(vertices))
	m.GraphEdges.Set(float64(edges))
}

// RecordRun counts a finished run.
func (m *Metrics) RecordRun(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.RunsTotal.WithLabelValues(status).Inc()
}

// WriteTextfile dumps the registry in the Prometheus text format, for the
// node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("pipeline: write metrics: %w", err)
	}

	return nil
}
