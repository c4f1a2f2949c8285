// SPDX-License-Identifier: MIT
//
// File: runner.go
// Role: End-to-end orchestration of one run.
//
// Phases (each timed into Metrics.PhaseDuration):
//   load → normalize → poi → snap → terminal_graph → mst → route
//
// The normalized graph is built once and only read afterwards. Every error is
// fatal for the run and returned wrapped with its phase.

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/poinet/core"
	"github.com/katalvlaran/poinet/nearest"
	"github.com/katalvlaran/poinet/osmgraph"
	"github.com/katalvlaran/poinet/poi"
	"github.com/katalvlaran/poinet/prim_kruskal"
	"github.com/katalvlaran/poinet/route"
	"github.com/katalvlaran/poinet/terminal"
)

// Result is everything a run produces, ready for reporting and rendering.
type Result struct {
	RunID string
	Place string

	// Graph is the normalized undirected road multigraph.
	Graph *core.Graph

	// POIs is the collected category with its usable features.
	POIs *poi.Collection

	// Snapped holds the vertex each POI snapped to, aligned with POIs.Points.
	Snapped []string

	// Terminals are the distinct snapped vertices, sorted.
	Terminals []string

	TerminalGraph *terminal.Graph
	MST           []core.Edge
	Routes        []route.Route

	// TotalLength is the MST weight in the units of the weight attribute (meters for length).
	TotalLength float64
}

// Runner executes runs for one Config.
type Runner struct {
	cfg     Config
	logger  *zap.Logger
	metrics *Metrics
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics sets the metrics sink; nil keeps a private one.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) {
		if m != nil {
			r.metrics = m
		}
	}
}

// NewRunner validates cfg and returns a Runner.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.metrics == nil {
		r.metrics = NewMetrics()
	}

	return r, nil
}

// Metrics returns the runner's metrics.
func (r *Runner) Metrics() *Metrics { return r.metrics }

// Run loads the configured extract and POI source, then solves.
// Config.Timeout, when set, bounds the whole run.
func (r *Runner) Run(ctx context.Context) (res *Result, err error) {
	defer func() { r.metrics.RecordRun(err) }()
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	x, err := osmgraph.DecodeFile(ctx, r.cfg.Source.OSM)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load: %w", err)
	}
	g, err := x.Graph(
		osmgraph.WithNetwork(osmgraph.NetworkType(r.cfg.NetworkType)),
		osmgraph.WithSimplify(r.cfg.Simplify),
		osmgraph.WithLogger(r.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load: %w", err)
	}
	r.observe(PhaseLoad, start)

	var src poi.Source = poi.NewOSMSource(x)
	if r.cfg.Source.POIs != "" {
		if src, err = poi.ReadGeoJSONFile(r.cfg.Source.POIs); err != nil {
			return nil, fmt.Errorf("pipeline: load: %w", err)
		}
	}

	return r.Solve(ctx, g, src)
}

// Solve runs every phase after loading on an already built road graph.
// g is not modified.
func (r *Runner) Solve(ctx context.Context, g *core.Graph, src poi.Source) (*Result, error) {
	res := &Result{RunID: uuid.NewString(), Place: r.cfg.Place}
	log := r.logger.With(zap.String("run_id", res.RunID), zap.String("place", r.cfg.Place))

	start := time.Now()
	res.Graph = core.ToUndirectedMultigraph(g)
	st := res.Graph.Stats()
	r.metrics.RecordGraph(st.VertexCount, st.EdgeCount)
	r.observe(PhaseNormalize, start)
	log.Info("road graph normalized",
		zap.Int("vertices", st.VertexCount),
		zap.Int("edges", st.EdgeCount),
		zap.Int("parallel_pairs", st.ParallelPairs),
	)

	categories, err := r.cfg.ParsedCategories()
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	start = time.Now()
	if res.POIs, err = poi.Collect(ctx, src, categories, log); err != nil {
		return nil, fmt.Errorf("pipeline: poi: %w", err)
	}
	r.metrics.POIsTotal.Set(float64(len(res.POIs.Points)))
	r.observe(PhasePOI, start)

	start = time.Now()
	ix, err := nearest.NewIndex(res.Graph)
	if err != nil {
		return nil, fmt.Errorf("pipeline: snap: %w", err)
	}
	if res.Snapped, err = ix.NearestAll(res.POIs.Points); err != nil {
		return nil, fmt.Errorf("pipeline: snap: %w", err)
	}
	if res.Terminals, err = terminal.Resolve(res.Snapped); err != nil {
		return nil, fmt.Errorf("pipeline: snap: %w", err)
	}
	r.metrics.TerminalsTotal.Set(float64(len(res.Terminals)))
	r.observe(PhaseSnap, start)
	log.Info("terminals resolved",
		zap.String("category", res.POIs.Category.String()),
		zap.Int("pois", len(res.POIs.Points)),
		zap.Int("terminals", len(res.Terminals)),
	)

	start = time.Now()
	topts := []terminal.Option{
		terminal.WithWeightAttr(r.cfg.Weight),
		terminal.WithLogger(log),
		terminal.WithSearchHook(r.metrics.RecordSearch),
	}
	if r.cfg.Workers > 0 {
		topts = append(topts, terminal.WithWorkers(r.cfg.Workers))
	}
	if res.TerminalGraph, err = terminal.Build(ctx, res.Graph, res.Terminals, topts...); err != nil {
		return nil, fmt.Errorf("pipeline: terminal graph: %w", err)
	}
	r.observe(PhaseTerminal, start)

	start = time.Now()
	if res.MST, res.TotalLength, err = prim_kruskal.Compute(res.TerminalGraph.Graph,
		prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(r.cfg.MSTMethod))); err != nil {
		return nil, fmt.Errorf("pipeline: mst: %w", err)
	}
	r.metrics.RecordMST(r.cfg.Weight, res.TotalLength)
	r.observe(PhaseMST, start)

	start = time.Now()
	ropts := []route.Option{route.WithWeightAttr(r.cfg.Weight), route.WithLogger(log)}
	if r.cfg.Workers > 0 {
		ropts = append(ropts, route.WithWorkers(r.cfg.Workers))
	}
	if res.Routes, err = route.Reconstruct(ctx, res.Graph, res.MST, ropts...); err != nil {
		return nil, fmt.Errorf("pipeline: route: %w", err)
	}
	r.observe(PhaseRoute, start)

	log.Info("mst computed",
		zap.Int("edges", len(res.MST)),
		zap.Float64("total_length", res.TotalLength),
		zap.Int("road_edges", len(route.EdgeIDs(res.Routes))),
	)

	return res, nil
}

func (r *Runner) observe(phase string, start time.Time) {
	d := time.Since(start)
	r.metrics.RecordPhase(phase, d)
	r.logger.Debug("phase done", zap.String("phase", phase), zap.Duration("elapsed", d))
}
