// Package layout computes 2D/3D spatial coordinates for knowledge graph
// visualization. Each algorithm is an independent, pure strategy selectable
// by name; the engine validates bounds, dispatches, and attaches quality
// metrics to every run.
package layout

import (
	"context"

	"go.uber.org/zap"

	"kgraph-engine/domain/config"
	"kgraph-engine/domain/core/aggregates"
	pkgerrors "kgraph-engine/pkg/errors"
)

// Strategy names
const (
	StrategyHierarchical  = "hierarchical"
	StrategyCircular      = "circular"
	StrategyForceDirected = "force_directed"
	StrategyClustered     = "clustered"
)

// Coordinates is one node's proposed position
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Options carries per-run parameters. Seed feeds the force-directed initial
// placement so runs are reproducible; Iterations, when non-nil, replaces the
// configured iteration count (zero is a valid value and yields the raw
// initial placement).
type Options struct {
	Seed       uint64
	Iterations *int
}

// Result is the outcome of one layout run: proposed positions keyed by node
// id, plus quality metrics. The engine retains nothing between calls.
type Result struct {
	Strategy  string                 `json:"strategy"`
	Positions map[string]Coordinates `json:"positions"`
	Metrics   QualityMetrics         `json:"metrics"`
}

// Strategy computes positions for every node of a snapshot
type Strategy interface {
	Name() string
	Compute(ctx context.Context, graph *aggregates.GraphModel, opts Options) (map[string]Coordinates, error)
}

// Engine owns the registered strategies and runs them against snapshots
type Engine struct {
	cfg        *config.EngineConfig
	logger     *zap.Logger
	strategies map[string]Strategy
}

// NewEngine creates a layout engine with the four standard strategies
func NewEngine(cfg *config.EngineConfig, logger *zap.Logger) *Engine {
	if cfg == nil {
		cfg = config.DefaultEngineConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		cfg:        cfg,
		logger:     logger,
		strategies: make(map[string]Strategy),
	}

	e.register(NewHierarchical(cfg))
	e.register(NewCircular(cfg))
	e.register(NewForceDirected(cfg))
	e.register(NewClustered(cfg))

	return e
}

func (e *Engine) register(s Strategy) {
	e.strategies[s.Name()] = s
}

// Strategies lists the registered strategy names
func (e *Engine) Strategies() []string {
	names := make([]string, 0, len(e.strategies))
	for _, name := range []string{
		StrategyHierarchical, StrategyCircular, StrategyForceDirected, StrategyClustered,
	} {
		if _, ok := e.strategies[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Compute runs the named strategy against a snapshot and attaches quality
// metrics to the result
func (e *Engine) Compute(
	ctx context.Context,
	graph *aggregates.GraphModel,
	strategy string,
	opts Options,
) (*Result, error) {
	s, ok := e.strategies[strategy]
	if !ok {
		return nil, pkgerrors.ErrUnknownLayoutStrategy.WithDetail("strategy", strategy)
	}

	positions, err := s.Compute(ctx, graph, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Strategy:  strategy,
		Positions: positions,
		Metrics:   computeMetrics(graph, positions),
	}

	e.logger.Debug("layout computed",
		zap.String("strategy", strategy),
		zap.Int("nodes", len(positions)),
		zap.Float64("meanEdgeLength", result.Metrics.EdgeLengthMean))

	return result, nil
}
