package layout

import (
	"context"
	"math"
	"math/rand"

	"kgraph-engine/domain/config"
	"kgraph-engine/domain/core/aggregates"
	pkgerrors "kgraph-engine/pkg/errors"
)

// ForceDirected runs an iterative physical simulation: every node pair
// repels with a force inversely proportional to squared distance, every edge
// pulls its endpoints together proportionally to their distance. Cost is
// O(iterations · V²), so both the node count and the iteration count are
// bounded by configuration and the run fails fast when exceeded.
//
// Initial placement is randomized from an explicit caller-supplied seed, so
// identical inputs always reproduce identical layouts.
type ForceDirected struct {
	cfg *config.EngineConfig
}

// NewForceDirected creates the force-directed strategy
func NewForceDirected(cfg *config.EngineConfig) *ForceDirected {
	return &ForceDirected{cfg: cfg}
}

// Name returns the strategy name
func (f *ForceDirected) Name() string {
	return StrategyForceDirected
}

// Compute simulates the spring-electrical system and returns the settled
// positions. Cancellation via ctx is honored between iterations.
func (f *ForceDirected) Compute(
	ctx context.Context,
	graph *aggregates.GraphModel,
	opts Options,
) (map[string]Coordinates, error) {
	n := graph.NodeCount()
	if n > f.cfg.MaxLayoutNodes {
		return nil, pkgerrors.ErrGraphTooLarge.
			WithDetail("node_count", n).
			WithDetail("max_nodes", f.cfg.MaxLayoutNodes)
	}

	iterations := f.cfg.ForceIterations
	if opts.Iterations != nil {
		iterations = *opts.Iterations
	}
	if iterations < 0 {
		return nil, pkgerrors.NewValidationError("iteration count cannot be negative")
	}
	if iterations > f.cfg.MaxLayoutIterations {
		return nil, pkgerrors.ErrTooManyIterations.
			WithDetail("iterations", iterations).
			WithDetail("max_iterations", f.cfg.MaxLayoutIterations)
	}

	positions := make(map[string]Coordinates, n)
	if n == 0 {
		return positions, nil
	}

	ids := graph.NodeIDs()

	// Seeded initial placement over the id-ordered node list: the same seed
	// always produces the same starting state
	rng := rand.New(rand.NewSource(int64(opts.Seed)))
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range ids {
		xs[i] = (rng.Float64()*2 - 1) * f.cfg.InitialSpread
		ys[i] = (rng.Float64()*2 - 1) * f.cfg.InitialSpread
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id.String()] = i
	}

	dispX := make([]float64, n)
	dispY := make([]float64, n)

	for iter := 0; iter < iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, pkgerrors.ErrComputationCancelled.WithCause(err)
		}

		for i := range dispX {
			dispX[i] = 0
			dispY[i] = 0
		}

		// Repulsion between every node pair
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := xs[i] - xs[j]
				dy := ys[i] - ys[j]
				dist := math.Sqrt(dx*dx + dy*dy)
				if dist < f.cfg.DistanceEpsilon {
					dist = f.cfg.DistanceEpsilon
				}

				force := f.cfg.RepulsionK / (dist * dist)
				ux := dx / dist
				uy := dy / dist

				dispX[i] += ux * force
				dispY[i] += uy * force
				dispX[j] -= ux * force
				dispY[j] -= uy * force
			}
		}

		// Attraction along edges
		for _, edge := range graph.Edges() {
			si := index[edge.SourceID().String()]
			ti := index[edge.TargetID().String()]

			dx := xs[ti] - xs[si]
			dy := ys[ti] - ys[si]
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < f.cfg.DistanceEpsilon {
				dist = f.cfg.DistanceEpsilon
			}

			force := f.cfg.AttractionK * dist
			ux := dx / dist
			uy := dy / dist

			dispX[si] += ux * force
			dispY[si] += uy * force
			dispX[ti] -= ux * force
			dispY[ti] -= uy * force
		}

		for i := 0; i < n; i++ {
			xs[i] += dispX[i] * f.cfg.Damping
			ys[i] += dispY[i] * f.cfg.Damping
		}
	}

	for i, id := range ids {
		positions[id.String()] = Coordinates{X: xs[i], Y: ys[i], Z: 0}
	}

	return positions, nil
}
