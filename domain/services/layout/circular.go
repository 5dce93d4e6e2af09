package layout

import (
	"context"
	"math"

	"kgraph-engine/domain/config"
	"kgraph-engine/domain/core/aggregates"
)

// Circular places nodes at equal angular increments on a circle centered at
// the origin. The radius grows with node count so large graphs do not
// crowd. Deterministic.
type Circular struct {
	cfg *config.EngineConfig
}

// NewCircular creates the circular strategy
func NewCircular(cfg *config.EngineConfig) *Circular {
	return &Circular{cfg: cfg}
}

// Name returns the strategy name
func (c *Circular) Name() string {
	return StrategyCircular
}

// Compute assigns ring positions to every node
func (c *Circular) Compute(
	ctx context.Context,
	graph *aggregates.GraphModel,
	opts Options,
) (map[string]Coordinates, error) {
	n := graph.NodeCount()
	positions := make(map[string]Coordinates, n)
	if n == 0 {
		return positions, nil
	}

	radius := math.Max(c.cfg.MinRadius, c.cfg.RadiusPerNode*float64(n))

	for i, id := range graph.NodeIDs() {
		angle := 2 * math.Pi * float64(i) / float64(n)
		positions[id.String()] = Coordinates{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
			Z: 0,
		}
	}

	return positions, nil
}
