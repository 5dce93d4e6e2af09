package layout

import (
	"context"

	"kgraph-engine/domain/config"
	"kgraph-engine/domain/core/aggregates"
)

// Hierarchical places nodes on horizontal tiers by difficulty: every node of
// the same difficulty shares a y-coordinate, and nodes are spread along x by
// their index within their type group. Fully deterministic, no randomness.
type Hierarchical struct {
	cfg *config.EngineConfig
}

// NewHierarchical creates the hierarchical strategy
func NewHierarchical(cfg *config.EngineConfig) *Hierarchical {
	return &Hierarchical{cfg: cfg}
}

// Name returns the strategy name
func (h *Hierarchical) Name() string {
	return StrategyHierarchical
}

// Compute assigns tiered positions to every node
func (h *Hierarchical) Compute(
	ctx context.Context,
	graph *aggregates.GraphModel,
	opts Options,
) (map[string]Coordinates, error) {
	positions := make(map[string]Coordinates, graph.NodeCount())
	groupIndex := make(map[string]int)

	// Nodes() is ordered by id, so group indexes are stable across runs
	for _, node := range graph.Nodes() {
		group := string(node.Type())
		idx := groupIndex[group]
		groupIndex[group] = idx + 1

		positions[node.ID().String()] = Coordinates{
			X: float64(idx) * h.cfg.GroupSpacing,
			Y: float64(node.Difficulty().Rank()) * h.cfg.TierSpacing,
			Z: 0,
		}
	}

	return positions, nil
}
