package layout

import (
	"context"
	"math"

	"kgraph-engine/domain/config"
	"kgraph-engine/domain/core/aggregates"
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/core/valueobjects"
)

// Clustered groups nodes by type around fixed anchor points in the plane.
// Within a cluster, nodes fill a square sub-grid at fixed cell spacing.
// Deterministic.
type Clustered struct {
	cfg *config.EngineConfig
}

// NewClustered creates the clustered strategy
func NewClustered(cfg *config.EngineConfig) *Clustered {
	return &Clustered{cfg: cfg}
}

// Name returns the strategy name
func (c *Clustered) Name() string {
	return StrategyClustered
}

// Compute assigns per-type grid positions to every node
func (c *Clustered) Compute(
	ctx context.Context,
	graph *aggregates.GraphModel,
	opts Options,
) (map[string]Coordinates, error) {
	positions := make(map[string]Coordinates, graph.NodeCount())

	groups := make(map[valueobjects.NodeType][]*entities.Node)
	for _, node := range graph.Nodes() {
		groups[node.Type()] = append(groups[node.Type()], node)
	}

	types := valueobjects.AllNodeTypes()
	for gi, nodeType := range types {
		members := groups[nodeType]
		if len(members) == 0 {
			continue
		}

		anchorAngle := 2 * math.Pi * float64(gi) / float64(len(types))
		anchorX := c.cfg.ClusterAnchorRadius * math.Cos(anchorAngle)
		anchorY := c.cfg.ClusterAnchorRadius * math.Sin(anchorAngle)

		cols := int(math.Ceil(math.Sqrt(float64(len(members)))))

		for i, node := range members {
			row := i / cols
			col := i % cols
			positions[node.ID().String()] = Coordinates{
				X: anchorX + float64(col)*c.cfg.ClusterCellSpacing,
				Y: anchorY + float64(row)*c.cfg.ClusterCellSpacing,
				Z: 0,
			}
		}
	}

	return positions, nil
}
