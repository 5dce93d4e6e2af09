package queries

import (
	"kgraph-engine/domain/services"
)

// GetGraphStatsQuery requests the full analytics bundle for the current
// snapshot
type GetGraphStatsQuery struct{}

// Validate checks the query parameters
func (q GetGraphStatsQuery) Validate() error {
	return nil
}

// GetGraphStatsResult carries the computed statistics plus snapshot shape
// information useful to the façade
type GetGraphStatsResult struct {
	Stats        *services.GraphStatistics `json:"stats"`
	DroppedEdges int                       `json:"dropped_edges"`
}
