package queries

import (
	"kgraph-engine/domain/services"
	"kgraph-engine/pkg/errors"
)

// FindPathQuery requests the cheapest directed path between two nodes
type FindPathQuery struct {
	StartID string `json:"start_id"`
	EndID   string `json:"end_id"`
}

// Validate checks the query parameters
func (q FindPathQuery) Validate() error {
	if q.StartID == "" {
		return errors.NewValidationError("start_id is required")
	}
	if q.EndID == "" {
		return errors.NewValidationError("end_id is required")
	}
	return nil
}

// FindPathResult carries the ordered node sequence and its total weight
type FindPathResult struct {
	Path        []string `json:"path"`
	TotalWeight float64  `json:"total_weight"`
}

// NewFindPathResult converts a domain path result into the query result
func NewFindPathResult(result *services.PathResult) *FindPathResult {
	path := make([]string, len(result.Path))
	for i, id := range result.Path {
		path[i] = id.String()
	}
	return &FindPathResult{
		Path:        path,
		TotalWeight: result.TotalWeight,
	}
}
