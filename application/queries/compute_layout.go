package queries

import (
	"kgraph-engine/domain/services/layout"
	"kgraph-engine/pkg/errors"
)

// ComputeLayoutQuery requests spatial coordinates for the current snapshot.
// Seed only affects the force-directed strategy; Iterations, when set,
// overrides the configured force-directed iteration count. Persist forwards
// the proposed positions to the position sink.
type ComputeLayoutQuery struct {
	Strategy   string `json:"strategy"`
	Seed       uint64 `json:"seed"`
	Iterations *int   `json:"iterations,omitempty"`
	Persist    bool   `json:"persist"`
}

// Validate checks the query parameters
func (q ComputeLayoutQuery) Validate() error {
	if q.Strategy == "" {
		return errors.NewValidationError("strategy is required")
	}
	return nil
}

// ComputeLayoutResult carries the proposed positions and quality metrics
type ComputeLayoutResult struct {
	Layout *layout.Result `json:"layout"`
}
