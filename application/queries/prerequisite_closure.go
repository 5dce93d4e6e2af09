package queries

import (
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/pkg/errors"
)

// PrerequisiteClosureQuery requests every node upstream of a target. By
// default only prerequisite-kind edges are followed; AllEdgeTypes widens the
// traversal to the full ancestor set.
type PrerequisiteClosureQuery struct {
	TargetID     string `json:"target_id"`
	AllEdgeTypes bool   `json:"all_edge_types"`
}

// Validate checks the query parameters
func (q PrerequisiteClosureQuery) Validate() error {
	if q.TargetID == "" {
		return errors.NewValidationError("target_id is required")
	}
	return nil
}

// ClosureNodeDTO is one member of a closure result
type ClosureNodeDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
}

// PrerequisiteClosureResult lists the upstream nodes ordered by ascending
// difficulty
type PrerequisiteClosureResult struct {
	TargetID string           `json:"target_id"`
	Nodes    []ClosureNodeDTO `json:"nodes"`
}

// NewPrerequisiteClosureResult converts closure nodes into the query result
func NewPrerequisiteClosureResult(targetID string, nodes []*entities.Node) *PrerequisiteClosureResult {
	dtos := make([]ClosureNodeDTO, len(nodes))
	for i, node := range nodes {
		dtos[i] = ClosureNodeDTO{
			ID:         node.ID().String(),
			Title:      node.Title(),
			Type:       string(node.Type()),
			Difficulty: string(node.Difficulty()),
		}
	}
	return &PrerequisiteClosureResult{
		TargetID: targetID,
		Nodes:    dtos,
	}
}
