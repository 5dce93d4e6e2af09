package queries

import (
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/core/valueobjects"
	"kgraph-engine/pkg/errors"
)

// NextConceptQuery asks which node a specific learner should study next.
// Ordering is the display ordering over node ids; when empty, the snapshot's
// id ordering is used. TargetDifficulty optionally biases candidates to one
// tier.
type NextConceptQuery struct {
	UserID           string   `json:"user_id"`
	Ordering         []string `json:"ordering,omitempty"`
	TargetDifficulty string   `json:"target_difficulty,omitempty"`
}

// Validate checks the query parameters
func (q NextConceptQuery) Validate() error {
	if q.UserID == "" {
		return errors.NewValidationError("user_id is required")
	}
	if q.TargetDifficulty != "" {
		if _, err := valueobjects.ParseDifficulty(q.TargetDifficulty); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	return nil
}

// NextConceptResult names the selected node; Found is false when the graph
// is empty
type NextConceptResult struct {
	Found      bool   `json:"found"`
	NodeID     string `json:"node_id,omitempty"`
	Title      string `json:"title,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// NewNextConceptResult converts the selected node into the query result
func NewNextConceptResult(node *entities.Node) *NextConceptResult {
	if node == nil {
		return &NextConceptResult{Found: false}
	}
	return &NextConceptResult{
		Found:      true,
		NodeID:     node.ID().String(),
		Title:      node.Title(),
		Difficulty: string(node.Difficulty()),
	}
}
