package services

import (
	"kgraph-engine/domain/config"
	"kgraph-engine/domain/core/aggregates"
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/core/valueobjects"
	pkgerrors "kgraph-engine/pkg/errors"
)

// KnowledgeState is a learner's recorded state for one node
type KnowledgeState struct {
	Mastery    valueobjects.MasteryLevel
	Confidence float64
}

// UserKnowledge maps node ids to a learner's knowledge state. Nodes without
// an entry count as unknown.
type UserKnowledge map[valueobjects.NodeID]KnowledgeState

// NewUserKnowledge converts validated learner-state records into the lookup
// the selector consumes. Records for nodes outside the snapshot are kept;
// they simply never match.
func NewUserKnowledge(records []entities.UserKnowledgeRecord) (UserKnowledge, error) {
	knowledge := make(UserKnowledge, len(records))

	for _, record := range records {
		id, err := valueobjects.NewNodeIDFromString(record.NodeID)
		if err != nil {
			return nil, pkgerrors.ErrRecordIDRequired.WithDetail("record_kind", "user_knowledge")
		}
		mastery, err := valueobjects.ParseMasteryLevel(record.Mastery)
		if err != nil {
			return nil, pkgerrors.NewValidationError(err.Error()).
				WithDetail("node_id", record.NodeID)
		}
		knowledge[id] = KnowledgeState{
			Mastery:    mastery,
			Confidence: record.Confidence,
		}
	}

	return knowledge, nil
}

// AdaptiveSelector picks the entry point for a specific learner: the first
// node in a display ordering the learner has not yet mastered.
type AdaptiveSelector struct {
	cfg *config.EngineConfig
}

// NewAdaptiveSelector creates a new selector with the given thresholds
func NewAdaptiveSelector(cfg *config.EngineConfig) *AdaptiveSelector {
	if cfg == nil {
		cfg = config.DefaultEngineConfig()
	}
	return &AdaptiveSelector{cfg: cfg}
}

// NextNode returns the first node in ordering whose mastery is below the
// known threshold. When every candidate is already known, it falls back to
// the first node of the ordering; a nil node means the graph is empty.
//
// A non-nil targetDifficulty re-filters the candidates to that tier before
// the first-unknown rule runs; if no candidate matches the tier, the full
// ordering is used instead.
func (s *AdaptiveSelector) NextNode(
	graph *aggregates.GraphModel,
	ordering []valueobjects.NodeID,
	knowledge UserKnowledge,
	targetDifficulty *valueobjects.Difficulty,
) (*entities.Node, error) {
	if graph.NodeCount() == 0 || len(ordering) == 0 {
		return nil, nil
	}

	candidates := make([]*entities.Node, 0, len(ordering))
	for _, id := range ordering {
		node, err := graph.Node(id)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, node)
	}

	if targetDifficulty != nil {
		filtered := make([]*entities.Node, 0, len(candidates))
		for _, node := range candidates {
			if node.Difficulty() == *targetDifficulty {
				filtered = append(filtered, node)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	for _, node := range candidates {
		if !s.isKnown(knowledge, node.ID()) {
			return node, nil
		}
	}

	// Everything is already known; restart from the top of the ordering
	return candidates[0], nil
}

func (s *AdaptiveSelector) isKnown(knowledge UserKnowledge, id valueobjects.NodeID) bool {
	state, exists := knowledge[id]
	if !exists {
		return false
	}
	return state.Mastery.Rank() >= s.cfg.KnownMasteryThreshold
}
