package handlers

import (
	"context"

	"go.uber.org/zap"

	"kgraph-engine/application/ports"
	"kgraph-engine/application/queries"
	"kgraph-engine/domain/core/valueobjects"
	"kgraph-engine/domain/services"
)

// NextConceptHandler handles the NextConceptQuery
type NextConceptHandler struct {
	source   ports.SnapshotSource
	builder  *services.GraphBuilder
	selector *services.AdaptiveSelector
	logger   *zap.Logger
}

// NewNextConceptHandler creates a new handler instance
func NewNextConceptHandler(
	source ports.SnapshotSource,
	builder *services.GraphBuilder,
	selector *services.AdaptiveSelector,
	logger *zap.Logger,
) *NextConceptHandler {
	return &NextConceptHandler{
		source:   source,
		builder:  builder,
		selector: selector,
		logger:   logger,
	}
}

// Handle executes the query
func (h *NextConceptHandler) Handle(ctx context.Context, query queries.NextConceptQuery) (*queries.NextConceptResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.source.GraphSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	graph, err := h.builder.Build(snapshot.Nodes, snapshot.Edges)
	if err != nil {
		return nil, err
	}

	knowledgeRecords, err := h.source.UserKnowledge(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	knowledge, err := services.NewUserKnowledge(knowledgeRecords)
	if err != nil {
		return nil, err
	}

	ordering := make([]valueobjects.NodeID, 0, len(query.Ordering))
	for _, raw := range query.Ordering {
		id, err := valueobjects.NewNodeIDFromString(raw)
		if err != nil {
			return nil, err
		}
		ordering = append(ordering, id)
	}
	if len(ordering) == 0 {
		ordering = graph.NodeIDs()
	}

	var targetDifficulty *valueobjects.Difficulty
	if query.TargetDifficulty != "" {
		d, err := valueobjects.ParseDifficulty(query.TargetDifficulty)
		if err != nil {
			return nil, err
		}
		targetDifficulty = &d
	}

	node, err := h.selector.NextNode(graph, ordering, knowledge, targetDifficulty)
	if err != nil {
		return nil, err
	}

	if node != nil {
		h.logger.Debug("next concept selected",
			zap.String("userID", query.UserID),
			zap.String("nodeID", node.ID().String()))
	}

	return queries.NewNextConceptResult(node), nil
}
