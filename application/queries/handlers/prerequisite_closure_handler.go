package handlers

import (
	"context"

	"go.uber.org/zap"

	"kgraph-engine/application/ports"
	"kgraph-engine/application/queries"
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/core/valueobjects"
	"kgraph-engine/domain/services"
)

// PrerequisiteClosureHandler handles the PrerequisiteClosureQuery
type PrerequisiteClosureHandler struct {
	source  ports.SnapshotSource
	builder *services.GraphBuilder
	finder  *services.PathFinder
	logger  *zap.Logger
}

// NewPrerequisiteClosureHandler creates a new handler instance
func NewPrerequisiteClosureHandler(
	source ports.SnapshotSource,
	builder *services.GraphBuilder,
	finder *services.PathFinder,
	logger *zap.Logger,
) *PrerequisiteClosureHandler {
	return &PrerequisiteClosureHandler{
		source:  source,
		builder: builder,
		finder:  finder,
		logger:  logger,
	}
}

// Handle executes the query
func (h *PrerequisiteClosureHandler) Handle(ctx context.Context, query queries.PrerequisiteClosureQuery) (*queries.PrerequisiteClosureResult, error) {
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

	targetID, err := valueobjects.NewNodeIDFromString(query.TargetID)
	if err != nil {
		return nil, err
	}

	var nodes []*entities.Node
	if query.AllEdgeTypes {
		nodes, err = h.finder.AncestorClosure(graph, targetID)
	} else {
		nodes, err = h.finder.PrerequisiteClosure(graph, targetID)
	}
	if err != nil {
		return nil, err
	}

	h.logger.Debug("closure computed",
		zap.String("targetID", query.TargetID),
		zap.Bool("allEdgeTypes", query.AllEdgeTypes),
		zap.Int("ancestors", len(nodes)))

	return queries.NewPrerequisiteClosureResult(query.TargetID, nodes), nil
}
