package handlers

import (
	"context"

	"go.uber.org/zap"

	"kgraph-engine/application/ports"
	"kgraph-engine/application/queries"
	"kgraph-engine/domain/core/valueobjects"
	"kgraph-engine/domain/services"
)

// FindPathHandler handles the FindPathQuery
type FindPathHandler struct {
	source  ports.SnapshotSource
	builder *services.GraphBuilder
	finder  *services.PathFinder
	logger  *zap.Logger
}

// NewFindPathHandler creates a new handler instance
func NewFindPathHandler(
	source ports.SnapshotSource,
	builder *services.GraphBuilder,
	finder *services.PathFinder,
	logger *zap.Logger,
) *FindPathHandler {
	return &FindPathHandler{
		source:  source,
		builder: builder,
		finder:  finder,
		logger:  logger,
	}
}

// Handle executes the query
func (h *FindPathHandler) Handle(ctx context.Context, query queries.FindPathQuery) (*queries.FindPathResult, error) {
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

	startID, err := valueobjects.NewNodeIDFromString(query.StartID)
	if err != nil {
		return nil, err
	}
	endID, err := valueobjects.NewNodeIDFromString(query.EndID)
	if err != nil {
		return nil, err
	}

	result, err := h.finder.ShortestPath(graph, startID, endID)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("path found",
		zap.String("startID", query.StartID),
		zap.String("endID", query.EndID),
		zap.Int("hops", len(result.Path)-1),
		zap.Float64("totalWeight", result.TotalWeight))

	return queries.NewFindPathResult(result), nil
}
