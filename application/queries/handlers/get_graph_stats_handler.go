package handlers

import (
	"context"

	"go.uber.org/zap"

	"kgraph-engine/application/ports"
	"kgraph-engine/application/queries"
	"kgraph-engine/domain/services"
)

// GetGraphStatsHandler handles the GetGraphStatsQuery
type GetGraphStatsHandler struct {
	source   ports.SnapshotSource
	builder  *services.GraphBuilder
	analyzer *services.GraphAnalyzer
	logger   *zap.Logger
}

// NewGetGraphStatsHandler creates a new handler instance
func NewGetGraphStatsHandler(
	source ports.SnapshotSource,
	builder *services.GraphBuilder,
	analyzer *services.GraphAnalyzer,
	logger *zap.Logger,
) *GetGraphStatsHandler {
	return &GetGraphStatsHandler{
		source:   source,
		builder:  builder,
		analyzer: analyzer,
		logger:   logger,
	}
}

// Handle executes the query
func (h *GetGraphStatsHandler) Handle(ctx context.Context, query queries.GetGraphStatsQuery) (*queries.GetGraphStatsResult, error) {
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

	stats, err := h.analyzer.Analyze(ctx, graph)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("graph statistics computed",
		zap.Int("nodes", stats.NodeCount),
		zap.Int("edges", stats.EdgeCount),
		zap.Int("components", stats.ComponentCount))

	return &queries.GetGraphStatsResult{
		Stats:        stats,
		DroppedEdges: len(snapshot.Edges) - graph.EdgeCount(),
	}, nil
}
