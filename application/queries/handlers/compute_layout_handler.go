package handlers

import (
	"context"

	"go.uber.org/zap"

	"kgraph-engine/application/ports"
	"kgraph-engine/application/queries"
	"kgraph-engine/domain/services"
	"kgraph-engine/domain/services/layout"
)

// ComputeLayoutHandler handles the ComputeLayoutQuery
type ComputeLayoutHandler struct {
	source  ports.SnapshotSource
	builder *services.GraphBuilder
	engine  *layout.Engine
	sink    ports.PositionSink // optional; nil disables persistence
	logger  *zap.Logger
}

// NewComputeLayoutHandler creates a new handler instance
func NewComputeLayoutHandler(
	source ports.SnapshotSource,
	builder *services.GraphBuilder,
	engine *layout.Engine,
	sink ports.PositionSink,
	logger *zap.Logger,
) *ComputeLayoutHandler {
	return &ComputeLayoutHandler{
		source:  source,
		builder: builder,
		engine:  engine,
		sink:    sink,
		logger:  logger,
	}
}

// Handle executes the query
func (h *ComputeLayoutHandler) Handle(ctx context.Context, query queries.ComputeLayoutQuery) (*queries.ComputeLayoutResult, error) {
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

	result, err := h.engine.Compute(ctx, graph, query.Strategy, layout.Options{
		Seed:       query.Seed,
		Iterations: query.Iterations,
	})
	if err != nil {
		return nil, err
	}

	if query.Persist && h.sink != nil {
		if err := h.sink.SavePositions(ctx, result.Strategy, result.Positions); err != nil {
			// Proposals are still useful to the caller; persistence failure
			// is reported but does not void the computation
			h.logger.Warn("failed to persist layout positions",
				zap.String("strategy", result.Strategy),
				zap.Error(err))
		}
	}

	return &queries.ComputeLayoutResult{Layout: result}, nil
}
