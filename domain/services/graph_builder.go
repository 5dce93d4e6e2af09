package services

import (
	"go.uber.org/zap"

	"kgraph-engine/domain/core/aggregates"
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/core/validators"
	"kgraph-engine/domain/core/valueobjects"
	pkgerrors "kgraph-engine/pkg/errors"
)

// GraphBuilder validates raw snapshot records and assembles an immutable
// GraphModel. Malformed records fail the build; edges that reference nodes
// absent from the snapshot are dropped with a warning, matching the
// permissive-ingestion policy of the storage collaborator.
type GraphBuilder struct {
	validator *validators.RecordValidator
	logger    *zap.Logger
}

// NewGraphBuilder creates a new graph builder
func NewGraphBuilder(logger *zap.Logger) *GraphBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GraphBuilder{
		validator: validators.NewRecordValidator(),
		logger:    logger,
	}
}

// Build assembles a GraphModel from one snapshot of node and edge records.
// Runs in O(V+E). Duplicate edges between the same ordered pair are allowed;
// deduplication is the caller's decision.
func (b *GraphBuilder) Build(
	nodeRecords []entities.NodeRecord,
	edgeRecords []entities.EdgeRecord,
) (*aggregates.GraphModel, error) {
	nodes := make([]*entities.Node, 0, len(nodeRecords))
	nodeSet := make(map[valueobjects.NodeID]bool, len(nodeRecords))

	for _, record := range nodeRecords {
		if err := b.validator.ValidateNodeRecord(record); err != nil {
			return nil, err
		}

		node, err := b.buildNode(record)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
		nodeSet[node.ID()] = true
	}

	edges := make([]*entities.Edge, 0, len(edgeRecords))
	dropped := 0

	for _, record := range edgeRecords {
		if err := b.validator.ValidateEdgeRecord(record); err != nil {
			return nil, err
		}

		edge, err := b.buildEdge(record)
		if err != nil {
			return nil, err
		}

		// Dangling references are recoverable: drop, warn, continue
		if !nodeSet[edge.SourceID()] || !nodeSet[edge.TargetID()] {
			dropped++
			b.logger.Warn("dropping edge with missing endpoint",
				zap.String("edgeID", edge.ID().String()),
				zap.String("sourceID", edge.SourceID().String()),
				zap.String("targetID", edge.TargetID().String()),
				zap.Bool("sourceExists", nodeSet[edge.SourceID()]),
				zap.Bool("targetExists", nodeSet[edge.TargetID()]))
			continue
		}

		edges = append(edges, edge)
	}

	if dropped > 0 {
		b.logger.Warn("graph built with dropped edges",
			zap.Int("dropped", dropped),
			zap.Int("kept", len(edges)))
	}

	return aggregates.NewGraphModel(nodes, edges), nil
}

func (b *GraphBuilder) buildNode(record entities.NodeRecord) (*entities.Node, error) {
	id, err := valueobjects.NewNodeIDFromString(record.ID)
	if err != nil {
		return nil, pkgerrors.ErrRecordIDRequired.WithDetail("record_kind", "node")
	}

	nodeType, err := valueobjects.ParseNodeType(record.Type)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error()).WithDetail("node_id", record.ID)
	}

	difficulty, err := valueobjects.ParseDifficulty(record.Difficulty)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error()).WithDetail("node_id", record.ID)
	}

	position, err := valueobjects.NewPosition3D(record.X, record.Y, record.Z)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error()).WithDetail("node_id", record.ID)
	}

	return entities.ReconstructNode(id, record.Title, nodeType, difficulty, position, record.ViewCount)
}

func (b *GraphBuilder) buildEdge(record entities.EdgeRecord) (*entities.Edge, error) {
	id, err := valueobjects.NewEdgeIDFromString(record.ID)
	if err != nil {
		return nil, pkgerrors.ErrRecordIDRequired.WithDetail("record_kind", "edge")
	}

	sourceID, err := valueobjects.NewNodeIDFromString(record.SourceID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("edge source id is required").
			WithDetail("edge_id", record.ID)
	}

	targetID, err := valueobjects.NewNodeIDFromString(record.TargetID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("edge target id is required").
			WithDetail("edge_id", record.ID)
	}

	edgeType, err := valueobjects.ParseEdgeType(record.Type)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error()).WithDetail("edge_id", record.ID)
	}

	strength, err := valueobjects.ParseEdgeStrength(record.Strength)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error()).WithDetail("edge_id", record.ID)
	}

	return entities.ReconstructEdge(id, sourceID, targetID, edgeType, strength,
		record.WeightOverride, record.TraversalCount)
}
