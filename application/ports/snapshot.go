package ports

import (
	"context"

	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/services/layout"
)

// Snapshot is one consistent view of the stored graph, fully materialized.
// The engine performs no I/O of its own; a collaborator hands this in.
type Snapshot struct {
	Nodes []entities.NodeRecord `json:"nodes" yaml:"nodes"`
	Edges []entities.EdgeRecord `json:"edges" yaml:"edges"`
}

// SnapshotSource supplies graph and learner-state snapshots.
// This is a port in hexagonal architecture - the engine doesn't know about
// the storage implementation behind it.
type SnapshotSource interface {
	// GraphSnapshot returns one consistent snapshot of all node and edge records
	GraphSnapshot(ctx context.Context) (*Snapshot, error)

	// UserKnowledge returns a learner's per-node state records
	UserKnowledge(ctx context.Context, userID string) ([]entities.UserKnowledgeRecord, error)
}

// PositionSink receives proposed node positions after a layout run. The
// engine never mutates source records; persisting proposals is the
// collaborator's decision.
type PositionSink interface {
	SavePositions(ctx context.Context, strategy string, positions map[string]layout.Coordinates) error
}
