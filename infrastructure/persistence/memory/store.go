// Package memory provides an in-memory snapshot store. It backs the CLI and
// the test suites; production deployments would plug a real datastore behind
// the same ports.
package memory

import (
	"context"
	"sync"

	"kgraph-engine/application/ports"
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/services/layout"
	appErrors "kgraph-engine/pkg/errors"
)

// Store holds a graph snapshot and per-user knowledge records in memory.
// Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	snapshot  ports.Snapshot
	knowledge map[string][]entities.UserKnowledgeRecord
	positions map[string]map[string]layout.Coordinates
}

// NewStore creates a store seeded with the given snapshot
func NewStore(snapshot ports.Snapshot) *Store {
	return &Store{
		snapshot:  snapshot,
		knowledge: make(map[string][]entities.UserKnowledgeRecord),
		positions: make(map[string]map[string]layout.Coordinates),
	}
}

// GraphSnapshot returns a copy of the stored snapshot
func (s *Store) GraphSnapshot(ctx context.Context) (*ports.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, appErrors.ErrComputationCancelled.WithCause(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := &ports.Snapshot{
		Nodes: make([]entities.NodeRecord, len(s.snapshot.Nodes)),
		Edges: make([]entities.EdgeRecord, len(s.snapshot.Edges)),
	}
	copy(out.Nodes, s.snapshot.Nodes)
	copy(out.Edges, s.snapshot.Edges)
	return out, nil
}

// UserKnowledge returns the stored knowledge records for a user. Users with
// no recorded knowledge get an empty slice, not an error.
func (s *Store) UserKnowledge(ctx context.Context, userID string) ([]entities.UserKnowledgeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, appErrors.ErrComputationCancelled.WithCause(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.knowledge[userID]
	out := make([]entities.UserKnowledgeRecord, len(records))
	copy(out, records)
	return out, nil
}

// SetUserKnowledge replaces the knowledge records for a user
func (s *Store) SetUserKnowledge(userID string, records []entities.UserKnowledgeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]entities.UserKnowledgeRecord, len(records))
	copy(stored, records)
	s.knowledge[userID] = stored
}

// SavePositions stores computed layout coordinates keyed by strategy name
func (s *Store) SavePositions(ctx context.Context, strategy string, positions map[string]layout.Coordinates) error {
	if err := ctx.Err(); err != nil {
		return appErrors.ErrComputationCancelled.WithCause(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make(map[string]layout.Coordinates, len(positions))
	for id, coords := range positions {
		stored[id] = coords
	}
	s.positions[strategy] = stored
	return nil
}

// Positions returns the saved coordinates for a strategy, or nil when the
// strategy has never been persisted
func (s *Store) Positions(strategy string) map[string]layout.Coordinates {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.positions[strategy]
	if !ok {
		return nil
	}
	out := make(map[string]layout.Coordinates, len(stored))
	for id, coords := range stored {
		out[id] = coords
	}
	return out
}

var _ ports.SnapshotSource = (*Store)(nil)
var _ ports.PositionSink = (*Store)(nil)
