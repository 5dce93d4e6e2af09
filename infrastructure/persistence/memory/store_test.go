package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgraph-engine/application/ports"
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/services/layout"
	"kgraph-engine/tests/fixtures"
)

func TestStore_GraphSnapshot_ReturnsCopy(t *testing.T) {
	// Arrange
	store := NewStore(ports.Snapshot{
		Nodes: fixtures.Nodes("a", "b"),
		Edges: fixtures.Chain("a", "b"),
	})

	// Act
	snap, err := store.GraphSnapshot(context.Background())
	require.NoError(t, err)

	// mutate the returned slice
	snap.Nodes[0].Title = "tampered"

	again, err := store.GraphSnapshot(context.Background())
	require.NoError(t, err)

	// Assert: the store is unaffected
	assert.NotEqual(t, "tampered", again.Nodes[0].Title)
}

func TestStore_UserKnowledge(t *testing.T) {
	// Arrange
	store := NewStore(ports.Snapshot{})
	store.SetUserKnowledge("u1", []entities.UserKnowledgeRecord{
		{NodeID: "a", Mastery: "proficient", Confidence: 0.8},
	})

	// Act
	records, err := store.UserKnowledge(context.Background(), "u1")
	require.NoError(t, err)
	unknown, err := store.UserKnowledge(context.Background(), "nobody")
	require.NoError(t, err)

	// Assert
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].NodeID)
	assert.Empty(t, unknown)
}

func TestStore_Positions_RoundTrip(t *testing.T) {
	// Arrange
	store := NewStore(ports.Snapshot{})
	positions := map[string]layout.Coordinates{
		"a": {X: 1, Y: 2},
		"b": {X: 3, Y: 4},
	}

	// Act
	require.NoError(t, store.SavePositions(context.Background(), layout.StrategyCircular, positions))

	// Assert
	saved := store.Positions(layout.StrategyCircular)
	assert.Equal(t, positions, saved)
	assert.Nil(t, store.Positions(layout.StrategyClustered))
}

func TestStore_CancelledContext(t *testing.T) {
	// Arrange
	store := NewStore(ports.Snapshot{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	_, err := store.GraphSnapshot(ctx)

	// Assert
	assert.Error(t, err)
}
