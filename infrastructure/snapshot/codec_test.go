package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgraph-engine/application/ports"
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/tests/fixtures"
)

func sampleSnapshot() (ports.Snapshot, map[string][]entities.UserKnowledgeRecord) {
	snap := ports.Snapshot{
		Nodes: fixtures.Nodes("a", "b"),
		Edges: fixtures.Chain("a", "b"),
	}
	knowledge := map[string][]entities.UserKnowledgeRecord{
		"u1": {{NodeID: "a", Mastery: "exposed", Confidence: 0.4}},
	}
	return snap, knowledge
}

func TestCodec_RoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			// Arrange
			path := filepath.Join(t.TempDir(), "graph"+ext)
			snap, knowledge := sampleSnapshot()

			// Act
			require.NoError(t, Save(path, snap, knowledge))
			loadedSnap, loadedKnowledge, err := Load(path)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, snap.Nodes, loadedSnap.Nodes)
			assert.Equal(t, snap.Edges, loadedSnap.Edges)
			require.Contains(t, loadedKnowledge, "u1")
			assert.Equal(t, knowledge["u1"], loadedKnowledge["u1"])
		})
	}
}

func TestCodec_UnsupportedExtension(t *testing.T) {
	// Act
	_, _, err := Load("graph.toml")

	// Assert
	assert.Error(t, err)

	err = Save("graph.toml", ports.Snapshot{}, nil)
	assert.Error(t, err)
}

func TestCodec_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestCodec_MalformedContent(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	// Act
	_, _, err := Load(path)

	// Assert
	assert.Error(t, err)
}
