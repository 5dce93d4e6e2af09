// Package snapshot reads and writes graph snapshot files. Both JSON and YAML
// encodings are supported, selected by file extension.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"kgraph-engine/application/ports"
	"kgraph-engine/domain/core/entities"
)

// File is the on-disk snapshot document
type File struct {
	Nodes     []entities.NodeRecord                     `json:"nodes" yaml:"nodes"`
	Edges     []entities.EdgeRecord                     `json:"edges" yaml:"edges"`
	Knowledge map[string][]entities.UserKnowledgeRecord `json:"knowledge,omitempty" yaml:"knowledge,omitempty"`
}

// Load reads a snapshot file and returns the graph snapshot plus any per-user
// knowledge records embedded in it
func Load(path string) (ports.Snapshot, map[string][]entities.UserKnowledgeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ports.Snapshot{}, nil, fmt.Errorf("read snapshot: %w", err)
	}

	var doc File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".json":
		err = json.Unmarshal(data, &doc)
	default:
		return ports.Snapshot{}, nil, fmt.Errorf("unsupported snapshot format %q", ext)
	}
	if err != nil {
		return ports.Snapshot{}, nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	return ports.Snapshot{Nodes: doc.Nodes, Edges: doc.Edges}, doc.Knowledge, nil
}

// Save writes a snapshot document to disk, choosing the encoding from the
// file extension
func Save(path string, snap ports.Snapshot, knowledge map[string][]entities.UserKnowledgeRecord) error {
	doc := File{Nodes: snap.Nodes, Edges: snap.Edges, Knowledge: knowledge}

	var data []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(doc)
	case ".json":
		data, err = json.MarshalIndent(doc, "", "  ")
	default:
		return fmt.Errorf("unsupported snapshot format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
