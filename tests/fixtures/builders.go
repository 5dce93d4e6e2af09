// Package fixtures provides builders for test graphs
package fixtures

import (
	"fmt"

	"github.com/google/uuid"

	"kgraph-engine/domain/core/aggregates"
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/services"
)

// NodeBuilder helps create test node records with default values
type NodeBuilder struct {
	record entities.NodeRecord
}

func NewNodeBuilder() *NodeBuilder {
	return &NodeBuilder{
		record: entities.NodeRecord{
			ID:         uuid.NewString(),
			Title:      "Test Concept",
			Type:       "concept",
			Difficulty: "beginner",
		},
	}
}

func (b *NodeBuilder) WithID(id string) *NodeBuilder {
	b.record.ID = id
	return b
}

func (b *NodeBuilder) WithTitle(title string) *NodeBuilder {
	b.record.Title = title
	return b
}

func (b *NodeBuilder) WithType(nodeType string) *NodeBuilder {
	b.record.Type = nodeType
	return b
}

func (b *NodeBuilder) WithDifficulty(difficulty string) *NodeBuilder {
	b.record.Difficulty = difficulty
	return b
}

func (b *NodeBuilder) WithPosition(x, y, z float64) *NodeBuilder {
	b.record.X, b.record.Y, b.record.Z = x, y, z
	return b
}

func (b *NodeBuilder) WithViewCount(count int64) *NodeBuilder {
	b.record.ViewCount = count
	return b
}

func (b *NodeBuilder) Record() entities.NodeRecord {
	return b.record
}

// EdgeBuilder helps create test edge records with default values
type EdgeBuilder struct {
	record entities.EdgeRecord
}

func NewEdgeBuilder(sourceID, targetID string) *EdgeBuilder {
	return &EdgeBuilder{
		record: entities.EdgeRecord{
			ID:       uuid.NewString(),
			SourceID: sourceID,
			TargetID: targetID,
			Type:     "prerequisite",
			Strength: "moderate",
		},
	}
}

func (b *EdgeBuilder) WithID(id string) *EdgeBuilder {
	b.record.ID = id
	return b
}

func (b *EdgeBuilder) WithType(edgeType string) *EdgeBuilder {
	b.record.Type = edgeType
	return b
}

func (b *EdgeBuilder) WithStrength(strength string) *EdgeBuilder {
	b.record.Strength = strength
	return b
}

func (b *EdgeBuilder) WithWeightOverride(weight float64) *EdgeBuilder {
	b.record.WeightOverride = &weight
	return b
}

func (b *EdgeBuilder) Record() entities.EdgeRecord {
	return b.record
}

// Nodes creates simple concept records with the given ids
func Nodes(ids ...string) []entities.NodeRecord {
	records := make([]entities.NodeRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, NewNodeBuilder().WithID(id).WithTitle("Node "+id).Record())
	}
	return records
}

// Chain creates prerequisite edges linking the ids in sequence
func Chain(ids ...string) []entities.EdgeRecord {
	records := make([]entities.EdgeRecord, 0, len(ids)-1)
	for i := 0; i+1 < len(ids); i++ {
		records = append(records, NewEdgeBuilder(ids[i], ids[i+1]).Record())
	}
	return records
}

// MustBuildGraph assembles a graph model from records, panicking on any
// validation failure
func MustBuildGraph(nodes []entities.NodeRecord, edges []entities.EdgeRecord) *aggregates.GraphModel {
	graph, err := services.NewGraphBuilder(nil).Build(nodes, edges)
	if err != nil {
		panic(fmt.Sprintf("fixture graph: %v", err))
	}
	return graph
}
