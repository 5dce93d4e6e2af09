package aggregates

import (
	"sort"

	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/core/valueobjects"
	pkgerrors "kgraph-engine/pkg/errors"
)

// GraphModel is the immutable in-memory adjacency representation of one
// snapshot of the knowledge graph. It is built once per logical operation and
// never mutated afterwards, so analyzers, path finders and layout runs may
// share an instance across goroutines without locking.
type GraphModel struct {
	nodes    map[valueobjects.NodeID]*entities.Node
	edges    []*entities.Edge
	outgoing map[valueobjects.NodeID][]*entities.Edge
	incoming map[valueobjects.NodeID][]*entities.Edge

	// node ids in ascending order, computed once at build time so every
	// iteration over the graph is deterministic
	orderedIDs []valueobjects.NodeID
}

// NewGraphModel assembles a model from already-validated snapshots. Callers
// normally go through the GraphBuilder service, which validates raw records
// and drops edges with missing endpoints before calling this.
func NewGraphModel(nodes []*entities.Node, edges []*entities.Edge) *GraphModel {
	m := &GraphModel{
		nodes:    make(map[valueobjects.NodeID]*entities.Node, len(nodes)),
		edges:    make([]*entities.Edge, 0, len(edges)),
		outgoing: make(map[valueobjects.NodeID][]*entities.Edge),
		incoming: make(map[valueobjects.NodeID][]*entities.Edge),
	}

	for _, node := range nodes {
		m.nodes[node.ID()] = node
	}

	for _, edge := range edges {
		m.edges = append(m.edges, edge)
		m.outgoing[edge.SourceID()] = append(m.outgoing[edge.SourceID()], edge)
		m.incoming[edge.TargetID()] = append(m.incoming[edge.TargetID()], edge)
	}

	m.orderedIDs = make([]valueobjects.NodeID, 0, len(m.nodes))
	for id := range m.nodes {
		m.orderedIDs = append(m.orderedIDs, id)
	}
	sort.Slice(m.orderedIDs, func(i, j int) bool {
		return m.orderedIDs[i].Less(m.orderedIDs[j])
	})

	return m
}

// NodeCount returns the number of nodes in the snapshot
func (m *GraphModel) NodeCount() int {
	return len(m.nodes)
}

// EdgeCount returns the number of edges in the snapshot
func (m *GraphModel) EdgeCount() int {
	return len(m.edges)
}

// HasNode checks if a node exists in the graph
func (m *GraphModel) HasNode(id valueobjects.NodeID) bool {
	_, exists := m.nodes[id]
	return exists
}

// Node retrieves a node by ID
func (m *GraphModel) Node(id valueobjects.NodeID) (*entities.Node, error) {
	node, exists := m.nodes[id]
	if !exists {
		return nil, pkgerrors.NewNodeNotFound(id.String())
	}
	return node, nil
}

// NodeIDs returns all node ids in ascending order
func (m *GraphModel) NodeIDs() []valueobjects.NodeID {
	ids := make([]valueobjects.NodeID, len(m.orderedIDs))
	copy(ids, m.orderedIDs)
	return ids
}

// Nodes returns all nodes ordered by ascending id
func (m *GraphModel) Nodes() []*entities.Node {
	nodes := make([]*entities.Node, 0, len(m.orderedIDs))
	for _, id := range m.orderedIDs {
		nodes = append(nodes, m.nodes[id])
	}
	return nodes
}

// Edges returns all edges in the snapshot
func (m *GraphModel) Edges() []*entities.Edge {
	edges := make([]*entities.Edge, len(m.edges))
	copy(edges, m.edges)
	return edges
}

// Outgoing returns the edges leaving a node
func (m *GraphModel) Outgoing(id valueobjects.NodeID) []*entities.Edge {
	edges := make([]*entities.Edge, len(m.outgoing[id]))
	copy(edges, m.outgoing[id])
	return edges
}

// Incoming returns the edges arriving at a node
func (m *GraphModel) Incoming(id valueobjects.NodeID) []*entities.Edge {
	edges := make([]*entities.Edge, len(m.incoming[id]))
	copy(edges, m.incoming[id])
	return edges
}

// UndirectedNeighbors returns the distinct neighbor set of a node, treating
// every edge as undirected. Self-loops are excluded.
func (m *GraphModel) UndirectedNeighbors(id valueobjects.NodeID) []valueobjects.NodeID {
	seen := make(map[valueobjects.NodeID]bool)
	var neighbors []valueobjects.NodeID

	appendNeighbor := func(other valueobjects.NodeID) {
		if other.Equals(id) || seen[other] {
			return
		}
		seen[other] = true
		neighbors = append(neighbors, other)
	}

	for _, edge := range m.outgoing[id] {
		appendNeighbor(edge.TargetID())
	}
	for _, edge := range m.incoming[id] {
		appendNeighbor(edge.SourceID())
	}

	sort.Slice(neighbors, func(i, j int) bool {
		return neighbors[i].Less(neighbors[j])
	})
	return neighbors
}

// HasUndirectedEdge reports whether any edge connects a and b in either
// direction
func (m *GraphModel) HasUndirectedEdge(a, b valueobjects.NodeID) bool {
	for _, edge := range m.outgoing[a] {
		if edge.TargetID().Equals(b) {
			return true
		}
	}
	for _, edge := range m.incoming[a] {
		if edge.SourceID().Equals(b) {
			return true
		}
	}
	return false
}

// Validate ensures model invariants: every edge endpoint resolves to a node
// in the snapshot
func (m *GraphModel) Validate() error {
	for _, edge := range m.edges {
		if !m.HasNode(edge.SourceID()) {
			return pkgerrors.NewValidationError("edge references non-existent source node").
				WithDetail("edge_id", edge.ID().String()).
				WithDetail("source_id", edge.SourceID().String())
		}
		if !m.HasNode(edge.TargetID()) {
			return pkgerrors.NewValidationError("edge references non-existent target node").
				WithDetail("edge_id", edge.ID().String()).
				WithDetail("target_id", edge.TargetID().String())
		}
	}
	return nil
}
