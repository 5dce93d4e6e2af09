package entities

import (
	"kgraph-engine/domain/core/valueobjects"
	pkgerrors "kgraph-engine/pkg/errors"
)

// Node is an immutable snapshot of a knowledge node. The storage collaborator
// owns the durable record; the engine only ever reads these values and
// proposes new positions as separate outputs.
type Node struct {
	id         valueobjects.NodeID
	title      string
	nodeType   valueobjects.NodeType
	difficulty valueobjects.Difficulty
	position   valueobjects.Position
	viewCount  int64
}

// ReconstructNode builds a node snapshot from stored record data
func ReconstructNode(
	id valueobjects.NodeID,
	title string,
	nodeType valueobjects.NodeType,
	difficulty valueobjects.Difficulty,
	position valueobjects.Position,
	viewCount int64,
) (*Node, error) {
	if id.IsZero() {
		return nil, pkgerrors.ErrRecordIDRequired
	}
	if !nodeType.IsValid() {
		return nil, pkgerrors.NewValidationError("invalid node type").
			WithDetail("node_id", id.String()).
			WithDetail("type", string(nodeType))
	}
	if !difficulty.IsValid() {
		return nil, pkgerrors.NewValidationError("invalid node difficulty").
			WithDetail("node_id", id.String()).
			WithDetail("difficulty", string(difficulty))
	}

	return &Node{
		id:         id,
		title:      title,
		nodeType:   nodeType,
		difficulty: difficulty,
		position:   position,
		viewCount:  viewCount,
	}, nil
}

// ID returns the node's unique identifier
func (n *Node) ID() valueobjects.NodeID {
	return n.id
}

// Title returns the node's display title
func (n *Node) Title() string {
	return n.title
}

// Type returns the node's curriculum element type
func (n *Node) Type() valueobjects.NodeType {
	return n.nodeType
}

// Difficulty returns the node's difficulty tier
func (n *Node) Difficulty() valueobjects.Difficulty {
	return n.difficulty
}

// Position returns the node's last stored position
func (n *Node) Position() valueobjects.Position {
	return n.position
}

// ViewCount returns how many times the node has been viewed
func (n *Node) ViewCount() int64 {
	return n.viewCount
}
