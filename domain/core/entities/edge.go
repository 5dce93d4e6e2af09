package entities

import (
	"kgraph-engine/domain/core/valueobjects"
	pkgerrors "kgraph-engine/pkg/errors"
)

// Edge is an immutable snapshot of a directed, typed relationship between
// two knowledge nodes.
type Edge struct {
	id             valueobjects.EdgeID
	sourceID       valueobjects.NodeID
	targetID       valueobjects.NodeID
	edgeType       valueobjects.EdgeType
	strength       valueobjects.EdgeStrength
	weightOverride *float64
	traversalCount int64
}

// ReconstructEdge builds an edge snapshot from stored record data
func ReconstructEdge(
	id valueobjects.EdgeID,
	sourceID, targetID valueobjects.NodeID,
	edgeType valueobjects.EdgeType,
	strength valueobjects.EdgeStrength,
	weightOverride *float64,
	traversalCount int64,
) (*Edge, error) {
	if id.IsZero() {
		return nil, pkgerrors.ErrRecordIDRequired
	}
	if sourceID.IsZero() || targetID.IsZero() {
		return nil, pkgerrors.NewValidationError("edge endpoints are required").
			WithDetail("edge_id", id.String())
	}
	if !edgeType.IsValid() {
		return nil, pkgerrors.NewValidationError("invalid edge type").
			WithDetail("edge_id", id.String()).
			WithDetail("type", string(edgeType))
	}
	if !strength.IsValid() {
		return nil, pkgerrors.NewValidationError("invalid edge strength").
			WithDetail("edge_id", id.String()).
			WithDetail("strength", string(strength))
	}
	if weightOverride != nil && *weightOverride <= 0 {
		return nil, pkgerrors.NewValidationError("weight override must be positive").
			WithDetail("edge_id", id.String()).
			WithDetail("weight_override", *weightOverride)
	}

	return &Edge{
		id:             id,
		sourceID:       sourceID,
		targetID:       targetID,
		edgeType:       edgeType,
		strength:       strength,
		weightOverride: weightOverride,
		traversalCount: traversalCount,
	}, nil
}

// ID returns the edge's unique identifier
func (e *Edge) ID() valueobjects.EdgeID {
	return e.id
}

// SourceID returns the id of the node the edge starts at
func (e *Edge) SourceID() valueobjects.NodeID {
	return e.sourceID
}

// TargetID returns the id of the node the edge points to
func (e *Edge) TargetID() valueobjects.NodeID {
	return e.targetID
}

// Type returns the relationship type
func (e *Edge) Type() valueobjects.EdgeType {
	return e.edgeType
}

// Strength returns the relationship strength
func (e *Edge) Strength() valueobjects.EdgeStrength {
	return e.strength
}

// WeightOverride returns the explicit traversal cost, if one was set on the
// record. A non-nil override replaces the policy-computed weight entirely.
func (e *Edge) WeightOverride() (float64, bool) {
	if e.weightOverride == nil {
		return 0, false
	}
	return *e.weightOverride, true
}

// TraversalCount returns how many times the edge has been traversed
func (e *Edge) TraversalCount() int64 {
	return e.traversalCount
}
