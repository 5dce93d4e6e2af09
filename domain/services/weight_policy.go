package services

import (
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/core/valueobjects"
)

// WeightPolicy maps a relationship type and strength to a positive traversal
// cost. The function is total over both enums and side-effect free, so the
// same edge always costs the same within a snapshot.
//
// Directional teaching relationships are cheap to follow; lateral ones cost
// more, and contradictions are deliberately expensive so paths avoid routing
// through them.
type WeightPolicy struct{}

// NewWeightPolicy creates a new weight policy
func NewWeightPolicy() *WeightPolicy {
	return &WeightPolicy{}
}

// Weight computes the traversal cost for a (type, strength) pair
func (p *WeightPolicy) Weight(edgeType valueobjects.EdgeType, strength valueobjects.EdgeStrength) float64 {
	return baseWeight(edgeType) * strengthFactor(strength)
}

// EdgeWeight computes the traversal cost for an edge snapshot. An explicit
// per-edge override replaces the computed value entirely.
func (p *WeightPolicy) EdgeWeight(edge *entities.Edge) float64 {
	if override, ok := edge.WeightOverride(); ok {
		return override
	}
	return p.Weight(edge.Type(), edge.Strength())
}

func baseWeight(edgeType valueobjects.EdgeType) float64 {
	switch edgeType {
	case valueobjects.EdgeTypePrerequisite,
		valueobjects.EdgeTypeDependsOn,
		valueobjects.EdgeTypeLeadsTo,
		valueobjects.EdgeTypePartOf,
		valueobjects.EdgeTypeContains:
		return 1.0
	case valueobjects.EdgeTypeExample:
		return 1.5
	case valueobjects.EdgeTypeRelated,
		valueobjects.EdgeTypeSimilarTo:
		return 2.0
	case valueobjects.EdgeTypeContradicts:
		return 3.0
	}
	// Unknown types never reach here through a built graph; keep the function
	// total anyway
	return 2.0
}

func strengthFactor(strength valueobjects.EdgeStrength) float64 {
	switch strength {
	case valueobjects.StrengthWeak:
		return 1.5
	case valueobjects.StrengthModerate:
		return 1.0
	case valueobjects.StrengthStrong:
		return 0.8
	case valueobjects.StrengthEssential:
		return 0.5
	}
	return 1.0
}
