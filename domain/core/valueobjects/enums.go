package valueobjects

import "fmt"

// NodeType classifies what kind of curriculum element a node represents
type NodeType string

const (
	NodeTypeConcept    NodeType = "concept"
	NodeTypeSkill      NodeType = "skill"
	NodeTypeTopic      NodeType = "topic"
	NodeTypeObjective  NodeType = "objective"
	NodeTypeAssessment NodeType = "assessment"
	NodeTypeResource   NodeType = "resource"
)

// AllNodeTypes lists every valid node type in display order
func AllNodeTypes() []NodeType {
	return []NodeType{
		NodeTypeConcept,
		NodeTypeSkill,
		NodeTypeTopic,
		NodeTypeObjective,
		NodeTypeAssessment,
		NodeTypeResource,
	}
}

// IsValid reports whether the node type is one of the known values
func (t NodeType) IsValid() bool {
	switch t {
	case NodeTypeConcept, NodeTypeSkill, NodeTypeTopic,
		NodeTypeObjective, NodeTypeAssessment, NodeTypeResource:
		return true
	}
	return false
}

// ParseNodeType converts a string to a NodeType
func ParseNodeType(s string) (NodeType, error) {
	t := NodeType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown node type %q", s)
	}
	return t, nil
}

// Difficulty is an ordinal classification of how advanced a node is
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// IsValid reports whether the difficulty is one of the known values
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

// Rank returns the ordinal position of the difficulty, beginner first
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	case DifficultyExpert:
		return 3
	}
	return -1
}

// ParseDifficulty converts a string to a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.IsValid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// EdgeType defines the type of relationship between two nodes
type EdgeType string

const (
	EdgeTypePrerequisite EdgeType = "prerequisite"
	EdgeTypeRelated      EdgeType = "related"
	EdgeTypeExample      EdgeType = "example"
	EdgeTypeDependsOn    EdgeType = "depends_on"
	EdgeTypeLeadsTo      EdgeType = "leads_to"
	EdgeTypeContradicts  EdgeType = "contradicts"
	EdgeTypeSimilarTo    EdgeType = "similar_to"
	EdgeTypePartOf       EdgeType = "part_of"
	EdgeTypeContains     EdgeType = "contains"
)

// IsValid reports whether the edge type is one of the known values
func (t EdgeType) IsValid() bool {
	switch t {
	case EdgeTypePrerequisite, EdgeTypeRelated, EdgeTypeExample,
		EdgeTypeDependsOn, EdgeTypeLeadsTo, EdgeTypeContradicts,
		EdgeTypeSimilarTo, EdgeTypePartOf, EdgeTypeContains:
		return true
	}
	return false
}

// IsPrerequisiteKind reports whether the edge type expresses a hard
// learning dependency (used by the strict prerequisite closure)
func (t EdgeType) IsPrerequisiteKind() bool {
	return t == EdgeTypePrerequisite || t == EdgeTypeDependsOn
}

// ParseEdgeType converts a string to an EdgeType
func ParseEdgeType(s string) (EdgeType, error) {
	t := EdgeType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown edge type %q", s)
	}
	return t, nil
}

// EdgeStrength is an ordinal classification of how binding a relationship is
type EdgeStrength string

const (
	StrengthWeak      EdgeStrength = "weak"
	StrengthModerate  EdgeStrength = "moderate"
	StrengthStrong    EdgeStrength = "strong"
	StrengthEssential EdgeStrength = "essential"
)

// IsValid reports whether the strength is one of the known values
func (s EdgeStrength) IsValid() bool {
	switch s {
	case StrengthWeak, StrengthModerate, StrengthStrong, StrengthEssential:
		return true
	}
	return false
}

// Rank returns the ordinal position of the strength, weak first
func (s EdgeStrength) Rank() int {
	switch s {
	case StrengthWeak:
		return 0
	case StrengthModerate:
		return 1
	case StrengthStrong:
		return 2
	case StrengthEssential:
		return 3
	}
	return -1
}

// ParseEdgeStrength converts a string to an EdgeStrength
func ParseEdgeStrength(s string) (EdgeStrength, error) {
	st := EdgeStrength(s)
	if !st.IsValid() {
		return "", fmt.Errorf("unknown edge strength %q", s)
	}
	return st, nil
}

// MasteryLevel is an ordinal classification of a learner's demonstrated
// understanding of a node
type MasteryLevel string

const (
	MasteryUnknown    MasteryLevel = "unknown"
	MasteryExposed    MasteryLevel = "exposed"
	MasteryPracticing MasteryLevel = "practicing"
	MasteryProficient MasteryLevel = "proficient"
	MasteryExpert     MasteryLevel = "expert"
)

// IsValid reports whether the mastery level is one of the known values
func (m MasteryLevel) IsValid() bool {
	switch m {
	case MasteryUnknown, MasteryExposed, MasteryPracticing, MasteryProficient, MasteryExpert:
		return true
	}
	return false
}

// Rank returns the ordinal position of the mastery level, unknown first
func (m MasteryLevel) Rank() int {
	switch m {
	case MasteryUnknown:
		return 0
	case MasteryExposed:
		return 1
	case MasteryPracticing:
		return 2
	case MasteryProficient:
		return 3
	case MasteryExpert:
		return 4
	}
	return -1
}

// ParseMasteryLevel converts a string to a MasteryLevel
func ParseMasteryLevel(s string) (MasteryLevel, error) {
	m := MasteryLevel(s)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown mastery level %q", s)
	}
	return m, nil
}
