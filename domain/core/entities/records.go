package entities

// Raw snapshot records as supplied by the storage collaborator. These carry
// serialization and validation tags only; the engine converts them into the
// immutable Node/Edge snapshots before any graph work happens.

// NodeRecord is the wire form of a knowledge node
type NodeRecord struct {
	ID         string  `json:"id" yaml:"id" validate:"required"`
	Title      string  `json:"title" yaml:"title"`
	Type       string  `json:"type" yaml:"type" validate:"required"`
	Difficulty string  `json:"difficulty" yaml:"difficulty" validate:"required"`
	X          float64 `json:"x" yaml:"x"`
	Y          float64 `json:"y" yaml:"y"`
	Z          float64 `json:"z" yaml:"z"`
	ViewCount  int64   `json:"view_count,omitempty" yaml:"view_count,omitempty"`
}

// EdgeRecord is the wire form of a knowledge edge
type EdgeRecord struct {
	ID             string   `json:"id" yaml:"id" validate:"required"`
	SourceID       string   `json:"source_id" yaml:"source_id" validate:"required"`
	TargetID       string   `json:"target_id" yaml:"target_id" validate:"required"`
	Type           string   `json:"type" yaml:"type" validate:"required"`
	Strength       string   `json:"strength" yaml:"strength" validate:"required"`
	WeightOverride *float64 `json:"weight_override,omitempty" yaml:"weight_override,omitempty" validate:"omitempty,gt=0"`
	TraversalCount int64    `json:"traversal_count,omitempty" yaml:"traversal_count,omitempty"`
}

// UserKnowledgeRecord is the wire form of a learner's state for one node
type UserKnowledgeRecord struct {
	NodeID     string  `json:"node_id" yaml:"node_id" validate:"required"`
	Mastery    string  `json:"mastery" yaml:"mastery" validate:"required"`
	Confidence float64 `json:"confidence" yaml:"confidence" validate:"gte=0,lte=1"`
}
