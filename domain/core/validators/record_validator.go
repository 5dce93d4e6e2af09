package validators

import (
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/core/valueobjects"
	"kgraph-engine/pkg/errors"
	"kgraph-engine/pkg/utils"
)

// RecordValidator validates raw snapshot records before they are turned into
// graph entities. Structural checks (required fields, numeric ranges) run via
// struct tags; enum membership is checked explicitly so the error can name
// the offending record.
type RecordValidator struct{}

// NewRecordValidator creates a new record validator
func NewRecordValidator() *RecordValidator {
	return &RecordValidator{}
}

// ValidateNodeRecord validates a raw node record
func (v *RecordValidator) ValidateNodeRecord(record entities.NodeRecord) error {
	if record.ID == "" {
		return errors.ErrRecordIDRequired.WithDetail("record_kind", "node").
			WithDetail("title", record.Title)
	}

	if err := utils.ValidateStruct(record); err != nil {
		return errors.NewValidationError(err.Error()).
			WithDetail("record_kind", "node").
			WithDetail("node_id", record.ID)
	}

	validationErrors := errors.NewValidationErrors()

	if _, err := valueobjects.ParseNodeType(record.Type); err != nil {
		validationErrors.Add("type", err.Error())
	}
	if _, err := valueobjects.ParseDifficulty(record.Difficulty); err != nil {
		validationErrors.Add("difficulty", err.Error())
	}

	if validationErrors.HasErrors() {
		return errors.NewValidationError(validationErrors.Error()).
			WithDetail("record_kind", "node").
			WithDetail("node_id", record.ID)
	}

	return nil
}

// ValidateEdgeRecord validates a raw edge record. Endpoint existence is not
// checked here; dangling references are a build-time concern handled by the
// GraphBuilder.
func (v *RecordValidator) ValidateEdgeRecord(record entities.EdgeRecord) error {
	if record.ID == "" {
		return errors.ErrRecordIDRequired.WithDetail("record_kind", "edge").
			WithDetail("source_id", record.SourceID).
			WithDetail("target_id", record.TargetID)
	}

	if err := utils.ValidateStruct(record); err != nil {
		return errors.NewValidationError(err.Error()).
			WithDetail("record_kind", "edge").
			WithDetail("edge_id", record.ID)
	}

	validationErrors := errors.NewValidationErrors()

	if _, err := valueobjects.ParseEdgeType(record.Type); err != nil {
		validationErrors.Add("type", err.Error())
	}
	if _, err := valueobjects.ParseEdgeStrength(record.Strength); err != nil {
		validationErrors.Add("strength", err.Error())
	}

	if validationErrors.HasErrors() {
		return errors.NewValidationError(validationErrors.Error()).
			WithDetail("record_kind", "edge").
			WithDetail("edge_id", record.ID)
	}

	return nil
}

// ValidateUserKnowledgeRecord validates a raw learner-state record
func (v *RecordValidator) ValidateUserKnowledgeRecord(record entities.UserKnowledgeRecord) error {
	if record.NodeID == "" {
		return errors.ErrRecordIDRequired.WithDetail("record_kind", "user_knowledge")
	}

	if err := utils.ValidateStruct(record); err != nil {
		return errors.NewValidationError(err.Error()).
			WithDetail("record_kind", "user_knowledge").
			WithDetail("node_id", record.NodeID)
	}

	if _, err := valueobjects.ParseMasteryLevel(record.Mastery); err != nil {
		return errors.NewValidationError(err.Error()).
			WithDetail("record_kind", "user_knowledge").
			WithDetail("node_id", record.NodeID)
	}

	return nil
}
