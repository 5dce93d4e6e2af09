package errors

import (
	"fmt"
	"strings"
)

// Common engine errors - predeclared sentinels that can be matched with errors.Is

var (
	// Node errors
	ErrNodeNotFound = NewDomainError(
		ErrorTypeNotFound,
		"NODE_NOT_FOUND",
		"The requested node does not exist in the graph",
	)

	ErrRecordIDRequired = NewDomainError(
		ErrorTypeValidation,
		"RECORD_ID_REQUIRED",
		"Record is missing a required id",
	)

	// Path errors
	ErrNoPathFound = NewDomainError(
		ErrorTypeNoPath,
		"NO_PATH_FOUND",
		"No path exists between the requested nodes",
	)

	// Bound errors
	ErrGraphTooLarge = NewDomainError(
		ErrorTypeTooLarge,
		"GRAPH_TOO_LARGE",
		"Graph exceeds the configured computational bound",
	)

	ErrTooManyIterations = NewDomainError(
		ErrorTypeTooLarge,
		"TOO_MANY_ITERATIONS",
		"Requested iteration count exceeds the configured bound",
	)

	// Connectivity errors
	ErrDisconnectedGraph = NewDomainError(
		ErrorTypeDisconnected,
		"DISCONNECTED_GRAPH",
		"Operation requires a connected graph",
	)

	// Layout errors
	ErrUnknownLayoutStrategy = NewDomainError(
		ErrorTypeValidation,
		"UNKNOWN_LAYOUT_STRATEGY",
		"The requested layout strategy is not registered",
	)

	// Cancellation
	ErrComputationCancelled = NewDomainError(
		ErrorTypeCancelled,
		"COMPUTATION_CANCELLED",
		"Computation was cancelled before completion",
	)
)

// NewNodeNotFound returns a node-not-found error naming the missing node
func NewNodeNotFound(nodeID string) *DomainError {
	return ErrNodeNotFound.WithDetail("node_id", nodeID)
}

// NewValidationError creates a validation error with a free-form message
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrorTypeValidation, "VALIDATION_ERROR", message)
}

// ValidationErrors aggregates multiple validation errors
type ValidationErrors struct {
	Errors []*DomainError `json:"errors"`
}

// NewValidationErrors creates a new validation errors collection
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]*DomainError, 0),
	}
}

// Add adds a validation error for a field
func (v *ValidationErrors) Add(field string, message string) {
	err := NewDomainError(ErrorTypeValidation, "FIELD_VALIDATION_ERROR", message).
		WithDetail("field", field)
	v.Errors = append(v.Errors, err)
}

// AddError adds a pre-existing domain error
func (v *ValidationErrors) AddError(err *DomainError) {
	v.Errors = append(v.Errors, err)
}

// HasErrors returns true if there are validation errors
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return ""
	}

	messages := make([]string, len(v.Errors))
	for i, err := range v.Errors {
		messages[i] = err.Message
	}
	return fmt.Sprintf("Validation failed: %s", strings.Join(messages, "; "))
}
