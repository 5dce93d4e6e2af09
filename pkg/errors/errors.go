package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of engine error
type ErrorType string

const (
	// ErrorTypeValidation indicates a malformed or incomplete input record
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeNotFound indicates a referenced node or edge does not exist
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeNoPath indicates no path exists between two existing nodes
	ErrorTypeNoPath ErrorType = "NO_PATH"

	// ErrorTypeTooLarge indicates a graph exceeds a configured computational bound
	ErrorTypeTooLarge ErrorType = "GRAPH_TOO_LARGE"

	// ErrorTypeDisconnected indicates an operation that requires a connected graph
	// was invoked on a disconnected one
	ErrorTypeDisconnected ErrorType = "DISCONNECTED_GRAPH"

	// ErrorTypeCancelled indicates a computation was abandoned by the caller
	ErrorTypeCancelled ErrorType = "CANCELLED"

	// ErrorTypeInternal indicates an unexpected engine failure
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// DomainError represents an engine-specific error with rich context
type DomainError struct {
	Type    ErrorType              `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// NewDomainError creates a new domain error
func NewDomainError(errorType ErrorType, code string, message string) *DomainError {
	return &DomainError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

// WithCause adds a cause to the error
func (e *DomainError) WithCause(cause error) *DomainError {
	c := e.clone()
	c.Cause = cause
	return c
}

// WithDetail adds a detail to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	c := e.clone()
	c.Details[key] = value
	return c
}

// WithDetails adds multiple details to the error
func (e *DomainError) WithDetails(details map[string]interface{}) *DomainError {
	c := e.clone()
	for k, v := range details {
		c.Details[k] = v
	}
	return c
}

// Is matches errors by type and code, so the predeclared sentinels work
// with errors.Is even after details have been attached
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

// Unwrap returns the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// clone copies the error so sentinel values are never mutated in place
func (e *DomainError) clone() *DomainError {
	details := make(map[string]interface{}, len(e.Details))
	for k, v := range e.Details {
		details[k] = v
	}
	return &DomainError{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// Helper functions

// GetDomainError extracts a DomainError from an error chain
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Type == errType
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsNoPath checks if an error is a no-path error
func IsNoPath(err error) bool {
	return IsType(err, ErrorTypeNoPath)
}

// IsTooLarge checks if an error is a graph-too-large error
func IsTooLarge(err error) bool {
	return IsType(err, ErrorTypeTooLarge)
}

// IsDisconnected checks if an error is a disconnected-graph error
func IsDisconnected(err error) bool {
	return IsType(err, ErrorTypeDisconnected)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	if domainErr := GetDomainError(err); domainErr != nil {
		c := domainErr.clone()
		c.Message = fmt.Sprintf("%s: %s", message, c.Message)
		return c
	}

	return NewDomainError(ErrorTypeInternal, "INTERNAL_ERROR", message).WithCause(err)
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
