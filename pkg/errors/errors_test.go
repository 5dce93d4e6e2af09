package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_Is_MatchesTypeAndCode(t *testing.T) {
	// Arrange
	wrapped := fmt.Errorf("lookup failed: %w", NewNodeNotFound("node-1"))

	// Assert
	assert.True(t, errors.Is(wrapped, ErrNodeNotFound))
	assert.False(t, errors.Is(wrapped, ErrNoPathFound))
}

func TestDomainError_WithDetail_DoesNotMutateSentinel(t *testing.T) {
	// Act
	enriched := ErrNoPathFound.WithDetail("start_id", "a")

	// Assert
	assert.Empty(t, ErrNoPathFound.Details)
	require.NotNil(t, enriched.Details)
	assert.Equal(t, "a", enriched.Details["start_id"])
	assert.True(t, errors.Is(enriched, ErrNoPathFound))
}

func TestDomainError_WithCause_Unwraps(t *testing.T) {
	// Arrange
	cause := errors.New("context canceled")

	// Act
	err := ErrComputationCancelled.WithCause(cause)

	// Assert
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrComputationCancelled))
}

func TestGetDomainError(t *testing.T) {
	// Arrange
	inner := NewValidationError("weight must be positive")
	wrapped := fmt.Errorf("build failed: %w", inner)

	// Act
	domainErr := GetDomainError(wrapped)

	// Assert
	require.NotNil(t, domainErr)
	assert.Equal(t, ErrorTypeValidation, domainErr.Type)
	assert.Nil(t, GetDomainError(errors.New("plain")))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("bad")))
	assert.True(t, IsNotFound(NewNodeNotFound("x")))
	assert.True(t, IsNoPath(ErrNoPathFound))
	assert.True(t, IsTooLarge(ErrGraphTooLarge))
	assert.True(t, IsTooLarge(ErrTooManyIterations))
	assert.True(t, IsDisconnected(ErrDisconnectedGraph))
	assert.False(t, IsNotFound(ErrNoPathFound))
}

func TestValidationErrors_Aggregate(t *testing.T) {
	// Arrange
	v := NewValidationErrors()
	assert.False(t, v.HasErrors())

	// Act
	v.Add("id", "id is required")
	v.Add("type", "unknown node type")

	// Assert
	assert.True(t, v.HasErrors())
	assert.Contains(t, v.Error(), "id is required")
	assert.Contains(t, v.Error(), "unknown node type")
}

func TestWrap_PreservesCause(t *testing.T) {
	// Arrange
	cause := NewNodeNotFound("missing")

	// Act
	err := Wrap(cause, "loading snapshot")

	// Assert
	assert.True(t, errors.Is(err, ErrNodeNotFound))
	assert.Nil(t, Wrap(nil, "no-op"))
}
