package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:11434: connect: connection refused")
	err := NewLLMServiceError(cause)

	assert.Equal(t, CodeLLMServiceError, err.Code)
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, fmt.Errorf("generate: %w", err), cause)

	var target *DomainError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &target)
	assert.Same(t, err, target)
}

func TestDomainError_MarshalJSONHidesCause(t *testing.T) {
	err := NewReportNotFoundError("01HZY3M8Q6V5T4K2B9N7C1D0EF")
	err.Cause = errors.New("sql: no rows in result set")

	raw, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, string(CodeReportNotFound), got["code"])
	assert.Equal(t, map[string]interface{}{"report_id": "01HZY3M8Q6V5T4K2B9N7C1D0EF"}, got["context"])
	assert.NotContains(t, string(raw), "no rows")
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		NewMissingFieldError("exercises"),
		NewOutOfRangeError("threshold", 1.5, 0, 1),
		NewValidationError("request body is required"),
	}

	assert.Equal(t,
		"validation failed: exercises: exercises is required; threshold: threshold must be between 0 and 1; request body is required",
		errs.Error())

	var target ValidationErrors
	require.ErrorAs(t, fmt.Errorf("service: %w", errs), &target)
	assert.Len(t, target, 3)
	assert.Equal(t, CodeOutOfRange, target[1].Code)
	assert.Equal(t, 1.5, target[1].Value)
}
