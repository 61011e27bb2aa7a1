package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "order not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("test not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "test not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestNotFoundError_Wrapped(t *testing.T) {
	err := fmt.Errorf("loading order: %w", NewNotFoundError("order not found"))

	_, ok := IsNotFoundError(err)
	assert.True(t, ok)
}

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "phone", Message: "phone must be at least 10 characters"},
		{Field: "fullName", Message: "fullName is required"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestUnauthorizedError_UniformMessage(t *testing.T) {
	err := NewUnauthorizedError()

	ue, ok := IsUnauthorizedError(err)
	assert.True(t, ok)
	assert.Equal(t, "unauthorized", ue.Error())
}

func TestConflictError_IsConflictError(t *testing.T) {
	err := NewConflictError("order code already exists")

	_, ok := IsConflictError(err)
	assert.True(t, ok)

	_, ok = IsNotFoundError(err)
	assert.False(t, ok)
}

func TestStorageError_Creation(t *testing.T) {
	cause := errors.New("database error")
	err := NewStorageError("failed to query database", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to query database", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to query database")
	assert.Contains(t, err.Error(), "database error")
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewStorageError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestStorageError_NilCause(t *testing.T) {
	err := NewStorageError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		storage bool
	}{
		{name: "nil", err: nil},
		{name: "validation kept", err: NewValidationError("bad")},
		{name: "not found kept", err: NewNotFoundError("missing")},
		{name: "conflict kept", err: NewConflictError("dup")},
		{name: "unauthorized kept", err: NewUnauthorizedError()},
		{name: "raw error wrapped", err: errors.New("driver: bad connection"), storage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate("loading orders", tt.err)
			if tt.err == nil {
				assert.Nil(t, got)
				return
			}
			_, isStorage := IsStorageError(got)
			assert.Equal(t, tt.storage, isStorage)
			if !tt.storage {
				assert.Same(t, tt.err, got)
			}
		})
	}
}
