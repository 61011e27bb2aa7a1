package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "storefront/internal/errors"
)

type line struct {
	Size     string `json:"size" validate:"required,oneof=S M L"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

type payload struct {
	Name  string `json:"fullName" validate:"min=2"`
	Email string `json:"email" validate:"omitempty,email"`
	Lines []line `json:"items" validate:"min=1,dive"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(payload{
		Name:  "Asha",
		Lines: []line{{Size: "M", Quantity: 1}},
	})

	assert.NoError(t, err)
}

func TestStruct_ReportsJSONFieldPaths(t *testing.T) {
	err := Struct(payload{
		Name:  "A",
		Email: "not-an-email",
		Lines: []line{{Size: "XXXL", Quantity: 0}},
	})
	require.Error(t, err)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)

	fields := map[string]string{}
	for _, d := range ve.Details {
		fields[d.Field] = d.Message
	}

	assert.Equal(t, "fullName must be at least 2 characters", fields["fullName"])
	assert.Equal(t, "email must be a valid email address", fields["email"])
	assert.Equal(t, "size must be one of [S M L]", fields["items[0].size"])
	assert.Equal(t, "quantity must be greater than 0", fields["items[0].quantity"])
}

func TestStruct_EmptySlice(t *testing.T) {
	err := Struct(payload{Name: "Asha"})

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "items", ve.Details[0].Field)
	assert.Equal(t, "items must contain at least 1 entries", ve.Details[0].Message)
}
