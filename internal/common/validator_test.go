package common

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	v := NewValidator()
	assert.True(t, v.Valid())

	v.Check(false, "field", "first message")
	v.Check(false, "field", "second message")
	v.Check(true, "other", "never added")

	assert.False(t, v.Valid())
	// the first message for a field wins
	assert.Equal(t, map[string]string{"field": "first message"}, v.Errors)
}

func TestValidationErrorKeepsCause(t *testing.T) {
	cause := errors.New("underlying failure")
	err := NewValidationError("file", "the file is unreadable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "the file is unreadable", err.Errors["file"])

	var validationErr ValidationError
	require.True(t, errors.As(error(err), &validationErr))
}

func TestCheckOwnership(t *testing.T) {
	owner := uuid.New()
	caller := uuid.New()

	assert.NoError(t, CheckOwnership(owner, owner, "post"))

	err := CheckOwnership(owner, caller, "post")
	var validationErr ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Errors["post"], "belongs to another user")
}
