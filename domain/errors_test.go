package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "slotId: slot id is required", ValidationError{Field: "slotId", Msg: "slot id is required"}.Error())
	assert.Equal(t, "slot not found", NotFoundError{Resource: "slot"}.Error())
	assert.Equal(t, "slot conflict: slot is not available", ConflictError{Resource: "slot", Msg: "slot is not available"}.Error())
	assert.Equal(t, "forbidden", ForbiddenError{}.Error())
	assert.Equal(t, "internal error", InternalError{}.Error())
}

func TestClassifiersMatchWrappedErrors(t *testing.T) {
	base := ConflictError{Resource: "slot"}
	wrapped := fmt.Errorf("create booking: %w", base)

	assert.True(t, IsConflict(wrapped))
	assert.False(t, IsConflict(errors.New("plain")))
	assert.False(t, IsValidation(wrapped))
}

func TestInternalErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := InternalError{Msg: "failed to create booking", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to create booking", err.Error())
}
