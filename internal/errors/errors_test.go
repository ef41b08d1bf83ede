package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsInnerCode(t *testing.T) {
	inner := IOError("launches.csv", os.ErrNotExist)
	wrapped := Wrap(inner, "startup failed")

	assert.Equal(t, CodeIOError, GetCode(wrapped))
	assert.True(t, stderrors.Is(wrapped, os.ErrNotExist))
	assert.Equal(t, "startup failed: cannot read launch data launches.csv: file does not exist", wrapped.Error())
}

func TestWrap_PlainErrorIsInternal(t *testing.T) {
	wrapped := Wrapf(fmt.Errorf("boom"), "step %d", 3)
	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Equal(t, "step 3: boom", wrapped.Error())

	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, WithCode(CodeIOError, nil))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
	assert.Equal(t, CodeDatabaseError, GetCode(fmt.Errorf("outer: %w", DatabaseError("connect", nil))))
	assert.Equal(t, CodeInvalidInput, GetCode(WithCode(CodeInvalidInput, fmt.Errorf("bad site"))))
	assert.True(t, IsAppError(InternalError("x")))
	assert.False(t, IsAppError(fmt.Errorf("x")))
}

func TestSchemaViolation(t *testing.T) {
	violation := SchemaViolation(fmt.Errorf("row 3: class must be 0 or 1"))
	assert.Equal(t, CodeSchemaError, GetCode(violation))
	assert.Contains(t, violation.Error(), "row 3")
}
