package command

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationError(t *testing.T) {
	err := Fail("cat", "/missing", os.ErrNotExist)

	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "/missing")

	var opErr *OperationError
	assert.True(t, errors.As(err, &opErr))
	assert.Equal(t, "cat", opErr.Op)
}

func TestInvalidInputError(t *testing.T) {
	err := Invalid("cp", "missing arguments")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrOperationFailed)
	assert.Equal(t, "invalid input for cp: missing arguments", err.Error())
}
