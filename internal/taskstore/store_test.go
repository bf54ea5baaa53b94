package taskstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{ID: 7}

	assert.Equal(t, "task not found: 7", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	var nfe *NotFoundError
	assert.ErrorAs(t, error(err), &nfe)
	assert.Equal(t, 7, nfe.ID)
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("disk full")
	err := &PersistenceError{Op: "add", Err: cause}

	assert.Contains(t, err.Error(), "add")
	assert.Contains(t, err.Error(), "disk full")
	assert.ErrorIs(t, err, ErrPersistence)
}

// FileStore must satisfy the Store interface.
var _ Store = (*FileStore)(nil)
