package berkeleydb

import (
	"io/fs"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// TestErrno tests mapping of engine status codes.
func TestErrno(t *testing.T) {
	assert.NoError(t, _errno(0))

	err := _errno(int(ErrNotFound))
	assert.Equal(t, ErrNotFound, err)
	assert.True(t, IsEngineError(err))
	assert.NotEmpty(t, err.Error())

	err = _errno(int(ErrDeadlock))
	assert.ErrorIs(t, err, ErrDeadlock)
	assert.NotErrorIs(t, err, ErrNotFound)
}

// TestErrnoSystem tests that positive codes become system errors.
func TestErrnoSystem(t *testing.T) {
	// ENOENT
	err := _errno(2)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.False(t, IsEngineError(err))
}

// TestErrnoWrapped tests that wrapped engine codes stay detectable.
func TestErrnoWrapped(t *testing.T) {
	err := errors.Wrapf(_errno(int(ErrKeyExist)), "put %q", "k")
	assert.ErrorIs(t, err, ErrKeyExist)
	assert.True(t, IsEngineError(err))
	assert.Equal(t, ErrKeyExist, errors.Cause(err))
	assert.Equal(t, int(ErrKeyExist), ErrKeyExist.Code())
}

// TestErrClosed tests that ErrClosed is not taken for an engine code.
func TestErrClosed(t *testing.T) {
	assert.False(t, IsEngineError(ErrClosed))
	assert.False(t, IsEngineError(nil))
}

// TestDBTypeString tests the names of the access methods.
func TestDBTypeString(t *testing.T) {
	assert.Equal(t, "btree", DbBtree.String())
	assert.Equal(t, "hash", DbHash.String())
	assert.Equal(t, "recno", DbRecno.String())
	assert.Equal(t, "queue", DbQueue.String())
	assert.Equal(t, "unknown", DbUnknown.String())
	assert.Equal(t, "invalid", DBType(99).String())
}
