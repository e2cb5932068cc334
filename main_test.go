package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type closer struct{ err error }

func (c closer) Close() error { return c.err }

func TestCloseInto(t *testing.T) {
	errFlush := errors.New("flush failed")

	var err error
	closeInto(&err, closer{errFlush}, "run.sqlite3")
	assert.ErrorIs(t, err, errFlush)
	assert.Contains(t, err.Error(), "closing run.sqlite3")

	first := errors.New("run failed")
	err = first
	closeInto(&err, closer{errFlush}, "run.sqlite3")
	assert.Same(t, first, err)

	err = nil
	closeInto(&err, closer{}, "run.sqlite3")
	assert.NoError(t, err)
}
