package base

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

type recordingCallback struct {
	name  string
	order *[]string
	err   error
}

func (r *recordingCallback) Invoke(_ context.Context) error {
	*r.order = append(*r.order, r.name)
	return r.err
}

func newTestCleaner() *Cleaner {
	logger := NewLoggerWithWriter(io.Discard)
	logger.Init(false)
	return NewCleaner(logger)
}

func TestCleanerRunsCallbacksInReverseOrder(t *testing.T) {
	cleaner := newTestCleaner()
	var order []string
	cleaner.Add(&recordingCallback{name: "database", order: &order})
	cleaner.Add(&recordingCallback{name: "http", order: &order})

	require.NoError(t, cleaner.Clean())
	assert.Equal(t, []string{"http", "database"}, order)
}

func TestCleanerJoinsErrorsAndRunsOnce(t *testing.T) {
	cleaner := newTestCleaner()
	var order []string
	failure := errors.New("disconnect failed")
	cleaner.Add(&recordingCallback{name: "database", order: &order, err: failure})
	cleaner.Add(&recordingCallback{name: "http", order: &order})

	err := cleaner.Clean()
	require.Error(t, err)
	assert.ErrorIs(t, err, failure)

	assert.ErrorIs(t, cleaner.Clean(), failure)
	assert.Equal(t, []string{"http", "database"}, order)
}

func TestCleanerIgnoresAddAfterClean(t *testing.T) {
	cleaner := newTestCleaner()
	var order []string
	require.NoError(t, cleaner.Clean())
	cleaner.Add(&recordingCallback{name: "late", order: &order})
	assert.Empty(t, cleaner.callbacks)
}
