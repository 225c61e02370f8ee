// Package base
package base

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewLoggerWithWriter(buffer)
	logger.Init(false)

	logger.Debug("hidden")
	logger.Info("flight saved", "id", "fly-1")
	logger.WarnF("slow query %dms", 120)
	logger.FatalF("cannot bind %s", "0.0.0.0:4001")

	output := buffer.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "level=INFO")
	assert.Contains(t, output, "id=fly-1")
	assert.Contains(t, output, "slow query 120ms")
	assert.Contains(t, output, "level=FATAL")
	assert.Contains(t, output, "app=flylog")
}

func TestLoggerDebugMode(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewLoggerWithWriter(buffer)
	logger.Init(true)

	logger.DebugF("loader wait %s", "2ms")
	assert.Contains(t, buffer.String(), "loader wait 2ms")

	slog.Info("from default logger")
	assert.Contains(t, buffer.String(), "from default logger")
}

func TestLoggerConcurrentUseWithoutInit(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewLoggerWithWriter(buffer)

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				logger.InfoF("worker %d request %d", worker, i)
			}
		}(worker)
	}
	wg.Wait()

	assert.Equal(t, 400, strings.Count(buffer.String(), "\n"))
	assert.NotContains(t, buffer.String(), "level=DEBUG")
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestLoggerShutdownClosesWriter(t *testing.T) {
	writer := &closeRecorder{}
	logger := NewLoggerWithWriter(writer)
	logger.Init(false)
	require.NoError(t, logger.ShutdownCallback().Invoke(context.Background()))
	assert.True(t, writer.closed)

	require.NoError(t, NewLogger().ShutdownCallback().Invoke(context.Background()))
}
