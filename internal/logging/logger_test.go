package logging

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	logger, err := New("debug", false)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = New("", true)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", false)
	assert.ErrorContains(t, err, `parse log level "loud"`)
}

func TestWithSession(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger, session := WithSession(zap.New(core))

	_, err := uuid.Parse(session)
	require.NoError(t, err)

	logger.Info("started")
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, session, entries[0].ContextMap()["session"])
}
