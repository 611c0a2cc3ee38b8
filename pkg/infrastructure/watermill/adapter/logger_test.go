package adapter

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	zapAdapter "github.com/mateusmacedo/go-airline/pkg/infrastructure/zaplogger/adapter"
)

func TestWithMergesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWatermillLoggerAdapter(zapAdapter.NewFromZap(zap.New(core)))

	scoped := logger.With(watermill.LogFields{"topic": "TicketBooked"})
	scoped.Info("message published", watermill.LogFields{"uuid": "abc"})
	logger.Info("unscoped", nil)

	published := logs.FilterMessage("message published").All()
	require.Len(t, published, 1)
	assert.Equal(t, "TicketBooked", published[0].ContextMap()["topic"])
	assert.Equal(t, "abc", published[0].ContextMap()["uuid"])

	unscoped := logs.FilterMessage("unscoped").All()
	require.Len(t, unscoped, 1)
	assert.NotContains(t, unscoped[0].ContextMap(), "topic")
}

func TestErrorToleratesNilError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWatermillLoggerAdapter(zapAdapter.NewFromZap(zap.New(core)))

	assert.NotPanics(t, func() { logger.Error("without cause", nil, nil) })
	logger.Error("with cause", errors.New("broker down"), nil)

	assert.NotContains(t, logs.FilterMessage("without cause").All()[0].ContextMap(), "error")
	assert.Equal(t, "broker down", logs.FilterMessage("with cause").All()[0].ContextMap()["error"])
}
