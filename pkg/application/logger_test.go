package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordedEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

type recordingLogger struct {
	entries []recordedEntry
}

func (l *recordingLogger) record(level, msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, recordedEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Info(_ context.Context, msg string, fields map[string]interface{}) {
	l.record("info", msg, fields)
}

func (l *recordingLogger) Debug(_ context.Context, msg string, fields map[string]interface{}) {
	l.record("debug", msg, fields)
}

func (l *recordingLogger) Error(_ context.Context, msg string, fields map[string]interface{}) {
	l.record("error", msg, fields)
}

func (l *recordingLogger) Trace(_ context.Context, msg string, fields map[string]interface{}) {
	l.record("trace", msg, fields)
}

func TestLogErrorAddsErrorWithoutMutatingFields(t *testing.T) {
	logger := &recordingLogger{}
	fields := map[string]interface{}{"class_type": "Economy"}
	boom := errors.New("boom")

	LogError(context.Background(), logger, "publish failed", boom, fields)

	assert.Len(t, logger.entries, 1)
	assert.Equal(t, "error", logger.entries[0].level)
	assert.Equal(t, boom, logger.entries[0].fields["error"])
	assert.Equal(t, "Economy", logger.entries[0].fields["class_type"])
	assert.NotContains(t, fields, "error")
}

func TestLogErrorWithoutError(t *testing.T) {
	logger := &recordingLogger{}

	LogError(context.Background(), logger, "no error", nil, nil)

	assert.NotContains(t, logger.entries[0].fields, "error")
}

func TestLogHelpersUseMatchingLevel(t *testing.T) {
	logger := &recordingLogger{}
	ctx := context.Background()

	LogInfo(ctx, logger, "i", nil)
	LogDebug(ctx, logger, "d", nil)
	LogTrace(ctx, logger, "t", nil)

	levels := []string{}
	for _, e := range logger.entries {
		levels = append(levels, e.level)
	}
	assert.Equal(t, []string{"info", "debug", "trace"}, levels)
}

func TestRequestIDRoundTrip(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = RequestIDFromContext(WithRequestID(context.Background(), ""))
	assert.False(t, ok)

	id, ok := RequestIDFromContext(WithRequestID(context.Background(), "req-1"))
	assert.True(t, ok)
	assert.Equal(t, "req-1", id)
}

func TestUnmarshalPayload(t *testing.T) {
	type payload struct {
		ClassType string `json:"classType"`
	}

	data, err := MarshalPayload(payload{ClassType: "Business"})
	assert.NoError(t, err)

	got, err := UnmarshalPayload[payload](data)
	assert.NoError(t, err)
	assert.Equal(t, "Business", got.ClassType)

	_, err = UnmarshalPayload[payload]([]byte("{"))
	assert.Error(t, err)
}
