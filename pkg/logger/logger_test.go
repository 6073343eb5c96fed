package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitize(t *testing.T) {
	in := []interface{}{"session_id", "abc", "api_key", "k-123", "jwt_token", "xyz", "dangling"}
	out := sanitize(in)

	assert.Equal(t, []interface{}{"session_id", "abc", "api_key", "[REDACTED]", "jwt_token", "[REDACTED]", "dangling"}, out)
	assert.Equal(t, "k-123", in[3])
}

func TestLogger_WritesFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "orchestrator").Info("plan generated", "plan_id", "p1", "password", "hunter2")
	l.Debug("dropped")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "plan generated", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "orchestrator", fields["component"])
	assert.Equal(t, "p1", fields["plan_id"])
	assert.Equal(t, "[REDACTED]", fields["password"])
}

func TestNew(t *testing.T) {
	l, err := New("json", "warn")
	require.NoError(t, err)
	assert.NotNil(t, l.SugaredLogger)

	_, err = New("console", "loud")
	assert.Error(t, err)
}
