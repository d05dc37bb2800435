package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appctx "boukir/internal/core/context"
)

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.True(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestFromContext_AddsTraceAndPass(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := WithLogger(context.Background(), Wrap(zap.New(core)))
	ctx = appctx.WithTrace(ctx, &appctx.TraceContext{TraceID: "t-1", RequestID: "r-1"})
	ctx = appctx.WithPassID(ctx, "p-1")

	Warn(ctx, "unknown kind", "kind", "Foo")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "t-1", fields["trace_id"])
	assert.Equal(t, "r-1", fields["request_id"])
	assert.Equal(t, "p-1", fields["pass_id"])
	assert.Equal(t, "Foo", fields["kind"])
}

func TestWithComponent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Wrap(zap.New(core)).WithComponent("reports").Infow("built")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "reports", logs.All()[0].ContextMap()["component"])
}
