// Package context carries request-scoped values used for log correlation.
package context

import (
	"context"

	"github.com/google/uuid"
)

// TraceContext identifies the caller that triggered a report pass.
type TraceContext struct {
	TraceID   string
	RequestID string
}

type traceContextKey struct{}

type passIDKey struct{}

// WithTrace adds TraceContext to context.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, trace)
}

// GetTrace returns TraceContext from context.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceContextKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}

// GetTraceID returns trace ID from context or generates new one.
func GetTraceID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.TraceID
	}
	return uuid.New().String()
}

// NewTraceContext creates a new TraceContext with generated IDs.
func NewTraceContext() *TraceContext {
	return &TraceContext{
		TraceID:   uuid.New().String(),
		RequestID: uuid.New().String(),
	}
}

// WithPassID tags the context with the identifier of the running report pass.
func WithPassID(ctx context.Context, passID string) context.Context {
	return context.WithValue(ctx, passIDKey{}, passID)
}

// GetPassID returns the report pass identifier or empty string.
func GetPassID(ctx context.Context) string {
	if v, ok := ctx.Value(passIDKey{}).(string); ok {
		return v
	}
	return ""
}
