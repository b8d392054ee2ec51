package tracing

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/Kargones/bitbucket-client/pkg/logging"
)

// ВАЖНО: NewTracerProvider меняет глобальный otel provider, t.Parallel() не использовать.

func TestNewTracerProvider_Disabled(t *testing.T) {
	shutdown, err := NewTracerProvider(Config{}, logging.NewNopLogger())
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	for i := 0; i < 3; i++ {
		assert.NoError(t, shutdown(context.Background()))
	}
}

func TestNewTracerProvider_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true

	_, err := NewTracerProvider(cfg, logging.NewNopLogger())
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewTracerProvider_Enabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = "http://localhost:4318"
	cfg.Insecure = true
	cfg.Timeout = 100 * time.Millisecond

	shutdown, err := NewTracerProvider(cfg, logging.NewNopLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = shutdown(ctx)
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()
	valid.Enabled = true
	valid.Endpoint = "http://jaeger:4318"

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"валидная", func(*Config) {}, false},
		{"выключенная", func(c *Config) { c.Enabled = false; c.Endpoint = "" }, false},
		{"без endpoint", func(c *Config) { c.Endpoint = "" }, true},
		{"endpoint без host", func(c *Config) { c.Endpoint = "jaeger" }, true},
		{"без service name", func(c *Config) { c.ServiceName = "" }, true},
		{"нулевой таймаут", func(c *Config) { c.Timeout = 0 }, true},
		{"sampling больше 1", func(c *Config) { c.SamplingRate = 1.5 }, true},
		{"отрицательный sampling", func(c *Config) { c.SamplingRate = -0.1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateTraceID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{32}$`)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := GenerateTraceID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "trace ID не должен повторяться")
		seen[id] = true
	}
	assert.Regexp(t, pattern, fallbackTraceID())
}

func TestTraceIDFromContext(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))
	assert.Empty(t, TraceIDFromContext(nil)) //nolint:staticcheck // проверка nil context

	ctx := WithTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", TraceIDFromContext(ctx))
}

// TestTraceIDFromContext_Span проверяет fallback на trace ID активного span-а.
func TestTraceIDFromContext_Span(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	traceID := GenerateTraceID()
	ctx, span := tp.Tracer("test").Start(ContextWithOTelTraceID(context.Background(), traceID), "op")
	defer span.End()

	assert.Equal(t, traceID, TraceIDFromContext(ctx))
}

func TestContextWithOTelTraceID_Invalid(t *testing.T) {
	ctx := context.Background()
	got := ContextWithOTelTraceID(ctx, "not-hex")

	assert.False(t, trace.SpanContextFromContext(got).IsValid())
}
