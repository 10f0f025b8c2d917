package config

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNewTracerProvider(t *testing.T) {
	var buf bytes.Buffer
	tp, err := NewTracerProvider(&buf)
	require.NoError(t, err)

	_, span := tp.Tracer("config").Start(context.Background(), "astar.Run")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name":"astar.Run"`)
}

func TestTracingDisabled(t *testing.T) {
	before := otel.GetTracerProvider()
	shutdown, err := Defaults().Tracing(io.Discard)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestTracingInstallsGlobalProvider(t *testing.T) {
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })

	var buf bytes.Buffer
	s := Defaults()
	s.Trace = true
	shutdown, err := s.Tracing(&buf)
	require.NoError(t, err)

	_, span := otel.Tracer("config").Start(context.Background(), "installed")
	span.End()
	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name":"installed"`)
}
