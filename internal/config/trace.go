// internal/config/trace.go
package config

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewTracerProvider writes every finished span to w as JSON. Spans are
// exported synchronously so a short CLI run loses nothing on exit.
func NewTracerProvider(w io.Writer) (*sdktrace.TracerProvider, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("trace exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp)), nil
}

// Tracing installs the global tracer provider when Trace is set. The returned
// shutdown flushes it and is a no-op when tracing is off.
func (s Settings) Tracing(w io.Writer) (func(context.Context) error, error) {
	if !s.Trace {
		return func(context.Context) error { return nil }, nil
	}
	tp, err := NewTracerProvider(w)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
