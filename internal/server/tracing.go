package server

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/internal/config"
)

// NewTracerProvider builds the provider selected by cfg.Trace. With tracing
// disabled it returns the global otel provider and a no-op shutdown.
// Otherwise spans are batched to the stdout exporter writing to w; the
// returned shutdown flushes them and must be called before exit.
func NewTracerProvider(cfg *config.Config, w io.Writer) (trace.TracerProvider, func(context.Context) error, error) {
	if !cfg.Trace.Enabled {
		return otel.GetTracerProvider(), func(context.Context) error { return nil }, nil
	}

	switch cfg.Trace.Exporter {
	case "stdout":
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, nil, fmt.Errorf("server: stdout trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
		return tp, tp.Shutdown, nil
	default:
		return nil, nil, fmt.Errorf("%w: trace.exporter %q", config.ErrInvalidConfig, cfg.Trace.Exporter)
	}
}
