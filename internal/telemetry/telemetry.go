// Package telemetry exports editor activity spans (command invocations,
// layout save/restore) over OTLP. It is entirely optional: when
// OTEL_EXPORTER_OTLP_ENDPOINT is unset the Tracer is nil and every method
// no-ops, so callers never branch on whether telemetry is configured.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Tracer records editor activity as OTLP spans. A nil *Tracer is valid and
// inert.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates a Tracer if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled).
func New(ctx context.Context) (*Tracer, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "editkit"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer("editkit/editor"),
	}, nil
}

// ActionInvoked implements action.Observer: one span per command
// invocation, tagged with the command key and outcome.
func (t *Tracer) ActionInvoked(key string, ok bool) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(context.Background(), "editor.action",
		oteltrace.WithAttributes(
			attribute.String("action.key", key),
			attribute.Bool("action.ok", ok),
		))
	span.End()
}

// LayoutEvent records a layout save or restore for the named editor.
func (t *Tracer) LayoutEvent(editor, what string) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(context.Background(), "editor.layout",
		oteltrace.WithAttributes(
			attribute.String("editor.name", editor),
			attribute.String("layout.op", what),
		))
	span.End()
}

// Shutdown flushes pending spans. Safe on a nil Tracer.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
