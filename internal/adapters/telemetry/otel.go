// Package telemetry records directory checks as OpenTelemetry spans and fans them out to
// other recorders.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
)

// InstrumentationName is the OpenTelemetry instrumentation scope used by the tracker.
const InstrumentationName = "go.trai.ch/stale"

var _ ports.Telemetry = (*Tracer)(nil)

// Tracer implements ports.Telemetry using OpenTelemetry spans.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer from the given provider.
func NewTracer(tp trace.TracerProvider) *Tracer {
	return &Tracer{tracer: tp.Tracer(InstrumentationName)}
}

// Record starts a span named name.
func (t *Tracer) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &Span{span: span}
}

// Close does nothing; the provider is owned by the caller.
func (t *Tracer) Close() error {
	return nil
}

// Span implements ports.Vertex on an OpenTelemetry span.
type Span struct {
	span trace.Span
}

// Log adds a log event to the span.
func (s *Span) Log(level domain.LogLevel, msg string) {
	s.span.AddEvent("log", trace.WithAttributes(
		attribute.String("level", level.String()),
		attribute.String("message", msg),
	))
}

// Complete ends the span, recording err if it is non-nil.
func (s *Span) Complete(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}

// Cached ends the span, marking that nothing changed.
func (s *Span) Cached() {
	s.span.SetAttributes(attribute.Bool("cached", true))
	s.span.SetStatus(codes.Ok, "")
	s.span.End()
}
