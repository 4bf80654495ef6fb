package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/stale/internal/adapters/telemetry"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTracer(t *testing.T) (*telemetry.Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return telemetry.NewTracer(tp), rec
}

func TestTracer_Complete(t *testing.T) {
	tracer, rec := newTracer(t)

	_, v := tracer.Record(t.Context(), "check /pkg/src")
	v.Log(domain.LogLevelInfo, "A.jl changed")
	v.Complete(nil)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "check /pkg/src", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	require.Len(t, spans[0].Events(), 1)
	assert.Contains(t, spans[0].Events()[0].Attributes, attribute.String("message", "A.jl changed"))
	assert.Contains(t, spans[0].Events()[0].Attributes, attribute.String("level", "INFO"))
	require.NoError(t, tracer.Close())
}

func TestTracer_CompleteWithError(t *testing.T) {
	tracer, rec := newTracer(t)

	_, v := tracer.Record(t.Context(), "check /pkg/src")
	v.Complete(errors.New("permission denied"))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "permission denied", spans[0].Status().Description)
}

func TestTracer_Cached(t *testing.T) {
	tracer, rec := newTracer(t)

	_, v := tracer.Record(t.Context(), "check /pkg/test")
	v.Cached()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Attributes(), attribute.Bool("cached", true))
}

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, v := tel.Record(t.Context(), "check")
	assert.Equal(t, t.Context(), ctx)
	v.Log(domain.LogLevelError, "ignored")
	v.Complete(errors.New("ignored"))
	v.Cached()
	require.NoError(t, tel.Close())
}

func TestFanout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mocks.NewMockTelemetry(ctrl)
	second := mocks.NewMockTelemetry(ctrl)
	v1 := mocks.NewMockVertex(ctrl)
	v2 := mocks.NewMockVertex(ctrl)
	closeErr := errors.New("flush failed")

	ctx := t.Context()
	first.EXPECT().Record(ctx, "check").Return(ctx, v1)
	second.EXPECT().Record(ctx, "check").Return(ctx, v2)
	v1.EXPECT().Log(domain.LogLevelInfo, "msg")
	v2.EXPECT().Log(domain.LogLevelInfo, "msg")
	v1.EXPECT().Complete(nil)
	v2.EXPECT().Complete(nil)
	v1.EXPECT().Cached()
	v2.EXPECT().Cached()
	first.EXPECT().Close().Return(nil)
	second.EXPECT().Close().Return(closeErr)

	fan := telemetry.NewFanout(first, second)
	_, v := fan.Record(ctx, "check")
	v.Log(domain.LogLevelInfo, "msg")
	v.Complete(nil)
	v.Cached()

	assert.ErrorIs(t, fan.Close(), closeErr)
}
