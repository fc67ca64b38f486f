package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"stackview/internal/route"
	"stackview/internal/stack"
)

func newRecordedObserver(t *testing.T) (*Observer, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	p := NewProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	return NewObserver(context.Background(), p.Tracer()), rec
}

func attr(s sdktrace.ReadOnlySpan, key attribute.Key) string {
	for _, kv := range s.Attributes() {
		if kv.Key == key {
			return kv.Value.AsString()
		}
	}
	return ""
}

func TestObserver_CloseCycleIsOneSpan(t *testing.T) {
	o, rec := newRecordedObserver(t)

	o.BeginClose("B")
	o.BeginClose("B")
	assert.Equal(t, 1, o.Open())
	o.ConfirmClose("B", nil)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "stack.close", spans[0].Name())
	assert.Equal(t, "B", attr(spans[0], AttrRouteKey))
	assert.Equal(t, OutcomeConfirmed, attr(spans[0], AttrOutcome))
	assert.Zero(t, o.Open())
}

func TestObserver_ConfirmWithoutBeginIsPopSpan(t *testing.T) {
	o, rec := newRecordedObserver(t)

	o.ConfirmClose("C", nil)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "stack.pop", spans[0].Name())
}

func TestObserver_DispatchErrorMarksSpan(t *testing.T) {
	o, rec := newRecordedObserver(t)

	o.BeginClose("B")
	o.ConfirmClose("B", errors.New("boom"))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, OutcomeFailed, attr(spans[0], AttrOutcome))
}

func TestObserver_ReconciledEndsOpenSpans(t *testing.T) {
	o, rec := newRecordedObserver(t)

	o.BeginClose("A")
	o.Reconciled([]string{"A", "never-opened"})

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, OutcomeReconciled, attr(spans[0], AttrOutcome))
}

func TestObserver_WithMachine(t *testing.T) {
	o, rec := newRecordedObserver(t)
	reg := route.NewRegistry([]string{"Home", "Details"}, nil)
	require.NoError(t, reg.Dispatch(route.PushAction{Name: "Home", Key: "home"}))
	require.NoError(t, reg.Dispatch(route.PushAction{Name: "Details", Key: "details"}))

	m := stack.New(reg, stack.WithObserver(o))
	top, _ := reg.State().Top()
	require.NoError(t, m.BeginClose(top))
	require.NoError(t, m.ConfirmClose(top))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "details", attr(spans[0], AttrRouteKey))
	assert.Equal(t, []string{"home"}, reg.State().Keys())
}

func TestNewOTLPProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	p, err := NewOTLPProvider(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}
