// Package trace records stack close cycles as OpenTelemetry spans.
//
// Each route key that begins closing gets a "stack.close" span which ends when
// the close is confirmed or when the key is dropped by reconciliation. A
// confirm without a prior begin is recorded as a zero-length "stack.pop" span.
package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"stackview/internal/stack"
)

// Attribute keys.
const (
	AttrRouteKey = attribute.Key("stackview.route.key")
	AttrOutcome  = attribute.Key("stackview.outcome")
)

// Outcomes recorded on close spans.
const (
	OutcomeConfirmed  = "confirmed"
	OutcomeReconciled = "reconciled"
	OutcomeFailed     = "dispatch_failed"
)

var _ stack.Observer = (*Observer)(nil)

// Observer implements stack.Observer. Like the machine it observes, it is
// driven from a single goroutine.
type Observer struct {
	ctx    context.Context
	tracer oteltrace.Tracer
	open   map[string]oteltrace.Span
}

// NewObserver creates an observer that starts spans under ctx.
func NewObserver(ctx context.Context, tracer oteltrace.Tracer) *Observer {
	return &Observer{
		ctx:    ctx,
		tracer: tracer,
		open:   make(map[string]oteltrace.Span),
	}
}

// BeginClose starts the close span for key.
func (o *Observer) BeginClose(key string) {
	if _, ok := o.open[key]; ok {
		return
	}
	_, span := o.tracer.Start(o.ctx, "stack.close",
		oteltrace.WithAttributes(AttrRouteKey.String(key)))
	span.AddEvent("begin_close")
	o.open[key] = span
}

// ConfirmClose ends the close span for key.
func (o *Observer) ConfirmClose(key string, dispatchErr error) {
	span, ok := o.open[key]
	if !ok {
		_, span = o.tracer.Start(o.ctx, "stack.pop",
			oteltrace.WithAttributes(AttrRouteKey.String(key)))
	}
	delete(o.open, key)

	if dispatchErr != nil {
		span.RecordError(dispatchErr)
		span.SetStatus(codes.Error, "pop dispatch failed")
		span.SetAttributes(AttrOutcome.String(OutcomeFailed))
	} else {
		span.SetAttributes(AttrOutcome.String(OutcomeConfirmed))
	}
	span.End()
}

// Reconciled ends any open spans for keys that left the stack out of band.
func (o *Observer) Reconciled(dropped []string) {
	for _, key := range dropped {
		span, ok := o.open[key]
		if !ok {
			continue
		}
		delete(o.open, key)
		span.SetAttributes(AttrOutcome.String(OutcomeReconciled))
		span.End()
	}
}

// Open returns the number of close spans still in flight.
func (o *Observer) Open() int {
	return len(o.open)
}
