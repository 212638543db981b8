package telemetry

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// withRecorder — глобальный провайдер с записью спанов в память на время теста.
func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return rec
}

func TestStartEndSpan_OK(t *testing.T) {
	rec := withRecorder(t)

	_, span := StartSpan(context.Background(), "intent.add_to_order", attribute.String("session.id", "s-1"))
	EndSpan(span, nil)

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("want 1 span, got %d", len(ended))
	}
	if ended[0].Name() != "intent.add_to_order" {
		t.Fatalf("name=%q", ended[0].Name())
	}
	if ended[0].Status().Code == codes.Error {
		t.Fatal("successful span marked as error")
	}
	var found bool
	for _, kv := range ended[0].Attributes() {
		if kv.Key == "session.id" && kv.Value.AsString() == "s-1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("session.id attribute missing: %v", ended[0].Attributes())
	}
}

func TestEndSpan_RecordsError(t *testing.T) {
	rec := withRecorder(t)

	_, span := StartSpan(context.Background(), "order.save")
	EndSpan(span, errors.New("db down"))

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("want 1 span, got %d", len(ended))
	}
	if st := ended[0].Status(); st.Code != codes.Error || st.Description != "db down" {
		t.Fatalf("status=%+v", st)
	}
	if len(ended[0].Events()) == 0 {
		t.Fatal("error event not recorded")
	}
}

func TestStartSpan_ChildOfParent(t *testing.T) {
	rec := withRecorder(t)

	ctx, parent := StartSpan(context.Background(), "parent")
	_, child := StartSpan(ctx, "child")
	EndSpan(child, nil)
	EndSpan(parent, nil)

	ended := rec.Ended()
	if len(ended) != 2 {
		t.Fatalf("want 2 spans, got %d", len(ended))
	}
	if ended[0].Parent().SpanID() != ended[1].SpanContext().SpanID() {
		t.Fatal("child span must reference parent")
	}
}
