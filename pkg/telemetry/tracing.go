package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName — имя трейсера для спанов приложения.
const instrumentationName = "github.com/Gunvolt24/foodbot"

// Options — настройки экспорта трейсов.
type Options struct {
	ServiceName string
	Endpoint    string  // host:port OTLP/HTTP коллектора
	SampleRatio float64 // доля сэмплируемых трейсов, [0..1]
}

// SetupTracing — глобальный TracerProvider с OTLP/HTTP экспортом и пропагаторами W3C.
// Возвращает Shutdown провайдера.
func SetupTracing(ctx context.Context, opts Options) (func(context.Context) error, error) {
	if opts.Endpoint == "" {
		opts.Endpoint = "localhost:4318"
	}
	ratio := min(max(opts.SampleRatio, 0), 1)

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(opts.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(opts.ServiceName),
		)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return provider.Shutdown, nil
}

// StartSpan — спан от глобального провайдера (no-op, пока трейсинг не включён).
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan — закрывает спан, помечая ошибку (если есть).
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
