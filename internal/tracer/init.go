package tracer

import (
	"context"
	"log"

	"voicemart-be/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

const serviceName = "voicemart-backend"

// InitTracer wires the global OpenTelemetry provider to an OTLP HTTP
// exporter. Returns a shutdown function for application exit. When tracing
// is disabled (the default) both the provider and the shutdown are no-ops.
func InitTracer(cfg config.OtelConfig) func(context.Context) error {
	noop := func(context.Context) error { return nil }

	if !cfg.Enabled {
		log.Println("Tracing disabled (set OTEL_ENABLED=true to enable)")
		return noop
	}

	// Plain HTTP; local collectors don't terminate TLS.
	exporter, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithEndpoint(cfg.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		log.Printf("Warning: failed to create OTLP exporter: %v (tracing disabled)", err)
		return noop
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)
	otel.SetTracerProvider(tp)
	log.Printf("Tracer initialized (endpoint: %s)", cfg.Endpoint)

	return tp.Shutdown
}
