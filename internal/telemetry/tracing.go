// Package telemetry configures OpenTelemetry tracing for the portal.
//
// Custom span attributes use the `portal.` prefix.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName  = "github.com/skvindia/app-portal"
	serviceName = "app-portal"
)

// Tracer returns the package-level tracer.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// InitTraceProvider installs a trace provider exporting over OTLP/gRPC.
// With an empty endpoint tracing stays disabled and the global noop
// provider is kept. The returned function flushes and stops the provider.
func InitTraceProvider(ctx context.Context, endpoint, version string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithHost(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// StartLoginSpan creates the span covering a credential check.
func StartLoginSpan(ctx context.Context, email string) (context.Context, trace.Span) {
	return Tracer().Start(ctx, "auth.login",
		trace.WithAttributes(attribute.String("portal.email", email)),
	)
}

// StartPermissionSpan creates the span covering a permission lookup.
func StartPermissionSpan(ctx context.Context) (context.Context, trace.Span) {
	return Tracer().Start(ctx, "permissions.list")
}

// EndSpan records the outcome on span and ends it.
func EndSpan(span trace.Span, outcome string, err error) {
	span.SetAttributes(attribute.String("portal.outcome", outcome))
	if err != nil {
		span.SetStatus(codes.Error, outcome)
	}
	span.End()
}
