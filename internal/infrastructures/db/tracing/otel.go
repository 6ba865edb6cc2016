package tracing

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

const (
	defaultCollectorEndpoint = "http://localhost:14268/api/traces"
	collectorPath            = "/api/traces"
)

// ShutdownFunc flushes and stops the installed tracer provider.
type ShutdownFunc func(ctx context.Context) error

// Options describes the process reporting spans. Collector may be a bare
// host, host:port or a full Jaeger HTTP endpoint.
type Options struct {
	ServiceName string
	Environment string
	Collector   string
}

// InitTracer installs a Jaeger-backed tracer provider. An empty collector
// leaves the global no-op provider in place.
func InitTracer(opts Options) (ShutdownFunc, error) {
	if strings.TrimSpace(opts.Collector) == "" {
		return func(context.Context) error { return nil }, nil
	}

	endpoint, err := normalizeJaegerCollector(opts.Collector)
	if err != nil {
		return nil, err
	}

	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))
	if err != nil {
		return nil, fmt.Errorf("create jaeger exporter: %w", err)
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exp),
		tracesdk.WithResource(newResource(opts)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func newResource(opts Options) *resource.Resource {
	attrs := []attribute.KeyValue{semconv.ServiceName(opts.ServiceName)}
	if opts.Environment != "" {
		attrs = append(attrs, semconv.DeploymentEnvironment(opts.Environment))
	}
	return resource.NewWithAttributes(semconv.SchemaURL, attrs...)
}

func normalizeJaegerCollector(value string) (string, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return defaultCollectorEndpoint, nil
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse jaeger collector: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("jaeger collector %q has no host", value)
	}
	if !strings.HasSuffix(u.Path, collectorPath) {
		u.Path = strings.TrimSuffix(u.Path, "/") + collectorPath
	}

	return u.String(), nil
}
