package tracing

import (
	"context"
	"testing"

	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

func TestNormalizeJaegerCollector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "  ", want: defaultCollectorEndpoint},
		{name: "host only", input: "jaeger", want: "http://jaeger/api/traces"},
		{name: "host and port", input: "jaeger:14268", want: "http://jaeger:14268/api/traces"},
		{name: "trailing slash", input: "http://jaeger:14268/", want: "http://jaeger:14268/api/traces"},
		{name: "path prefix", input: "https://gw.local/otel", want: "https://gw.local/otel/api/traces"},
		{name: "full endpoint", input: "https://collector.local/api/traces", want: "https://collector.local/api/traces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeJaegerCollector(tt.input)
			if err != nil {
				t.Fatalf("normalizeJaegerCollector(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("normalizeJaegerCollector(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeJaegerCollector_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"http://[::1", "http:///api/traces"} {
		if got, err := normalizeJaegerCollector(input); err == nil {
			t.Fatalf("normalizeJaegerCollector(%q) = %q, expected error", input, got)
		}
	}
}

func TestInitTracer_InvalidCollector(t *testing.T) {
	if _, err := InitTracer(Options{ServiceName: "bet-tracker", Collector: "http://[::1"}); err == nil {
		t.Fatal("expected error for malformed collector")
	}
}

func TestNewResource(t *testing.T) {
	t.Parallel()

	res := newResource(Options{ServiceName: "bet-tracker", Environment: "prod"})
	if v, ok := res.Set().Value(semconv.ServiceNameKey); !ok || v.AsString() != "bet-tracker" {
		t.Fatalf("unexpected service name: %v", v)
	}
	if v, ok := res.Set().Value(semconv.DeploymentEnvironmentKey); !ok || v.AsString() != "prod" {
		t.Fatalf("unexpected environment: %v", v)
	}

	bare := newResource(Options{ServiceName: "bet-tracker"})
	if _, ok := bare.Set().Value(semconv.DeploymentEnvironmentKey); ok {
		t.Fatal("environment must be omitted when empty")
	}
}

func TestInitTracer_EmptyCollectorIsNoop(t *testing.T) {
	shutdown, err := InitTracer(Options{ServiceName: "bet-tracker"})
	if err != nil {
		t.Fatalf("InitTracer returned error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown returned error: %v", err)
	}
}
