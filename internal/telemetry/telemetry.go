// Package telemetry provides OpenTelemetry tracing for plan edits, exported
// over OTLP HTTP (Honeycomb by default).
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "roomplanner"
	serviceVersion = "0.1.0"

	defaultEndpoint = "https://api.honeycomb.io"
)

// Config selects where spans are exported.
type Config struct {
	Endpoint string
	APIKey   string
	Dataset  string
}

// ConfigFromEnv reads HONEYCOMB_ROOMPLANNER_API_KEY and
// HONEYCOMB_ROOMPLANNER_DATASET. OTEL_EXPORTER_OTLP_ENDPOINT overrides the
// Honeycomb endpoint.
func ConfigFromEnv() Config {
	cfg := Config{
		Endpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		APIKey:   os.Getenv("HONEYCOMB_ROOMPLANNER_API_KEY"),
		Dataset:  os.Getenv("HONEYCOMB_ROOMPLANNER_DATASET"),
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Dataset == "" {
		cfg.Dataset = serviceName
	}
	return cfg
}

// Headers returns the Honeycomb headers for the config, or nil without an
// API key.
func (c Config) Headers() map[string]string {
	if c.APIKey == "" {
		return nil
	}
	return map[string]string{
		"x-honeycomb-team":    c.APIKey,
		"x-honeycomb-dataset": c.Dataset,
	}
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter and registers it
// as the global tracer provider.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(cfg.Endpoint)}
	if headers := cfg.Headers(); headers != nil {
		opts = append(opts, otlptracehttp.WithHeaders(headers))
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	// Built without resource.Default() to avoid schema URL conflicts.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for one component of the planner.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
