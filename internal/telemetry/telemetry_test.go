package telemetry

import (
	"context"
	"testing"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("HONEYCOMB_ROOMPLANNER_API_KEY", "")
	t.Setenv("HONEYCOMB_ROOMPLANNER_DATASET", "")

	cfg := ConfigFromEnv()
	if cfg.Endpoint != defaultEndpoint {
		t.Errorf("Expected endpoint %q, got %q", defaultEndpoint, cfg.Endpoint)
	}
	if cfg.Dataset != serviceName {
		t.Errorf("Expected dataset %q, got %q", serviceName, cfg.Dataset)
	}
	if cfg.Headers() != nil {
		t.Errorf("Expected no headers without an API key, got %v", cfg.Headers())
	}
}

func TestConfigHeaders(t *testing.T) {
	t.Setenv("HONEYCOMB_ROOMPLANNER_API_KEY", "secret")
	t.Setenv("HONEYCOMB_ROOMPLANNER_DATASET", "plans")

	headers := ConfigFromEnv().Headers()
	if headers["x-honeycomb-team"] != "secret" || headers["x-honeycomb-dataset"] != "plans" {
		t.Errorf("Unexpected headers %v", headers)
	}
}

func TestNoopTracerDoesNotRecord(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()

	if span.IsRecording() {
		t.Error("Expected the no-op span not to record")
	}
}
