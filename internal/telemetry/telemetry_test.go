package telemetry

import (
	"context"
	"os"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestConfigureEnvSetsHoneycombHeaders(t *testing.T) {
	t.Setenv(APIKeyEnv, "secret")
	t.Setenv(DatasetEnv, "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if !Enabled() {
		t.Fatal("Enabled() = false with an API key set")
	}

	ConfigureEnv()

	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "https://api.honeycomb.io" {
		t.Errorf("endpoint = %q", got)
	}
	want := "x-honeycomb-team=secret,x-honeycomb-dataset=dungeonboard"
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
}

func TestEnabledWithoutKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	if Enabled() {
		t.Error("Enabled() = true without an API key")
	}
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	_, span := Tracer("world").Start(context.Background(), "board.paint")
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if got := spans[0].InstrumentationScope().Name; got != "dungeonboard/world" {
		t.Errorf("tracer name = %q, want %q", got, "dungeonboard/world")
	}
}
