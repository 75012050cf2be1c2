package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/telemetry"
)

const scope = "knowledge-graph"

// The Init tests mutate the global tracer and meter providers, so none of
// them run in parallel.

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://otel-collector:4318"},
		{name: "otlp over https", exporter: telemetry.ExporterOTLP, endpoint: "https://otel-collector:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "jaeger", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			tp, err := telemetry.InitTracer(ctx, scope, tt.exporter, tt.endpoint)
			if tt.wantErr {
				if err == nil {
					t.Fatal("InitTracer error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("InitTracer error = %v", err)
			}
			if tp == nil {
				t.Fatal("InitTracer returned a nil TracerProvider")
			}
			// Shutdown flushes spans; the OTLP flush fails without a live
			// collector, which is expected here.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })
		})
	}
}

func TestInitTracer_InstallsCompositePropagator(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, scope, telemetry.ExporterStdout, "")
	if err != nil {
		t.Fatalf("InitTracer error = %v", err)
	}
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	prop := otel.GetTextMapPropagator()
	if _, ok := prop.(propagation.TraceContext); ok {
		// A bare TraceContext propagator still carries trace headers.
		return
	}
	if len(prop.Fields()) == 0 {
		t.Error("global propagator advertises no fields, want traceparent and baggage")
	}
}

func TestInitMeter(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://otel-collector:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "statsd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			mp, err := telemetry.InitMeter(ctx, scope, tt.exporter, tt.endpoint)
			if tt.wantErr {
				if err == nil {
					t.Fatal("InitMeter error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("InitMeter error = %v", err)
			}
			if mp == nil {
				t.Fatal("InitMeter returned a nil MeterProvider")
			}
			t.Cleanup(func() { _ = mp.Shutdown(ctx) })
		})
	}
}

func TestNewMetrics_InstrumentsRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, scope)
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	metrics.ServerRequestDuration.Record(ctx, 0.042,
		metric.WithAttributes(telemetry.AttrHTTPMethod.String("POST")))
	metrics.ServerRequestTotal.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrHTTPStatus.Int(201)))
	metrics.ClientRequestDuration.Record(ctx, 0.007,
		metric.WithAttributes(telemetry.AttrPeerService.String("llm-gateway")))
	metrics.ClientRequestTotal.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrResult.String("success")))
	metrics.CypherQueryDuration.Record(ctx, 0.003,
		metric.WithAttributes(telemetry.AttrDBOperation.String("upsert")))
	metrics.CypherQueryTotal.Add(ctx, 2,
		metric.WithAttributes(telemetry.AttrNodeLabel.String("Person")))
	metrics.LLMTokensTotal.Add(ctx, 512,
		metric.WithAttributes(telemetry.AttrTokenKind.String("prompt")))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	collected := make(map[string]bool)
	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != scope {
			t.Errorf("instrumentation scope = %q, want %q", sm.Scope.Name, scope)
		}
		for _, m := range sm.Metrics {
			collected[m.Name] = true
		}
	}

	want := []string{
		"http.server.request.duration",
		"http.server.request.total",
		"http.client.request.duration",
		"http.client.request.total",
		"db.neo4j.query.duration",
		"db.neo4j.query.total",
		"llm.tokens.total",
	}
	for _, name := range want {
		if !collected[name] {
			t.Errorf("instrument %q missing from collected metrics", name)
		}
	}
}
