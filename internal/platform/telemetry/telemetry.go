// Package telemetry wires up OpenTelemetry tracing and metrics for the
// service. Both signals share the same exporter selection: "stdout" for
// local development, "otlp" for shipping to a collector over OTLP/HTTP.
//
// InitTracer and InitMeter install the global providers; NewMetrics builds
// the instrument set the HTTP layer, the Neo4j repository, and the LLM
// gateway client record into.
package telemetry

import (
	"context"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod   = attribute.Key("http.method")
	AttrHTTPStatus   = attribute.Key("http.status_code")
	AttrPeerService  = attribute.Key("peer.service")
	AttrResult       = attribute.Key("result")
	AttrDBOperation  = attribute.Key("db.operation")
	AttrNodeLabel    = attribute.Key("graph.node.label")
	AttrLLMOperation = attribute.Key("llm.operation")
	AttrTokenKind    = attribute.Key("llm.token.kind")
)

// Metrics is the instrument set shared across the service. Server
// instruments are recorded by middleware, client instruments by the
// outbound HTTP client, and the rest by the Neo4j and LLM adapters.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	CypherQueryDuration   metric.Float64Histogram
	CypherQueryTotal      metric.Int64Counter
	LLMTokensTotal        metric.Int64Counter
}

// InitTracer installs the global TracerProvider and the W3C trace context
// plus baggage propagators. Callers own the returned provider and must shut
// it down on exit.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter installs the global MeterProvider with a periodic reader over
// the selected exporter. Callers own the returned provider and must shut it
// down on exit.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics registers every instrument on a meter scoped to the given
// instrumentation scope name, typically the service name. Registration
// stops at the first instrument the SDK rejects.
func NewMetrics(mp *sdkmetric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)

	var err error
	seconds := func(name, desc string) metric.Float64Histogram {
		h, herr := meter.Float64Histogram(name,
			metric.WithDescription(desc), metric.WithUnit("s"))
		if herr != nil && err == nil {
			err = fmt.Errorf("creating %s: %w", name, herr)
		}
		return h
	}
	count := func(name, desc, unit string) metric.Int64Counter {
		c, cerr := meter.Int64Counter(name,
			metric.WithDescription(desc), metric.WithUnit(unit))
		if cerr != nil && err == nil {
			err = fmt.Errorf("creating %s: %w", name, cerr)
		}
		return c
	}

	m := &Metrics{
		ServerRequestDuration: seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    count("http.server.request.total", "Total number of incoming HTTP requests", "{request}"),
		ClientRequestDuration: seconds("http.client.request.duration", "Duration of outgoing HTTP requests"),
		ClientRequestTotal:    count("http.client.request.total", "Total number of outgoing HTTP requests", "{request}"),
		CypherQueryDuration:   seconds("db.neo4j.query.duration", "Duration of Cypher queries against the graph store"),
		CypherQueryTotal:      count("db.neo4j.query.total", "Total number of Cypher queries against the graph store", "{query}"),
		LLMTokensTotal:        count("llm.tokens.total", "Total number of tokens consumed by LLM gateway calls", "{token}"),
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	attrs := resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName))
	return resource.Merge(resource.Default(), attrs)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, fmt.Errorf("otlp exporter requires an endpoint")
		}
		host, insecure := otlpTarget(endpoint)
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, fmt.Errorf("otlp exporter requires an endpoint")
		}
		host, insecure := otlpTarget(endpoint)
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		return stdoutmetric.New()
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

// otlpTarget splits a collector URL into the host:port form the OTLP/HTTP
// exporters expect, plus whether to dial without TLS. Anything that is not
// an https URL, including a bare host:port, is treated as insecure.
func otlpTarget(endpoint string) (host string, insecure bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, true
	}
	return u.Host, u.Scheme != "https"
}
