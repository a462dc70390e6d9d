// Package tracing installs the process-wide OpenTelemetry tracer provider.
// Spans are exported over OTLP/gRPC when an endpoint is configured; without
// one the global provider stays a no-op.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
)

type Config struct {
	Endpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" yaml:"endpoint"`
	Insecure bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" yaml:"insecure"`
	// SampleRatio is the fraction of root spans kept. Zero means all.
	SampleRatio float64 `env:"OTEL_TRACES_SAMPLE_RATIO" yaml:"sample_ratio"`
}

func (c Config) Enabled() bool { return c.Endpoint != "" }

// Shutdown flushes pending spans and stops the exporter.
type Shutdown func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// NewProvider builds a tracer provider for service that batches spans into
// exporter.
func NewProvider(cfg Config, service string, exporter sdktrace.SpanExporter) *sdktrace.TracerProvider {
	sampler := sdktrace.AlwaysSample()
	if cfg.SampleRatio > 0 && cfg.SampleRatio < 1 {
		sampler = sdktrace.TraceIDRatioBased(cfg.SampleRatio)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", service))),
		sdktrace.WithSampler(sdktrace.ParentBased(sampler)),
	)
}

// Install makes tp the global provider and sets the W3C trace-context and
// baggage propagators.
func Install(tp *sdktrace.TracerProvider) {
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

// Start connects the OTLP exporter and installs the provider. It is a no-op
// when cfg has no endpoint.
func Start(ctx context.Context, cfg Config, service string, log logger.Logger) (Shutdown, error) {
	if !cfg.Enabled() {
		return noopShutdown, nil
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return noopShutdown, fmt.Errorf("create otlp exporter: %w", err)
	}

	tp := NewProvider(cfg, service, exporter)
	Install(tp)
	log.Info("Tracing enabled",
		logger.String("endpoint", cfg.Endpoint),
		logger.Bool("insecure", cfg.Insecure),
	)
	return tp.Shutdown, nil
}
