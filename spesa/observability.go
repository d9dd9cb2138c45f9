package spesa

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/odit-bit/spesabot/spesa/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

func startMeter(ctx context.Context, res *resource.Resource, cfg config.ObsConfig) (*metric.MeterProvider, error) {
	switch cfg.Exporter {
	case "prometheus":
		// scraped from the /metrics route
		reader, err := otelprom.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
		}
		return metric.NewMeterProvider(
			metric.WithReader(reader),
			metric.WithResource(res),
		), nil

	case "otlp":
		opts := []otlpmetrichttp.Option{
			otlpmetrichttp.WithEndpoint(cfg.MetricsEndpoint),
		}
		if !cfg.Secure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exporter, err := otlpmetrichttp.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create otlp http metric exporter: %w", err)
		}
		return metric.NewMeterProvider(
			metric.WithReader(metric.NewPeriodicReader(exporter)),
			metric.WithResource(res),
		), nil

	default:
		slog.Debug("initialize stdout metric")
		exporter, err := stdoutmetric.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create metric exporter: %w", err)
		}
		return metric.NewMeterProvider(
			metric.WithReader(metric.NewPeriodicReader(exporter)),
			metric.WithResource(res),
		), nil
	}
}

func startTracer(ctx context.Context, res *resource.Resource, cfg config.ObsConfig) (*trace.TracerProvider, error) {
	var exporter trace.SpanExporter
	var err error

	if cfg.Exporter == "otlp" {
		opts := []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(cfg.TraceEndpoint),
		}
		if !cfg.Secure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exporter, err = otlptracehttp.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create otlp http trace exporter: %w", err)
		}
	} else {
		slog.Debug("initialize stdout trace")
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}
	}

	return trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	), nil
}

// InitObservability configures OpenTelemetry for the process. It returns a
// shutdown function that must be called on exit.
func InitObservability(ctx context.Context, serviceName string, cfg config.ObsConfig) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Enable {
		slog.Info("observability is disabled")
		return noop, nil
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("failed to create otel resource: %w", err)
	}

	sfn := []func(context.Context) error{}

	meterProvider, err := startMeter(ctx, res, cfg)
	if err != nil {
		return noop, err
	}
	otel.SetMeterProvider(meterProvider)
	sfn = append(sfn, meterProvider.Shutdown)

	tracerProvider, err := startTracer(ctx, res, cfg)
	if err != nil {
		return noop, err
	}
	otel.SetTracerProvider(tracerProvider)
	sfn = append(sfn, tracerProvider.Shutdown)

	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func(ctx context.Context) error {
		var shutdownErr error
		for _, fn := range sfn {
			if xerr := fn(ctx); xerr != nil {
				shutdownErr = errors.Join(shutdownErr, xerr)
			}
		}
		return shutdownErr
	}, nil
}
