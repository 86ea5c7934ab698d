package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Observability owns the OpenTelemetry meter and tracer providers.
type Observability struct {
	meterProvider  *metric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	meter          otelmetric.Meter
	tracer         trace.Tracer
	reportCounter  otelmetric.Int64Counter
	reportDuration otelmetric.Float64Histogram
}

// New wires a Prometheus-backed meter provider and a sampled tracer provider
// and installs both as the otel globals. Errors leave the meters nil, which
// makes every Record call a no-op.
func New(serviceName string, sampleRatio float64) (*Observability, error) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
	)
	otel.SetTracerProvider(tp)

	o := &Observability{
		tracerProvider: tp,
		tracer:         tp.Tracer(serviceName),
	}

	exporter, err := prometheus.New()
	if err != nil {
		return o, err
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	o.meterProvider = provider
	o.meter = provider.Meter(serviceName)

	o.reportCounter, _ = o.meter.Int64Counter(
		"reports.served",
		otelmetric.WithDescription("Number of application view reports served"),
	)

	o.reportDuration, _ = o.meter.Float64Histogram(
		"reports.duration",
		otelmetric.WithDescription("Application view report build duration"),
		otelmetric.WithUnit("ms"),
	)

	return o, nil
}

// Tracer returns the service tracer.
func (o *Observability) Tracer() trace.Tracer {
	if o.tracer == nil {
		return otel.Tracer("jobtracker")
	}
	return o.tracer
}

func (o *Observability) RecordReport(ctx context.Context, bundle, status string) {
	if o.reportCounter != nil {
		o.reportCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("bundle", bundle),
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordReportDuration(ctx context.Context, duration time.Duration, bundle string) {
	if o.reportDuration != nil {
		o.reportDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("bundle", bundle),
		))
	}
}

func (o *Observability) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if o.meterProvider != nil {
		_ = o.meterProvider.Shutdown(ctx)
	}
	if o.tracerProvider != nil {
		_ = o.tracerProvider.Shutdown(ctx)
	}
}
