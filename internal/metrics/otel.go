package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "epg-description-engine"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx               context.Context
	meter             metric.Meter
	resolutions       metric.Int64Counter
	resolveLatencyMs  metric.Float64Histogram
	fallbackDraws     metric.Int64Counter
	degradedSlots     metric.Int64Counter
	unresolvedTokens  metric.Int64Counter
	unknownConditions metric.Int64Counter
	passCycles        metric.Int64Counter
	passErrors        metric.Int64Counter
	passLatencyMs     metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("epg-description-engine")
	ctx := context.Background()

	resolutions, err := meter.Int64Counter("resolutions_total")
	if err != nil {
		return nil, err
	}
	resolveLatency, err := meter.Float64Histogram("resolution_duration_ms")
	if err != nil {
		return nil, err
	}
	fallbackDraws, err := meter.Int64Counter("fallback_draws_total")
	if err != nil {
		return nil, err
	}
	degradedSlots, err := meter.Int64Counter("degraded_slots_total")
	if err != nil {
		return nil, err
	}
	unresolvedTokens, err := meter.Int64Counter("unresolved_tokens_total")
	if err != nil {
		return nil, err
	}
	unknownConditions, err := meter.Int64Counter("unknown_conditions_total")
	if err != nil {
		return nil, err
	}
	passCycles, err := meter.Int64Counter("pass_cycles_total")
	if err != nil {
		return nil, err
	}
	passErrors, err := meter.Int64Counter("pass_errors_total")
	if err != nil {
		return nil, err
	}
	passLatency, err := meter.Float64Histogram("pass_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:               ctx,
		meter:             meter,
		resolutions:       resolutions,
		resolveLatencyMs:  resolveLatency,
		fallbackDraws:     fallbackDraws,
		degradedSlots:     degradedSlots,
		unresolvedTokens:  unresolvedTokens,
		unknownConditions: unknownConditions,
		passCycles:        passCycles,
		passErrors:        passErrors,
		passLatencyMs:     passLatency,
	}, nil
}

func (o *otelInstruments) recordResolution(channel string, duration time.Duration, fallbackDraw, degraded bool) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrChannel, channel)}
	o.recordCounter(o.resolutions, 1, attrs...)
	o.recordHistogram(o.resolveLatencyMs, float64(duration.Microseconds())/1000, attrs...)
	if fallbackDraw {
		o.recordCounter(o.fallbackDraws, 1, attrs...)
	}
	if degraded {
		o.recordCounter(o.degradedSlots, 1, attrs...)
	}
}

func (o *otelInstruments) recordUnresolvedTokens(channel string, count int) {
	if o == nil {
		return
	}
	o.recordCounter(o.unresolvedTokens, int64(count), attribute.String(AttrChannel, channel))
}

func (o *otelInstruments) recordUnknownCondition(condition string) {
	if o == nil {
		return
	}
	o.recordCounter(o.unknownConditions, 1, attribute.String(AttrCondition, condition))
}

func (o *otelInstruments) recordPassCycle(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.passCycles, 1)
	o.recordHistogram(o.passLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.passErrors, 1)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
