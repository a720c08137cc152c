package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector

	// OTel meters and instruments
	meter           metric.Meter
	recordsGauge    metric.Int64ObservableGauge
	requestCounter  metric.Int64Counter
	requestDuration metric.Float64Histogram
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	// Create Prometheus exporter
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	// Create meter provider
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	// Create meter with service info
	meter := meterProvider.Meter(
		"library-api",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		meter:         meter,
	}

	// Register metrics instruments
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	// Stored record gauge (per resource)
	oe.recordsGauge, err = oe.meter.Int64ObservableGauge(
		"library.records",
		metric.WithDescription("Number of stored records per resource"),
		metric.WithUnit("{records}"),
		metric.WithInt64Callback(oe.observeRecordCounts),
	)
	if err != nil {
		return fmt.Errorf("creating records gauge: %w", err)
	}

	// Request counter (per method/path/status)
	oe.requestCounter, err = oe.meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("Number of handled HTTP requests"),
		metric.WithUnit("{requests}"),
	)
	if err != nil {
		return fmt.Errorf("creating request counter: %w", err)
	}

	// Request duration histogram
	oe.requestDuration, err = oe.meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("creating request duration histogram: %w", err)
	}

	return nil
}

// observeRecordCounts is a callback that reports stored record counts
func (oe *OTelExporter) observeRecordCounts(ctx context.Context, observer metric.Int64Observer) error {
	counts, err := oe.collector.Collect(ctx)
	if err != nil {
		return err
	}

	observer.Observe(counts.Authors, metric.WithAttributes(
		attribute.String("resource", "authors"),
	))
	observer.Observe(counts.Books, metric.WithAttributes(
		attribute.String("resource", "books"),
	))

	return nil
}

/* Middleware instruments each request with the counter and the
 * duration histogram. The route pattern, not the raw path, would be
 * the ideal label; the raw method keeps cardinality low enough here.
 */
func (oe *OTelExporter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			attrs := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.Int("http.status_code", sw.status),
			)
			oe.requestCounter.Add(r.Context(), 1, attrs)
			oe.requestDuration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}
}

// statusWriter captures the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// ServeHTTP serves Prometheus-formatted metrics on the given HTTP handler
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.Handler()
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
