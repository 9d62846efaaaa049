// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

// Package telemetry implements OpenTelemetry and Prometheus metric
// collection for the codec. It wraps a dnswire.Decoder/Message pair to
// count decode and encode operations, classify decode failures, and
// record decode latency, without requiring any caller of dnswire itself
// to take a metrics dependency.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"log/slog"

	"dnswire/dnswire"
)

// Metrics manages OpenTelemetry and Prometheus metric collection for
// codec operations.
type Metrics struct {
	decodeCounter    metric.Int64Counter
	decodeErrCounter metric.Int64Counter
	encodeCounter    metric.Int64Counter
	decodeLatency    metric.Float64Histogram
	prometheusAddr   string
	prometheusServer *http.Server
}

// New initializes metrics with OpenTelemetry and/or Prometheus endpoints.
// Both endpoints are optional; if neither is set, the returned Metrics
// records nothing and every instrumented call is a cheap no-op.
func New(otelEndpoint string, prometheusEndpoint string) (*Metrics, error) {
	m := &Metrics{
		prometheusAddr: prometheusEndpoint,
	}

	if otelEndpoint == "" && prometheusEndpoint == "" {
		return m, nil
	}

	ctx := context.Background()

	var readers []sdkmetric.Reader

	if otelEndpoint != "" {
		exporter, err := otlpmetrichttp.New(ctx,
			otlpmetrichttp.WithEndpoint(otelEndpoint),
			otlpmetrichttp.WithInsecure(),
		)
		if err != nil {
			slog.Warn("failed to create OTLP exporter", "error", err)
		} else {
			readers = append(readers, sdkmetric.NewPeriodicReader(exporter))
			slog.Info("OTLP exporter configured", "endpoint", otelEndpoint)
		}
	}

	if prometheusEndpoint != "" {
		promExporter, err := prometheus.New()
		if err != nil {
			slog.Warn("failed to create Prometheus exporter", "error", err)
		} else {
			readers = append(readers, promExporter)
			slog.Info("Prometheus exporter configured", "endpoint", prometheusEndpoint)
		}
	}

	if len(readers) == 0 {
		slog.Warn("no metric exporters configured")
		return m, nil
	}

	var opts []sdkmetric.Option
	for _, reader := range readers {
		opts = append(opts, sdkmetric.WithReader(reader))
	}
	meterProvider := sdkmetric.NewMeterProvider(opts...)
	otel.SetMeterProvider(meterProvider)

	meter := otel.Meter("dnswire")

	decodeCounter, err := meter.Int64Counter(
		"dnswire.decode.total",
		metric.WithDescription("Total messages decoded"),
	)
	if err != nil {
		slog.Warn("failed to create decode counter", "error", err)
		return m, nil
	}

	decodeErrCounter, err := meter.Int64Counter(
		"dnswire.decode.errors.total",
		metric.WithDescription("Total decode failures, by section"),
	)
	if err != nil {
		slog.Warn("failed to create decode error counter", "error", err)
		return m, nil
	}

	encodeCounter, err := meter.Int64Counter(
		"dnswire.encode.total",
		metric.WithDescription("Total messages encoded"),
	)
	if err != nil {
		slog.Warn("failed to create encode counter", "error", err)
		return m, nil
	}

	decodeLatency, err := meter.Float64Histogram(
		"dnswire.decode.latency_ms",
		metric.WithDescription("Decode latency in milliseconds"),
	)
	if err != nil {
		slog.Warn("failed to create decode latency recorder", "error", err)
		return m, nil
	}

	m.decodeCounter = decodeCounter
	m.decodeErrCounter = decodeErrCounter
	m.encodeCounter = encodeCounter
	m.decodeLatency = decodeLatency

	if m.prometheusAddr != "" {
		if err := m.startPrometheusServer(); err != nil {
			slog.Warn("failed to start Prometheus server", "error", err)
		}
	}

	return m, nil
}

// errSection classifies the decode error down to the message section
// it failed in, by matching the "<section> <n>: ..." prefix that
// Decoder.Parse wraps every sub-error with. Unrecognized shapes fall
// back to "header".
func errSection(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, dnswire.ErrMultipleOpt):
		return "additional"
	}
	msg := err.Error()
	for _, section := range []string{"question", "answer", "authority", "additional"} {
		if len(msg) >= len(section) && msg[:len(section)] == section {
			return section
		}
	}
	return "header"
}

// Decode wraps dec.Parse, recording a decode count, latency, and —
// on failure — an error count tagged with the section that failed.
func (m *Metrics) Decode(dec *dnswire.Decoder, data []byte) (*dnswire.Message, error) {
	start := time.Now()
	msg, err := dec.Parse(data)
	elapsed := time.Since(start)

	if m.decodeLatency != nil {
		m.decodeLatency.Record(context.Background(), float64(elapsed.Microseconds())/1000.0)
	}
	if err != nil {
		if m.decodeErrCounter != nil {
			m.decodeErrCounter.Add(context.Background(), 1,
				metric.WithAttributes(attribute.String("section", errSection(err))),
			)
		}
		return nil, err
	}
	if m.decodeCounter != nil {
		m.decodeCounter.Add(context.Background(), 1)
	}
	return msg, nil
}

// Encode wraps msg.Serialize, recording an encode count on success.
func (m *Metrics) Encode(msg *dnswire.Message) ([]byte, error) {
	out, err := msg.Serialize()
	if err != nil {
		return nil, err
	}
	if m.encodeCounter != nil {
		m.encodeCounter.Add(context.Background(), 1)
	}
	return out, nil
}

// startPrometheusServer starts the HTTP server for Prometheus metrics.
func (m *Metrics) startPrometheusServer() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	addr := m.prometheusAddr
	m.prometheusServer = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		slog.Info("Starting Prometheus metrics server", "endpoint", addr+"/metrics")
		if err := m.prometheusServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Prometheus metrics server error", "error", err)
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the Prometheus metrics server.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m.prometheusServer != nil {
		return m.prometheusServer.Shutdown(ctx)
	}
	return nil
}
