// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package monitoring

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/l3montree-dev/postureguard/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/l3montree-dev/postureguard"

// Tracer returns the tracer of the global provider. Without InitTracing it is a no-op tracer.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

func newSpanExporter(ctx context.Context, name string) (sdktrace.SpanExporter, error) {
	switch name {
	case "stdout":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case "otlp":
		// endpoint and headers are read from the OTEL_EXPORTER_OTLP_* variables
		if os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL") == "grpc" {
			return otlptracegrpc.New(ctx)
		}
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", name)
	}
}

// InitTracing installs the global tracer provider selected by OTEL_TRACES_EXPORTER (none, stdout or otlp).
// otlp exports over http unless OTEL_EXPORTER_OTLP_PROTOCOL is grpc.
// The returned function flushes and stops the provider.
func InitTracing(ctx context.Context) (func(context.Context) error, error) {
	exporterName := os.Getenv("OTEL_TRACES_EXPORTER")
	if exporterName == "" || exporterName == "none" {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := newSpanExporter(ctx, exporterName)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", "postureguard"),
		attribute.String("service.version", config.Version),
	))
	if err != nil {
		slog.Warn("failed to create resource, using default", "error", err)
		res = resource.Default()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	slog.Info("tracing enabled", "exporter", exporterName)
	return tp.Shutdown, nil
}
