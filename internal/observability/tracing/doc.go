// Package tracing provides OpenTelemetry tracing integration.
//
// Catalog use cases open one span per operation. No exporter is configured
// here; the embedding application installs a TracerProvider with
// otel.SetTracerProvider, and until it does spans are no-ops.
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/tracing"
//
//	func publish(ctx context.Context) (err error) {
//	    ctx, span := tracing.StartSpan(ctx, "catalog.Publish")
//	    defer func() { tracing.EndSpan(span, err) }()
//	    // ... publish ...
//	    return nil
//	}
package tracing
