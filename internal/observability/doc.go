// Package observability groups the catalog's logging, metrics and tracing support.
//
// Subpackages:
//   - logging: structured logging with slog and context propagation
//   - metrics: Prometheus collectors for entity writes and registry size
//   - tracing: OpenTelemetry spans around catalog use cases
//
// Example usage:
//
//	import (
//	    "magazine-catalog/internal/observability/logging"
//	    "magazine-catalog/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("catalog ready")
//
//	    metrics.UpdateRegistrySize(0, 0, 0)
//	}
package observability
