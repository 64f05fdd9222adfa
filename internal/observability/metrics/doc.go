// Package metrics provides Prometheus metrics and recording utilities for the catalog.
//
// Collected metrics:
//   - Entity creation counts by kind (author, magazine, article)
//   - Accepted field updates and rejected writes
//   - Registry size gauges
//   - Statistics computation latency
//
// All metrics are registered with the Prometheus default registry; embedding
// applications decide whether and how to expose them.
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/metrics"
//
//	func register(reg *entity.Registry, name string) {
//	    if _, err := reg.NewAuthor(name); err != nil {
//	        metrics.RecordValidationFailure("name")
//	        return
//	    }
//	    metrics.RecordEntityCreated(metrics.KindAuthor)
//	}
package metrics
