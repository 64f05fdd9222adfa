// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the catalog.
//
// Key features:
//   - JSON and text output formats
//   - Entity annotation (kind and ID)
//   - Context-aware logging
//   - Configurable log levels (LOG_LEVEL, LOG_ADD_SOURCE)
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewLogger()
//	    ctx := logging.WithLogger(context.Background(), logger)
//	    svc := &catalog.Service{Registry: entity.Default()}
//	    author, _ := svc.RegisterAuthor(ctx, "Carry Bradshaw")
//	    logging.WithEntity(logger, "author", author.ID()).Info("ready")
//	}
package logging
