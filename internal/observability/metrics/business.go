package metrics

import "time"

// RecordEntityCreated records the registration of an entity of the given kind.
func RecordEntityCreated(kind string) {
	EntitiesCreatedTotal.WithLabelValues(kind).Inc()
}

// RecordEntityUpdate records an accepted write to field of an entity of the given kind.
func RecordEntityUpdate(kind, field string) {
	EntityUpdatesTotal.WithLabelValues(kind, field).Inc()
}

// RecordValidationFailure records a rejected construction or write.
// Field is the name reported by the validation error, or "unknown".
func RecordValidationFailure(field string) {
	if field == "" {
		field = "unknown"
	}
	ValidationFailuresTotal.WithLabelValues(field).Inc()
}

// UpdateRegistrySize sets the entity gauges to the current registry size.
func UpdateRegistrySize(authors, magazines, articles int) {
	AuthorsTotal.Set(float64(authors))
	MagazinesTotal.Set(float64(magazines))
	ArticlesTotal.Set(float64(articles))
}

// RecordStatsDuration records the time taken to compute catalog statistics.
func RecordStatsDuration(duration time.Duration) {
	StatsDuration.Observe(duration.Seconds())
}
