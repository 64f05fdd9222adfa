// Package metrics provides centralized Prometheus metrics for the catalog.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entity kinds used as label values.
const (
	KindAuthor   = "author"
	KindMagazine = "magazine"
	KindArticle  = "article"
)

// Catalog metrics track entity creation, edits and rejected writes
var (
	// EntitiesCreatedTotal counts entities registered, by kind
	EntitiesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_entities_created_total",
			Help: "Total number of catalog entities created",
		},
		[]string{"kind"},
	)

	// EntityUpdatesTotal counts accepted field updates, by kind and field
	EntityUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_entity_updates_total",
			Help: "Total number of accepted catalog field updates",
		},
		[]string{"kind", "field"},
	)

	// ValidationFailuresTotal counts rejected constructions and writes, by field
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_validation_failures_total",
			Help: "Total number of rejected catalog writes",
		},
		[]string{"field"},
	)

	// AuthorsTotal tracks the number of registered authors
	AuthorsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_authors_total",
			Help: "Number of registered authors",
		},
	)

	// MagazinesTotal tracks the number of registered magazines
	MagazinesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_magazines_total",
			Help: "Number of registered magazines",
		},
	)

	// ArticlesTotal tracks the number of registered articles
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_articles_total",
			Help: "Number of registered articles",
		},
	)

	// StatsDuration measures the time to compute catalog statistics
	StatsDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_stats_duration_seconds",
			Help:    "Time taken to compute catalog statistics",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)
)
