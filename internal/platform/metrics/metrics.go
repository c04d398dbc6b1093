// Package metrics registers the Prometheus instruments for the notary
// ledger.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	DocumentsCreated      prometheus.Counter
	VersionsAdded         prometheus.Counter
	SignaturesRecorded    prometheus.Counter
	QuorumsReached        prometheus.Counter
	AuthoritiesRegistered prometheus.Counter
	ClaimsIssued          prometheus.Counter
	OperationDuration     *prometheus.HistogramVec
	OperationErrors       *prometheus.CounterVec
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		DocumentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notary_documents_created_total",
			Help: "Total number of documents recorded in the ledger",
		}),
		VersionsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notary_versions_added_total",
			Help: "Total number of document versions appended",
		}),
		SignaturesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notary_signatures_recorded_total",
			Help: "Total number of signatures accepted",
		}),
		QuorumsReached: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notary_quorums_reached_total",
			Help: "Total number of versions promoted to approved by quorum",
		}),
		AuthoritiesRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notary_authorities_registered_total",
			Help: "Total number of distinct authorities registered",
		}),
		ClaimsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notary_claims_issued_total",
			Help: "Total number of identity claims issued",
		}),
		OperationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "notary_operation_duration_seconds",
			Help:    "Latency of ledger operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		OperationErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "notary_operation_errors_total",
			Help: "Ledger operation failures by error code",
		}, []string{"operation", "code"}),
	}
}

// ObserveOperation records one operation's latency.
func (m *Metrics) ObserveOperation(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.OperationDuration.WithLabelValues(operation).Observe(seconds)
}

// IncError counts one failed operation.
func (m *Metrics) IncError(operation, code string) {
	if m == nil {
		return
	}
	m.OperationErrors.WithLabelValues(operation, code).Inc()
}
