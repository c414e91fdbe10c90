// Package metrics holds the Prometheus collectors exposed by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets is the latency bucket set, in seconds, used by the HTTP
// request duration histogram.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// ScansStarted counts inbox scans started, labeled by trigger
	// ("stream", "job").
	ScansStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobtracker_scans_started_total",
		Help: "Number of inbox scans started.",
	}, []string{"trigger"})

	// ScansFinished counts finished scans labeled by outcome ("completed", "failed").
	ScansFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobtracker_scans_finished_total",
		Help: "Number of inbox scans finished.",
	}, []string{"outcome"})

	// EmailsInserted counts email references stored by the scan pipeline.
	EmailsInserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobtracker_emails_inserted_total",
		Help: "Number of new email references stored by scans.",
	})

	// ApplicationsCreated counts applications auto-created from email subjects.
	ApplicationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobtracker_applications_autocreated_total",
		Help: "Number of applications auto-created by the scan pipeline.",
	})

	// ScanDuration observes the wall-clock duration of whole scan runs.
	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "jobtracker_scan_duration_seconds",
		Help:    "Duration of inbox scan runs.",
		Buckets: []float64{1, 2.5, 5, 10, 30, 60, 120, 300},
	})
)
