// Package domain defines the core entities of the job tracker: applications,
// email references, scan runs and the aggregated dashboard stats. The types
// here are storage- and transport-agnostic; persistence models live under
// pkg/storage and wire representations under internal/api.
package domain
