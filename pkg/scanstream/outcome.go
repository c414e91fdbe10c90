package scanstream

import (
	"fmt"
	"strings"
)

// Scope names a read cache that must be refetched after a scan finishes.
type Scope string

const (
	ScopeApplications Scope = "applications"
	ScopeStats        Scope = "stats"
	ScopeScanHistory  Scope = "scan-history"
)

// Outcome is the terminal state of one scan attempt: either the success
// counters or an error message. At most one outcome exists per attempt.
type Outcome struct {
	Failed  bool
	Message string

	Inserted            int
	ApplicationsCreated int
}

// Summary composes the human-readable result line. Error messages pass
// through verbatim.
func (o Outcome) Summary() string {
	if o.Failed {
		return o.Message
	}

	var parts []string
	if o.ApplicationsCreated > 0 {
		parts = append(parts, fmt.Sprintf("%d %s created",
			o.ApplicationsCreated, pluralize(o.ApplicationsCreated, "application", "applications")))
	}
	if o.Inserted > 0 {
		parts = append(parts, fmt.Sprintf("%d %s saved",
			o.Inserted, pluralize(o.Inserted, "email", "emails")))
	}
	if len(parts) == 0 {
		return "Inbox is up to date"
	}

	return strings.Join(parts, " · ")
}

// Invalidations lists the read caches a finished scan makes stale. A failed
// scan only touches history; nothing else changed.
func (o Outcome) Invalidations() []Scope {
	if o.Failed {
		return []Scope{ScopeScanHistory}
	}

	return []Scope{ScopeApplications, ScopeStats, ScopeScanHistory}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}

	return plural
}
