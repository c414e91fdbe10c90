package domain

import "time"

// ApplicationID uniquely identifies a job application.
type ApplicationID int64

// ApplicationStatus is the pipeline stage of an application.
type ApplicationStatus string

const (
	// ApplicationStatusNew marks an application that was just detected and not yet triaged.
	ApplicationStatusNew ApplicationStatus = "new"
	// ApplicationStatusApplied marks a submitted application.
	ApplicationStatusApplied ApplicationStatus = "applied"
	// ApplicationStatusInterviewing marks an application with active interviews.
	ApplicationStatusInterviewing ApplicationStatus = "interviewing"
	// ApplicationStatusOffer marks an application with an outstanding offer.
	ApplicationStatusOffer ApplicationStatus = "offer"
	// ApplicationStatusRejected marks a rejected application.
	ApplicationStatusRejected ApplicationStatus = "rejected"
	// ApplicationStatusHired marks an accepted offer.
	ApplicationStatusHired ApplicationStatus = "hired"
)

// ApplicationStatuses lists every valid status, in pipeline order.
func ApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		ApplicationStatusNew,
		ApplicationStatusApplied,
		ApplicationStatusInterviewing,
		ApplicationStatusOffer,
		ApplicationStatusRejected,
		ApplicationStatusHired,
	}
}

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	for _, known := range ApplicationStatuses() {
		if s == known {
			return true
		}
	}

	return false
}

// Application is a tracked job application.
type Application struct {
	ID ApplicationID `json:"id"`

	// CompanyName is the hiring company. Required.
	CompanyName string `json:"company_name"`
	// RoleTitle is the position applied for. Empty when only the company is known.
	RoleTitle string `json:"role_title"`
	// Status is the current pipeline stage.
	Status ApplicationStatus `json:"status"`
	// Source records where the application came from (e.g. "Gmail", "LinkedIn").
	Source string `json:"source,omitempty"`

	// AppliedAt is when the application was submitted.
	AppliedAt *time.Time `json:"applied_at,omitempty"`
	// LastEmailAt is the receive time of the newest linked email.
	LastEmailAt *time.Time `json:"last_email_at,omitempty"`
	// NextActionAt is a user-set reminder date.
	NextActionAt *time.Time `json:"next_action_at,omitempty"`

	// ConfidenceScore is the matcher's confidence for auto-created records, 0..1.
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	// Notes is free-form user text.
	Notes string `json:"notes,omitempty"`
	// JobURL links to the posting.
	JobURL string `json:"job_url,omitempty"`

	// EmailCount is the number of linked email references. Populated on reads.
	EmailCount int `json:"email_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
