package storage

import (
	"context"
	"time"

	"jobtracker/pkg/domain"
)

// Application list sort orders. The zero value sorts by most recently updated.
const (
	// SortUpdatedDesc orders by updated_at descending (default).
	SortUpdatedDesc = ""
	// SortAppliedDesc orders by applied_at descending, nulls last.
	SortAppliedDesc = "applied_at"
	// SortCompanyAsc orders by company name ascending.
	SortCompanyAsc = "company_name"
)

// ApplicationFilter narrows and pages ListApplications results.
type ApplicationFilter struct {
	// Status keeps only applications in the given pipeline stage when non-empty.
	Status domain.ApplicationStatus
	// Search keeps applications whose company or role matches the term,
	// case-insensitively, when non-empty.
	Search string
	// Sort selects the ordering; one of the Sort* constants.
	Sort string

	// Limit caps the page size. Required, > 0.
	Limit uint
	// Offset skips that many rows from the start of the ordering.
	Offset uint
}

// ApplicationPage is one page of applications plus the unpaged total.
type ApplicationPage struct {
	Items []domain.Application
	Total int
}

// ApplicationUpdates describes a partial update. Nil fields are left
// untouched; non-nil pointers overwrite, including with zero values, so a
// caller can clear nullable columns explicitly.
type ApplicationUpdates struct {
	CompanyName     *string
	RoleTitle       *string
	Status          *domain.ApplicationStatus
	Source          *string
	AppliedAt       *time.Time
	NextActionAt    *time.Time
	ConfidenceScore *float64
	Notes           *string
	JobURL          *string
}

// ApplicationKey identifies an application by lower-cased company and role.
// Used by the scan pipeline to deduplicate auto-created records.
type ApplicationKey struct {
	Company string
	Role    string
}

// ApplicationStorage defines CRUD and query operations for applications.
type ApplicationStorage interface {
	// StoreApplication inserts one application and returns the stored row
	// including generated fields.
	StoreApplication(ctx context.Context, app domain.Application) (*domain.Application, error)
	// ApplicationByID fetches one application with its email count, or nil
	// when not found.
	ApplicationByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error)
	// UpdateApplication applies a partial update, bumps updated_at and
	// returns the updated row, or nil when not found.
	UpdateApplication(ctx context.Context,
		id domain.ApplicationID,
		updates ApplicationUpdates) (*domain.Application, error)
	// DeleteApplication removes an application and its email links. Reports
	// whether a row was deleted.
	DeleteApplication(ctx context.Context, id domain.ApplicationID) (bool, error)
	// ListApplications returns one filtered, sorted page plus the total count.
	ListApplications(ctx context.Context, filter ApplicationFilter) (ApplicationPage, error)
	// RecentApplications returns the most recently updated applications,
	// newest first.
	RecentApplications(ctx context.Context, limit uint) ([]domain.Application, error)
	// AllApplications returns every application, unordered. Used by the
	// email matcher, which scores the full set.
	AllApplications(ctx context.Context) ([]domain.Application, error)
	// ApplicationKeys returns the lower-cased (company, role) key of every
	// application mapped to its ID.
	ApplicationKeys(ctx context.Context) (map[ApplicationKey]domain.ApplicationID, error)
	// DashboardStats aggregates totals, per-status counts and the reply rate.
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
	// TouchLastEmailAt advances last_email_at to receivedAt when the stored
	// value is older or unset. Never moves the timestamp backwards.
	TouchLastEmailAt(ctx context.Context, id domain.ApplicationID, receivedAt time.Time) error
}
