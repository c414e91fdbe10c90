package storage

import (
	"context"

	"jobtracker/pkg/domain"
)

// EmailPage is one page of email references plus the unpaged total.
type EmailPage struct {
	Items []domain.Email
	Total int
}

// BulkStoreResult reports the outcome of a bulk email insert.
type BulkStoreResult struct {
	// Inserted is the number of new rows stored.
	Inserted int
	// Skipped is the number of rows dropped as duplicates of an existing
	// message ID.
	Skipped int
}

// EmailStorage defines operations on stored email references.
type EmailStorage interface {
	// StoreEmails inserts the given emails, silently skipping any whose
	// message ID already exists.
	StoreEmails(ctx context.Context, emails ...domain.Email) (BulkStoreResult, error)
	// ListEmails returns one page ordered by received_at descending.
	ListEmails(ctx context.Context, limit, offset uint) (EmailPage, error)
	// UnlinkedEmails returns every email not linked to an application.
	UnlinkedEmails(ctx context.Context) ([]domain.Email, error)
	// EmailsByApplication returns the emails linked to one application,
	// newest first.
	EmailsByApplication(ctx context.Context, id domain.ApplicationID) ([]domain.Email, error)
	// LinkEmail attaches an email to an application. Reports whether both
	// rows existed and the link was written.
	LinkEmail(ctx context.Context, emailID domain.EmailID, appID domain.ApplicationID) (bool, error)
	// UnlinkEmail detaches an email from the given application. Reports
	// whether a link was removed.
	UnlinkEmail(ctx context.Context, emailID domain.EmailID, appID domain.ApplicationID) (bool, error)
}
