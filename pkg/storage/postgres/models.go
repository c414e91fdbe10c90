package postgres

import (
	"database/sql"
	"time"

	"jobtracker/pkg/domain"
)

// PgApplication is the row shape of the job_applications table.
type PgApplication struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	CompanyName string         `db:"company_name"`
	RoleTitle   sql.NullString `db:"role_title"`
	Status      string         `db:"status"`
	Source      sql.NullString `db:"source"`

	AppliedAt    sql.NullTime `db:"applied_at"`
	LastEmailAt  sql.NullTime `db:"last_email_at"`
	NextActionAt sql.NullTime `db:"next_action_at"`

	ConfidenceScore sql.NullFloat64 `db:"confidence_score"`
	Notes           sql.NullString  `db:"notes"`
	JobURL          sql.NullString  `db:"job_url"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

// pgApplicationWithCount extends the row with the aggregated number of linked
// emails, selected as a subquery rather than stored.
type pgApplicationWithCount struct {
	PgApplication
	EmailCount int64 `db:"email_count"`
}

func (p *pgApplicationWithCount) ToDomain() *domain.Application {
	app := p.PgApplication.ToDomain()
	app.EmailCount = int(p.EmailCount)

	return app
}

func (p *PgApplication) ToDomain() *domain.Application {
	return &domain.Application{
		ID:              domain.ApplicationID(p.ID),
		CompanyName:     p.CompanyName,
		RoleTitle:       p.RoleTitle.String,
		Status:          domain.ApplicationStatus(p.Status),
		Source:          p.Source.String,
		AppliedAt:       nullTimePtr(p.AppliedAt),
		LastEmailAt:     nullTimePtr(p.LastEmailAt),
		NextActionAt:    nullTimePtr(p.NextActionAt),
		ConfidenceScore: nullFloatPtr(p.ConfidenceScore),
		Notes:           p.Notes.String,
		JobURL:          p.JobURL.String,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (p *PgApplication) FromDomain(app domain.Application) {
	*p = PgApplication{
		ID:              int64(app.ID),
		CompanyName:     app.CompanyName,
		RoleTitle:       nullString(app.RoleTitle),
		Status:          string(app.Status),
		Source:          nullString(app.Source),
		AppliedAt:       nullTime(app.AppliedAt),
		LastEmailAt:     nullTime(app.LastEmailAt),
		NextActionAt:    nullTime(app.NextActionAt),
		ConfidenceScore: nullFloat(app.ConfidenceScore),
		Notes:           nullString(app.Notes),
		JobURL:          nullString(app.JobURL),
	}
}

// PgEmail is the row shape of the email_references table.
type PgEmail struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	MessageID  string         `db:"message_id"`
	Subject    sql.NullString `db:"subject"`
	Sender     sql.NullString `db:"sender"`
	Snippet    sql.NullString `db:"snippet"`
	ReceivedAt time.Time      `db:"received_at"`

	ApplicationID sql.NullInt64 `db:"application_id"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgEmail) ToDomain() *domain.Email {
	var appID *domain.ApplicationID
	if p.ApplicationID.Valid {
		id := domain.ApplicationID(p.ApplicationID.Int64)
		appID = &id
	}

	return &domain.Email{
		ID:            domain.EmailID(p.ID),
		MessageID:     p.MessageID,
		Subject:       p.Subject.String,
		Sender:        p.Sender.String,
		Snippet:       p.Snippet.String,
		ReceivedAt:    p.ReceivedAt,
		ApplicationID: appID,
		CreatedAt:     p.CreatedAt,
	}
}

func (p *PgEmail) FromDomain(email domain.Email) {
	var appID sql.NullInt64
	if email.ApplicationID != nil {
		appID = sql.NullInt64{Int64: int64(*email.ApplicationID), Valid: true}
	}

	*p = PgEmail{
		ID:            int64(email.ID),
		MessageID:     email.MessageID,
		Subject:       nullString(email.Subject),
		Sender:        nullString(email.Sender),
		Snippet:       nullString(email.Snippet),
		ReceivedAt:    email.ReceivedAt,
		ApplicationID: appID,
	}
}

// PgScanRun is the row shape of the scan_runs table.
type PgScanRun struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	StartedAt   time.Time    `db:"started_at" goqu:"skipinsert"`
	CompletedAt sql.NullTime `db:"completed_at"`

	Status string `db:"status"`

	EmailsFetched  sql.NullInt64 `db:"emails_fetched"`
	EmailsInserted sql.NullInt64 `db:"emails_inserted"`
	AppsCreated    sql.NullInt64 `db:"apps_created"`

	Error sql.NullString `db:"error"`
}

func (p *PgScanRun) ToDomain() *domain.ScanRun {
	return &domain.ScanRun{
		ID:             domain.ScanRunID(p.ID),
		StartedAt:      p.StartedAt,
		CompletedAt:    nullTimePtr(p.CompletedAt),
		Status:         domain.ScanRunStatus(p.Status),
		EmailsFetched:  nullIntPtr(p.EmailsFetched),
		EmailsInserted: nullIntPtr(p.EmailsInserted),
		AppsCreated:    nullIntPtr(p.AppsCreated),
		Error:          p.Error.String,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *t, Valid: true}
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time

	return &v
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullFloatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64

	return &v
}

func nullIntPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)

	return &v
}
