package postgres

import (
	"context"
	"fmt"

	"jobtracker/pkg/domain"
	"jobtracker/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	emailsTable = "email_references"
)

// StoreEmails inserts emails in bulk, relying on the unique index on
// message_id to drop duplicates. The result splits inserted from skipped.
func (p *PgSQL) StoreEmails(ctx context.Context, emails ...domain.Email) (storage.BulkStoreResult, error) {
	if len(emails) == 0 {
		return storage.BulkStoreResult{}, nil
	}

	pgEmails := make([]PgEmail, len(emails))
	for i, email := range emails {
		pgEmails[i].FromDomain(email)
		pgEmails[i].ID = 0
	}

	res, err := p.Builder.Insert(emailsTable).
		Rows(pgEmails).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return storage.BulkStoreResult{}, fmt.Errorf("could not store emails into pg: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return storage.BulkStoreResult{}, fmt.Errorf("could not read affected rows: %w", err)
	}

	return storage.BulkStoreResult{
		Inserted: int(inserted),
		Skipped:  len(emails) - int(inserted),
	}, nil
}

func (p *PgSQL) ListEmails(ctx context.Context, limit, offset uint) (storage.EmailPage, error) {
	var total int64
	if _, err := p.Builder.From(emailsTable).
		Select(goqu.COUNT(goqu.Star())).
		Executor().ScanValContext(ctx, &total); err != nil {
		return storage.EmailPage{}, fmt.Errorf("could not count emails in pg: %w", err)
	}

	var rows []PgEmail
	if err := p.Builder.From(emailsTable).
		Order(goqu.I("received_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Offset(offset).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.EmailPage{}, fmt.Errorf("could not fetch emails from pg: %w", err)
	}

	return storage.EmailPage{
		Items: pgEmailsToDomain(rows),
		Total: int(total),
	}, nil
}

func (p *PgSQL) UnlinkedEmails(ctx context.Context) ([]domain.Email, error) {
	var rows []PgEmail
	if err := p.Builder.From(emailsTable).
		Where(goqu.I("application_id").IsNull()).
		Order(goqu.I("received_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch unlinked emails from pg: %w", err)
	}

	return pgEmailsToDomain(rows), nil
}

func (p *PgSQL) EmailsByApplication(ctx context.Context, id domain.ApplicationID) ([]domain.Email, error) {
	var rows []PgEmail
	if err := p.Builder.From(emailsTable).
		Where(goqu.I("application_id").Eq(int64(id))).
		Order(goqu.I("received_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch application emails from pg: %w", err)
	}

	return pgEmailsToDomain(rows), nil
}

// LinkEmail attaches the email to the application. The update only succeeds
// when the target application row exists, so a dangling ID reports false
// instead of violating the foreign key.
func (p *PgSQL) LinkEmail(ctx context.Context,
	emailID domain.EmailID,
	appID domain.ApplicationID) (bool, error) {
	res, err := p.Builder.Update(emailsTable).
		Set(goqu.Record{"application_id": int64(appID)}).
		Where(
			goqu.I("id").Eq(int64(emailID)),
			goqu.L("EXISTS (SELECT 1 FROM job_applications WHERE id = ?)", int64(appID)),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not link email in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) UnlinkEmail(ctx context.Context,
	emailID domain.EmailID,
	appID domain.ApplicationID) (bool, error) {
	res, err := p.Builder.Update(emailsTable).
		Set(goqu.Record{"application_id": goqu.L("NULL")}).
		Where(
			goqu.I("id").Eq(int64(emailID)),
			goqu.I("application_id").Eq(int64(appID)),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not unlink email in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

func pgEmailsToDomain(rows []PgEmail) []domain.Email {
	emails := make([]domain.Email, 0, len(rows))
	for i := range rows {
		emails = append(emails, *rows[i].ToDomain())
	}

	return emails
}
