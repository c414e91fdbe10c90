package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	"jobtracker/pkg/domain"
	"jobtracker/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	applicationsTable = "job_applications"
)

// emailCountExpr counts the emails linked to the surrounding application row.
var emailCountExpr = goqu.L(
	"(SELECT COUNT(*) FROM email_references er WHERE er.application_id = job_applications.id)",
).As("email_count")

func (p *PgSQL) StoreApplication(ctx context.Context, app domain.Application) (*domain.Application, error) {
	var pgApp PgApplication
	pgApp.FromDomain(app)
	pgApp.ID = 0

	var row PgApplication
	found, err := p.Builder.Insert(applicationsTable).
		Rows(pgApp).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store application into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", applicationsTable)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ApplicationByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	var row pgApplicationWithCount
	found, err := p.Builder.From(applicationsTable).
		Select(goqu.I("job_applications.*"), emailCountExpr).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch application by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateApplication applies the non-nil fields of updates and bumps
// updated_at. Non-nil pointers to zero values clear the nullable columns.
func (p *PgSQL) UpdateApplication(ctx context.Context,
	id domain.ApplicationID,
	updates storage.ApplicationUpdates) (*domain.Application, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.CompanyName != nil {
		rec["company_name"] = *updates.CompanyName
	}
	if updates.RoleTitle != nil {
		rec["role_title"] = nullString(*updates.RoleTitle)
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.Source != nil {
		rec["source"] = nullString(*updates.Source)
	}
	if updates.AppliedAt != nil {
		rec["applied_at"] = nullableTimeValue(*updates.AppliedAt)
	}
	if updates.NextActionAt != nil {
		rec["next_action_at"] = nullableTimeValue(*updates.NextActionAt)
	}
	if updates.ConfidenceScore != nil {
		rec["confidence_score"] = *updates.ConfidenceScore
	}
	if updates.Notes != nil {
		rec["notes"] = nullString(*updates.Notes)
	}
	if updates.JobURL != nil {
		rec["job_url"] = nullString(*updates.JobURL)
	}

	var row PgApplication
	found, err := p.Builder.Update(applicationsTable).
		Set(rec).
		Where(goqu.I("id").Eq(int64(id))).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update application in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteApplication(ctx context.Context, id domain.ApplicationID) (bool, error) {
	res, err := p.Builder.Delete(applicationsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete application in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) ListApplications(ctx context.Context,
	filter storage.ApplicationFilter) (storage.ApplicationPage, error) {
	w := make([]goqu.Expression, 0, 2)
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		w = append(w, goqu.Or(
			goqu.I("company_name").ILike(term),
			goqu.I("role_title").ILike(term),
		))
	}

	total, err := p.countApplications(ctx, w)
	if err != nil {
		return storage.ApplicationPage{}, err
	}

	ds := p.Builder.From(applicationsTable).
		Select(goqu.I("job_applications.*"), emailCountExpr).
		Where(w...).
		Order(applicationOrder(filter.Sort)...).
		Limit(filter.Limit).
		Offset(filter.Offset)

	var rows []pgApplicationWithCount
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ApplicationPage{}, fmt.Errorf("could not fetch applications from pg: %w", err)
	}

	items := make([]domain.Application, 0, len(rows))
	for i := range rows {
		items = append(items, *rows[i].ToDomain())
	}

	return storage.ApplicationPage{Items: items, Total: total}, nil
}

func (p *PgSQL) countApplications(ctx context.Context, w []goqu.Expression) (int, error) {
	var total int64
	found, err := p.Builder.From(applicationsTable).
		Select(goqu.COUNT(goqu.Star())).
		Where(w...).
		Executor().ScanValContext(ctx, &total)
	if err != nil {
		return 0, fmt.Errorf("could not count applications in pg: %w", err)
	}
	if !found {
		return 0, nil
	}

	return int(total), nil
}

func applicationOrder(sort string) []exp.OrderedExpression {
	switch sort {
	case storage.SortAppliedDesc:
		return []exp.OrderedExpression{
			goqu.I("applied_at").Desc().NullsLast(),
			goqu.I("id").Desc(),
		}
	case storage.SortCompanyAsc:
		return []exp.OrderedExpression{
			goqu.I("company_name").Asc(),
			goqu.I("id").Desc(),
		}
	default:
		return []exp.OrderedExpression{
			goqu.I("updated_at").Desc(),
			goqu.I("id").Desc(),
		}
	}
}

func (p *PgSQL) AllApplications(ctx context.Context) ([]domain.Application, error) {
	var rows []PgApplication
	if err := p.Builder.From(applicationsTable).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch all applications from pg: %w", err)
	}

	apps := make([]domain.Application, 0, len(rows))
	for i := range rows {
		apps = append(apps, *rows[i].ToDomain())
	}

	return apps, nil
}

func (p *PgSQL) ApplicationKeys(ctx context.Context) (map[storage.ApplicationKey]domain.ApplicationID, error) {
	var rows []struct {
		ID          int64          `db:"id"`
		CompanyName string         `db:"company_name"`
		RoleTitle   sql.NullString `db:"role_title"`
	}
	if err := p.Builder.From(applicationsTable).
		Select(goqu.I("id"), goqu.I("company_name"), goqu.I("role_title")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch application keys from pg: %w", err)
	}

	keys := make(map[storage.ApplicationKey]domain.ApplicationID, len(rows))
	for _, row := range rows {
		keys[storage.ApplicationKey{
			Company: strings.ToLower(strings.TrimSpace(row.CompanyName)),
			Role:    strings.ToLower(strings.TrimSpace(row.RoleTitle.String)),
		}] = domain.ApplicationID(row.ID)
	}

	return keys, nil
}

func (p *PgSQL) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	if err := p.Builder.From(applicationsTable).
		Select(goqu.I("status"), goqu.COUNT(goqu.Star()).As("count")).
		GroupBy(goqu.I("status")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("could not aggregate application stats in pg: %w", err)
	}

	stats := domain.DashboardStats{ByStatus: make(map[domain.ApplicationStatus]int)}
	for _, status := range domain.ApplicationStatuses() {
		stats.ByStatus[status] = 0
	}

	for _, row := range rows {
		stats.ByStatus[domain.ApplicationStatus(row.Status)] = int(row.Count)
		stats.Total += int(row.Count)
	}

	// reply rate: share of applications with at least one linked email, as a
	// percentage rounded to one decimal
	var replied int64
	if _, err := p.Builder.From(emailsTable).
		Select(goqu.COUNT(goqu.DISTINCT(goqu.I("application_id")))).
		Where(goqu.I("application_id").IsNotNull()).
		Executor().ScanValContext(ctx, &replied); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("could not count replied applications in pg: %w", err)
	}
	if stats.Total > 0 {
		stats.ReplyRate = math.Round(float64(replied)/float64(stats.Total)*1000) / 10
	}

	return stats, nil
}

// RecentApplications returns the most recently updated applications, newest
// first, with their email counts.
func (p *PgSQL) RecentApplications(ctx context.Context, limit uint) ([]domain.Application, error) {
	var rows []pgApplicationWithCount
	if err := p.Builder.From(applicationsTable).
		Select(goqu.I("job_applications.*"), emailCountExpr).
		Order(goqu.I("updated_at").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch recent applications from pg: %w", err)
	}

	apps := make([]domain.Application, 0, len(rows))
	for i := range rows {
		apps = append(apps, *rows[i].ToDomain())
	}

	return apps, nil
}

// TouchLastEmailAt advances last_email_at monotonically; an older receivedAt
// leaves the stored value untouched.
func (p *PgSQL) TouchLastEmailAt(ctx context.Context, id domain.ApplicationID, receivedAt time.Time) error {
	_, err := p.Builder.Update(applicationsTable).
		Set(goqu.Record{
			"last_email_at": receivedAt,
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(int64(id)),
		goqu.Or(
			goqu.I("last_email_at").IsNull(),
			goqu.I("last_email_at").Lt(receivedAt),
		),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not touch last_email_at in pg: %w", err)
	}

	return nil
}

// nullableTimeValue maps the zero time to SQL NULL so callers can clear
// nullable timestamp columns.
func nullableTimeValue(t time.Time) interface{} {
	if t.IsZero() {
		return goqu.L("NULL")
	}

	return t
}
