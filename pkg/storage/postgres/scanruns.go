package postgres

import (
	"context"
	"fmt"

	"jobtracker/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	scanRunsTable = "scan_runs"
)

func (p *PgSQL) BeginScanRun(ctx context.Context) (*domain.ScanRun, error) {
	var row PgScanRun
	found, err := p.Builder.Insert(scanRunsTable).
		Rows(PgScanRun{Status: string(domain.ScanRunStatusRunning)}).
		Returning(&PgScanRun{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not begin scan run in pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", scanRunsTable)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CompleteScanRun(ctx context.Context,
	id domain.ScanRunID,
	fetched, inserted, created int) error {
	_, err := p.Builder.Update(scanRunsTable).
		Set(goqu.Record{
			"status":          string(domain.ScanRunStatusCompleted),
			"completed_at":    goqu.L("CURRENT_TIMESTAMP"),
			"emails_fetched":  fetched,
			"emails_inserted": inserted,
			"apps_created":    created,
			"error":           goqu.L("NULL"),
		}).Where(
		goqu.I("id").Eq(int64(id)),
		goqu.I("status").Eq(string(domain.ScanRunStatusRunning)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not complete scan run in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) FailScanRun(ctx context.Context, id domain.ScanRunID, errMsg string) error {
	_, err := p.Builder.Update(scanRunsTable).
		Set(goqu.Record{
			"status":       string(domain.ScanRunStatusFailed),
			"completed_at": goqu.L("CURRENT_TIMESTAMP"),
			"error":        errMsg,
		}).Where(
		goqu.I("id").Eq(int64(id)),
		goqu.I("status").Eq(string(domain.ScanRunStatusRunning)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not fail scan run in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) RecentScanRuns(ctx context.Context, limit uint) ([]domain.ScanRun, error) {
	var rows []PgScanRun
	if err := p.Builder.From(scanRunsTable).
		Order(goqu.I("started_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scan runs from pg: %w", err)
	}

	runs := make([]domain.ScanRun, 0, len(rows))
	for i := range rows {
		runs = append(runs, *rows[i].ToDomain())
	}

	return runs, nil
}
