package postgres_test

import (
	"context"
	"testing"

	"jobtracker/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_ScanRun_CompleteLifecycle(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	run, err := pg.BeginScanRun(ctx)
	require.NoError(t, err)
	require.NotZero(t, run.ID)
	require.Equal(t, domain.ScanRunStatusRunning, run.Status)
	require.False(t, run.StartedAt.IsZero())
	require.Nil(t, run.CompletedAt)

	require.NoError(t, pg.CompleteScanRun(ctx, run.ID, 25, 7, 2))

	runs, err := pg.RecentScanRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, domain.ScanRunStatusCompleted, runs[0].Status)
	require.NotNil(t, runs[0].CompletedAt)
	require.NotNil(t, runs[0].EmailsFetched)
	require.Equal(t, 25, *runs[0].EmailsFetched)
	require.Equal(t, 7, *runs[0].EmailsInserted)
	require.Equal(t, 2, *runs[0].AppsCreated)
	require.Empty(t, runs[0].Error)

	// finalizing twice is a no-op; the run stays completed
	require.NoError(t, pg.FailScanRun(ctx, run.ID, "late failure"))

	runs, err = pg.RecentScanRuns(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, domain.ScanRunStatusCompleted, runs[0].Status)
}

func TestPgSQL_ScanRun_FailLifecycle(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	run, err := pg.BeginScanRun(ctx)
	require.NoError(t, err)

	require.NoError(t, pg.FailScanRun(ctx, run.ID, "mailbox unavailable"))

	runs, err := pg.RecentScanRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, domain.ScanRunStatusFailed, runs[0].Status)
	require.Equal(t, "mailbox unavailable", runs[0].Error)
	require.NotNil(t, runs[0].CompletedAt)
	require.Nil(t, runs[0].EmailsFetched)
}

func TestPgSQL_RecentScanRuns_OrderAndLimit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	var ids []domain.ScanRunID
	for range 3 {
		run, err := pg.BeginScanRun(ctx)
		require.NoError(t, err)
		ids = append(ids, run.ID)
	}

	runs, err := pg.RecentScanRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// newest first; identical timestamps fall back to id ordering
	require.Equal(t, ids[2], runs[0].ID)
	require.Equal(t, ids[1], runs[1].ID)
}
