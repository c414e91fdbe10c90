package postgres_test

import (
	"context"
	"testing"
	"time"

	"jobtracker/pkg/domain"
	"jobtracker/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreApplication_RoundTrip(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	appliedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	score := 8.5

	stored := mustStoreApplication(t, pg, domain.Application{
		CompanyName:     "Acme",
		RoleTitle:       "Backend Engineer",
		Status:          domain.ApplicationStatusApplied,
		Source:          "referral",
		AppliedAt:       &appliedAt,
		ConfidenceScore: &score,
		Notes:           "intro call next week",
		JobURL:          "https://acme.example/jobs/42",
	})

	require.NotZero(t, stored.ID)
	require.False(t, stored.CreatedAt.IsZero())
	require.False(t, stored.UpdatedAt.IsZero())

	got, err := pg.ApplicationByID(context.Background(), stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Acme", got.CompanyName)
	require.Equal(t, "Backend Engineer", got.RoleTitle)
	require.Equal(t, domain.ApplicationStatusApplied, got.Status)
	require.Equal(t, "referral", got.Source)
	require.NotNil(t, got.AppliedAt)
	require.True(t, got.AppliedAt.Equal(appliedAt))
	require.NotNil(t, got.ConfidenceScore)
	require.InDelta(t, 8.5, *got.ConfidenceScore, 0.001)
	require.Equal(t, 0, got.EmailCount)
}

func TestPgSQL_ApplicationByID_NotFound(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	got, err := pg.ApplicationByID(context.Background(), 12345)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_UpdateApplication_PartialAndClear(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	appliedAt := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	stored := mustStoreApplication(t, pg, domain.Application{
		CompanyName: "Globex",
		RoleTitle:   "SRE",
		Status:      domain.ApplicationStatusNew,
		AppliedAt:   &appliedAt,
	})

	newStatus := domain.ApplicationStatusInterviewing
	newNotes := "onsite scheduled"
	updated, err := pg.UpdateApplication(ctx, stored.ID, storage.ApplicationUpdates{
		Status: &newStatus,
		Notes:  &newNotes,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, domain.ApplicationStatusInterviewing, updated.Status)
	require.Equal(t, "onsite scheduled", updated.Notes)
	// untouched fields survive
	require.Equal(t, "Globex", updated.CompanyName)
	require.Equal(t, "SRE", updated.RoleTitle)
	require.NotNil(t, updated.AppliedAt)

	// a zero time clears the nullable column
	var zero time.Time
	cleared, err := pg.UpdateApplication(ctx, stored.ID, storage.ApplicationUpdates{
		AppliedAt: &zero,
	})
	require.NoError(t, err)
	require.NotNil(t, cleared)
	require.Nil(t, cleared.AppliedAt)
	require.True(t, cleared.UpdatedAt.After(stored.UpdatedAt) || cleared.UpdatedAt.Equal(stored.UpdatedAt))
}

func TestPgSQL_UpdateApplication_NotFound(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	notes := "nobody home"
	updated, err := pg.UpdateApplication(context.Background(), 99999, storage.ApplicationUpdates{
		Notes: &notes,
	})
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestPgSQL_DeleteApplication(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	stored := mustStoreApplication(t, pg, domain.Application{
		CompanyName: "Initech",
		Status:      domain.ApplicationStatusNew,
	})
	email := mustStoreEmail(t, pg, domain.Email{
		MessageID:     "msg-del-1",
		Subject:       "Your application",
		ReceivedAt:    time.Now().UTC(),
		ApplicationID: &stored.ID,
	})

	deleted, err := pg.DeleteApplication(ctx, stored.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := pg.ApplicationByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	// linked email survives, unlinked
	unlinked, err := pg.UnlinkedEmails(ctx)
	require.NoError(t, err)
	require.Len(t, unlinked, 1)
	require.Equal(t, email.MessageID, unlinked[0].MessageID)

	// second delete reports false
	deleted, err = pg.DeleteApplication(ctx, stored.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestPgSQL_ListApplications_FilterSearchSort(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	mustStoreApplication(t, pg, domain.Application{
		CompanyName: "Acme", RoleTitle: "Backend Engineer", Status: domain.ApplicationStatusApplied,
	})
	mustStoreApplication(t, pg, domain.Application{
		CompanyName: "Globex", RoleTitle: "Platform Engineer", Status: domain.ApplicationStatusInterviewing,
	})
	mustStoreApplication(t, pg, domain.Application{
		CompanyName: "Initech", RoleTitle: "Data Analyst", Status: domain.ApplicationStatusApplied,
	})

	// status filter
	page, err := pg.ListApplications(ctx, storage.ApplicationFilter{
		Status: domain.ApplicationStatusApplied,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	require.Len(t, page.Items, 2)

	// case-insensitive search across company and role
	page, err = pg.ListApplications(ctx, storage.ApplicationFilter{
		Search: "engineer",
		Limit:  10,
	})
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)

	page, err = pg.ListApplications(ctx, storage.ApplicationFilter{
		Search: "glob",
		Limit:  10,
	})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	require.Equal(t, "Globex", page.Items[0].CompanyName)

	// company sort
	page, err = pg.ListApplications(ctx, storage.ApplicationFilter{
		Sort:  storage.SortCompanyAsc,
		Limit: 10,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	require.Equal(t, "Acme", page.Items[0].CompanyName)
	require.Equal(t, "Globex", page.Items[1].CompanyName)
	require.Equal(t, "Initech", page.Items[2].CompanyName)

	// paging keeps the unpaged total
	page, err = pg.ListApplications(ctx, storage.ApplicationFilter{
		Sort:  storage.SortCompanyAsc,
		Limit: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 2)

	page, err = pg.ListApplications(ctx, storage.ApplicationFilter{
		Sort:   storage.SortCompanyAsc,
		Limit:  2,
		Offset: 2,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Initech", page.Items[0].CompanyName)
}

func TestPgSQL_ApplicationKeys(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	acme := mustStoreApplication(t, pg, domain.Application{
		CompanyName: "  Acme  ", RoleTitle: "Backend Engineer", Status: domain.ApplicationStatusNew,
	})
	globex := mustStoreApplication(t, pg, domain.Application{
		CompanyName: "Globex", Status: domain.ApplicationStatusNew,
	})

	keys, err := pg.ApplicationKeys(ctx)
	require.NoError(t, err)
	require.Equal(t, acme.ID, keys[storage.ApplicationKey{Company: "acme", Role: "backend engineer"}])
	require.Equal(t, globex.ID, keys[storage.ApplicationKey{Company: "globex", Role: ""}])
}

func TestPgSQL_DashboardStats(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// empty database: zeroed stats for every status
	stats, err := pg.DashboardStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, stats.Total)
	require.Zero(t, stats.ReplyRate)
	require.Len(t, stats.ByStatus, len(domain.ApplicationStatuses()))

	apps := make([]*domain.Application, 0, 3)
	for _, status := range []domain.ApplicationStatus{
		domain.ApplicationStatusNew, domain.ApplicationStatusApplied, domain.ApplicationStatusInterviewing,
	} {
		apps = append(apps, mustStoreApplication(t, pg, domain.Application{CompanyName: "C", Status: status}))
	}

	// two of the three applications have linked emails; multiple emails on
	// one application still count it once
	mustStoreEmail(t, pg, domain.Email{
		MessageID: "msg-stats-1", ReceivedAt: time.Now().UTC(), ApplicationID: &apps[1].ID,
	})
	mustStoreEmail(t, pg, domain.Email{
		MessageID: "msg-stats-2", ReceivedAt: time.Now().UTC(), ApplicationID: &apps[1].ID,
	})
	mustStoreEmail(t, pg, domain.Email{
		MessageID: "msg-stats-3", ReceivedAt: time.Now().UTC(), ApplicationID: &apps[2].ID,
	})
	// unlinked emails never count
	mustStoreEmail(t, pg, domain.Email{
		MessageID: "msg-stats-4", ReceivedAt: time.Now().UTC(),
	})

	stats, err = pg.DashboardStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 1, stats.ByStatus[domain.ApplicationStatusNew])
	require.Equal(t, 1, stats.ByStatus[domain.ApplicationStatusApplied])
	require.Equal(t, 1, stats.ByStatus[domain.ApplicationStatusInterviewing])
	require.Equal(t, 0, stats.ByStatus[domain.ApplicationStatusRejected])
	// 2 of 3 applications replied: 66.666...% rounds to 66.7
	require.InDelta(t, 66.7, stats.ReplyRate, 0.001)
}

func TestPgSQL_RecentApplications(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	first := mustStoreApplication(t, pg, domain.Application{
		CompanyName: "Acme", Status: domain.ApplicationStatusApplied,
	})
	second := mustStoreApplication(t, pg, domain.Application{
		CompanyName: "Globex", Status: domain.ApplicationStatusNew,
	})
	mustStoreEmail(t, pg, domain.Email{
		MessageID: "msg-recent-1", ReceivedAt: time.Now().UTC(), ApplicationID: &first.ID,
	})

	// updating bumps updated_at, moving the row to the front
	notes := "followed up"
	_, err := pg.UpdateApplication(ctx, first.ID, storage.ApplicationUpdates{Notes: &notes})
	require.NoError(t, err)

	recent, err := pg.RecentApplications(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, first.ID, recent[0].ID)
	require.Equal(t, second.ID, recent[1].ID)
	require.Equal(t, 1, recent[0].EmailCount)

	recent, err = pg.RecentApplications(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, first.ID, recent[0].ID)
}

func TestPgSQL_TouchLastEmailAt_Monotonic(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	stored := mustStoreApplication(t, pg, domain.Application{
		CompanyName: "Acme", Status: domain.ApplicationStatusApplied,
	})

	first := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, pg.TouchLastEmailAt(ctx, stored.ID, first))

	got, err := pg.ApplicationByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastEmailAt)
	require.True(t, got.LastEmailAt.Equal(first))

	// older timestamp never moves it backwards
	older := first.Add(-24 * time.Hour)
	require.NoError(t, pg.TouchLastEmailAt(ctx, stored.ID, older))

	got, err = pg.ApplicationByID(ctx, stored.ID)
	require.NoError(t, err)
	require.True(t, got.LastEmailAt.Equal(first))

	// newer timestamp advances it
	newer := first.Add(48 * time.Hour)
	require.NoError(t, pg.TouchLastEmailAt(ctx, stored.ID, newer))

	got, err = pg.ApplicationByID(ctx, stored.ID)
	require.NoError(t, err)
	require.True(t, got.LastEmailAt.Equal(newer))
}
