package v1handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"jobtracker/internal/api/handler/v1handler"
	"jobtracker/pkg/domain"
	"jobtracker/pkg/storage"
)

func TestListApplications(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().
		ListApplications(gomock.Any(), storage.ApplicationFilter{
			Status: domain.ApplicationStatusApplied,
			Search: "acme",
			Sort:   storage.SortCompanyAsc,
			Limit:  5,
			Offset: 10,
		}).
		Return(storage.ApplicationPage{
			Total: 1,
			Items: []domain.Application{{ID: 1, CompanyName: "Acme Corp"}},
		}, nil)

	rec := f.do(t, http.MethodGet,
		"/v1/applications?status=applied&search=acme&sort=company_name&limit=5&offset=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	page := decodeBody[v1handler.ApplicationPage](t, rec)
	require.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Acme Corp", page.Items[0].CompanyName)
}

func TestListApplications_Defaults(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().
		ListApplications(gomock.Any(), storage.ApplicationFilter{Limit: 20}).
		Return(storage.ApplicationPage{}, nil)

	rec := f.do(t, http.MethodGet, "/v1/applications", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// an empty page still serializes items as an array
	require.JSONEq(t, `{"total":0,"items":[]}`, rec.Body.String())
}

func TestListApplications_LimitCapped(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().
		ListApplications(gomock.Any(), storage.ApplicationFilter{Limit: 500}).
		Return(storage.ApplicationPage{}, nil)

	rec := f.do(t, http.MethodGet, "/v1/applications?limit=9999", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListApplications_InvalidParams(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/applications?status=bogus", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/v1/applications?sort=bogus", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateApplication(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().
		StoreApplication(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, app domain.Application) (*domain.Application, error) {
			require.Equal(t, "Acme Corp", app.CompanyName)
			require.Equal(t, "Software Engineer", app.RoleTitle)
			require.Equal(t, domain.ApplicationStatusApplied, app.Status)
			app.ID = 7

			return &app, nil
		})

	rec := f.do(t, http.MethodPost, "/v1/applications", map[string]any{
		"company_name": "  Acme Corp ",
		"role_title":   "Software Engineer",
		"status":       "applied",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	app := decodeBody[domain.Application](t, rec)
	require.Equal(t, domain.ApplicationID(7), app.ID)
}

func TestCreateApplication_DefaultsStatusNew(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().
		StoreApplication(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, app domain.Application) (*domain.Application, error) {
			require.Equal(t, domain.ApplicationStatusNew, app.Status)

			return &app, nil
		})

	rec := f.do(t, http.MethodPost, "/v1/applications", map[string]any{"company_name": "Globex"})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateApplication_Validation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/applications", map[string]any{"company_name": "   "})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/v1/applications", map[string]any{
		"company_name": "Acme",
		"status":       "bogus",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetApplication(t *testing.T) {
	f := newFixture(t)

	app := &domain.Application{ID: 3, CompanyName: "Acme Corp", Status: domain.ApplicationStatusNew}
	f.storage.EXPECT().ApplicationByID(gomock.Any(), domain.ApplicationID(3)).Return(app, nil)
	f.storage.EXPECT().EmailsByApplication(gomock.Any(), domain.ApplicationID(3)).
		Return([]domain.Email{{ID: 11, Subject: "Interview at Acme Corp"}}, nil)

	rec := f.do(t, http.MethodGet, "/v1/applications/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	detail := decodeBody[v1handler.ApplicationDetail](t, rec)
	require.Equal(t, "Acme Corp", detail.CompanyName)
	require.Len(t, detail.Emails, 1)
}

func TestGetApplication_NotFound(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().ApplicationByID(gomock.Any(), domain.ApplicationID(99)).Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/v1/applications/99", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetApplication_InvalidID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/applications/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/v1/applications/0", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateApplication_PartialAndNulls(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().
		UpdateApplication(gomock.Any(), domain.ApplicationID(5), gomock.Any()).
		DoAndReturn(func(_ context.Context,
			_ domain.ApplicationID, updates storage.ApplicationUpdates) (*domain.Application, error) {
			require.NotNil(t, updates.Status)
			require.Equal(t, domain.ApplicationStatusOffer, *updates.Status)

			require.NotNil(t, updates.Notes)
			require.Equal(t, "call back Monday", *updates.Notes)

			// explicit null clears the reminder with a zero value
			require.NotNil(t, updates.NextActionAt)
			require.True(t, updates.NextActionAt.IsZero())

			// absent fields stay nil
			require.Nil(t, updates.CompanyName)
			require.Nil(t, updates.RoleTitle)
			require.Nil(t, updates.AppliedAt)

			return &domain.Application{ID: 5, Status: domain.ApplicationStatusOffer}, nil
		})

	rec := f.do(t, http.MethodPatch, "/v1/applications/5", map[string]any{
		"status":         "offer",
		"notes":          "call back Monday",
		"next_action_at": nil,
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateApplication_SetsTimestamps(t *testing.T) {
	f := newFixture(t)

	applied := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	f.storage.EXPECT().
		UpdateApplication(gomock.Any(), domain.ApplicationID(5), gomock.Any()).
		DoAndReturn(func(_ context.Context,
			_ domain.ApplicationID, updates storage.ApplicationUpdates) (*domain.Application, error) {
			require.NotNil(t, updates.AppliedAt)
			require.True(t, applied.Equal(*updates.AppliedAt))

			return &domain.Application{ID: 5}, nil
		})

	rec := f.do(t, http.MethodPatch, "/v1/applications/5", map[string]any{
		"applied_at": applied.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateApplication_Validation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPatch, "/v1/applications/5", map[string]any{"status": "bogus"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPatch, "/v1/applications/5", map[string]any{"company_name": "  "})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateApplication_NotFound(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().
		UpdateApplication(gomock.Any(), domain.ApplicationID(5), gomock.Any()).
		Return(nil, nil)

	rec := f.do(t, http.MethodPatch, "/v1/applications/5", map[string]any{"notes": "x"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteApplication(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().DeleteApplication(gomock.Any(), domain.ApplicationID(5)).Return(true, nil)

	rec := f.do(t, http.MethodDelete, "/v1/applications/5", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestDeleteApplication_NotFound(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().DeleteApplication(gomock.Any(), domain.ApplicationID(5)).Return(false, nil)

	rec := f.do(t, http.MethodDelete, "/v1/applications/5", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
