package v1handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"jobtracker/internal/api/handler/v1handler"
	"jobtracker/internal/scan"
	mockscan "jobtracker/internal/scan/mock"
	"jobtracker/pkg/domain"
	"jobtracker/pkg/logger"
	"jobtracker/pkg/serrors"
	mockstorage "jobtracker/pkg/storage/mock"
)

func domainStatsZero() domain.DashboardStats {
	return domain.DashboardStats{}
}

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fixture struct {
	mux     *http.ServeMux
	storage *mockstorage.MockStorage
	scanner *mockscan.MockScanner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := mockstorage.NewMockStorage(ctrl)
	scanner := mockscan.NewMockScanner(ctrl)

	h := v1handler.New(v1handler.Deps{Scanner: scanner, Storage: store}, v1handler.Options{
		DefaultLimit:    20,
		MaxLimit:        500,
		StreamHeartbeat: time.Second,
	})
	mux := http.NewServeMux()
	h.Register(mux)

	return &fixture{mux: mux, storage: store, scanner: scanner}
}

func (f *fixture) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, httptest.NewRequest(method, target, reader))

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestWriteError_KindMapping(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        serrors.With(serrors.ErrNotFound, "application not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unauthorized",
			err:        serrors.With(serrors.ErrUnauthorized, "invalid token"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "bare kind sentinel",
			err:        serrors.ErrConflict,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "unavailable",
			err:        serrors.KindOnly(serrors.ErrUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "UNAVAILABLE",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f.storage.EXPECT().DashboardStats(gomock.Any()).
				Return(domainStatsZero(), tc.err)

			rec := f.do(t, http.MethodGet, "/v1/stats", nil)
			require.Equal(t, tc.wantStatus, rec.Code)

			resp := decodeBody[v1handler.ErrorResponse](t, rec)
			require.Equal(t, tc.wantCode, resp.Code)
			require.NotEmpty(t, resp.Message)
		})
	}
}

func TestWriteError_InternalHidesDetail(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().DashboardStats(gomock.Any()).
		Return(domainStatsZero(), io.ErrUnexpectedEOF)

	rec := f.do(t, http.MethodGet, "/v1/stats", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeBody[v1handler.ErrorResponse](t, rec)
	require.Equal(t, "INTERNAL", resp.Code)
	require.Equal(t, "internal error", resp.Message)
	require.NotContains(t, rec.Body.String(), "unexpected EOF")
}

func TestWriteError_RateLimitedSetsRetryAfter(t *testing.T) {
	f := newFixture(t)

	f.scanner.EXPECT().Enqueue(gomock.Any()).
		Return(false, &scan.RateLimitedError{RetryAfter: 42500 * time.Millisecond})

	rec := f.do(t, http.MethodPost, "/v1/scan", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "43", rec.Header().Get("Retry-After"))

	resp := decodeBody[v1handler.ErrorResponse](t, rec)
	require.Equal(t, "RATE_LIMITED", resp.Code)
}

func TestPageParams_Validation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/emails?limit=0", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/v1/emails?limit=abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/v1/emails?offset=-1", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
