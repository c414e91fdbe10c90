package gmailrest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"jobtracker/pkg/mailbox/gmailrest"
	"jobtracker/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func writeTokenFile(t *testing.T, token string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"`+token+`"}`), 0o600))

	return path
}

type fakeGmail struct {
	t        *testing.T
	messages map[string]map[string]any
	order    []string
	pageSize int
	queries  []string
}

func (f *fakeGmail) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(f.t, "Bearer test-token", r.Header.Get("Authorization"))

		if strings.HasSuffix(r.URL.Path, "/users/me/messages") {
			f.queries = append(f.queries, r.URL.Query().Get("q"))

			pageSize := f.pageSize
			if n, err := strconv.Atoi(r.URL.Query().Get("maxResults")); err == nil && n < pageSize {
				pageSize = n
			}

			start := 0
			if tok := r.URL.Query().Get("pageToken"); tok != "" {
				for i, id := range f.order {
					if id == tok {
						start = i
					}
				}
			}
			end := start + pageSize
			if end > len(f.order) {
				end = len(f.order)
			}

			var refs []map[string]string
			for _, id := range f.order[start:end] {
				refs = append(refs, map[string]string{"id": id})
			}
			resp := map[string]any{"messages": refs}
			if end < len(f.order) {
				resp["nextPageToken"] = f.order[end]
			}
			_ = json.NewEncoder(w).Encode(resp)

			return
		}

		id := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		msg, ok := f.messages[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)

			return
		}
		_ = json.NewEncoder(w).Encode(msg)
	}
}

func gmailMessage(id, subject, from, date, snippet string) map[string]any {
	return map[string]any{
		"id":      id,
		"snippet": snippet,
		"payload": map[string]any{
			"headers": []map[string]string{
				{"name": "Subject", "value": subject},
				{"name": "From", "value": from},
				{"name": "Date", "value": date},
			},
		},
	}
}

func TestClient_FetchRecent(t *testing.T) {
	fake := &fakeGmail{
		t:        t,
		order:    []string{"m1", "m2", "m3"},
		pageSize: 2,
		messages: map[string]map[string]any{
			"m1": gmailMessage("m1", "Your application at Acme", "jobs@acme.com",
				"Mon, 2 Jun 2025 10:30:00 +0200", "Thanks for applying"),
			"m2": gmailMessage("m2", "Interview invite", "recruiting@globex.com",
				"Tue, 3 Jun 2025 08:00:00 +0000 (UTC)", "We would like to talk"),
			"m3": gmailMessage("m3", "", "", "", "no headers"),
		},
	}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := gmailrest.New(server.Client(), gmailrest.Options{
		TokenFile:       writeTokenFile(t, "test-token"),
		QueryWindowDays: 14,
		MaxMessages:     10,
		PageSize:        2,
		BaseURL:         server.URL,
	})

	messages, err := client.FetchRecent(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 3)

	require.Equal(t, "m1", messages[0].ID)
	require.Equal(t, "Your application at Acme", messages[0].Subject)
	require.Equal(t, "jobs@acme.com", messages[0].Sender)
	require.Equal(t, "Thanks for applying", messages[0].Snippet)
	require.Equal(t,
		time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC),
		messages[0].ReceivedAt)

	// comment suffix in the Date header is stripped before parsing
	require.Equal(t,
		time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC),
		messages[1].ReceivedAt)

	// missing date falls back to now
	require.WithinDuration(t, time.Now().UTC(), messages[2].ReceivedAt, time.Minute)

	// the list query carries the date window and the noise exclusions
	require.NotEmpty(t, fake.queries)
	require.Contains(t, fake.queries[0], "after:")
	require.Contains(t, fake.queries[0], `-from:connected@linkedin.com`)
}

func TestClient_FetchRecent_MaxMessagesCapsPaging(t *testing.T) {
	fake := &fakeGmail{
		t:        t,
		order:    []string{"m1", "m2", "m3", "m4"},
		pageSize: 2,
		messages: map[string]map[string]any{
			"m1": gmailMessage("m1", "a", "x@y.z", "", ""),
			"m2": gmailMessage("m2", "b", "x@y.z", "", ""),
			"m3": gmailMessage("m3", "c", "x@y.z", "", ""),
		},
	}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := gmailrest.New(server.Client(), gmailrest.Options{
		TokenFile:       writeTokenFile(t, "test-token"),
		QueryWindowDays: 7,
		MaxMessages:     3,
		PageSize:        2,
		BaseURL:         server.URL,
	})

	messages, err := client.FetchRecent(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 3)
}

func TestClient_FetchRecent_AuthErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	client := gmailrest.New(server.Client(), gmailrest.Options{
		TokenFile:       writeTokenFile(t, "test-token"),
		QueryWindowDays: 7,
		MaxMessages:     5,
		BaseURL:         server.URL,
	})

	_, err := client.FetchRecent(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestClient_FetchRecent_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := gmailrest.New(server.Client(), gmailrest.Options{
		TokenFile:       writeTokenFile(t, "test-token"),
		QueryWindowDays: 7,
		MaxMessages:     5,
		BaseURL:         server.URL,
	})

	_, err := client.FetchRecent(context.Background())
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_MissingTokenFile(t *testing.T) {
	client := gmailrest.New(nil, gmailrest.Options{
		TokenFile:       filepath.Join(t.TempDir(), "missing.json"),
		QueryWindowDays: 7,
		MaxMessages:     5,
	})

	_, err := client.FetchRecent(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}
