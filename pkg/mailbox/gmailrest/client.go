// Package gmailrest provides a mailbox.Client implementation backed by the
// Gmail REST API.
package gmailrest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"jobtracker/pkg/mailbox"
	"jobtracker/pkg/serrors"
)

const defaultBaseURL = "https://gmail.googleapis.com/gmail/v1"

// query exclusions keep LinkedIn social noise out of the scan window.
const queryExclusions = ` -subject:"wants to connect"` +
	` -subject:"accepted your invitation"` +
	` -subject:"joined your network"` +
	` -subject:"now following you"` +
	` -subject:"You have a new message"` +
	` -from:connected@linkedin.com` +
	` -from:invitations@linkedin.com`

// Options configures the Gmail client.
type Options struct {
	// TokenFile is the path of an authorized-user token file; its access
	// token authenticates every request.
	TokenFile string
	// User is the mailbox to read; defaults to "me".
	User string
	// QueryWindowDays bounds how far back messages are fetched; minimum 1.
	QueryWindowDays int
	// MaxMessages caps the total number of fetched messages; minimum 1.
	MaxMessages int
	// PageSize is the list page size, capped at MaxMessages.
	PageSize int
	// BaseURL overrides the Gmail API endpoint; used by tests.
	BaseURL string
}

// Client talks to the Gmail REST API and fulfills the mailbox.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
	baseURL    string
	user       string
}

// New constructs a Client using the provided http.Client.
func New(httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if opts.QueryWindowDays < 1 {
		opts.QueryWindowDays = 1
	}
	if opts.MaxMessages < 1 {
		opts.MaxMessages = 1
	}
	if opts.PageSize < 1 || opts.PageSize > opts.MaxMessages {
		opts.PageSize = opts.MaxMessages
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	user := opts.User
	if user == "" {
		user = "me"
	}

	return &Client{
		httpClient: httpClient,
		opts:       opts,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		user:       user,
	}
}

// FetchRecent lists message IDs inside the date window, then fetches each
// message's metadata (Subject, From, Date headers plus snippet).
func (c *Client) FetchRecent(ctx context.Context) ([]mailbox.Message, error) {
	token, err := c.accessToken()
	if err != nil {
		return nil, err
	}

	ids, err := c.listMessageIDs(ctx, token)
	if err != nil {
		return nil, err
	}

	messages := make([]mailbox.Message, 0, len(ids))
	for _, id := range ids {
		msg, err := c.getMessage(ctx, token, id)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// accessToken reads the access token from the authorized-user token file.
func (c *Client) accessToken() (string, error) {
	if c.opts.TokenFile == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "gmail token file is not configured")
	}
	b, err := os.ReadFile(c.opts.TokenFile)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "could not read gmail token file")
	}

	var tokenFile struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(b, &tokenFile); err != nil {
		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "could not decode gmail token file")
	}
	if tokenFile.Token == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "gmail token file has no access token")
	}

	return tokenFile.Token, nil
}

func (c *Client) listMessageIDs(ctx context.Context, token string) ([]string, error) {
	var (
		ids       []string
		pageToken string
	)
	for len(ids) < c.opts.MaxMessages {
		pageSize := c.opts.PageSize
		if remaining := c.opts.MaxMessages - len(ids); pageSize > remaining {
			pageSize = remaining
		}

		q := url.Values{}
		q.Set("q", c.dateQuery())
		q.Set("maxResults", strconv.Itoa(pageSize))
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var listResp struct {
			Messages []struct {
				ID string `json:"id"`
			} `json:"messages"`
			NextPageToken string `json:"nextPageToken"`
		}
		endpoint := fmt.Sprintf("%s/users/%s/messages?%s", c.baseURL, url.PathEscape(c.user), q.Encode())
		if err := c.getJSON(ctx, token, endpoint, &listResp); err != nil {
			return nil, err
		}

		for _, msg := range listResp.Messages {
			ids = append(ids, msg.ID)
		}
		pageToken = listResp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return ids, nil
}

func (c *Client) getMessage(ctx context.Context, token, id string) (mailbox.Message, error) {
	q := url.Values{}
	q.Set("format", "metadata")
	q.Set("fields", "id,payload/headers,snippet")
	q.Add("metadataHeaders", "Subject")
	q.Add("metadataHeaders", "From")
	q.Add("metadataHeaders", "Date")

	var msgResp struct {
		ID      string `json:"id"`
		Snippet string `json:"snippet"`
		Payload struct {
			Headers []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"headers"`
		} `json:"payload"`
	}
	endpoint := fmt.Sprintf("%s/users/%s/messages/%s?%s",
		c.baseURL, url.PathEscape(c.user), url.PathEscape(id), q.Encode())
	if err := c.getJSON(ctx, token, endpoint, &msgResp); err != nil {
		return mailbox.Message{}, err
	}

	headers := make(map[string]string, len(msgResp.Payload.Headers))
	for _, h := range msgResp.Payload.Headers {
		headers[strings.ToLower(h.Name)] = h.Value
	}

	return mailbox.Message{
		ID:         msgResp.ID,
		Subject:    headers["subject"],
		Sender:     headers["from"],
		Snippet:    msgResp.Snippet,
		ReceivedAt: parseDate(headers["date"]),
	}, nil
}

func (c *Client) getJSON(ctx context.Context, token, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return serrors.With(serrors.ErrUnauthorized, "gmail auth failed: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode == http.StatusTooManyRequests:
		return serrors.With(serrors.ErrRateLimited, "gmail rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode >= 500:
		return serrors.With(serrors.ErrUnavailable, "gmail unavailable: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("gmail request failed: %s", strings.TrimSpace(string(b)))
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

// dateQuery builds the Gmail search query for the configured window.
func (c *Client) dateQuery() string {
	after := time.Now().UTC().AddDate(0, 0, -c.opts.QueryWindowDays)

	return "after:" + after.Format("2006-01-02") + queryExclusions
}

var (
	dateCommentRe = regexp.MustCompile(`\s+\([^)]+\)$`)
	dateGMTRe     = regexp.MustCompile(`\s+GMT$`)
	dateUTRe      = regexp.MustCompile(`\bUT$`)
)

// parseDate normalizes RFC 2822 style Date headers, falling back to the
// current time when the header is missing or unparsable.
func parseDate(raw string) time.Time {
	if raw == "" {
		return time.Now().UTC()
	}

	cleaned := strings.TrimSpace(raw)
	cleaned = dateCommentRe.ReplaceAllString(cleaned, "")
	cleaned = dateGMTRe.ReplaceAllString(cleaned, " +0000")
	cleaned = dateUTRe.ReplaceAllString(cleaned, "+0000")

	for _, layout := range []string{
		"Mon, 2 Jan 2006 15:04:05 -0700",
		"2 Jan 2006 15:04:05 -0700",
		time.RFC3339,
	} {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return parsed.UTC()
		}
	}

	return time.Now().UTC()
}

// Ensure Client conforms to the mailbox.Client interface at compile time.
var _ mailbox.Client = (*Client)(nil)
