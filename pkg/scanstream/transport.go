package scanstream

import (
	"bufio"
	"context"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
)

// Stream delivers the data payloads of one SSE connection in order.
type Stream interface {
	// Next blocks until the next event's data payload arrives. It returns
	// an error once the stream is closed or broken.
	Next() (string, error)
	// Close terminates the stream. A blocked Next call returns with an
	// error afterwards.
	Close() error
}

// Transport opens scan-progress streams. The default implementation speaks
// SSE over HTTP; tests substitute in-memory streams.
type Transport interface {
	Dial(ctx context.Context, url string) (Stream, error)
}

// HTTPTransport dials SSE endpoints with an http.Client.
type HTTPTransport struct {
	Client *http.Client
}

// NewHTTPTransport returns a transport using the given client, or
// http.DefaultClient when nil. The client must not enforce an overall
// request timeout; streams stay open for the whole scan.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPTransport{Client: client}
}

func (t *HTTPTransport) Dial(ctx context.Context, url string) (Stream, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not build stream request")
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := t.Client.Do(req) //nolint: bodyclose
	if err != nil {
		return nil, errors.Wrap(err, "could not open stream")
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()

		return nil, errors.Errorf("unexpected stream status %d", resp.StatusCode)
	}

	return &httpStream{
		resp:   resp,
		reader: bufio.NewReader(resp.Body),
	}, nil
}

type httpStream struct {
	resp   *http.Response
	reader *bufio.Reader
}

// Next reads one SSE event and returns its data payload. Multiple data
// fields are joined with newlines; comment lines and unknown fields are
// skipped. An event without any data field is not dispatched.
func (s *httpStream) Next() (string, error) {
	var (
		data    []string
		hasData bool
	)
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return "", errors.Wrap(err, "stream read")
		}
		line = strings.TrimRight(line, "\r\n")

		if line == "" {
			// blank line dispatches the accumulated event
			if hasData {
				return strings.Join(data, "\n"), nil
			}

			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")
		if field == "data" {
			data = append(data, value)
			hasData = true
		}
	}
}

func (s *httpStream) Close() error {
	return s.resp.Body.Close() //nolint: wrapcheck
}
