// Package v1handler implements the /v1 HTTP API: application CRUD, stored
// email references, dashboard stats and the scan trigger/progress endpoints.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"jobtracker/internal/config"
	"jobtracker/internal/scan"
	"jobtracker/pkg/logger"
	"jobtracker/pkg/serrors"
	"jobtracker/pkg/storage"
)

// Deps carries the dependencies the handlers operate on.
type Deps struct {
	Scanner scan.Scanner
	Storage storage.Storage
}

// Options holds the request handling knobs derived from configuration.
type Options struct {
	// DefaultLimit applies when a list request omits the limit parameter.
	DefaultLimit uint
	// MaxLimit caps the caller-supplied limit.
	MaxLimit uint
	// StreamHeartbeat is how long the scan progress stream stays silent
	// before emitting a heartbeat frame and giving up.
	StreamHeartbeat time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultLimit:    cfg.Pagination.DefaultLimit,
		MaxLimit:        cfg.Pagination.MaxLimit,
		StreamHeartbeat: cfg.Scanner.StreamHeartbeat,
	}
}

// Handler serves the /v1 routes.
type Handler struct {
	deps Deps
	opts Options
}

// New creates a Handler with the given dependencies.
func New(deps Deps, opts Options) *Handler {
	if opts.DefaultLimit == 0 {
		opts.DefaultLimit = 20
	}
	if opts.MaxLimit == 0 {
		opts.MaxLimit = 500
	}
	if opts.StreamHeartbeat == 0 {
		opts.StreamHeartbeat = time.Minute
	}

	return &Handler{deps: deps, opts: opts}
}

// Register installs every /v1 route on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/applications", h.ListApplications)
	mux.HandleFunc("POST /v1/applications", h.CreateApplication)
	mux.HandleFunc("GET /v1/applications/{id}", h.GetApplication)
	mux.HandleFunc("PATCH /v1/applications/{id}", h.UpdateApplication)
	mux.HandleFunc("DELETE /v1/applications/{id}", h.DeleteApplication)
	mux.HandleFunc("POST /v1/applications/{id}/emails/{emailID}", h.AssignEmail)
	mux.HandleFunc("DELETE /v1/applications/{id}/emails/{emailID}", h.UnassignEmail)
	mux.HandleFunc("GET /v1/emails", h.ListEmails)
	mux.HandleFunc("GET /v1/stats", h.Stats)
	mux.HandleFunc("POST /v1/scan", h.TriggerScan)
	mux.HandleFunc("GET /v1/scan/progress", h.ScanProgress)
	mux.HandleFunc("GET /v1/scan/history", h.ScanHistory)
}

// ErrorResponse is the JSON error envelope of every non-2xx response.
type ErrorResponse struct {
	// Code is the semantic error category.
	Code string `json:"code"`
	// Message is a human-readable description.
	Message string `json:"message"`
}

// statusFor maps a semantic error to its HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as the JSON envelope. Unclassified errors are logged
// and reported as a generic internal error so no detail leaks. Rate-limited
// errors additionally carry a Retry-After header.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		writeJSON(ctx, w, status, ErrorResponse{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		})

		return
	}

	resp := ErrorResponse{Message: err.Error()}

	var (
		sErr *serrors.Error
		kind serrors.Kind
	)
	switch {
	case errors.As(err, &sErr) && sErr.Kind() != nil:
		resp.Code = sErr.Kind().Error()
	case errors.As(err, &kind):
		resp.Code = kind.Error()
	default:
		resp.Code = serrors.ErrBadRequest.Error()
	}

	var rateLimited *scan.RateLimitedError
	if errors.As(err, &rateLimited) {
		resp.Code = serrors.ErrRateLimited.Error()
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(rateLimited.RetryAfter.Seconds()))))
	}

	writeJSON(ctx, w, status, resp)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

// pathID parses the named integer path segment, returning a bad-request
// error when it is missing or malformed.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid %s", name)
	}

	return id, nil
}

// pageParams parses limit and offset query parameters, applying the
// configured default and cap.
func (h *Handler) pageParams(r *http.Request) (limit, offset uint, err error) {
	limit = h.opts.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, parseErr := strconv.ParseUint(raw, 10, 32)
		if parseErr != nil || n == 0 {
			return 0, 0, serrors.With(serrors.ErrBadRequest, "invalid limit")
		}
		limit = uint(n)
		if limit > h.opts.MaxLimit {
			limit = h.opts.MaxLimit
		}
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, parseErr := strconv.ParseUint(raw, 10, 32)
		if parseErr != nil {
			return 0, 0, serrors.With(serrors.ErrBadRequest, "invalid offset")
		}
		offset = uint(n)
	}

	return limit, offset, nil
}
