package v1handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"jobtracker/internal/scan"
	"jobtracker/pkg/domain"
	"jobtracker/pkg/logger"
	"jobtracker/pkg/metrics"
	"jobtracker/pkg/serrors"
)

// TriggerScanResponse is the POST /v1/scan payload. Queued is false when an
// identical scan job was already pending.
type TriggerScanResponse struct {
	Queued bool `json:"queued"`
}

// TriggerScan serves POST /v1/scan: it enqueues a background scan job and
// returns immediately.
func (h *Handler) TriggerScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	queued, err := h.deps.Scanner.Enqueue(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusAccepted, TriggerScanResponse{Queued: queued})
}

// progressEvent is one frame on the scan progress stream.
type progressEvent struct {
	Stage  string `json:"stage"`
	Detail string `json:"detail"`
}

// resultEvent is the terminal frame of a successful scan: the result stage
// tag with the scan counters spread alongside it.
type resultEvent struct {
	progressEvent

	scan.Result
}

// ScanProgress serves GET /v1/scan/progress: it runs a scan inline and
// streams its stage transitions as server-sent events. The stream always
// ends with a terminal result or error frame; when the scan stays silent for
// the heartbeat interval an empty frame is sent and the stream is closed.
func (h *Handler) ScanProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(ctx, w, serrors.With(serrors.ErrUnavailable, "streaming unsupported"))

		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	type frame struct {
		payload  any
		terminal bool
	}

	metrics.ScansStarted.WithLabelValues("stream").Inc()

	// progress callbacks must never block the pipeline; frames that do not
	// fit the buffer are dropped, the terminal frame never is.
	frames := make(chan frame, 64)
	go func() {
		result, err := h.deps.Scanner.Run(ctx, func(stage, detail string) {
			select {
			case frames <- frame{payload: progressEvent{Stage: stage, Detail: detail}}:
			default:
			}
		})

		terminal := frame{terminal: true}
		if err != nil {
			terminal.payload = progressEvent{Stage: "error", Detail: err.Error()}
		} else {
			terminal.payload = resultEvent{
				progressEvent: progressEvent{Stage: "result"},
				Result:        result,
			}
		}
		select {
		case frames <- terminal:
		case <-ctx.Done():
		}
	}()

	for {
		timer := time.NewTimer(h.opts.StreamHeartbeat)

		select {
		case next := <-frames:
			timer.Stop()
			if err := writeSSE(w, next.payload); err != nil {
				logger.Warn(ctx, "could not write progress frame", zap.Error(err))

				return
			}
			flusher.Flush()
			if next.terminal {
				return
			}
		case <-timer.C:
			// silent scan: emit a heartbeat so the client knows the
			// connection is alive, then give up on this attempt
			fmt.Fprint(w, "data: {}\n\n")
			flusher.Flush()

			return
		case <-ctx.Done():
			timer.Stop()

			return
		}
	}
}

func writeSSE(w http.ResponseWriter, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not encode progress event: %w", err)
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return fmt.Errorf("could not write progress event: %w", err)
	}

	return nil
}

// ScanHistoryResponse is the GET /v1/scan/history payload.
type ScanHistoryResponse struct {
	Items []domain.ScanRun `json:"items"`
}

// ScanHistory serves GET /v1/scan/history, newest runs first.
func (h *Handler) ScanHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := h.opts.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || n == 0 {
			writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "invalid limit"))

			return
		}
		limit = uint(n)
		if limit > h.opts.MaxLimit {
			limit = h.opts.MaxLimit
		}
	}

	runs, err := h.deps.Scanner.History(ctx, limit)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if runs == nil {
		runs = []domain.ScanRun{}
	}

	writeJSON(ctx, w, http.StatusOK, ScanHistoryResponse{Items: runs})
}
