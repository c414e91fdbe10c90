package v1handler

import "net/http"

// Stats serves GET /v1/stats: the dashboard aggregates.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.deps.Storage.DashboardStats(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, stats)
}
