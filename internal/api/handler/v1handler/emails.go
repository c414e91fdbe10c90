package v1handler

import (
	"net/http"

	"jobtracker/pkg/domain"
	"jobtracker/pkg/serrors"
)

// EmailPage is the list response: one page of email references plus the
// unpaged total.
type EmailPage struct {
	Total int            `json:"total"`
	Items []domain.Email `json:"items"`
}

// ListEmails serves GET /v1/emails, newest first.
func (h *Handler) ListEmails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, offset, err := h.pageParams(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	page, err := h.deps.Storage.ListEmails(ctx, limit, offset)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if page.Items == nil {
		page.Items = []domain.Email{}
	}

	writeJSON(ctx, w, http.StatusOK, EmailPage{Total: page.Total, Items: page.Items})
}

// AssignEmailResponse is the manual link response.
type AssignEmailResponse struct {
	Assigned bool `json:"assigned"`
}

// AssignEmail serves POST /v1/applications/{id}/emails/{emailID}: it links an
// email to an application by hand.
func (h *Handler) AssignEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appID, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	emailID, err := pathID(r, "emailID")
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	linked, err := h.deps.Storage.LinkEmail(ctx, domain.EmailID(emailID), domain.ApplicationID(appID))
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if !linked {
		writeError(ctx, w, serrors.With(serrors.ErrNotFound, "application or email not found"))

		return
	}

	writeJSON(ctx, w, http.StatusOK, AssignEmailResponse{Assigned: true})
}

// UnassignEmailResponse is the manual unlink response.
type UnassignEmailResponse struct {
	Unassigned bool `json:"unassigned"`
}

// UnassignEmail serves DELETE /v1/applications/{id}/emails/{emailID}.
func (h *Handler) UnassignEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appID, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	emailID, err := pathID(r, "emailID")
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	unlinked, err := h.deps.Storage.UnlinkEmail(ctx, domain.EmailID(emailID), domain.ApplicationID(appID))
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if !unlinked {
		writeError(ctx, w, serrors.With(serrors.ErrNotFound, "application or email not found"))

		return
	}

	writeJSON(ctx, w, http.StatusOK, UnassignEmailResponse{Unassigned: true})
}
