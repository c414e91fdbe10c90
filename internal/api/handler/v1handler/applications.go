package v1handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"jobtracker/pkg/domain"
	"jobtracker/pkg/serrors"
	"jobtracker/pkg/storage"
)

// ApplicationPage is the list response: one page of applications plus the
// unpaged total.
type ApplicationPage struct {
	Total int                  `json:"total"`
	Items []domain.Application `json:"items"`
}

// ApplicationDetail is the single-application response, including the linked
// email references.
type ApplicationDetail struct {
	domain.Application

	Emails []domain.Email `json:"emails"`
}

// ListApplications serves GET /v1/applications with filtering, search,
// sorting and paging.
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, offset, err := h.pageParams(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	filter := storage.ApplicationFilter{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Limit:  limit,
		Offset: offset,
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.ApplicationStatus(raw)
		if !status.Valid() {
			writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "invalid status %q", raw))

			return
		}
		filter.Status = status
	}

	switch sort := r.URL.Query().Get("sort"); sort {
	case storage.SortUpdatedDesc, storage.SortAppliedDesc, storage.SortCompanyAsc:
		filter.Sort = sort
	default:
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "invalid sort %q", sort))

		return
	}

	page, err := h.deps.Storage.ListApplications(ctx, filter)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if page.Items == nil {
		page.Items = []domain.Application{}
	}

	writeJSON(ctx, w, http.StatusOK, ApplicationPage{Total: page.Total, Items: page.Items})
}

// CreateApplicationRequest is the POST /v1/applications payload.
type CreateApplicationRequest struct {
	CompanyName  string     `json:"company_name"`
	RoleTitle    string     `json:"role_title"`
	Status       string     `json:"status"`
	Source       string     `json:"source"`
	AppliedAt    *time.Time `json:"applied_at"`
	NextActionAt *time.Time `json:"next_action_at"`
	Notes        string     `json:"notes"`
	JobURL       string     `json:"job_url"`
}

// CreateApplication serves POST /v1/applications.
func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	req.CompanyName = strings.TrimSpace(req.CompanyName)
	if req.CompanyName == "" {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "company_name is required"))

		return
	}

	status := domain.ApplicationStatusNew
	if req.Status != "" {
		status = domain.ApplicationStatus(req.Status)
		if !status.Valid() {
			writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "invalid status %q", req.Status))

			return
		}
	}

	app, err := h.deps.Storage.StoreApplication(ctx, domain.Application{
		CompanyName:  req.CompanyName,
		RoleTitle:    strings.TrimSpace(req.RoleTitle),
		Status:       status,
		Source:       req.Source,
		AppliedAt:    req.AppliedAt,
		NextActionAt: req.NextActionAt,
		Notes:        req.Notes,
		JobURL:       req.JobURL,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, app)
}

// GetApplication serves GET /v1/applications/{id}, returning the application
// together with its linked emails.
func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	app, err := h.deps.Storage.ApplicationByID(ctx, domain.ApplicationID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if app == nil {
		writeError(ctx, w, serrors.With(serrors.ErrNotFound, "application not found"))

		return
	}

	emails, err := h.deps.Storage.EmailsByApplication(ctx, app.ID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if emails == nil {
		emails = []domain.Email{}
	}

	writeJSON(ctx, w, http.StatusOK, ApplicationDetail{Application: *app, Emails: emails})
}

// UpdateApplication serves PATCH /v1/applications/{id}. Absent fields stay
// untouched; an explicit null clears a nullable field.
func (h *Handler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	updates, err := buildUpdates(raw)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	app, err := h.deps.Storage.UpdateApplication(ctx, domain.ApplicationID(id), updates)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if app == nil {
		writeError(ctx, w, serrors.With(serrors.ErrNotFound, "application not found"))

		return
	}

	writeJSON(ctx, w, http.StatusOK, app)
}

// buildUpdates turns the raw patch document into storage updates, keeping the
// absent / null distinction: absent fields stay nil, explicit nulls become
// zero values so the storage layer clears the column.
func buildUpdates(raw map[string]json.RawMessage) (storage.ApplicationUpdates, error) {
	var updates storage.ApplicationUpdates

	setString := func(key string, dst **string) error {
		value, ok := raw[key]
		if !ok {
			return nil
		}
		var s string
		if string(value) != "null" {
			if err := json.Unmarshal(value, &s); err != nil {
				return serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", key)
			}
		}
		*dst = &s

		return nil
	}
	setTime := func(key string, dst **time.Time) error {
		value, ok := raw[key]
		if !ok {
			return nil
		}
		var t time.Time
		if string(value) != "null" {
			if err := json.Unmarshal(value, &t); err != nil {
				return serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", key)
			}
		}
		// the zero time tells the storage layer to clear the column
		*dst = &t

		return nil
	}

	if err := setString("company_name", &updates.CompanyName); err != nil {
		return updates, err
	}
	if updates.CompanyName != nil && strings.TrimSpace(*updates.CompanyName) == "" {
		return updates, serrors.With(serrors.ErrBadRequest, "company_name cannot be empty")
	}
	if err := setString("role_title", &updates.RoleTitle); err != nil {
		return updates, err
	}
	if err := setString("source", &updates.Source); err != nil {
		return updates, err
	}
	if err := setString("notes", &updates.Notes); err != nil {
		return updates, err
	}
	if err := setString("job_url", &updates.JobURL); err != nil {
		return updates, err
	}
	if err := setTime("applied_at", &updates.AppliedAt); err != nil {
		return updates, err
	}
	if err := setTime("next_action_at", &updates.NextActionAt); err != nil {
		return updates, err
	}

	if value, ok := raw["status"]; ok {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return updates, serrors.Wrap(serrors.ErrBadRequest, err, "invalid status")
		}
		status := domain.ApplicationStatus(s)
		if !status.Valid() {
			return updates, serrors.With(serrors.ErrBadRequest, "invalid status %q", s)
		}
		updates.Status = &status
	}

	if value, ok := raw["confidence_score"]; ok {
		var score float64
		if string(value) != "null" {
			if err := json.Unmarshal(value, &score); err != nil {
				return updates, serrors.Wrap(serrors.ErrBadRequest, err, "invalid confidence_score")
			}
		}
		updates.ConfidenceScore = &score
	}

	return updates, nil
}

// DeleteApplication serves DELETE /v1/applications/{id}.
func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	deleted, err := h.deps.Storage.DeleteApplication(ctx, domain.ApplicationID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if !deleted {
		writeError(ctx, w, serrors.With(serrors.ErrNotFound, "application not found"))

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
