package accounts

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/diestrin/social-media-automation/internal/auth"
	"github.com/diestrin/social-media-automation/internal/httpx"
	"github.com/diestrin/social-media-automation/internal/models"
)

// Handlers exposes the account CRUD over HTTP. Every route sits behind the
// session boundary, so the identity is always on the context.
type Handlers struct {
	svc *Service
}

// NewHandlers builds the account HTTP handlers.
func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// Create handles POST /accounts.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		httpx.ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	var in CreateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.ErrorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	view, err := h.svc.Create(r.Context(), id.ID, in)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, view)
}

// List handles GET /accounts with an optional ?type= filter.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		httpx.ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	accountType := models.AccountType(r.URL.Query().Get("type"))
	views, err := h.svc.List(r.Context(), id.ID, accountType)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, views)
}

// Get handles GET /accounts/{id}.
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		httpx.ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	view, err := h.svc.Get(r.Context(), id.ID, chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

// Update handles PATCH /accounts/{id}.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		httpx.ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	var in UpdateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.ErrorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	view, err := h.svc.Update(r.Context(), id.ID, chi.URLParam(r, "id"), in)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

// Delete handles DELETE /accounts/{id}.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		httpx.ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	if err := h.svc.Delete(r.Context(), id.ID, chi.URLParam(r, "id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Account deleted"})
}

// Verify handles POST /accounts/{id}/verify.
func (h *Handlers) Verify(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		httpx.ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	verified, err := h.svc.Verify(r.Context(), id.ID, chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"verified": verified})
}
