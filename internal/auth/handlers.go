package auth

import (
	"net/http"
	"time"

	"github.com/diestrin/social-media-automation/internal/httpx"
)

// CookieConfig controls how the session cookie is written.
type CookieConfig struct {
	Name     string
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

// Handlers exposes the auth flow over HTTP.
type Handlers struct {
	svc    *Service
	cookie CookieConfig
}

// NewHandlers builds the auth HTTP handlers.
func NewHandlers(svc *Service, cookie CookieConfig) *Handlers {
	return &Handlers{svc: svc, cookie: cookie}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /auth/register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.ErrorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.svc.Register(r.Context(), in.Email, in.Password, in.Name)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.setSessionCookie(w, res.AccessToken)
	httpx.WriteJSON(w, http.StatusCreated, res)
}

// Login handles POST /auth/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.ErrorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.setSessionCookie(w, res.AccessToken)
	httpx.WriteJSON(w, http.StatusCreated, res)
}

// Logout handles POST /auth/logout. Tokens are stateless, so this only
// clears the cookie; an already issued bearer token stays valid until it
// expires.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me handles GET /auth/me.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		httpx.ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	user, err := h.svc.Profile(r.Context(), id.ID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]*UserView{"user": user})
}

func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
	})
}

func (h *Handlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
		MaxAge:   -1,
	})
}
