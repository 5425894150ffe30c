package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/diestrin/social-media-automation/internal/httpx"
)

// Identity is the minimal authenticated caller attached to the request
// context by the session boundary.
type Identity struct {
	ID    string
	Email string
}

type contextKey struct{}

var identityKey contextKey

// IdentityFrom returns the authenticated identity, if any.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// WithIdentity returns a context carrying the given identity. Exported for
// handler tests that bypass the middleware.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// Middleware is the session boundary. Extraction order is deterministic:
// a bearer token in the Authorization header wins; the auth cookie is the
// fallback. Requests with a missing, malformed, expired or tampered token
// are rejected with 401.
func Middleware(issuer *TokenIssuer, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFromRequest(r, cookieName)
			if raw == "" {
				httpx.ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
				return
			}
			claims, err := issuer.Verify(raw)
			if err != nil {
				httpx.ErrorJSON(w, http.StatusUnauthorized, "unauthenticated")
				return
			}
			ctx := WithIdentity(r.Context(), Identity{ID: claims.UserID, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if tok, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(tok)
		}
		// A non-bearer Authorization header never falls through to the cookie.
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}
