package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "auth_token"

func guardedEcho(t *testing.T, iss *TokenIssuer) http.Handler {
	t.Helper()
	return Middleware(iss, testCookieName)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFrom(r.Context())
		require.True(t, ok)
		w.Header().Set("X-User", id.ID)
		w.Header().Set("X-Email", id.Email)
		w.WriteHeader(http.StatusOK)
	}))
}

func TestMiddlewareBearerToken(t *testing.T) {
	iss := newTestIssuer(t, time.Hour)
	tok, err := iss.Issue("user-123", "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	guardedEcho(t, iss).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", rec.Header().Get("X-User"))
	assert.Equal(t, "a@x.com", rec.Header().Get("X-Email"))
}

func TestMiddlewareCookieFallback(t *testing.T) {
	iss := newTestIssuer(t, time.Hour)
	tok, err := iss.Issue("user-123", "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: tok})
	rec := httptest.NewRecorder()
	guardedEcho(t, iss).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", rec.Header().Get("X-User"))
}

func TestMiddlewareHeaderWinsOverCookie(t *testing.T) {
	iss := newTestIssuer(t, time.Hour)
	headerTok, err := iss.Issue("header-user", "h@x.com")
	require.NoError(t, err)
	cookieTok, err := iss.Issue("cookie-user", "c@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+headerTok)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookieTok})
	rec := httptest.NewRecorder()
	guardedEcho(t, iss).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "header-user", rec.Header().Get("X-User"))
}

func TestMiddlewareRejections(t *testing.T) {
	iss := newTestIssuer(t, time.Hour)
	valid, err := iss.Issue("user-123", "a@x.com")
	require.NoError(t, err)

	expiredIssuer := newTestIssuer(t, time.Minute)
	expiredIssuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, err := expiredIssuer.Issue("user-123", "a@x.com")
	require.NoError(t, err)

	cases := map[string]func(r *http.Request){
		"no token":          func(r *http.Request) {},
		"malformed token":   func(r *http.Request) { r.Header.Set("Authorization", "Bearer not.a.jwt") },
		"non-bearer scheme": func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcjpwdw==") },
		"expired token":     func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+expired) },
		"tampered token": func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+valid[:len(valid)-2])
		},
	}
	for name, prep := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			prep(req)
			rec := httptest.NewRecorder()
			guardedEcho(t, iss).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

// A non-bearer Authorization header must not fall through to a valid cookie.
func TestMiddlewareNoCookieFallbackOnBadHeader(t *testing.T) {
	iss := newTestIssuer(t, time.Hour)
	tok, err := iss.Issue("user-123", "a@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: tok})
	rec := httptest.NewRecorder()
	guardedEcho(t, iss).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
