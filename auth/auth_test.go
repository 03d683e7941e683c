package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSessionRoundtrip(t *testing.T) {
	rec := httptest.NewRecorder()
	CreateSession(rec, 7)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	uid, ok := ParseSession(req)
	if !ok || uid != 7 {
		t.Fatalf("ParseSession = (%d, %v), want (7, true)", uid, ok)
	}
}

func TestParseSessionRejectsTampering(t *testing.T) {
	rec := httptest.NewRecorder()
	CreateSession(rec, 7)
	cookie := rec.Result().Cookies()[0]

	// Change the user id but keep the signature.
	tampered := "8." + cookie.Value[2:]
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: tampered})

	if _, ok := ParseSession(req); ok {
		t.Fatal("tampered cookie accepted")
	}
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// No session: 401.
	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	rec := httptest.NewRecorder()
	RequireAuth(next).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no session: code = %d, want 401", rec.Code)
	}

	// With session in context: pass through.
	req = httptest.NewRequest(http.MethodGet, "/quotes", nil)
	req = req.WithContext(WithUserID(req.Context(), 1))
	rec = httptest.NewRecorder()
	RequireAuth(next).ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("with session: code = %d, want 204", rec.Code)
	}
}

func TestRequireAuthVerifier(t *testing.T) {
	SetUserVerifier(func(ctx context.Context, uid uint) bool { return uid == 1 })
	defer SetUserVerifier(nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	req = req.WithContext(WithUserID(req.Context(), 99))
	rec := httptest.NewRecorder()
	RequireAuth(next).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown user: code = %d, want 401", rec.Code)
	}
}
