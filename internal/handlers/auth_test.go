package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mbaocraft/go-admin/auth"
	"github.com/mbaocraft/go-admin/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedAdmin(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := models.User{Email: "admin@mbaocraft.com", Name: "Admin", Role: "admin", Password: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return user
}

func TestLogin(t *testing.T) {
	db := setupHandlerTestDB(t)
	seedAdmin(t, db)
	h := NewAuthHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"admin@mbaocraft.com","password":"admin123"}`))
	w := httptest.NewRecorder()
	h.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "session" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("login did not set a session cookie")
	}
	if strings.Contains(w.Body.String(), "admin123") {
		t.Fatal("password leaked into response body")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupHandlerTestDB(t)
	seedAdmin(t, db)
	h := NewAuthHandler(db)

	for _, body := range []string{
		`{"email":"admin@mbaocraft.com","password":"wrong"}`,
		`{"email":"nobody@mbaocraft.com","password":"admin123"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		h.Login(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 got %d for %s", w.Code, body)
		}
	}
}

func TestSession(t *testing.T) {
	db := setupHandlerTestDB(t)
	user := seedAdmin(t, db)
	h := NewAuthHandler(db)

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), user.ID))
	w := httptest.NewRecorder()
	h.Session(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	// No context: unauthorized
	req = httptest.NewRequest(http.MethodGet, "/session", nil)
	w = httptest.NewRecorder()
	h.Session(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	db := setupHandlerTestDB(t)
	h := NewAuthHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	w := httptest.NewRecorder()
	h.Logout(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" && c.Value != "" {
			t.Fatal("logout left a session value behind")
		}
	}
}
