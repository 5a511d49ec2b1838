package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/auth"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/cart"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/middleware"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/logger"
)

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       credentialsRequest
		wantStatus int
	}{
		{name: "valid", body: credentialsRequest{Username: "carol", Password: "secret1"}, wantStatus: http.StatusCreated},
		{name: "short password", body: credentialsRequest{Username: "carol", Password: "abc"}, wantStatus: http.StatusBadRequest},
		{name: "blank username", body: credentialsRequest{Password: "secret1"}, wantStatus: http.StatusBadRequest},
		{name: "existing user", body: credentialsRequest{Username: "user", Password: "secret1"}, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(auth.NewStoreWithDefaults(), cart.NewStore(), logger.New("error"))

			body, _ := json.Marshal(tt.body)
			rec := httptest.NewRecorder()
			h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body)))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestAuthHandler_LoginLogout(t *testing.T) {
	store := auth.NewStoreWithDefaults()
	carts := cart.NewStore()
	h := NewAuthHandler(store, carts, logger.New("error"))

	body, _ := json.Marshal(credentialsRequest{Username: "admin", Password: "admin123"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200", rec.Code)
	}

	var session auth.Session
	if err := json.NewDecoder(rec.Body).Decode(&session); err != nil {
		t.Fatalf("decoding session: %v", err)
	}
	if !session.IsAdmin || session.Token == "" {
		t.Errorf("session = %+v, want admin session with token", session)
	}

	// The session's cart goes away with the session.
	carts.Get(session.Token).Increment(1)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req = req.WithContext(middleware.WithSession(req.Context(), session))
	rec = httptest.NewRecorder()
	h.Logout(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout status = %d, want 200", rec.Code)
	}

	if _, ok := store.Resolve(session.Token); ok {
		t.Error("session still live after logout")
	}
	if carts.Get(session.Token).Len() != 0 {
		t.Error("cart survived logout")
	}
}

func TestAuthHandler_LoginRejectsBadCredentials(t *testing.T) {
	h := NewAuthHandler(auth.NewStoreWithDefaults(), cart.NewStore(), logger.New("error"))

	body, _ := json.Marshal(credentialsRequest{Username: "admin", Password: "wrong"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
