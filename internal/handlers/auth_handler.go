package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/auth"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/cart"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/middleware"
)

// AuthHandler handles account and session HTTP requests
type AuthHandler struct {
	store *auth.Store
	carts *cart.Store
	log   *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store *auth.Store, carts *cart.Store, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		store: store,
		carts: carts,
		log:   log,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := h.store.Register(req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrBlankCredentials):
			WriteError(w, http.StatusBadRequest, "Username and password are required", h.log)
		case errors.Is(err, auth.ErrPasswordPolicy):
			WriteError(w, http.StatusBadRequest, "Password must be at least 6 characters", h.log)
		case errors.Is(err, auth.ErrUserExists):
			WriteError(w, http.StatusConflict, "Username already exists", h.log)
		default:
			h.log.Error("failed to register user", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("user registered", "username", req.Username)
	WriteJSON(w, http.StatusCreated, map[string]string{"status": "registered"}, h.log)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	session, err := h.store.Authenticate(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrBlankCredentials):
			WriteError(w, http.StatusBadRequest, "Username and password are required", h.log)
		case errors.Is(err, auth.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, "Invalid username or password", h.log)
		default:
			h.log.Error("failed to authenticate", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("user logged in", "username", session.Username)
	WriteJSON(w, http.StatusOK, session, h.log)
}

// Logout handles POST /api/auth/logout. The session's cart is discarded
// together with the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Session token required", h.log)
		return
	}

	h.carts.Drop(session.Token)
	if err := h.store.Logout(session.Token); err != nil {
		WriteError(w, http.StatusUnauthorized, "Session not found", h.log)
		return
	}

	h.log.Info("user logged out", "username", session.Username)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "logged out"}, h.log)
}
