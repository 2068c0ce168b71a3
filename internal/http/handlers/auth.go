package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/hongminglow/field-checkin/internal/auth"
	"github.com/hongminglow/field-checkin/internal/http/respond"
	"github.com/hongminglow/field-checkin/internal/models"
	"github.com/hongminglow/field-checkin/internal/models/dto"
	"github.com/hongminglow/field-checkin/internal/storage"
)

// Middleware wraps a handler, e.g. with authentication.
type Middleware func(http.Handler) http.Handler

// AuthHandler owns login and profile endpoints backed by Postgres users.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

// Register attaches auth routes to the mux; authn guards the profile route.
func (h *AuthHandler) Register(mux *http.ServeMux, authn Middleware) {
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.Handle("GET /api/auth/me", authn(http.HandlerFunc(h.handleMe)))
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := models.NormalizeEmail(req.Email)
	if email == "" || strings.TrimSpace(req.Password) == "" {
		respond.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}
	user, err := h.store.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("login failed: no user for %s", email)
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respond.Internal(w, r, "login failed", err)
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := h.tokens.Generate(user)
	if err != nil {
		respond.Internal(w, r, "failed to generate token", err)
		return
	}
	respond.JSON(w, http.StatusOK, "login successful", dto.LoginResponse{Token: token, User: user})
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.FromContext(r.Context())
	user, err := h.store.FindByID(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		respond.Internal(w, r, "failed to fetch user", err)
		return
	}
	respond.JSON(w, http.StatusOK, "", user)
}
