package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/erazemk/omara/internal/auth"
	"github.com/erazemk/omara/internal/store"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	DB        *sql.DB
	JWTSecret string
}

type loginRequest struct {
	Password string `json:"password"`
}

func (req *loginRequest) Validate() error {
	if req.Password == "" {
		return errors.New("password required")
	}
	return nil
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /auth/login. Without a configured password there is
// nothing to log in to.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	hash, err := store.GetPasswordHash(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "load password", "")
		return
	}
	if hash == "" {
		jsonError(w, http.StatusBadRequest, "authentication is disabled")
		return
	}

	ok, err := auth.CheckPassword(hash, req.Password)
	if err != nil {
		slog.Error("failed to check password", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		slog.Warn("login failed", "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("owner logged in", "remote", r.RemoteAddr)
	jsonResponse(w, http.StatusOK, loginResponse{Token: token})
}

// Logout handles POST /auth/logout. It revokes the caller's token; with
// authentication disabled there is no token and nothing to do.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	expiresAt := time.Now().Add(auth.TokenExpiry)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := store.RevokeToken(r.Context(), h.DB, claims.ID, expiresAt); err != nil {
		storeError(w, err, "revoke token", "")
		return
	}

	slog.Info("owner logged out", "remote", r.RemoteAddr)
	w.WriteHeader(http.StatusNoContent)
}
