package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nebula-platform/nebula/internal/auth"
	"github.com/nebula-platform/nebula/internal/metrics"
	"github.com/nebula-platform/nebula/internal/store"
)

// tokensHandler provides the token-based auth endpoints.
type tokensHandler struct {
	tokens *auth.TokenManager
	users  store.UserStoreIface
}

func newTokensHandler(tm *auth.TokenManager, us store.UserStoreIface) *tokensHandler {
	return &tokensHandler{tokens: tm, users: us}
}

// Login verifies credentials and issues an access/refresh token pair.
// POST /api/auth/login
func (h *tokensHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "bad_request")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required", "bad_request")
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			writeError(w, http.StatusUnauthorized, "invalid email or password", "unauthorized")
			return
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "internal error", "internal")
		return
	}

	pair, err := h.tokens.GeneratePair(user.ID)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "internal error", "internal")
		return
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
	})
}

// Refresh mints a new access token from a valid refresh token.
// POST /api/auth/refresh
func (h *tokensHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "bad_request")
		return
	}
	if req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "refresh_token is required", "bad_request")
		return
	}

	access, err := h.tokens.Refresh(req.RefreshToken)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusUnauthorized, "invalid or expired refresh token", "unauthorized")
		return
	}

	metrics.TokenRefreshesTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, AccessTokenResponse{
		AccessToken: access,
		TokenType:   "bearer",
	})
}

// Logout acknowledges a sign-out for the token's owner. Tokens are stateless,
// so this only confirms; clients discard their pair.
// POST /api/auth/logout
func (h *tokensHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("User %s logged out successfully", user.Username),
	})
}
